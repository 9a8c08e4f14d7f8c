// Package shared holds string helpers used by both the code generator and
// the runtime.
package shared

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	camelizeRe  = regexp.MustCompile(`-(\w)`)
	hyphenateRe = regexp.MustCompile(`\B([A-Z])`)
)

// Camelize turns kebab-case into camelCase.
func Camelize(s string) string {
	return camelizeRe.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// Hyphenate turns camelCase into kebab-case.
func Hyphenate(s string) string {
	return strings.ToLower(hyphenateRe.ReplaceAllString(s, "-$1"))
}

// Capitalize upper-cases the first rune.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// ToHandlerKey turns an event name into its handler prop key ("click" ->
// "onClick").
func ToHandlerKey(s string) string {
	if s == "" {
		return ""
	}

	return "on" + Capitalize(s)
}

// IsOn reports whether key names an event handler prop: "on" followed by
// anything but a lower-case ASCII letter.
func IsOn(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n' && (key[2] > 'z' || key[2] < 'a')
}

// IsNativeOn reports whether key is a native handler attribute such as
// "onclick".
func IsNativeOn(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n' && key[2] >= 'a' && key[2] <= 'z'
}

// Quote returns s as a double-quoted JS string literal.
func Quote(s string) string {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = enc.Encode(s)

	return strings.TrimSuffix(buf.String(), "\n")
}
