package runtime

import (
	"regexp"
	"sort"
	"strings"

	"vapor.dev/pkg/vapor/internal/shared"
)

// NormalizeClass flattens the string, list and object forms of a class
// binding into one space-separated string. Object keys are taken in
// sorted order when their value is truthy. Duplicates are kept.
func NormalizeClass(v any) string {
	var res string

	switch x := v.(type) {
	case string:
		res = x
	case []string:
		res = joinClasses(len(x), func(i int) string { return NormalizeClass(x[i]) })
	case []any:
		res = joinClasses(len(x), func(i int) string { return NormalizeClass(x[i]) })
	case map[string]bool:
		for _, k := range sortedKeys(x) {
			if x[k] {
				res += k + " "
			}
		}
	case map[string]any:
		for _, k := range sortedKeys(x) {
			if shared.Truthy(x[k]) {
				res += k + " "
			}
		}
	}

	return strings.TrimSpace(res)
}

func joinClasses(n int, at func(int) string) string {
	parts := make([]string, 0, n)

	for i := range n {
		if s := at(i); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, " ")
}

// StyleMap is a normalized style object keyed by property name.
type StyleMap = map[string]string

// NormalizeStyle keeps a string binding as is and merges list and
// object forms into a StyleMap. Later entries win. Nil values are
// dropped. It returns nil for anything else.
func NormalizeStyle(v any) any {
	switch x := v.(type) {
	case string:
		return x
	case []any:
		out := StyleMap{}

		for _, item := range x {
			var normalized StyleMap

			switch it := item.(type) {
			case string:
				normalized = ParseStringStyle(it)
			default:
				normalized, _ = NormalizeStyle(it).(StyleMap)
			}

			for k, val := range normalized {
				out[k] = val
			}
		}

		return out
	case map[string]string:
		out := make(StyleMap, len(x))
		for k, val := range x {
			out[k] = val
		}

		return out
	case map[string]any:
		out := make(StyleMap, len(x))

		for k, val := range x {
			if val != nil {
				out[k] = shared.ToString(val)
			}
		}

		return out
	}

	return nil
}

var styleCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

// ParseStringStyle parses "a: b; c: d" declarations. Semicolons inside
// parentheses do not split.
func ParseStringStyle(css string) StyleMap {
	out := StyleMap{}

	for _, item := range splitDeclarations(styleCommentRe.ReplaceAllString(css, "")) {
		name, value, ok := strings.Cut(item, ":")
		if ok {
			out[strings.TrimSpace(name)] = strings.TrimSpace(value)
		}
	}

	return out
}

func splitDeclarations(css string) []string {
	var (
		items []string
		depth int
		start int
	)

	for i := range len(css) {
		switch css[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				items = append(items, css[start:i])
				start = i + 1
			}
		}
	}

	return append(items, css[start:])
}

// StringifyStyle serializes a normalized style as cssText. Property
// names are hyphenated unless they are custom properties.
func StringifyStyle(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case StyleMap:
		parts := make([]string, 0, len(x))

		for _, k := range sortedKeys(x) {
			name := k
			if !strings.HasPrefix(k, "--") {
				name = shared.Hyphenate(k)
			}

			parts = append(parts, name+": "+x[k]+";")
		}

		return strings.Join(parts, " ")
	}

	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
