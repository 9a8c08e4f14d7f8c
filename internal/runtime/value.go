package runtime

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"vapor.dev/pkg/vapor/internal/shared"
)

// Data is a props object.
type Data = map[string]any

// identical reports a === b. Numbers compare by value whatever their Go
// kind, reference kinds compare by identity and functions never match.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if fa, ok := shared.AsNumber(a); ok {
		fb, ok := shared.AsNumber(b)

		return ok && fa == fb
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	switch ta.Kind() {
	case reflect.Func:
		return false
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if !ta.Comparable() {
		return false
	}

	return a == b
}

// ToDisplayString renders an interpolated value: nil is empty, arrays
// and objects are indented JSON, everything else is JS String().
func ToDisplayString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		var buf bytes.Buffer

		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err == nil {
			return strings.TrimSuffix(buf.String(), "\n")
		}
	}

	return shared.ToString(v)
}

func isFunction(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
