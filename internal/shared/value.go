package shared

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FormatNumber renders f the way JS Number#toString does for the ranges
// templates meet in practice.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads negative exponents to two digits
		return strings.Replace(s, "e-0", "e-", 1)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// AsNumber converts Go numeric kinds to float64.
func AsNumber(v any) (float64, bool) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}

	return 0, false
}

// ToString is JS String(v) for scalar values.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}

	if f, ok := AsNumber(v); ok {
		return FormatNumber(f)
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())

		for i := range parts {
			if item := rv.Index(i).Interface(); item != nil {
				parts[i] = ToString(item)
			}
		}

		return strings.Join(parts, ",")
	case reflect.Map, reflect.Struct, reflect.Pointer:
		return "[object Object]"
	case reflect.Func:
		return "function"
	}

	return fmt.Sprint(v)
}

// ToNumber is JS Number(v). Unparseable input yields NaN.
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}

		return 0
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}

		return f
	}

	if f, ok := AsNumber(v); ok {
		return f
	}

	return math.NaN()
}

// Truthy is JS Boolean(v).
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}

	if f, ok := AsNumber(v); ok {
		return f != 0 && !math.IsNaN(f)
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return !rv.IsNil()
	}

	return true
}
