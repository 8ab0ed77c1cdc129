// Package numeric provides the safe-coercion helpers used at every
// catalog boundary: numeric fields are coerced via safe integer/float
// parsers that fall back to 0, and a semester filter accepted as either a
// string or integer is compared via safe-int coercion.
package numeric

import "github.com/spf13/cast"

// SafeInt coerces v (string, int, float, nil, ...) to an int, falling back
// to 0 on any conversion failure.
func SafeInt(v any) int {
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0
	}
	return n
}

// SafeIntDefault is SafeInt but with a caller-supplied fallback instead of
// 0, for fields where 0 is itself a meaningful value (e.g. "no filter").
func SafeIntDefault(v any, fallback int) int {
	n, err := cast.ToIntE(v)
	if err != nil {
		return fallback
	}
	return n
}

// SafeFloat coerces v to a float64, falling back to 0 on failure.
func SafeFloat(v any) float64 {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}

// SameSemester compares two semester values that may each arrive as a
// string or an int, via safe-int coercion.
func SameSemester(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	av, aerr := cast.ToIntE(a)
	bv, berr := cast.ToIntE(b)
	if aerr != nil || berr != nil {
		return false
	}
	return av == bv
}
