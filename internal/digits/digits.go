// Package digits provides shared decimal-magnitude helpers used by the
// format engine and the pattern compiler.
//
// It exists solely to keep overflow-sensitive digit extraction in one
// place; it has no public-API contract of its own.  All callers are within
// the same module.
package digits

import "strconv"

// Abs returns the decimal digits of |v| without a sign.
//
// The negation is performed in unsigned arithmetic so the most negative
// representable value does not overflow: -math.MinInt cannot be expressed
// as an int, but its magnitude is exactly the wrapped unsigned negation.
func Abs(v int) string {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return strconv.FormatUint(u, 10)
}

// Count returns the number of decimal digits in |v|.
func Count(v int) int {
	return len(Abs(v))
}
