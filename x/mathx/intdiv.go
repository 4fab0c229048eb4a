package mathx

import "golang.org/x/exp/constraints"

// CeilDiv returns ceil(a/b) for positive integers; b == 0 yields 0.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return a/b + min(a%b, 1)
}

// MulFitsU32 reports whether a*b fits in a uint32.
func MulFitsU32(a, b uint32) bool {
	return uint64(a)*uint64(b) <= uint64(^uint32(0))
}
