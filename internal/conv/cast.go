package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt64 converts uint64 to int64 safely.
func Uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (too large)", v)
	}
	return int64(v), nil
}

// MulSize returns count*size in bytes as an int64.
// It fails for negative counts and when the product overflows int64.
func MulSize(count int, size uintptr) (int64, error) {
	c, err := IntToUint64(count)
	if err != nil {
		return 0, err
	}
	hi, lo := bits.Mul64(c, uint64(size))
	if hi != 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d does not fit in 64 bits", count, size)
	}
	return Uint64ToInt64(lo)
}
