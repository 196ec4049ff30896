// Package safeconv provides checked integer narrowing for byte offsets and
// lengths handed out by the tree-sitter runtime.
package safeconv

import (
	"errors"
	"math"
)

// MaxInt is the maximum value for int type (platform-dependent).
const MaxInt = int(^uint(0) >> 1)

// MaxUint32 is the maximum value for uint32 type.
const MaxUint32 = uint32(math.MaxUint32)

// ErrOffsetOverflow is returned when an offset does not fit a 32-bit span.
var ErrOffsetOverflow = errors.New("safeconv: offset exceeds uint32 range")

// MustUintToInt converts uint to int, panics on overflow.
// Use only for offsets into a buffer that is already in memory.
func MustUintToInt(v uint) int {
	if v > uint(MaxInt) {
		panic("safeconv: uint to int overflow")
	}

	return int(v)
}

// MustUintToUint32 converts uint to uint32, panics on overflow.
// Sources are size-limited before parsing, so span offsets always fit.
func MustUintToUint32(v uint) uint32 {
	if v > uint(MaxUint32) {
		panic("safeconv: uint to uint32 overflow")
	}

	return uint32(v)
}

// MustIntToUint32 converts int to uint32, panics on bounds violation.
func MustIntToUint32(v int) uint32 {
	if v < 0 || v > int(MaxUint32) {
		panic("safeconv: int to uint32 out of bounds")
	}

	return uint32(v)
}

// IntToUint32 converts int to uint32, reporting ErrOffsetOverflow instead of
// panicking. Used where the length comes from user input.
func IntToUint32(v int) (uint32, error) {
	if v < 0 || v > int(MaxUint32) {
		return 0, ErrOffsetOverflow
	}

	return uint32(v), nil
}
