package common

import (
	"errors"
	"math"
)

var (
	ErrTruncated = errors.New("varint truncated")
	ErrOverflow  = errors.New("varint overflows 64 bits")
)

// MaxVarintLen is the longest encoding of a 64-bit varint.
const MaxVarintLen = 10

// WriteVarUintTo appends varint-encoded x to dst using a small stack scratch.
func WriteVarUintTo(dst []byte, x uint64) []byte {
	var scratch [MaxVarintLen]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// VarUintLen returns the encoded size of x.
func VarUintLen(x uint64) int {
	n := 1
	for x >= 0x80 {
		x >>= 7
		n++
	}
	return n
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
func ReadVarUint(b []byte) (uint64, int, error) {
	var x uint64
	var s uint
	for i, c := range b {
		if i == MaxVarintLen-1 && c > 1 {
			return 0, 0, ErrOverflow
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1, nil
		}
		s += 7
	}
	return 0, 0, ErrTruncated
}

// FitsInt reports whether x is representable as a non-negative int.
func FitsInt(x uint64) bool {
	return x <= math.MaxInt
}
