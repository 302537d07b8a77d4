package valenum

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange    = errors.New("discriminant out of range")
	ErrNoVariant     = errors.New("no variant holds the value")
	ErrNoEquality    = errors.New("value table has no equality")
	ErrNotDense      = errors.New("variant table is not dense")
	ErrTableMismatch = errors.New("value table length differs from variant table")
	ErrEmpty         = errors.New("variant table is empty")
)

// RangeError reports a discriminant outside [0, Len).
type RangeError struct {
	Discriminant int
	Len          int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("valenum: discriminant %d out of range [0, %d)", e.Discriminant, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
