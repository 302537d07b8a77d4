package codec

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/valenum"
	"github.com/rawbytedev/valenum/internal/common"
)

var (
	ErrTrailingData = errors.New("trailing data after discriminant")
	ErrNull         = errors.New("null discriminant")
)

// Format names used in errors.
const (
	FormatJSON   = "json"
	FormatText   = "text"
	FormatBinary = "binary"
	FormatCBOR   = "cbor"
	FormatYAML   = "yaml"
)

// DecodeError reports wire input that does not name a variant.
type DecodeError struct {
	Format string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format == FormatBinary {
		return fmt.Sprintf("codec: decode %s at offset %d: %v", e.Format, e.Offset, e.Err)
	}
	return fmt.Sprintf("codec: decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a variant whose discriminant is not in the table.
type EncodeError struct {
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("codec: encode %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func discriminantOf[E any](t *valenum.Indexed[E], format string, v E) (uint64, error) {
	d := t.Discriminant(v)
	if d < 0 || d >= t.Len() {
		return 0, &EncodeError{Format: format, Err: &valenum.RangeError{Discriminant: d, Len: t.Len()}}
	}
	return uint64(d), nil
}

func variantOf[E any](t *valenum.Indexed[E], format string, d uint64) (E, error) {
	var zero E
	if !common.FitsInt(d) {
		return zero, &DecodeError{Format: format, Err: fmt.Errorf("discriminant %d: %w", d, valenum.ErrOutOfRange)}
	}
	v, ok := t.FromDiscriminantOpt(int(d))
	if !ok {
		return zero, &DecodeError{Format: format, Err: &valenum.RangeError{Discriminant: int(d), Len: t.Len()}}
	}
	return v, nil
}
