package codec

import (
	"slices"

	"github.com/rawbytedev/valenum"
	"github.com/rawbytedev/valenum/internal/common"
)

// MarshalBinary encodes the discriminant of v as an unsigned varint.
func MarshalBinary[E any](t *valenum.Indexed[E], v E) ([]byte, error) {
	return AppendBinary(nil, t, v)
}

// AppendBinary appends the varint discriminant of v to dst.
func AppendBinary[E any](dst []byte, t *valenum.Indexed[E], v E) ([]byte, error) {
	d, err := discriminantOf(t, FormatBinary, v)
	if err != nil {
		return dst, err
	}
	dst = slices.Grow(dst, common.VarUintLen(d))
	return common.WriteVarUintTo(dst, d), nil
}

// DecodeBinary reads one varint discriminant from the front of data and
// returns the variant and the number of bytes consumed. Use it to walk a
// buffer holding several encoded values.
func DecodeBinary[E any](t *valenum.Indexed[E], data []byte) (E, int, error) {
	var zero E
	d, n, err := common.ReadVarUint(data)
	if err != nil {
		return zero, 0, &DecodeError{Format: FormatBinary, Err: err}
	}
	v, err := variantOf(t, FormatBinary, d)
	if err != nil {
		return zero, 0, err
	}
	return v, n, nil
}

// UnmarshalBinary decodes data holding exactly one varint discriminant.
func UnmarshalBinary[E any](t *valenum.Indexed[E], data []byte) (E, error) {
	v, n, err := DecodeBinary(t, data)
	if err != nil {
		return v, err
	}
	if n != len(data) {
		var zero E
		return zero, &DecodeError{Format: FormatBinary, Offset: n, Err: ErrTrailingData}
	}
	return v, nil
}
