package codec

import (
	"strconv"

	"github.com/rawbytedev/valenum"
)

// MarshalText encodes v as the decimal form of its discriminant.
func MarshalText[E any](t *valenum.Indexed[E], v E) ([]byte, error) {
	d, err := discriminantOf(t, FormatText, v)
	if err != nil {
		return nil, err
	}
	return strconv.AppendUint(nil, d, 10), nil
}

// UnmarshalText decodes a decimal discriminant.
func UnmarshalText[E any](t *valenum.Indexed[E], text []byte) (E, error) {
	d, err := strconv.ParseUint(string(text), 10, 64)
	if err != nil {
		var zero E
		return zero, &DecodeError{Format: FormatText, Err: err}
	}
	return variantOf(t, FormatText, d)
}
