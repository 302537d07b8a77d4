package codec

import (
	"bytes"
	"encoding/json"

	"github.com/rawbytedev/valenum"
)

var jsonNull = []byte("null")

// MarshalJSON encodes v as a JSON number holding its discriminant.
func MarshalJSON[E any](t *valenum.Indexed[E], v E) ([]byte, error) {
	d, err := discriminantOf(t, FormatJSON, v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(d)
}

// UnmarshalJSON decodes a JSON number into the variant it names.
func UnmarshalJSON[E any](t *valenum.Indexed[E], data []byte) (E, error) {
	var zero E
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return zero, &DecodeError{Format: FormatJSON, Err: ErrNull}
	}
	var d uint64
	if err := json.Unmarshal(data, &d); err != nil {
		return zero, &DecodeError{Format: FormatJSON, Err: err}
	}
	return variantOf(t, FormatJSON, d)
}
