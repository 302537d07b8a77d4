package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/rawbytedev/valenum"
)

// encMode uses Core Deterministic Encoding, so a discriminant always
// takes its smallest integer form.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes the discriminant of v as a CBOR unsigned integer.
func MarshalCBOR[E any](t *valenum.Indexed[E], v E) ([]byte, error) {
	d, err := discriminantOf(t, FormatCBOR, v)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(d)
}

// UnmarshalCBOR decodes a CBOR unsigned integer discriminant.
func UnmarshalCBOR[E any](t *valenum.Indexed[E], data []byte) (E, error) {
	var zero E
	// null (0xf6) and undefined (0xf7) would otherwise decode as 0.
	if len(data) == 1 && (data[0] == 0xf6 || data[0] == 0xf7) {
		return zero, &DecodeError{Format: FormatCBOR, Err: ErrNull}
	}
	var d uint64
	if err := decMode.Unmarshal(data, &d); err != nil {
		return zero, &DecodeError{Format: FormatCBOR, Err: err}
	}
	return variantOf(t, FormatCBOR, d)
}
