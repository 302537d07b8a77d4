// Package codec encodes enum variants on the wire as their discriminant
// alone. Payload values and variant fields are never written.
//
// Every format has a pair of generic functions over a
// *valenum.Indexed table. Encoders reject variants outside the table;
// decoders validate the discriminant and return a *DecodeError instead
// of panicking, since wire input is untrusted:
//
//	data, _ := codec.MarshalJSON(table.Indexed, Second) // "2"
//	_, err := codec.UnmarshalJSON(table.Indexed, []byte("5"))
//	errors.Is(err, valenum.ErrOutOfRange)               // true
//
// Generated enums call these from their MarshalJSON, UnmarshalBinary,
// MarshalCBOR, ... methods.
package codec
