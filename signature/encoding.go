package signature

import "encoding"

// Encoding is implemented by signature types with a raw byte form.
// Bytes returns a copy that the caller owns.
type Encoding interface {
	Bytes() []byte
	encoding.BinaryMarshaler
}

// Decode parses a signature of type S from its raw byte form.
//
//	sig, err := signature.Decode[ed25519.Signature](raw)
func Decode[S any, PS interface {
	*S
	encoding.BinaryUnmarshaler
}](b []byte) (S, error) {
	var sig S
	if err := PS(&sig).UnmarshalBinary(b); err != nil {
		var zero S
		return zero, err
	}
	return sig, nil
}
