package kem

import (
	"io"

	"github.com/vaultsandbox/cryptocap"
)

// EncappedKey is the public value produced by encapsulation and consumed by
// decapsulation. Bytes returns a copy of its raw encoding.
type EncappedKey interface {
	Bytes() []byte
}

// Encapsulator derives a fresh shared secret for a recipient public key of
// type PK and the encapped key of type EK that transports it.
//
// On success decapsulating the returned encapped key with the matching
// private key yields an equal shared secret. On failure no secret or encapped
// key is returned and the error is a *cryptocap.Error.
type Encapsulator[PK any, EK EncappedKey] interface {
	Encapsulate(rng io.Reader, recipient PK) (EK, *SharedSecret, error)
}

// Decapsulator recovers the shared secret carried by an encapped key.
//
// Decapsulate succeeds iff ek was produced for the implementing key's public
// counterpart and has not been altered. Every failure returns the same
// *cryptocap.Error.
type Decapsulator[EK EncappedKey] interface {
	Decapsulate(ek EK) (*SharedSecret, error)
}

// Exchange encapsulates to recipient with enc, decapsulates with dec and
// checks that both sides hold the same secret. It returns the encapped key
// and the sender's secret; the recipient's copy is destroyed.
func Exchange[PK any, EK EncappedKey](enc Encapsulator[PK, EK], rng io.Reader, recipient PK, dec Decapsulator[EK]) (EK, *SharedSecret, error) {
	var zero EK

	ek, sent, err := enc.Encapsulate(rng, recipient)
	if err != nil {
		return zero, nil, err
	}

	received, err := dec.Decapsulate(ek)
	if err != nil {
		sent.Destroy()
		return zero, nil, err
	}
	defer received.Destroy()

	if !sent.Equal(received) {
		sent.Destroy()
		return zero, nil, cryptocap.NewError()
	}

	return ek, sent, nil
}
