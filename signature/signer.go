package signature

import (
	"hash"
	"io"
)

// Signer produces signatures of type S over arbitrary messages.
type Signer[S any] interface {
	// Sign signs msg. A successful result verifies against the paired
	// verifying key for exactly msg. On failure no partial signature is
	// returned and the error is a *cryptocap.Error.
	Sign(msg []byte) (S, error)
}

// DigestSigner signs a message that has already been written into a digest.
// The implementation finalizes d and rejects digests of the wrong size.
type DigestSigner[S any] interface {
	SignDigest(d hash.Hash) (S, error)
}

// RandomizedSigner signs with caller-supplied randomness.
type RandomizedSigner[S any] interface {
	SignWithRand(rng io.Reader, msg []byte) (S, error)
}

// RandomizedDigestSigner combines DigestSigner and RandomizedSigner.
type RandomizedDigestSigner[S any] interface {
	SignDigestWithRand(rng io.Reader, d hash.Hash) (S, error)
}

// MustSign signs msg and panics if signing fails.
//
// Signing only fails on a fault of the key or its backing store, which
// callers are not expected to recover from.
func MustSign[S any](s Signer[S], msg []byte) S {
	sig, err := s.Sign(msg)
	if err != nil {
		panic("signature: sign failed: " + err.Error())
	}
	return sig
}

// MustSignDigest is MustSign for digest signers.
func MustSignDigest[S any](s DigestSigner[S], d hash.Hash) S {
	sig, err := s.SignDigest(d)
	if err != nil {
		panic("signature: sign digest failed: " + err.Error())
	}
	return sig
}

// MustSignWithRand is MustSign for randomized signers.
func MustSignWithRand[S any](s RandomizedSigner[S], rng io.Reader, msg []byte) S {
	sig, err := s.SignWithRand(rng, msg)
	if err != nil {
		panic("signature: randomized sign failed: " + err.Error())
	}
	return sig
}
