// Package hazmat defines signing and verification over caller-computed
// prehashes.
//
// These capabilities skip the message hashing that the signature package
// performs. Passing anything other than the output of the scheme's digest,
// or letting an attacker choose the prehash, can break the security of the
// scheme. Prefer signature.DigestSigner unless a protocol hands you a hash.
package hazmat

import "io"

// PrehashSigner signs a prehash computed by the caller.
// A prehash of the wrong length returns a *cryptocap.Error.
type PrehashSigner[S any] interface {
	SignPrehash(prehash []byte) (S, error)
}

// PrehashVerifier verifies a signature over a prehash computed by the caller.
type PrehashVerifier[S any] interface {
	VerifyPrehash(prehash []byte, sig S) error
}

// RandomizedPrehashSigner signs a prehash with caller-supplied randomness.
type RandomizedPrehashSigner[S any] interface {
	SignPrehashWithRand(rng io.Reader, prehash []byte) (S, error)
}
