package signature

import "hash"

// Verifier checks signatures of type S.
//
// Verify returns nil iff sig is a valid signature of exactly msg under the
// implementing key. Every other outcome, including a malformed signature,
// returns the same *cryptocap.Error. Verify has no side effects.
type Verifier[S any] interface {
	Verify(msg []byte, sig S) error
}

// DigestVerifier checks a signature against a message that has already been
// written into a digest.
type DigestVerifier[S any] interface {
	VerifyDigest(d hash.Hash, sig S) error
}
