// Package signature defines capabilities for producing and checking digital
// signatures independently of the algorithm.
//
// The interfaces are generic over the signature type S, so one key type can
// implement them for several signature encodings and the compiler rejects an
// algorithm mismatch. Generic code names only the capabilities it needs:
//
//	func Attest[S any](s signature.Signer[S], doc []byte) (S, error) {
//	    return s.Sign(doc)
//	}
//
// Signing and verification failures are reported as *cryptocap.Error, which
// carries no detail about the cause. See the cryptocap package for why.
//
// Schemes that operate on a fixed-size digest implement [DigestSigner] and
// [DigestVerifier]; when their signature type also implements
// [PrehashSignature], [SignerFromDigest] and [VerifierFromDigest] derive the
// message-level capabilities. Schemes whose security depends on fresh
// randomness implement [RandomizedSigner] and take the source as an argument.
package signature
