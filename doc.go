// Package cryptocap defines algorithm-agnostic capabilities for digital
// signatures and key encapsulation.
//
// Application and protocol code is written once against the interfaces in
// the [github.com/vaultsandbox/cryptocap/signature] and
// [github.com/vaultsandbox/cryptocap/kem] packages. Algorithm packages
// implement those interfaces for their own key types. This root package holds
// the one type both families share: the opaque [Error].
//
// # Package Layout
//
//   - signature: Signer, Verifier, DigestSigner, DigestVerifier,
//     RandomizedSigner, Keypair and the signature encoding helpers.
//
//   - signature/hazmat: signing and verification over caller-computed
//     prehashes. Misuse can break the security of the scheme.
//
//   - kem: Encapsulator, Decapsulator, EncappedKey and the self-erasing
//     SharedSecret.
//
//   - signature/ed25519, signature/mldsa65, signature/schnorr,
//     signature/ecdsa, kem/suite: implementations backed by
//     cloudflare/circl and secp256k1.
//
//   - cmd/sigwrap: generator for the byte conversions of fixed-size
//     signature types.
//
// # Failure Reporting
//
// Every cryptographic failure is an [*Error]. Errors do not distinguish a
// wrong key from a tampered message or a malformed encoding: they print the
// same text and compare equal with errors.Is. Distinguishable failures on a
// verification or decapsulation path hand an attacker an oracle, so
// implementations must not return any other error type from those paths.
//
//	if err := vk.Verify(msg, sig); err != nil {
//	    return fmt.Errorf("reject message: %w", err)
//	}
//
// Implementations may attach a cause with [ErrorFromSource]. It is reachable
// only through [Error.Source], or through errors.Unwrap when the module is
// built with the cryptocap_diag tag.
//
// # Randomness
//
// Operations that need randomness take an io.Reader argument. Nothing in this
// module reads ambient randomness on a signing or encapsulation path; pass
// crypto/rand.Reader explicitly.
package cryptocap
