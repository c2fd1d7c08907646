package signature

// Keypair is implemented by signing keys that can produce their verifying
// counterpart, so generic code can obtain the verifier for a signer without
// passing it separately.
type Keypair[V any] interface {
	VerifyingKey() V
}

// SignerVerifier is a key that both signs and verifies signatures of type S.
// Signing keys usually implement it by delegating to their verifying key.
type SignerVerifier[S any] interface {
	Signer[S]
	Verifier[S]
}
