package ed25519

//go:generate go run github.com/vaultsandbox/cryptocap/cmd/sigwrap --type Signature --size 64

// Signature is an Ed25519 signature (RFC 8032).
type Signature [SignatureSize]byte
