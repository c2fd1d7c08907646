package mldsa65

//go:generate go run github.com/vaultsandbox/cryptocap/cmd/sigwrap --type Signature --size 3309

// Signature is an ML-DSA-65 signature (FIPS 204).
type Signature [SignatureSize]byte
