package schnorr

import (
	"crypto/sha256"
	"hash"
)

//go:generate go run github.com/vaultsandbox/cryptocap/cmd/sigwrap --type Signature --size 64

// Signature is a BIP-340 Schnorr signature over secp256k1.
type Signature [SignatureSize]byte

// NewDigest returns the digest Sign and Verify hash messages with.
func (Signature) NewDigest() hash.Hash {
	return sha256.New()
}
