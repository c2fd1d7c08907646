// Package ed25519 implements the signature capabilities for Ed25519 using
// github.com/cloudflare/circl/sign/ed25519.
//
// Ed25519 signing is deterministic and hashes the message internally, so
// SigningKey implements signature.Signer and signature.Verifier but none of
// the digest or randomized variants.
package ed25519

import (
	"crypto/subtle"
	"errors"
	"io"

	ed "github.com/cloudflare/circl/sign/ed25519"

	"github.com/vaultsandbox/cryptocap"
	"github.com/vaultsandbox/cryptocap/internal/secret"
	"github.com/vaultsandbox/cryptocap/signature"
)

const (
	// SeedSize is the size of an Ed25519 private key seed in bytes.
	SeedSize = ed.SeedSize
	// PublicKeySize is the size of an Ed25519 public key in bytes.
	PublicKeySize = ed.PublicKeySize
)

var (
	// ErrInvalidSeedSize is returned when the seed size is invalid.
	ErrInvalidSeedSize = errors.New("invalid seed size")

	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")
)

var (
	_ signature.SignerVerifier[Signature] = (*SigningKey)(nil)
	_ signature.Keypair[*VerifyingKey]    = (*SigningKey)(nil)
	_ signature.Verifier[Signature]       = (*VerifyingKey)(nil)
	_ signature.Encoding                  = Signature{}
)

// SigningKey is an Ed25519 private key.
type SigningKey struct {
	priv ed.PrivateKey
	vk   *VerifyingKey
}

// VerifyingKey is an Ed25519 public key.
type VerifyingKey struct {
	pub ed.PublicKey
}

// GenerateKey reads a seed from rng and derives a signing key from it.
func GenerateKey(rng io.Reader) (*SigningKey, error) {
	seed := make([]byte, SeedSize)
	defer secret.Wipe(seed)

	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, cryptocap.ErrorFromSource(err)
	}
	return NewSigningKeyFromSeed(seed)
}

// NewSigningKeyFromSeed derives a signing key from a 32-byte seed.
// The caller keeps ownership of seed.
func NewSigningKeyFromSeed(seed []byte) (*SigningKey, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeedSize
	}

	priv := ed.NewKeyFromSeed(seed)
	pub := priv.Public().(ed.PublicKey)

	return &SigningKey{
		priv: priv,
		vk:   &VerifyingKey{pub: pub},
	}, nil
}

// Sign signs msg. It fails only after Destroy.
func (k *SigningKey) Sign(msg []byte) (Signature, error) {
	if k.priv == nil {
		return Signature{}, cryptocap.NewError()
	}

	var sig Signature
	copy(sig[:], ed.Sign(k.priv, msg))
	return sig, nil
}

// Verify checks sig with the matching verifying key.
func (k *SigningKey) Verify(msg []byte, sig Signature) error {
	return k.vk.Verify(msg, sig)
}

// VerifyingKey returns the matching public key.
func (k *SigningKey) VerifyingKey() *VerifyingKey {
	return k.vk
}

// Seed returns a copy of the private key seed. The caller owns the copy.
func (k *SigningKey) Seed() []byte {
	if k.priv == nil {
		return nil
	}
	return k.priv.Seed()
}

// Destroy erases the private key. Sign fails afterwards.
func (k *SigningKey) Destroy() {
	secret.Wipe(k.priv)
	k.priv = nil
}

// NewVerifyingKey parses a 32-byte public key.
func NewVerifyingKey(b []byte) (*VerifyingKey, error) {
	if len(b) != PublicKeySize {
		return nil, ErrInvalidPublicKeySize
	}
	return &VerifyingKey{pub: ed.PublicKey(secret.Clone(b))}, nil
}

// Bytes returns a copy of the public key.
func (v *VerifyingKey) Bytes() []byte {
	return secret.Clone(v.pub)
}

// Equal reports whether v and other are the same key.
func (v *VerifyingKey) Equal(other *VerifyingKey) bool {
	return other != nil && subtle.ConstantTimeCompare(v.pub, other.pub) == 1
}

// Verify checks that sig is a valid signature of msg.
func (v *VerifyingKey) Verify(msg []byte, sig Signature) error {
	if !ed.Verify(v.pub, msg, sig[:]) {
		return cryptocap.NewError()
	}
	return nil
}
