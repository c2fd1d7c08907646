// Package ecdsa implements the signature capabilities for ECDSA over
// secp256k1 using github.com/decred/dcrd/dcrec/secp256k1/v4.
//
// Nonces are derived deterministically per RFC 6979 and signatures are
// emitted in canonical low-S DER form. The digest methods are the primitive
// operations; Sign and Verify hash the message with SHA-256 and delegate to
// them.
package ecdsa

import (
	"errors"
	"hash"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/vaultsandbox/cryptocap"
	"github.com/vaultsandbox/cryptocap/internal/secret"
	"github.com/vaultsandbox/cryptocap/signature"
	"github.com/vaultsandbox/cryptocap/signature/hazmat"
)

const (
	// PrivateKeySize is the size of a secp256k1 private scalar in bytes.
	PrivateKeySize = secp256k1.PrivKeyBytesLen
	// DigestSize is the digest length this package signs.
	DigestSize = 32
)

var (
	// ErrInvalidPrivateKeySize is returned when the private key size is invalid.
	ErrInvalidPrivateKeySize = errors.New("invalid private key size")

	// ErrInvalidPrivateKey is returned when the private scalar is zero.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey is returned when a public key does not parse.
	ErrInvalidPublicKey = errors.New("invalid public key")
)

var (
	_ signature.SignerVerifier[Signature] = (*SigningKey)(nil)
	_ signature.DigestSigner[Signature]   = (*SigningKey)(nil)
	_ signature.Keypair[*VerifyingKey]    = (*SigningKey)(nil)
	_ hazmat.PrehashSigner[Signature]     = (*SigningKey)(nil)

	_ signature.Verifier[Signature]       = (*VerifyingKey)(nil)
	_ signature.DigestVerifier[Signature] = (*VerifyingKey)(nil)
	_ hazmat.PrehashVerifier[Signature]   = (*VerifyingKey)(nil)

	_ signature.PrehashSignature = Signature{}
	_ signature.Encoding         = Signature{}
)

// SigningKey is a secp256k1 ECDSA private key.
type SigningKey struct {
	priv *secp256k1.PrivateKey
	vk   *VerifyingKey
}

// VerifyingKey is a secp256k1 ECDSA public key.
type VerifyingKey struct {
	pub *secp256k1.PublicKey
}

// GenerateKey reads a private scalar from rng.
func GenerateKey(rng io.Reader) (*SigningKey, error) {
	var b [PrivateKeySize]byte
	defer secret.Wipe(b[:])

	if _, err := io.ReadFull(rng, b[:]); err != nil {
		return nil, cryptocap.ErrorFromSource(err)
	}
	return NewSigningKey(b[:])
}

// NewSigningKey parses a 32-byte big-endian private scalar. Values at or
// above the group order are reduced. The caller keeps ownership of b.
func NewSigningKey(b []byte) (*SigningKey, error) {
	if len(b) != PrivateKeySize {
		return nil, ErrInvalidPrivateKeySize
	}

	priv := secp256k1.PrivKeyFromBytes(b)
	if priv.Key.IsZero() {
		return nil, ErrInvalidPrivateKey
	}

	return &SigningKey{
		priv: priv,
		vk:   &VerifyingKey{pub: priv.PubKey()},
	}, nil
}

// Sign signs the SHA-256 digest of msg.
func (k *SigningKey) Sign(msg []byte) (Signature, error) {
	return signature.SignMessage[Signature](k, msg)
}

// SignDigest signs the output of d, which must be 32 bytes.
func (k *SigningKey) SignDigest(d hash.Hash) (Signature, error) {
	if d.Size() != DigestSize {
		return Signature{}, cryptocap.NewError()
	}
	return k.SignPrehash(d.Sum(nil))
}

// SignPrehash signs a caller-computed 32-byte digest.
func (k *SigningKey) SignPrehash(prehash []byte) (Signature, error) {
	if k.priv == nil || len(prehash) != DigestSize {
		return Signature{}, cryptocap.NewError()
	}
	return Signature{der: dcrecdsa.Sign(k.priv, prehash).Serialize()}, nil
}

// Verify checks sig with the matching verifying key.
func (k *SigningKey) Verify(msg []byte, sig Signature) error {
	return k.vk.Verify(msg, sig)
}

// VerifyingKey returns the matching public key.
func (k *SigningKey) VerifyingKey() *VerifyingKey {
	return k.vk
}

// Bytes returns the private scalar, or nil after Destroy.
func (k *SigningKey) Bytes() []byte {
	if k.priv == nil {
		return nil
	}
	return k.priv.Serialize()
}

// Destroy zeroes the private scalar. Signing fails afterwards.
func (k *SigningKey) Destroy() {
	if k.priv == nil {
		return
	}
	k.priv.Zero()
	k.priv = nil
}

// NewVerifyingKey parses a compressed (33-byte) or uncompressed (65-byte)
// public key.
func NewVerifyingKey(b []byte) (*VerifyingKey, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, errors.Join(ErrInvalidPublicKey, err)
	}
	return &VerifyingKey{pub: pub}, nil
}

// Bytes returns the compressed encoding of v.
func (v *VerifyingKey) Bytes() []byte {
	return v.pub.SerializeCompressed()
}

// Equal reports whether v and other are the same point.
func (v *VerifyingKey) Equal(other *VerifyingKey) bool {
	return other != nil && v.pub.IsEqual(other.pub)
}

// Verify checks sig over the SHA-256 digest of msg.
func (v *VerifyingKey) Verify(msg []byte, sig Signature) error {
	return signature.VerifyMessage[Signature](v, msg, sig)
}

// VerifyDigest checks sig over the output of d, which must be 32 bytes.
func (v *VerifyingKey) VerifyDigest(d hash.Hash, sig Signature) error {
	if d.Size() != DigestSize {
		return cryptocap.NewError()
	}
	return v.VerifyPrehash(d.Sum(nil), sig)
}

// VerifyPrehash checks sig over a caller-computed 32-byte digest.
func (v *VerifyingKey) VerifyPrehash(prehash []byte, sig Signature) error {
	if len(prehash) != DigestSize {
		return cryptocap.NewError()
	}

	s, err := dcrecdsa.ParseDERSignature(sig.der)
	if err != nil {
		return cryptocap.ErrorFromSource(err)
	}
	if !s.Verify(prehash, v.pub) {
		return cryptocap.NewError()
	}
	return nil
}
