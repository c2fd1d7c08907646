// Package schnorr implements the signature capabilities for BIP-340 Schnorr
// signatures over secp256k1 using github.com/btcsuite/btcd/btcec/v2.
//
// BIP-340 signs 32-byte digests. Sign and Verify hash the message with
// SHA-256; the digest methods accept any hash.Hash with a 32-byte output,
// such as SHA3-256 or BLAKE2b-256. Randomized signing feeds 32 bytes from the
// caller's rng into the nonce derivation as auxiliary randomness.
package schnorr

import (
	"crypto/subtle"
	"errors"
	"hash"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	bip340 "github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/vaultsandbox/cryptocap"
	"github.com/vaultsandbox/cryptocap/internal/secret"
	"github.com/vaultsandbox/cryptocap/signature"
	"github.com/vaultsandbox/cryptocap/signature/hazmat"
)

const (
	// PrivateKeySize is the size of a secp256k1 private scalar in bytes.
	PrivateKeySize = 32
	// PublicKeySize is the size of an x-only public key in bytes.
	PublicKeySize = 32
	// DigestSize is the digest length BIP-340 signs.
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
	_ signature.SignerVerifier[Signature]         = (*SigningKey)(nil)
	_ signature.RandomizedSigner[Signature]       = (*SigningKey)(nil)
	_ signature.DigestSigner[Signature]           = (*SigningKey)(nil)
	_ signature.RandomizedDigestSigner[Signature] = (*SigningKey)(nil)
	_ signature.Keypair[*VerifyingKey]            = (*SigningKey)(nil)
	_ hazmat.PrehashSigner[Signature]             = (*SigningKey)(nil)
	_ hazmat.RandomizedPrehashSigner[Signature]   = (*SigningKey)(nil)

	_ signature.Verifier[Signature]       = (*VerifyingKey)(nil)
	_ signature.DigestVerifier[Signature] = (*VerifyingKey)(nil)
	_ hazmat.PrehashVerifier[Signature]   = (*VerifyingKey)(nil)

	_ signature.PrehashSignature = Signature{}
	_ signature.Encoding         = Signature{}
)

// SigningKey is a secp256k1 private key used for BIP-340 signing.
type SigningKey struct {
	priv *btcec.PrivateKey
	vk   *VerifyingKey
}

// VerifyingKey is a BIP-340 x-only public key.
type VerifyingKey struct {
	pub *btcec.PublicKey
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

	priv, pub := btcec.PrivKeyFromBytes(b)
	if priv.Key.IsZero() {
		return nil, ErrInvalidPrivateKey
	}

	return &SigningKey{
		priv: priv,
		vk:   &VerifyingKey{pub: pub},
	}, nil
}

// Sign signs the SHA-256 digest of msg.
func (k *SigningKey) Sign(msg []byte) (Signature, error) {
	return signature.SignMessage[Signature](k, msg)
}

// SignWithRand signs the SHA-256 digest of msg with auxiliary randomness
// read from rng.
func (k *SigningKey) SignWithRand(rng io.Reader, msg []byte) (Signature, error) {
	d := Signature{}.NewDigest()
	d.Write(msg)
	return k.SignDigestWithRand(rng, d)
}

// SignDigest signs the output of d, which must be 32 bytes.
func (k *SigningKey) SignDigest(d hash.Hash) (Signature, error) {
	if d.Size() != DigestSize {
		return Signature{}, cryptocap.NewError()
	}
	return k.SignPrehash(d.Sum(nil))
}

// SignDigestWithRand signs the output of d with auxiliary randomness.
func (k *SigningKey) SignDigestWithRand(rng io.Reader, d hash.Hash) (Signature, error) {
	if d.Size() != DigestSize {
		return Signature{}, cryptocap.NewError()
	}
	return k.SignPrehashWithRand(rng, d.Sum(nil))
}

// SignPrehash signs a caller-computed 32-byte digest.
func (k *SigningKey) SignPrehash(prehash []byte) (Signature, error) {
	return k.sign(prehash)
}

// SignPrehashWithRand signs a caller-computed 32-byte digest with 32 bytes of
// auxiliary randomness read from rng.
func (k *SigningKey) SignPrehashWithRand(rng io.Reader, prehash []byte) (Signature, error) {
	var aux [32]byte
	if _, err := io.ReadFull(rng, aux[:]); err != nil {
		return Signature{}, cryptocap.ErrorFromSource(err)
	}
	return k.sign(prehash, bip340.CustomNonce(aux))
}

func (k *SigningKey) sign(prehash []byte, opts ...bip340.SignOption) (Signature, error) {
	if k.priv == nil || len(prehash) != DigestSize {
		return Signature{}, cryptocap.NewError()
	}

	s, err := bip340.Sign(k.priv, prehash, opts...)
	if err != nil {
		return Signature{}, cryptocap.ErrorFromSource(err)
	}

	var sig Signature
	copy(sig[:], s.Serialize())
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

// NewVerifyingKey parses a 32-byte x-only public key.
func NewVerifyingKey(b []byte) (*VerifyingKey, error) {
	pub, err := bip340.ParsePubKey(b)
	if err != nil {
		return nil, errors.Join(ErrInvalidPublicKey, err)
	}
	return &VerifyingKey{pub: pub}, nil
}

// Bytes returns the x-only encoding of v.
func (v *VerifyingKey) Bytes() []byte {
	return bip340.SerializePubKey(v.pub)
}

// Equal reports whether v and other have the same x-only encoding.
func (v *VerifyingKey) Equal(other *VerifyingKey) bool {
	return other != nil && subtle.ConstantTimeCompare(v.Bytes(), other.Bytes()) == 1
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

	s, err := bip340.ParseSignature(sig[:])
	if err != nil {
		return cryptocap.ErrorFromSource(err)
	}
	if !s.Verify(prehash, v.pub) {
		return cryptocap.NewError()
	}
	return nil
}
