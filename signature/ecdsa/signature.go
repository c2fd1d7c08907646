package ecdsa

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"hash"

	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/vaultsandbox/cryptocap"
	"github.com/vaultsandbox/cryptocap/internal/secret"
)

// MaxSignatureSize is the longest DER encoding of a secp256k1 signature.
const MaxSignatureSize = 72

// Signature is a DER-encoded ECDSA signature over secp256k1. Its length
// varies, so it is not array-backed like the other signature types.
type Signature struct {
	der []byte
}

// SignatureFromBytes parses a DER-encoded signature. It accepts only the
// canonical low-S encoding.
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if err := sig.UnmarshalBinary(b); err != nil {
		return Signature{}, err
	}
	return sig, nil
}

// NewDigest returns the digest Sign and Verify hash messages with.
func (Signature) NewDigest() hash.Hash {
	return sha256.New()
}

// Bytes returns a copy of the DER encoding.
func (s Signature) Bytes() []byte {
	return secret.Clone(s.der)
}

// Equal reports in constant time whether s and other have the same encoding.
func (s Signature) Equal(other Signature) bool {
	return subtle.ConstantTimeCompare(s.der, other.der) == 1
}

// String returns the unpadded URL-safe base64 encoding of s.
func (s Signature) String() string {
	return base64.RawURLEncoding.EncodeToString(s.der)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s Signature) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Signature) UnmarshalBinary(b []byte) error {
	if len(b) > MaxSignatureSize {
		return cryptocap.NewError()
	}
	if _, err := dcrecdsa.ParseDERSignature(b); err != nil {
		return cryptocap.ErrorFromSource(err)
	}
	s.der = secret.Clone(b)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Signature) UnmarshalText(text []byte) error {
	b, err := base64.RawURLEncoding.DecodeString(string(text))
	if err != nil {
		return cryptocap.ErrorFromSource(err)
	}
	return s.UnmarshalBinary(b)
}
