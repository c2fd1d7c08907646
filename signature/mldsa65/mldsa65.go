package mldsa65

import (
	"crypto/subtle"
	"errors"
	"io"
	"sync"

	mldsa "github.com/cloudflare/circl/sign/mldsa/mldsa65"

	"github.com/vaultsandbox/cryptocap"
	"github.com/vaultsandbox/cryptocap/internal/secret"
	"github.com/vaultsandbox/cryptocap/signature"
)

// ML-DSA-65 sizes in bytes.
const (
	SeedSize       = mldsa.SeedSize
	PublicKeySize  = mldsa.PublicKeySize
	PrivateKeySize = mldsa.PrivateKeySize
)

var (
	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidPublicKey is returned when a public key does not unpack.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKeySize is returned when the private key size is invalid.
	ErrInvalidPrivateKeySize = errors.New("invalid private key size")

	// ErrInvalidPrivateKey is returned when a private key does not unpack.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrContextTooLong is returned when a context exceeds MaxContextSize.
	ErrContextTooLong = errors.New("context too long")
)

var (
	_ signature.SignerVerifier[Signature] = (*SigningKey)(nil)
	_ signature.Keypair[*VerifyingKey]    = (*SigningKey)(nil)
	_ signature.Verifier[Signature]       = (*VerifyingKey)(nil)
	_ signature.Encoding                  = Signature{}
)

// SigningKey is an ML-DSA-65 private key bound to a context string.
// It is safe for concurrent use.
type SigningKey struct {
	mu     sync.RWMutex
	packed []byte
	vk     *VerifyingKey
	cfg    keyConfig
}

// VerifyingKey is an ML-DSA-65 public key bound to a context string.
type VerifyingKey struct {
	pk  *mldsa.PublicKey
	raw []byte
	cfg keyConfig
}

// GenerateKey reads a seed from rng and derives a signing key from it.
func GenerateKey(rng io.Reader, opts ...Option) (*SigningKey, error) {
	cfg, err := newKeyConfig(opts)
	if err != nil {
		return nil, err
	}

	var seed [SeedSize]byte
	defer secret.Wipe(seed[:])

	if _, err := io.ReadFull(rng, seed[:]); err != nil {
		return nil, cryptocap.ErrorFromSource(err)
	}

	pk, sk := mldsa.NewKeyFromSeed(&seed)
	defer func() { *sk = mldsa.PrivateKey{} }()

	return newSigningKey(pk, sk, cfg)
}

// NewSigningKey parses a packed private key. The caller keeps ownership of b.
func NewSigningKey(b []byte, opts ...Option) (*SigningKey, error) {
	cfg, err := newKeyConfig(opts)
	if err != nil {
		return nil, err
	}
	if len(b) != PrivateKeySize {
		return nil, ErrInvalidPrivateKeySize
	}

	sk := new(mldsa.PrivateKey)
	defer func() { *sk = mldsa.PrivateKey{} }()

	if err := sk.UnmarshalBinary(b); err != nil {
		return nil, ErrInvalidPrivateKey
	}
	pk, ok := sk.Public().(*mldsa.PublicKey)
	if !ok {
		return nil, ErrInvalidPrivateKey
	}
	return newSigningKey(pk, sk, cfg)
}

// newSigningKey packs sk and pk. circl's pk shares state with sk, so the
// verifying key is parsed afresh from its encoding before the caller wipes sk.
func newSigningKey(pk *mldsa.PublicKey, sk *mldsa.PrivateKey, cfg keyConfig) (*SigningKey, error) {
	packed, err := sk.MarshalBinary()
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	raw, err := pk.MarshalBinary()
	if err != nil {
		secret.Wipe(packed)
		return nil, ErrInvalidPrivateKey
	}

	vk := new(mldsa.PublicKey)
	if err := vk.UnmarshalBinary(raw); err != nil {
		secret.Wipe(packed)
		return nil, ErrInvalidPrivateKey
	}

	return &SigningKey{
		packed: packed,
		vk: &VerifyingKey{
			pk:  vk,
			raw: raw,
			cfg: cfg,
		},
		cfg: cfg,
	}, nil
}

// Sign signs msg under the key's context.
func (k *SigningKey) Sign(msg []byte) (Signature, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.packed == nil {
		return Signature{}, cryptocap.NewError()
	}

	sk := new(mldsa.PrivateKey)
	defer func() { *sk = mldsa.PrivateKey{} }()

	if err := sk.UnmarshalBinary(k.packed); err != nil {
		return Signature{}, cryptocap.ErrorFromSource(err)
	}

	var sig Signature
	if err := mldsa.SignTo(sk, msg, k.cfg.context, false, sig[:]); err != nil {
		return Signature{}, cryptocap.ErrorFromSource(err)
	}
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

// Bytes returns a copy of the packed private key, or nil after Destroy.
func (k *SigningKey) Bytes() []byte {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.packed == nil {
		return nil
	}
	return secret.Clone(k.packed)
}

// Destroy wipes the packed private key. Sign fails afterwards.
func (k *SigningKey) Destroy() {
	k.mu.Lock()
	defer k.mu.Unlock()

	secret.Wipe(k.packed)
	k.packed = nil
}

// NewVerifyingKey parses a public key. The context must match the one the
// signer used.
func NewVerifyingKey(b []byte, opts ...Option) (*VerifyingKey, error) {
	cfg, err := newKeyConfig(opts)
	if err != nil {
		return nil, err
	}
	if len(b) != PublicKeySize {
		return nil, ErrInvalidPublicKeySize
	}

	pk := new(mldsa.PublicKey)
	if err := pk.UnmarshalBinary(b); err != nil {
		return nil, errors.Join(ErrInvalidPublicKey, err)
	}

	return &VerifyingKey{
		pk:  pk,
		raw: secret.Clone(b),
		cfg: cfg,
	}, nil
}

// Bytes returns a copy of the packed public key.
func (v *VerifyingKey) Bytes() []byte {
	return secret.Clone(v.raw)
}

// Equal reports whether v and other hold the same public key. Contexts are
// not compared.
func (v *VerifyingKey) Equal(other *VerifyingKey) bool {
	return other != nil && subtle.ConstantTimeCompare(v.raw, other.raw) == 1
}

// Verify checks that sig is a valid signature of msg under the key's context.
func (v *VerifyingKey) Verify(msg []byte, sig Signature) error {
	if !mldsa.Verify(v.pk, msg, v.cfg.context, sig[:]) {
		return cryptocap.NewError()
	}
	return nil
}
