package suite

import (
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/cloudflare/circl/hpke"
	circlkem "github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/kem/schemes"

	"github.com/vaultsandbox/cryptocap"
	"github.com/vaultsandbox/cryptocap/internal/secret"
	"github.com/vaultsandbox/cryptocap/kem"
)

// Suite is a circl KEM scheme with key confirmation. It is the sender side
// of the exchange: it implements kem.Encapsulator for *PublicKey recipients.
// A Suite is immutable and safe for concurrent use.
type Suite struct {
	scheme circlkem.Scheme
	cfg    suiteConfig
}

var _ kem.Encapsulator[*PublicKey, *EncappedKey] = (*Suite)(nil)

// New wraps a circl scheme.
func New(scheme circlkem.Scheme, opts ...Option) (*Suite, error) {
	if scheme == nil {
		return nil, ErrUnknownScheme
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Suite{scheme: scheme, cfg: cfg}, nil
}

// ByName looks the scheme up in circl's registry, e.g. "ML-KEM-1024" or
// "X-Wing". Matching is case-insensitive.
func ByName(name string, opts ...Option) (*Suite, error) {
	scheme := schemes.ByName(name)
	if scheme == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return New(scheme, opts...)
}

// MLKEM768 returns a suite over ML-KEM-768 (FIPS 203).
func MLKEM768(opts ...Option) (*Suite, error) {
	return New(mlkem768.Scheme(), opts...)
}

// X25519 returns a suite over DHKEM(X25519, HKDF-SHA256) (RFC 9180).
// It supports authenticated encapsulation.
func X25519(opts ...Option) (*Suite, error) {
	return New(hpke.KEM_X25519_HKDF_SHA256.Scheme(), opts...)
}

// Name returns the circl scheme name.
func (s *Suite) Name() string {
	return s.scheme.Name()
}

// SecretSize returns the size of the shared secrets this suite produces.
func (s *Suite) SecretSize() int {
	return s.cfg.secretSize
}

// EncappedKeySize returns the size of an encoded EncappedKey.
func (s *Suite) EncappedKeySize() int {
	return s.scheme.CiphertextSize() + s.cfg.tagSize
}

// SupportsAuth reports whether the scheme can authenticate senders.
func (s *Suite) SupportsAuth() bool {
	_, ok := s.scheme.(circlkem.AuthScheme)
	return ok
}

// GenerateKeyPair derives a key pair from SeedSize bytes read from rng.
func (s *Suite) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	seed := make([]byte, s.scheme.SeedSize())
	defer secret.Wipe(seed)

	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, cryptocap.ErrorFromSource(err)
	}

	pk, sk := s.scheme.DeriveKeyPair(seed)
	return s.newKeyPair(pk, sk)
}

// Encapsulate derives a fresh shared secret for recipient.
func (s *Suite) Encapsulate(rng io.Reader, recipient *PublicKey) (*EncappedKey, *kem.SharedSecret, error) {
	if !s.owns(recipient) {
		return nil, nil, cryptocap.ErrorFromSource(ErrSuiteMismatch)
	}

	seed, err := s.encapsulationSeed(rng)
	if err != nil {
		return nil, nil, err
	}
	defer secret.Wipe(seed)

	ct, raw, err := s.scheme.EncapsulateDeterministically(recipient.pk, seed)
	if err != nil {
		return nil, nil, cryptocap.ErrorFromSource(err)
	}

	return s.seal(ct, raw, labelBase)
}

// ParseEncappedKey decodes an encapped key produced by this suite.
func (s *Suite) ParseEncappedKey(b []byte) (*EncappedKey, error) {
	if len(b) != s.EncappedKeySize() {
		return nil, cryptocap.NewError()
	}

	ctSize := s.scheme.CiphertextSize()
	return &EncappedKey{
		ct:  secret.Clone(b[:ctSize]),
		tag: secret.Clone(b[ctSize:]),
	}, nil
}

func (s *Suite) encapsulationSeed(rng io.Reader) ([]byte, error) {
	seed := make([]byte, s.scheme.EncapsulationSeedSize())
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, cryptocap.ErrorFromSource(err)
	}
	return seed, nil
}

// seal turns a raw KEM result into an encapped key and a shared secret.
func (s *Suite) seal(ct, raw []byte, label string) (*EncappedKey, *kem.SharedSecret, error) {
	defer secret.Wipe(raw)

	ss, tag, err := s.deriveKeys(raw, ct, label)
	if err != nil {
		return nil, nil, cryptocap.ErrorFromSource(err)
	}

	return &EncappedKey{ct: ct, tag: tag}, kem.NewSharedSecret(ss), nil
}

// open recovers the shared secret from a raw KEM result and checks the tag.
func (s *Suite) open(ek *EncappedKey, raw []byte, label string) (*kem.SharedSecret, error) {
	defer secret.Wipe(raw)

	ss, tag, err := s.deriveKeys(raw, ek.ct, label)
	if err != nil {
		return nil, cryptocap.ErrorFromSource(err)
	}

	if subtle.ConstantTimeCompare(tag, ek.tag) != 1 {
		secret.Wipe(ss)
		return nil, cryptocap.NewError()
	}

	return kem.NewSharedSecret(ss), nil
}

// checkEncapped rejects encapped keys whose shape does not fit this suite.
func (s *Suite) checkEncapped(ek *EncappedKey) error {
	if ek == nil || len(ek.ct) != s.scheme.CiphertextSize() || len(ek.tag) != s.cfg.tagSize {
		return cryptocap.NewError()
	}
	return nil
}
