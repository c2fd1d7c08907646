package suite

import (
	"io"

	circlkem "github.com/cloudflare/circl/kem"

	"github.com/vaultsandbox/cryptocap"
	"github.com/vaultsandbox/cryptocap/internal/secret"
	"github.com/vaultsandbox/cryptocap/kem"
)

// AuthSender encapsulates on behalf of a sender key pair, so the recipient
// can check who produced the encapped key.
type AuthSender struct {
	suite  *Suite
	scheme circlkem.AuthScheme
	sender *PrivateKey
}

// AuthReceiver decapsulates encapped keys from one expected sender.
type AuthReceiver struct {
	key    *PrivateKey
	scheme circlkem.AuthScheme
	sender *PublicKey
}

var (
	_ kem.Encapsulator[*PublicKey, *EncappedKey] = (*AuthSender)(nil)
	_ kem.Decapsulator[*EncappedKey]             = (*AuthReceiver)(nil)
)

// AuthSender binds the sender's private key for authenticated encapsulation.
func (s *Suite) AuthSender(sender *PrivateKey) (*AuthSender, error) {
	scheme, ok := s.scheme.(circlkem.AuthScheme)
	if !ok {
		return nil, ErrAuthUnsupported
	}
	if sender == nil || !s.owns(sender.public) {
		return nil, ErrSuiteMismatch
	}
	return &AuthSender{suite: s, scheme: scheme, sender: sender}, nil
}

// AuthReceiver returns a decapsulator that only accepts encapped keys
// produced by sender's AuthSender.
func (k *PrivateKey) AuthReceiver(sender *PublicKey) (*AuthReceiver, error) {
	scheme, ok := k.suite.scheme.(circlkem.AuthScheme)
	if !ok {
		return nil, ErrAuthUnsupported
	}
	if !k.suite.owns(sender) {
		return nil, ErrSuiteMismatch
	}
	return &AuthReceiver{key: k, scheme: scheme, sender: sender}, nil
}

// Encapsulate derives a fresh shared secret for recipient, authenticated by
// the sender key.
func (a *AuthSender) Encapsulate(rng io.Reader, recipient *PublicKey) (*EncappedKey, *kem.SharedSecret, error) {
	s := a.suite
	if !s.owns(recipient) {
		return nil, nil, cryptocap.ErrorFromSource(ErrSuiteMismatch)
	}

	sk, err := a.sender.unpack()
	if err != nil {
		return nil, nil, err
	}

	seed, err := s.encapsulationSeed(rng)
	if err != nil {
		return nil, nil, err
	}
	defer secret.Wipe(seed)

	ct, raw, err := a.scheme.AuthEncapsulateDeterministically(recipient.pk, sk, seed)
	if err != nil {
		return nil, nil, cryptocap.ErrorFromSource(err)
	}

	return s.seal(ct, raw, labelAuth)
}

// Decapsulate recovers the shared secret carried by ek. It fails unless ek
// was produced for this key by the expected sender.
func (r *AuthReceiver) Decapsulate(ek *EncappedKey) (*kem.SharedSecret, error) {
	s := r.key.suite
	if err := s.checkEncapped(ek); err != nil {
		return nil, err
	}

	sk, err := r.key.unpack()
	if err != nil {
		return nil, err
	}

	raw, err := r.scheme.AuthDecapsulate(sk, ek.ct, r.sender.pk)
	if err != nil {
		return nil, cryptocap.ErrorFromSource(err)
	}

	return s.open(ek, raw, labelAuth)
}
