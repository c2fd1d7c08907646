package suite

import (
	"sync"

	circlkem "github.com/cloudflare/circl/kem"

	"github.com/vaultsandbox/cryptocap"
	"github.com/vaultsandbox/cryptocap/internal/secret"
	"github.com/vaultsandbox/cryptocap/kem"
)

// PublicKey is a recipient public key bound to a Suite.
type PublicKey struct {
	suite *Suite
	pk    circlkem.PublicKey
	raw   []byte
}

// PrivateKey is a recipient private key bound to a Suite. It implements
// kem.Decapsulator.
//
// The key is held in its packed form and unpacked for each operation.
// Destroy erases the packed form and makes later operations fail. The
// scheme's unpacked key is not erased; circl keeps it in unexported fields
// and it is released to the garbage collector when the operation returns.
// Decapsulate is safe for concurrent use; Destroy must
// not race with it.
type PrivateKey struct {
	suite  *Suite
	public *PublicKey

	mu     sync.RWMutex
	packed []byte
}

var _ kem.Decapsulator[*EncappedKey] = (*PrivateKey)(nil)

// UnmarshalPublicKey parses a packed public key.
func (s *Suite) UnmarshalPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != s.scheme.PublicKeySize() {
		return nil, ErrInvalidPublicKeySize
	}

	pk, err := s.scheme.UnmarshalBinaryPublicKey(b)
	if err != nil {
		return nil, err
	}

	return &PublicKey{suite: s, pk: pk, raw: secret.Clone(b)}, nil
}

// UnmarshalPrivateKey parses a packed private key and derives its public key.
func (s *Suite) UnmarshalPrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != s.scheme.PrivateKeySize() {
		return nil, ErrInvalidPrivateKeySize
	}

	sk, err := s.scheme.UnmarshalBinaryPrivateKey(b)
	if err != nil {
		return nil, err
	}

	_, priv, err := s.newKeyPair(sk.Public(), sk)
	return priv, err
}

func (s *Suite) newKeyPair(pk circlkem.PublicKey, sk circlkem.PrivateKey) (*PublicKey, *PrivateKey, error) {
	// MarshalBinary never fails for keys produced by the scheme itself.
	pubBytes, err := pk.MarshalBinary()
	if err != nil {
		return nil, nil, cryptocap.ErrorFromSource(err)
	}
	privBytes, err := sk.MarshalBinary()
	if err != nil {
		return nil, nil, cryptocap.ErrorFromSource(err)
	}

	public := &PublicKey{suite: s, pk: pk, raw: pubBytes}
	return public, &PrivateKey{suite: s, public: public, packed: privBytes}, nil
}

// owns reports whether pk was created by a suite with the same scheme.
func (s *Suite) owns(pk *PublicKey) bool {
	return pk != nil && pk.suite != nil && pk.suite.scheme.Name() == s.scheme.Name()
}

// Bytes returns a copy of the packed public key.
func (k *PublicKey) Bytes() []byte {
	return secret.Clone(k.raw)
}

// Equal reports whether k and other are the same key of the same scheme.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.suite.scheme.Name() == other.suite.scheme.Name() && k.pk.Equal(other.pk)
}

// Suite returns the suite the key belongs to.
func (k *PublicKey) Suite() *Suite {
	return k.suite
}

// PublicKey returns the matching public key.
func (k *PrivateKey) PublicKey() *PublicKey {
	return k.public
}

// Bytes returns a copy of the packed private key. The caller owns the copy
// and is responsible for erasing it.
func (k *PrivateKey) Bytes() []byte {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return secret.Clone(k.packed)
}

// Destroy erases the packed private key. Later operations fail.
func (k *PrivateKey) Destroy() {
	k.mu.Lock()
	defer k.mu.Unlock()
	secret.Wipe(k.packed)
	k.packed = nil
}

// Decapsulate recovers the shared secret carried by ek.
func (k *PrivateKey) Decapsulate(ek *EncappedKey) (*kem.SharedSecret, error) {
	s := k.suite
	if err := s.checkEncapped(ek); err != nil {
		return nil, err
	}

	sk, err := k.unpack()
	if err != nil {
		return nil, err
	}

	raw, err := s.scheme.Decapsulate(sk, ek.ct)
	if err != nil {
		return nil, cryptocap.ErrorFromSource(err)
	}

	return s.open(ek, raw, labelBase)
}

func (k *PrivateKey) unpack() (circlkem.PrivateKey, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.packed == nil {
		return nil, cryptocap.NewError()
	}

	sk, err := k.suite.scheme.UnmarshalBinaryPrivateKey(k.packed)
	if err != nil {
		return nil, cryptocap.ErrorFromSource(err)
	}
	return sk, nil
}
