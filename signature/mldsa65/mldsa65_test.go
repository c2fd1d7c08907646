package mldsa65

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/cryptocap"
	"github.com/vaultsandbox/cryptocap/signature"
)

func newKey(t *testing.T, opts ...Option) *SigningKey {
	t.Helper()
	sk, err := GenerateKey(rand.Reader, opts...)
	require.NoError(t, err)
	return sk
}

func TestSignVerify(t *testing.T) {
	sk := newKey(t)
	msg := []byte("hello")

	sig, err := sk.Sign(msg)
	require.NoError(t, err)

	assert.NoError(t, sk.Verify(msg, sig))
	assert.NoError(t, sk.VerifyingKey().Verify(msg, sig))
}

func TestVerifyWithOwnKey(t *testing.T) {
	msg := []byte("hello")

	generated := newKey(t)
	restored, err := NewSigningKey(generated.Bytes())
	require.NoError(t, err)
	fromSeed, err := GenerateKey(bytes.NewReader(bytes.Repeat([]byte{9}, SeedSize)), WithContext([]byte("ctx")))
	require.NoError(t, err)

	tests := []struct {
		name string
		sk   *SigningKey
	}{
		{"generated", generated},
		{"restored", restored},
		{"from seed with context", fromSeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := tt.sk.Sign(msg)
			require.NoError(t, err)

			assert.NoError(t, tt.sk.Verify(msg, sig))
			assert.NoError(t, tt.sk.VerifyingKey().Verify(msg, sig))
			assert.ErrorIs(t, tt.sk.VerifyingKey().Verify([]byte("hellp"), sig), cryptocap.ErrFailed)
		})
	}
}

func TestGenerateKeyFromSeedIsDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, SeedSize)

	a, err := GenerateKey(bytes.NewReader(seed))
	require.NoError(t, err)
	b, err := GenerateKey(bytes.NewReader(seed))
	require.NoError(t, err)

	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.True(t, a.VerifyingKey().Equal(b.VerifyingKey()))

	sa := signature.MustSign[Signature](a, []byte("msg"))
	sb := signature.MustSign[Signature](b, []byte("msg"))
	assert.True(t, sa.Equal(sb))
}

func TestVerifyRejects(t *testing.T) {
	sk := newKey(t)
	other := newKey(t)
	msg := []byte("hello")

	sig, err := sk.Sign(msg)
	require.NoError(t, err)

	flippedSig := sig
	flippedSig[100] ^= 0x01

	ctxKey, err := NewVerifyingKey(sk.VerifyingKey().Bytes(), WithContext([]byte("other")))
	require.NoError(t, err)

	require.NoError(t, sk.VerifyingKey().Verify(msg, sig))
	require.NoError(t, other.Verify(msg, signature.MustSign[Signature](other, msg)))

	tests := []struct {
		name string
		vk   *VerifyingKey
		msg  []byte
		sig  Signature
	}{
		{"hellp", sk.VerifyingKey(), []byte("hellp"), sig},
		{"signature bit flip", sk.VerifyingKey(), msg, flippedSig},
		{"wrong key", other.VerifyingKey(), msg, sig},
		{"wrong context", ctxKey, msg, sig},
	}

	var rendered []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vk.Verify(tt.msg, tt.sig)
			require.Error(t, err)
			assert.ErrorIs(t, err, cryptocap.ErrFailed)
			rendered = append(rendered, fmt.Sprintf("%v|%+v|%#v", err, err, err))
		})
	}

	for _, r := range rendered {
		assert.Equal(t, rendered[0], r)
	}
}

func TestContext(t *testing.T) {
	ctx := []byte("invoice")
	sk := newKey(t, WithContext(ctx))
	msg := []byte("pay 10")

	sig, err := sk.Sign(msg)
	require.NoError(t, err)
	require.NoError(t, sk.VerifyingKey().Verify(msg, sig))

	vk, err := NewVerifyingKey(sk.VerifyingKey().Bytes(), WithContext(ctx))
	require.NoError(t, err)
	assert.NoError(t, vk.Verify(msg, sig))

	plain, err := NewVerifyingKey(sk.VerifyingKey().Bytes())
	require.NoError(t, err)
	assert.ErrorIs(t, plain.Verify(msg, sig), cryptocap.ErrFailed)

	// The option copies its argument.
	ctx[0] = 'X'
	assert.NoError(t, vk.Verify(msg, sig))
}

func TestContextTooLong(t *testing.T) {
	_, err := GenerateKey(rand.Reader, WithContext(make([]byte, MaxContextSize+1)))
	assert.ErrorIs(t, err, ErrContextTooLong)

	_, err = NewVerifyingKey(make([]byte, PublicKeySize), WithContext(make([]byte, MaxContextSize+1)))
	assert.ErrorIs(t, err, ErrContextTooLong)

	_, err = GenerateKey(rand.Reader, WithContext(make([]byte, MaxContextSize)))
	assert.NoError(t, err)
}

func TestSigningKeySerialization(t *testing.T) {
	sk := newKey(t)

	restored, err := NewSigningKey(sk.Bytes())
	require.NoError(t, err)
	assert.True(t, restored.VerifyingKey().Equal(sk.VerifyingKey()))

	msg := []byte("serialized")
	sig, err := restored.Sign(msg)
	require.NoError(t, err)
	assert.NoError(t, sk.Verify(msg, sig))

	_, err = NewSigningKey(make([]byte, PrivateKeySize-1))
	assert.ErrorIs(t, err, ErrInvalidPrivateKeySize)

	_, err = NewVerifyingKey(make([]byte, PublicKeySize+1))
	assert.ErrorIs(t, err, ErrInvalidPublicKeySize)
	assert.NotErrorIs(t, err, ErrInvalidPublicKey)
}

func TestSignatureBytesRoundTrip(t *testing.T) {
	sk := newKey(t)
	sig, err := sk.Sign([]byte("round trip"))
	require.NoError(t, err)
	require.Len(t, sig.Bytes(), SignatureSize)

	parsed, err := signature.Decode[Signature](sig.Bytes())
	require.NoError(t, err)
	assert.True(t, parsed.Equal(sig))

	_, err = SignatureFromBytes(sig.Bytes()[:SignatureSize-1])
	assert.ErrorIs(t, err, cryptocap.ErrFailed)
}

func TestDestroy(t *testing.T) {
	sk := newKey(t)
	sk.Destroy()
	sk.Destroy()

	_, err := sk.Sign([]byte("msg"))
	assert.ErrorIs(t, err, cryptocap.ErrFailed)
	assert.Nil(t, sk.Bytes())
}

func TestConcurrentSign(t *testing.T) {
	sk := newKey(t)
	msg := []byte("concurrent")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sig, err := sk.Sign(msg)
			if assert.NoError(t, err) {
				assert.NoError(t, sk.Verify(msg, sig))
			}
		}()
	}
	wg.Wait()
}

func TestGenerateKeyEntropyFailure(t *testing.T) {
	_, err := GenerateKey(bytes.NewReader(nil))
	assert.ErrorIs(t, err, cryptocap.ErrFailed)
}
