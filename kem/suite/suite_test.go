package suite

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/cryptocap"
	"github.com/vaultsandbox/cryptocap/kem"
)

// repeatReader yields the same byte forever.
type repeatReader byte

func (r repeatReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

// failingReader always fails.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy source exhausted") }

func testSuites(t *testing.T) map[string]*Suite {
	t.Helper()

	mlkem, err := MLKEM768()
	require.NoError(t, err)
	x25519, err := X25519()
	require.NoError(t, err)

	return map[string]*Suite{
		"ML-KEM-768": mlkem,
		"X25519":     x25519,
	}
}

func TestSuite_RoundTrip(t *testing.T) {
	for name, s := range testSuites(t) {
		t.Run(name, func(t *testing.T) {
			pk, sk, err := s.GenerateKeyPair(rand.Reader)
			require.NoError(t, err)

			ek, sent, err := s.Encapsulate(rand.Reader, pk)
			require.NoError(t, err)
			defer sent.Destroy()

			assert.Len(t, ek.Bytes(), s.EncappedKeySize())
			assert.Equal(t, s.SecretSize(), sent.Len())

			received, err := sk.Decapsulate(ek)
			require.NoError(t, err)
			defer received.Destroy()

			assert.True(t, sent.Equal(received))
		})
	}
}

func TestSuite_FixedRandomness(t *testing.T) {
	for name, s := range testSuites(t) {
		t.Run(name, func(t *testing.T) {
			pk, sk, err := s.GenerateKeyPair(repeatReader(0x11))
			require.NoError(t, err)

			pk2, _, err := s.GenerateKeyPair(repeatReader(0x11))
			require.NoError(t, err)
			assert.True(t, pk.Equal(pk2))

			ek1, ss1, err := s.Encapsulate(repeatReader(0x22), pk)
			require.NoError(t, err)
			ek2, ss2, err := s.Encapsulate(repeatReader(0x22), pk)
			require.NoError(t, err)

			assert.Equal(t, ek1.Bytes(), ek2.Bytes())
			assert.True(t, ss1.Equal(ss2))

			recovered, err := sk.Decapsulate(ek1)
			require.NoError(t, err)
			assert.True(t, recovered.Equal(ss1))

			// A third party with an unrelated key pair learns nothing.
			_, stranger, err := s.GenerateKeyPair(repeatReader(0x33))
			require.NoError(t, err)
			_, err = stranger.Decapsulate(ek1)
			assert.ErrorIs(t, err, cryptocap.ErrFailed)
		})
	}
}

func TestSuite_DecapsulateRejects(t *testing.T) {
	for name, s := range testSuites(t) {
		t.Run(name, func(t *testing.T) {
			pk, sk, err := s.GenerateKeyPair(rand.Reader)
			require.NoError(t, err)
			_, other, err := s.GenerateKeyPair(rand.Reader)
			require.NoError(t, err)

			ek, ss, err := s.Encapsulate(rand.Reader, pk)
			require.NoError(t, err)
			ss.Destroy()

			wire := ek.Bytes()
			flipCT := bytes.Clone(wire)
			flipCT[0] ^= 0x01
			flipTag := bytes.Clone(wire)
			flipTag[len(flipTag)-1] ^= 0x01

			cases := []struct {
				name string
				key  *PrivateKey
				wire []byte
			}{
				{"mismatched key pair", other, wire},
				{"tampered ciphertext", sk, flipCT},
				{"tampered tag", sk, flipTag},
			}

			var messages []string
			for _, tc := range cases {
				parsed, err := s.ParseEncappedKey(tc.wire)
				require.NoError(t, err)

				got, err := tc.key.Decapsulate(parsed)
				require.ErrorIs(t, err, cryptocap.ErrFailed, tc.name)
				assert.Nil(t, got, tc.name)
				messages = append(messages, fmt.Sprintf("%v|%#v", err, err))
			}

			for _, m := range messages[1:] {
				assert.Equal(t, messages[0], m)
			}
		})
	}
}

func TestSuite_ParseEncappedKey(t *testing.T) {
	s, err := MLKEM768()
	require.NoError(t, err)

	pk, sk, err := s.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	ek, ss, err := s.Encapsulate(rand.Reader, pk)
	require.NoError(t, err)
	defer ss.Destroy()

	t.Run("round trip", func(t *testing.T) {
		parsed, err := s.ParseEncappedKey(ek.Bytes())
		require.NoError(t, err)
		assert.Equal(t, ek.Bytes(), parsed.Bytes())
		assert.Equal(t, ek.Ciphertext(), parsed.Ciphertext())

		got, err := sk.Decapsulate(parsed)
		require.NoError(t, err)
		assert.True(t, got.Equal(ss))
	})

	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"one byte short", ek.Bytes()[1:]},
		{"one byte long", append(ek.Bytes(), 0)},
		{"ciphertext only", ek.Ciphertext()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ParseEncappedKey(tt.in)
			assert.ErrorIs(t, err, cryptocap.ErrFailed)
		})
	}

	t.Run("nil encapped key", func(t *testing.T) {
		_, err := sk.Decapsulate(nil)
		assert.ErrorIs(t, err, cryptocap.ErrFailed)
	})
}

func TestSuite_KeySerialization(t *testing.T) {
	for name, s := range testSuites(t) {
		t.Run(name, func(t *testing.T) {
			pk, sk, err := s.GenerateKeyPair(rand.Reader)
			require.NoError(t, err)

			pk2, err := s.UnmarshalPublicKey(pk.Bytes())
			require.NoError(t, err)
			assert.True(t, pk.Equal(pk2))

			raw := sk.Bytes()
			sk2, err := s.UnmarshalPrivateKey(raw)
			require.NoError(t, err)
			assert.True(t, sk.PublicKey().Equal(sk2.PublicKey()))

			ek, ss, err := s.Encapsulate(rand.Reader, pk2)
			require.NoError(t, err)
			got, err := sk2.Decapsulate(ek)
			require.NoError(t, err)
			assert.True(t, ss.Equal(got))

			_, err = s.UnmarshalPublicKey(pk.Bytes()[1:])
			assert.ErrorIs(t, err, ErrInvalidPublicKeySize)
			_, err = s.UnmarshalPrivateKey(raw[1:])
			assert.ErrorIs(t, err, ErrInvalidPrivateKeySize)
		})
	}
}

func TestSuite_Destroy(t *testing.T) {
	s, err := X25519()
	require.NoError(t, err)

	pk, sk, err := s.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	ek, ss, err := s.Encapsulate(rand.Reader, pk)
	require.NoError(t, err)
	defer ss.Destroy()

	sk.Destroy()
	assert.Nil(t, sk.Bytes())

	_, err = sk.Decapsulate(ek)
	assert.ErrorIs(t, err, cryptocap.ErrFailed)
	assert.NotPanics(t, sk.Destroy)
}

func TestSuite_EntropyFailure(t *testing.T) {
	s, err := MLKEM768()
	require.NoError(t, err)

	_, _, err = s.GenerateKeyPair(failingReader{})
	require.ErrorIs(t, err, cryptocap.ErrFailed)

	pk, _, err := s.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	ek, ss, err := s.Encapsulate(failingReader{}, pk)
	require.ErrorIs(t, err, cryptocap.ErrFailed)
	assert.Nil(t, ek)
	assert.Nil(t, ss)
}

func TestSuite_CrossSuiteRecipient(t *testing.T) {
	suites := testSuites(t)
	mlkem, x25519 := suites["ML-KEM-768"], suites["X25519"]

	xpk, _, err := x25519.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	_, _, err = mlkem.Encapsulate(rand.Reader, xpk)
	assert.ErrorIs(t, err, cryptocap.ErrFailed)

	_, _, err = mlkem.Encapsulate(rand.Reader, nil)
	assert.ErrorIs(t, err, cryptocap.ErrFailed)
}

func TestSuite_ContextSeparation(t *testing.T) {
	a, err := MLKEM768()
	require.NoError(t, err)
	b, err := MLKEM768(WithContext("other-protocol:v1"))
	require.NoError(t, err)

	pk, skA, err := a.GenerateKeyPair(repeatReader(0x44))
	require.NoError(t, err)
	_, skB, err := b.GenerateKeyPair(repeatReader(0x44))
	require.NoError(t, err)

	ek, ss, err := a.Encapsulate(rand.Reader, pk)
	require.NoError(t, err)
	defer ss.Destroy()

	_, err = skA.Decapsulate(ek)
	require.NoError(t, err)

	_, err = skB.Decapsulate(ek)
	assert.ErrorIs(t, err, cryptocap.ErrFailed)
}

func TestSuite_Options(t *testing.T) {
	s, err := X25519(WithSecretSize(48), WithTagSize(16))
	require.NoError(t, err)
	assert.Equal(t, 48, s.SecretSize())

	pk, sk, err := s.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	_, ss, err := kem.Exchange[*PublicKey, *EncappedKey](s, rand.Reader, pk, sk)
	require.NoError(t, err)
	defer ss.Destroy()
	assert.Equal(t, 48, ss.Len())

	invalid := []struct {
		name string
		opt  Option
	}{
		{"empty context", WithContext("")},
		{"secret too small", WithSecretSize(MinSecretSize - 1)},
		{"secret too large", WithSecretSize(MaxOutputSize + 1)},
		{"tag too small", WithTagSize(MinTagSize - 1)},
		{"tag too large", WithTagSize(MaxOutputSize + 1)},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MLKEM768(tt.opt)
			assert.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}

func TestByName(t *testing.T) {
	s, err := ByName("ml-kem-1024")
	require.NoError(t, err)
	assert.Equal(t, "ML-KEM-1024", s.Name())

	pk, sk, err := s.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	_, ss, err := kem.Exchange[*PublicKey, *EncappedKey](s, rand.Reader, pk, sk)
	require.NoError(t, err)
	ss.Destroy()

	_, err = ByName("rot13")
	assert.ErrorIs(t, err, ErrUnknownScheme)

	_, err = New(nil)
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestMLKEM768_Name(t *testing.T) {
	s, err := MLKEM768()
	require.NoError(t, err)
	assert.Equal(t, "ML-KEM-768", s.Name())
	assert.False(t, s.SupportsAuth())
}
