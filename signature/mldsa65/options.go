package mldsa65

import "github.com/vaultsandbox/cryptocap/internal/secret"

// MaxContextSize is the longest context string FIPS 204 allows.
const MaxContextSize = 255

type keyConfig struct {
	context []byte
}

// Option configures a SigningKey or VerifyingKey.
type Option func(*keyConfig)

// WithContext sets the FIPS 204 context string. It must be at most
// MaxContextSize bytes. The default is empty.
func WithContext(ctx []byte) Option {
	return func(c *keyConfig) {
		c.context = secret.Clone(ctx)
	}
}

func newKeyConfig(opts []Option) (keyConfig, error) {
	var c keyConfig
	for _, opt := range opts {
		opt(&c)
	}
	if len(c.context) > MaxContextSize {
		return keyConfig{}, ErrContextTooLong
	}
	return c, nil
}
