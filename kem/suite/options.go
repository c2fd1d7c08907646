package suite

import "fmt"

// suiteConfig holds configuration for a Suite.
type suiteConfig struct {
	context    string
	secretSize int
	tagSize    int
}

// Option configures a Suite.
type Option func(*suiteConfig)

// WithContext sets the HKDF context string. Both sides must agree on it.
func WithContext(context string) Option {
	return func(c *suiteConfig) {
		c.context = context
	}
}

// WithSecretSize sets the size of the shared secret in bytes.
func WithSecretSize(size int) Option {
	return func(c *suiteConfig) {
		c.secretSize = size
	}
}

// WithTagSize sets the size of the key confirmation tag in bytes.
func WithTagSize(size int) Option {
	return func(c *suiteConfig) {
		c.tagSize = size
	}
}

func defaultConfig() suiteConfig {
	return suiteConfig{
		context:    DefaultContext,
		secretSize: DefaultSecretSize,
		tagSize:    DefaultTagSize,
	}
}

func (c suiteConfig) validate() error {
	if c.context == "" {
		return fmt.Errorf("%w: empty context", ErrInvalidOption)
	}
	if c.secretSize < MinSecretSize || c.secretSize > MaxOutputSize {
		return fmt.Errorf("%w: secret size %d, want %d..%d", ErrInvalidOption, c.secretSize, MinSecretSize, MaxOutputSize)
	}
	if c.tagSize < MinTagSize || c.tagSize > MaxOutputSize {
		return fmt.Errorf("%w: tag size %d, want %d..%d", ErrInvalidOption, c.tagSize, MinTagSize, MaxOutputSize)
	}
	return nil
}
