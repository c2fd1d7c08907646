package suite

const (
	// DefaultContext is the HKDF context string used for domain separation.
	DefaultContext = "cryptocap:kem:v1"

	// DefaultSecretSize is the size of the shared secret handed to callers.
	DefaultSecretSize = 32
	// DefaultTagSize is the size of the key confirmation tag.
	DefaultTagSize = 32

	// MinSecretSize is the smallest shared secret a Suite will produce.
	MinSecretSize = 16
	// MinTagSize is the smallest confirmation tag a Suite will accept.
	MinTagSize = 16
	// MaxOutputSize bounds both the shared secret and the tag.
	MaxOutputSize = 64

	labelBase = "base"
	labelAuth = "auth"
)
