package suite

import "errors"

var (
	// ErrUnknownScheme is returned when a scheme name is not registered.
	ErrUnknownScheme = errors.New("unknown KEM scheme")

	// ErrInvalidOption is returned when an option value is out of range.
	ErrInvalidOption = errors.New("invalid suite option")

	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidPrivateKeySize is returned when the private key size is invalid.
	ErrInvalidPrivateKeySize = errors.New("invalid private key size")

	// ErrAuthUnsupported is returned when the scheme cannot authenticate senders.
	ErrAuthUnsupported = errors.New("scheme does not support authenticated encapsulation")

	// ErrSuiteMismatch is returned when a key belongs to a different suite.
	ErrSuiteMismatch = errors.New("key belongs to a different suite")
)
