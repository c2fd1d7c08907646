package suite

import "github.com/vaultsandbox/cryptocap/internal/secret"

// EncappedKey is a KEM ciphertext followed by its key confirmation tag.
type EncappedKey struct {
	ct  []byte
	tag []byte
}

// Bytes returns a copy of the wire encoding: ciphertext || tag.
func (e *EncappedKey) Bytes() []byte {
	out := make([]byte, 0, len(e.ct)+len(e.tag))
	out = append(out, e.ct...)
	return append(out, e.tag...)
}

// Ciphertext returns a copy of the KEM ciphertext without the tag.
func (e *EncappedKey) Ciphertext() []byte {
	return secret.Clone(e.ct)
}
