// Package secret holds helpers for erasing key material.
package secret

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	clear(b)
}

// Clone returns a copy of b that the caller owns.
func Clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
