package kem

import (
	"crypto/subtle"
	"runtime"

	"github.com/vaultsandbox/cryptocap/internal/secret"
)

// redacted is how a SharedSecret renders.
const redacted = "[REDACTED]"

// SharedSecret is symmetric key material produced by a KEM.
//
// The backing buffer is overwritten by Destroy. If a SharedSecret becomes
// unreachable without Destroy being called, the buffer is overwritten when
// the garbage collector reclaims it; do not rely on that for timely erasure.
type SharedSecret struct {
	b []byte
}

// NewSharedSecret wraps b. The SharedSecret takes ownership of b; the caller
// must not use or retain it afterwards.
func NewSharedSecret(b []byte) *SharedSecret {
	s := &SharedSecret{b: b}
	runtime.AddCleanup(s, secret.Wipe, b)
	return s
}

// Bytes returns the secret. The slice aliases the SharedSecret and is
// zeroed by Destroy; copy it if it must outlive the SharedSecret.
func (s *SharedSecret) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len returns the length of the secret in bytes, or 0 once destroyed.
func (s *SharedSecret) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Equal reports in constant time whether s and other hold the same secret.
// Destroyed secrets are never equal to anything.
func (s *SharedSecret) Equal(other *SharedSecret) bool {
	if s.Len() == 0 || other.Len() == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(s.b, other.b) == 1
}

// Destroy overwrites the secret with zeros. It is safe to call more than once.
func (s *SharedSecret) Destroy() {
	if s == nil {
		return
	}
	secret.Wipe(s.b)
	s.b = nil
}

func (s *SharedSecret) String() string {
	return redacted
}

// GoString keeps %#v from printing key material.
func (s *SharedSecret) GoString() string {
	return "kem.SharedSecret{" + redacted + "}"
}
