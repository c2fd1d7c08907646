// Package mldsa65 implements the signature capabilities for ML-DSA-65
// (FIPS 204) using github.com/cloudflare/circl/sign/mldsa/mldsa65.
//
// Signing is deterministic. The FIPS 204 context string is fixed per key
// with [WithContext]; a signature made under one context does not verify
// under another.
//
//	sk, err := mldsa65.GenerateKey(rand.Reader, mldsa65.WithContext([]byte("invoice")))
//	sig, err := sk.Sign(msg)
//	err = sk.VerifyingKey().Verify(msg, sig)
//
// The secret key is held packed and expanded only for the duration of a
// Sign call. Destroy wipes it.
package mldsa65
