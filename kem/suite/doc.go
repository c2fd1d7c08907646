// Package suite implements the kem capabilities on top of the KEM schemes in
// github.com/cloudflare/circl.
//
// # Key Confirmation
//
// Many KEMs, ML-KEM among them, use implicit rejection: decapsulating with
// the wrong private key yields a pseudo-random secret instead of an error.
// A Suite adds explicit key confirmation so that a mismatched key or a
// tampered encapped key is reported as a *cryptocap.Error.
//
// The raw KEM secret is expanded with HKDF-SHA-512:
//
//   - Salt: SHA-256 hash of the KEM ciphertext
//   - Info: context || scheme name length (4 bytes BE) || scheme name || label
//   - Output: shared secret || confirmation tag
//
// The encapped key on the wire is the KEM ciphertext followed by the tag.
// Decapsulation recomputes the tag and compares it in constant time.
//
// # Schemes
//
// [MLKEM768] and [X25519] construct the common suites; [ByName] accepts any
// name known to circl's kem/schemes registry. Schemes that support sender
// authentication (the HPKE DHKEMs) also provide [AuthSender] and
// [AuthReceiver].
//
// # Randomness
//
// Key generation and encapsulation read exactly the seed sizes the scheme
// declares from the io.Reader they are given. A fixed reader therefore gives
// reproducible keys and encapped keys, which is useful for test vectors and
// never appropriate in production.
package suite
