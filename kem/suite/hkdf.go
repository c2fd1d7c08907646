package suite

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/vaultsandbox/cryptocap/internal/secret"
)

// deriveKeys expands a raw KEM secret into the caller's shared secret and
// the key confirmation tag.
//
// The key derivation uses:
//   - IKM (input key material): the raw KEM shared secret
//   - Salt: SHA-256 hash of the KEM ciphertext
//   - Info: context || name length (4 bytes BE) || name || label
func (s *Suite) deriveKeys(raw, ct []byte, label string) (ss, tag []byte, err error) {
	saltHash := sha256.Sum256(ct)

	name := s.scheme.Name()
	nameLength := make([]byte, 4)
	binary.BigEndian.PutUint32(nameLength, uint32(len(name)))

	info := make([]byte, 0, len(s.cfg.context)+4+len(name)+len(label))
	info = append(info, s.cfg.context...)
	info = append(info, nameLength...)
	info = append(info, name...)
	info = append(info, label...)

	reader := hkdf.New(sha512.New, raw, saltHash[:], info)
	out := make([]byte, s.cfg.secretSize+s.cfg.tagSize)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, nil, err
	}

	ss = secret.Clone(out[:s.cfg.secretSize])
	secret.Wipe(out[:s.cfg.secretSize])
	tag = out[s.cfg.secretSize:]

	return ss, tag, nil
}
