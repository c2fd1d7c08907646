package signature

import "hash"

// PrehashSignature is implemented by signature types that are computed over
// a digest of the message. NewDigest must be callable on the zero value and
// returns the digest the scheme hashes messages with.
type PrehashSignature interface {
	NewDigest() hash.Hash
}

// SignMessage hashes msg with the digest of S and signs the result.
func SignMessage[S PrehashSignature](ds DigestSigner[S], msg []byte) (S, error) {
	var zero S
	d := zero.NewDigest()
	d.Write(msg)
	return ds.SignDigest(d)
}

// VerifyMessage hashes msg with the digest of S and verifies sig over it.
func VerifyMessage[S PrehashSignature](dv DigestVerifier[S], msg []byte, sig S) error {
	var zero S
	d := zero.NewDigest()
	d.Write(msg)
	return dv.VerifyDigest(d, sig)
}

// SignerFromDigest returns a Signer that prehashes messages for ds.
func SignerFromDigest[S PrehashSignature](ds DigestSigner[S]) Signer[S] {
	return digestSigner[S]{ds: ds}
}

// VerifierFromDigest returns a Verifier that prehashes messages for dv.
func VerifierFromDigest[S PrehashSignature](dv DigestVerifier[S]) Verifier[S] {
	return digestVerifier[S]{dv: dv}
}

type digestSigner[S PrehashSignature] struct {
	ds DigestSigner[S]
}

func (s digestSigner[S]) Sign(msg []byte) (S, error) {
	return SignMessage(s.ds, msg)
}

type digestVerifier[S PrehashSignature] struct {
	dv DigestVerifier[S]
}

func (v digestVerifier[S]) Verify(msg []byte, sig S) error {
	return VerifyMessage(v.dv, msg, sig)
}
