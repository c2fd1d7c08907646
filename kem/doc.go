// Package kem defines capabilities for key encapsulation mechanisms.
//
// A sender calls [Encapsulator.Encapsulate] with a randomness source and the
// recipient's public key. It gets back an [EncappedKey] to transmit and a
// [SharedSecret] to use locally. The recipient calls
// [Decapsulator.Decapsulate] on the encapped key and recovers the same
// secret, or gets a *cryptocap.Error if the key pair does not match or the
// encapped key was altered. Decapsulation failures carry no detail, for the
// same reason signature verification failures do not.
//
// Shared secrets erase themselves. Scope them explicitly:
//
//	ek, ss, err := sender.Encapsulate(rand.Reader, recipientPK)
//	if err != nil {
//	    return err
//	}
//	defer ss.Destroy()
package kem
