package aez

import (
	"crypto/cipher"
	"errors"
)

const (
	// CAESARKeySize is the key size in bytes required by the CAESAR
	// submission wrapper.
	CAESARKeySize = 16
	// CAESARNonceSize is the nonce size in bytes required by the CAESAR
	// submission wrapper.
	CAESARNonceSize = 12
	// CAESARTagSize is the fixed tag size in bytes used by the CAESAR
	// submission wrapper.
	CAESARTagSize = 16
)

// ErrInvalidKeySize is returned by NewCAESAR when key is not exactly
// CAESARKeySize bytes.
var ErrInvalidKeySize = errors.New("aez: invalid key size")

// caesarAEAD adapts Context to crypto/cipher.AEAD, matching the fixed
// parameters (16-byte key, 12-byte nonce, 16-byte tag, single AD vector
// element) used by AEZ's CAESAR competition submission.
type caesarAEAD struct {
	ctx *Context
}

// NewCAESAR returns a cipher.AEAD implementing the CAESAR submission's
// fixed instantiation of AEZ: a 16-byte key, a 12-byte nonce, and a
// 16-byte tag. For variable key/nonce/tag sizes or multiple associated
// data vectors, use Setup and Context.Encrypt/Decrypt directly.
func NewCAESAR(key []byte) (cipher.AEAD, error) {
	if len(key) != CAESARKeySize {
		return nil, ErrInvalidKeySize
	}
	return &caesarAEAD{ctx: Setup(key)}, nil
}

func (a *caesarAEAD) NonceSize() int {
	return CAESARNonceSize
}

func (a *caesarAEAD) Overhead() int {
	return CAESARTagSize
}

func (a *caesarAEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != CAESARNonceSize {
		panic("aez: invalid nonce size")
	}
	// The CAESAR adapter always hashes exactly one AD vector element,
	// even when it's empty -- unlike the native Context API, which
	// treats a nil/empty ad slice as a zero-length vector.
	ad := [][]byte{additionalData}
	return a.ctx.Encrypt(dst, nonce, ad, CAESARTagSize, plaintext)
}

func (a *caesarAEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != CAESARNonceSize {
		panic("aez: invalid nonce size")
	}
	ad := [][]byte{additionalData}
	return a.ctx.Decrypt(dst, nonce, ad, CAESARTagSize, ciphertext)
}
