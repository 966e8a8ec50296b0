// Package aez implements AEZ v4/v5, a wide-block authenticated-encryption
// construction that is robust to nonce reuse: any modification to a
// ciphertext randomizes the entire decrypted plaintext, and AEZ never
// reports a specific failure reason beyond "authentication failed".
//
// See: http://web.cs.ucdavis.edu/~rogaway/aez/
package aez

import (
	"crypto/subtle"

	"github.com/go-aez/aez/internal/core"
)

// Context holds extracted key material and round-function state for
// repeated Encrypt/Decrypt calls. A Context is safe for concurrent use;
// see internal/core.Context's doc comment for how the AD-hash cache is
// synchronized.
type Context struct {
	inner *core.Context
}

// Setup extracts (I, J, L) from key (any length, up to 4095 bytes) and
// returns a Context ready for Encrypt/Decrypt. The default backend is the
// scalar, non-constant-time round function; pass WithConstantTime to
// select the bitsliced backend instead.
func Setup(key []byte, opts ...Option) *Context {
	o := options{backend: core.BackendVartime}
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{inner: core.Setup(key, o.backend)}
}

// Reset wipes extracted key material. The Context must not be used
// afterward.
func (c *Context) Reset() {
	c.inner.Reset()
}

// Encrypt pads plaintext with tau zero bytes, enciphers the result under
// the tweak derived from (nonce, ad, tau), and appends it to dst,
// returning the extended slice. The output is exactly len(plaintext)+tau
// bytes longer than dst.
//
// To reuse plaintext's storage, pass plaintext[:0] as dst.
func (c *Context) Encrypt(dst, nonce []byte, ad [][]byte, tau int, plaintext []byte) []byte {
	delta := c.inner.Hash(uint32(tau*8), nonce, ad)

	ret, out := sliceForAppend(dst, tau+len(plaintext))
	if len(plaintext) == 0 {
		c.inner.PRF(&delta, tau, out)
		return ret
	}

	copy(out, plaintext)
	zeroBytes(out[len(plaintext):])
	c.inner.Encipher(&delta, out, out)
	return ret
}

// Decrypt verifies and deciphers ciphertext, appending the recovered
// plaintext to dst on success. On authentication failure it returns
// ErrAuthenticationFailure without writing candidate plaintext bytes
// into dst's backing array; on a too-short ciphertext it returns
// ErrInputTooShort immediately, before doing any keyed work.
func (c *Context) Decrypt(dst, nonce []byte, ad [][]byte, tau int, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < tau {
		return nil, ErrInputTooShort
	}

	delta := c.inner.Hash(uint32(tau*8), nonce, ad)

	if len(ciphertext) == tau {
		expected := make([]byte, tau)
		c.inner.PRF(&delta, tau, expected)
		defer zeroBytes(expected)

		if subtle.ConstantTimeCompare(expected, ciphertext) != 1 {
			return nil, ErrAuthenticationFailure
		}
		ret, _ := sliceForAppend(dst, 0)
		return ret, nil
	}

	scratch := make([]byte, len(ciphertext))
	c.inner.Decipher(&delta, ciphertext, scratch)
	defer zeroBytes(scratch)

	tagStart := len(scratch) - tau
	if !constantTimeAllZero(scratch[tagStart:]) {
		return nil, ErrAuthenticationFailure
	}

	ret, out := sliceForAppend(dst, tagStart)
	copy(out, scratch[:tagStart])
	return ret, nil
}

// constantTimeAllZero reports whether every byte in b is zero, via an
// OR-reduction over the whole slice with no early exit, so the
// trailing-tag check never short-circuits on the first nonzero byte.
func constantTimeAllZero(b []byte) bool {
	var v byte
	for _, x := range b {
		v |= x
	}
	return subtle.ConstantTimeByteEq(v, 0) == 1
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// sliceForAppend extends in by n bytes, reusing its capacity when
// possible, and returns both the extended slice and the n-byte tail to
// write into. Same idiom crypto/cipher.AEAD implementations across the
// ecosystem use (e.g. jedisct1/go-aes-siv, oasisprotocol/deoxysii).
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
