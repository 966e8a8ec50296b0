package core

import (
	aes "git.schwanenlied.me/yawning/bsaes.git/ct32"
)

// ct32Cipher is the 32-bit-lane sibling of ct64Cipher, selected on targets
// where golang.org/x/sys/cpu reports no benefit from 64-bit bitslicing
// (see capability.go). Same algorithm, narrower lanes -- this is exactly
// the ct32/ct64 split bsaes itself ships and that oasisprotocol/deoxysii
// mirrors with its own internal/ct32 and internal/ct64 packages.
type ct32Cipher struct{}

func newCT32Cipher() blockCipher { return ct32Cipher{} }

func (ct32Cipher) reset() {}

func (ct32Cipher) aes4(keys *[4][blockSize]byte, src, dst *[blockSize]byte) {
	var q [8]uint32
	aes.Load4xU32(&q, src[:])
	aes.Ortho(q[:])

	for r := 0; r < 4; r++ {
		aes.Sbox(&q)
		aes.ShiftRows(&q)
		aes.MixColumns(&q)

		var rk [8]uint32
		aes.RkeyOrtho(rk[:], keys[r][:])
		aes.AddRoundKey(&q, rk[:])
	}

	aes.Ortho(q[:])
	aes.Store4xU32(dst[:], &q)
}

func (ct32Cipher) aes10(keys *[11][blockSize]byte, src, dst *[blockSize]byte) {
	var q [8]uint32
	aes.Load4xU32(&q, src[:])
	aes.Ortho(q[:])

	var rk0 [8]uint32
	aes.RkeyOrtho(rk0[:], keys[0][:])
	aes.AddRoundKey(&q, rk0[:])

	for r := 1; r <= 10; r++ {
		aes.Sbox(&q)
		aes.ShiftRows(&q)
		aes.MixColumns(&q)

		var rk [8]uint32
		aes.RkeyOrtho(rk[:], keys[r][:])
		aes.AddRoundKey(&q, rk[:])
	}

	aes.Ortho(q[:])
	aes.Store4xU32(dst[:], &q)
}
