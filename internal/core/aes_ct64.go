package core

import (
	aes "git.schwanenlied.me/yawning/bsaes.git/ct64"
)

// ct64Cipher is a constant-time bitsliced AES round engine, grounded on the
// same bsaes ct64 primitives Deoxys-II's portable backend uses
// (internal/ct64/bc.go in oasisprotocol/deoxysii): Load4xU32, Ortho, Sbox,
// ShiftRows, MixColumns, AddRoundKey, Store4xU32. It trades the vartime
// backend's table lookups (which are indexed by secret data, and so leak
// timing on cache-less architectures) for bit-sliced arithmetic that never
// branches or indexes memory on secret values.
type ct64Cipher struct{}

func newCT64Cipher() blockCipher { return ct64Cipher{} }

func (ct64Cipher) reset() {}

func (ct64Cipher) aes4(keys *[4][blockSize]byte, src, dst *[blockSize]byte) {
	var q [8]uint64
	aes.Load4xU32(&q, src[:])
	aes.Ortho(q[:])

	for r := 0; r < 4; r++ {
		aes.Sbox(&q)
		aes.ShiftRows(&q)
		aes.MixColumns(&q)

		var rk [8]uint64
		aes.RkeyOrtho(rk[:], keys[r][:])
		aes.AddRoundKey(&q, rk[:])
	}

	aes.Ortho(q[:])
	aes.Store4xU32(dst[:], &q)
}

func (ct64Cipher) aes10(keys *[11][blockSize]byte, src, dst *[blockSize]byte) {
	var q [8]uint64
	aes.Load4xU32(&q, src[:])
	aes.Ortho(q[:])

	var rk0 [8]uint64
	aes.RkeyOrtho(rk0[:], keys[0][:])
	aes.AddRoundKey(&q, rk0[:])

	for r := 1; r <= 10; r++ {
		aes.Sbox(&q)
		aes.ShiftRows(&q)
		aes.MixColumns(&q)

		var rk [8]uint64
		aes.RkeyOrtho(rk[:], keys[r][:])
		aes.AddRoundKey(&q, rk[:])
	}

	aes.Ortho(q[:])
	aes.Store4xU32(dst[:], &q)
}
