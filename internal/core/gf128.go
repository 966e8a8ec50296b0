package core

import "crypto/subtle"

// blockSize is the width of every AEZ primitive operation: one AES block.
const blockSize = 16

// double computes 2*X in GF(2^128) under the reduction polynomial
// x^128 + x^7 + x^2 + x + 1, treating p as a big-endian 128-bit integer
// (bit 7 of byte 0 is the top bit).
func double(p *[blockSize]byte) {
	tmp := p[0]
	for i := 0; i < 15; i++ {
		p[i] = (p[i] << 1) | (p[i+1] >> 7)
	}
	cf := subtle.ConstantTimeByteEq(tmp>>7, 1)
	p[15] = (p[15] << 1) ^ byte(subtle.ConstantTimeSelect(cf, 0x87, 0))
}

// multBlock computes x*src in GF(2^128) via double-and-add. x is a small
// public loop count (a tweak index), never secret, so branching on its
// bits is fine; the block contents themselves never influence control
// flow here.
func multBlock(x uint, src *[blockSize]byte, dst *[blockSize]byte) {
	var t, r [blockSize]byte
	t = *src
	for x != 0 {
		if x&1 != 0 {
			xorBlock(&r, &r, &t)
		}
		double(&t)
		x >>= 1
	}
	*dst = r
}

func xorBlock(dst, a, b *[blockSize]byte) {
	for i := 0; i < blockSize; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

func xorBytes(dst, a, b []byte) {
	n := len(dst)
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
