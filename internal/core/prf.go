package core

// prf realizes AEZ-prf, used only when the plaintext is empty: a counter
// mode keystream E^{-1,3}(Delta XOR ctr) for ctr = 0, 1, 2, ..., truncated
// to tau bytes. The counter is a big-endian 128-bit integer incremented
// from byte 15 leftward.
func (t *tweak) prf(delta *[blockSize]byte, tau int, out []byte) {
	var ctr, buf, block [blockSize]byte

	off := 0
	for tau-off >= blockSize {
		xorBlock(&buf, delta, &ctr)
		t.e(-1, 3, &buf, &block)
		copy(out[off:off+blockSize], block[:])
		incr(&ctr)
		off += blockSize
	}
	if off < tau {
		xorBlock(&buf, delta, &ctr)
		t.e(-1, 3, &buf, &block)
		copy(out[off:], block[:tau-off])
	}
}

func incr(ctr *[blockSize]byte) {
	for i := blockSize - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}
