package core

// hashAD computes only the AD-vector contribution to AEZ-hash (no tau, no
// nonce), used by Context.Hash to maintain the AD cache independently of
// the per-call nonce.
func (t *tweak) hashAD(ad [][]byte) [blockSize]byte {
	var sum [blockSize]byte
	for k, a := range ad {
		absorb(t, 5+k, a, &sum)
	}
	return sum
}

// absorb folds one AEZ-hash input (the nonce, or a single AD vector
// element) into sum using the given base tweak index: full 16-byte blocks
// go through E^{idx,j} for j = 1, 2, ...; any remainder (or a wholly empty
// input) is pad10*-padded and absorbed with j = 0.
func absorb(t *tweak, idx int, data []byte, sum *[blockSize]byte) {
	var buf, out [blockSize]byte

	empty := len(data) == 0
	j := uint(1)
	for len(data) >= blockSize {
		copy(buf[:], data[:blockSize])
		t.e(idx, j, &buf, &out)
		xorBlock(sum, sum, &out)
		data = data[blockSize:]
		j++
	}

	if len(data) > 0 || empty {
		zero(buf[:])
		copy(buf[:], data)
		buf[len(data)] = 0x80
		t.e(idx, 0, &buf, &out)
		xorBlock(sum, sum, &out)
	}
}
