package core

// tweak holds the extracted subkeys plus the round function used to
// realize E^{i,j}, the tweakable block cipher at the heart of every other
// AEZ component.
type tweak struct {
	I, J, L [blockSize]byte
	cipher  blockCipher
}

// e evaluates E_K^{i,j}(src) -> dst. i == -1 selects the AES10 path; i >= 0
// selects AES4 with an offset computed from (i, j) per spec.md §4.4.
func (t *tweak) e(i int, j uint, src, dst *[blockSize]byte) {
	if i == -1 {
		var delta, buf [blockSize]byte
		multBlock(j, &t.J, &delta)
		xorBlock(&buf, src, &delta)

		schedule := aes10KeySchedule(&t.I, &t.J, &t.L)
		t.cipher.aes10(&schedule, &buf, dst)
		return
	}

	var delta, buf [blockSize]byte
	t.offset(uint(i), j, &delta)
	xorBlock(&buf, src, &delta)

	schedule := aes4KeySchedule(uint(i), &t.I, &t.J, &t.L)
	t.cipher.aes4(&schedule, &buf, dst)
}

// offset computes Delta_{i,j} for the AES4 path, per spec.md §4.4:
//
//	i == 0:        j*J
//	i == 1 or 2:   (j mod 8)*J  XOR  2^(ceil(j/8)-1)*L          (j>=1)
//	i >= 3, j>0:   (i-2)*8*J  XOR  (j mod 8)*J  XOR  2^(ceil(j/8)-1)*L
//	i >= 3, j==0:  (i-2)*8*J
func (t *tweak) offset(i, j uint, delta *[blockSize]byte) {
	switch {
	case i == 0:
		multBlock(j, &t.J, delta)
	case i == 1 || i == 2:
		var a, b [blockSize]byte
		multBlock(j%8, &t.J, &a)
		doubledL(&t.L, j, &b)
		xorBlock(delta, &a, &b)
	default: // i >= 3
		var iPart [blockSize]byte
		multBlock((i-2)*8, &t.J, &iPart)
		if j == 0 {
			*delta = iPart
			return
		}
		var a, b [blockSize]byte
		multBlock(j%8, &t.J, &a)
		doubledL(&t.L, j, &b)
		xorBlock(delta, &iPart, &a)
		xorBlock(delta, delta, &b)
	}
}

// eSlice is a slice-based convenience wrapper around e, for the wide-block
// cipher code where offsets into a shared buffer are more natural than
// juggling fixed-size arrays.
func (t *tweak) eSlice(i int, j uint, src, dst []byte) {
	var s, d [blockSize]byte
	copy(s[:], src)
	t.e(i, j, &s, &d)
	copy(dst, d[:])
}

// doubledL computes 2^(ceil(j/8)-1) * L for j >= 1 (0 doublings, i.e. L
// itself, when j == 0 -- that case is never reached by the spec's use of
// this term but is defined for safety).
func doubledL(L *[blockSize]byte, j uint, dst *[blockSize]byte) {
	n := uint(0)
	if j > 0 {
		n = (j - 1) / 8
	}
	multBlock(1<<n, L, dst)
}
