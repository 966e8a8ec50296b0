package core

// blockCipher computes the two keyed AES-derived round functions AEZ needs.
// AES4 has no initial whitening: out = round(round(round(round(src, k0),
// k1), k2), k3). AES10 whitens with k0 then runs 10 further rounds k1..k10.
// Every round (including the last) keeps MixColumns -- neither function is
// standard AES-128 encryption, both are keyed mixing functions.
type blockCipher interface {
	aes4(keys *[4][blockSize]byte, src, dst *[blockSize]byte)
	aes10(keys *[11][blockSize]byte, src, dst *[blockSize]byte)
	reset()
}

// aes4KeySchedule builds the 4 round keys AES4 uses for tweak index i, given
// the extracted subkeys (I, J, L). This mirrors the rotation performed by
// the AEZ v4 reference implementation's E(): the rotation start is i for
// i<3 and 0 otherwise, and the 4th round key is I itself when i==2, else
// zero. See DESIGN.md for why this is taken from the reference C source
// rather than the (looser) prose description of the rotation.
func aes4KeySchedule(i uint, I, J, L *[blockSize]byte) [4][blockSize]byte {
	subkeys := [3]*[blockSize]byte{I, J, L}
	first := i
	if i >= 3 {
		first = 0
	}

	var keys [4][blockSize]byte
	for k := 0; k < 3; k++ {
		keys[k] = *subkeys[(uint(k)+first)%3]
	}
	if i == 2 {
		keys[3] = *I
	}
	return keys
}

// aes10KeySchedule builds the 11 round keys (1 whitening + 10 round keys)
// AES10 uses: 0, I, L, J, I, L, J, I, L, J, I.
func aes10KeySchedule(I, J, L *[blockSize]byte) [11][blockSize]byte {
	return [11][blockSize]byte{
		{},
		*I, *L, *J,
		*I, *L, *J,
		*I, *L, *J,
		*I,
	}
}
