package core

import "encoding/binary"

// labelZ is the 16-byte sequence 0x00..0x0F aez_ref.c calls Z: both the
// whitening constant XORed into each label before the first AES4 call,
// and (repeated four times) the schedule aes4_key_z that call runs
// under -- see aez_ni.c's aes4(label ^ Z, Z,Z,Z,Z).
var labelZ = func() [blockSize]byte {
	var z [blockSize]byte
	for i := range z {
		z[i] = byte(i)
	}
	return z
}()

// labelKey is the AES4 key schedule aez_ref.c calls aes4_key_z: every
// round key equal to labelZ. Extract uses it to turn each (i, j) label
// into a fresh per-block key schedule.
var labelKey = [4][blockSize]byte{labelZ, labelZ, labelZ, labelZ}

// extract turns a variable-length key into the three subkeys (I, J, L) via
// the 4-round AES cascade from the AEZ v4/v5 reference implementation:
// for every 16-byte key block K_j (plus a final pad10*-padded block for a
// partial remainder or for an empty key; a key whose length is a nonzero
// multiple of 16 has no such block), derive a fresh AES4 schedule
// from a label encoding (i, j), encrypt K_j under it, and XOR the result
// into accumulator slot i.
//
// This always runs the general cascade, including for 16-byte keys, where
// spec.md documents an optional equivalent fast path (see ExtractFast and
// DESIGN.md for why the default does not take the shortcut).
func extract(key []byte, cipher blockCipher) (I, J, L [blockSize]byte) {
	slots := [3]*[blockSize]byte{&I, &J, &L}

	k := key
	j := uint32(1)
	for len(k) >= blockSize {
		absorbKeyBlock(cipher, slots, k[:blockSize], j)
		k = k[blockSize:]
		j++
	}

	if len(k) > 0 || len(key) == 0 {
		var padded [blockSize]byte
		copy(padded[:], k)
		padded[len(k)] = 0x80
		absorbKeyBlock(cipher, slots, padded[:], 0)
	}

	return I, J, L
}

func absorbKeyBlock(cipher blockCipher, slots [3]*[blockSize]byte, block []byte, j uint32) {
	var kj [blockSize]byte
	copy(kj[:], block)

	for i := 1; i <= 3; i++ {
		var label [blockSize]byte
		label[7] = byte(i)
		binary.BigEndian.PutUint32(label[12:], j)

		// aes4(label ^ Z, Z,Z,Z,Z) -- whiten the label with Z before the
		// first round, per aez_ni.c's vxor3(i1, j, Z).
		xorBlock(&label, &label, &labelZ)
		var c [blockSize]byte
		cipher.aes4(&labelKey, &label, &c)

		// aes4(K_j ^ C, C,C,C,C) -- whiten the key block with C before
		// the first round, per aez_ni.c's vxor(K, C1j).
		var x [blockSize]byte
		xorBlock(&x, &kj, &c)
		schedule := [4][blockSize]byte{c, c, c, c}
		var b [blockSize]byte
		cipher.aes4(&schedule, &x, &b)

		xorBlock(slots[i-1], slots[i-1], &b)
	}
}

// Fixed constants for the documented 16-byte-key fast path (spec.md §6).
var (
	c11 = [blockSize]byte{0xCB, 0xEC, 0x5B, 0xC6, 0xB0, 0x2F, 0xFA, 0xA8, 0xA5, 0x0D, 0x52, 0x99, 0xA9, 0x94, 0xA2, 0x0A}
	c12 = [blockSize]byte{0x0B, 0x97, 0x9B, 0xB6, 0x0A, 0x61, 0x7C, 0x2C, 0xBB, 0x65, 0x2B, 0x68, 0x7D, 0x12, 0xED, 0x8D}
	c13 = [blockSize]byte{0x1D, 0x8B, 0x1E, 0x93, 0xA6, 0x94, 0x06, 0x4D, 0x4A, 0xC9, 0x92, 0xAF, 0xDE, 0x78, 0x67, 0x0F}
)

// ExtractFast computes (I, J, L) for an exactly-16-byte key using the v5
// shortcut: I = AES4(C1∥4, K^C11), J = AES4(C2∥4, K^C12), L = AES4(C3∥4,
// K^C13), each with a 4-round schedule whose round keys all equal the
// named constant. Not used by the default Setup path (see DESIGN.md); kept
// for callers who want the documented fast path and verified equivalent to
// the general cascade by core_test.go.
func ExtractFast(key []byte, cipher blockCipher) (I, J, L [blockSize]byte) {
	if len(key) != blockSize {
		panic("aez: ExtractFast: key must be 16 bytes")
	}
	var k [blockSize]byte
	copy(k[:], key)

	compute := func(c *[blockSize]byte) [blockSize]byte {
		var x [blockSize]byte
		xorBlock(&x, &k, c)
		schedule := [4][blockSize]byte{*c, *c, *c, *c}
		var out [blockSize]byte
		cipher.aes4(&schedule, &x, &out)
		return out
	}

	I = compute(&c11)
	J = compute(&c12)
	L = compute(&c13)
	return I, J, L
}
