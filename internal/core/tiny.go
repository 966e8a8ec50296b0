package core

// tinyCipher implements AEZ-tiny, the unbalanced-Feistel cipher used for
// inputs of 1 to 31 bytes (message plus tag). d selects encipher (0) or
// decipher (1). This follows the AEZ v4/v5 reference implementation's
// AEZtiny() structure one-for-one, including its odd-length nibble
// handling.
func (t *tweak) tinyCipher(delta *[blockSize]byte, in []byte, d uint, out []byte) {
	var rounds, tweakIdx uint = 0, 7
	var buf [blockSize]byte
	var L, R [blockSize]byte

	inBytes := len(in)
	switch {
	case inBytes == 1:
		rounds = 24
	case inBytes == 2:
		rounds = 16
	case inBytes < blockSize:
		rounds = 10
	default:
		tweakIdx, rounds = 6, 8
	}

	half := (inBytes + 1) / 2
	copy(L[:], in[:half])
	copy(R[:], in[inBytes/2:inBytes/2+half])

	mask, pad := byte(0x00), byte(0x80)
	if inBytes&1 != 0 {
		for k := 0; k < inBytes/2; k++ {
			R[k] = (R[k] << 4) | (R[k+1] >> 4)
		}
		R[inBytes/2] = R[inBytes/2] << 4
		pad, mask = 0x08, 0xf0
	}

	var j int
	var step int
	if d != 0 {
		if inBytes < blockSize {
			var b [blockSize]byte
			copy(b[:], in[:inBytes])
			b[0] |= 0x80
			xorBlock(&b, delta, &b)
			t.e(0, 3, &b, &b)
			L[0] ^= b[0] & 0x80
		}
		j, step = int(rounds)-1, -1
	} else {
		j, step = 0, 1
	}

	for k := uint(0); k < rounds/2; k, j = k+1, j+2*step {
		zero(buf[:])
		copy(buf[:half], R[:half])
		buf[inBytes/2] = (buf[inBytes/2] & mask) | pad
		xorBytes(buf[:], buf[:], delta[:])
		buf[15] ^= byte(j)
		t.e(0, tweakIdx, &buf, &buf)
		xorBytes(L[:], L[:], buf[:])

		zero(buf[:])
		copy(buf[:half], L[:half])
		buf[inBytes/2] = (buf[inBytes/2] & mask) | pad
		xorBytes(buf[:], buf[:], delta[:])
		buf[15] ^= byte(j + step)
		t.e(0, tweakIdx, &buf, &buf)
		xorBytes(R[:], R[:], buf[:])
	}

	var result [2 * blockSize]byte
	copy(result[:inBytes/2], R[:inBytes/2])
	copy(result[inBytes/2:], L[:half])
	if inBytes&1 != 0 {
		for k := inBytes - 1; k > inBytes/2; k-- {
			result[k] = (result[k] >> 4) | (result[k-1] << 4)
		}
		result[inBytes/2] = (L[0] >> 4) | (R[inBytes/2] & 0xf0)
	}
	copy(out, result[:inBytes])

	if inBytes < blockSize && d == 0 {
		var b [blockSize]byte
		copy(b[:], out[:inBytes])
		b[0] |= 0x80
		xorBlock(&b, delta, &b)
		t.e(0, 3, &b, &b)
		out[0] ^= b[0] & 0x80
	}
}
