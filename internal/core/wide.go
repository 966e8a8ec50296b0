package core

// coreCipher implements AEZ-core, the two-pass wide-block cipher used for
// inputs of 32 bytes or more. d selects encipher (0) or decipher (1); the
// two directions share this single routine, differing only in which tweak
// indices get the +d/-d nudge (spec.md §4.7). This is a direct
// transliteration of the AEZ v4 reference implementation's AEZcore(),
// operating on byte slices the same way.
func (t *tweak) coreCipher(delta *[blockSize]byte, in []byte, d uint, out []byte) {
	var tmp, X, Y, S [blockSize]byte

	inOrig, outOrig := in, out
	inBytes, inBytesOrig := len(in), len(in)

	// Pass 1 over in[0:-32], storing intermediate values in out[0:-32].
	for j := uint(1); inBytes >= 64; j, inBytes = j+1, inBytes-32 {
		t.eSlice(1, j, in[blockSize:2*blockSize], tmp[:])
		xorBytes(out[:blockSize], in[:blockSize], tmp[:])
		t.eSlice(0, 0, out[:blockSize], tmp[:])
		xorBytes(out[blockSize:2*blockSize], in[blockSize:2*blockSize], tmp[:])
		xorBytes(X[:], X[:], out[blockSize:2*blockSize])
		in, out = in[32:], out[32:]
	}

	// Finish the X calculation over the 0-31 byte fragment.
	inBytes -= 32
	if inBytes >= blockSize {
		t.eSlice(0, 4, in[:blockSize], tmp[:])
		xorBytes(X[:], X[:], tmp[:])
		inBytes -= blockSize
		in, out = in[blockSize:], out[blockSize:]

		zero(tmp[:])
		copy(tmp[:], in[:inBytes])
		tmp[inBytes] = 0x80
		t.eSlice(0, 5, tmp[:], tmp[:])
		xorBytes(X[:], X[:], tmp[:])
	} else if inBytes > 0 {
		zero(tmp[:])
		copy(tmp[:], in[:inBytes])
		tmp[inBytes] = 0x80
		t.eSlice(0, 4, tmp[:], tmp[:])
		xorBytes(X[:], X[:], tmp[:])
	}
	in, out = in[inBytes:], out[inBytes:]

	// Calculate S from the final two blocks (X*, X**).
	t.eSlice(0, 1+d, in[blockSize:2*blockSize], tmp[:])
	xorBytes(out[:blockSize], X[:], in[:blockSize])
	xorBytes(out[:blockSize], out[:blockSize], delta[:])
	xorBytes(out[:blockSize], out[:blockSize], tmp[:])
	t.eSlice(-1, 1+d, out[:blockSize], tmp[:])
	xorBytes(out[blockSize:2*blockSize], in[blockSize:2*blockSize], tmp[:])
	xorBytes(S[:], out[:blockSize], out[blockSize:2*blockSize])

	// Pass 2 over the stored intermediates in out[0:-32]; writes the final
	// ciphertext (or plaintext) blocks in place.
	inBytes, out, in = inBytesOrig, outOrig, inOrig
	for j := uint(1); inBytes >= 64; j, inBytes = j+1, inBytes-32 {
		t.eSlice(2, j, S[:], tmp[:])
		xorBytes(out[:blockSize], out[:blockSize], tmp[:])
		xorBytes(out[blockSize:2*blockSize], out[blockSize:2*blockSize], tmp[:])
		xorBytes(Y[:], Y[:], out[:blockSize])
		t.eSlice(0, 0, out[blockSize:2*blockSize], tmp[:])
		xorBytes(out[:blockSize], out[:blockSize], tmp[:])
		t.eSlice(1, j, out[:blockSize], tmp[:])
		xorBytes(out[blockSize:2*blockSize], out[blockSize:2*blockSize], tmp[:])

		var swap [blockSize]byte
		copy(swap[:], out[:blockSize])
		copy(out[:blockSize], out[blockSize:2*blockSize])
		copy(out[blockSize:2*blockSize], swap[:])

		in, out = in[32:], out[32:]
	}

	// Finish the Y calculation and the fragment's encryption/decryption.
	inBytes -= 32
	if inBytes >= blockSize {
		t.eSlice(-1, 4, S[:], tmp[:])
		xorBytes(out[:blockSize], in[:blockSize], tmp[:])
		t.eSlice(0, 4, out[:blockSize], tmp[:])
		xorBytes(Y[:], Y[:], tmp[:])
		inBytes -= blockSize
		in, out = in[blockSize:], out[blockSize:]

		t.eSlice(-1, 5, S[:], tmp[:])
		xorBytes(tmp[:inBytes], in[:inBytes], tmp[:inBytes])
		copy(out, tmp[:inBytes])
		zero(tmp[inBytes:])
		tmp[inBytes] = 0x80
		t.eSlice(0, 5, tmp[:], tmp[:])
		xorBytes(Y[:], Y[:], tmp[:])
	} else if inBytes > 0 {
		t.eSlice(-1, 4, S[:], tmp[:])
		xorBytes(tmp[:inBytes], in[:inBytes], tmp[:inBytes])
		copy(out, tmp[:inBytes])
		zero(tmp[inBytes:])
		tmp[inBytes] = 0x80
		t.eSlice(0, 4, tmp[:], tmp[:])
		xorBytes(Y[:], Y[:], tmp[:])
	}
	out = out[inBytes:]

	// Finish the last two blocks (C*, C**).
	t.eSlice(-1, 2-d, out[blockSize:2*blockSize], tmp[:])
	xorBytes(out[:blockSize], out[:blockSize], tmp[:])
	t.eSlice(0, 2-d, out[:blockSize], tmp[:])
	xorBytes(out[blockSize:2*blockSize], tmp[:], out[blockSize:2*blockSize])
	xorBytes(out[blockSize:2*blockSize], out[blockSize:2*blockSize], delta[:])
	xorBytes(out[blockSize:2*blockSize], out[blockSize:2*blockSize], Y[:])

	var swap [blockSize]byte
	copy(swap[:], out[:blockSize])
	copy(out[:blockSize], out[blockSize:2*blockSize])
	copy(out[blockSize:2*blockSize], swap[:])
}
