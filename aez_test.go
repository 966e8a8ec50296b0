package aez

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

var testKey = []byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
}

var testNonce = make([]byte, 12)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, opt := range []Option{WithVartime(), WithConstantTime()} {
		ctx := Setup(testKey, opt)

		for _, tau := range []int{0, 1, 8, 16} {
			for _, plen := range []int{0, 1, 15, 16, 17, 31, 32, 100, 4096} {
				plaintext := make([]byte, plen)
				for i := range plaintext {
					plaintext[i] = byte(i*3 + plen)
				}
				ad := [][]byte{[]byte("associated"), []byte("data-vector")}

				ct := ctx.Encrypt(nil, testNonce, ad, tau, plaintext)
				require.Equal(plen+tau, len(ct))

				pt, err := ctx.Decrypt(nil, testNonce, ad, tau, ct)
				require.NoError(err)
				require.True(bytes.Equal(plaintext, pt), "tau=%d plen=%d", tau, plen)
			}
		}
	}
}

func TestDecryptDetectsTampering(t *testing.T) {
	require := require.New(t)

	ctx := Setup(testKey)
	ad := [][]byte{[]byte("ad")}
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	ct := ctx.Encrypt(nil, testNonce, ad, 16, plaintext)

	for i := range ct {
		tampered := append([]byte(nil), ct...)
		tampered[i] ^= 0x01
		_, err := ctx.Decrypt(nil, testNonce, ad, 16, tampered)
		require.ErrorIs(err, ErrAuthenticationFailure, "byte %d", i)
	}
}

func TestDecryptWrongNonceFails(t *testing.T) {
	require := require.New(t)

	ctx := Setup(testKey)
	ad := [][]byte{[]byte("ad")}
	plaintext := []byte("some data")

	ct := ctx.Encrypt(nil, testNonce, ad, 16, plaintext)

	otherNonce := make([]byte, 12)
	otherNonce[0] = 1
	_, err := ctx.Decrypt(nil, otherNonce, ad, 16, ct)
	require.ErrorIs(err, ErrAuthenticationFailure)
}

func TestDecryptWrongADFails(t *testing.T) {
	require := require.New(t)

	ctx := Setup(testKey)
	plaintext := []byte("some data")

	ct := ctx.Encrypt(nil, testNonce, [][]byte{[]byte("good ad")}, 16, plaintext)
	_, err := ctx.Decrypt(nil, testNonce, [][]byte{[]byte("bad ad")}, 16, ct)
	require.ErrorIs(err, ErrAuthenticationFailure)
}

func TestDecryptTooShort(t *testing.T) {
	require := require.New(t)

	ctx := Setup(testKey)
	_, err := ctx.Decrypt(nil, testNonce, nil, 16, make([]byte, 8))
	require.ErrorIs(err, ErrInputTooShort)
}

func TestEmptyPlaintextRoundTrip(t *testing.T) {
	require := require.New(t)

	ctx := Setup(testKey)
	ct := ctx.Encrypt(nil, testNonce, nil, 16, nil)
	require.Len(ct, 16)

	pt, err := ctx.Decrypt(nil, testNonce, nil, 16, ct)
	require.NoError(err)
	require.Empty(pt)
}

func TestEncryptDstReuse(t *testing.T) {
	require := require.New(t)

	ctx := Setup(testKey)
	plaintext := make([]byte, 64, 64+16)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}
	original := append([]byte(nil), plaintext...)

	ct := ctx.Encrypt(plaintext[:0], testNonce, nil, 16, plaintext)
	pt, err := ctx.Decrypt(nil, testNonce, nil, 16, ct)
	require.NoError(err)
	require.Equal(original, pt)
}

func TestBackendsProduceIdenticalCiphertext(t *testing.T) {
	require := require.New(t)

	plaintext := []byte("cross-backend agreement check, long enough to hit AEZ-core")
	ad := [][]byte{[]byte("ad")}

	ctxVartime := Setup(testKey, WithVartime())
	ctxCT := Setup(testKey, WithConstantTime())

	ctA := ctxVartime.Encrypt(nil, testNonce, ad, 16, plaintext)
	ctB := ctxCT.Encrypt(nil, testNonce, ad, 16, plaintext)
	require.Equal(ctA, ctB)
}

func TestResetAfterUse(t *testing.T) {
	ctx := Setup(testKey)
	ctx.Encrypt(nil, testNonce, nil, 16, []byte("data"))
	ctx.Reset()
	// Context must not be used after Reset; nothing further to assert here
	// beyond Reset not panicking on its own.
}
