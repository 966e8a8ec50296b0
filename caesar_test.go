package aez

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCAESARRoundTrip(t *testing.T) {
	require := require.New(t)

	key := make([]byte, CAESARKeySize)
	copy(key, testKey)

	aead, err := NewCAESAR(key)
	require.NoError(err)
	require.Equal(CAESARNonceSize, aead.NonceSize())
	require.Equal(CAESARTagSize, aead.Overhead())

	nonce := make([]byte, CAESARNonceSize)
	plaintext := []byte("hello, CAESAR")
	ad := []byte("additional data")

	ct := aead.Seal(nil, nonce, plaintext, ad)
	require.Len(ct, len(plaintext)+CAESARTagSize)

	pt, err := aead.Open(nil, nonce, ct, ad)
	require.NoError(err)
	require.Equal(plaintext, pt)
}

func TestCAESARInvalidKeySize(t *testing.T) {
	require := require.New(t)

	_, err := NewCAESAR(make([]byte, 10))
	require.ErrorIs(err, ErrInvalidKeySize)
}

func TestCAESAROpenTamperedFails(t *testing.T) {
	require := require.New(t)

	aead, err := NewCAESAR(testKey)
	require.NoError(err)

	nonce := make([]byte, CAESARNonceSize)
	ct := aead.Seal(nil, nonce, []byte("message"), nil)
	ct[0] ^= 0xFF

	_, err = aead.Open(nil, nonce, ct, nil)
	require.Error(err)
}
