package aez

import "errors"

var (
	// ErrAuthenticationFailure is returned when decryption finds a
	// nonzero tag, either from the trailing-zero check (AEZ-core/tiny
	// path) or from a mismatched AEZ-prf output (empty-plaintext path).
	// AEZ deliberately does not distinguish these cases to callers.
	ErrAuthenticationFailure = errors.New("aez: authentication failure")

	// ErrInputTooShort is returned when a ciphertext is shorter than the
	// configured tag size tau.
	ErrInputTooShort = errors.New("aez: ciphertext shorter than tau")
)
