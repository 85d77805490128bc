package crypto

import "errors"

var (
	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidSecretKeySize is returned when the secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidKeySize is returned when the secretbox key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrDecryptionFailed is returned when secretbox authentication fails.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrLowOrderPoint is returned when X25519 key agreement hits a
	// low-order public key, which would produce an all-zero shared secret.
	ErrLowOrderPoint = errors.New("low-order curve point")
)
