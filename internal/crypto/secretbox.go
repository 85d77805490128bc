package crypto

import (
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// Seal encrypts plaintext with XSalsa20-Poly1305.
// Returns: ciphertext || tag (16 bytes), len(plaintext)+TagSize in total.
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	var k [KeySize]byte
	var n [NonceSize]byte
	copy(k[:], key)
	copy(n[:], nonce)
	defer Zero(k[:])

	return secretbox.Seal(nil, plaintext, &n, &k), nil
}

// Open authenticates and decrypts a sealed box produced by Seal. A failed
// authentication tag is reported as ErrDecryptionFailed with no further
// detail; during envelope parsing that outcome is routine, not exceptional.
func Open(key, nonce, box []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}
	if len(box) < TagSize {
		return nil, ErrDecryptionFailed
	}

	var k [KeySize]byte
	var n [NonceSize]byte
	copy(k[:], key)
	copy(n[:], nonce)
	defer Zero(k[:])

	plaintext, ok := secretbox.Open(nil, box, &n, &k)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
