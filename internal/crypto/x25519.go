package crypto

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/dh/x25519"
)

// GenerateKey creates a new curve25519 keypair from the given randomness
// source. The caller owns both slices and is responsible for wiping the
// secret key when done.
func GenerateKey(rand io.Reader) (publicKey, secretKey []byte, err error) {
	var pub, sec x25519.Key
	defer Zero(sec[:])

	if _, err := io.ReadFull(rand, sec[:]); err != nil {
		return nil, nil, fmt.Errorf("generate secret key: %w", err)
	}
	x25519.KeyGen(&pub, &sec)

	publicKey = make([]byte, PublicKeySize)
	secretKey = make([]byte, SecretKeySize)
	copy(publicKey, pub[:])
	copy(secretKey, sec[:])
	return publicKey, secretKey, nil
}

// PublicKeyFromSecret derives the curve25519 public key for a secret key.
func PublicKeyFromSecret(secretKey []byte) ([]byte, error) {
	if len(secretKey) != SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), SecretKeySize)
	}

	var pub, sec x25519.Key
	copy(sec[:], secretKey)
	defer Zero(sec[:])

	x25519.KeyGen(&pub, &sec)

	publicKey := make([]byte, PublicKeySize)
	copy(publicKey, pub[:])
	return publicKey, nil
}

// SharedSecret computes the X25519 shared secret between a secret key and a
// public key. The raw 32-byte output is used directly as a secretbox key;
// no KDF is applied, matching the reference implementations.
//
// Returns ErrLowOrderPoint if the public key is a low-order point, in which
// case the shared secret would be all zeros. The caller must wipe the
// returned slice when done.
func SharedSecret(secretKey, publicKey []byte) ([]byte, error) {
	if len(secretKey) != SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), SecretKeySize)
	}
	if len(publicKey) != PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), PublicKeySize)
	}

	var sec, pub, shared x25519.Key
	copy(sec[:], secretKey)
	copy(pub[:], publicKey)
	defer Zero(sec[:])
	defer Zero(shared[:])

	if !x25519.Shared(&shared, &sec, &pub) {
		return nil, ErrLowOrderPoint
	}

	out := make([]byte, SharedKeySize)
	copy(out, shared[:])
	return out, nil
}
