package privatebox

import (
	"crypto/rand"
	"fmt"

	"github.com/privatebox/privatebox-go/internal/crypto"
)

// Keypair represents a curve25519 keypair for receiving envelopes.
type Keypair struct {
	// PublicKey is the raw 32-byte curve25519 public key.
	PublicKey []byte
	// SecretKey is the raw 32-byte curve25519 secret key.
	SecretKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

// GenerateKeypair creates a new curve25519 keypair using crypto/rand.
func GenerateKeypair() (*Keypair, error) {
	pub, sec, err := crypto.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	return &Keypair{
		PublicKey:    pub,
		SecretKey:    sec,
		PublicKeyB64: crypto.ToBase64URL(pub),
	}, nil
}

// KeypairFromSecretKey reconstructs a keypair from a 32-byte secret key.
// The public key is recomputed by scalar multiplication with the base point.
func KeypairFromSecretKey(secretKey []byte) (*Keypair, error) {
	if len(secretKey) != SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), SecretKeySize)
	}

	pub, err := crypto.PublicKeyFromSecret(secretKey)
	if err != nil {
		return nil, err
	}

	sk := make([]byte, SecretKeySize)
	copy(sk, secretKey)

	return &Keypair{
		PublicKey:    pub,
		SecretKey:    sk,
		PublicKeyB64: crypto.ToBase64URL(pub),
	}, nil
}
