package crypto

import "golang.org/x/crypto/nacl/secretbox"

const (
	// PublicKeySize is the size of a curve25519 public key in bytes.
	PublicKeySize = 32
	// SecretKeySize is the size of a curve25519 secret key in bytes.
	SecretKeySize = 32
	// SharedKeySize is the size of an X25519 shared secret in bytes.
	SharedKeySize = 32

	// KeySize is the size of a secretbox key in bytes.
	KeySize = 32
	// NonceSize is the size of a secretbox nonce in bytes.
	NonceSize = 24
	// TagSize is the size of a Poly1305 authentication tag in bytes.
	TagSize = secretbox.Overhead

	// SlotPayloadSize is the size of a wrapped-key slot's plaintext:
	// one recipient-count byte followed by the 32-byte message key.
	SlotPayloadSize = 1 + KeySize
	// SlotSize is the size of one sealed wrapped-key slot in bytes.
	SlotSize = SlotPayloadSize + TagSize

	// HeaderSize is the byte offset where the slot region starts:
	// the nonce followed by the ephemeral public key.
	HeaderSize = NonceSize + PublicKeySize

	// MinEnvelopeSize is the smallest well-formed envelope: header,
	// one slot, and the sealed body's tag for an empty plaintext.
	MinEnvelopeSize = HeaderSize + SlotSize + TagSize

	// DefaultMaxRecipients is the default recipient ceiling. Seven is the
	// value fixed by the reference implementations; envelopes built with
	// it are wire-compatible with them.
	DefaultMaxRecipients = 7
	// MaxRecipientLimit is the largest configurable recipient ceiling,
	// bounded by the single count byte in each slot payload.
	MaxRecipientLimit = 255
)
