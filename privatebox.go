package privatebox

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/privatebox/privatebox-go/internal/crypto"
)

const (
	// PublicKeySize is the size of a recipient public key in bytes.
	PublicKeySize = crypto.PublicKeySize
	// SecretKeySize is the size of a recipient secret key in bytes.
	SecretKeySize = crypto.SecretKeySize
	// DefaultMaxRecipients is the default recipient ceiling, matching the
	// reference implementations.
	DefaultMaxRecipients = crypto.DefaultMaxRecipients
)

// Boxer encrypts and decrypts private-box envelopes. A Boxer holds only
// configuration; both operations are stateless and a single Boxer may be
// used from any number of goroutines concurrently.
type Boxer struct {
	cfg config
}

// New creates a Boxer. With no options it produces envelopes bit-compatible
// with the reference implementations: 7-recipient ceiling, silent
// truncation of longer recipient lists, crypto/rand randomness.
func New(opts ...Option) (*Boxer, error) {
	cfg := config{
		maxRecipients: crypto.DefaultMaxRecipients,
		rand:          rand.Reader,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.maxRecipients < 1 || cfg.maxRecipients > crypto.MaxRecipientLimit {
		return nil, fmt.Errorf("%w: got %d, want 1-%d", ErrInvalidRecipientLimit, cfg.maxRecipients, crypto.MaxRecipientLimit)
	}
	if cfg.rand == nil {
		cfg.rand = rand.Reader
	}

	return &Boxer{cfg: cfg}, nil
}

// EncryptedLen returns the exact envelope length for a plaintext of the
// given length addressed to n recipients (after any ceiling is applied).
func EncryptedLen(recipients, plaintextLen int) int {
	return crypto.HeaderSize + crypto.SlotSize*recipients + plaintextLen + crypto.TagSize
}

// Encrypt seals plaintext to the given recipient public keys and returns
// the envelope. Recipients receive their wrapped-key slot in input order,
// though the order carries no meaning a parser can observe.
//
// If the recipient list exceeds the ceiling it is truncated to the first
// maxRecipients entries, unless WithStrictRecipientLimit was set, in which
// case ErrTooManyRecipients is returned. An empty recipient list is
// accepted and produces a well-formed envelope that nobody can open.
// A zero-length plaintext is allowed.
func (b *Boxer) Encrypt(plaintext []byte, recipients ...[]byte) ([]byte, error) {
	for i, pk := range recipients {
		if len(pk) != crypto.PublicKeySize {
			return nil, fmt.Errorf("%w: recipient %d: got %d, want %d", ErrInvalidPublicKeySize, i, len(pk), crypto.PublicKeySize)
		}
	}

	n := len(recipients)
	if n > b.cfg.maxRecipients {
		if b.cfg.strict {
			return nil, fmt.Errorf("%w: got %d, ceiling %d", ErrTooManyRecipients, n, b.cfg.maxRecipients)
		}
		n = b.cfg.maxRecipients
		recipients = recipients[:n]
	}

	nonce := make([]byte, crypto.NonceSize)
	if _, err := io.ReadFull(b.cfg.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	defer crypto.Zero(nonce)

	msgKey := make([]byte, crypto.KeySize)
	if _, err := io.ReadFull(b.cfg.rand, msgKey); err != nil {
		return nil, fmt.Errorf("generate message key: %w", err)
	}
	defer crypto.Zero(msgKey)

	ephPub, ephSec, err := crypto.GenerateKey(b.cfg.rand)
	if err != nil {
		return nil, fmt.Errorf("generate ephemeral keypair: %w", err)
	}
	defer crypto.Zero(ephSec)
	defer crypto.Zero(ephPub) // not secret, wiped for consistency

	// Slot payload: count byte followed by the message key.
	payload := make([]byte, 0, crypto.SlotPayloadSize)
	payload = append(payload, byte(n))
	payload = append(payload, msgKey...)
	defer crypto.Zero(payload)

	out := make([]byte, 0, EncryptedLen(n, len(plaintext)))
	out = append(out, nonce...)
	out = append(out, ephPub...)

	for i, pk := range recipients {
		shared, err := crypto.SharedSecret(ephSec, pk)
		if err != nil {
			return nil, fmt.Errorf("recipient %d: %w", i, err)
		}

		slot, err := crypto.Seal(shared, nonce, payload)
		crypto.Zero(shared)
		if err != nil {
			return nil, err
		}
		out = append(out, slot...)
	}

	body, err := crypto.Seal(msgKey, nonce, plaintext)
	if err != nil {
		return nil, err
	}
	out = append(out, body...)

	return out, nil
}

// Decrypt attempts to open an envelope with the given 32-byte secret key.
// If the key belongs to one of the envelope's recipients the plaintext is
// returned; otherwise ErrNotRecipient.
//
// Every slot position up to the ceiling is attempted regardless of when a
// match is found, so the cost of a Decrypt call depends on the ceiling and
// never on the envelope's actual recipient count. The first slot that
// authenticates wins; a correctly built envelope can never contain more
// than one slot openable by the same key, so later matches are ignored.
func (b *Boxer) Decrypt(envelope, secretKey []byte) ([]byte, error) {
	if len(secretKey) != crypto.SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), crypto.SecretKeySize)
	}
	if len(envelope) < crypto.MinEnvelopeSize {
		return nil, ErrNotRecipient
	}

	nonce := envelope[:crypto.NonceSize]
	ephPub := envelope[crypto.NonceSize:crypto.HeaderSize]

	shared, err := crypto.SharedSecret(secretKey, ephPub)
	if err != nil {
		return nil, ErrNotRecipient
	}
	defer crypto.Zero(shared)

	var (
		found  bool
		count  int
		msgKey = make([]byte, crypto.KeySize)
	)
	defer crypto.Zero(msgKey)

	for i := 0; i < b.cfg.maxRecipients; i++ {
		offset := crypto.HeaderSize + crypto.SlotSize*i
		if offset+crypto.SlotSize > len(envelope)-crypto.TagSize {
			// Beyond any possible slot region; the body needs at
			// least its tag after the last slot.
			continue
		}

		payload, err := crypto.Open(shared, nonce, envelope[offset:offset+crypto.SlotSize])
		if err != nil {
			continue
		}
		if !found {
			count = int(payload[0])
			copy(msgKey, payload[1:])
			found = true
		}
		crypto.Zero(payload)
	}

	if !found {
		return nil, ErrNotRecipient
	}

	bodyOffset := crypto.HeaderSize + crypto.SlotSize*count
	if bodyOffset+crypto.TagSize > len(envelope) {
		return nil, ErrNotRecipient
	}

	plaintext, err := crypto.Open(msgKey, nonce, envelope[bodyOffset:])
	if err != nil {
		return nil, ErrNotRecipient
	}
	return plaintext, nil
}

// defaultBoxer backs the package-level Encrypt and Decrypt.
var defaultBoxer = mustNew()

func mustNew() *Boxer {
	b, err := New()
	if err != nil {
		panic(err) // unreachable: defaults are always valid
	}
	return b
}

// Encrypt seals plaintext to the given recipients with the default
// configuration. See Boxer.Encrypt.
func Encrypt(plaintext []byte, recipients ...[]byte) ([]byte, error) {
	return defaultBoxer.Encrypt(plaintext, recipients...)
}

// Decrypt opens an envelope with the default configuration. See
// Boxer.Decrypt.
func Decrypt(envelope, secretKey []byte) ([]byte, error) {
	return defaultBoxer.Decrypt(envelope, secretKey)
}
