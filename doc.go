// Package privatebox implements the private-box format: a multi-recipient,
// anonymous, hybrid-encryption envelope. Given a plaintext and a list of
// recipient curve25519 public keys it produces a single ciphertext blob that
// any one of the recipients can open with their secret key, while observers
// and non-recipients learn nothing about the plaintext, the recipient list,
// or even the number of recipients.
//
// The sender needs no long-term key of their own, and recipients cannot be
// linked to each other from the ciphertext alone.
//
// Basic usage:
//
//	alice, err := privatebox.GenerateKeypair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bob, err := privatebox.GenerateKeypair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	envelope, err := privatebox.Encrypt([]byte("hello"), alice.PublicKey, bob.PublicKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Either recipient can open it; everyone else gets ErrNotRecipient.
//	plaintext, err := privatebox.Decrypt(envelope, bob.SecretKey)
//
// # Wire Format
//
// All offsets in bytes, n = effective recipient count:
//
//	[0,24)         nonce
//	[24,56)        ephemeral curve25519 public key
//	[56,56+49n)    n wrapped-key slots, 49 bytes each:
//	               secretbox(count_byte || message_key) + 16-byte tag
//	[56+49n,end)   sealed body: secretbox(plaintext) + 16-byte tag
//
// Total length is exactly 56 + 49n + len(plaintext) + 16. The format is
// bit-compatible with the reference implementations (curve25519 key
// agreement, XSalsa20-Poly1305, default 7-recipient ceiling).
//
// Every slot and the body are sealed under the same nonce; this is safe
// because each slot uses an independent key derived from the ephemeral
// secret and one recipient's public key, and the body uses the fresh
// per-message key, so no key ever seals two messages.
//
// # Security Model
//
// Slots carry no recipient marker. Decryption trial-opens every possible
// slot position against the caller's key; the Poly1305 tag is the only
// admission test. A failed open therefore reveals nothing about whether the
// envelope was malformed or simply addressed elsewhere — both collapse into
// [ErrNotRecipient] — and decryption cost is proportional to the configured
// ceiling, not to the actual recipient count. Do not add recipient hints to
// the format: they would break unlinkability.
//
// Secret material generated internally (ephemeral keys, message keys,
// shared secrets, slot payloads) is wiped before each call returns. Callers
// own the wiping of the key slices they pass in.
package privatebox
