// Package crypto wraps the primitives used by the private-box envelope
// format: curve25519 Diffie-Hellman key agreement, XSalsa20-Poly1305
// authenticated encryption (NaCl secretbox), and explicit wiping of secret
// buffers.
//
// # Algorithm Suite
//
//   - X25519 (RFC 7748): Diffie-Hellman key agreement over curve25519.
//     Each envelope uses a fresh ephemeral keypair; the raw 32-byte shared
//     secret is used directly as a secretbox key, matching the reference
//     implementations.
//
//   - XSalsa20-Poly1305 (NaCl secretbox): authenticated encryption with a
//     24-byte nonce and a 16-byte authentication tag.
//
// # Security Notes
//
// Secretbox keys derived here are single-use: every key encrypts at most
// one message under one nonce, which is why the envelope format can reuse
// one nonce across all of its slots and its body.
//
// All functions that handle secret material copy it into fixed-size arrays
// for the underlying primitives and wipe those copies before returning.
// Callers remain responsible for wiping the slices they pass in.
package crypto
