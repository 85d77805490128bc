package crypto

import "encoding/base64"

// ToBase64URL encodes bytes to URL-safe base64 without padding.
// Used for key material in exports, vectors, and the CLI.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64 without padding.
func FromBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
