package crypto

import (
	"bytes"
	"testing"
)

func TestBase64URL_RoundTrip(t *testing.T) {
	data := []byte{0x00, 0xfb, 0xff, 0x3e, 0x3f}

	encoded := ToBase64URL(data)
	decoded, err := FromBase64URL(encoded)
	if err != nil {
		t.Fatalf("FromBase64URL() error = %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("decoded = %v, want %v", decoded, data)
	}
}

func TestFromBase64URL_Invalid(t *testing.T) {
	if _, err := FromBase64URL("not!valid!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}
