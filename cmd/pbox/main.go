// Command pbox is a small tool around the private-box envelope format:
// key generation, sealing, opening, and JSON test-vector output for
// cross-implementation compatibility checks.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	privatebox "github.com/privatebox/privatebox-go"
	"github.com/privatebox/privatebox-go/internal/crypto"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: pbox <keygen|seal|open|vectors> [args]")
	}

	switch os.Args[1] {
	case "keygen":
		keygen()
	case "seal":
		if len(os.Args) < 3 {
			fatal("usage: pbox seal <recipient-pk-b64>... < plaintext > envelope")
		}
		seal(os.Args[2:])
	case "open":
		if len(os.Args) != 3 {
			fatal("usage: pbox open <secret-key-b64> < envelope > plaintext")
		}
		open(os.Args[2])
	case "vectors":
		count := 4
		if len(os.Args) > 2 {
			n, err := strconv.Atoi(os.Args[2])
			if err != nil {
				fatal("vectors: bad count: %v", err)
			}
			count = n
		}
		vectors(count)
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

type keypairOutput struct {
	PublicKey string `json:"publicKey"`
	SecretKey string `json:"secretKey"`
}

func keygen() {
	kp, err := privatebox.GenerateKeypair()
	if err != nil {
		fatal("generate keypair: %v", err)
	}

	out := keypairOutput{
		PublicKey: kp.PublicKeyB64,
		SecretKey: crypto.ToBase64URL(kp.SecretKey),
	}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal("encode keypair: %v", err)
	}
}

func seal(recipientArgs []string) {
	recipients := make([][]byte, len(recipientArgs))
	for i, arg := range recipientArgs {
		pk, err := crypto.FromBase64URL(arg)
		if err != nil {
			fatal("recipient %d: decode public key: %v", i, err)
		}
		recipients[i] = pk
	}

	plaintext, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read plaintext: %v", err)
	}

	boxer, err := privatebox.New(privatebox.WithStrictRecipientLimit())
	if err != nil {
		fatal("create boxer: %v", err)
	}

	envelope, err := boxer.Encrypt(plaintext, recipients...)
	if err != nil {
		fatal("seal: %v", err)
	}

	if _, err := os.Stdout.Write(envelope); err != nil {
		fatal("write envelope: %v", err)
	}
}

func open(secretKeyB64 string) {
	secretKey, err := crypto.FromBase64URL(secretKeyB64)
	if err != nil {
		fatal("decode secret key: %v", err)
	}

	envelope, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read envelope: %v", err)
	}

	plaintext, err := privatebox.Decrypt(envelope, secretKey)
	if errors.Is(err, privatebox.ErrNotRecipient) {
		fatal("not a recipient")
	}
	if err != nil {
		fatal("open: %v", err)
	}

	if _, err := os.Stdout.Write(plaintext); err != nil {
		fatal("write plaintext: %v", err)
	}
}

// vector mirrors the JSON shape consumed by the integration tests and by
// the other implementations' compatibility suites.
type vector struct {
	Description string          `json:"description"`
	Plaintext   string          `json:"plaintext"`
	Envelope    string          `json:"envelope"`
	Recipients  []keypairOutput `json:"recipients"`
}

func vectors(count int) {
	out := make([]vector, 0, count)

	for i := 0; i < count; i++ {
		nRecipients := i%privatebox.DefaultMaxRecipients + 1
		kps := make([]*privatebox.Keypair, nRecipients)
		pks := make([][]byte, nRecipients)
		recipients := make([]keypairOutput, nRecipients)
		for j := range kps {
			kp, err := privatebox.GenerateKeypair()
			if err != nil {
				fatal("generate keypair: %v", err)
			}
			kps[j] = kp
			pks[j] = kp.PublicKey
			recipients[j] = keypairOutput{
				PublicKey: kp.PublicKeyB64,
				SecretKey: crypto.ToBase64URL(kp.SecretKey),
			}
		}

		plaintext := []byte(fmt.Sprintf("private-box test vector %d", i))
		envelope, err := privatebox.Encrypt(plaintext, pks...)
		if err != nil {
			fatal("seal vector %d: %v", i, err)
		}

		out = append(out, vector{
			Description: fmt.Sprintf("%d recipient(s)", nRecipients),
			Plaintext:   crypto.ToBase64URL(plaintext),
			Envelope:    crypto.ToBase64URL(envelope),
			Recipients:  recipients,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatal("encode vectors: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
