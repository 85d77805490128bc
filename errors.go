package privatebox

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrNotRecipient is returned by Decrypt when the secret key does not
	// open any slot, or the envelope is malformed. The two cases are
	// deliberately indistinguishable so that callers cannot be used as an
	// oracle for why an envelope failed to open.
	ErrNotRecipient = errors.New("not a recipient or malformed envelope")

	// ErrTooManyRecipients is returned by Encrypt when the recipient list
	// exceeds the configured ceiling and WithStrictRecipientLimit is set.
	ErrTooManyRecipients = errors.New("too many recipients")

	// ErrInvalidPublicKeySize is returned when a recipient public key is
	// not 32 bytes.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidSecretKeySize is returned when a secret key is not 32 bytes.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidRecipientLimit is returned by New when WithMaxRecipients is
	// given a value outside [1,255].
	ErrInvalidRecipientLimit = errors.New("invalid recipient limit")
)
