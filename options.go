package privatebox

import "io"

// config holds configuration for a Boxer.
type config struct {
	maxRecipients int
	strict        bool
	rand          io.Reader
}

// Option configures a Boxer.
type Option func(*config)

// WithMaxRecipients sets the recipient ceiling, between 1 and 255 (the
// count byte in each slot holds a single byte). The default of 7 matches
// the reference implementations; envelopes built with a different ceiling
// are still parseable by them as long as the actual recipient count fits
// their ceiling.
func WithMaxRecipients(n int) Option {
	return func(c *config) {
		c.maxRecipients = n
	}
}

// WithStrictRecipientLimit makes Encrypt fail with ErrTooManyRecipients
// when the recipient list exceeds the ceiling, instead of the default
// behavior of silently truncating to the first maxRecipients entries.
func WithStrictRecipientLimit() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithRand sets the randomness source used for nonces, message keys, and
// ephemeral keypairs. Default: crypto/rand.Reader. Intended for tests;
// anything weaker than a CSPRNG breaks every guarantee the format makes.
func WithRand(r io.Reader) Option {
	return func(c *config) {
		c.rand = r
	}
}
