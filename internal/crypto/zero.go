package crypto

// Zero overwrites b with zero bytes. Used to wipe secret material before a
// buffer goes out of scope; typically invoked as `defer crypto.Zero(buf)`
// so the wipe runs on every return path.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
