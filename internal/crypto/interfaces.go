package crypto

// PasswordHasher derives and verifies salted password hashes. The server
// never stores or compares plaintext passwords; registration stores the
// encoded hash and login flows verify against it.
type PasswordHasher interface {
	// Hash derives a PHC-encoded argon2id hash of password with a freshly
	// generated random salt. Two calls with the same password produce two
	// different encoded strings.
	Hash(password string) (string, error)

	// Verify checks password against a previously produced encoded hash.
	// The argon2id parameters are read back from the encoded string, so
	// hashes remain verifiable after the defaults change.
	// Returns ErrPasswordMismatch when the password is wrong and
	// ErrMalformedHash when the encoded string cannot be parsed.
	Verify(password, encoded string) error
}
