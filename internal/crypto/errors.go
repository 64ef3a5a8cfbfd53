package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by Verify when the password does not
	// match the stored hash. It is the only hashing error that maps to an
	// invalid-credentials outcome; everything else is an internal failure.
	ErrPasswordMismatch = errors.New("password does not match stored hash")

	// ErrMalformedHash is returned by Verify when the encoded hash string
	// cannot be parsed or was produced by an unsupported algorithm.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrEmptyPassword is returned by Hash when the password is empty.
	ErrEmptyPassword = errors.New("password must not be empty")
)
