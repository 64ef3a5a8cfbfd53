package errs

import "errors"

// Kind enumerates the closed set of application error variants. Every
// variant has a fixed HTTP status and a safe client-visible message; adding
// a new Kind requires extending the classifier's mapping in the HTTP layer.
type Kind int

const (
	// KindInternal covers hashing failures, storage driver failures, and
	// every unclassified cause. Clients only ever see a generic message.
	KindInternal Kind = iota

	// KindNotFound means the requested page does not exist.
	KindNotFound

	// KindEntityNotFound means a referenced entity is absent from storage.
	KindEntityNotFound

	// KindEntityAlreadyExists means a uniqueness constraint was violated.
	// The attached reason names the conflicting field and is safe to expose.
	KindEntityAlreadyExists

	// KindInvalidCredentials means the supplied credentials failed
	// verification. Reserved for login flows.
	KindInvalidCredentials

	// KindWrongCredentials means the supplied credentials do not match any
	// account. Reserved for login flows.
	KindWrongCredentials
)

// Error is one variant of the application error taxonomy. Instances are
// immutable once constructed; use the package-level constructors.
type Error struct {
	kind   Kind
	reason string
	err    error
}

// Kind returns the taxonomy variant of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Reason returns the client-safe message attached at construction time.
// Empty for variants whose message is fixed by the classifier.
func (e *Error) Reason() string {
	return e.reason
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.reason != "" {
		return e.reason
	}

	switch e.kind {
	case KindNotFound:
		return "page not found"
	case KindEntityNotFound:
		return "entity not found"
	case KindEntityAlreadyExists:
		return "entity already exists"
	case KindInvalidCredentials:
		return "invalid credentials"
	case KindWrongCredentials:
		return "wrong credentials"
	default:
		return "internal server error"
	}
}

// Unwrap exposes the wrapped cause, if any, so errors.Is and errors.As can
// walk the full chain.
func (e *Error) Unwrap() error {
	return e.err
}

// NotFound constructs a KindNotFound error.
func NotFound() *Error {
	return &Error{kind: KindNotFound}
}

// EntityNotFound constructs a KindEntityNotFound error wrapping cause.
func EntityNotFound(cause error) *Error {
	return &Error{kind: KindEntityNotFound, err: cause}
}

// EntityAlreadyExists constructs a KindEntityAlreadyExists error. The reason
// names the conflicting field and is exposed to clients verbatim, so it must
// never carry internal detail.
func EntityAlreadyExists(reason string, cause error) *Error {
	return &Error{kind: KindEntityAlreadyExists, reason: reason, err: cause}
}

// InvalidCredentials constructs a KindInvalidCredentials error with a
// client-safe reason.
func InvalidCredentials(reason string, cause error) *Error {
	return &Error{kind: KindInvalidCredentials, reason: reason, err: cause}
}

// WrongCredentials constructs a KindWrongCredentials error with a
// client-safe reason.
func WrongCredentials(reason string, cause error) *Error {
	return &Error{kind: KindWrongCredentials, reason: reason, err: cause}
}

// Internal constructs a KindInternal error wrapping cause. The cause is kept
// for logging only; clients receive a generic message.
func Internal(cause error) *Error {
	return &Error{kind: KindInternal, err: cause}
}

// Auth sentinel errors, reserved for future login and session flows. They
// form a separate recognizer set in the classifier with fixed 401 messages.
var (
	// ErrExpiredCredentials signals that a login session has expired.
	ErrExpiredCredentials = errors.New("login session has expired")

	// ErrMissingCredentials signals that the request carried no credentials.
	ErrMissingCredentials = errors.New("credentials missing from request header")

	// ErrWrongCredentials signals that username or password did not match.
	ErrWrongCredentials = errors.New("invalid username or password")
)
