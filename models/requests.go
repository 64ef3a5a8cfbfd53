package models

// RegisterRequest is the JSON payload of the register endpoint.
// It is transient: decoded per request, handed to the auth service,
// and never persisted.
type RegisterRequest struct {
	// Username is the desired unique handle.
	Username string `json:"username"`

	// Email is the desired unique e-mail address.
	Email string `json:"email"`

	// Password is the plaintext password. It must never be logged
	// and never stored; only its argon2id hash reaches the database.
	Password string `json:"password"`

	// ConfirmPassword is the repeated password as typed by the user.
	// Equality with Password is expected to be checked by the client;
	// the server currently accepts the field without comparing it.
	ConfirmPassword string `json:"confirmPassword"`
}
