package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account as stored in the "users" table.
// It is created exactly once by a successful registration and is never
// mutated or deleted by this service.
type User struct {
	// ID is the database-generated unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Username is the unique public handle chosen at registration.
	Username string `json:"username"`

	// Email is the unique e-mail address supplied at registration.
	Email string `json:"email"`

	// PasswordHash is the PHC-encoded argon2id hash of the user's password.
	// It must never cross a trusted boundary; JSON serialization is disabled.
	PasswordHash string `json:"-"`

	// CreatedAt is the database-assigned creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
