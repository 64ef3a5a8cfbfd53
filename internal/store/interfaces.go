package store

import (
	"context"

	"github.com/bittokks/todos-backend/models"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	// CreateUser inserts a new account inside a single transaction and
	// returns the stored record with server-assigned ID and CreatedAt.
	// Conflicting e-mail or username is reported via ErrEmailAlreadyExists
	// or ErrUsernameAlreadyTaken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error codes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
