package service

import (
	"context"

	"github.com/bittokks/todos-backend/models"
)

// AuthService owns the account lifecycle. Registration is the only
// implemented operation; login and session issuance are future flows.
type AuthService interface {
	// RegisterUser hashes the password, creates the account inside one
	// storage transaction, and returns the persisted record. Failures come
	// back as taxonomy variants from the errs package, except
	// ErrInvalidDataProvided for structurally empty input.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
}
