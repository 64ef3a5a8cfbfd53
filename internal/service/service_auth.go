package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bittokks/todos-backend/internal/crypto"
	"github.com/bittokks/todos-backend/internal/errs"
	"github.com/bittokks/todos-backend/internal/logger"
	"github.com/bittokks/todos-backend/internal/store"
	"github.com/bittokks/todos-backend/models"
)

// Conflict messages exposed to clients verbatim. They name the offending
// field and nothing else, so they are safe to return.
const (
	msgEmailExists   = "User with email already exists"
	msgUsernameTaken = "Username already taken"
)

// authService is the concrete implementation of AuthService.
// It handles user registration using a UserRepository for persistence and
// argon2id for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create users.
	userRepository store.UserRepository

	// hasher derives and verifies PHC-encoded password hashes.
	hasher crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The password is hashed before any storage is touched; if hashing fails, no
// transaction is ever opened. Persistence is a single transaction inside the
// repository, and its conflict sentinels are re-expressed as taxonomy
// variants here, at construction time, so the HTTP layer never needs to know
// about storage errors.
//
// ConfirmPassword is accepted but not compared against Password; that check
// belongs to the client today.
//
// Returns the persisted user (with server-assigned ID and CreatedAt) or:
//   - ErrInvalidDataProvided if username, e-mail, or password is empty.
//   - errs.EntityAlreadyExists if the e-mail or username is taken.
//   - errs.Internal for hashing failures and unexpected storage errors.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Email == "" || request.Password == "" {
		log.Error().Str("username", request.Username).Str("email", request.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, errs.Internal(fmt.Errorf("password hashing failed: %w", err))
	}

	user := models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: passwordHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Str("email", user.Email).Msg("user creation ended with error")

		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, errs.EntityAlreadyExists(msgEmailExists, err)
		case errors.Is(err, store.ErrUsernameAlreadyTaken):
			return models.User{}, errs.EntityAlreadyExists(msgUsernameTaken, err)
		default:
			return models.User{}, errs.Internal(fmt.Errorf("user creation ended with error: %w", err))
		}
	}

	return registeredUser, nil
}
