package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bittokks/todos-backend/internal/logger"
	"github.com/bittokks/todos-backend/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user account and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The whole operation runs in one transaction scoped to the call: the
// deferred rollback fires on every early return, and the commit happens only
// after the insert succeeded. Sequence:
//
//  1. Pre-check SELECT for a row with the same e-mail or username, used only
//     to pick a field-specific sentinel. Two concurrent registrations can
//     both pass this check.
//  2. INSERT ... RETURNING, so the caller receives the canonical database
//     representation of the new account.
//  3. A unique_violation (23505) on the insert is the authoritative conflict
//     signal and is mapped to the same sentinels by constraint name.
//
// Error handling:
//   - e-mail conflict → [ErrEmailAlreadyExists].
//   - username conflict → [ErrUsernameAlreadyTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// pre-check for a friendlier, field-specific error message
	conflictQuery, conflictArgs, err := buildConflictQuery(user.Email, user.Username)
	if err != nil {
		return models.User{}, err
	}

	var existingEmail, existingUsername string
	err = tx.QueryRowContext(ctx, conflictQuery, conflictArgs...).Scan(&existingEmail, &existingUsername)
	switch {
	case err == nil:
		if existingEmail == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, ErrUsernameAlreadyTaken
	case !errors.Is(err, sql.ErrNoRows):
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: conflict pre-check failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	insertQuery, insertArgs, err := buildInsertUserQuery(user.Email, user.Username, user.PasswordHash)
	if err != nil {
		return models.User{}, err
	}

	var created models.User
	row := tx.QueryRowContext(ctx, insertQuery, insertArgs...)
	if err := row.Scan(&created.ID, &created.Username, &created.Email, &created.PasswordHash, &created.CreatedAt); err != nil {
		// the UNIQUE constraints win any race the pre-check missed
		if postgresError(err) == pgerrcode.UniqueViolation {
			if constraintName(err) == emailUniqueConstraint {
				return models.User{}, ErrEmailAlreadyExists
			}
			return models.User{}, ErrUsernameAlreadyTaken
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: inserting user failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: commit failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}
