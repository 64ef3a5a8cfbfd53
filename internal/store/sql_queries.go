package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Default names Postgres assigns to the UNIQUE constraints on the users
// table. Used to tell which field caused a unique violation on insert.
const (
	emailUniqueConstraint    = "users_email_key"
	usernameUniqueConstraint = "users_username_key"
)

// buildConflictQuery builds the pre-check SELECT that looks for an existing
// row matching either the e-mail or the username. The result is only used to
// produce a field-specific conflict message; the UNIQUE constraints are the
// source of truth.
func buildConflictQuery(email, username string) (string, []any, error) {
	query, args, err := psql.
		Select("email", "username").
		From("users").
		Where(sq.Or{
			sq.Eq{"email": email},
			sq.Eq{"username": username},
		}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertUserQuery builds the INSERT for a new account. The database
// generates id and created_at, returned via the RETURNING clause.
func buildInsertUserQuery(email, username, passwordHash string) (string, []any, error) {
	query, args, err := psql.
		Insert("users").
		Columns("email", "username", "password_hash").
		Values(email, username, passwordHash).
		Suffix("RETURNING id, username, email, password_hash, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
