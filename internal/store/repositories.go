package store

import "github.com/bittokks/todos-backend/internal/logger"

// Repositories aggregates every repository the service layer depends on.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories wires all repositories to the shared database pool.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
	}
}
