package service

import (
	"github.com/bittokks/todos-backend/internal/crypto"
	"github.com/bittokks/todos-backend/internal/logger"
	"github.com/bittokks/todos-backend/internal/store"
)

// Services aggregates every service the handler layer depends on.
type Services struct {
	AuthService AuthService
}

// NewServices wires all services to their repositories and collaborators.
func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, crypto.NewPasswordHasher(), logger),
	}
}
