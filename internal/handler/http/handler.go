package http

import (
	"github.com/bittokks/todos-backend/internal/logger"
	"github.com/bittokks/todos-backend/internal/service"
)

// Handler holds the HTTP endpoints and their shared collaborators: the
// service layer and the root structured logger.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set over the given services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
