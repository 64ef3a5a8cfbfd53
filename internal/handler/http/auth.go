package http

import (
	"encoding/json"
	"net/http"

	"github.com/bittokks/todos-backend/internal/errs"
	"github.com/bittokks/todos-backend/internal/logger"
	"github.com/bittokks/todos-backend/internal/utils"
	"github.com/bittokks/todos-backend/models"
)

// register handles POST /auth/register. It decodes the JSON payload, runs
// the registration workflow, and answers 201 with the public projection of
// the new account. Every failure is boxed into a Report so the classifier
// picks the status and the safe body.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		h.writeReport(w, r, errs.NewReport(err))
		return
	}

	utils.WriteJSON(w, models.NewPublicUser(registeredUser), http.StatusCreated)
}
