package http

import (
	"errors"
	"net/http"

	"github.com/bittokks/todos-backend/internal/errs"
	"github.com/bittokks/todos-backend/internal/logger"
	"github.com/bittokks/todos-backend/internal/service"
	"github.com/bittokks/todos-backend/internal/store"
	"github.com/bittokks/todos-backend/internal/utils"
	"github.com/bittokks/todos-backend/models"
)

// Fixed client-visible messages. Everything not listed here or attached to a
// taxonomy variant as a reason stays in the logs.
const (
	msgPageNotFound   = "Page not found"
	msgEntityNotFound = "Entity not found"
	msgInternal       = "Internal server error"
	msgOpaque         = "Something went wrong on our end."

	msgSessionExpired   = "Session has expired. Login again"
	msgLoginToContinue  = "Login to continue"
	msgWrongCredentials = "Wrong username or password"

	msgInvalidData = "invalid data provided"
)

// classify maps a [errs.Report] to an HTTP status and a safe body message.
// Recognizers are probed in order: the taxonomy variants, the auth sentinel
// set, then the service and storage sentinel sets. An unrecognized cause
// falls through to a generic 500 so that no internal detail ever reaches the
// client.
func classify(report *errs.Report) (int, string) {
	var appErr *errs.Error
	if errors.As(report, &appErr) {
		return classifyAppError(appErr)
	}

	switch {
	case errors.Is(report, errs.ErrExpiredCredentials):
		return http.StatusUnauthorized, msgSessionExpired
	case errors.Is(report, errs.ErrMissingCredentials):
		return http.StatusUnauthorized, msgLoginToContinue
	case errors.Is(report, errs.ErrWrongCredentials):
		return http.StatusUnauthorized, msgWrongCredentials
	}

	switch {
	case errors.Is(report, service.ErrInvalidDataProvided):
		return http.StatusBadRequest, msgInvalidData
	case errors.Is(report, store.ErrEmailAlreadyExists),
		errors.Is(report, store.ErrUsernameAlreadyTaken):
		// normally converted to a taxonomy variant in the service layer;
		// recognized here in case a raw sentinel escapes
		return http.StatusConflict, report.Error()
	case errors.Is(report, store.ErrNoUserWasFound):
		return http.StatusNotFound, msgEntityNotFound
	}

	return http.StatusInternalServerError, msgOpaque
}

// classifyAppError is the exhaustive match over the closed taxonomy.
func classifyAppError(appErr *errs.Error) (int, string) {
	switch appErr.Kind() {
	case errs.KindNotFound:
		return http.StatusNotFound, msgPageNotFound
	case errs.KindEntityNotFound:
		return http.StatusNotFound, msgEntityNotFound
	case errs.KindEntityAlreadyExists:
		return http.StatusConflict, appErr.Reason()
	case errs.KindInvalidCredentials, errs.KindWrongCredentials:
		return http.StatusUnauthorized, appErr.Reason()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// writeReport logs the report's full cause chain at error severity and
// writes the classified JSON error body. The chain goes to the logs on every
// call, including the ones answered with a generic message, so operators
// keep the diagnostic detail that clients never see.
func (h *Handler) writeReport(w http.ResponseWriter, r *http.Request, report *errs.Report) {
	log := logger.FromRequest(r)

	status, message := classify(report)

	log.Error().
		Str("error_chain", report.Chain()).
		Int("status", status).
		Msg("request failed")

	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
