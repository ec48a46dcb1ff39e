package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"studyaid/internal/errors"
)

// handleError centralizes error responses. Every error body has the
// shape {"detail": "..."}.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := zerolog.Ctx(r.Context())

	// Wrap unknown errors as internal errors
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error().Err(appErr).Str("code", appErr.Code).Msg("server error")
	} else {
		log.Warn().Err(appErr).Str("code", appErr.Code).Msg("client error")
	}

	writeJSON(w, appErr.Status, map[string]string{"detail": appErr.Message})
}
