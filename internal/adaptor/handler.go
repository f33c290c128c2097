package adaptor

import (
	"errors"
	"net/http"

	"filmestop/internal/apierr"
	"filmestop/internal/usecase"
	"filmestop/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Movie *MovieHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		Movie: NewMovieHandler(service.Movie, log),
	}
}

// respondError writes any service error as the standard envelope. Domain
// errors carry their own status and code; everything else becomes the
// generic 500.
func respondError(w http.ResponseWriter, log *zap.Logger, err error) {
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		log.Error("Unhandled error", zap.Error(err))
		apiErr = apierr.Internal(err)
	}

	utils.ResponseJSON(w, apiErr.Status, string(apiErr.Code), apiErr.Message, apiErr.Data)
}

// respondValidationError wraps the per-field violations into the
// VALIDATION_ERROR envelope.
func respondValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	e := apierr.New(apierr.ValidationError, map[string]any{"errors": fieldErrors})
	utils.ResponseJSON(w, e.Status, string(e.Code), e.Message, e.Data)
}
