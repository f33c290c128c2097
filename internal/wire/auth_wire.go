package wire

import (
	"filmestop/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes, no auth middleware
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
}
