package wire

import (
	"filmestop/internal/adaptor"
	"filmestop/pkg/middleware"
	"filmestop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Every movie route requires a valid access token
	r.Route("/api/movies", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Get("/", movieHandler.GetMovies)
		r.Post("/", movieHandler.CreateMovie)
		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Post("/{id}/rent", movieHandler.RentMovie)
		r.Post("/{id}/rate", movieHandler.AddReview)
	})
}
