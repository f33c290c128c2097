package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"filmestop/internal/apierr"
	"filmestop/internal/dto/request"
	"filmestop/internal/usecase"
	"filmestop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies/. With rented=true the listing switches
// to the caller's rentals.
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseMoviesQuery(w, r)
	if !ok {
		return
	}

	if query.Rented {
		userID, ok := h.callerID(w, r)
		if !ok {
			return
		}

		movies, err := h.service.GetRentedMovies(r.Context(), userID)
		if err != nil {
			respondError(w, h.log, err)
			return
		}

		utils.ResponseSuccess(w, "Filmes alugados encontrados com sucesso", map[string]any{"movies": movies})
		return
	}

	movies, err := h.service.GetMovies(r.Context(), query)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "", map[string]any{"movies": movies})
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "", movie)
}

// CreateMovie handles POST /api/movies/
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.log, apierr.New(apierr.ValidationError))
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		respondValidationError(w, validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Filme criado com sucesso", movie)
}

// RentMovie handles POST /api/movies/{id}/rent
func (h *MovieHandler) RentMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	movieID := chi.URLParam(r, "id")

	if err := h.service.RentMovie(r.Context(), movieID, userID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Filme alugado com sucesso", nil)
}

// AddReview handles POST /api/movies/{id}/rate
func (h *MovieHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	movieID := chi.URLParam(r, "id")

	var req request.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.log, apierr.New(apierr.ValidationError))
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		respondValidationError(w, validationErrors)
		return
	}

	review, err := h.service.AddReview(r.Context(), movieID, userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Avaliação criada com sucesso", review)
}

// parseMoviesQuery validates the listing query string
func (h *MovieHandler) parseMoviesQuery(w http.ResponseWriter, r *http.Request) (*request.GetMoviesQuery, bool) {
	values := r.URL.Query()

	rented := false
	if raw := values.Get("rented"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondValidationError(w, map[string]string{"rented": "Must be a boolean"})
			return nil, false
		}
		rented = parsed
	}

	query := &request.GetMoviesQuery{
		Page:   utils.ParseInt(values.Get("page"), 1),
		Limit:  utils.ClampLimit(utils.ParseInt(values.Get("limit"), 100)),
		Search: values.Get("search"),
		Genre:  values.Get("genre"),
		Rented: rented,
	}

	if validationErrors := utils.ValidateStruct(query); len(validationErrors) > 0 {
		respondValidationError(w, validationErrors)
		return nil, false
	}

	return query, true
}

// callerID reads the authenticated user id the auth middleware injected
func (h *MovieHandler) callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, h.log, apierr.New(apierr.Unauthorized))
		return uuid.Nil, false
	}
	return userID, true
}
