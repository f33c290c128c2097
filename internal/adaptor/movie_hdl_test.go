package adaptor_test

import (
	"net/http"
	"testing"
	"time"

	"filmestop/internal/apierr"
	"filmestop/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMoviesHandler(t *testing.T) {
	svc := &fakeMovieService{
		listResp: &response.MovieListResponse{
			Data: []response.MovieResponse{{ID: uuid.NewString(), Title: "A Origem"}},
		},
	}
	router := newMovieRouter(svc, uuid.New())

	rec := doRequest(t, router, http.MethodGet, "/api/movies/?search=origem", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, float64(200), env.Code)

	movies, ok := env.Data["movies"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, movies["data"], 1)
}

func TestGetMoviesHandlerRented(t *testing.T) {
	caller := uuid.New()
	svc := &fakeMovieService{
		rentedResp: &response.RentedMovieListResponse{
			Data: []response.RentedMovieResponse{{
				MovieResponse: response.MovieResponse{ID: uuid.NewString(), Title: "A Origem"},
				RentedAt:      time.Now(),
				ExpiresAt:     time.Now().Add(7 * 24 * time.Hour),
			}},
		},
	}
	router := newMovieRouter(svc, caller)

	rec := doRequest(t, router, http.MethodGet, "/api/movies/?rented=true", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Filmes alugados encontrados com sucesso", env.Message)
	assert.Equal(t, caller, svc.gotUserID)
}

func TestGetMoviesHandlerBadRentedFlag(t *testing.T) {
	router := newMovieRouter(&fakeMovieService{}, uuid.New())

	rec := doRequest(t, router, http.MethodGet, "/api/movies/?rented=talvez", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)
}

func TestGetMovieByIDHandlerNotFound(t *testing.T) {
	movieID := uuid.NewString()
	svc := &fakeMovieService{
		getErr: apierr.New(apierr.MovieNotFound, map[string]any{"movie_id": movieID}),
	}
	router := newMovieRouter(svc, uuid.New())

	rec := doRequest(t, router, http.MethodGet, "/api/movies/"+movieID, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "MOVIE_NOT_FOUND", env.Code)
	assert.Equal(t, movieID, svc.gotMovieID)
}

func TestCreateMovieHandler(t *testing.T) {
	svc := &fakeMovieService{
		createResp: &response.MovieResponse{ID: uuid.NewString(), Title: "A Origem"},
	}
	router := newMovieRouter(svc, uuid.New())

	rec := doRequest(t, router, http.MethodPost, "/api/movies/",
		`{"title":"A Origem","year":2010,"genre":"Ficção Científica","duration":148}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Filme criado com sucesso", env.Message)
	assert.Equal(t, "A Origem", env.Data["title"])
}

func TestCreateMovieHandlerValidation(t *testing.T) {
	router := newMovieRouter(&fakeMovieService{}, uuid.New())

	rec := doRequest(t, router, http.MethodPost, "/api/movies/",
		`{"title":"","year":1700,"genre":"","duration":0}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)

	fieldErrors, ok := env.Data["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "Title")
	assert.Contains(t, fieldErrors, "Year")
}

func TestRentMovieHandler(t *testing.T) {
	caller := uuid.New()
	movieID := uuid.NewString()
	svc := &fakeMovieService{}
	router := newMovieRouter(svc, caller)

	rec := doRequest(t, router, http.MethodPost, "/api/movies/"+movieID+"/rent", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Filme alugado com sucesso", env.Message)
	assert.Equal(t, movieID, svc.gotMovieID)
	assert.Equal(t, caller, svc.gotUserID)
}

func TestRentMovieHandlerConflict(t *testing.T) {
	movieID := uuid.NewString()
	svc := &fakeMovieService{
		rentErr: apierr.New(apierr.MovieAlreadyRented, map[string]any{"movie_id": movieID}),
	}
	router := newMovieRouter(svc, uuid.New())

	rec := doRequest(t, router, http.MethodPost, "/api/movies/"+movieID+"/rent", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "MOVIE_ALREADY_RENTED", env.Code)
	assert.Equal(t, "O filme já está alugado", env.Message)
}

func TestRentMovieHandlerNoCaller(t *testing.T) {
	router := newMovieRouter(&fakeMovieService{}, uuid.Nil)

	rec := doRequest(t, router, http.MethodPost, "/api/movies/"+uuid.NewString()+"/rent", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "UNAUTHORIZED", env.Code)
}

func TestAddReviewHandler(t *testing.T) {
	caller := uuid.New()
	movieID := uuid.NewString()
	svc := &fakeMovieService{
		reviewResp: &response.ReviewResponse{ID: 1, Rating: 8.5, UserName: "João Silva"},
	}
	router := newMovieRouter(svc, caller)

	rec := doRequest(t, router, http.MethodPost, "/api/movies/"+movieID+"/rate",
		`{"rating":8.5,"comment":"Muito bom"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Avaliação criada com sucesso", env.Message)
	assert.Equal(t, 8.5, env.Data["rating"])
	assert.Equal(t, movieID, svc.gotMovieID)
	assert.Equal(t, caller, svc.gotUserID)
}

func TestAddReviewHandlerMissingRating(t *testing.T) {
	router := newMovieRouter(&fakeMovieService{}, uuid.New())

	rec := doRequest(t, router, http.MethodPost, "/api/movies/"+uuid.NewString()+"/rate",
		`{"comment":"Sem nota"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)

	fieldErrors, ok := env.Data["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "Rating")
}

func TestAddReviewHandlerNotRented(t *testing.T) {
	movieID := uuid.NewString()
	svc := &fakeMovieService{
		reviewErr: apierr.New(apierr.ReviewNotRentedMovie, map[string]any{"movie_id": movieID}),
	}
	router := newMovieRouter(svc, uuid.New())

	rec := doRequest(t, router, http.MethodPost, "/api/movies/"+movieID+"/rate",
		`{"rating":8.5}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "TRY_REVIEW_NOT_RENTED_MOVIE", env.Code)
}
