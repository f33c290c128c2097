package adaptor_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"filmestop/internal/adaptor"
	"filmestop/internal/dto/request"
	"filmestop/internal/dto/response"
	"filmestop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Stub services returning canned results, one field per operation.

type fakeAuthService struct {
	registerResp *response.UserResponse
	registerErr  error
	loginResp    *response.LoginResponse
	loginErr     error
}

func (f *fakeAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

type fakeMovieService struct {
	listResp   *response.MovieListResponse
	listErr    error
	getResp    *response.MovieResponse
	getErr     error
	createResp *response.MovieResponse
	createErr  error
	rentErr    error
	rentedResp *response.RentedMovieListResponse
	rentedErr  error
	reviewResp *response.ReviewResponse
	reviewErr  error

	gotMovieID string
	gotUserID  uuid.UUID
}

func (f *fakeMovieService) GetMovies(ctx context.Context, query *request.GetMoviesQuery) (*response.MovieListResponse, error) {
	return f.listResp, f.listErr
}

func (f *fakeMovieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	f.gotMovieID = movieID
	return f.getResp, f.getErr
}

func (f *fakeMovieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeMovieService) RentMovie(ctx context.Context, movieID string, userID uuid.UUID) error {
	f.gotMovieID = movieID
	f.gotUserID = userID
	return f.rentErr
}

func (f *fakeMovieService) GetRentedMovies(ctx context.Context, userID uuid.UUID) (*response.RentedMovieListResponse, error) {
	f.gotUserID = userID
	return f.rentedResp, f.rentedErr
}

func (f *fakeMovieService) AddReview(ctx context.Context, movieID string, userID uuid.UUID, req *request.AddReviewRequest) (*response.ReviewResponse, error) {
	f.gotMovieID = movieID
	f.gotUserID = userID
	return f.reviewResp, f.reviewErr
}

// newMovieRouter wires the movie routes the way the app does, with an
// optional authenticated caller injected into the context.
func newMovieRouter(svc *fakeMovieService, caller uuid.UUID) *chi.Mux {
	h := adaptor.NewMovieHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	if caller != uuid.Nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(utils.SetUserContext(req.Context(), caller)))
			})
		})
	}
	r.Get("/api/movies/", h.GetMovies)
	r.Post("/api/movies/", h.CreateMovie)
	r.Get("/api/movies/{id}", h.GetMovieByID)
	r.Post("/api/movies/{id}/rent", h.RentMovie)
	r.Post("/api/movies/{id}/rate", h.AddReview)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors utils.Response with Code left loose: a float64 on
// success, a string on failure, per json decoding into any.
type envelope struct {
	Code    any            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return env
}
