package usecase

import (
	"context"
	"time"

	"filmestop/internal/apierr"
	"filmestop/internal/data/entity"
	"filmestop/internal/data/repository"
	"filmestop/internal/dto/request"
	"filmestop/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// rentalWindow is how long a rental stays active after creation.
const rentalWindow = 7 * 24 * time.Hour

type MovieService interface {
	GetMovies(ctx context.Context, query *request.GetMoviesQuery) (*response.MovieListResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	RentMovie(ctx context.Context, movieID string, userID uuid.UUID) error
	GetRentedMovies(ctx context.Context, userID uuid.UUID) (*response.RentedMovieListResponse, error)
	AddReview(ctx context.Context, movieID string, userID uuid.UUID, req *request.AddReviewRequest) (*response.ReviewResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

// GetMovies lists movies: search filters by title, genre by genre, and with
// neither set the result is a plain page in store order. Search wins when
// both are present.
func (s *movieService) GetMovies(ctx context.Context, query *request.GetMoviesQuery) (*response.MovieListResponse, error) {
	limit := query.Limit
	offset := query.Offset()

	var movies []*entity.Movie
	var err error

	switch {
	case query.Search != "":
		movies, err = s.repo.Movie.FindByTitle(ctx, query.Search, limit, offset)
	case query.Genre != "":
		movies, err = s.repo.Movie.FindByGenre(ctx, query.Genre, limit, offset)
	default:
		movies, err = s.repo.Movie.FindAll(ctx, limit, offset)
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int("page", query.Page),
		zap.Int("limit", limit),
		zap.String("search", query.Search),
		zap.String("genre", query.Genre),
	)

	listResp := response.MoviesToListResponse(movies)
	return &listResp, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:           req.Title,
		Year:            req.Year,
		Genre:           req.Genre,
		DurationMinutes: req.Duration,
		TotalReviews:    0,
		AverageRating:   0,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

// RentMovie creates a rental for the pair. A rental on record blocks
// renting again even past its expiry; the unique constraint keeps
// concurrent attempts from slipping through.
func (s *movieService) RentMovie(ctx context.Context, movieID string, userID uuid.UUID) error {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return err
	}

	if err := s.findUser(ctx, userID); err != nil {
		return err
	}

	rental, err := s.repo.Rental.FindByUserAndMovie(ctx, userID, movie.ID)
	if err != nil {
		return err
	}
	if rental != nil {
		return apierr.New(apierr.MovieAlreadyRented, map[string]any{"movie_id": movieID})
	}

	now := time.Now()
	newRental := &entity.Rental{
		ID:        uuid.New(),
		UserID:    userID,
		MovieID:   movie.ID,
		RentedAt:  now,
		ExpiresAt: now.Add(rentalWindow),
	}

	if err := s.repo.Rental.Create(ctx, newRental); err != nil {
		return err
	}

	s.log.Info("Movie rented",
		zap.String("movie_id", movieID),
		zap.String("user_id", userID.String()),
		zap.Time("expires_at", newRental.ExpiresAt),
	)

	return nil
}

func (s *movieService) GetRentedMovies(ctx context.Context, userID uuid.UUID) (*response.RentedMovieListResponse, error) {
	if err := s.findUser(ctx, userID); err != nil {
		return nil, err
	}

	movies, rentals, err := s.repo.Rental.FindMoviesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	listResp := response.RentedMoviesToListResponse(movies, rentals)
	return &listResp, nil
}

// AddReview records a review for a movie the caller has rented and folds the
// rating into the movie's running average inside one transaction.
func (s *movieService) AddReview(ctx context.Context, movieID string, userID uuid.UUID, req *request.AddReviewRequest) (*response.ReviewResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.New(apierr.UserNotFound)
	}

	rental, err := s.repo.Rental.FindByUserAndMovie(ctx, userID, movie.ID)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, apierr.New(apierr.ReviewNotRentedMovie, map[string]any{"movie_id": movieID})
	}

	existing, err := s.repo.Review.FindByUserAndMovie(ctx, userID, movie.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.New(apierr.ReviewAlreadyRated, map[string]any{"movie_id": movieID})
	}

	rating := *req.Rating
	now := time.Now()
	review := &entity.Review{
		UserID:    userID,
		MovieID:   movie.ID,
		Rating:    rating,
		Comment:   req.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Running mean: new_avg = (old_avg*old_count + rating) / (old_count+1)
	totalReviews := movie.TotalReviews + 1
	averageRating := (movie.AverageRating*float64(movie.TotalReviews) + rating) / float64(totalReviews)

	if err := s.repo.Review.CreateWithMovieRating(ctx, review, totalReviews, averageRating); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.String("movie_id", movieID),
		zap.String("user_id", userID.String()),
		zap.Float64("rating", rating),
		zap.Float64("average_rating", averageRating),
	)

	reviewResp := response.ReviewToResponse(review, user.Name)
	return &reviewResp, nil
}

// ==================== HELPER METHODS ====================

func (s *movieService) findMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		// An id that cannot exist reads the same as one that does not
		return nil, apierr.New(apierr.MovieNotFound, map[string]any{"movie_id": movieID})
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apierr.New(apierr.MovieNotFound, map[string]any{"movie_id": movieID})
	}

	return movie, nil
}

func (s *movieService) findUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apierr.New(apierr.UserNotFound)
	}
	return nil
}
