package usecase_test

import (
	"context"
	"strings"

	"filmestop/internal/apierr"
	"filmestop/internal/data/entity"
	"filmestop/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repositories mirroring the constraints the real schema
// enforces: unique username/email, unique movie title, one rental and one
// review per (user, movie) pair.

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return apierr.New(apierr.UserAlreadyExists)
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeMovieRepo struct {
	movies []*entity.Movie
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	for _, m := range f.movies {
		if m.Title == movie.Title {
			return apierr.New(apierr.MovieTitleAlreadyExists, map[string]any{"title": movie.Title})
		}
	}
	f.movies = append(f.movies, movie)
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	for _, m := range f.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	if offset >= len(f.movies) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.movies) {
		end = len(f.movies)
	}
	return f.movies[offset:end], nil
}

func (f *fakeMovieRepo) FindByTitle(ctx context.Context, title string, limit, offset int) ([]*entity.Movie, error) {
	return f.filter(func(m *entity.Movie) bool {
		return strings.Contains(strings.ToLower(m.Title), strings.ToLower(title))
	}, limit, offset), nil
}

func (f *fakeMovieRepo) FindByGenre(ctx context.Context, genre string, limit, offset int) ([]*entity.Movie, error) {
	return f.filter(func(m *entity.Movie) bool {
		return strings.Contains(strings.ToLower(m.Genre), strings.ToLower(genre))
	}, limit, offset), nil
}

func (f *fakeMovieRepo) filter(match func(*entity.Movie) bool, limit, offset int) []*entity.Movie {
	var all []*entity.Movie
	for _, m := range f.movies {
		if match(m) {
			all = append(all, m)
		}
	}
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

type fakeRentalRepo struct {
	rentals []*entity.Rental
	movies  *fakeMovieRepo
}

func (f *fakeRentalRepo) Create(ctx context.Context, rental *entity.Rental) error {
	for _, r := range f.rentals {
		if r.UserID == rental.UserID && r.MovieID == rental.MovieID {
			return apierr.New(apierr.MovieAlreadyRented, map[string]any{"movie_id": rental.MovieID.String()})
		}
	}
	f.rentals = append(f.rentals, rental)
	return nil
}

func (f *fakeRentalRepo) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Rental, error) {
	for _, r := range f.rentals {
		if r.UserID == userID && r.MovieID == movieID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRentalRepo) FindMoviesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, []*entity.Rental, error) {
	var movies []*entity.Movie
	var rentals []*entity.Rental
	for _, r := range f.rentals {
		if r.UserID != userID {
			continue
		}
		movie, _ := f.movies.FindByID(ctx, r.MovieID)
		movies = append(movies, movie)
		rentals = append(rentals, r)
	}
	return movies, rentals, nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
	movies  *fakeMovieRepo
	nextID  int64
}

func (f *fakeReviewRepo) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error) {
	for _, r := range f.reviews {
		if r.UserID == userID && r.MovieID == movieID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) CreateWithMovieRating(ctx context.Context, review *entity.Review, totalReviews int, averageRating float64) error {
	for _, r := range f.reviews {
		if r.UserID == review.UserID && r.MovieID == review.MovieID {
			return apierr.New(apierr.ReviewAlreadyRated, map[string]any{"movie_id": review.MovieID.String()})
		}
	}

	f.nextID++
	review.ID = f.nextID
	f.reviews = append(f.reviews, review)

	movie, _ := f.movies.FindByID(ctx, review.MovieID)
	if movie != nil {
		movie.TotalReviews = totalReviews
		movie.AverageRating = averageRating
	}
	return nil
}

func newFakeRepository() *repository.Repository {
	movies := &fakeMovieRepo{}
	return &repository.Repository{
		User:   &fakeUserRepo{},
		Movie:  movies,
		Rental: &fakeRentalRepo{movies: movies},
		Review: &fakeReviewRepo{movies: movies},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
