package repository

import (
	"context"
	"fmt"

	"filmestop/internal/apierr"
	"filmestop/internal/data/entity"
	"filmestop/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *entity.Rental) error
	FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Rental, error)
	FindMoviesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, []*entity.Rental, error)
}

type rentalRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRentalRepository(db database.PgxIface, log *zap.Logger) RentalRepository {
	return &rentalRepository{
		db:  db,
		log: log.With(zap.String("repository", "rental")),
	}
}

// Create inserts a rental. The (user_id, movie_id) unique constraint makes
// the check-and-insert race-safe: a concurrent duplicate surfaces here as
// MOVIE_ALREADY_RENTED.
func (r *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	query := `
		INSERT INTO rentals (id, user_id, movie_id, rented_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		rental.ID,
		rental.UserID,
		rental.MovieID,
		rental.RentedAt,
		rental.ExpiresAt,
	)

	if isUniqueViolation(err) {
		r.log.Warn("Duplicate rental insert",
			zap.String("user_id", rental.UserID.String()),
			zap.String("movie_id", rental.MovieID.String()),
		)
		return apierr.New(apierr.MovieAlreadyRented, map[string]any{"movie_id": rental.MovieID.String()})
	}
	if err != nil {
		r.log.Error("Failed to create rental",
			zap.Error(err),
			zap.String("user_id", rental.UserID.String()),
			zap.String("movie_id", rental.MovieID.String()),
		)
		return fmt.Errorf("create rental for movie %s by user %s: %w",
			rental.MovieID.String(), rental.UserID.String(), err)
	}

	return nil
}

func (r *rentalRepository) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Rental, error) {
	query := `
		SELECT id, user_id, movie_id, rented_at, expires_at
		FROM rentals
		WHERE user_id = $1 AND movie_id = $2
	`

	var rental entity.Rental
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&rental.ID,
		&rental.UserID,
		&rental.MovieID,
		&rental.RentedAt,
		&rental.ExpiresAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rental",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find rental for movie %s by user %s: %w",
			movieID.String(), userID.String(), err)
	}

	return &rental, nil
}

// FindMoviesByUserID returns the user's rented movies paired with their
// rentals, ordered by rental date.
func (r *rentalRepository) FindMoviesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, []*entity.Rental, error) {
	query := `
		SELECT m.id, m.title, m.year, m.description, m.duration_minutes, m.genre,
		       m.total_reviews, m.average_rating, m.created_at, m.updated_at,
		       r.id, r.user_id, r.movie_id, r.rented_at, r.expires_at
		FROM rentals r
		JOIN movies m ON m.id = r.movie_id
		WHERE r.user_id = $1
		ORDER BY r.rented_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find rented movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, nil, fmt.Errorf("find rented movies for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	var rentals []*entity.Rental
	for rows.Next() {
		var movie entity.Movie
		var rental entity.Rental
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Year,
			&movie.Description,
			&movie.DurationMinutes,
			&movie.Genre,
			&movie.TotalReviews,
			&movie.AverageRating,
			&movie.CreatedAt,
			&movie.UpdatedAt,
			&rental.ID,
			&rental.UserID,
			&rental.MovieID,
			&rental.RentedAt,
			&rental.ExpiresAt,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("scan rented movie row: %w", err)
		}
		movies = append(movies, &movie)
		rentals = append(rentals, &rental)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate rented movie rows: %w", err)
	}

	return movies, rentals, nil
}
