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

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	FindByTitle(ctx context.Context, title string, limit, offset int) ([]*entity.Movie, error)
	FindByGenre(ctx context.Context, genre string, limit, offset int) ([]*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, year, description, duration_minutes, genre,
	       total_reviews, average_rating, created_at, updated_at`

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, year, description, duration_minutes, genre,
		                   total_reviews, average_rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Year,
		movie.Description,
		movie.DurationMinutes,
		movie.Genre,
		movie.TotalReviews,
		movie.AverageRating,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if isUniqueViolation(err) {
		r.log.Warn("Duplicate movie title", zap.String("title", movie.Title))
		return apierr.New(apierr.MovieTitleAlreadyExists, map[string]any{"title": movie.Title})
	}
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return apierr.New(apierr.ErrorCreatingMovie, map[string]any{"errors": err.Error()})
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
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
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return &movie, nil
}

// FindAll retrieves a page of movies in store order
func (r *movieRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all movies limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

// FindByTitle matches titles containing the search term, case-insensitive
func (r *movieRepository) FindByTitle(ctx context.Context, title string, limit, offset int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE title ILIKE '%' || $1 || '%'
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, title, limit, offset)
	if err != nil {
		r.log.Error("Failed to search movies by title",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("find movies by title %s: %w", title, err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

// FindByGenre matches genres containing the search term, case-insensitive
func (r *movieRepository) FindByGenre(ctx context.Context, genre string, limit, offset int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE genre ILIKE '%' || $1 || '%'
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, genre, limit, offset)
	if err != nil {
		r.log.Error("Failed to search movies by genre",
			zap.Error(err),
			zap.String("genre", genre),
		)
		return nil, fmt.Errorf("find movies by genre %s: %w", genre, err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func scanMovies(rows pgx.Rows) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
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
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}
