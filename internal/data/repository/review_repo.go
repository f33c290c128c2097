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

type ReviewRepository interface {
	FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error)

	// CreateWithMovieRating inserts the review and applies the movie's new
	// aggregate values in a single transaction. The review's ID is filled in
	// from the sequence on success.
	CreateWithMovieRating(ctx context.Context, review *entity.Review, totalReviews int, averageRating float64) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find review for movie %s by user %s: %w",
			movieID.String(), userID.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) CreateWithMovieRating(ctx context.Context, review *entity.Review, totalReviews int, averageRating float64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin review transaction", zap.Error(err))
		return fmt.Errorf("begin review transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO reviews (user_id, movie_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err = tx.QueryRow(ctx, insertQuery,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	).Scan(&review.ID)

	if isUniqueViolation(err) {
		r.log.Warn("Duplicate review insert",
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_id", review.MovieID.String()),
		)
		return apierr.New(apierr.ReviewAlreadyRated, map[string]any{"movie_id": review.MovieID.String()})
	}
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_id", review.MovieID.String()),
		)
		return fmt.Errorf("create review for movie %s by user %s: %w",
			review.MovieID.String(), review.UserID.String(), err)
	}

	updateQuery := `
		UPDATE movies
		SET total_reviews = $2, average_rating = $3, updated_at = $4
		WHERE id = $1
	`

	_, err = tx.Exec(ctx, updateQuery,
		review.MovieID,
		totalReviews,
		averageRating,
		review.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update movie rating",
			zap.Error(err),
			zap.String("movie_id", review.MovieID.String()),
		)
		return fmt.Errorf("update rating for movie %s: %w", review.MovieID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit review transaction", zap.Error(err))
		return fmt.Errorf("commit review transaction: %w", err)
	}

	return nil
}
