package entity

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        int64     `db:"id"` // bigserial
	UserID    uuid.UUID `db:"user_id"`
	MovieID   uuid.UUID `db:"movie_id"`
	Rating    float64   `db:"rating"` // 0-10
	Comment   *string   `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
