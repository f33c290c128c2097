package entity

import (
	"time"

	"github.com/google/uuid"
)

type Rental struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	MovieID   uuid.UUID `db:"movie_id"`
	RentedAt  time.Time `db:"rented_at"`
	ExpiresAt time.Time `db:"expires_at"`
}
