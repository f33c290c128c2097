package response

import (
	"time"

	"filmestop/internal/data/entity"
)

type ReviewResponse struct {
	ID        int64     `json:"id"`
	Rating    float64   `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review, userName string) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		UserName:  userName,
		CreatedAt: review.CreatedAt,
	}
}
