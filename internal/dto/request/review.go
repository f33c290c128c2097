package request

// Rating is a pointer so that a missing field and an explicit 0 can be told
// apart: 0 is a valid rating.
type AddReviewRequest struct {
	Rating  *float64 `json:"rating" validate:"required,min=0,max=10"`
	Comment *string  `json:"comment,omitempty" validate:"omitempty,max=500"`
}
