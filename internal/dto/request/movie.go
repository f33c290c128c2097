package request

type CreateMovieRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=100"`
	Year     int    `json:"year" validate:"required,gt=1888,lt=2100"`
	Genre    string `json:"genre" validate:"required,min=1,max=100"`
	Duration int    `json:"duration" validate:"required,min=1"`
}

// GetMoviesQuery carries the parsed query string of the movie listing
// endpoint. Search takes precedence over genre; rented switches the listing
// to the caller's rentals.
type GetMoviesQuery struct {
	Page   int    `json:"page" validate:"min=1"`
	Limit  int    `json:"limit" validate:"min=1,max=100"`
	Search string `json:"search" validate:"omitempty,max=100"`
	Genre  string `json:"genre" validate:"omitempty,max=100"`
	Rented bool   `json:"rented"`
}

func (q GetMoviesQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}
