package response

import (
	"filmestop/internal/data/entity"
)

type MovieResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Year            int     `json:"year"`
	Genre           string  `json:"genre"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	TotalReviews    int     `json:"total_reviews"`
	AverageRating   float64 `json:"average_rating"`
}

type MovieListResponse struct {
	Data []MovieResponse `json:"data"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:              movie.ID.String(),
		Title:           movie.Title,
		Year:            movie.Year,
		Genre:           movie.Genre,
		Description:     movie.Description,
		DurationMinutes: movie.DurationMinutes,
		TotalReviews:    movie.TotalReviews,
		AverageRating:   movie.AverageRating,
	}
}

func MoviesToListResponse(movies []*entity.Movie) MovieListResponse {
	data := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		data[i] = MovieToResponse(movie)
	}
	return MovieListResponse{Data: data}
}
