package response

import (
	"time"

	"filmestop/internal/data/entity"
)

type RentedMovieResponse struct {
	MovieResponse
	RentedAt  time.Time `json:"rented_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RentedMovieListResponse struct {
	Data []RentedMovieResponse `json:"data"`
}

// RentedMoviesToListResponse pairs each movie with its rental; the two
// slices are parallel.
func RentedMoviesToListResponse(movies []*entity.Movie, rentals []*entity.Rental) RentedMovieListResponse {
	data := make([]RentedMovieResponse, len(movies))
	for i, movie := range movies {
		data[i] = RentedMovieResponse{
			MovieResponse: MovieToResponse(movie),
			RentedAt:      rentals[i].RentedAt,
			ExpiresAt:     rentals[i].ExpiresAt,
		}
	}
	return RentedMovieListResponse{Data: data}
}
