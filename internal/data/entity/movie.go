package entity

type Movie struct {
	Base
	Title           string  `db:"title"`
	Year            int     `db:"year"`
	Description     *string `db:"description"`
	DurationMinutes int     `db:"duration_minutes"`
	Genre           string  `db:"genre"`
	TotalReviews    int     `db:"total_reviews"`
	AverageRating   float64 `db:"average_rating"`
}
