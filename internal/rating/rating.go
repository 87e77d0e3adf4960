package rating

import (
	"math"

	"github.com/RajatCoding/jktech-assignment/internal/review"
)

// Aggregate is the derived per-book rating tuple. It is computed on demand
// and never persisted.
type Aggregate struct {
	BookID        int64   `json:"book_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// Compute aggregates the reviews of one book: count, and the arithmetic mean
// rounded to two decimals. An empty review set averages to 0.0.
func Compute(bookID int64, reviews []review.Review) Aggregate {
	agg := Aggregate{BookID: bookID, ReviewCount: len(reviews)}
	if len(reviews) == 0 {
		return agg
	}

	var sum float64
	for _, rv := range reviews {
		sum += rv.Rating
	}
	agg.AverageRating = Round2(sum / float64(len(reviews)))
	return agg
}

// Round2 rounds to two decimal places for display.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
