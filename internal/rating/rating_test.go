package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RajatCoding/jktech-assignment/internal/review"
)

func reviewsWithRatings(ratings ...float64) []review.Review {
	reviews := make([]review.Review, len(ratings))
	for i, r := range ratings {
		reviews[i] = review.Review{ID: int64(i + 1), BookID: 1, Rating: r}
	}
	return reviews
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name        string
		ratings     []float64
		wantAverage float64
		wantCount   int
	}{
		{
			name:        "empty set averages to zero",
			ratings:     nil,
			wantAverage: 0.0,
			wantCount:   0,
		},
		{
			name:        "single review",
			ratings:     []float64{4.5},
			wantAverage: 4.5,
			wantCount:   1,
		},
		{
			name:        "mean of several",
			ratings:     []float64{3.0, 5.0, 4.0},
			wantAverage: 4.0,
			wantCount:   3,
		},
		{
			name:        "rounds to two decimals",
			ratings:     []float64{5.0, 4.0, 4.0},
			wantAverage: 4.33,
			wantCount:   3,
		},
		{
			name:        "rounds half up",
			ratings:     []float64{4.5, 4.0}, // mean 4.25
			wantAverage: 4.25,
			wantCount:   2,
		},
		{
			name:        "all zero ratings",
			ratings:     []float64{0.0, 0.0},
			wantAverage: 0.0,
			wantCount:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := Compute(1, reviewsWithRatings(tt.ratings...))

			assert.Equal(t, int64(1), agg.BookID)
			assert.Equal(t, tt.wantCount, agg.ReviewCount)
			assert.Equal(t, tt.wantAverage, agg.AverageRating)
		})
	}
}

func TestCompute_CountMatchesInput(t *testing.T) {
	for n := 0; n <= 25; n++ {
		ratings := make([]float64, n)
		for i := range ratings {
			ratings[i] = float64(i%6) / 1.5
		}
		agg := Compute(42, reviewsWithRatings(ratings...))
		assert.Equal(t, n, agg.ReviewCount)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.33, Round2(4.333333))
	assert.Equal(t, 4.67, Round2(4.666666))
	assert.Equal(t, 0.0, Round2(0.0))
	assert.Equal(t, 5.0, Round2(4.999))
}
