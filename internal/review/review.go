package review

import "time"

// Review is one user's take on one book. A user may review the same book more
// than once; duplicates are permitted.
type Review struct {
	ID         int64     `json:"id"`
	BookID     int64     `json:"book_id"`
	UserID     int64     `json:"user_id"`
	ReviewText string    `json:"review_text"`
	Rating     float64   `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}
