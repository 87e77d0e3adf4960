package book

import "errors"

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book represents a catalog entry.
type Book struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Genre         string  `json:"genre"`
	YearPublished int     `json:"year_published"`
	Summary       *string `json:"summary"`
}

// ListParams defines filters and pagination for listing books. Genre and
// author are case-insensitive substring filters.
type ListParams struct {
	Genre  string
	Author string
	Skip   int
	Limit  int
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Title         *string
	Author        *string
	Genre         *string
	YearPublished *int
	Summary       *string
}
