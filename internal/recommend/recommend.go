package recommend

import (
	"sort"
	"strconv"
	"strings"

	"github.com/RajatCoding/jktech-assignment/internal/book"
	"github.com/RajatCoding/jktech-assignment/internal/review"
)

const maxResults = 10

// FallbackReason is returned when no candidate survives the filters and the
// popularity ranking takes over.
const FallbackReason = "Showing popular books as no specific recommendations found."

// Filters narrow the candidate set. PreferredGenres is the raw
// comma-separated query value; each term is trimmed and matched as a
// case-insensitive substring of the book's genre. A non-empty ExcludeUserID
// that parses as an integer removes every book that user has reviewed;
// anything unparsable is silently ignored.
type Filters struct {
	PreferredGenres string
	MinRating       *float64
	ExcludeUserID   string
}

// Result is an ordered list of up to ten books plus the reason they were
// chosen.
type Result struct {
	Recommendations []book.Book `json:"recommendations"`
	Reason          string      `json:"reason"`
}

// Recommend applies the genre, minimum-rating, and exclusion filters over the
// full catalog, orders by average rating (descending, zero-review books count
// as 0.0) with book id descending as the tie-break, and truncates to ten.
// When nothing survives, it falls back to the same ordering over the
// unfiltered catalog.
func Recommend(books []book.Book, reviews []review.Review, f Filters) Result {
	averages := averageByBook(reviews)

	candidates := books

	if terms := genreTerms(f.PreferredGenres); len(terms) > 0 {
		candidates = filter(candidates, func(b book.Book) bool {
			genre := strings.ToLower(b.Genre)
			for _, term := range terms {
				if strings.Contains(genre, term) {
					return true
				}
			}
			return false
		})
	}

	if f.MinRating != nil {
		candidates = filter(candidates, func(b book.Book) bool {
			return averages[b.ID] >= *f.MinRating
		})
	}

	if f.ExcludeUserID != "" {
		if userID, err := strconv.ParseInt(f.ExcludeUserID, 10, 64); err == nil {
			reviewed := make(map[int64]bool)
			for _, rv := range reviews {
				if rv.UserID == userID {
					reviewed[rv.BookID] = true
				}
			}
			candidates = filter(candidates, func(b book.Book) bool {
				return !reviewed[b.ID]
			})
		}
	}

	ranked := rank(candidates, averages)
	if len(ranked) == 0 {
		return Result{
			Recommendations: rank(books, averages),
			Reason:          FallbackReason,
		}
	}

	return Result{
		Recommendations: ranked,
		Reason:          preferenceReason(f),
	}
}

func genreTerms(preferredGenres string) []string {
	var terms []string
	for _, raw := range strings.Split(preferredGenres, ",") {
		if term := strings.TrimSpace(raw); term != "" {
			terms = append(terms, strings.ToLower(term))
		}
	}
	return terms
}

// averageByBook computes the unrounded mean rating per book. Books without
// reviews are simply absent and read back as 0.0.
func averageByBook(reviews []review.Review) map[int64]float64 {
	sums := make(map[int64]float64)
	counts := make(map[int64]int)
	for _, rv := range reviews {
		sums[rv.BookID] += rv.Rating
		counts[rv.BookID]++
	}

	averages := make(map[int64]float64, len(sums))
	for bookID, sum := range sums {
		averages[bookID] = sum / float64(counts[bookID])
	}
	return averages
}

func rank(candidates []book.Book, averages map[int64]float64) []book.Book {
	ranked := make([]book.Book, len(candidates))
	copy(ranked, candidates)

	sort.Slice(ranked, func(i, j int) bool {
		ai, aj := averages[ranked[i].ID], averages[ranked[j].ID]
		if ai != aj {
			return ai > aj
		}
		return ranked[i].ID > ranked[j].ID
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}

func preferenceReason(f Filters) string {
	genreText := f.PreferredGenres
	if genreText == "" {
		genreText = "all genres"
	}
	ratingText := ""
	if f.MinRating != nil {
		ratingText = " with rating >= " + strconv.FormatFloat(*f.MinRating, 'g', -1, 64)
	}
	return "Recommended based on your preferences: " + genreText + ratingText
}

func filter(books []book.Book, keep func(book.Book) bool) []book.Book {
	kept := books[:0:0]
	for _, b := range books {
		if keep(b) {
			kept = append(kept, b)
		}
	}
	return kept
}
