package recommend

import (
	"context"

	"github.com/RajatCoding/jktech-assignment/internal/book"
	"github.com/RajatCoding/jktech-assignment/internal/review"
)

// BookSource loads the full catalog for one recommendation pass.
type BookSource interface {
	ListAll(ctx context.Context) ([]book.Book, error)
}

// ReviewSource loads the full review set for one recommendation pass.
type ReviewSource interface {
	ListAll(ctx context.Context) ([]review.Review, error)
}

type Service struct {
	books   BookSource
	reviews ReviewSource
}

func NewService(books BookSource, reviews ReviewSource) *Service {
	return &Service{books: books, reviews: reviews}
}

func (s *Service) Recommend(ctx context.Context, f Filters) (Result, error) {
	books, err := s.books.ListAll(ctx)
	if err != nil {
		return Result{}, err
	}
	reviews, err := s.reviews.ListAll(ctx)
	if err != nil {
		return Result{}, err
	}
	return Recommend(books, reviews, f), nil
}
