package review

import "context"

// Repository defines the contract for review storage.
type Repository interface {
	Create(ctx context.Context, rv *Review) error
	ListByBook(ctx context.Context, bookID int64) ([]Review, error)
	ListAll(ctx context.Context) ([]Review, error)
}
