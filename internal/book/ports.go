package book

import "context"

// Repository defines the contract for book storage.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	List(ctx context.Context, p ListParams) ([]Book, error)
	ListAll(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	Update(ctx context.Context, id int64, p UpdateParams) (Book, error)
	Delete(ctx context.Context, id int64) error
}
