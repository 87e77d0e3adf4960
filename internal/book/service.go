package book

import "context"

// Service provides book catalog business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, b *Book) error {
	return s.repo.Create(ctx, b)
}

func (s *Service) List(ctx context.Context, p ListParams) ([]Book, error) {
	return s.repo.List(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, p UpdateParams) (Book, error) {
	return s.repo.Update(ctx, id, p)
}

// Delete is fail-fast: a missing book yields ErrNotFound, not a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
