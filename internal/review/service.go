package review

import "context"

// Service provides review business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, rv *Review) error {
	return s.repo.Create(ctx, rv)
}

func (s *Service) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	return s.repo.ListByBook(ctx, bookID)
}

func (s *Service) ListAll(ctx context.Context) ([]Review, error) {
	return s.repo.ListAll(ctx)
}
