package commentmock

import (
	"context"

	domain "approvalflow-backend/internal/domain/comment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, c *domain.Comment) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Comment, error)
	ListActiveByRequestFn func(ctx context.Context, requestNumericID uint64) ([]domain.Comment, error)
	SaveFn                func(ctx context.Context, c *domain.Comment) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListActiveByRequest(ctx context.Context, requestNumericID uint64) ([]domain.Comment, error) {
	if m.ListActiveByRequestFn != nil {
		return m.ListActiveByRequestFn(ctx, requestNumericID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, c *domain.Comment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
