package delegationmock

import (
	"context"
	"time"

	domain "approvalflow-backend/internal/domain/delegation"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, d *domain.Delegation) error
	GetByDelegationIDFn func(ctx context.Context, delegationID string) (*domain.Delegation, error)
	FindActiveFn        func(ctx context.Context, fromUserID, workflowCode string, at time.Time) ([]domain.Delegation, error)
	FindOverlappingFn   func(ctx context.Context, fromUserID, toUserID string, workflowCode *string, start, end time.Time) ([]domain.Delegation, error)
	ListByUserFn        func(ctx context.Context, fromUserID string) ([]domain.Delegation, error)
	SaveFn              func(ctx context.Context, d *domain.Delegation) error
	SoftDeleteFn        func(ctx context.Context, id uint64) error
	DeactivateExpiredFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Delegation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}
func (m *Repo) GetByDelegationID(ctx context.Context, delegationID string) (*domain.Delegation, error) {
	if m.GetByDelegationIDFn != nil {
		return m.GetByDelegationIDFn(ctx, delegationID)
	}
	return nil, context.Canceled
}
func (m *Repo) FindActive(ctx context.Context, fromUserID, workflowCode string, at time.Time) ([]domain.Delegation, error) {
	if m.FindActiveFn != nil {
		return m.FindActiveFn(ctx, fromUserID, workflowCode, at)
	}
	return nil, nil
}
func (m *Repo) FindOverlapping(ctx context.Context, fromUserID, toUserID string, workflowCode *string, start, end time.Time) ([]domain.Delegation, error) {
	if m.FindOverlappingFn != nil {
		return m.FindOverlappingFn(ctx, fromUserID, toUserID, workflowCode, start, end)
	}
	return nil, nil
}
func (m *Repo) ListByUser(ctx context.Context, fromUserID string) ([]domain.Delegation, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, fromUserID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, d *domain.Delegation) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}
func (m *Repo) SoftDelete(ctx context.Context, id uint64) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id)
	}
	return nil
}
func (m *Repo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.DeactivateExpiredFn != nil {
		return m.DeactivateExpiredFn(ctx, now)
	}
	return 0, nil
}
