package requestmock

import (
	"context"

	domain "approvalflow-backend/internal/domain/request"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, r *domain.Request) error
	CreateInstancesFn         func(ctx context.Context, instances []*domain.StepInstance) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.Request, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.Request, error)
	GetAggregateFn            func(ctx context.Context, requestID string) (*domain.Request, error)
	GetInstanceFn             func(ctx context.Context, requestNumericID uint64, stepOrder int) (*domain.StepInstance, error)
	GetActionByApproverFn     func(ctx context.Context, stepInstanceID uint64, approverID string) (*domain.Action, error)
	CreateActionFn            func(ctx context.Context, a *domain.Action) error
	SaveFn                    func(ctx context.Context, r *domain.Request) error
	SaveInstanceFn            func(ctx context.Context, si *domain.StepInstance) error
	FindFn                    func(ctx context.Context, f domain.Filter) ([]domain.Request, int64, error)
	FindPendingForFn          func(ctx context.Context, userID string, f domain.Filter) ([]domain.Request, int64, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *Repo) CreateInstances(ctx context.Context, instances []*domain.StepInstance) error {
	if m.CreateInstancesFn != nil {
		return m.CreateInstancesFn(ctx, instances)
	}
	return nil
}
func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetAggregate(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetAggregateFn != nil {
		return m.GetAggregateFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetInstance(ctx context.Context, requestNumericID uint64, stepOrder int) (*domain.StepInstance, error) {
	if m.GetInstanceFn != nil {
		return m.GetInstanceFn(ctx, requestNumericID, stepOrder)
	}
	return nil, context.Canceled
}
func (m *Repo) GetActionByApprover(ctx context.Context, stepInstanceID uint64, approverID string) (*domain.Action, error) {
	if m.GetActionByApproverFn != nil {
		return m.GetActionByApproverFn(ctx, stepInstanceID, approverID)
	}
	return nil, context.Canceled
}
func (m *Repo) CreateAction(ctx context.Context, a *domain.Action) error {
	if m.CreateActionFn != nil {
		return m.CreateActionFn(ctx, a)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, r *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
func (m *Repo) SaveInstance(ctx context.Context, si *domain.StepInstance) error {
	if m.SaveInstanceFn != nil {
		return m.SaveInstanceFn(ctx, si)
	}
	return nil
}
func (m *Repo) Find(ctx context.Context, f domain.Filter) ([]domain.Request, int64, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, f)
	}
	return nil, 0, context.Canceled
}
func (m *Repo) FindPendingFor(ctx context.Context, userID string, f domain.Filter) ([]domain.Request, int64, error) {
	if m.FindPendingForFn != nil {
		return m.FindPendingForFn(ctx, userID, f)
	}
	return nil, 0, context.Canceled
}
