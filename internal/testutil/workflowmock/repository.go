package workflowmock

import (
	"context"

	domain "approvalflow-backend/internal/domain/workflow"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn             func(ctx context.Context, w *domain.Workflow) error
	GetByCodeFn          func(ctx context.Context, code string) (*domain.Workflow, error)
	GetByIDFn            func(ctx context.Context, id uint64) (*domain.Workflow, error)
	GetByCodeWithStepsFn func(ctx context.Context, code string) (*domain.Workflow, error)
	ListActiveFn         func(ctx context.Context) ([]domain.Summary, error)
	SaveFn               func(ctx context.Context, w *domain.Workflow) error
	SoftDeleteFn         func(ctx context.Context, id uint64) error
	CreateStepFn         func(ctx context.Context, s *domain.Step) error
	GetStepFn            func(ctx context.Context, stepID uint64) (*domain.Step, error)
	ListStepsFn          func(ctx context.Context, workflowID uint64) ([]domain.Step, error)
	StepExistsFn         func(ctx context.Context, workflowID uint64, stepOrder int) (bool, error)
	SaveStepFn           func(ctx context.Context, s *domain.Step) error
}

func (m *Repo) Create(ctx context.Context, w *domain.Workflow) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}
func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Workflow, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Workflow, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByCodeWithSteps(ctx context.Context, code string) (*domain.Workflow, error) {
	if m.GetByCodeWithStepsFn != nil {
		return m.GetByCodeWithStepsFn(ctx, code)
	}
	return nil, context.Canceled
}
func (m *Repo) ListActive(ctx context.Context) ([]domain.Summary, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, w *domain.Workflow) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, w)
	}
	return nil
}
func (m *Repo) SoftDelete(ctx context.Context, id uint64) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id)
	}
	return nil
}
func (m *Repo) CreateStep(ctx context.Context, s *domain.Step) error {
	if m.CreateStepFn != nil {
		return m.CreateStepFn(ctx, s)
	}
	return nil
}
func (m *Repo) GetStep(ctx context.Context, stepID uint64) (*domain.Step, error) {
	if m.GetStepFn != nil {
		return m.GetStepFn(ctx, stepID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListSteps(ctx context.Context, workflowID uint64) ([]domain.Step, error) {
	if m.ListStepsFn != nil {
		return m.ListStepsFn(ctx, workflowID)
	}
	return nil, context.Canceled
}
func (m *Repo) StepExists(ctx context.Context, workflowID uint64, stepOrder int) (bool, error) {
	if m.StepExistsFn != nil {
		return m.StepExistsFn(ctx, workflowID, stepOrder)
	}
	return false, nil
}
func (m *Repo) SaveStep(ctx context.Context, s *domain.Step) error {
	if m.SaveStepFn != nil {
		return m.SaveStepFn(ctx, s)
	}
	return nil
}
