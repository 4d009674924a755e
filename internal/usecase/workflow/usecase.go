package workflow

import (
	"context"
	"errors"
	"sort"

	"approvalflow-backend/internal/domain/apperr"
	"approvalflow-backend/internal/domain/uow"
	domain "approvalflow-backend/internal/domain/workflow"

	"gorm.io/gorm"
)

// Usecase is the workflow definition store: named, versioned templates and
// their ordered steps. Edits here never touch requests already in flight —
// those run on their own step snapshots.
type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*WorkflowDTO, error) {
	if in.Code == "" || in.Name == "" {
		return nil, apperr.Validation("code and name are required")
	}
	if !domain.ValidType(in.Type) {
		return nil, apperr.Validation("unknown workflow type %q", in.Type)
	}

	_, err := u.repo.GetByCode(ctx, in.Code)
	switch {
	case err == nil:
		return nil, apperr.Validation("workflow code %q already exists", in.Code)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	orders := make(map[int]struct{}, len(in.Steps))
	steps := make([]domain.Step, 0, len(in.Steps))
	for _, s := range in.Steps {
		if s.StepOrder < 1 {
			return nil, apperr.Validation("step order must be >= 1")
		}
		if _, dup := orders[s.StepOrder]; dup {
			return nil, apperr.Validation("duplicate step order %d", s.StepOrder)
		}
		orders[s.StepOrder] = struct{}{}
		steps = append(steps, newStep(s))
	}

	w := &domain.Workflow{
		Code:        in.Code,
		Name:        in.Name,
		Type:        in.Type,
		Version:     1,
		Description: in.Description,
		Config:      in.Config,
		IsActive:    true,
		Steps:       steps,
	}
	if err := u.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return toDTO(w, true), nil
}

func (u *Usecase) GetByCode(ctx context.Context, code string) (*WorkflowDTO, error) {
	w, err := u.repo.GetByCodeWithSteps(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("workflow %q not found", code)
		}
		return nil, err
	}
	return toDTO(w, true), nil
}

func (u *Usecase) GetByID(ctx context.Context, id uint64) (*WorkflowDTO, error) {
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("workflow %d not found", id)
		}
		return nil, err
	}
	return toDTO(w, false), nil
}

func (u *Usecase) ListActive(ctx context.Context) ([]domain.Summary, error) {
	return u.repo.ListActive(ctx)
}

// Update edits template-level fields and bumps the template version.
// Past and in-flight requests are untouched.
func (u *Usecase) Update(ctx context.Context, code string, in UpdateInput) (*WorkflowDTO, error) {
	w, err := u.getActive(ctx, code)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		w.Name = in.Name
	}
	if in.Description != "" {
		w.Description = in.Description
	}
	if in.Config != nil {
		w.Config = in.Config
	}
	w.Version++
	if err := u.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	return toDTO(w, false), nil
}

func (u *Usecase) SoftDelete(ctx context.Context, code string) error {
	w, err := u.getActive(ctx, code)
	if err != nil {
		return err
	}
	return u.repo.SoftDelete(ctx, w.ID)
}

func (u *Usecase) AddStep(ctx context.Context, code string, in StepInput) (*StepDTO, error) {
	w, err := u.getActive(ctx, code)
	if err != nil {
		return nil, err
	}
	if in.StepOrder < 1 {
		return nil, apperr.Validation("step order must be >= 1")
	}
	occupied, err := u.repo.StepExists(ctx, w.ID, in.StepOrder)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, apperr.Validation("step order %d already occupied", in.StepOrder)
	}
	s := newStep(in)
	s.WorkflowID = w.ID
	if err := u.repo.CreateStep(ctx, &s); err != nil {
		return nil, err
	}
	dto := stepDTO(&s)
	return &dto, nil
}

// ReorderSteps reassigns step orders in one transaction: either every item
// applies or none do.
func (u *Usecase) ReorderSteps(ctx context.Context, code string, items []ReorderItem) error {
	w, err := u.getActive(ctx, code)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return apperr.Validation("no reorder items given")
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		for _, it := range items {
			s, err := r.Workflows.GetStep(ctx, it.StepID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("step %d not found", it.StepID)
				}
				return err
			}
			if s.WorkflowID != w.ID {
				return apperr.Validation("step %d does not belong to workflow %q", it.StepID, code)
			}
			if it.Order < 1 {
				return apperr.Validation("step order must be >= 1")
			}
			s.StepOrder = it.Order
			if err := r.Workflows.SaveStep(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
}

// ValidateWorkflowSteps reports whether the workflow's steps exist and,
// sorted by order, form a contiguous 1..N sequence. Used as a
// pre-activation check, not enforced on every write.
func (u *Usecase) ValidateWorkflowSteps(ctx context.Context, code string) (bool, error) {
	w, err := u.getActive(ctx, code)
	if err != nil {
		return false, err
	}
	steps, err := u.repo.ListSteps(ctx, w.ID)
	if err != nil {
		return false, err
	}
	if len(steps) == 0 {
		return false, nil
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].StepOrder < steps[j].StepOrder })
	for i, s := range steps {
		if s.StepOrder != i+1 {
			return false, nil
		}
	}
	return true, nil
}

func (u *Usecase) getActive(ctx context.Context, code string) (*domain.Workflow, error) {
	w, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("workflow %q not found", code)
		}
		return nil, err
	}
	return w, nil
}

func newStep(in StepInput) domain.Step {
	required := in.RequiredApprovals
	if required < 1 {
		required = 1
	}
	return domain.Step{
		Name:              in.Name,
		StepOrder:         in.StepOrder,
		Approvers:         in.Approvers,
		ApproverRoles:     in.ApproverRoles,
		RequiredApprovals: required,
		TimeoutHours:      in.TimeoutHours,
		IsOptional:        in.IsOptional,
		CanDelegate:       in.CanDelegate,
		Conditions:        in.Conditions,
		Config:            in.Config,
		IsActive:          true,
	}
}

func stepDTO(s *domain.Step) StepDTO {
	return StepDTO{
		ID:                s.ID,
		StepOrder:         s.StepOrder,
		Name:              s.Name,
		Approvers:         s.Approvers,
		ApproverRoles:     s.ApproverRoles,
		RequiredApprovals: s.RequiredApprovals,
		TimeoutHours:      s.TimeoutHours,
		IsOptional:        s.IsOptional,
		CanDelegate:       s.CanDelegate,
	}
}

func toDTO(w *domain.Workflow, withSteps bool) *WorkflowDTO {
	dto := &WorkflowDTO{
		ID:          w.ID,
		Code:        w.Code,
		Name:        w.Name,
		Type:        w.Type,
		Version:     w.Version,
		Description: w.Description,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
	}
	if withSteps {
		dto.Steps = make([]StepDTO, 0, len(w.Steps))
		for i := range w.Steps {
			dto.Steps = append(dto.Steps, stepDTO(&w.Steps[i]))
		}
	}
	return dto
}
