package delegation

import (
	"context"
	"errors"
	"time"

	"approvalflow-backend/internal/domain/apperr"
	domain "approvalflow-backend/internal/domain/delegation"
	"approvalflow-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase is the delegation registry plus the step resolver: it owns
// window/overlap validation and computes effective approver sets at
// evaluation time.
type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*DelegationDTO, error) {
	if in.FromUserID == "" || in.ToUserID == "" {
		return nil, apperr.Validation("from_user_id and to_user_id are required")
	}
	if in.FromUserID == in.ToUserID {
		return nil, apperr.Validation("cannot delegate to yourself")
	}
	if !in.StartDate.Before(in.EndDate) {
		return nil, apperr.Validation("start date must be before end date")
	}

	// Inclusive-boundary overlap: existing.start <= new.end AND
	// existing.end >= new.start, same (from, to, scope) triple.
	overlapping, err := u.repo.FindOverlapping(ctx, in.FromUserID, in.ToUserID, in.WorkflowCode, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, apperr.Validation("overlapping delegation exists")
	}

	d := &domain.Delegation{
		DelegationID:     id.NewID32(),
		FromUserID:       in.FromUserID,
		ToUserID:         in.ToUserID,
		WorkflowCode:     in.WorkflowCode,
		StartDate:        in.StartDate.UTC(),
		EndDate:          in.EndDate.UTC(),
		Reason:           in.Reason,
		DelegationActive: true,
		IsActive:         true,
	}
	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

func (u *Usecase) ListMine(ctx context.Context, userID string) ([]DelegationDTO, error) {
	rows, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]DelegationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// FindActiveDelegations returns the delegations currently in force for
// userID, optionally narrowed to a workflow code ("" = any).
func (u *Usecase) FindActiveDelegations(ctx context.Context, userID, workflowCode string) ([]DelegationDTO, error) {
	rows, err := u.repo.FindActive(ctx, userID, workflowCode, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	out := make([]DelegationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// EffectiveApprovers expands the static approver list with every user the
// originals have currently delegated to. Originals come first, delegates
// are appended, duplicates removed.
func (u *Usecase) EffectiveApprovers(ctx context.Context, approvers []string, workflowCode string) ([]string, error) {
	effective, _, err := u.ExpandApprovers(ctx, approvers, workflowCode)
	return effective, err
}

// ExpandApprovers additionally reports which original each delegate acts
// for, so the engine can stamp delegated_by on recorded actions. When a
// user holds delegations from several originals, the first match wins.
func (u *Usecase) ExpandApprovers(ctx context.Context, approvers []string, workflowCode string) ([]string, map[string]string, error) {
	now := time.Now().UTC()
	seen := make(map[string]struct{}, len(approvers))
	effective := make([]string, 0, len(approvers))
	delegatedBy := make(map[string]string)

	for _, a := range approvers {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		effective = append(effective, a)
	}
	for _, a := range approvers {
		rows, err := u.repo.FindActive(ctx, a, workflowCode, now)
		if err != nil {
			return nil, nil, err
		}
		for i := range rows {
			to := rows[i].ToUserID
			if _, ok := seen[to]; ok {
				continue
			}
			seen[to] = struct{}{}
			effective = append(effective, to)
			delegatedBy[to] = a
		}
	}
	return effective, delegatedBy, nil
}

// Deactivate switches a delegation off. Only its own grantor may do so.
func (u *Usecase) Deactivate(ctx context.Context, delegationID, callerID string) error {
	d, err := u.get(ctx, delegationID)
	if err != nil {
		return err
	}
	if d.FromUserID != callerID {
		return apperr.Forbidden("only the delegating user may deactivate this delegation")
	}
	d.DelegationActive = false
	return u.repo.Save(ctx, d)
}

// Delete soft-deletes a delegation. Only its own grantor may do so.
func (u *Usecase) Delete(ctx context.Context, delegationID, callerID string) error {
	d, err := u.get(ctx, delegationID)
	if err != nil {
		return err
	}
	if d.FromUserID != callerID {
		return apperr.Forbidden("only the delegating user may delete this delegation")
	}
	return u.repo.SoftDelete(ctx, d.ID)
}

// CleanupExpired flips delegation_active off for every delegation past its
// end date. Idempotent: a repeat run matches zero rows.
func (u *Usecase) CleanupExpired(ctx context.Context) (int64, error) {
	return u.repo.DeactivateExpired(ctx, time.Now().UTC())
}

func (u *Usecase) get(ctx context.Context, delegationID string) (*domain.Delegation, error) {
	d, err := u.repo.GetByDelegationID(ctx, delegationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("delegation %s not found", delegationID)
		}
		return nil, err
	}
	return d, nil
}

func toDTO(d *domain.Delegation) *DelegationDTO {
	return &DelegationDTO{
		DelegationID:     d.DelegationID,
		FromUserID:       d.FromUserID,
		ToUserID:         d.ToUserID,
		WorkflowCode:     d.WorkflowCode,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		Reason:           d.Reason,
		DelegationActive: d.DelegationActive,
		CreatedAt:        d.CreatedAt,
	}
}
