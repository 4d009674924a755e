package request

import (
	"context"
	"errors"
	"sort"
	"time"

	"approvalflow-backend/internal/domain/apperr"
	"approvalflow-backend/internal/domain/event"
	domain "approvalflow-backend/internal/domain/request"
	"approvalflow-backend/internal/domain/uow"
	wfdomain "approvalflow-backend/internal/domain/workflow"
	"approvalflow-backend/pkg/id"

	"gorm.io/gorm"
)

// ApproverResolver expands a step's static approver list with active
// delegates at evaluation time. Satisfied by the delegation usecase.
type ApproverResolver interface {
	ExpandApprovers(ctx context.Context, approvers []string, workflowCode string) ([]string, map[string]string, error)
}

// Usecase is the request lifecycle engine. It is the only writer of
// Request/StepInstance rows; callers never mutate them directly.
type Usecase struct {
	workflows wfdomain.Repository
	requests  domain.Repository
	resolver  ApproverResolver
	uow       uow.UnitOfWork
	notifier  event.Notifier
}

func NewUsecase(
	workflows wfdomain.Repository,
	requests domain.Repository,
	resolver ApproverResolver,
	tx uow.UnitOfWork,
	notifier event.Notifier,
) *Usecase {
	return &Usecase{workflows: workflows, requests: requests, resolver: resolver, uow: tx, notifier: notifier}
}

// Create materializes a request from a workflow template: one step
// instance snapshot per step, created eagerly, with only the first step
// activated. Approver lists are copied as-is here — delegation expansion
// happens when an action is evaluated, not at creation.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RequestDTO, error) {
	if in.WorkflowCode == "" || in.RequesterID == "" || in.Title == "" {
		return nil, apperr.Validation("workflow_code, requester_id and title are required")
	}
	if in.EntityType == "" || in.EntityID == "" {
		return nil, apperr.Validation("entity_type and entity_id are required")
	}

	wf, err := u.workflows.GetByCodeWithSteps(ctx, in.WorkflowCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("workflow %q not found", in.WorkflowCode)
		}
		return nil, err
	}
	steps := append([]wfdomain.Step(nil), wf.Steps...)
	if len(steps) == 0 {
		return nil, apperr.Validation("workflow has no steps")
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].StepOrder < steps[j].StepOrder })

	now := time.Now().UTC()
	priority := in.Priority
	if priority == "" {
		priority = "MEDIUM"
	}

	var (
		publicID string
		events   []event.Event
	)
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req := &domain.Request{
			RequestID:        id.NewID32(),
			WorkflowID:       wf.ID,
			WorkflowCode:     wf.Code,
			RequesterID:      in.RequesterID,
			Title:            in.Title,
			Description:      in.Description,
			EntityType:       in.EntityType,
			EntityID:         in.EntityID,
			EntityData:       in.EntityData,
			Status:           domain.StatusPending,
			Priority:         priority,
			CurrentStepOrder: steps[0].StepOrder,
			SubmittedAt:      now,
			DueDate:          in.DueDate,
			IsActive:         true,
		}
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}

		instances := make([]*domain.StepInstance, 0, len(steps))
		for i := range steps {
			s := &steps[i]
			si := &domain.StepInstance{
				RequestID:         req.ID,
				StepID:            s.ID,
				StepOrder:         s.StepOrder,
				Name:              s.Name,
				AssignedApprovers: append([]string(nil), s.Approvers...),
				RequiredApprovals: s.RequiredApprovals,
				TimeoutHours:      s.TimeoutHours,
				Status:            domain.InstanceWaiting,
			}
			if i == 0 {
				activateInstance(si, now)
			}
			instances = append(instances, si)
		}
		if err := r.Requests.CreateInstances(ctx, instances); err != nil {
			return err
		}

		req.CurrentStepID = &instances[0].ID
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}

		publicID = req.RequestID
		events = append(events,
			event.Event{Name: event.RequestCreated, Payload: map[string]any{
				"requestId":    req.RequestID,
				"requesterId":  req.RequesterID,
				"workflowCode": req.WorkflowCode,
				"entityType":   req.EntityType,
				"entityId":     req.EntityID,
			}},
			event.Event{Name: event.StepStarted, Payload: map[string]any{
				"requestId": req.RequestID,
				"stepOrder": instances[0].StepOrder,
			}},
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.emit(ctx, events)
	return u.Get(ctx, publicID)
}

// TakeAction records one approver's decision on the current step and
// advances or terminates the request. Runs under the request row lock, so
// concurrent votes on one request are applied one at a time.
func (u *Usecase) TakeAction(ctx context.Context, requestID string, in ActionInput) (*RequestDTO, error) {
	if in.ApproverID == "" {
		return nil, apperr.Validation("approver_id is required")
	}
	if !domain.ValidDecision(in.Decision) {
		return nil, apperr.Validation("unknown action %q", in.Decision)
	}

	var events []event.Event
	err := u.uow.WithinRequestTx(ctx, requestID, func(r uow.Repos, req *domain.Request) error {
		if req.Status != domain.StatusPending {
			return apperr.Validation("request is not pending (status %s)", req.Status)
		}
		inst, err := r.Requests.GetInstance(ctx, req.ID, req.CurrentStepOrder)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("current step instance not found")
			}
			return err
		}

		effective, delegatedBy, err := u.resolver.ExpandApprovers(ctx, inst.AssignedApprovers, req.WorkflowCode)
		if err != nil {
			return err
		}
		if !contains(effective, in.ApproverID) {
			return apperr.Forbidden("approver %s is not assigned to the current step", in.ApproverID)
		}

		_, err = r.Requests.GetActionByApprover(ctx, inst.ID, in.ApproverID)
		switch {
		case err == nil:
			return apperr.Validation("approver %s has already acted on this step", in.ApproverID)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		now := time.Now().UTC()
		act := &domain.Action{
			StepInstanceID: inst.ID,
			RequestID:      req.ID,
			ApproverID:     in.ApproverID,
			ApproverName:   in.ApproverName,
			Action:         in.Decision,
			Comments:       in.Comments,
			ActionDate:     now,
			DelegatedBy:    delegatedBy[in.ApproverID],
		}
		if err := r.Requests.CreateAction(ctx, act); err != nil {
			return err
		}

		switch in.Decision {
		case domain.DecisionRejected:
			inst.Status = domain.InstanceRejected
			inst.CompletedAt = &now
			if err := r.Requests.SaveInstance(ctx, inst); err != nil {
				return err
			}
			if err := terminate(ctx, r, req, domain.StatusRejected, in.Comments, now); err != nil {
				return err
			}

		case domain.DecisionReturned:
			// The step cycles back to PENDING while the request goes
			// terminal RETURNED; completed_at is still stamped on the
			// instance. Preserved as-is from the source behavior.
			inst.Status = domain.InstancePending
			inst.CompletedAt = &now
			if err := r.Requests.SaveInstance(ctx, inst); err != nil {
				return err
			}
			if err := terminate(ctx, r, req, domain.StatusReturned, in.Comments, now); err != nil {
				return err
			}

		case domain.DecisionApproved:
			inst.CurrentApprovals++
			if inst.CurrentApprovals < inst.RequiredApprovals {
				// Quorum not reached: only the counter moves.
				if err := r.Requests.SaveInstance(ctx, inst); err != nil {
					return err
				}
				break
			}
			inst.Status = domain.InstanceApproved
			inst.CompletedAt = &now
			if err := r.Requests.SaveInstance(ctx, inst); err != nil {
				return err
			}

			next, err := r.Requests.GetInstance(ctx, req.ID, req.CurrentStepOrder+1)
			switch {
			case err == nil:
				activateInstance(next, now)
				if err := r.Requests.SaveInstance(ctx, next); err != nil {
					return err
				}
				req.CurrentStepOrder = next.StepOrder
				req.CurrentStepID = &next.ID
				if err := r.Requests.Save(ctx, req); err != nil {
					return err
				}
				events = append(events, event.Event{Name: event.StepStarted, Payload: map[string]any{
					"requestId": req.RequestID,
					"stepOrder": next.StepOrder,
				}})
			case errors.Is(err, gorm.ErrRecordNotFound):
				req.Status = domain.StatusApproved
				req.CompletedAt = &now
				if err := r.Requests.Save(ctx, req); err != nil {
					return err
				}
				events = append(events, event.Event{Name: event.RequestCompleted, Payload: map[string]any{
					"requestId": req.RequestID,
					"status":    string(req.Status),
				}})
			default:
				return err
			}
		}

		events = append(events, event.Event{Name: event.ActionTaken, Payload: map[string]any{
			"requestId":      req.RequestID,
			"stepInstanceId": inst.ID,
			"approverId":     in.ApproverID,
			"action":         string(in.Decision),
		}})
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("request %s not found", requestID)
		}
		return nil, err
	}

	u.emit(ctx, events)
	return u.Get(ctx, requestID)
}

// Withdraw lets the original requester pull a still-pending request.
func (u *Usecase) Withdraw(ctx context.Context, requestID, requesterID, reason string) (*RequestDTO, error) {
	var events []event.Event
	err := u.uow.WithinRequestTx(ctx, requestID, func(r uow.Repos, req *domain.Request) error {
		if req.RequesterID != requesterID {
			return apperr.Forbidden("only the original requester may withdraw this request")
		}
		if req.Status != domain.StatusPending {
			return apperr.Validation("request is not pending (status %s)", req.Status)
		}
		now := time.Now().UTC()
		if err := terminate(ctx, r, req, domain.StatusWithdrawn, reason, now); err != nil {
			return err
		}
		events = append(events, event.Event{Name: event.RequestWithdrawn, Payload: map[string]any{
			"requestId":   req.RequestID,
			"requesterId": req.RequesterID,
			"reason":      reason,
		}})
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("request %s not found", requestID)
		}
		return nil, err
	}

	u.emit(ctx, events)
	return u.Get(ctx, requestID)
}

// Get returns the fully hydrated aggregate (instances + actions).
func (u *Usecase) Get(ctx context.Context, requestID string) (*RequestDTO, error) {
	req, err := u.requests.GetAggregate(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("request %s not found", requestID)
		}
		return nil, err
	}
	return toDTO(req, true), nil
}

func terminate(ctx context.Context, r uow.Repos, req *domain.Request, status domain.Status, reason string, now time.Time) error {
	req.Status = status
	req.RejectionReason = reason
	req.CompletedAt = &now
	return r.Requests.Save(ctx, req)
}

func activateInstance(si *domain.StepInstance, now time.Time) {
	started := now
	si.Status = domain.InstancePending
	si.StartedAt = &started
	if si.TimeoutHours != nil {
		due := now.Add(time.Duration(*si.TimeoutHours) * time.Hour)
		si.DueDate = &due
	}
}

func (u *Usecase) emit(ctx context.Context, events []event.Event) {
	if u.notifier == nil {
		return
	}
	for _, ev := range events {
		u.notifier.Emit(ctx, ev.Name, ev.Payload)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
