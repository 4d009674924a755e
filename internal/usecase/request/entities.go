package request

import (
	"encoding/json"
	"time"

	domain "approvalflow-backend/internal/domain/request"
)

type CreateInput struct {
	WorkflowCode string
	RequesterID  string
	Title        string
	Description  string
	EntityType   string
	EntityID     string
	EntityData   json.RawMessage
	Priority     string
	DueDate      *time.Time
}

type ActionInput struct {
	ApproverID   string
	ApproverName string
	Decision     domain.Decision
	Comments     string
}

type ActionDTO struct {
	ID           uint64          `json:"id"`
	ApproverID   string          `json:"approver_id"`
	ApproverName string          `json:"approver_name,omitempty"`
	Action       domain.Decision `json:"action"`
	Comments     string          `json:"comments,omitempty"`
	ActionDate   time.Time       `json:"action_date"`
	DelegatedBy  string          `json:"delegated_by,omitempty"`
}

type StepInstanceDTO struct {
	ID                uint64                `json:"id"`
	StepOrder         int                   `json:"step_order"`
	Name              string                `json:"name"`
	AssignedApprovers []string              `json:"assigned_approvers"`
	RequiredApprovals int                   `json:"required_approvals"`
	CurrentApprovals  int                   `json:"current_approvals"`
	Status            domain.InstanceStatus `json:"status"`
	StartedAt         *time.Time            `json:"started_at,omitempty"`
	CompletedAt       *time.Time            `json:"completed_at,omitempty"`
	DueDate           *time.Time            `json:"due_date,omitempty"`
	Actions           []ActionDTO           `json:"actions,omitempty"`
}

type RequestDTO struct {
	RequestID        string          `json:"request_id"`
	WorkflowCode     string          `json:"workflow_code"`
	RequesterID      string          `json:"requester_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	EntityType       string          `json:"entity_type"`
	EntityID         string          `json:"entity_id"`
	EntityData       json.RawMessage `json:"entity_data,omitempty"`
	Status           domain.Status   `json:"status"`
	Priority         string          `json:"priority"`
	CurrentStepOrder int             `json:"current_step_order"`
	SubmittedAt      time.Time       `json:"submitted_at"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	RejectionReason  string          `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	StepInstances    []StepInstanceDTO `json:"step_instances,omitempty"`
}

type PageDTO struct {
	Items []RequestDTO `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

func actionDTO(a *domain.Action) ActionDTO {
	return ActionDTO{
		ID:           a.ID,
		ApproverID:   a.ApproverID,
		ApproverName: a.ApproverName,
		Action:       a.Action,
		Comments:     a.Comments,
		ActionDate:   a.ActionDate,
		DelegatedBy:  a.DelegatedBy,
	}
}

func instanceDTO(si *domain.StepInstance) StepInstanceDTO {
	dto := StepInstanceDTO{
		ID:                si.ID,
		StepOrder:         si.StepOrder,
		Name:              si.Name,
		AssignedApprovers: si.AssignedApprovers,
		RequiredApprovals: si.RequiredApprovals,
		CurrentApprovals:  si.CurrentApprovals,
		Status:            si.Status,
		StartedAt:         si.StartedAt,
		CompletedAt:       si.CompletedAt,
		DueDate:           si.DueDate,
	}
	for i := range si.Actions {
		dto.Actions = append(dto.Actions, actionDTO(&si.Actions[i]))
	}
	return dto
}

func toDTO(r *domain.Request, withInstances bool) *RequestDTO {
	dto := &RequestDTO{
		RequestID:        r.RequestID,
		WorkflowCode:     r.WorkflowCode,
		RequesterID:      r.RequesterID,
		Title:            r.Title,
		Description:      r.Description,
		EntityType:       r.EntityType,
		EntityID:         r.EntityID,
		EntityData:       r.EntityData,
		Status:           r.Status,
		Priority:         r.Priority,
		CurrentStepOrder: r.CurrentStepOrder,
		SubmittedAt:      r.SubmittedAt,
		CompletedAt:      r.CompletedAt,
		DueDate:          r.DueDate,
		RejectionReason:  r.RejectionReason,
		CreatedAt:        r.CreatedAt,
	}
	if withInstances {
		for i := range r.StepInstances {
			dto.StepInstances = append(dto.StepInstances, instanceDTO(&r.StepInstances[i]))
		}
	}
	return dto
}
