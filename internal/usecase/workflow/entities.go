package workflow

import (
	"encoding/json"
	"time"

	domain "approvalflow-backend/internal/domain/workflow"
)

type StepInput struct {
	Name              string
	StepOrder         int
	Approvers         []string
	ApproverRoles     []string
	RequiredApprovals int
	TimeoutHours      *int
	IsOptional        bool
	CanDelegate       bool
	Conditions        json.RawMessage
	Config            json.RawMessage
}

type CreateInput struct {
	Code        string
	Name        string
	Type        domain.Type
	Description string
	Config      json.RawMessage
	Steps       []StepInput
}

type UpdateInput struct {
	Name        string
	Description string
	Config      json.RawMessage
}

type ReorderItem struct {
	StepID uint64 `json:"step_id"`
	Order  int    `json:"order"`
}

type StepDTO struct {
	ID                uint64   `json:"id"`
	StepOrder         int      `json:"step_order"`
	Name              string   `json:"name"`
	Approvers         []string `json:"approvers"`
	ApproverRoles     []string `json:"approver_roles,omitempty"`
	RequiredApprovals int      `json:"required_approvals"`
	TimeoutHours      *int     `json:"timeout_hours,omitempty"`
	IsOptional        bool     `json:"is_optional"`
	CanDelegate       bool     `json:"can_delegate"`
}

type WorkflowDTO struct {
	ID          uint64      `json:"id"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Type        domain.Type `json:"type"`
	Version     int         `json:"version"`
	Description string      `json:"description,omitempty"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	Steps       []StepDTO   `json:"steps,omitempty"`
}
