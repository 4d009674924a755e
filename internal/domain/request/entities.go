package request

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusReturned  Status = "RETURNED"
	StatusWithdrawn Status = "WITHDRAWN"
	StatusCancelled Status = "CANCELLED"
)

// Terminal reports whether s permits no further lifecycle transitions.
func (s Status) Terminal() bool { return s != StatusPending }

type InstanceStatus string

const (
	InstanceWaiting  InstanceStatus = "WAITING"
	InstancePending  InstanceStatus = "PENDING"
	InstanceApproved InstanceStatus = "APPROVED"
	InstanceRejected InstanceStatus = "REJECTED"
)

type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
	DecisionReturned Decision = "RETURNED"
)

func ValidDecision(d Decision) bool {
	switch d {
	case DecisionApproved, DecisionRejected, DecisionReturned:
		return true
	}
	return false
}

type Request struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	RequestID  string `gorm:"column:request_id;type:char(32);uniqueIndex:ux_requests_request_id" json:"request_id"`
	WorkflowID uint64 `gorm:"not null;index" json:"-"`
	// Denormalized for filtering without a join; frozen at creation.
	WorkflowCode     string          `gorm:"size:64;not null;index" json:"workflow_code"`
	RequesterID      string          `gorm:"size:64;not null;index" json:"requester_id"`
	Title            string          `gorm:"size:200;not null" json:"title"`
	Description      string          `gorm:"type:text" json:"description"`
	EntityType       string          `gorm:"size:64;not null;index" json:"entity_type"`
	EntityID         string          `gorm:"size:64;not null" json:"entity_id"`
	EntityData       json.RawMessage `gorm:"type:json" json:"entity_data,omitempty"`
	Status           Status          `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	Priority         string          `gorm:"size:20;not null;default:'MEDIUM'" json:"priority"`
	CurrentStepOrder int             `gorm:"not null;default:1" json:"current_step_order"`
	CurrentStepID    *uint64         `json:"current_step_id,omitempty"`
	SubmittedAt      time.Time       `json:"submitted_at"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	RejectionReason  string          `gorm:"type:text" json:"rejection_reason,omitempty"`
	IsActive         bool            `gorm:"not null;default:true" json:"is_active"`
	LockVersion      int             `gorm:"not null;default:0" json:"-"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`

	StepInstances []StepInstance `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"step_instances,omitempty"`
}

func (Request) TableName() string { return "approval_requests" }

type StepInstance struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"id"`
	RequestID uint64 `gorm:"not null;uniqueIndex:ux_instances_request_order" json:"-"`
	StepID    uint64 `gorm:"not null" json:"step_id"`
	StepOrder int    `gorm:"not null;uniqueIndex:ux_instances_request_order" json:"step_order"`
	Name      string `gorm:"size:200;not null" json:"name"`
	// Snapshot taken at request creation; delegation expansion happens at
	// evaluation time, not here.
	AssignedApprovers []string       `gorm:"serializer:json;type:json" json:"assigned_approvers"`
	RequiredApprovals int            `gorm:"not null;default:1" json:"required_approvals"`
	CurrentApprovals  int            `gorm:"not null;default:0" json:"current_approvals"`
	TimeoutHours      *int           `json:"timeout_hours,omitempty"`
	Status            InstanceStatus `gorm:"size:20;not null;default:'WAITING';index" json:"status"`
	StartedAt         *time.Time     `json:"started_at,omitempty"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty"`
	DueDate           *time.Time     `json:"due_date,omitempty"`
	LockVersion       int            `gorm:"not null;default:0" json:"-"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Actions []Action `gorm:"foreignKey:StepInstanceID;constraint:OnDelete:CASCADE" json:"actions,omitempty"`
}

func (StepInstance) TableName() string { return "approval_step_instances" }

// Action is append-only; one per (step instance, approver).
type Action struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"id"`
	StepInstanceID uint64          `gorm:"not null;uniqueIndex:ux_actions_instance_approver" json:"step_instance_id"`
	RequestID      uint64          `gorm:"not null;index" json:"-"`
	ApproverID     string          `gorm:"size:64;not null;uniqueIndex:ux_actions_instance_approver" json:"approver_id"`
	ApproverName   string          `gorm:"size:200" json:"approver_name"`
	Action         Decision        `gorm:"size:20;not null" json:"action"`
	Comments       string          `gorm:"type:text" json:"comments,omitempty"`
	ActionDate     time.Time       `gorm:"not null" json:"action_date"`
	DelegatedBy    string          `gorm:"size:64" json:"delegated_by,omitempty"`
	Attachments    json.RawMessage `gorm:"type:json" json:"attachments,omitempty"`
	Metadata       json.RawMessage `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Action) TableName() string { return "approval_actions" }
