package workflow

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Type string

const (
	TypeSequential Type = "SEQUENTIAL"
	TypeParallel   Type = "PARALLEL"
	TypeUnanimous  Type = "UNANIMOUS"
	TypeMajority   Type = "MAJORITY"
	TypeAnyOne     Type = "ANY_ONE"
)

// ValidType reports whether t is one of the known workflow types.
func ValidType(t Type) bool {
	switch t {
	case TypeSequential, TypeParallel, TypeUnanimous, TypeMajority, TypeAnyOne:
		return true
	}
	return false
}

type Workflow struct {
	ID   uint64 `gorm:"primaryKey;column:id" json:"-"`
	Code string `gorm:"size:64;uniqueIndex:ux_workflows_code" json:"code"`
	Name string `gorm:"size:200;not null" json:"name"`
	Type Type   `gorm:"size:20;not null;default:'SEQUENTIAL'" json:"type"`
	// Template version, bumped by an administrator on meaningful edits.
	// In-flight requests are unaffected: they act on their own snapshots.
	Version     int             `gorm:"not null;default:1" json:"version"`
	Description string          `gorm:"type:text" json:"description"`
	Config      json.RawMessage `gorm:"type:json" json:"config,omitempty"`
	IsActive    bool            `gorm:"not null;default:true;index" json:"is_active"`
	LockVersion int             `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	Steps []Step `gorm:"foreignKey:WorkflowID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
}

func (Workflow) TableName() string { return "workflows" }

type Step struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	WorkflowID uint64 `gorm:"not null;uniqueIndex:ux_steps_workflow_order" json:"-"`
	StepOrder  int    `gorm:"not null;uniqueIndex:ux_steps_workflow_order" json:"step_order"`
	Name       string `gorm:"size:200;not null" json:"name"`
	// Explicit approver user ids; roles are an optional broader net the
	// calling layer may resolve to users before request creation.
	Approvers         []string        `gorm:"serializer:json;type:json" json:"approvers"`
	ApproverRoles     []string        `gorm:"serializer:json;type:json" json:"approver_roles,omitempty"`
	RequiredApprovals int             `gorm:"not null;default:1" json:"required_approvals"`
	TimeoutHours      *int            `json:"timeout_hours,omitempty"`
	IsOptional        bool            `gorm:"not null;default:false" json:"is_optional"`
	CanDelegate       bool            `gorm:"not null;default:true" json:"can_delegate"`
	Conditions        json.RawMessage `gorm:"type:json" json:"conditions,omitempty"`
	Config            json.RawMessage `gorm:"type:json" json:"config,omitempty"`
	IsActive          bool            `gorm:"not null;default:true" json:"is_active"`
	LockVersion       int             `gorm:"not null;default:0" json:"-"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Step) TableName() string { return "workflow_steps" }

// Summary is the minimal projection used to populate pickers.
type Summary struct {
	ID   uint64 `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Type Type   `json:"type"`
}
