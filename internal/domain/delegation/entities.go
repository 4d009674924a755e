package delegation

import (
	"time"

	"gorm.io/gorm"
)

// Delegation is a time-bounded authority transfer. A nil WorkflowCode
// scopes the delegation to every workflow.
type Delegation struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	DelegationID string    `gorm:"column:delegation_id;type:char(32);uniqueIndex:ux_delegations_delegation_id" json:"delegation_id"`
	FromUserID   string    `gorm:"size:64;not null;index" json:"from_user_id"`
	ToUserID     string    `gorm:"size:64;not null" json:"to_user_id"`
	WorkflowCode *string   `gorm:"size:64;index" json:"workflow_code,omitempty"`
	StartDate    time.Time `gorm:"not null" json:"start_date"`
	EndDate      time.Time `gorm:"not null" json:"end_date"`
	Reason       string    `gorm:"type:text" json:"reason,omitempty"`
	// DelegationActive is the business on/off switch; IsActive is the
	// entity-level flag shared with the rest of the model.
	DelegationActive bool           `gorm:"not null;default:true;index" json:"delegation_active"`
	IsActive         bool           `gorm:"not null;default:true" json:"is_active"`
	LockVersion      int            `gorm:"not null;default:0" json:"-"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Delegation) TableName() string { return "delegations" }

// InWindow reports whether at falls inside the delegation window
// (boundaries inclusive).
func (d *Delegation) InWindow(at time.Time) bool {
	return !at.Before(d.StartDate) && !at.After(d.EndDate)
}

// ScopeMatches reports whether the delegation applies to workflowCode.
// An unscoped delegation (nil code) matches every workflow; an empty
// query code matches every delegation.
func (d *Delegation) ScopeMatches(workflowCode string) bool {
	if workflowCode == "" || d.WorkflowCode == nil {
		return true
	}
	return *d.WorkflowCode == workflowCode
}
