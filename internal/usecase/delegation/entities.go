package delegation

import "time"

type CreateInput struct {
	FromUserID   string
	ToUserID     string
	WorkflowCode *string // nil = all workflows
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
}

type DelegationDTO struct {
	DelegationID     string    `json:"delegation_id"`
	FromUserID       string    `json:"from_user_id"`
	ToUserID         string    `json:"to_user_id"`
	WorkflowCode     *string   `json:"workflow_code,omitempty"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Reason           string    `json:"reason,omitempty"`
	DelegationActive bool      `json:"delegation_active"`
	CreatedAt        time.Time `json:"created_at"`
}
