package workflow

import "context"

type Repository interface {
	Create(ctx context.Context, w *Workflow) error
	GetByCode(ctx context.Context, code string) (*Workflow, error)
	GetByID(ctx context.Context, id uint64) (*Workflow, error)
	// GetByCodeWithSteps returns the workflow with its active steps
	// ordered by step_order (explicit aggregate load, no lazy fetch).
	GetByCodeWithSteps(ctx context.Context, code string) (*Workflow, error)
	ListActive(ctx context.Context) ([]Summary, error)
	Save(ctx context.Context, w *Workflow) error
	SoftDelete(ctx context.Context, id uint64) error

	CreateStep(ctx context.Context, s *Step) error
	GetStep(ctx context.Context, stepID uint64) (*Step, error)
	// ListSteps returns active steps of a workflow ordered by step_order.
	ListSteps(ctx context.Context, workflowID uint64) ([]Step, error)
	StepExists(ctx context.Context, workflowID uint64, stepOrder int) (bool, error)
	SaveStep(ctx context.Context, s *Step) error
}
