package mysql

import (
	"context"

	wfDomain "approvalflow-backend/internal/domain/workflow"

	"gorm.io/gorm"
)

type WorkflowRepository struct{ db *gorm.DB }

func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository { return &WorkflowRepository{db: db} }

func (r *WorkflowRepository) Create(ctx context.Context, w *wfDomain.Workflow) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WorkflowRepository) GetByCode(ctx context.Context, code string) (*wfDomain.Workflow, error) {
	var out wfDomain.Workflow
	res := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&out)
	return &out, res.Error
}

func (r *WorkflowRepository) GetByID(ctx context.Context, id uint64) (*wfDomain.Workflow, error) {
	var out wfDomain.Workflow
	res := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&out)
	return &out, res.Error
}

func (r *WorkflowRepository) GetByCodeWithSteps(ctx context.Context, code string) (*wfDomain.Workflow, error) {
	var out wfDomain.Workflow
	res := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("step_order ASC")
		}).
		Where("code = ? AND is_active = ?", code, true).
		First(&out)
	return &out, res.Error
}

func (r *WorkflowRepository) ListActive(ctx context.Context) ([]wfDomain.Summary, error) {
	var out []wfDomain.Summary
	err := r.db.WithContext(ctx).
		Model(&wfDomain.Workflow{}).
		Select("id, code, name, type").
		Where("is_active = ?", true).
		Order("code ASC").
		Scan(&out).Error
	return out, err
}

func (r *WorkflowRepository) Save(ctx context.Context, w *wfDomain.Workflow) error {
	return r.db.WithContext(ctx).Omit("Steps").Save(w).Error
}

func (r *WorkflowRepository) SoftDelete(ctx context.Context, id uint64) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Model(&wfDomain.Workflow{}).Where("id = ?", id).Update("is_active", false).Error; err != nil {
		return err
	}
	return tx.Delete(&wfDomain.Workflow{}, id).Error
}

func (r *WorkflowRepository) CreateStep(ctx context.Context, s *wfDomain.Step) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *WorkflowRepository) GetStep(ctx context.Context, stepID uint64) (*wfDomain.Step, error) {
	var out wfDomain.Step
	res := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", stepID, true).
		First(&out)
	return &out, res.Error
}

func (r *WorkflowRepository) ListSteps(ctx context.Context, workflowID uint64) ([]wfDomain.Step, error) {
	var out []wfDomain.Step
	err := r.db.WithContext(ctx).
		Where("workflow_id = ? AND is_active = ?", workflowID, true).
		Order("step_order ASC").
		Find(&out).Error
	return out, err
}

func (r *WorkflowRepository) StepExists(ctx context.Context, workflowID uint64, stepOrder int) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&wfDomain.Step{}).
		Where("workflow_id = ? AND step_order = ?", workflowID, stepOrder).
		Count(&n).Error
	return n > 0, err
}

func (r *WorkflowRepository) SaveStep(ctx context.Context, s *wfDomain.Step) error {
	return r.db.WithContext(ctx).Save(s).Error
}
