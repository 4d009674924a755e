package mysql

import (
	"testing"

	cmtDomain "approvalflow-backend/internal/domain/comment"
	delDomain "approvalflow-backend/internal/domain/delegation"
	reqDomain "approvalflow-backend/internal/domain/request"
	wfDomain "approvalflow-backend/internal/domain/workflow"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB and migrates the domain models.
// The models deliberately avoid mysql-only column types, so the same schema
// migrates cleanly here.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&wfDomain.Workflow{},
		&wfDomain.Step{},
		&reqDomain.Request{},
		&reqDomain.StepInstance{},
		&reqDomain.Action{},
		&delDomain.Delegation{},
		&cmtDomain.Comment{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
