package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bank_portal_echo/internal/cases"
	"bank_portal_echo/internal/models"
)

// ErrMissingCaseID is returned when a case task has no usable case_id argument
var ErrMissingCaseID = errors.New("missing case_id argument")

// AnnounceCaseTaskDef marks a newly opened case as assigned to its agent
type AnnounceCaseTaskDef struct {
	log *zap.Logger
	now func() time.Time
}

// NewAnnounceCaseTask creates the announce_case task
func NewAnnounceCaseTask(log *zap.Logger) *AnnounceCaseTaskDef {
	return &AnnounceCaseTaskDef{log: log, now: time.Now}
}

// TaskID returns the unique identifier for this task
func (t *AnnounceCaseTaskDef) TaskID() string {
	return cases.FollowUpTask
}

// HandleExecution loads the case and records its assignment
func (t *AnnounceCaseTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	caseID, ok := task.Int64Arg("case_id")
	if !ok || caseID <= 0 {
		return nil, ErrMissingCaseID
	}

	var sc models.SupportCase
	if err := db.WithContext(ctx).First(&sc, caseID).Error; err != nil {
		return nil, fmt.Errorf("load case %d: %w", caseID, err)
	}

	if sc.Status == models.SupportCaseStatusAssigned {
		return map[string]interface{}{"status": "already_assigned", "case_id": sc.ID}, nil
	}

	now := t.now()
	if err := db.WithContext(ctx).Model(&sc).Updates(map[string]interface{}{
		"status":      models.SupportCaseStatusAssigned,
		"assigned_at": &now,
	}).Error; err != nil {
		return nil, fmt.Errorf("assign case %d: %w", caseID, err)
	}

	t.log.Info("Support case assigned",
		zap.Uint("case_id", sc.ID),
		zap.String("title", sc.Title),
		zap.String("assigned_user", sc.AssignedUser))

	return map[string]interface{}{
		"status":        "assigned",
		"case_id":       sc.ID,
		"assigned_user": sc.AssignedUser,
	}, nil
}

// AnnounceCaseTask identifies the announce_case task
var AnnounceCaseTask = &AnnounceCaseTaskDef{}

// CaseDigestTaskDef reports how many cases are still waiting for an agent.
// It is meant to be scheduled as a recurring task.
type CaseDigestTaskDef struct {
	log *zap.Logger
}

// NewCaseDigestTask creates the case_digest task
func NewCaseDigestTask(log *zap.Logger) *CaseDigestTaskDef {
	return &CaseDigestTaskDef{log: log}
}

// TaskID returns the unique identifier for this task
func (t *CaseDigestTaskDef) TaskID() string {
	return "case_digest"
}

// HandleExecution counts open cases
func (t *CaseDigestTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	var open int64
	if err := db.WithContext(ctx).Model(&models.SupportCase{}).
		Where("status = ?", models.SupportCaseStatusOpen).
		Count(&open).Error; err != nil {
		return nil, fmt.Errorf("count open cases: %w", err)
	}

	t.log.Info("Open support cases", zap.Int64("open", open))
	return map[string]interface{}{"status": "success", "open_cases": open}, nil
}

// CaseDigestTask identifies the case_digest task
var CaseDigestTask = &CaseDigestTaskDef{}
