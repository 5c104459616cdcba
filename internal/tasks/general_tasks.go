package tasks

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bank_portal_echo/internal/models"
)

// LogInfoTaskDef writes its "message" argument to the log
type LogInfoTaskDef struct {
	log *zap.Logger
}

// NewLogInfoTask creates the log_info task
func NewLogInfoTask(log *zap.Logger) *LogInfoTaskDef {
	return &LogInfoTaskDef{log: log}
}

// TaskID returns the unique identifier for this task
func (t *LogInfoTaskDef) TaskID() string {
	return "log_info"
}

// HandleExecution handles logging information
func (t *LogInfoTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	message, ok := task.Arguments["message"].(string)
	if !ok {
		message = "No message provided"
	}
	t.log.Info("log_info task", zap.String("message", message))

	return map[string]interface{}{
		"status":  "success",
		"message": message,
	}, nil
}

// LogInfoTask identifies the log_info task
var LogInfoTask = &LogInfoTaskDef{}
