package tasks

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bank_portal_echo/internal/models"
)

const (
	historyStatusSuccess         = "success"
	historyStatusFailure         = "failure"
	historyStatusHandlerNotFound = "handler_not_found"
)

// Runner executes due scheduled tasks and records their history
type Runner struct {
	db       *gorm.DB
	registry *Registry
	log      *zap.Logger
}

// NewRunner creates a Runner resolving handlers from registry
func NewRunner(db *gorm.DB, registry *Registry, log *zap.Logger) *Runner {
	return &Runner{db: db, registry: registry, log: log}
}

// ProcessDue runs every active task due at or before now and returns how many were picked up.
// A failing task is retried immediately until MaxAttempt attempts have been made.
func (r *Runner) ProcessDue(ctx context.Context, now time.Time) int {
	var pending []models.ScheduledTask
	if err := r.db.WithContext(ctx).
		Where("status = ? AND due <= ?", models.ScheduledTaskStatusActive, now).
		Order("due").
		Find(&pending).Error; err != nil {
		r.log.Error("Error fetching pending tasks", zap.Error(err))
		return 0
	}

	if len(pending) == 0 {
		r.log.Debug("No pending tasks")
		return 0
	}
	r.log.Info("Found pending tasks", zap.Int("count", len(pending)))

	processed := 0
	for _, task := range pending {
		if ctx.Err() != nil {
			break
		}
		r.execute(ctx, task, now)
		processed++
	}
	return processed
}

func (r *Runner) execute(ctx context.Context, task models.ScheduledTask, now time.Time) {
	log := r.log.With(zap.String("task", task.TaskName), zap.Uint("task_id", task.ID))

	handler, found := r.registry.Get(task.TaskName)
	if !found {
		log.Warn("Task handler not found, marking as failure")
		runAt := time.Now()
		r.recordHistory(log, task, runAt, 0, historyStatusHandlerNotFound, 1,
			map[string]interface{}{"error": "Handler not found"})
		r.updateTask(log, task, map[string]interface{}{
			"status":   models.ScheduledTaskStatusFailure,
			"last_run": &runAt,
		})
		return
	}

	maxAttempt := task.MaxAttempt
	if maxAttempt < 1 {
		maxAttempt = 1
	}

	var (
		runAt     time.Time
		succeeded bool
	)
	for attempt := 1; attempt <= maxAttempt; attempt++ {
		runAt = time.Now()
		result, err := handler(ctx, r.db, task)
		runtimeMs := int(time.Since(runAt).Milliseconds())

		if err == nil {
			log.Info("Task completed", zap.Int("attempt", attempt))
			r.recordHistory(log, task, runAt, runtimeMs, historyStatusSuccess, attempt, result)
			succeeded = true
			break
		}

		log.Warn("Task failed", zap.Int("attempt", attempt), zap.Error(err))
		r.recordHistory(log, task, runAt, runtimeMs, historyStatusFailure, attempt,
			map[string]interface{}{"error": err.Error()})
		if ctx.Err() != nil {
			break
		}
	}

	updates := map[string]interface{}{"last_run": &runAt}
	switch {
	case !succeeded:
		updates["status"] = models.ScheduledTaskStatusFailure
	case task.TaskType == models.ScheduledTaskTypeRecurring:
		// Only advance when the rule yields a later date, otherwise the task would rerun every tick.
		if nextDue := task.NextDueAfter(now); nextDue.After(task.Due) {
			updates["status"] = models.ScheduledTaskStatusActive
			updates["due"] = nextDue
		} else {
			updates["status"] = models.ScheduledTaskStatusDone
		}
	default:
		updates["status"] = models.ScheduledTaskStatusDone
	}
	r.updateTask(log, task, updates)
}

func (r *Runner) recordHistory(log *zap.Logger, task models.ScheduledTask, runAt time.Time, runtimeMs int, status string, attempt int, result map[string]interface{}) {
	history := models.ScheduledTaskHistory{
		ScheduledTaskID: task.ID,
		TaskName:        task.TaskName,
		RunAt:           runAt,
		Runtime:         runtimeMs,
		Status:          status,
		AttemptNumber:   attempt,
		Arguments:       task.Arguments,
		Result:          result,
	}
	if err := r.db.Create(&history).Error; err != nil {
		log.Error("Failed to record task history", zap.Error(err))
	}
}

func (r *Runner) updateTask(log *zap.Logger, task models.ScheduledTask, updates map[string]interface{}) {
	if err := r.db.Model(&task).Updates(updates).Error; err != nil {
		// The task stays active and will run again on the next poll.
		log.Error("Failed to update task status", zap.Any("updates", updates), zap.Error(err))
	}
}
