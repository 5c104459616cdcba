package tasks

import "go.uber.org/zap"

// RegisterDefaults registers every task the worker knows how to run
func (r *Registry) RegisterDefaults(log *zap.Logger) {
	r.Register(LogInfoTask.TaskID(), NewLogInfoTask(log).HandleExecution)

	r.Register(AnnounceCaseTask.TaskID(), NewAnnounceCaseTask(log).HandleExecution)
	r.Register(CaseDigestTask.TaskID(), NewCaseDigestTask(log).HandleExecution)
}

// DefineTasks registers all available tasks on the global registry
func DefineTasks(log *zap.Logger) {
	GlobalRegistry.RegisterDefaults(log)
}
