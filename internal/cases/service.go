// Package cases opens support cases requested from the portal and assigns
// them to the configured support agent.
package cases

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bank_portal_echo/internal/models"
)

// FollowUpTask is the scheduled task created alongside every case
const FollowUpTask = "announce_case"

// Store persists a case together with its follow-up task
type Store interface {
	CreateWithFollowUp(ctx context.Context, c *models.SupportCase, followUp *models.ScheduledTask) error
}

// Throttle limits how many cases one client may open. Allow only reads the
// client's count; Record counts a case that was actually filed.
type Throttle interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
	Record(ctx context.Context, clientKey string) error
}

// Settings identify where new cases are filed and who they are assigned to
type Settings struct {
	DomainID   string
	TemplateID string
	CustomerID string
	AgentID    string
}

// Service opens support cases
type Service struct {
	store    Store
	throttle Throttle
	settings Settings
	log      *zap.Logger
	now      func() time.Time
}

// NewService creates a Service. throttle may be nil to disable throttling.
func NewService(store Store, throttle Throttle, settings Settings, log *zap.Logger) *Service {
	return &Service{
		store:    store,
		throttle: throttle,
		settings: settings,
		log:      log,
		now:      time.Now,
	}
}

// Create validates the name and files a case for clientKey
func (s *Service) Create(ctx context.Context, clientKey, name string) (*models.SupportCase, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, clientKey)
		if err != nil {
			// A broken counter should not block support requests.
			s.log.Warn("Case throttle unavailable", zap.Error(err))
		} else if !ok {
			return nil, ErrThrottled
		}
	}

	sc := &models.SupportCase{
		Title:        name,
		DomainID:     s.settings.DomainID,
		TemplateID:   s.settings.TemplateID,
		CustomerRef:  "customer/" + s.settings.CustomerID,
		AssignedUser: "agent/" + s.settings.AgentID,
		Status:       models.SupportCaseStatusOpen,
	}

	followUp := &models.ScheduledTask{
		TaskName:   FollowUpTask,
		Due:        s.now(),
		Status:     models.ScheduledTaskStatusActive,
		TaskType:   models.ScheduledTaskTypeOneTime,
		MaxAttempt: 3,
	}

	if err := s.store.CreateWithFollowUp(ctx, sc, followUp); err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Record(ctx, clientKey); err != nil {
			s.log.Warn("Failed to count case against throttle", zap.Error(err))
		}
	}

	s.log.Info("Support case created",
		zap.Uint("case_id", sc.ID),
		zap.String("assigned_user", sc.AssignedUser))
	return sc, nil
}
