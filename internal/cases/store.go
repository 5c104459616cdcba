package cases

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bank_portal_echo/internal/models"
	"bank_portal_echo/internal/services"
)

// GormStore writes cases to the database
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a GormStore
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateWithFollowUp inserts the case and its follow-up task in one transaction.
// The task receives the new case id as its "case_id" argument.
func (s *GormStore) CreateWithFollowUp(ctx context.Context, c *models.SupportCase, followUp *models.ScheduledTask) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("insert case: %w", err)
		}

		if followUp.Arguments == nil {
			followUp.Arguments = make(map[string]interface{})
		}
		followUp.Arguments["case_id"] = c.ID

		if err := tx.Create(followUp).Error; err != nil {
			return fmt.Errorf("insert follow-up task: %w", err)
		}
		return nil
	})
}

// RedisThrottle allows a fixed number of cases per client per window
type RedisThrottle struct {
	cache  *services.RedisCache
	limit  int64
	window time.Duration
}

// NewRedisThrottle creates a throttle allowing limit cases per hour
func NewRedisThrottle(cache *services.RedisCache, limit int) *RedisThrottle {
	return &RedisThrottle{cache: cache, limit: int64(limit), window: time.Hour}
}

// Allow reports whether clientKey is still under the limit
func (t *RedisThrottle) Allow(ctx context.Context, clientKey string) (bool, error) {
	n, err := t.cache.Count(ctx, throttleKey(clientKey))
	if err != nil {
		return false, err
	}
	return n < t.limit, nil
}

// Record counts one filed case for clientKey
func (t *RedisThrottle) Record(ctx context.Context, clientKey string) error {
	_, err := t.cache.IncrementWindow(ctx, throttleKey(clientKey), t.window)
	return err
}

func throttleKey(clientKey string) string {
	return "cases:throttle:" + clientKey
}
