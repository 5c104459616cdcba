package cases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bank_portal_echo/internal/models"
)

type fakeStore struct {
	cases    []*models.SupportCase
	followUp []*models.ScheduledTask
	err      error
}

func (f *fakeStore) CreateWithFollowUp(_ context.Context, c *models.SupportCase, task *models.ScheduledTask) error {
	if f.err != nil {
		return f.err
	}
	c.ID = uint(len(f.cases) + 1)
	f.cases = append(f.cases, c)
	f.followUp = append(f.followUp, task)
	return nil
}

type fakeThrottle struct {
	allow    bool
	err      error
	keys     []string
	recorded []string
}

func (f *fakeThrottle) Allow(_ context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allow, f.err
}

func (f *fakeThrottle) Record(_ context.Context, key string) error {
	f.recorded = append(f.recorded, key)
	return f.err
}

var testSettings = Settings{
	DomainID:   "domain-1",
	TemplateID: "template-1",
	CustomerID: "cust-9",
	AgentID:    "agent-3",
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "plain title", input: "Card declined abroad"},
		{name: "exactly the limit", input: strings.Repeat("a", models.MaxCaseTitleLength)},
		{name: "empty", input: "", wantErr: ErrNameMissing},
		{name: "whitespace", input: "   ", wantErr: ErrNameMissing},
		{name: "one over the limit", input: strings.Repeat("a", models.MaxCaseTitleLength+1), wantErr: ErrNameTooLong},
		{name: "script tag", input: "hi <script>alert(1)</script>", wantErr: ErrNameHasXSS},
		{name: "upper case script tag", input: "<SCRIPT src=x>", wantErr: ErrNameHasXSS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestCreate(t *testing.T) {
	store := &fakeStore{}
	throttle := &fakeThrottle{allow: true}
	svc := NewService(store, throttle, testSettings, zap.NewNop())
	fixed := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	sc, err := svc.Create(context.Background(), "203.0.113.7", "Lost card")
	require.NoError(t, err)

	assert.Equal(t, uint(1), sc.ID)
	assert.Equal(t, "Lost card", sc.Title)
	assert.Equal(t, "customer/cust-9", sc.CustomerRef)
	assert.Equal(t, "agent/agent-3", sc.AssignedUser)
	assert.Equal(t, "template-1", sc.TemplateID)
	assert.Equal(t, models.SupportCaseStatusOpen, sc.Status)

	require.Len(t, store.followUp, 1)
	task := store.followUp[0]
	assert.Equal(t, FollowUpTask, task.TaskName)
	assert.Equal(t, models.ScheduledTaskTypeOneTime, task.TaskType)
	assert.True(t, task.Due.Equal(fixed))

	assert.Equal(t, []string{"203.0.113.7"}, throttle.keys)
	assert.Equal(t, []string{"203.0.113.7"}, throttle.recorded)
}

func TestCreateRejectsInvalidNameBeforeThrottling(t *testing.T) {
	store := &fakeStore{}
	throttle := &fakeThrottle{allow: true}
	svc := NewService(store, throttle, testSettings, zap.NewNop())

	_, err := svc.Create(context.Background(), "client", "")
	assert.ErrorIs(t, err, ErrNameMissing)
	assert.Empty(t, throttle.keys)
	assert.Empty(t, store.cases)
}

func TestCreateThrottled(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, &fakeThrottle{allow: false}, testSettings, zap.NewNop())

	_, err := svc.Create(context.Background(), "client", "Lost card")
	assert.ErrorIs(t, err, ErrThrottled)
	assert.Empty(t, store.cases)
}

func TestCreateIgnoresThrottleFailure(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, &fakeThrottle{err: errors.New("redis down")}, testSettings, zap.NewNop())

	_, err := svc.Create(context.Background(), "client", "Lost card")
	require.NoError(t, err)
	assert.Len(t, store.cases, 1)
}

func TestCreateWithoutThrottle(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil, testSettings, zap.NewNop())

	_, err := svc.Create(context.Background(), "client", "Lost card")
	require.NoError(t, err)
}

func TestCreateWrapsStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewService(&fakeStore{err: storeErr}, nil, testSettings, zap.NewNop())

	_, err := svc.Create(context.Background(), "client", "Lost card")
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, IsValidation(err))
}

func TestFailedInsertDoesNotCountAgainstThrottle(t *testing.T) {
	throttle := &fakeThrottle{allow: true}
	svc := NewService(&fakeStore{err: errors.New("connection refused")}, throttle, testSettings, zap.NewNop())

	_, err := svc.Create(context.Background(), "client", "Lost card")
	require.Error(t, err)
	assert.Equal(t, []string{"client"}, throttle.keys)
	assert.Empty(t, throttle.recorded)
}
