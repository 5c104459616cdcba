package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes keys for the duration of the test so defaults apply
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if old, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, old) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "LOG_LEVEL", "CASE_THROTTLE_PER_HOUR", "DATABASE_URL")
	t.Setenv("CHAT_WIDGET_URL", "https://chat.example.com/widget")

	cfg, _, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "https://chat.example.com/widget", cfg.ChatWidgetURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.CaseThrottlePerHour)
	assert.False(t, cfg.CasesEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/bank")
	t.Setenv("CASE_THROTTLE_PER_HOUR", "3")

	cfg, _, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3, cfg.CaseThrottlePerHour)
	assert.True(t, cfg.CasesEnabled())
}

func TestValidateCases(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "all present",
			cfg: Config{
				CaseDomainID:   "d-1",
				CaseTemplateID: "t-1",
				CaseCustomerID: "c-1",
				CaseAgentID:    "a-1",
			},
		},
		{
			name:    "everything missing",
			cfg:     Config{},
			wantErr: "missing required environment variables: CASE_DOMAIN_ID, CASE_TEMPLATE_ID, CASE_CUSTOMER_ID, CASE_AGENT_ID",
		},
		{
			name: "blank agent",
			cfg: Config{
				CaseDomainID:   "d-1",
				CaseTemplateID: "t-1",
				CaseCustomerID: "c-1",
				CaseAgentID:    "  ",
			},
			wantErr: "missing required environment variables: CASE_AGENT_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateCases()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
