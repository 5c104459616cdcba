package config

import (
	"fmt"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds everything the server and worker read from the environment
type Config struct {
	Port     string `env:"PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	// ChatWidgetURL is the embeddable chat service address. It is operator
	// controlled and is the only value ever marked as trusted for embedding.
	ChatWidgetURL string `env:"CHAT_WIDGET_URL"`

	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	CaseDomainID        string `env:"CASE_DOMAIN_ID"`
	CaseTemplateID      string `env:"CASE_TEMPLATE_ID"`
	CaseCustomerID      string `env:"CASE_CUSTOMER_ID"`
	CaseAgentID         string `env:"CASE_AGENT_ID"`
	CaseThrottlePerHour int    `env:"CASE_THROTTLE_PER_HOUR,default=10"`
}

// Load reads an optional .env file and decodes the environment into a Config.
// It reports whether the .env file was found so callers can log it.
func Load(files ...string) (Config, bool, error) {
	foundDotenv := godotenv.Load(files...) == nil

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, foundDotenv, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, foundDotenv, nil
}

// CasesEnabled reports whether support case intake has a database to write to
func (c Config) CasesEnabled() bool {
	return c.DatabaseURL != ""
}

// ValidateCases returns an error naming every missing case setting
func (c Config) ValidateCases() error {
	required := []struct {
		key   string
		value string
	}{
		{"CASE_DOMAIN_ID", c.CaseDomainID},
		{"CASE_TEMPLATE_ID", c.CaseTemplateID},
		{"CASE_CUSTOMER_ID", c.CaseCustomerID},
		{"CASE_AGENT_ID", c.CaseAgentID},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
