package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ports.ProviderGmail, cfg.Mail.Provider())
	assert.Equal(t, ports.FormatPlain, cfg.Mail.Format())
	assert.False(t, cfg.Mail.SkipUnfillable)
	assert.Equal(t, 30, cfg.Mail.DialTimeoutSecond)
	assert.Equal(t, "email_log.txt", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Database.Enabled)
	assert.Empty(t, cfg.Metrics.TextfilePath)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("MAILMERGE_SERVICE", " Outlook ")
	t.Setenv("MAILMERGE_EMAIL", " sender@outlook.com ")
	t.Setenv("MAILMERGE_PASSWORD", "secret")
	t.Setenv("MAILMERGE_HTML", "true")
	t.Setenv("MAILMERGE_SKIP_ON_SUBSTITUTION_ERROR", "true")
	t.Setenv("MAILMERGE_LOG_FILE", "logs/merge.log")
	t.Setenv("MAILMERGE_LOG_FORMAT", "json")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("DB_NAME", "journal")
	t.Setenv("MAILMERGE_METRICS_TEXTFILE", "/var/lib/node_exporter/mailmerge.prom")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ports.ProviderOutlook, cfg.Mail.Provider())
	assert.Equal(t, ports.Credentials{Email: "sender@outlook.com", Password: "secret"}, cfg.Mail.Credentials())
	assert.Equal(t, ports.FormatHTML, cfg.Mail.Format())
	assert.True(t, cfg.Mail.SkipUnfillable)
	assert.Equal(t, "logs/merge.log", cfg.Log.File)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=journal sslmode=disable", cfg.Database.GetDSN())
	assert.Equal(t, "/var/lib/node_exporter/mailmerge.prom", cfg.Metrics.TextfilePath)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestProcess_DefersValidation(t *testing.T) {
	t.Setenv("MAILMERGE_SERVICE", "yahoo")

	cfg, err := Process()
	require.NoError(t, err)
	assert.Equal(t, "yahoo", cfg.Mail.Service)

	_, err = LoadConfig()
	assert.True(t, errors.IsConfigurationError(err))

	cfg.Mail.Service = "gmail"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Mail:     MailConfig{Service: "gmail", DialTimeoutSecond: 30},
			Log:      LogConfig{File: "email_log.txt", Level: "info", Format: "text"},
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Enabled: false},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unsupported service", mutate: func(c *Config) { c.Mail.Service = "yahoo" }, expectError: "MAILMERGE_SERVICE"},
		{name: "dial timeout", mutate: func(c *Config) { c.Mail.DialTimeoutSecond = 0 }, expectError: "MAILMERGE_DIAL_TIMEOUT_SECONDS"},
		{name: "empty log file", mutate: func(c *Config) { c.Log.File = " " }, expectError: "MAILMERGE_LOG_FILE"},
		{name: "log level", mutate: func(c *Config) { c.Log.Level = "trace" }, expectError: "MAILMERGE_LOG_LEVEL"},
		{name: "log format", mutate: func(c *Config) { c.Log.Format = "xml" }, expectError: "MAILMERGE_LOG_FORMAT"},
		{name: "server port", mutate: func(c *Config) { c.Server.Port = 70000 }, expectError: "SERVER_PORT"},
		{name: "database ignored when disabled", mutate: func(c *Config) { c.Database.Host = "" }},
		{
			name: "database host when enabled",
			mutate: func(c *Config) {
				c.Database = DatabaseConfig{Enabled: true, Port: 5432, User: "u", Name: "n", SSLMode: "disable"}
			},
			expectError: "DB_HOST",
		},
		{
			name: "database ssl mode",
			mutate: func(c *Config) {
				c.Database = DatabaseConfig{Enabled: true, Host: "h", Port: 5432, User: "u", Name: "n", SSLMode: "maybe"}
			},
			expectError: "DB_SSL_MODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}
