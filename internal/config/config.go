package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

const (
	maxPortNumber      = 65535
	maxDialTimeoutSecs = 300
)

// Config represents the application configuration structure
type Config struct {
	Mail     MailConfig     `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Metrics  MetricsConfig  `split_words:"true"`
}

// MailConfig holds the sender account and run options
type MailConfig struct {
	Service           string `envconfig:"MAILMERGE_SERVICE" default:"gmail"`
	Email             string `envconfig:"MAILMERGE_EMAIL"`
	Username          string `envconfig:"MAILMERGE_USERNAME"`
	Password          string `envconfig:"MAILMERGE_PASSWORD"`
	HTML              bool   `envconfig:"MAILMERGE_HTML" default:"false"`
	SkipUnfillable    bool   `envconfig:"MAILMERGE_SKIP_ON_SUBSTITUTION_ERROR" default:"false"`
	AdminEmail        string `envconfig:"MAILMERGE_ADMIN_EMAIL"`
	DialTimeoutSecond int    `envconfig:"MAILMERGE_DIAL_TIMEOUT_SECONDS" default:"30"`
}

// Provider returns the configured service as a port value
func (m MailConfig) Provider() ports.Provider {
	return ports.Provider(strings.ToLower(strings.TrimSpace(m.Service)))
}

// Credentials returns the sender credentials
func (m MailConfig) Credentials() ports.Credentials {
	return ports.Credentials{
		Email:    strings.TrimSpace(m.Email),
		Username: strings.TrimSpace(m.Username),
		Password: m.Password,
	}
}

// Format returns the body format selected by the HTML flag
func (m MailConfig) Format() ports.BodyFormat {
	return ports.FormatFromHTMLFlag(m.HTML)
}

type LogConfig struct {
	File   string `envconfig:"MAILMERGE_LOG_FILE" default:"email_log.txt"`
	Level  string `envconfig:"MAILMERGE_LOG_LEVEL" default:"info"`
	Format string `envconfig:"MAILMERGE_LOG_FORMAT" default:"text"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Enabled  bool   `envconfig:"DB_ENABLED" default:"false"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"mailmerge"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type MetricsConfig struct {
	// TextfilePath, when set, receives a Prometheus textfile dump after each CLI run.
	TextfilePath string `envconfig:"MAILMERGE_METRICS_TEXTFILE"`
}

func LoadConfig() (*Config, error) {
	config, err := Process()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Process reads the environment without validating, so callers can layer
// overrides on top before calling Validate.
func Process() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Mail.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks the service name and timeout. Credentials are checked per run
// since CLI flags may still supply them.
func (m *MailConfig) Validate() error {
	if !m.Provider().IsValid() {
		return errors.NewConfigurationError(
			fmt.Sprintf("MAILMERGE_SERVICE %q is not supported, use 'gmail' or 'outlook'", m.Service), nil)
	}
	if m.DialTimeoutSecond < 1 || m.DialTimeoutSecond > maxDialTimeoutSecs {
		return errors.NewConfigurationError("MAILMERGE_DIAL_TIMEOUT_SECONDS must be between 1 and 300", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	if strings.TrimSpace(l.File) == "" {
		return errors.NewConfigurationError("MAILMERGE_LOG_FILE cannot be empty", nil)
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("MAILMERGE_LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	switch strings.ToLower(l.Format) {
	case "text", "json":
	default:
		return errors.NewConfigurationError("MAILMERGE_LOG_FORMAT must be one of: text, json", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// Validate only checks connection settings when the journal is enabled
func (d *DatabaseConfig) Validate() error {
	if !d.Enabled {
		return nil
	}
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}
