package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"mailmerge.app/internal/adapters/database"
	"mailmerge.app/internal/adapters/external"
	"mailmerge.app/internal/adapters/filesystem"
	"mailmerge.app/internal/adapters/infrastructure"
	"mailmerge.app/internal/config"
	"mailmerge.app/internal/ports"
)

type DependencyContainer struct {
	config     *config.Config
	options    DependencyOptions
	db         *gorm.DB
	fileLogger *infrastructure.FileLoggerAdapter
	smtp       *external.SMTPTransportAdapter
	metrics    *infrastructure.MergeMetricsCollector
	ports      *ports.ApplicationPorts
}

// DependencyOptions selects run-time variants of the adapters
type DependencyOptions struct {
	// DryRun swaps the SMTP transport for one that only logs.
	DryRun bool
	// Registry receives the merge metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
	// DB, when set, is used as the journal store instead of opening Postgres.
	DB *gorm.DB
	// Transport, when set, replaces the SMTP transport. It wins over DryRun.
	Transport ports.MailTransport
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:  cfg,
		options: opts,
	}

	if err := container.initializeLogger(); err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	if err := container.initializeDatabase(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	container.initializePorts()
	return container, nil
}

func (c *DependencyContainer) initializeLogger() error {
	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Log.File)
	if err != nil {
		return err
	}
	c.fileLogger = fileLogger
	slog.Debug("File logging enabled", "path", fileLogger.Path())
	return nil
}

func (c *DependencyContainer) initializeDatabase() error {
	if c.options.DB != nil {
		if err := database.Migrate(c.options.DB); err != nil {
			return err
		}
		c.db = c.options.DB
		return nil
	}

	if !c.config.Database.Enabled {
		slog.Debug("Delivery journal disabled")
		return nil
	}

	slog.Info("Initializing database connection...")
	db, err := database.Open(c.config.Database.GetDSN())
	if err != nil {
		return err
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() {
	logger := infrastructure.NewMultiLogger(
		c.fileLogger,
		infrastructure.NewSlogLoggerAdapter(slog.Default()),
	)

	c.smtp = external.NewSMTPTransportAdapter(external.SMTPTransportConfig{
		DialTimeout: time.Duration(c.config.Mail.DialTimeoutSecond) * time.Second,
	})

	var transport ports.MailTransport = c.smtp
	switch {
	case c.options.Transport != nil:
		transport = c.options.Transport
	case c.options.DryRun:
		transport = external.NewDryRunTransport(logger)
		slog.Info("Dry run enabled, no email will be sent")
	}

	c.metrics = infrastructure.NewMergeMetricsCollector(c.options.Registry)

	c.ports = &ports.ApplicationPorts{
		TemplateLoader:  filesystem.NewTemplateLoaderAdapter(),
		RecipientLoader: filesystem.NewRecipientLoaderAdapter(),
		MailTransport:   transport,
		Metrics:         c.metrics,
		Logger:          logger,
	}
	if c.db != nil {
		c.ports.Journal = database.NewJournalRepositoryAdapter(c.db)
	}
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Journal returns the gorm journal, or nil when journaling is disabled
func (c *DependencyContainer) Journal() *database.JournalRepositoryAdapter {
	if c.db == nil {
		return nil
	}
	return c.ports.Journal.(*database.JournalRepositoryAdapter)
}

func (c *DependencyContainer) Metrics() *infrastructure.MergeMetricsCollector {
	return c.metrics
}

// EndpointResolver exposes the SMTP endpoint table for health reporting
func (c *DependencyContainer) EndpointResolver() infrastructure.EndpointResolver {
	return c.smtp
}

// Cleanup closes the log file and the database connection
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	if c.db != nil && c.options.DB == nil {
		if err := database.Close(c.db); err != nil {
			firstErr = err
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
