package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"mailmerge.app/internal/adapters/api"
	"mailmerge.app/internal/adapters/filesystem"
	"mailmerge.app/internal/adapters/infrastructure"
	"mailmerge.app/internal/config"
	"mailmerge.app/internal/core/merge"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	mergeUseCase *merge.UseCase

	// Adapters
	httpAdapter *api.HTTPServerAdapter
}

// SendParams names the inputs of one CLI merge
type SendParams struct {
	TemplatePath string
	DataPath     string
	// Kind is one of filesystem.KindAuto, KindCSV or KindJSON.
	Kind string
}

func NewApplication(cfg *config.Config, opts DependencyOptions) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	p := a.deps.ApplicationPorts()

	mergeUseCase, err := merge.NewUseCase(merge.UseCaseDependencies{
		TemplateLoader:  p.TemplateLoader,
		RecipientLoader: p.RecipientLoader,
		Transport:       p.MailTransport,
		Journal:         p.Journal,
		Metrics:         p.Metrics,
		Logger:          p.Logger,
		Options: merge.Options{
			SkipOnSubstitutionError: a.config.Mail.SkipUnfillable,
			AdminEmail:              a.config.Mail.AdminEmail,
		},
	})
	if err != nil {
		return fmt.Errorf("create merge use case: %w", err)
	}
	a.mergeUseCase = mergeUseCase
	return nil
}

func (a *Application) initializeAdapters() error {
	metrics := a.deps.Metrics()

	mailHealthChecker := infrastructure.NewMailHealthChecker(infrastructure.MailHealthCheckerConfig{
		Provider:    a.config.Mail.Provider(),
		Credentials: a.config.Mail.Credentials(),
		Resolver:    a.deps.EndpointResolver(),
		Validate:    merge.ValidateCredentials,
	})
	databaseHealthChecker := infrastructure.NewDatabaseHealthChecker(a.deps.Database())

	var runs api.RunFinder = disabledJournal{}
	if journal := a.deps.Journal(); journal != nil {
		runs = journal
	}

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		MergeUseCase: a.mergeUseCase,
		Runs:         runs,
		Stats:        metrics,
		Health:       infrastructure.NewSystemHealthChecker(mailHealthChecker, databaseHealthChecker),
		Gatherer:     metrics.Registry(),
		Defaults: api.MergeDefaults{
			Provider:    a.config.Mail.Provider(),
			Credentials: a.config.Mail.Credentials(),
			Format:      a.config.Mail.Format(),
		},
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpAdapter = httpAdapter
	return nil
}

// BuildRequest turns CLI inputs plus the mail settings into a merge request
func (a *Application) BuildRequest(params SendParams) (merge.MergeRequest, error) {
	if params.TemplatePath == "" {
		return merge.MergeRequest{}, errors.NewConfigurationError("template path is required", nil)
	}

	source, err := filesystem.ResolveDataSource(params.DataPath, params.Kind)
	if err != nil {
		return merge.MergeRequest{}, err
	}

	return merge.MergeRequest{
		TemplatePath: params.TemplatePath,
		Source:       source,
		Provider:     a.config.Mail.Provider(),
		Credentials:  a.config.Mail.Credentials(),
		Format:       a.config.Mail.Format(),
	}, nil
}

// Send runs one merge and, when configured, writes the metrics textfile afterwards
func (a *Application) Send(ctx context.Context, params SendParams) (*merge.Report, error) {
	req, err := a.BuildRequest(params)
	if err != nil {
		return nil, errors.NewMergeError("an error occurred during mail merge", err)
	}

	report, runErr := a.mergeUseCase.Run(ctx, req)

	if path := a.config.Metrics.TextfilePath; path != "" {
		if err := a.deps.Metrics().WriteTextfile(path); err != nil {
			slog.Warn("Failed to write metrics textfile", "path", path, "error", err)
		}
	}

	return report, runErr
}

// Serve runs the HTTP adapter until ctx is cancelled
func (a *Application) Serve(ctx context.Context) error {
	slog.Info("Starting application...", "port", a.config.Server.Port)
	return a.httpAdapter.Start(ctx)
}

// Shutdown releases the log file and database connection
func (a *Application) Shutdown() error {
	slog.Debug("Shutting down application...")
	if err := a.deps.Cleanup(); err != nil {
		return fmt.Errorf("cleanup dependencies: %w", err)
	}
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpAdapter.GetRouter()
}

type disabledJournal struct{}

func (disabledJournal) FindRun(context.Context, string) (*ports.RunData, []*ports.DeliveryData, error) {
	return nil, nil, errors.NewNotFoundError("delivery journal is disabled", nil)
}
