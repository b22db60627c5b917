package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"mailmerge.app/internal/adapters/filesystem"
	"mailmerge.app/internal/app"
	"mailmerge.app/internal/config"
	"mailmerge.app/internal/core/merge"
	"mailmerge.app/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "mailmerge",
	Short:         "Send personalised emails from a template and a recipient list",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Run one mail merge",
	RunE:  runSend,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API for triggering merges",
	RunE:  runServe,
}

type sendFlags struct {
	template       string
	recipients     string
	kind           string
	service        string
	email          string
	username       string
	password       string
	html           bool
	dryRun         bool
	skipUnfillable bool
}

var flags sendFlags

func init() {
	f := sendCmd.Flags()
	f.StringVarP(&flags.template, "template", "t", "", "path to the template file")
	f.StringVarP(&flags.recipients, "recipients", "r", "", "path to the recipient CSV or JSON file")
	f.StringVar(&flags.kind, "kind", filesystem.KindAuto, "recipient file kind: csv, json or auto")
	f.StringVar(&flags.service, "service", "", "email service: gmail or outlook (default from MAILMERGE_SERVICE)")
	f.StringVar(&flags.email, "email", "", "sender email address")
	f.StringVar(&flags.username, "username", "", "login name when no email is given")
	f.StringVar(&flags.password, "password", "", "sender password")
	f.BoolVar(&flags.html, "html", false, "send the body as text/html")
	f.BoolVar(&flags.dryRun, "dry-run", false, "fill and log every message without connecting")
	f.BoolVar(&flags.skipUnfillable, "skip-unfillable", false, "skip recipients whose template cannot be filled instead of aborting")
	_ = sendCmd.MarkFlagRequired("template")
	_ = sendCmd.MarkFlagRequired("recipients")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment, applies changed flags, validates the result
// and installs the process logger
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Process()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	applyFlagOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := logger.NewWithOptions(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log.WithField("command", cmd.Name()).Logger)
	return cfg, nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("service") {
		cfg.Mail.Service = flags.service
	}
	if changed("email") {
		cfg.Mail.Email = flags.email
	}
	if changed("username") {
		cfg.Mail.Username = flags.username
	}
	if changed("password") {
		cfg.Mail.Password = flags.password
	}
	if changed("html") {
		cfg.Mail.HTML = flags.html
	}
	if changed("skip-unfillable") {
		cfg.Mail.SkipUnfillable = flags.skipUnfillable
	}
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	application, err := app.NewApplication(cfg, app.DependencyOptions{DryRun: flags.dryRun})
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer func() {
		if err := application.Shutdown(); err != nil {
			slog.Warn("Error during shutdown", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := application.Send(ctx, app.SendParams{
		TemplatePath: flags.template,
		DataPath:     flags.recipients,
		Kind:         flags.kind,
	})
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	application, err := app.NewApplication(cfg, app.DependencyOptions{})
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer func() {
		if err := application.Shutdown(); err != nil {
			slog.Warn("Error during shutdown", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Serve(ctx)
}

// printReport echoes each recipient outcome followed by the run totals
func printReport(w io.Writer, report *merge.Report) {
	for _, d := range report.Deliveries {
		if d.Status == merge.StatusSkipped {
			fmt.Fprintf(w, "Skipped %s: %s\n", d.Email, d.Detail)
			continue
		}
		fmt.Fprintf(w, "Email sent to %s with status: %s\n", d.Email, d.Detail)
	}
	fmt.Fprintf(w, "Run %s: %d sent, %d failed, %d skipped (%s)\n",
		report.RunID, report.Sent, report.Failed, report.Skipped, report.Duration)
}
