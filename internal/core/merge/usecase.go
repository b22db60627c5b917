package merge

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
	"mailmerge.app/pkg/validation"
)

// UseCase runs mail merges: load, validate, fill, send and record, one recipient at a time.
type UseCase struct {
	templateLoader  ports.TemplateLoader
	recipientLoader ports.RecipientLoader
	transport       ports.MailTransport
	journal         ports.DeliveryJournal
	metrics         ports.MergeMetrics
	logger          ports.Logger
	options         Options
	now             func() time.Time
}

// Options tunes run behavior
type Options struct {
	// SkipOnSubstitutionError turns a fill failure into a per-recipient skip instead of aborting the run.
	SkipOnSubstitutionError bool
	// AdminEmail, when set, receives a failed-run notice in the log.
	AdminEmail string
}

type UseCaseDependencies struct {
	TemplateLoader  ports.TemplateLoader
	RecipientLoader ports.RecipientLoader
	Transport       ports.MailTransport
	Journal         ports.DeliveryJournal
	Metrics         ports.MergeMetrics
	Logger          ports.Logger
	Options         Options
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.TemplateLoader == nil {
		return nil, errors.NewValidationError("template loader is required")
	}
	if deps.RecipientLoader == nil {
		return nil, errors.NewValidationError("recipient loader is required")
	}
	if deps.Transport == nil {
		return nil, errors.NewValidationError("mail transport is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	journal := deps.Journal
	if journal == nil {
		journal = nopJournal{}
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &UseCase{
		templateLoader:  deps.TemplateLoader,
		recipientLoader: deps.RecipientLoader,
		transport:       deps.Transport,
		journal:         journal,
		metrics:         metrics,
		logger:          deps.Logger,
		options:         deps.Options,
		now:             time.Now,
	}, nil
}

// Run performs one merge. Failures before the session is open, and substitution failures
// unless skipping is enabled, abort the run with a MERGE_ERROR. Send failures never do.
func (uc *UseCase) Run(ctx context.Context, req MergeRequest) (*Report, error) {
	started := uc.now()
	report := &Report{RunID: uuid.NewString()}
	run := &ports.RunData{
		ID:           report.RunID,
		TemplatePath: req.templateLabel(),
		Provider:     req.Provider.String(),
		Format:       req.Format.String(),
		Status:       ports.RunStatusRunning,
		StartedAt:    started,
	}
	if req.Source != nil {
		run.Source = req.Source.Describe()
	}

	if err := req.Validate(); err != nil {
		return nil, uc.abort(ctx, run, report, err, false)
	}

	template, err := uc.loadTemplate(ctx, req)
	if err != nil {
		return nil, uc.abort(ctx, run, report, err, false)
	}

	params := ExtractParameters(template)
	if bare := BareTokens(template); len(bare) > 0 {
		uc.logger.Warn("template uses single-brace tokens that are never substituted",
			ports.F("run_id", report.RunID),
			ports.F("tokens", bare))
	}

	recipients, err := uc.recipientLoader.Load(ctx, req.Source)
	if err != nil {
		return nil, uc.abort(ctx, run, report, err, false)
	}

	uc.logger.Info("Starting mail merge",
		ports.F("run_id", report.RunID),
		ports.F("template", run.TemplatePath),
		ports.F("source", run.Source),
		ports.F("service", run.Provider),
		ports.F("recipients", len(recipients)),
		ports.F("parameters", params))

	if err := uc.journal.StartRun(ctx, run); err != nil {
		uc.logger.Warn("Failed to journal run start", ports.F("run_id", report.RunID), ports.F("error", err.Error()))
	}

	session, err := uc.transport.Open(ctx, req.Provider, req.Credentials)
	if err != nil {
		uc.logError(err, "Email Connection")
		return nil, uc.abort(ctx, run, report, err, true)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			uc.logger.Warn("Failed to close email connection",
				ports.F("run_id", report.RunID),
				ports.F("error", closeErr.Error()))
		}
	}()

	for i, recipient := range recipients {
		delivery, err := uc.deliver(ctx, session, template, params, req.Format, i+1, recipient)
		if err != nil {
			return nil, uc.abort(ctx, run, report, err, true)
		}
		report.add(delivery)
		uc.record(ctx, report.RunID, delivery)
	}

	report.Duration = uc.now().Sub(started)
	uc.finish(ctx, run, report, ports.RunStatusCompleted, "")
	uc.metrics.RecordRun(ports.RunCompleted)

	uc.logger.Info("Mail merge completed",
		ports.F("run_id", report.RunID),
		ports.F("total", report.Total()),
		ports.F("sent", report.Sent),
		ports.F("failed", report.Failed),
		ports.F("skipped", report.Skipped))

	return report, nil
}

func (uc *UseCase) loadTemplate(ctx context.Context, req MergeRequest) (string, error) {
	if req.TemplateText != "" {
		return req.TemplateText, nil
	}
	return uc.templateLoader.Load(ctx, req.TemplatePath)
}

// deliver handles one recipient. It only returns an error when the run must abort.
func (uc *UseCase) deliver(ctx context.Context, session ports.MailSession, template string, params []string,
	format ports.BodyFormat, position int, recipient ports.Recipient) (Delivery, error) {
	email, hasEmail := recipient.Email()
	delivery := Delivery{Position: position, Email: email}
	if !hasEmail {
		delivery.Email = "unknown"
	}

	if missing := MissingParameters(recipient, params); len(missing) > 0 {
		delivery.Missing = missing
		return uc.skip(delivery, fmt.Sprintf("Skipping due to missing parameters: %v", missing)), nil
	}

	if !hasEmail || validation.SanitizeEmail(email) == "" {
		return uc.skip(delivery, "Skipping due to missing email address"), nil
	}

	content, err := FillTemplate(template, recipient)
	if err != nil {
		if !uc.options.SkipOnSubstitutionError {
			return delivery, fmt.Errorf("fill template for recipient %d (%s): %w", position, email, err)
		}
		return uc.skip(delivery, fmt.Sprintf("Skipping due to substitution failure: %v", err)), nil
	}

	msg := ports.OutgoingMessage{
		To:      validation.SanitizeEmail(email),
		Subject: recipient.Subject(),
		Body:    content,
		Format:  format,
	}

	sendStarted := uc.now()
	sendErr := session.Send(ctx, msg)
	elapsed := uc.now().Sub(sendStarted)

	if sendErr != nil {
		uc.logError(sendErr, "Sending Email to "+email)
		delivery.Status = StatusFailed
		delivery.Detail = fmt.Sprintf("Failed to send email to %s: %v", email, sendErr)
	} else {
		delivery.Status = StatusSent
		delivery.Detail = StatusSent.String()
	}

	uc.metrics.RecordDelivery(delivery.Status.Outcome(), elapsed)
	uc.logStatus(delivery)
	return delivery, nil
}

func (uc *UseCase) skip(d Delivery, detail string) Delivery {
	d.Status = StatusSkipped
	d.Detail = detail
	uc.metrics.RecordDelivery(ports.OutcomeSkipped, 0)
	uc.logStatus(d)
	return d
}

func (uc *UseCase) logStatus(d Delivery) {
	uc.logger.Info(fmt.Sprintf("Recipient: %s, Status: %s", d.Email, d.Detail),
		ports.F("email", d.Email),
		ports.F("status", d.Detail))
}

func (uc *UseCase) logError(err error, where string) {
	uc.logger.Error(fmt.Sprintf("Error occurred in %s: %v", where, err),
		ports.F("context", where),
		ports.F("error_type", errors.TypeOf(err).String()))
}

func (uc *UseCase) record(ctx context.Context, runID string, d Delivery) {
	entry := &ports.DeliveryData{
		RunID:     runID,
		Position:  d.Position,
		Email:     d.Email,
		Status:    d.Status.String(),
		Detail:    d.Detail,
		CreatedAt: uc.now(),
	}
	if err := uc.journal.RecordDelivery(ctx, entry); err != nil {
		uc.logger.Warn("Failed to journal delivery",
			ports.F("run_id", runID),
			ports.F("email", d.Email),
			ports.F("error", err.Error()))
	}
}

func (uc *UseCase) finish(ctx context.Context, run *ports.RunData, report *Report, status, errMsg string) {
	finished := uc.now()
	run.Status = status
	run.Error = errMsg
	run.Sent = report.Sent
	run.Failed = report.Failed
	run.Skipped = report.Skipped
	run.FinishedAt = &finished
	if err := uc.journal.FinishRun(ctx, run); err != nil {
		uc.logger.Warn("Failed to journal run finish", ports.F("run_id", run.ID), ports.F("error", err.Error()))
	}
}

// abort wraps cause as a MERGE_ERROR, logs it and, when the run was journaled, closes its record.
func (uc *UseCase) abort(ctx context.Context, run *ports.RunData, report *Report, cause error, journaled bool) error {
	err := errors.NewMergeError("an error occurred during mail merge", cause)
	uc.logError(cause, "Mail Merge")

	if journaled {
		uc.finish(ctx, run, report, ports.RunStatusAborted, err.Error())
	}
	uc.metrics.RecordRun(ports.RunAborted)

	if uc.options.AdminEmail != "" {
		uc.logger.Warn("Failed run notice for admin",
			ports.F("admin_email", uc.options.AdminEmail),
			ports.F("run_id", run.ID),
			ports.F("error", err.Error()))
	}
	return err
}

type nopJournal struct{}

func (nopJournal) StartRun(context.Context, *ports.RunData) error            { return nil }
func (nopJournal) RecordDelivery(context.Context, *ports.DeliveryData) error { return nil }
func (nopJournal) FinishRun(context.Context, *ports.RunData) error           { return nil }
func (nopJournal) FindRun(context.Context, string) (*ports.RunData, []*ports.DeliveryData, error) {
	return nil, nil, errors.NewNotFoundError("delivery journal is disabled", nil)
}

type nopMetrics struct{}

func (nopMetrics) RecordDelivery(string, time.Duration) {}
func (nopMetrics) RecordRun(string)                     {}
