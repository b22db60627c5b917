package external

import (
	"context"
	"fmt"

	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

// DryRunTransport implements MailTransport without touching the network.
// Messages are logged and reported as sent.
type DryRunTransport struct {
	logger ports.Logger
}

// NewDryRunTransport creates a transport that only logs
func NewDryRunTransport(logger ports.Logger) *DryRunTransport {
	return &DryRunTransport{logger: logger}
}

func (t *DryRunTransport) Open(_ context.Context, provider ports.Provider, credentials ports.Credentials) (ports.MailSession, error) {
	if !provider.IsValid() {
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported email service %q, use 'gmail' or 'outlook'", provider), nil)
	}
	t.logger.Info("Dry run: no SMTP connection opened", ports.F("service", provider.String()))
	return &dryRunSession{from: credentials.Login(), logger: t.logger}, nil
}

type dryRunSession struct {
	from   string
	logger ports.Logger
}

func (s *dryRunSession) From() string { return s.from }

func (s *dryRunSession) Send(_ context.Context, msg ports.OutgoingMessage) error {
	s.logger.Debug("Dry run: message not sent",
		ports.F("to", msg.To),
		ports.F("subject", msg.Subject),
		ports.F("format", msg.Format.String()),
		ports.F("bytes", len(msg.Body)))
	return nil
}

func (s *dryRunSession) Close() error { return nil }
