package external

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
	"mailmerge.app/pkg/validation"
)

const defaultDialTimeout = 30 * time.Second

// Endpoint is an SMTP server address
type Endpoint struct {
	Host string
	Port int
}

// Addr returns host:port
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// providerEndpoints maps each supported service to its implicit-TLS submission endpoint
var providerEndpoints = map[ports.Provider]Endpoint{
	ports.ProviderGmail:   {Host: "smtp.gmail.com", Port: 465},
	ports.ProviderOutlook: {Host: "smtp-mail.outlook.com", Port: 465},
}

// smtpClient is the subset of *smtp.Client used by a session
type smtpClient interface {
	Auth(a smtp.Auth) error
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Reset() error
	Quit() error
	Close() error
}

type dialFunc func(ctx context.Context, endpoint Endpoint) (smtpClient, error)

// SMTPTransportConfig represents SMTP transport configuration
type SMTPTransportConfig struct {
	DialTimeout time.Duration
	// TLSConfig is cloned per connection; ServerName is always set to the endpoint host.
	TLSConfig *tls.Config
	// Endpoints overrides the built-in provider table.
	Endpoints map[ports.Provider]Endpoint
}

// SMTPTransportAdapter implements MailTransport over SMTP with implicit TLS
type SMTPTransportAdapter struct {
	endpoints map[ports.Provider]Endpoint
	dial      dialFunc
	now       func() time.Time
}

// NewSMTPTransportAdapter creates a new SMTP transport adapter
func NewSMTPTransportAdapter(config SMTPTransportConfig) *SMTPTransportAdapter {
	timeout := config.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	endpoints := make(map[ports.Provider]Endpoint, len(providerEndpoints))
	for provider, endpoint := range providerEndpoints {
		endpoints[provider] = endpoint
	}
	for provider, endpoint := range config.Endpoints {
		endpoints[provider] = endpoint
	}

	return &SMTPTransportAdapter{
		endpoints: endpoints,
		dial:      tlsDialer(timeout, config.TLSConfig),
		now:       time.Now,
	}
}

// ResolveEndpoint returns the SMTP endpoint for a service name
func (t *SMTPTransportAdapter) ResolveEndpoint(provider ports.Provider) (Endpoint, error) {
	endpoint, ok := t.endpoints[provider]
	if !ok {
		return Endpoint{}, errors.NewConfigurationError(
			fmt.Sprintf("unsupported email service %q, use 'gmail' or 'outlook'", provider), nil)
	}
	return endpoint, nil
}

// ResolveAddr returns the host:port used for a service name
func (t *SMTPTransportAdapter) ResolveAddr(provider ports.Provider) (string, error) {
	endpoint, err := t.ResolveEndpoint(provider)
	if err != nil {
		return "", err
	}
	return endpoint.Addr(), nil
}

// Open connects over TLS and authenticates with the sender credentials
func (t *SMTPTransportAdapter) Open(ctx context.Context, provider ports.Provider, credentials ports.Credentials) (ports.MailSession, error) {
	endpoint, err := t.ResolveEndpoint(provider)
	if err != nil {
		return nil, err
	}

	client, err := t.dial(ctx, endpoint)
	if err != nil {
		return nil, errors.NewConnectionError(
			fmt.Sprintf("failed to connect to SMTP server %s", endpoint.Addr()), err)
	}

	login := credentials.Login()
	auth := smtp.PlainAuth("", login, credentials.Password, endpoint.Host)
	if err := client.Auth(auth); err != nil {
		_ = client.Close()
		return nil, errors.NewConnectionError("failed to authenticate", err)
	}

	return &smtpSession{
		client: client,
		from:   login,
		host:   endpoint.Host,
		now:    t.now,
	}, nil
}

func tlsDialer(timeout time.Duration, base *tls.Config) dialFunc {
	return func(ctx context.Context, endpoint Endpoint) (smtpClient, error) {
		var config *tls.Config
		if base != nil {
			config = base.Clone()
		} else {
			config = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		config.ServerName = endpoint.Host

		dialer := &tls.Dialer{
			NetDialer: &net.Dialer{Timeout: timeout},
			Config:    config,
		}
		conn, err := dialer.DialContext(ctx, "tcp", endpoint.Addr())
		if err != nil {
			return nil, err
		}

		client, err := smtp.NewClient(conn, endpoint.Host)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		return client, nil
	}
}

// smtpSession is one authenticated SMTP connection reused for every message of a run
type smtpSession struct {
	client smtpClient
	from   string
	host   string
	now    func() time.Time
}

func (s *smtpSession) From() string {
	return s.from
}

// Send transmits one message. Failures reset the transaction so the session stays usable.
func (s *smtpSession) Send(ctx context.Context, msg ports.OutgoingMessage) error {
	to := validation.SanitizeEmail(msg.To)
	if to == "" {
		return errors.NewSendError("recipient email cannot be empty", nil)
	}

	data := buildMessage(s.from, to, msg.Subject, msg.Body, msg.Format, s.messageID(), s.now())

	if err := s.client.Mail(s.from); err != nil {
		return s.fail("failed to set sender", err)
	}
	if err := s.client.Rcpt(to); err != nil {
		return s.fail("failed to set recipient", err)
	}

	writer, err := s.client.Data()
	if err != nil {
		return s.fail("failed to get data writer", err)
	}
	if _, err := writer.Write([]byte(data)); err != nil {
		_ = writer.Close()
		return s.fail("failed to write message", err)
	}
	if err := writer.Close(); err != nil {
		return s.fail("server rejected message", err)
	}

	return nil
}

// Close ends the session, falling back to dropping the connection if QUIT fails
func (s *smtpSession) Close() error {
	if err := s.client.Quit(); err != nil {
		_ = s.client.Close()
		return errors.NewConnectionError("failed to close SMTP session", err)
	}
	return nil
}

func (s *smtpSession) fail(message string, cause error) error {
	_ = s.client.Reset()
	return errors.NewSendError(message, cause)
}

func (s *smtpSession) messageID() string {
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)
}

// buildMessage constructs the RFC 5322 message
func buildMessage(from, to, subject, body string, format ports.BodyFormat, messageID string, date time.Time) string {
	subject = mime.QEncoding.Encode("utf-8", validation.StripHeaderBreaks(subject))

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Date: %s\r\n", date.Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: %s\r\n", messageID)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s; charset=UTF-8\r\n", format.ContentType())
	b.WriteString("\r\n")
	b.WriteString(body)

	return b.String()
}
