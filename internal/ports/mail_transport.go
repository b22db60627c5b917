package ports

import "context"

// Provider identifies a supported mail submission service
type Provider string

const (
	ProviderGmail   Provider = "gmail"
	ProviderOutlook Provider = "outlook"
)

// String returns the provider identifier
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the provider is one of the supported services
func (p Provider) IsValid() bool {
	return p == ProviderGmail || p == ProviderOutlook
}

// Credentials carries the login for a mail session.
// Email is preferred over Username as the login identity.
type Credentials struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Username string `json:"username" validate:"required_without=Email"`
	Password string `json:"password" validate:"required"`
}

// Login returns the identity used to authenticate and as the From address
func (c Credentials) Login() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Username
}

// BodyFormat selects the content type of the single message body part
type BodyFormat int

const (
	FormatPlain BodyFormat = iota
	FormatHTML
)

// String returns the string representation of body format
func (f BodyFormat) String() string {
	if f == FormatHTML {
		return "html"
	}
	return "plain"
}

// ContentType returns the MIME type for the body part
func (f BodyFormat) ContentType() string {
	if f == FormatHTML {
		return "text/html"
	}
	return "text/plain"
}

// FormatFromHTMLFlag maps the is_html switch to a BodyFormat
func FormatFromHTMLFlag(isHTML bool) BodyFormat {
	if isHTML {
		return FormatHTML
	}
	return FormatPlain
}

// OutgoingMessage is one filled message ready for transmission
type OutgoingMessage struct {
	To      string
	Subject string
	Body    string
	Format  BodyFormat
}

// MailSession is a single authenticated connection to a provider.
// Send failures are returned as SEND_ERROR values and leave the session usable.
type MailSession interface {
	From() string
	Send(ctx context.Context, msg OutgoingMessage) error
	Close() error
}

// MailTransport opens sessions against a provider's submission endpoint
type MailTransport interface {
	Open(ctx context.Context, provider Provider, credentials Credentials) (MailSession, error)
}
