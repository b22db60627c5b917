package merge

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

var credentialsValidator = validator.New()

// DeliveryStatus represents the outcome for one recipient
type DeliveryStatus int

const (
	StatusUnknown DeliveryStatus = iota
	StatusSent
	StatusFailed
	StatusSkipped
)

// String returns the string representation of delivery status
func (s DeliveryStatus) String() string {
	switch s {
	case StatusSent:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome returns the metrics outcome label for the status
func (s DeliveryStatus) Outcome() string {
	switch s {
	case StatusSent:
		return ports.OutcomeSent
	case StatusFailed:
		return ports.OutcomeFailed
	default:
		return ports.OutcomeSkipped
	}
}

// MarshalText implements encoding.TextMarshaler for JSON responses
func (s DeliveryStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Delivery is the recorded outcome for one recipient
type Delivery struct {
	Position int            `json:"position"`
	Email    string         `json:"email"`
	Status   DeliveryStatus `json:"status"`
	Detail   string         `json:"detail"`
	Missing  []string       `json:"missing,omitempty"`
}

// Report summarizes a completed run
type Report struct {
	RunID      string        `json:"run_id"`
	Sent       int           `json:"sent"`
	Failed     int           `json:"failed"`
	Skipped    int           `json:"skipped"`
	Deliveries []Delivery    `json:"deliveries"`
	Duration   time.Duration `json:"duration"`
}

// Total returns the number of recipients processed
func (r *Report) Total() int {
	return r.Sent + r.Failed + r.Skipped
}

func (r *Report) add(d Delivery) {
	switch d.Status {
	case StatusSent:
		r.Sent++
	case StatusFailed:
		r.Failed++
	default:
		r.Skipped++
	}
	r.Deliveries = append(r.Deliveries, d)
}

// MergeRequest is the input of one merge run.
// TemplateText, when set, is used instead of reading TemplatePath.
type MergeRequest struct {
	TemplatePath string
	TemplateText string
	Source       ports.DataSource
	Provider     ports.Provider
	Credentials  ports.Credentials
	Format       ports.BodyFormat
}

// Validate performs the pre-flight checks that need no I/O
func (r MergeRequest) Validate() error {
	if r.TemplatePath == "" && r.TemplateText == "" {
		return errors.NewConfigurationError("template path is required", nil)
	}
	if r.Source == nil {
		return errors.NewConfigurationError(
			"data source must be a file path (CSV or JSON) or a list of records", nil)
	}
	if !r.Provider.IsValid() {
		return errors.NewConfigurationError(
			fmt.Sprintf("unsupported email service %q, use 'gmail' or 'outlook'", r.Provider), nil)
	}
	return ValidateCredentials(r.Credentials)
}

func (r MergeRequest) templateLabel() string {
	if r.TemplatePath != "" {
		return r.TemplatePath
	}
	return "inline"
}

// ValidateCredentials checks for a password plus an email or username
func ValidateCredentials(c ports.Credentials) error {
	if err := credentialsValidator.Struct(c); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
			}
		}
		return errors.NewConfigurationError(
			fmt.Sprintf("invalid credentials: %s", strings.Join(fields, ", ")), err)
	}
	return nil
}
