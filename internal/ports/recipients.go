package ports

import (
	"context"
)

const (
	FieldEmail   = "email"
	FieldSubject = "subject"

	DefaultSubject = "No Subject"
)

// Recipient is one record of merge data keyed by field name
type Recipient map[string]string

// Email returns the raw email field and whether it is present
func (r Recipient) Email() (string, bool) {
	email, ok := r[FieldEmail]
	return email, ok
}

// Subject returns the subject field whenever it is present, even when empty.
// DefaultSubject is used only when the field is absent.
func (r Recipient) Subject() string {
	if subject, ok := r[FieldSubject]; ok {
		return subject
	}
	return DefaultSubject
}

// DataSource is the closed set of recipient inputs:
// DelimitedFile, StructuredFile and InMemory.
type DataSource interface {
	Describe() string
	isDataSource()
}

// DelimitedFile is a CSV file whose first row names the fields
type DelimitedFile struct {
	Path string
}

// StructuredFile is a JSON file holding an array of flat objects
type StructuredFile struct {
	Path string
}

// InMemory is an already-parsed list of records
type InMemory struct {
	Records []Recipient
}

func (s DelimitedFile) Describe() string  { return "csv:" + s.Path }
func (s StructuredFile) Describe() string { return "json:" + s.Path }
func (s InMemory) Describe() string       { return "memory" }

func (DelimitedFile) isDataSource()  {}
func (StructuredFile) isDataSource() {}
func (InMemory) isDataSource()       {}

// TemplateLoader reads template text
type TemplateLoader interface {
	Load(ctx context.Context, path string) (string, error)
}

// RecipientLoader turns a data source into an ordered recipient list
type RecipientLoader interface {
	Load(ctx context.Context, source DataSource) ([]Recipient, error)
}
