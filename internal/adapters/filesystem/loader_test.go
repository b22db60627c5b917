package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTemplateLoader_Load(t *testing.T) {
	loader := NewTemplateLoaderAdapter()
	path := writeFile(t, "template.txt", "Dear {{name}},\nWelcome to {{company}}.\n")

	content, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Dear {{name}},\nWelcome to {{company}}.\n", content)
}

func TestTemplateLoader_Errors(t *testing.T) {
	loader := NewTemplateLoaderAdapter()

	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.IsNotFoundError(err))

	_, err = loader.Load(context.Background(), "")
	assert.True(t, errors.IsConfigurationError(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = loader.Load(ctx, "whatever.txt")
	assert.True(t, errors.IsLoadError(err))
}

func TestTemplateLoader_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for this user")
	}
	path := writeFile(t, "secret.txt", "x")
	require.NoError(t, os.Chmod(path, 0000))

	_, err := NewTemplateLoaderAdapter().Load(context.Background(), path)
	assert.True(t, errors.IsPermissionDeniedError(err))
}

func TestRecipientLoader_CSV(t *testing.T) {
	path := writeFile(t, "recipients.csv",
		"email,name,company\njohn.doe@example.com,John,Acme Corp\njane.smith@example.com,Jane,Tech Solutions\n")

	recipients, err := NewRecipientLoaderAdapter().Load(context.Background(), ports.DelimitedFile{Path: path})
	require.NoError(t, err)

	assert.Equal(t, []ports.Recipient{
		{"email": "john.doe@example.com", "name": "John", "company": "Acme Corp"},
		{"email": "jane.smith@example.com", "name": "Jane", "company": "Tech Solutions"},
	}, recipients)
}

func TestRecipientLoader_CSVEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []ports.Recipient
	}{
		{
			name:     "header only",
			content:  "email,name\n",
			expected: []ports.Recipient{},
		},
		{
			name:     "empty file",
			content:  "",
			expected: []ports.Recipient{},
		},
		{
			name:     "byte order mark stripped",
			content:  "\xEF\xBB\xBFemail,name\na@x.com,A\n",
			expected: []ports.Recipient{{"email": "a@x.com", "name": "A"}},
		},
		{
			name:     "short row leaves fields absent",
			content:  "email,name,code\na@x.com,A\n",
			expected: []ports.Recipient{{"email": "a@x.com", "name": "A"}},
		},
		{
			name:     "long row drops extra cells",
			content:  "email,name\na@x.com,A,extra\n",
			expected: []ports.Recipient{{"email": "a@x.com", "name": "A"}},
		},
		{
			name:     "quoted values with commas and newlines",
			content:  "email,address\na@x.com,\"1 Main St, Apt 2\nSpringfield\"\n",
			expected: []ports.Recipient{{"email": "a@x.com", "address": "1 Main St, Apt 2\nSpringfield"}},
		},
		{
			name:     "empty cell kept as empty string",
			content:  "email,name\na@x.com,\n",
			expected: []ports.Recipient{{"email": "a@x.com", "name": ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "data.csv", tt.content)
			recipients, err := NewRecipientLoaderAdapter().Load(context.Background(), ports.DelimitedFile{Path: path})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, recipients)
		})
	}
}

func TestRecipientLoader_CSVErrors(t *testing.T) {
	loader := NewRecipientLoaderAdapter()

	_, err := loader.Load(context.Background(), ports.DelimitedFile{Path: filepath.Join(t.TempDir(), "none.csv")})
	assert.True(t, errors.IsNotFoundError(err))

	path := writeFile(t, "bad.csv", "email,name\n\"unterminated,A\n")
	_, err = loader.Load(context.Background(), ports.DelimitedFile{Path: path})
	assert.True(t, errors.IsLoadError(err))
}

func TestRecipientLoader_JSON(t *testing.T) {
	path := writeFile(t, "recipients.json", `[
		{"email": "a@x.com", "name": "Ann", "age": 31, "vip": true, "balance": 10.50},
		{"email": "b@x.com", "name": "Bo"}
	]`)

	recipients, err := NewRecipientLoaderAdapter().Load(context.Background(), ports.StructuredFile{Path: path})
	require.NoError(t, err)

	require.Len(t, recipients, 2)
	assert.Equal(t, ports.Recipient{"email": "a@x.com", "name": "Ann", "age": "31", "vip": "true", "balance": "10.50"}, recipients[0])
	assert.Equal(t, ports.Recipient{"email": "b@x.com", "name": "Bo"}, recipients[1])
}

func TestRecipientLoader_JSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed", content: `[{"email": "a@x.com"`},
		{name: "not an array", content: `{"email": "a@x.com"}`},
		{name: "array of scalars", content: `["a@x.com"]`},
		{name: "null record", content: `[null]`},
		{name: "nested object", content: `[{"email": "a@x.com", "meta": {"k": "v"}}]`},
		{name: "nested array", content: `[{"email": "a@x.com", "tags": ["a"]}]`},
		{name: "null value", content: `[{"email": null}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "data.json", tt.content)
			_, err := NewRecipientLoaderAdapter().Load(context.Background(), ports.StructuredFile{Path: path})
			assert.True(t, errors.IsLoadError(err))
		})
	}
}

func TestRecipientLoader_InMemoryIsCopied(t *testing.T) {
	records := []ports.Recipient{{"email": "a@x.com", "name": "A"}}

	recipients, err := NewRecipientLoaderAdapter().Load(context.Background(), ports.InMemory{Records: records})
	require.NoError(t, err)
	assert.Equal(t, records, recipients)

	recipients[0]["name"] = "changed"
	assert.Equal(t, "A", records[0]["name"])
}

func TestRecipientLoader_NilSource(t *testing.T) {
	_, err := NewRecipientLoaderAdapter().Load(context.Background(), nil)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestResolveDataSource(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		kind        string
		expected    ports.DataSource
		expectError bool
	}{
		{name: "csv by extension", path: "people.csv", kind: KindAuto, expected: ports.DelimitedFile{Path: "people.csv"}},
		{name: "json by extension", path: "people.JSON", kind: "", expected: ports.StructuredFile{Path: "people.JSON"}},
		{name: "explicit csv overrides extension", path: "people.txt", kind: KindCSV, expected: ports.DelimitedFile{Path: "people.txt"}},
		{name: "explicit json", path: "export", kind: "JSON", expected: ports.StructuredFile{Path: "export"}},
		{name: "unknown extension", path: "people.xlsx", kind: KindAuto, expectError: true},
		{name: "unknown kind", path: "people.csv", kind: "xml", expectError: true},
		{name: "empty path", path: "", kind: KindAuto, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := ResolveDataSource(tt.path, tt.kind)
			if tt.expectError {
				assert.True(t, errors.IsConfigurationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, source)
		})
	}
}
