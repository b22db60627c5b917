package merge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

func TestExtractParameters(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected []string
	}{
		{name: "single token", template: "Hello {name}!", expected: []string{"name"}},
		{name: "first appearance order", template: "{b} {a} {b} {c} {a}", expected: []string{"b", "a", "c"}},
		{name: "double brace yields inner name", template: "Dear {{name}}, code {{code}}", expected: []string{"name", "code"}},
		{name: "mixed forms are deduplicated", template: "{name} and {{name}}", expected: []string{"name"}},
		{name: "underscores and digits", template: "{first_name} {line2}", expected: []string{"first_name", "line2"}},
		{name: "no tokens", template: "plain text", expected: []string{}},
		{name: "empty braces ignored", template: "{} { } {bad-name}", expected: []string{}},
		{name: "empty template", template: "", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractParameters(tt.template))
		})
	}
}

func TestExtractParameters_Deterministic(t *testing.T) {
	template := "{z} {{y}} {x} {z} {w}"
	first := ExtractParameters(template)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ExtractParameters(template))
	}
}

func TestBareTokens(t *testing.T) {
	assert.Equal(t, []string{"name"}, BareTokens("Hello {name}"))
	assert.Empty(t, BareTokens("Hello {{name}}"))
	assert.Equal(t, []string{"city"}, BareTokens("{{name}} from {city}"))
}

func TestMissingParameters(t *testing.T) {
	recipient := ports.Recipient{"email": "a@x.com", "name": "Ann"}

	assert.Empty(t, MissingParameters(recipient, []string{"name", "email"}))
	assert.Equal(t, []string{"code", "city"}, MissingParameters(recipient, []string{"code", "name", "city"}))
	assert.Empty(t, MissingParameters(recipient, nil))
}

func TestMissingParameters_KeysAreCaseSensitive(t *testing.T) {
	recipient := ports.Recipient{"Name": "Ann"}
	assert.Equal(t, []string{"name"}, MissingParameters(recipient, []string{"name"}))
}

func TestFillTemplate_Success(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		recipient ports.Recipient
		expected  string
	}{
		{
			name:      "basic",
			template:  "Hi {{name}}, your code is {{code}}",
			recipient: ports.Recipient{"name": "Ann", "code": "X1"},
			expected:  "Hi Ann, your code is X1",
		},
		{
			name:      "case insensitive token",
			template:  "Hello {{NAME}} and {{Name}}",
			recipient: ports.Recipient{"name": "Bo"},
			expected:  "Hello Bo and Bo",
		},
		{
			name:      "case insensitive key",
			template:  "Hello {{name}}",
			recipient: ports.Recipient{"NAME": "Cy"},
			expected:  "Hello Cy",
		},
		{
			name:      "values inserted literally",
			template:  "Price: {{price}}",
			recipient: ports.Recipient{"price": "$1 \\n ${2}"},
			expected:  "Price: $1 \\n ${2}",
		},
		{
			name:      "value containing braces is not reprocessed as missing",
			template:  "{{a}}",
			recipient: ports.Recipient{"a": "{b}"},
			expected:  "{b}",
		},
		{
			name:      "value holding a fill token is inserted as is",
			template:  "Hi {{name}}",
			recipient: ports.Recipient{"name": "{{nickname}}"},
			expected:  "Hi {{nickname}}",
		},
		{
			name:      "value is not filled again from another key",
			template:  "{{a}} / {{b}}",
			recipient: ports.Recipient{"a": "{{b}}", "b": "Bo"},
			expected:  "{{b}} / Bo",
		},
		{
			name:      "unused fields ignored",
			template:  "Hi {{name}}",
			recipient: ports.Recipient{"name": "Di", "email": "d@x.com"},
			expected:  "Hi Di",
		},
		{
			name:      "single brace tokens left untouched",
			template:  "Hello {name}",
			recipient: ports.Recipient{"name": "Ed"},
			expected:  "Hello {name}",
		},
		{
			name:      "no tokens",
			template:  "static body",
			recipient: ports.Recipient{},
			expected:  "static body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FillTemplate(tt.template, tt.recipient)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFillTemplate_LeftoverTokenFails(t *testing.T) {
	result, err := FillTemplate("Hi {{name}}, code {{code}}", ports.Recipient{"name": "Ann"})

	assert.Error(t, err)
	assert.Empty(t, result)
	assert.True(t, errors.IsSubstitutionError(err))
	assert.Contains(t, err.Error(), "{{code}}")
}

func TestFillTemplate_FullRecordLeavesNoTokens(t *testing.T) {
	template := "{{greeting}} {{name}}, see {{url}} before {{date}}"
	recipient := ports.Recipient{"greeting": "Hello", "name": "Fay", "url": "https://x", "date": "Monday"}

	result, err := FillTemplate(template, recipient)
	require.NoError(t, err)
	assert.Empty(t, fillTokenPattern.FindAllString(result, -1))
	assert.Equal(t, "Hello Fay, see https://x before Monday", result)
}

func TestFillTemplate_CaseVariantKeysPickFirstSorted(t *testing.T) {
	result, err := FillTemplate("{{name}}", ports.Recipient{"name": "lower", "NAME": "upper"})
	require.NoError(t, err)
	assert.Equal(t, "upper", result)
}

func TestFillTemplate_RepeatedMissingTokenReportedOnce(t *testing.T) {
	_, err := FillTemplate("{{code}} {{code}}", ports.Recipient{})
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "{{code}}"))
}
