package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already_clean", "john.doe@example.com", "john.doe@example.com"},
		{"leading_spaces", "   john.doe@example.com", "john.doe@example.com"},
		{"trailing_tab_newline", "john.doe@example.com\t\n", "john.doe@example.com"},
		{"both_sides", "  jane@example.com  ", "jane@example.com"},
		{"inner_space_kept", " a b@example.com ", "a b@example.com"},
		{"empty", "", ""},
		{"only_whitespace", " \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := SanitizeEmail(tt.input)
			assert.Equal(t, tt.expected, once)
			assert.Equal(t, once, SanitizeEmail(once), "sanitize must be idempotent")
		})
	}
}

func TestStripHeaderBreaks(t *testing.T) {
	assert.Equal(t, "HelloBcc: x@example.com", StripHeaderBreaks("Hello\r\nBcc: x@example.com"))
	assert.Equal(t, "ab", StripHeaderBreaks("a\nb"))
	assert.Equal(t, "ab", StripHeaderBreaks("a\rb"))
	assert.Equal(t, "Welcome", StripHeaderBreaks("Welcome"))
}
