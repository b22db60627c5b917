package validation

import "strings"

// SanitizeEmail strips leading and trailing whitespace from an address.
// It is idempotent.
func SanitizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// StripHeaderBreaks removes CR and LF so a value cannot inject extra headers.
func StripHeaderBreaks(s string) string {
	return strings.NewReplacer("\r\n", "", "\r", "", "\n", "").Replace(s)
}
