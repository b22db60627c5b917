package merge

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

var (
	parameterPattern = regexp.MustCompile(`\{(\w+)\}`)
	fillTokenPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)
)

// ExtractParameters returns the distinct names of {name} tokens in first-appearance order.
// A {{name}} token also yields name since it contains {name}.
func ExtractParameters(template string) []string {
	matches := parameterPattern.FindAllStringSubmatch(template, -1)

	seen := make(map[string]struct{}, len(matches))
	params := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		params = append(params, name)
	}
	return params
}

// BareTokens returns {name} tokens that are not part of a {{name}} token.
// FillTemplate never substitutes these.
func BareTokens(template string) []string {
	stripped := fillTokenPattern.ReplaceAllString(template, "")
	return ExtractParameters(stripped)
}

// MissingParameters lists the required names absent from the record, in required order.
func MissingParameters(recipient ports.Recipient, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := recipient[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// FillTemplate replaces every case-insensitive {{key}} with the record value for key
// in one pass over the template. Values are inserted literally and never re-scanned.
// A template token with no matching key is a SUBSTITUTION_ERROR.
func FillTemplate(template string, recipient ports.Recipient) (string, error) {
	keys := make([]string, 0, len(recipient))
	for key := range recipient {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Among keys differing only in case, the first in sorted order wins.
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		folded := strings.ToLower(key)
		if _, ok := values[folded]; !ok {
			values[folded] = recipient[key]
		}
	}

	var missing []string
	seen := make(map[string]struct{})
	filled := fillTokenPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[2 : len(token)-2]
		if value, ok := values[strings.ToLower(name)]; ok {
			return value
		}
		if _, ok := seen[token]; !ok {
			seen[token] = struct{}{}
			missing = append(missing, token)
		}
		return token
	})

	if len(missing) > 0 {
		return "", errors.NewSubstitutionError(
			fmt.Sprintf("error while filling the template: no value for %s", strings.Join(missing, ", ")), nil)
	}

	return filled, nil
}
