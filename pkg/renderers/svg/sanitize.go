package svg

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips all markup from a bound value before it is embedded in
// SVG text content. Bindings resolve against caller-supplied data, so values
// are treated as untrusted.
func SanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(trimmed))
}

// SanitizeAttr cleans a value bound into an attribute such as an image href.
// Quotes and angle brackets are removed outright on top of the strict policy.
func SanitizeAttr(raw string) string {
	cleaned := SanitizeText(raw)
	return strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '<', '>':
			return -1
		default:
			return r
		}
	}, cleaned)
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
