package style

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeConfig carries a resolved go-theme selection into renderers: the
// token map for surface defaults plus the tokens re-expressed as CSS custom
// properties.
type ThemeConfig struct {
	Theme   string
	Variant string
	Tokens  map[string]string
	CSSVars map[string]string
}

// FromSelection converts a go-theme selection into renderer configuration.
// Variant tokens override base manifest tokens.
func FromSelection(selection *theme.Selection) *ThemeConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	tokens := map[string]string{}
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars[cssVarName(key)] = value
	}

	return &ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: cssVars,
	}
}

// Token returns a named token value, or the fallback when the config is nil
// or the token is missing.
func (c *ThemeConfig) Token(name, fallback string) string {
	if c == nil {
		return fallback
	}
	if value, ok := c.Tokens[name]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func cssVarName(token string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(token), ".", "-")
	return fmt.Sprintf("--%s", cleaned)
}
