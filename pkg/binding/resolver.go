package binding

import (
	"encoding/json"
	"strings"

	"github.com/goliatone/go-cardgen/pkg/document"
)

// FormatPlaceholder is the single token a binding's format template may
// contain; it is replaced with the stringified resolved value.
const FormatPlaceholder = "{{value}}"

// VariablePrefix routes binding paths into the document's template variables
// instead of the caller-supplied data context.
const VariablePrefix = "variables."

// Resolver resolves data bindings against a data context. The zero value is
// usable; it simply has no transforms registered.
type Resolver struct {
	transforms *Transforms
}

// NewResolver builds a resolver around a transform registry. A nil registry
// leaves every transform name unregistered (values pass through unchanged).
func NewResolver(transforms *Transforms) *Resolver {
	return &Resolver{transforms: transforms}
}

// Resolve maps a binding to a concrete value. The steps run in fixed order:
// dot-path walk, fallback substitution for unresolved/empty values, transform
// application, format-template substitution.
func (r *Resolver) Resolve(b document.DataBinding, data map[string]any) any {
	value, ok := Lookup(data, b.Field)
	if !ok || IsEmpty(value) {
		value = b.Fallback
	}

	if r != nil && b.Transform != "" {
		if fn, registered := r.transforms.Get(b.Transform); registered {
			value = fn(value, data)
		}
	}

	if b.Format != "" {
		value = strings.ReplaceAll(b.Format, FormatPlaceholder, coerceString(value))
	}
	return value
}

// ResolveElementBindings applies Resolve to every entry in the element's
// bindings map, producing a prop-path -> value dictionary.
func (r *Resolver) ResolveElementBindings(el document.TemplateElement, data map[string]any) map[string]any {
	if len(el.Bindings) == 0 {
		return nil
	}
	out := make(map[string]any, len(el.Bindings))
	for path, b := range el.Bindings {
		out[path] = r.Resolve(b, data)
	}
	return out
}

// ApplyBindings produces a new element with resolved values written over its
// props and style. Only two-segment paths with a "props." or "style." prefix
// apply; anything else is a documented no-op. The input element is never
// mutated.
func ApplyBindings(el document.TemplateElement, values map[string]any) document.TemplateElement {
	if len(values) == 0 {
		return el
	}

	out := el.Clone()
	propOverrides := map[string]any{}
	styleOverrides := map[string]any{}
	for path, value := range values {
		key, section := splitBindingPath(path)
		switch section {
		case "props":
			propOverrides[key] = value
		case "style":
			styleOverrides[key] = value
		}
	}

	if len(propOverrides) > 0 {
		if props, ok := overrideProps(out.Type, out.Props, propOverrides); ok {
			out.Props = props
		}
	}
	if len(styleOverrides) > 0 {
		if style, ok := overrideStyle(out.Style, styleOverrides); ok {
			out.Style = style
		}
	}
	return out
}

func splitBindingPath(path string) (key, section string) {
	parts := strings.SplitN(path, ".", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[1], parts[0]
}

// overrideProps merges loosely-typed overrides into the typed props payload
// through a JSON round trip, so unknown keys fall away silently and values
// are coerced by the concrete props schema.
func overrideProps(t document.ElementType, props document.Props, overrides map[string]any) (document.Props, bool) {
	merged, ok := mergeJSON(props, overrides)
	if !ok {
		return nil, false
	}
	out, err := document.UnmarshalPropsJSON(t, merged)
	if err != nil {
		return nil, false
	}
	return out, true
}

func overrideStyle(style *document.StyleDescriptor, overrides map[string]any) (*document.StyleDescriptor, bool) {
	base := style
	if base == nil {
		base = &document.StyleDescriptor{}
	}
	merged, ok := mergeJSON(base, overrides)
	if !ok {
		return nil, false
	}
	var out document.StyleDescriptor
	if err := json.Unmarshal(merged, &out); err != nil {
		return nil, false
	}
	return &out, true
}

func mergeJSON(base any, overrides map[string]any) ([]byte, bool) {
	raw, err := json.Marshal(base)
	if err != nil {
		return nil, false
	}
	m := map[string]any{}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, false
		}
	}
	for key, value := range overrides {
		m[key] = value
	}
	merged, err := json.Marshal(m)
	if err != nil {
		return nil, false
	}
	return merged, true
}
