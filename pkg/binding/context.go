package binding

import "github.com/goliatone/go-cardgen/pkg/document"

// ContextWithVariables layers the document's template variables under the
// "variables." prefix of the data context, without mutating the caller's map.
func ContextWithVariables(data map[string]any, vars []document.TemplateVariable) map[string]any {
	if len(vars) == 0 {
		return data
	}
	out := make(map[string]any, len(data)+1)
	for key, value := range data {
		out[key] = value
	}
	values := make(map[string]any, len(vars))
	for _, v := range vars {
		values[v.Name] = v.Value
	}
	out["variables"] = values
	return out
}
