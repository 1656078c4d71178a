package render

import (
	"context"
	"sync"

	"github.com/goliatone/go-cardgen/pkg/document"
	"github.com/goliatone/go-cardgen/pkg/style"
)

// ElementContext is what a type renderer receives: the binding-resolved
// element, its flattened paint directives, and the surrounding render
// parameters. Geometry and z-order are deliberately absent; the orchestrator
// injects those uniformly.
type ElementContext struct {
	Element    document.TemplateElement
	Directives style.Directives
	Scale      float64
	Mode       Mode
	Data       map[string]any
	Theme      *style.ThemeConfig
}

// ElementRenderer produces the visual content for one element type.
type ElementRenderer interface {
	Type() document.ElementType
	Render(ctx context.Context, ec ElementContext) ([]byte, error)
}

// ElementRegistry maps element type tags to their renderers. Registration
// happens during initialisation; rendering with an unregistered type is not
// an error, the orchestrator warns and skips the element.
type ElementRegistry struct {
	mu        sync.RWMutex
	renderers map[document.ElementType]ElementRenderer
}

// NewElementRegistry creates an empty registry.
func NewElementRegistry() *ElementRegistry {
	return &ElementRegistry{
		renderers: make(map[document.ElementType]ElementRenderer),
	}
}

// Register adds or replaces the renderer for a type. Last registration wins,
// matching the transform registry's hot-replacement semantics.
func (r *ElementRegistry) Register(renderer ElementRenderer) {
	if r == nil || renderer == nil {
		return
	}
	t := renderer.Type()
	if t == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[t] = renderer
}

// Get retrieves the renderer for a type.
func (r *ElementRegistry) Get(t document.ElementType) (ElementRenderer, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[t]
	return renderer, ok
}

// Types returns the registered type tags, unsorted.
func (r *ElementRegistry) Types() []document.ElementType {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]document.ElementType, 0, len(r.renderers))
	for t := range r.renderers {
		types = append(types, t)
	}
	return types
}
