package binding

import (
	"strings"
	"sync"
	"unicode"
)

// Transform is a named pure function applied to a resolved binding value
// before display. The full data context is passed so transforms can be
// context-aware.
type Transform func(value any, data map[string]any) any

// Transforms is the process-wide name -> function table. Instances are
// injected through construction rather than shared as package globals;
// registration is expected during initialisation, before the first render.
type Transforms struct {
	mu    sync.RWMutex
	table map[string]Transform
}

// NewTransforms builds a registry seeded with the built-in transforms.
func NewTransforms() *Transforms {
	t := &Transforms{table: make(map[string]Transform)}
	t.registerBuiltins()
	return t
}

// Register adds or replaces a transform. Registration is idempotent, last
// wins, which supports hot-replacement during template development.
func (t *Transforms) Register(name string, fn Transform) {
	if t == nil || fn == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table[name] = fn
}

// Get returns the transform for a name.
func (t *Transforms) Get(name string) (Transform, bool) {
	if t == nil {
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	fn, ok := t.table[name]
	return fn, ok
}

// Names returns the registered transform names, unsorted.
func (t *Transforms) Names() []string {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.table))
	for name := range t.table {
		names = append(names, name)
	}
	return names
}

func (t *Transforms) registerBuiltins() {
	t.Register("uppercase", func(value any, _ map[string]any) any {
		return strings.ToUpper(coerceString(value))
	})
	t.Register("lowercase", func(value any, _ map[string]any) any {
		return strings.ToLower(coerceString(value))
	})
	t.Register("trim", func(value any, _ map[string]any) any {
		return strings.TrimSpace(coerceString(value))
	})
	t.Register("titlecase", func(value any, _ map[string]any) any {
		return titleCase(coerceString(value))
	})
	t.Register("initials", func(value any, _ map[string]any) any {
		return initials(coerceString(value))
	})
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func initials(s string) string {
	var out []rune
	for _, word := range strings.Fields(s) {
		for _, r := range word {
			out = append(out, unicode.ToUpper(r))
			break
		}
	}
	return string(out)
}
