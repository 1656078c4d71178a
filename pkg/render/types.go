package render

import (
	"github.com/goliatone/go-cardgen/pkg/document"
	"github.com/goliatone/go-cardgen/pkg/style"
)

// Mode selects the rendering context. Every mode flows through the same
// pipeline; export differs only by scale and by painting offscreen.
type Mode string

const (
	ModePreview   Mode = "preview"
	ModeDisplay   Mode = "display"
	ModeExport    Mode = "export"
	ModeThumbnail Mode = "thumbnail"
)

// Placement is the absolute, scaled geometry the orchestrator computes for an
// element. Element renderers never see it; position, rotation, and z-order
// are injected uniformly by the surface wrapper.
type Placement struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`
	Opacity  float64 `json:"opacity"`
	ZOrder   int     `json:"zOrder"`
	// Interactive is NOT(locked OR not selectable); surfaces targeting an
	// editor use it to gate pointer events.
	Interactive bool `json:"interactive"`
}

// Node pairs a binding-resolved element with its placement, paint directives,
// and the content produced by its type renderer.
type Node struct {
	Element    document.TemplateElement `json:"element"`
	Placement  Placement                `json:"placement"`
	Directives style.Directives         `json:"directives"`
	Content    []byte                   `json:"content,omitempty"`
}

// Tree is the orchestrator's output: everything a surface needs to encode a
// full paint pass.
type Tree struct {
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Scale      float64            `json:"scale"`
	DPI        int                `json:"dpi"`
	Mode       Mode               `json:"mode"`
	Background style.Background   `json:"background"`
	Theme      *style.ThemeConfig `json:"-"`
	// Placeholder is set when the document was not ready; surfaces render a
	// neutral placeholder instead of the node list.
	Placeholder bool   `json:"placeholder,omitempty"`
	Nodes       []Node `json:"nodes"`
}

// Result is a completed render.
type Result struct {
	Body        []byte `json:"-"`
	ContentType string `json:"contentType"`
	PixelWidth  int    `json:"pixelWidth"`
	PixelHeight int    `json:"pixelHeight"`
	Scale       float64
	Mode        Mode
	// PhotoPlacements lets callers composite original-resolution photos over
	// the rasterised background.
	PhotoPlacements []PhotoPlacement `json:"photoPlacements,omitempty"`
}

// PhotoPlacement is the unscaled rectangle of a photo-bearing element plus
// the data field its source is bound to.
type PhotoPlacement struct {
	ElementID string  `json:"elementId"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Field     string  `json:"field,omitempty"`
}

// Logger receives the warn-and-continue diagnostics the render path emits
// instead of failing. The default discards everything.
type Logger interface {
	Warnf(format string, args ...any)
}

// NopLogger discards all diagnostics.
type NopLogger struct{}

func (NopLogger) Warnf(string, ...any) {}
