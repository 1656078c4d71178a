package cardgen

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-cardgen/pkg/document"
	"github.com/goliatone/go-cardgen/pkg/legacy"
	"github.com/goliatone/go-cardgen/pkg/orchestrator"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/renderers/svg"
)

// TemplateDocument is the canonical card template model; alias exported via
// the root package for convenience.
type TemplateDocument = document.TemplateDocument

// Request describes a single render of a card side.
type Request = orchestrator.Request

// Result is a completed render together with its pixel dimensions and photo
// placements.
type Result = render.Result

// Mode selects the render intent: preview, display, export, or thumbnail.
type Mode = render.Mode

const (
	ModePreview   = render.ModePreview
	ModeDisplay   = render.ModeDisplay
	ModeExport    = render.ModeExport
	ModeThumbnail = render.ModeThumbnail
)

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module. Defaults cover the common case: SVG surface, built-in element
// renderers, built-in binding transforms.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderSVG paints the document against the supplied data and returns the SVG
// markup. It is the simplest entry point for callers that just want output.
func RenderSVG(ctx context.Context, doc TemplateDocument, data map[string]any, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	res, err := gen.Render(ctx, orchestrator.Request{
		Document: doc,
		Data:     data,
	})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

// Export renders the document at print scale, waiting on any configured font
// readiness gate first.
func Export(ctx context.Context, doc TemplateDocument, data map[string]any, options ...orchestrator.Option) (*Result, error) {
	gen := orchestrator.New(options...)
	return gen.Render(ctx, orchestrator.Request{
		Document: doc,
		Data:     data,
		Mode:     render.ModeExport,
	})
}

// ConvertLegacy upgrades a flat legacy template into a TemplateDocument for
// the requested side.
func ConvertLegacy(tpl legacy.Template, side document.Side) TemplateDocument {
	return legacy.Convert(tpl, side)
}

// EmbeddedTemplates exposes the built-in SVG surface templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return svg.TemplatesFS()
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithDefaultTheme sets the theme and variant used when a request omits them.
func WithDefaultTheme(name, variant string) orchestrator.Option {
	return orchestrator.WithDefaultTheme(name, variant)
}

// WithLogger receives warn-and-continue diagnostics from the pipeline.
func WithLogger(logger render.Logger) orchestrator.Option {
	return orchestrator.WithLogger(logger)
}

// WithFontWaiter installs the font-readiness gate consulted before export
// captures.
func WithFontWaiter(waiter orchestrator.FontWaiter) orchestrator.Option {
	return orchestrator.WithFontWaiter(waiter)
}
