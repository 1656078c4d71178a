package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-cardgen/pkg/binding"
	"github.com/goliatone/go-cardgen/pkg/compose"
	"github.com/goliatone/go-cardgen/pkg/document"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/renderers/svg"
	"github.com/goliatone/go-cardgen/pkg/style"
)

const defaultSurfaceName = "svg"

// Scale defaults per mode. Export targets print quality; thumbnails are
// small read-only previews.
const (
	DefaultExportScale    = 8.0
	DefaultThumbnailScale = 0.25
)

// defaultFontTimeout bounds the wait for font readiness before an export
// capture so a broken font load never hangs rendering.
const defaultFontTimeout = 3 * time.Second

// FontWaiter blocks until fonts required by a capture pass are usable.
type FontWaiter interface {
	Ready(ctx context.Context) error
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithElementRegistry injects a custom element-renderer registry.
func WithElementRegistry(registry *render.ElementRegistry) Option {
	return func(o *Orchestrator) {
		o.elements = registry
	}
}

// WithSurfaceRegistry injects a surface registry.
func WithSurfaceRegistry(registry *render.SurfaceRegistry) Option {
	return func(o *Orchestrator) {
		o.surfaces = registry
	}
}

// WithDefaultSurface overrides the surface used when a request omits an
// explicit Surface field.
func WithDefaultSurface(name string) Option {
	return func(o *Orchestrator) {
		o.defaultSurface = name
	}
}

// WithTransforms injects the binding transform registry.
func WithTransforms(transforms *binding.Transforms) Option {
	return func(o *Orchestrator) {
		o.transforms = transforms
	}
}

// WithLogger receives warn-and-continue diagnostics (unregistered element
// types, renderer failures). Defaults to a no-op logger.
func WithLogger(logger render.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithThemeSelector passes a go-theme selector so theme/variant choices can
// be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme/variant used when a request omits them.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithFontWaiter installs the font-readiness gate consulted before export
// captures. The wait is bounded by the font timeout.
func WithFontWaiter(waiter FontWaiter) Option {
	return func(o *Orchestrator) {
		o.fontWaiter = waiter
	}
}

// WithFontTimeout overrides the export font-readiness budget.
func WithFontTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.fontTimeout = d
		}
	}
}

// Orchestrator coordinates the full pipeline from template document to
// rendered output. It applies sensible defaults (SVG surface, built-in
// element renderers, built-in transforms) while remaining open to dependency
// injection for advanced callers.
type Orchestrator struct {
	elements       *render.ElementRegistry
	surfaces       *render.SurfaceRegistry
	defaultSurface string
	transforms     *binding.Transforms
	resolver       *binding.Resolver
	logger         render.Logger
	themeSelector  theme.ThemeSelector
	defaultTheme   string
	defaultVariant string
	fontWaiter     FontWaiter
	fontTimeout    time.Duration

	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultSurface: defaultSurfaceName,
		fontTimeout:    defaultFontTimeout,
		logger:         render.NopLogger{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a card side.
type Request struct {
	// Document is the template to paint.
	Document document.TemplateDocument

	// Data is the dot-path-navigable context bindings resolve against. The
	// orchestrator never mutates it.
	Data map[string]any

	// Mode selects preview/display/export/thumbnail. Defaults to preview.
	Mode render.Mode

	// Scale multiplies document units into output pixels. Zero picks the
	// mode's default (1 for preview/display, 8 for export, 0.25 thumbnail).
	Scale float64

	// Surface names the surface to encode with. Empty falls back to the
	// configured default surface.
	Surface string

	// Theme and ThemeVariant select a go-theme theme for surface defaults.
	Theme        string
	ThemeVariant string
}

// Render executes compose → binding → style → surface and returns the
// encoded result together with its pixel dimensions and photo placements.
func (o *Orchestrator) Render(ctx context.Context, req Request) (*render.Result, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	mode := req.Mode
	if mode == "" {
		mode = render.ModePreview
	}
	scale := req.Scale
	if scale <= 0 {
		scale = defaultScale(mode)
	}

	if mode == render.ModeExport {
		o.awaitFonts(ctx)
	}

	tree, err := o.BuildTree(ctx, req, mode, scale)
	if err != nil {
		return nil, err
	}

	surface, err := o.surfaceFor(req.Surface)
	if err != nil {
		return nil, err
	}

	body, err := surface.Encode(ctx, tree)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: encode surface: %w", err)
	}

	return &render.Result{
		Body:            body,
		ContentType:     surface.ContentType(),
		PixelWidth:      int(tree.Width + 0.5),
		PixelHeight:     int(tree.Height + 0.5),
		Scale:           scale,
		Mode:            mode,
		PhotoPlacements: PhotoPlacements(req.Document),
	}, nil
}

// BuildTree runs the layout pipeline without encoding: ordered visible
// elements, per-element binding resolution, style flattening, and placement.
// It is a pure function of its inputs plus the configured registries.
func (o *Orchestrator) BuildTree(ctx context.Context, req Request, mode render.Mode, scale float64) (render.Tree, error) {
	doc := req.Document

	tree := render.Tree{
		Width:      doc.Canvas.Width * scale,
		Height:     doc.Canvas.Height * scale,
		Scale:      scale,
		DPI:        doc.Canvas.DPI,
		Mode:       mode,
		Background: style.ResolveBackground(doc.Background),
		Theme:      o.resolveTheme(req),
	}

	if !doc.IsReady {
		tree.Placeholder = true
		return tree, nil
	}

	data := binding.ContextWithVariables(req.Data, doc.Variables)
	ordered := compose.OrderedVisible(doc.Elements, doc.Layers, data)

	tree.Nodes = make([]render.Node, 0, len(ordered))
	for i, el := range ordered {
		if err := ctx.Err(); err != nil {
			return render.Tree{}, err
		}

		values := o.resolver.ResolveElementBindings(el, data)
		bound := binding.ApplyBindings(el, values)
		directives := style.Resolve(bound.Style, scale)

		renderer, ok := o.elements.Get(bound.Type)
		if !ok {
			o.logger.Warnf("orchestrator: no renderer for element type %q, skipping %s", bound.Type, bound.ID)
			continue
		}

		content, err := renderer.Render(ctx, render.ElementContext{
			Element:    bound,
			Directives: directives,
			Scale:      scale,
			Mode:       mode,
			Data:       data,
			Theme:      tree.Theme,
		})
		if err != nil {
			o.logger.Warnf("orchestrator: render element %s (%s): %v", bound.ID, bound.Type, err)
			continue
		}

		tree.Nodes = append(tree.Nodes, render.Node{
			Element: bound,
			Placement: render.Placement{
				X:           bound.Position.X * scale,
				Y:           bound.Position.Y * scale,
				Width:       bound.Dimensions.Width * scale,
				Height:      bound.Dimensions.Height * scale,
				Rotation:    bound.Rotation,
				Opacity:     compose.EffectiveOpacity(bound, doc.Layers),
				ZOrder:      i,
				Interactive: !compose.IsElementLocked(bound, doc.Layers) && bound.Selectable,
			},
			Directives: directives,
			Content:    content,
		})
	}

	return tree, nil
}

// PhotoPlacements collects the unscaled rectangles of photo-bearing elements
// whose source is bound to a data field, so callers can composite original
// resolution photos over the rasterised output.
func PhotoPlacements(doc document.TemplateDocument) []render.PhotoPlacement {
	var out []render.PhotoPlacement
	for _, el := range doc.Elements {
		if el.Type != document.TypeImage && el.Type != document.TypeLogo {
			continue
		}
		b, ok := el.Bindings["props.source"]
		if !ok {
			continue
		}
		out = append(out, render.PhotoPlacement{
			ElementID: el.ID,
			X:         el.Position.X,
			Y:         el.Position.Y,
			Width:     el.Dimensions.Width,
			Height:    el.Dimensions.Height,
			Field:     b.Field,
		})
	}
	return out
}

func (o *Orchestrator) resolveTheme(req Request) *style.ThemeConfig {
	if o.themeSelector == nil {
		return nil
	}
	name := req.Theme
	if name == "" {
		name = o.defaultTheme
	}
	if name == "" {
		return nil
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = o.defaultVariant
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		o.logger.Warnf("orchestrator: theme %q/%q: %v", name, variant, err)
		return nil
	}
	return style.FromSelection(selection)
}

// awaitFonts blocks until fonts are ready or the budget elapses. A slow or
// broken font load degrades to rendering with fallback fonts.
func (o *Orchestrator) awaitFonts(ctx context.Context) {
	if o.fontWaiter == nil {
		return
	}
	waitCtx, cancel := context.WithTimeout(ctx, o.fontTimeout)
	defer cancel()
	if err := o.fontWaiter.Ready(waitCtx); err != nil {
		o.logger.Warnf("orchestrator: font readiness: %v", err)
	}
}

func (o *Orchestrator) surfaceFor(name string) (render.Surface, error) {
	if o.surfaces == nil {
		return nil, errors.New("orchestrator: surface registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultSurface
	}

	if target != "" {
		surface, err := o.surfaces.Get(target)
		if err == nil {
			return surface, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: surface %q: %w", name, err)
		}
	}

	names := o.surfaces.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no surfaces registered")
	}

	surface, err := o.surfaces.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: surface %q: %w", names[0], err)
	}
	return surface, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.transforms == nil {
		o.transforms = binding.NewTransforms()
	}
	o.resolver = binding.NewResolver(o.transforms)

	if o.elements == nil {
		o.elements = render.NewElementRegistry()
		svg.RegisterElementRenderers(o.elements)
	}
	if o.surfaces == nil {
		o.surfaces = render.NewSurfaceRegistry()
		surface, err := svg.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default surface: %w", err)
		} else {
			o.surfaces.MustRegister(surface)
		}
	}
	if o.defaultSurface == "" {
		o.defaultSurface = defaultSurfaceName
	}
	if o.logger == nil {
		o.logger = render.NopLogger{}
	}

	o.defaultsApplied = true
}

func defaultScale(mode render.Mode) float64 {
	switch mode {
	case render.ModeExport:
		return DefaultExportScale
	case render.ModeThumbnail:
		return DefaultThumbnailScale
	default:
		return 1
	}
}
