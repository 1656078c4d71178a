// Package svg encodes render trees as standalone SVG documents. It is the
// default surface: the same markup serves interactive preview, display, and
// high-scale export.
package svg

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-cardgen/pkg/render"
	rendertemplate "github.com/goliatone/go-cardgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-cardgen/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Surface encodes render trees into SVG markup.
type Surface struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the SVG surface applying any provided options.
func New(options ...Option) (*Surface, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("svg surface: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Surface{templates: renderer}, nil
}

func (s *Surface) Name() string {
	return "svg"
}

func (s *Surface) ContentType() string {
	return "image/svg+xml"
}

// Encode renders the document shell template around the node contents. Each
// node is wrapped in a group carrying the placement transform and effective
// opacity, so element content stays position-agnostic.
func (s *Surface) Encode(_ context.Context, tree render.Tree) ([]byte, error) {
	if s.templates == nil {
		return nil, fmt.Errorf("svg surface: template renderer is nil")
	}

	nodes := make([]map[string]any, 0, len(tree.Nodes))
	for _, node := range tree.Nodes {
		nodes = append(nodes, map[string]any{
			"id":     node.Element.ID,
			"markup": wrapNode(node),
		})
	}

	data := map[string]any{
		"width":       tree.Width,
		"height":      tree.Height,
		"background":  tree.Background,
		"placeholder": tree.Placeholder,
		"nodes":       nodes,
		"cssVars":     cssVarBlock(tree),
	}

	result, err := s.templates.RenderTemplate("templates/card.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("svg surface: render template: %w", err)
	}
	return []byte(result), nil
}

func wrapNode(node render.Node) string {
	p := node.Placement
	transform := fmt.Sprintf("translate(%s %s)", num(p.X), num(p.Y))
	if p.Rotation != 0 {
		transform += fmt.Sprintf(" rotate(%s %s %s)", num(p.Rotation), num(p.Width/2), num(p.Height/2))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<g data-element=%q transform=%q`, node.Element.ID, transform)
	if p.Opacity < 1 {
		fmt.Fprintf(&b, ` opacity="%s"`, num(p.Opacity))
	}
	if !p.Interactive {
		b.WriteString(` pointer-events="none"`)
	}
	b.WriteString(">")
	b.Write(node.Content)
	b.WriteString("</g>")
	return b.String()
}

func cssVarBlock(tree render.Tree) string {
	if tree.Theme == nil || len(tree.Theme.CSSVars) == 0 {
		return ""
	}
	names := make([]string, 0, len(tree.Theme.CSSVars))
	for name := range tree.Theme.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s:%s;", name, tree.Theme.CSSVars[name])
	}
	return b.String()
}

// num formats coordinates without trailing zeros so output stays diffable.
func num(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", f), "0"), ".")
}
