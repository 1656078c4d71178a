package svg

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-cardgen/pkg/document"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/style"
)

// RegisterElementRenderers installs the built-in SVG element renderers for
// every type in the closed element set.
func RegisterElementRenderers(reg *render.ElementRegistry) {
	reg.Register(textRenderer{})
	reg.Register(imageRenderer{kind: document.TypeImage})
	reg.Register(imageRenderer{kind: document.TypeLogo})
	reg.Register(shapeRenderer{})
	reg.Register(qrcodeRenderer{})
	reg.Register(barcodeRenderer{})
	reg.Register(containerRenderer{})
	reg.Register(dividerRenderer{})
}

// size returns the element's scaled box. Content renders in local
// coordinates; the surface wrapper supplies position and rotation.
func size(ec render.ElementContext) (w, h float64) {
	return ec.Element.Dimensions.Width * ec.Scale, ec.Element.Dimensions.Height * ec.Scale
}

type textRenderer struct{}

func (textRenderer) Type() document.ElementType { return document.TypeText }

func (textRenderer) Render(_ context.Context, ec render.ElementContext) ([]byte, error) {
	props, ok := ec.Element.Props.(document.TextProps)
	if !ok {
		return nil, fmt.Errorf("svg: text element %s has %T props", ec.Element.ID, ec.Element.Props)
	}

	content := props.Content
	if strings.TrimSpace(content) == "" {
		if ec.Mode != render.ModePreview {
			return nil, nil
		}
		content = props.Placeholder
	}
	content = SanitizeText(content)

	d := ec.Directives
	w, h := size(ec)
	fontSize := d.FontSize
	if fontSize <= 0 {
		fontSize = 14 * ec.Scale
	}
	fontFamily := d.FontFamily
	if fontFamily == "" {
		fontFamily = ec.Theme.Token("font.family", "Helvetica, Arial, sans-serif")
	}
	color := d.TextColor
	if color == "" {
		color = ec.Theme.Token("text.color", "#000000")
	}

	x, anchor := textAnchor(d.TextAlign, w, d.PadLeft, d.PadRight)
	// Vertical centering approximates the cap height offset.
	y := h/2 + fontSize*0.35

	var b strings.Builder
	fmt.Fprintf(&b, `<text x="%s" y="%s" font-family=%q font-size="%s" fill=%q text-anchor=%q`,
		num(x), num(y), fontFamily, num(fontSize), color, anchor)
	if d.FontWeight != "" {
		fmt.Fprintf(&b, ` font-weight=%q`, d.FontWeight)
	}
	if d.FontStyle != "" {
		fmt.Fprintf(&b, ` font-style=%q`, d.FontStyle)
	}
	if d.LetterSpacing != 0 {
		fmt.Fprintf(&b, ` letter-spacing="%s"`, num(d.LetterSpacing))
	}
	if d.Decoration != "" {
		fmt.Fprintf(&b, ` text-decoration=%q`, d.Decoration)
	}
	fmt.Fprintf(&b, ">%s</text>", content)
	return []byte(b.String()), nil
}

func textAnchor(align string, width, padLeft, padRight float64) (x float64, anchor string) {
	switch align {
	case "center":
		return width / 2, "middle"
	case "right":
		return width - padRight, "end"
	default:
		return padLeft, "start"
	}
}

// imageRenderer serves both image and logo elements; they differ only in
// their props payload.
type imageRenderer struct {
	kind document.ElementType
}

func (r imageRenderer) Type() document.ElementType { return r.kind }

func (r imageRenderer) Render(_ context.Context, ec render.ElementContext) ([]byte, error) {
	var source string
	var rounded bool
	switch props := ec.Element.Props.(type) {
	case document.ImageProps:
		source = props.Source
		rounded = props.Rounded
	case document.LogoProps:
		source = props.Source
	default:
		return nil, fmt.Errorf("svg: %s element %s has %T props", r.kind, ec.Element.ID, ec.Element.Props)
	}

	w, h := size(ec)
	if strings.TrimSpace(source) == "" {
		// Empty source renders a neutral placeholder box so layouts stay
		// inspectable while data is missing.
		return []byte(fmt.Sprintf(
			`<rect width="%s" height="%s" fill="#e2e2e2" stroke="#bdbdbd" stroke-dasharray="4 3"/>`,
			num(w), num(h))), nil
	}

	fit := ec.Directives.ImageFit
	if fit == "" {
		fit = "cover"
	}

	var b strings.Builder
	clipID := "clip-" + ec.Element.ID
	clip := ec.Directives.Clip
	if rounded && clip == "" {
		clip = "circle"
	}
	switch clip {
	case "circle":
		fmt.Fprintf(&b, `<clipPath id=%q><ellipse cx="%s" cy="%s" rx="%s" ry="%s"/></clipPath>`,
			clipID, num(w/2), num(h/2), num(w/2), num(h/2))
	case "rounded":
		radius := ec.Directives.CornerRadius
		if radius <= 0 {
			radius = 8 * ec.Scale
		}
		fmt.Fprintf(&b, `<clipPath id=%q><rect width="%s" height="%s" rx="%s"/></clipPath>`,
			clipID, num(w), num(h), num(radius))
	default:
		clipID = ""
	}

	fmt.Fprintf(&b, `<image href=%q width="%s" height="%s" preserveAspectRatio=%q`,
		SanitizeAttr(source), num(w), num(h), preserveAspect(fit))
	if clipID != "" {
		fmt.Fprintf(&b, ` clip-path="url(#%s)"`, clipID)
	}
	b.WriteString("/>")
	return []byte(b.String()), nil
}

func preserveAspect(fit string) string {
	switch fit {
	case "contain":
		return "xMidYMid meet"
	case "fill":
		return "none"
	default: // cover
		return "xMidYMid slice"
	}
}

type shapeRenderer struct{}

func (shapeRenderer) Type() document.ElementType { return document.TypeShape }

func (shapeRenderer) Render(_ context.Context, ec render.ElementContext) ([]byte, error) {
	props, ok := ec.Element.Props.(document.ShapeProps)
	if !ok {
		return nil, fmt.Errorf("svg: shape element %s has %T props", ec.Element.ID, ec.Element.Props)
	}

	w, h := size(ec)
	d := ec.Directives
	paint := paintAttrs(d)

	switch props.Shape {
	case "ellipse":
		return []byte(fmt.Sprintf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s/>`,
			num(w/2), num(h/2), num(w/2), num(h/2), paint)), nil
	case "line":
		return []byte(fmt.Sprintf(`<line x1="0" y1="%s" x2="%s" y2="%s"%s/>`,
			num(h/2), num(w), num(h/2), paint)), nil
	case "triangle":
		points := fmt.Sprintf("%s,0 %s,%s 0,%s", num(w/2), num(w), num(h), num(h))
		return []byte(fmt.Sprintf(`<polygon points=%q%s/>`, points, paint)), nil
	default: // rectangle
		radius := props.CornerRadius * ec.Scale
		if radius <= 0 {
			radius = d.CornerRadius
		}
		rx := ""
		if radius > 0 {
			rx = fmt.Sprintf(` rx="%s"`, num(radius))
		}
		return []byte(fmt.Sprintf(`<rect width="%s" height="%s"%s%s/>`,
			num(w), num(h), rx, paint)), nil
	}
}

type qrcodeRenderer struct{}

func (qrcodeRenderer) Type() document.ElementType { return document.TypeQRCode }

// Render emits a tagged placeholder box carrying the encoded value; symbol
// rasterisation belongs to the paint backend consuming the SVG.
func (qrcodeRenderer) Render(_ context.Context, ec render.ElementContext) ([]byte, error) {
	props, ok := ec.Element.Props.(document.QRCodeProps)
	if !ok {
		return nil, fmt.Errorf("svg: qrcode element %s has %T props", ec.Element.ID, ec.Element.Props)
	}

	w, h := size(ec)
	fg := props.Foreground
	if fg == "" {
		fg = "#000000"
	}
	bg := props.Background
	if bg == "" {
		bg = "#ffffff"
	}
	return []byte(fmt.Sprintf(
		`<rect width="%s" height="%s" fill=%q/><rect width="%s" height="%s" fill="none" stroke=%q data-qr-value=%q/>`,
		num(w), num(h), bg, num(w), num(h), fg, SanitizeAttr(props.Value))), nil
}

type barcodeRenderer struct{}

func (barcodeRenderer) Type() document.ElementType { return document.TypeBarcode }

func (barcodeRenderer) Render(_ context.Context, ec render.ElementContext) ([]byte, error) {
	props, ok := ec.Element.Props.(document.BarcodeProps)
	if !ok {
		return nil, fmt.Errorf("svg: barcode element %s has %T props", ec.Element.ID, ec.Element.Props)
	}

	w, h := size(ec)
	var b strings.Builder
	fmt.Fprintf(&b, `<rect width="%s" height="%s" fill="#ffffff" data-barcode-symbology=%q data-barcode-value=%q/>`,
		num(w), num(h), props.Symbology, SanitizeAttr(props.Value))
	if props.ShowText {
		fmt.Fprintf(&b, `<text x="%s" y="%s" font-size="%s" text-anchor="middle">%s</text>`,
			num(w/2), num(h-2*ec.Scale), num(8*ec.Scale), SanitizeText(props.Value))
	}
	return []byte(b.String()), nil
}

type containerRenderer struct{}

func (containerRenderer) Type() document.ElementType { return document.TypeContainer }

// Render paints the container box only. Children are separate elements; the
// compositor already ordered them after their parent.
func (containerRenderer) Render(_ context.Context, ec render.ElementContext) ([]byte, error) {
	w, h := size(ec)
	paint := paintAttrs(ec.Directives)
	if paint == "" {
		return nil, nil
	}
	return []byte(fmt.Sprintf(`<rect width="%s" height="%s"%s/>`, num(w), num(h), paint)), nil
}

type dividerRenderer struct{}

func (dividerRenderer) Type() document.ElementType { return document.TypeDivider }

func (dividerRenderer) Render(_ context.Context, ec render.ElementContext) ([]byte, error) {
	props, ok := ec.Element.Props.(document.DividerProps)
	if !ok {
		return nil, fmt.Errorf("svg: divider element %s has %T props", ec.Element.ID, ec.Element.Props)
	}

	w, h := size(ec)
	thickness := props.Thickness * ec.Scale
	if thickness <= 0 {
		thickness = 1 * ec.Scale
	}
	color := ec.Directives.Stroke
	if color == "" {
		color = ec.Theme.Token("divider.color", "#cccccc")
	}

	if props.Orientation == "vertical" {
		return []byte(fmt.Sprintf(`<line x1="%s" y1="0" x2="%s" y2="%s" stroke=%q stroke-width="%s"/>`,
			num(w/2), num(w/2), num(h), color, num(thickness))), nil
	}
	return []byte(fmt.Sprintf(`<line x1="0" y1="%s" x2="%s" y2="%s" stroke=%q stroke-width="%s"/>`,
		num(h/2), num(w), num(h/2), color, num(thickness))), nil
}

// paintAttrs renders the shared fill/stroke attribute set for box-like
// content.
func paintAttrs(d style.Directives) string {
	var b strings.Builder
	if d.Fill != "" {
		fmt.Fprintf(&b, ` fill=%q`, d.Fill)
		if d.FillOpacity > 0 && d.FillOpacity < 1 {
			fmt.Fprintf(&b, ` fill-opacity="%s"`, num(d.FillOpacity))
		}
	} else {
		b.WriteString(` fill="none"`)
	}
	if d.Stroke != "" && d.StrokeWidth > 0 {
		fmt.Fprintf(&b, ` stroke=%q stroke-width="%s"`, d.Stroke, num(d.StrokeWidth))
		if d.StrokeDash != "" {
			fmt.Fprintf(&b, ` stroke-dasharray=%q`, d.StrokeDash)
		}
	}
	if d.Fill == "" && (d.Stroke == "" || d.StrokeWidth <= 0) {
		return ""
	}
	return b.String()
}
