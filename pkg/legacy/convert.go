package legacy

import (
	"fmt"
	"hash/fnv"

	"github.com/goliatone/go-cardgen/pkg/document"
)

// Canonical defaults applied to optional legacy fields before conversion.
// Conversion is total: every optional gets a value, so the same input always
// produces the same document.
const (
	defaultFieldX      = 40
	defaultFieldY      = 40
	defaultFieldWidth  = 300
	defaultFieldHeight = 36
	defaultFontSize    = 24

	defaultPhotoX      = 720
	defaultPhotoY      = 120
	defaultPhotoWidth  = 240
	defaultPhotoHeight = 300

	defaultLogoX      = 40
	defaultLogoY      = 24
	defaultLogoWidth  = 180
	defaultLogoHeight = 60

	defaultQRX    = 40
	defaultQRY    = 480
	defaultQRSize = 120

	// fieldSpacing stacks fields with unset positions down the card.
	fieldSpacing = 48
)

// Convert translates a legacy template side into a TemplateDocument.
// Element ids derive from the legacy template id, the side, and each item's
// key, so repeated conversions of the same input yield the same id set and
// geometry. Visual-parity checks between renderers depend on that.
func Convert(tpl Template, side document.Side) document.TemplateDocument {
	layout := tpl.Front
	if side == document.SideBack {
		layout = tpl.Back
	}

	canvas := document.CanvasSettings{
		Width:    document.DefaultCanvasWidth,
		Height:   document.DefaultCanvasHeight,
		Unit:     document.UnitPixel,
		DPI:      document.DefaultDPI,
		Layout:   document.LayoutLandscape,
		GridSize: document.DefaultGridSize,
	}
	if tpl.Orientation == "portrait" {
		canvas.Width, canvas.Height = canvas.Height, canvas.Width
		canvas.Layout = document.LayoutPortrait
	}

	background := document.BackgroundSettings{Color: "#ffffff", Opacity: 1}
	if tpl.Background != nil {
		if tpl.Background.Color != "" {
			background.Color = tpl.Background.Color
		}
		background.Image = tpl.Background.Image
	}

	baseLayer := document.Layer{
		ID:      elementID(tpl.ID, side, "layer", "base"),
		Name:    "Base",
		Visible: true,
		Opacity: 1,
	}

	doc := document.TemplateDocument{
		SchemaVersion: document.SchemaVersion,
		ID:            elementID(tpl.ID, side, "doc", ""),
		Name:          tpl.Name,
		Side:          side,
		Canvas:        canvas,
		Background:    background,
		Layers:        []document.Layer{baseLayer},
		IsReady:       true,
	}
	if layout == nil {
		return doc
	}

	if layout.Logo != nil {
		doc.Elements = append(doc.Elements, convertLogo(tpl.ID, side, baseLayer.ID, *layout.Logo))
	}
	if layout.Photo != nil {
		doc.Elements = append(doc.Elements, convertPhoto(tpl.ID, side, baseLayer.ID, *layout.Photo))
	}
	for i, field := range layout.Fields {
		doc.Elements = append(doc.Elements, convertField(tpl.ID, side, baseLayer.ID, field, i))
	}
	if layout.QRCode != nil {
		doc.Elements = append(doc.Elements, convertQRCode(tpl.ID, side, baseLayer.ID, *layout.QRCode))
	}
	return doc
}

func convertField(tplID string, side document.Side, layerID string, f Field, index int) document.TemplateElement {
	x := orDefault(f.X, defaultFieldX)
	y := orDefault(f.Y, defaultFieldY+float64(index)*fieldSpacing)
	fontSize := orDefault(f.FontSize, defaultFontSize)

	typography := &document.TypographyStyle{FontSize: fontSize, Color: f.Color}
	if f.Bold {
		typography.FontWeight = "bold"
	}
	switch f.Align {
	case "center", "right", "left":
		typography.Align = f.Align
	}

	binding := document.DataBinding{Field: f.Key, Fallback: f.Fallback}
	if f.Uppercase {
		binding.Transform = "uppercase"
	}

	return document.TemplateElement{
		ID:      elementID(tplID, side, "text", f.Key),
		Type:    document.TypeText,
		Name:    labelOrKey(f),
		LayerID: layerID,
		Position: document.Position{
			X:      x,
			Y:      y,
			Anchor: document.AnchorTopLeft,
		},
		Dimensions: document.Dimensions{
			Width:  orDefault(f.Width, defaultFieldWidth),
			Height: orDefault(f.Height, defaultFieldHeight),
		},
		Style:      &document.StyleDescriptor{Typography: typography},
		Opacity:    1,
		Visible:    true,
		Selectable: true,
		Bindings: map[string]document.DataBinding{
			"props.content": binding,
		},
		Props: document.TextProps{Placeholder: labelOrKey(f)},
	}
}

func convertPhoto(tplID string, side document.Side, layerID string, p PhotoBox) document.TemplateElement {
	key := p.Key
	if key == "" {
		key = "employee.photoReference"
	}
	return document.TemplateElement{
		ID:      elementID(tplID, side, "image", key),
		Type:    document.TypeImage,
		Name:    "Photo",
		LayerID: layerID,
		Position: document.Position{
			X:      orDefault(p.X, defaultPhotoX),
			Y:      orDefault(p.Y, defaultPhotoY),
			Anchor: document.AnchorTopLeft,
		},
		Dimensions: document.Dimensions{
			Width:  orDefault(p.Width, defaultPhotoWidth),
			Height: orDefault(p.Height, defaultPhotoHeight),
		},
		Opacity:    1,
		Visible:    true,
		Selectable: true,
		Bindings: map[string]document.DataBinding{
			"props.source": {Field: key},
		},
		Props: document.ImageProps{Rounded: p.Rounded},
	}
}

func convertLogo(tplID string, side document.Side, layerID string, b Box) document.TemplateElement {
	return document.TemplateElement{
		ID:      elementID(tplID, side, "logo", b.Source),
		Type:    document.TypeLogo,
		Name:    "Logo",
		LayerID: layerID,
		Position: document.Position{
			X:      orDefault(b.X, defaultLogoX),
			Y:      orDefault(b.Y, defaultLogoY),
			Anchor: document.AnchorTopLeft,
		},
		Dimensions: document.Dimensions{
			Width:  orDefault(b.Width, defaultLogoWidth),
			Height: orDefault(b.Height, defaultLogoHeight),
		},
		Opacity:    1,
		Visible:    true,
		Selectable: true,
		Props:      document.LogoProps{Source: b.Source},
	}
}

func convertQRCode(tplID string, side document.Side, layerID string, q CodeBox) document.TemplateElement {
	key := q.Key
	if key == "" {
		key = "employee.employeeId"
	}
	size := orDefault(q.Size, defaultQRSize)
	return document.TemplateElement{
		ID:      elementID(tplID, side, "qrcode", key),
		Type:    document.TypeQRCode,
		Name:    "QR Code",
		LayerID: layerID,
		Position: document.Position{
			X:      orDefault(q.X, defaultQRX),
			Y:      orDefault(q.Y, defaultQRY),
			Anchor: document.AnchorTopLeft,
		},
		Dimensions: document.Dimensions{
			Width:      size,
			Height:     size,
			AspectLock: true,
		},
		Opacity:    1,
		Visible:    true,
		Selectable: true,
		Bindings: map[string]document.DataBinding{
			"props.value": {Field: key},
		},
		Props: document.QRCodeProps{ECLevel: "M", QuietZone: 2},
	}
}

// elementID hashes the legacy identity into a stable short id.
func elementID(tplID string, side document.Side, kind, key string) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%s|%s", tplID, side, kind, key)
	return fmt.Sprintf("%s-%08x", kind, h.Sum32())
}

func orDefault(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func labelOrKey(f Field) string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}
