package document

import (
	"encoding/json"
	"fmt"
)

// Props is the type-specific payload of a template element. The interface is
// sealed: the concrete types below are the only implementations, keyed by the
// element's type tag.
type Props interface {
	propsType() ElementType
}

// TextProps configures a text element.
type TextProps struct {
	Content string `json:"content,omitempty"`
	// Placeholder renders when the bound content resolves empty in the editor.
	Placeholder string `json:"placeholder,omitempty"`
}

// ImageProps configures an image element.
type ImageProps struct {
	// Source is a URL, data URI, or data-field reference for the image.
	Source string `json:"source,omitempty"`
	Alt    string `json:"alt,omitempty"`
	// Rounded clips the image to an ellipse, the usual treatment for
	// employee photos.
	Rounded bool `json:"rounded,omitempty"`
}

// ShapeProps configures a geometric shape element.
type ShapeProps struct {
	Shape        string  `json:"shape,omitempty"` // rectangle, ellipse, line, triangle
	CornerRadius float64 `json:"cornerRadius,omitempty"`
}

// LogoProps configures a company logo element.
type LogoProps struct {
	Source     string `json:"source,omitempty"`
	Monochrome bool   `json:"monochrome,omitempty"`
}

// QRCodeProps configures a QR code element. The engine stores the encoded
// value; symbol generation belongs to the paint backend.
type QRCodeProps struct {
	Value      string `json:"value,omitempty"`
	ECLevel    string `json:"ecLevel,omitempty"`
	QuietZone  int    `json:"quietZone,omitempty"`
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
}

// BarcodeProps configures a linear barcode element.
type BarcodeProps struct {
	Value     string `json:"value,omitempty"`
	Symbology string `json:"symbology,omitempty"` // code128, code39, ean13
	ShowText  bool   `json:"showText,omitempty"`
}

// ContainerProps configures a nesting container element.
type ContainerProps struct {
	Direction string  `json:"direction,omitempty"` // row, column
	Gap       float64 `json:"gap,omitempty"`
}

// DividerProps configures a rule/divider element.
type DividerProps struct {
	Orientation string  `json:"orientation,omitempty"` // horizontal, vertical
	Thickness   float64 `json:"thickness,omitempty"`
}

func (TextProps) propsType() ElementType      { return TypeText }
func (ImageProps) propsType() ElementType     { return TypeImage }
func (ShapeProps) propsType() ElementType     { return TypeShape }
func (LogoProps) propsType() ElementType      { return TypeLogo }
func (QRCodeProps) propsType() ElementType    { return TypeQRCode }
func (BarcodeProps) propsType() ElementType   { return TypeBarcode }
func (ContainerProps) propsType() ElementType { return TypeContainer }
func (DividerProps) propsType() ElementType   { return TypeDivider }

// PropsType returns the type tag a props payload belongs to, or "" for nil.
func PropsType(p Props) ElementType {
	if p == nil {
		return ""
	}
	return p.propsType()
}

// DefaultProps returns the zero props payload for a type tag, or nil for an
// unknown tag.
func DefaultProps(t ElementType) Props {
	switch t {
	case TypeText:
		return TextProps{}
	case TypeImage:
		return ImageProps{}
	case TypeShape:
		return ShapeProps{Shape: "rectangle"}
	case TypeLogo:
		return LogoProps{}
	case TypeQRCode:
		return QRCodeProps{}
	case TypeBarcode:
		return BarcodeProps{Symbology: "code128"}
	case TypeContainer:
		return ContainerProps{Direction: "column"}
	case TypeDivider:
		return DividerProps{Orientation: "horizontal", Thickness: 1}
	default:
		return nil
	}
}

// UnmarshalPropsJSON decodes a raw props payload for the given type tag.
// Binding application uses it to re-type merged overrides.
func UnmarshalPropsJSON(t ElementType, raw []byte) (Props, error) {
	return unmarshalProps(t, raw)
}

func unmarshalProps(t ElementType, raw json.RawMessage) (Props, error) {
	if len(raw) == 0 || string(raw) == "null" {
		props := DefaultProps(t)
		if props == nil {
			return nil, fmt.Errorf("unknown element type %q", t)
		}
		return props, nil
	}

	var target Props
	switch t {
	case TypeText:
		target = &TextProps{}
	case TypeImage:
		target = &ImageProps{}
	case TypeShape:
		target = &ShapeProps{}
	case TypeLogo:
		target = &LogoProps{}
	case TypeQRCode:
		target = &QRCodeProps{}
	case TypeBarcode:
		target = &BarcodeProps{}
	case TypeContainer:
		target = &ContainerProps{}
	case TypeDivider:
		target = &DividerProps{}
	default:
		return nil, fmt.Errorf("unknown element type %q", t)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return nil, err
	}
	return derefProps(target), nil
}

// derefProps converts the pointer used during decoding back into the value
// form the rest of the engine passes around.
func derefProps(p Props) Props {
	switch v := p.(type) {
	case *TextProps:
		return *v
	case *ImageProps:
		return *v
	case *ShapeProps:
		return *v
	case *LogoProps:
		return *v
	case *QRCodeProps:
		return *v
	case *BarcodeProps:
		return *v
	case *ContainerProps:
		return *v
	case *DividerProps:
		return *v
	default:
		return p
	}
}
