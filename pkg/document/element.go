package document

import (
	"encoding/json"
	"fmt"
)

// ElementType tags a template element with its kind. The set is closed; the
// props payload shape is determined by the tag.
type ElementType string

const (
	TypeText      ElementType = "text"
	TypeImage     ElementType = "image"
	TypeShape     ElementType = "shape"
	TypeLogo      ElementType = "logo"
	TypeQRCode    ElementType = "qrcode"
	TypeBarcode   ElementType = "barcode"
	TypeContainer ElementType = "container"
	TypeDivider   ElementType = "divider"
)

// Anchor names the point of an element its position refers to.
type Anchor string

const (
	AnchorTopLeft Anchor = "top-left"
	AnchorCenter  Anchor = "center"
)

// Position locates an element on the canvas in unscaled document units.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Anchor Anchor  `json:"anchor,omitempty"`
}

// Dimensions describes an element's size and resize constraints.
type Dimensions struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	MinWidth   float64 `json:"minWidth,omitempty"`
	MinHeight  float64 `json:"minHeight,omitempty"`
	MaxWidth   float64 `json:"maxWidth,omitempty"`
	MaxHeight  float64 `json:"maxHeight,omitempty"`
	AspectLock bool    `json:"aspectLock,omitempty"`
}

// TemplateElement is one positioned, typed visual unit on the canvas. Values
// are never mutated in place; every edit produces a new element value so
// memoized repaints and history snapshots stay valid.
type TemplateElement struct {
	ID         string                 `json:"id"`
	Type       ElementType            `json:"type"`
	Name       string                 `json:"name,omitempty"`
	LayerID    string                 `json:"layerId,omitempty"`
	Position   Position               `json:"position"`
	Dimensions Dimensions             `json:"dimensions"`
	Rotation   float64                `json:"rotation,omitempty"`
	ZIndex     int                    `json:"zIndex"`
	Style      *StyleDescriptor       `json:"style,omitempty"`
	Opacity    float64                `json:"opacity"`
	Visible    bool                   `json:"visible"`
	Bindings   map[string]DataBinding `json:"bindings,omitempty"`
	Condition  *ConditionalVisibility `json:"condition,omitempty"`
	Locked     bool                   `json:"locked,omitempty"`
	Selectable bool                   `json:"selectable"`
	Props      Props                  `json:"props"`
	ParentID   string                 `json:"parentId,omitempty"`
	Children   []string               `json:"children,omitempty"`
}

// elementAlias avoids recursing into UnmarshalJSON while decoding the
// envelope around the polymorphic props payload.
type elementAlias TemplateElement

type elementEnvelope struct {
	elementAlias
	Props json.RawMessage `json:"props"`
}

// UnmarshalJSON decodes the element and selects the concrete props type from
// the type tag. Unknown tags are an error: the element kind set is closed.
func (e *TemplateElement) UnmarshalJSON(data []byte) error {
	var env elementEnvelope
	env.elementAlias = elementAlias(*e)
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	out := TemplateElement(env.elementAlias)

	props, err := unmarshalProps(out.Type, env.Props)
	if err != nil {
		return fmt.Errorf("document: element %q: %w", out.ID, err)
	}
	out.Props = props
	*e = out
	return nil
}
