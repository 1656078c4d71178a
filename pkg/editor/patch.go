package editor

import "github.com/goliatone/go-cardgen/pkg/document"

// ElementPatch carries partial element changes. Nil fields are untouched by
// the merge; set fields replace the corresponding element value.
type ElementPatch struct {
	Name       *string
	LayerID    *string
	Position   *document.Position
	Dimensions *document.Dimensions
	Rotation   *float64
	ZIndex     *int
	Style      *document.StyleDescriptor
	Opacity    *float64
	Visible    *bool
	Locked     *bool
	Selectable *bool
	Props      document.Props
	Condition  *document.ConditionalVisibility
	Bindings   map[string]document.DataBinding
}

// Apply merges the patch into a copy of the element. The element type tag is
// immutable; a Props payload of a different type than the element is ignored.
func (p ElementPatch) Apply(el document.TemplateElement) document.TemplateElement {
	out := el.Clone()

	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.LayerID != nil {
		out.LayerID = *p.LayerID
	}
	if p.Position != nil {
		out.Position = *p.Position
	}
	if p.Dimensions != nil {
		out.Dimensions = *p.Dimensions
	}
	if p.Rotation != nil {
		out.Rotation = *p.Rotation
	}
	if p.ZIndex != nil {
		out.ZIndex = *p.ZIndex
	}
	if p.Style != nil {
		out.Style = p.Style.Clone()
	}
	if p.Opacity != nil {
		out.Opacity = *p.Opacity
	}
	if p.Visible != nil {
		out.Visible = *p.Visible
	}
	if p.Locked != nil {
		out.Locked = *p.Locked
	}
	if p.Selectable != nil {
		out.Selectable = *p.Selectable
	}
	if p.Props != nil && document.PropsType(p.Props) == el.Type {
		out.Props = p.Props
	}
	if p.Condition != nil {
		cond := *p.Condition
		out.Condition = &cond
	}
	if p.Bindings != nil {
		bindings := make(map[string]document.DataBinding, len(p.Bindings))
		for path, b := range p.Bindings {
			bindings[path] = b
		}
		out.Bindings = bindings
	}
	return out
}
