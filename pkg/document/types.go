package document

// Side identifies which face of the card a document describes.
type Side string

const (
	SideFront  Side = "front"
	SideBack   Side = "back"
	SideSingle Side = "single"
)

// Unit is the physical unit canvas dimensions are expressed in.
type Unit string

const (
	UnitPixel      Unit = "px"
	UnitMillimeter Unit = "mm"
	UnitInch       Unit = "in"
)

// LayoutMode captures the canvas orientation.
type LayoutMode string

const (
	LayoutLandscape LayoutMode = "landscape"
	LayoutPortrait  LayoutMode = "portrait"
)

// SchemaVersion is the current document schema revision. Documents carry the
// version they were authored with; loaders migrate forward, never in place.
const SchemaVersion = 2

// TemplateDocument is the root aggregate: the complete, serializable
// description of one card side's layout and content sources. It is only
// mutated through the editor reducer; every change produces a new snapshot.
type TemplateDocument struct {
	SchemaVersion int                    `json:"schemaVersion"`
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Category      string                 `json:"category,omitempty"`
	Tags          []string               `json:"tags,omitempty"`
	Side          Side                   `json:"side"`
	Canvas        CanvasSettings         `json:"canvas"`
	Background    BackgroundSettings     `json:"background"`
	Layers        []Layer                `json:"layers"`
	Elements      []TemplateElement      `json:"elements"`
	Bindings      map[string]DataBinding `json:"bindings,omitempty"`
	Variables     []TemplateVariable     `json:"variables,omitempty"`
	IsReady       bool                   `json:"isReady"`
}

// CanvasSettings describes the drawing surface geometry and editing grid.
type CanvasSettings struct {
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Unit       Unit       `json:"unit"`
	DPI        int        `json:"dpi"`
	Layout     LayoutMode `json:"layout"`
	GridSize   float64    `json:"gridSize"`
	SnapToGrid bool       `json:"snapToGrid"`
}

// BackgroundSettings describes the canvas background. Zero values mean "none".
type BackgroundSettings struct {
	Color   string  `json:"color,omitempty"`
	Image   string  `json:"image,omitempty"`
	Fit     string  `json:"fit,omitempty"`
	Opacity float64 `json:"opacity"`
}

// BackgroundPatch carries a partial background update. Nil fields are left
// untouched by the merge.
type BackgroundPatch struct {
	Color   *string  `json:"color,omitempty"`
	Image   *string  `json:"image,omitempty"`
	Fit     *string  `json:"fit,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
}

// Apply merges the patch into a copy of the settings.
func (p BackgroundPatch) Apply(bg BackgroundSettings) BackgroundSettings {
	if p.Color != nil {
		bg.Color = *p.Color
	}
	if p.Image != nil {
		bg.Image = *p.Image
	}
	if p.Fit != nil {
		bg.Fit = *p.Fit
	}
	if p.Opacity != nil {
		bg.Opacity = *p.Opacity
	}
	return bg
}

// Layer is a named, orderable grouping bucket. Layers do not own elements;
// membership is element -> layer by id.
type Layer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Visible bool    `json:"visible"`
	Locked  bool    `json:"locked"`
	Opacity float64 `json:"opacity"`
	Order   int     `json:"order"`
}

// LayerPatch is a partial layer update used by the reducer.
type LayerPatch struct {
	Name    *string  `json:"name,omitempty"`
	Visible *bool    `json:"visible,omitempty"`
	Locked  *bool    `json:"locked,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Order   *int     `json:"order,omitempty"`
}

// Apply merges the patch into a copy of the layer.
func (p LayerPatch) Apply(layer Layer) Layer {
	if p.Name != nil {
		layer.Name = *p.Name
	}
	if p.Visible != nil {
		layer.Visible = *p.Visible
	}
	if p.Locked != nil {
		layer.Locked = *p.Locked
	}
	if p.Opacity != nil {
		layer.Opacity = *p.Opacity
	}
	if p.Order != nil {
		layer.Order = *p.Order
	}
	return layer
}

// TemplateVariable is a named document-scoped value bindings can reference
// through the "variables." path prefix.
type TemplateVariable struct {
	Name        string `json:"name"`
	Value       any    `json:"value"`
	Description string `json:"description,omitempty"`
}

// DataBinding maps an element property to a field in the live data context.
// Resolution order is fixed: path walk, fallback substitution, transform,
// format template.
type DataBinding struct {
	// Field is a dot-path into the data context, e.g. "employee.name".
	Field string `json:"field"`
	// Transform names a registered transform applied to the resolved value.
	// Unregistered names pass the value through unchanged.
	Transform string `json:"transform,omitempty"`
	// Fallback substitutes when the path is missing or resolves to an empty
	// value. Defaults to the empty string.
	Fallback string `json:"fallback,omitempty"`
	// Format is a template containing a single {{value}} placeholder, e.g.
	// "ID: {{value}}".
	Format string `json:"format,omitempty"`
}

// ConditionOperator enumerates the predicates conditional visibility supports.
type ConditionOperator string

const (
	OpEquals    ConditionOperator = "equals"
	OpNotEquals ConditionOperator = "notEquals"
	OpExists    ConditionOperator = "exists"
	OpNotExists ConditionOperator = "notExists"
	OpGreater   ConditionOperator = "gt"
	OpLess      ConditionOperator = "lt"
	OpContains  ConditionOperator = "contains"
)

// ConditionalVisibility hides an element when its predicate evaluates false.
// Unknown operators evaluate true so a bad predicate never blanks a card.
type ConditionalVisibility struct {
	Field    string            `json:"field"`
	Operator ConditionOperator `json:"operator"`
	Value    any               `json:"value,omitempty"`
}
