// Package legacy converts the old flat per-field template format into the
// element-based document model. The conversion is a pure adapter: legacy
// concepts stop at this boundary and never leak into the core model.
package legacy

// Template is the old flat template format. Every field was a positioned
// label bound to one data key; photos, logos, and codes were fixed singleton
// boxes per side. Pointer fields are optional in the source format and
// resolve against canonical defaults before conversion.
type Template struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Orientation string      `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Background  *Background `json:"background,omitempty" yaml:"background,omitempty"`
	Front       *SideLayout `json:"front,omitempty" yaml:"front,omitempty"`
	Back        *SideLayout `json:"back,omitempty" yaml:"back,omitempty"`
}

// Background is the legacy card background: a color, an optional image URL.
type Background struct {
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// SideLayout is one card side in the legacy format.
type SideLayout struct {
	Fields []Field   `json:"fields,omitempty" yaml:"fields,omitempty"`
	Photo  *PhotoBox `json:"photo,omitempty" yaml:"photo,omitempty"`
	Logo   *Box      `json:"logo,omitempty" yaml:"logo,omitempty"`
	QRCode *CodeBox  `json:"qrCode,omitempty" yaml:"qrCode,omitempty"`
}

// Field is one positioned text label bound to a data key.
type Field struct {
	// Key is the dot path into the data context, e.g. "employee.name".
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	X      *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width  *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty"`

	FontSize  *float64 `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Bold      bool     `json:"bold,omitempty" yaml:"bold,omitempty"`
	Align     string   `json:"align,omitempty" yaml:"align,omitempty"`
	Color     string   `json:"color,omitempty" yaml:"color,omitempty"`
	Uppercase bool     `json:"uppercase,omitempty" yaml:"uppercase,omitempty"`
	Fallback  string   `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// PhotoBox positions the cardholder photo.
type PhotoBox struct {
	Key     string   `json:"key,omitempty" yaml:"key,omitempty"`
	X       *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y       *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width   *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height  *float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Rounded bool     `json:"rounded,omitempty" yaml:"rounded,omitempty"`
}

// Box positions a static image such as the company logo.
type Box struct {
	Source string   `json:"source,omitempty" yaml:"source,omitempty"`
	X      *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width  *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

// CodeBox positions a QR code bound to a data key.
type CodeBox struct {
	Key  string   `json:"key,omitempty" yaml:"key,omitempty"`
	X    *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y    *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Size *float64 `json:"size,omitempty" yaml:"size,omitempty"`
}
