package document

// StyleDescriptor is the abstract visual styling of an element. Every section
// is optional; absence means the element inherits nothing for that concern,
// it is not a "default".
type StyleDescriptor struct {
	Fill       *FillStyle       `json:"fill,omitempty"`
	Border     *BorderStyle     `json:"border,omitempty"`
	Shadow     *ShadowStyle     `json:"shadow,omitempty"`
	Typography *TypographyStyle `json:"typography,omitempty"`
	Overflow   string           `json:"overflow,omitempty"` // visible, hidden, ellipsis
	ImageFit   string           `json:"imageFit,omitempty"` // cover, contain, fill
	Clip       string           `json:"clip,omitempty"`     // none, circle, rounded
	Padding    *Padding         `json:"padding,omitempty"`
}

// FillStyle paints the element background.
type FillStyle struct {
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// BorderStyle outlines the element box.
type BorderStyle struct {
	Color  string  `json:"color,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Style  string  `json:"style,omitempty"` // solid, dashed, dotted
	Radius float64 `json:"radius,omitempty"`
}

// ShadowStyle drops a soft shadow behind the element.
type ShadowStyle struct {
	OffsetX float64 `json:"offsetX,omitempty"`
	OffsetY float64 `json:"offsetY,omitempty"`
	Blur    float64 `json:"blur,omitempty"`
	Color   string  `json:"color,omitempty"`
}

// TypographyStyle configures text rendering.
type TypographyStyle struct {
	FontFamily    string  `json:"fontFamily,omitempty"`
	FontSize      float64 `json:"fontSize,omitempty"`
	FontWeight    string  `json:"fontWeight,omitempty"`
	FontStyle     string  `json:"fontStyle,omitempty"`
	Color         string  `json:"color,omitempty"`
	Align         string  `json:"align,omitempty"` // left, center, right
	LineHeight    float64 `json:"lineHeight,omitempty"`
	LetterSpacing float64 `json:"letterSpacing,omitempty"`
	Decoration    string  `json:"decoration,omitempty"`
}

// Padding is inner spacing in document units.
type Padding struct {
	Top    float64 `json:"top,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty"`
}

// Clone returns a deep copy of the descriptor. Nil receivers clone to nil.
func (s *StyleDescriptor) Clone() *StyleDescriptor {
	if s == nil {
		return nil
	}
	out := *s
	if s.Fill != nil {
		fill := *s.Fill
		out.Fill = &fill
	}
	if s.Border != nil {
		border := *s.Border
		out.Border = &border
	}
	if s.Shadow != nil {
		shadow := *s.Shadow
		out.Shadow = &shadow
	}
	if s.Typography != nil {
		typography := *s.Typography
		out.Typography = &typography
	}
	if s.Padding != nil {
		padding := *s.Padding
		out.Padding = &padding
	}
	return &out
}
