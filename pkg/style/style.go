// Package style converts abstract style descriptors into paintable
// directives. Resolution is a pure function of the descriptor and the render
// scale; no paint-technology specifics leak in here.
package style

import (
	"fmt"

	"github.com/goliatone/go-cardgen/pkg/document"
)

// Directives is the flattened, scaled set of paint instructions for one
// element. Zero values mean "nothing to paint" for that concern, matching the
// descriptor's absence-means-inherit-nothing rule.
type Directives struct {
	Fill         string  `json:"fill,omitempty"`
	FillOpacity  float64 `json:"fillOpacity,omitempty"`
	Stroke       string  `json:"stroke,omitempty"`
	StrokeWidth  float64 `json:"strokeWidth,omitempty"`
	StrokeDash   string  `json:"strokeDash,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`

	Shadow string `json:"shadow,omitempty"`

	FontFamily    string  `json:"fontFamily,omitempty"`
	FontSize      float64 `json:"fontSize,omitempty"`
	FontWeight    string  `json:"fontWeight,omitempty"`
	FontStyle     string  `json:"fontStyle,omitempty"`
	TextColor     string  `json:"textColor,omitempty"`
	TextAlign     string  `json:"textAlign,omitempty"`
	LineHeight    float64 `json:"lineHeight,omitempty"`
	LetterSpacing float64 `json:"letterSpacing,omitempty"`
	Decoration    string  `json:"decoration,omitempty"`

	Overflow string  `json:"overflow,omitempty"`
	ImageFit string  `json:"imageFit,omitempty"`
	Clip     string  `json:"clip,omitempty"`
	PadTop   float64 `json:"padTop,omitempty"`
	PadRight float64 `json:"padRight,omitempty"`
	PadBot   float64 `json:"padBottom,omitempty"`
	PadLeft  float64 `json:"padLeft,omitempty"`
}

// Resolve flattens a style descriptor at the given scale. Lengths (border
// width, font size, shadow geometry, padding) scale linearly; colors and
// keywords pass through.
func Resolve(s *document.StyleDescriptor, scale float64) Directives {
	if scale <= 0 {
		scale = 1
	}
	var d Directives
	if s == nil {
		return d
	}

	if s.Fill != nil {
		d.Fill = s.Fill.Color
		d.FillOpacity = s.Fill.Opacity
		if d.Fill != "" && d.FillOpacity == 0 {
			d.FillOpacity = 1
		}
	}
	if s.Border != nil {
		d.Stroke = s.Border.Color
		d.StrokeWidth = s.Border.Width * scale
		d.StrokeDash = dashPattern(s.Border.Style, s.Border.Width*scale)
		d.CornerRadius = s.Border.Radius * scale
	}
	if s.Shadow != nil {
		d.Shadow = shadowDirective(*s.Shadow, scale)
	}
	if s.Typography != nil {
		t := s.Typography
		d.FontFamily = t.FontFamily
		d.FontSize = t.FontSize * scale
		d.FontWeight = t.FontWeight
		d.FontStyle = t.FontStyle
		d.TextColor = t.Color
		d.TextAlign = t.Align
		d.LineHeight = t.LineHeight
		d.LetterSpacing = t.LetterSpacing * scale
		d.Decoration = t.Decoration
	}
	if s.Padding != nil {
		d.PadTop = s.Padding.Top * scale
		d.PadRight = s.Padding.Right * scale
		d.PadBot = s.Padding.Bottom * scale
		d.PadLeft = s.Padding.Left * scale
	}
	d.Overflow = s.Overflow
	d.ImageFit = s.ImageFit
	d.Clip = s.Clip
	return d
}

// Background is the paintable form of the document background.
type Background struct {
	Color   string  `json:"color,omitempty"`
	Image   string  `json:"image,omitempty"`
	Fit     string  `json:"fit,omitempty"`
	Opacity float64 `json:"opacity"`
}

// ResolveBackground normalises background settings for painting. Opacity
// defaults to fully opaque when unset.
func ResolveBackground(bg document.BackgroundSettings) Background {
	out := Background{
		Color:   bg.Color,
		Image:   bg.Image,
		Fit:     bg.Fit,
		Opacity: bg.Opacity,
	}
	if out.Opacity <= 0 {
		out.Opacity = 1
	}
	if out.Fit == "" {
		out.Fit = "cover"
	}
	return out
}

func dashPattern(borderStyle string, width float64) string {
	if width <= 0 {
		width = 1
	}
	switch borderStyle {
	case "dashed":
		return fmt.Sprintf("%g %g", width*3, width*2)
	case "dotted":
		return fmt.Sprintf("%g %g", width, width)
	default:
		return ""
	}
}

func shadowDirective(s document.ShadowStyle, scale float64) string {
	color := s.Color
	if color == "" {
		color = "rgba(0,0,0,0.25)"
	}
	return fmt.Sprintf("%g %g %g %s", s.OffsetX*scale, s.OffsetY*scale, s.Blur*scale, color)
}
