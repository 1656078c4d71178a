package document

import (
	"fmt"
	"sync/atomic"
	"time"
)

// CR80 card geometry at 300dpi, the default canvas for new templates.
const (
	DefaultCanvasWidth  = 1013
	DefaultCanvasHeight = 638
	DefaultDPI          = 300
	DefaultGridSize     = 10
)

var idCounter atomic.Uint64

// NewID produces a unique id with the given prefix. Uniqueness combines wall
// time with a process-local counter so ids stay unique within a burst.
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), idCounter.Add(1))
}

// DuplicateID derives the id of a duplicated element deterministically from
// the original id and the duplication timestamp.
func DuplicateID(originalID string, at time.Time) string {
	return fmt.Sprintf("%s-copy-%d", originalID, at.UnixMilli())
}

// NewBlankDocument creates an empty, ready document with one base layer and
// the default CR80 canvas.
func NewBlankDocument(name string, side Side) TemplateDocument {
	base := Layer{
		ID:      NewID("layer"),
		Name:    "Base",
		Visible: true,
		Opacity: 1,
		Order:   0,
	}
	return TemplateDocument{
		SchemaVersion: SchemaVersion,
		ID:            NewID("doc"),
		Name:          name,
		Side:          side,
		Canvas: CanvasSettings{
			Width:    DefaultCanvasWidth,
			Height:   DefaultCanvasHeight,
			Unit:     UnitPixel,
			DPI:      DefaultDPI,
			Layout:   LayoutLandscape,
			GridSize: DefaultGridSize,
		},
		Background: BackgroundSettings{Color: "#ffffff", Opacity: 1},
		Layers:     []Layer{base},
		IsReady:    true,
	}
}

// NewElement creates an element of the given type with sane defaults, placed
// on the provided layer. Unknown types return a text element shell with nil
// props; callers should validate before persisting.
func NewElement(t ElementType, layerID string) TemplateElement {
	return TemplateElement{
		ID:         NewID(string(t)),
		Type:       t,
		Name:       string(t),
		LayerID:    layerID,
		Position:   Position{Anchor: AnchorTopLeft},
		Dimensions: Dimensions{Width: 100, Height: 40},
		Opacity:    1,
		Visible:    true,
		Selectable: true,
		Props:      DefaultProps(t),
	}
}
