// Package editor owns the document editing state: the current document, the
// selection, in-flight gesture state, and the undo/redo history. All changes
// flow through a pure reducer over a closed action vocabulary.
package editor

import (
	"github.com/goliatone/go-cardgen/pkg/document"
)

// Handle identifies one of the eight compass resize handles.
type Handle string

const (
	HandleN  Handle = "n"
	HandleS  Handle = "s"
	HandleE  Handle = "e"
	HandleW  Handle = "w"
	HandleNE Handle = "ne"
	HandleNW Handle = "nw"
	HandleSE Handle = "se"
	HandleSW Handle = "sw"
)

// DragState is the transient state of an active move gesture. It lives only
// while the pointer is down and never enters undo history.
type DragState struct {
	ElementID string
	// Start is the element position when the gesture began.
	Start document.Position
	// Live is the current preview position.
	Live document.Position
	// OffsetX/Y is the pointer-to-element-origin offset captured at
	// pointer-down, in document units.
	OffsetX float64
	OffsetY float64
}

// ResizeState is the transient state of an active resize gesture.
type ResizeState struct {
	ElementID string
	Handle    Handle
	StartDims document.Dimensions
	StartPos  document.Position
	LiveDims  document.Dimensions
	LivePos   document.Position
}

// SelectionState is the ephemeral editing state: which elements are selected
// or hovered, and any in-flight gesture. It is deliberately separate from the
// document so previews never pollute history.
type SelectionState struct {
	// Selected preserves selection order for UI purposes; logic treats it as
	// a set.
	Selected []string
	Hovered  string
	Drag     *DragState
	Resize   *ResizeState
}

// IsSelected reports set membership.
func (s SelectionState) IsSelected(id string) bool {
	for _, sel := range s.Selected {
		if sel == id {
			return true
		}
	}
	return false
}

// State is the complete editor state: the persisted document slice plus the
// ephemeral selection/gesture slice and history.
type State struct {
	Doc       document.TemplateDocument
	Selection SelectionState
	History   History
}

// NewState wraps a document in a fresh editor state.
func NewState(doc document.TemplateDocument) State {
	return State{Doc: doc}
}
