package editor

import (
	"time"

	"github.com/goliatone/go-cardgen/pkg/document"
)

// DuplicateOffset is the position delta applied to duplicated elements.
const DuplicateOffset = 10

// Action is the closed vocabulary the reducer accepts. The interface is
// sealed; only the types in this file implement it.
type Action interface {
	isAction()
}

// SetDocument replaces the document wholesale and clears history.
type SetDocument struct {
	Doc document.TemplateDocument
}

// UpdateElement merges partial changes into one element by id.
type UpdateElement struct {
	ID    string
	Patch ElementPatch
}

// MoveElement replaces one element's position.
type MoveElement struct {
	ID       string
	Position document.Position
}

// ResizeElement replaces one element's dimensions, and its position when the
// resize shifted the origin (top/left handles).
type ResizeElement struct {
	ID         string
	Dimensions document.Dimensions
	Position   *document.Position
}

// AddElement appends a new element.
type AddElement struct {
	Element document.TemplateElement
}

// RemoveElement filters an element out by id.
type RemoveElement struct {
	ID string
}

// DuplicateElement clones an element with a new deterministic id, offsets it
// by DuplicateOffset, and suffixes its name with "(copy)".
type DuplicateElement struct {
	ID string
	// At feeds the deterministic duplicate id. Zero means time.Now().
	At time.Time
}

// ReorderElement replaces one element's z-index.
type ReorderElement struct {
	ID     string
	ZIndex int
}

// SetBackground merges a partial update into the background settings.
type SetBackground struct {
	Patch document.BackgroundPatch
}

// UpdateLayer merges partial changes into one layer by id.
type UpdateLayer struct {
	ID    string
	Patch document.LayerPatch
}

// SetVariable updates one template variable's value by name.
type SetVariable struct {
	Name  string
	Value any
}

// SelectElements replaces the selection set. Selection never touches
// document history.
type SelectElements struct {
	IDs []string
}

// HoverElement sets or clears (empty id) the hovered element.
type HoverElement struct {
	ID string
}

// StartDrag begins a move gesture for one element.
type StartDrag struct {
	ElementID string
	OffsetX   float64
	OffsetY   float64
}

// UpdateDrag moves the live preview position. It never touches the document.
type UpdateDrag struct {
	Position document.Position
}

// EndDrag discards the transient drag state. Committing the final position
// is the interaction controller's job via MoveElement.
type EndDrag struct{}

// StartResize begins a resize gesture keyed by a compass handle.
type StartResize struct {
	ElementID string
	Handle    Handle
}

// UpdateResize moves the live preview dimensions/position.
type UpdateResize struct {
	Dimensions document.Dimensions
	Position   document.Position
}

// EndResize discards the transient resize state.
type EndResize struct{}

// Undo pops one snapshot from history onto current.
type Undo struct{}

// Redo is the inverse of Undo.
type Redo struct{}

// Batch folds actions through the reducer as one logical operation with a
// single history entry, so one user gesture stays one undo step.
type Batch struct {
	Actions []Action
}

func (SetDocument) isAction()      {}
func (UpdateElement) isAction()    {}
func (MoveElement) isAction()      {}
func (ResizeElement) isAction()    {}
func (AddElement) isAction()       {}
func (RemoveElement) isAction()    {}
func (DuplicateElement) isAction() {}
func (ReorderElement) isAction()   {}
func (SetBackground) isAction()    {}
func (UpdateLayer) isAction()      {}
func (SetVariable) isAction()      {}
func (SelectElements) isAction()   {}
func (HoverElement) isAction()     {}
func (StartDrag) isAction()        {}
func (UpdateDrag) isAction()       {}
func (EndDrag) isAction()          {}
func (StartResize) isAction()      {}
func (UpdateResize) isAction()     {}
func (EndResize) isAction()        {}
func (Undo) isAction()             {}
func (Redo) isAction()             {}
func (Batch) isAction()            {}
