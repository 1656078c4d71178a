// Package interaction translates pointer and keyboard events into editor
// actions. It owns the gesture protocol: nothing structural is committed
// until the gesture completes, so one drag or resize is one undo step.
package interaction

import (
	"math"

	"github.com/goliatone/go-cardgen/pkg/document"
	"github.com/goliatone/go-cardgen/pkg/editor"
)

// MinDimension is the floor applied to resized widths and heights.
const MinDimension = 10

// Dispatcher feeds actions into the editor state machine. *editor.Store
// satisfies it.
type Dispatcher interface {
	Dispatch(editor.Action) editor.State
	State() editor.State
}

// Option configures a Controller.
type Option func(*Controller)

// WithScale sets the view scale used to convert pointer deltas into
// document units.
func WithScale(scale float64) Option {
	return func(c *Controller) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// WithArrowStep overrides the base arrow-key nudge distance.
func WithArrowStep(step float64) Option {
	return func(c *Controller) {
		if step > 0 {
			c.arrowStep = step
		}
	}
}

// Controller drives the editor from low-level input events. It is not safe
// for concurrent use; it mirrors the single event loop that feeds it.
type Controller struct {
	dispatcher Dispatcher
	scale      float64
	arrowStep  float64
	enabled    bool

	// gesture bookkeeping, valid only between pointer-down and pointer-up
	gesture      gestureKind
	gestureID    string
	startPointer document.Position
	startPos     document.Position
	startDims    document.Dimensions
	handle       editor.Handle
	livePos      document.Position
	liveDims     document.Dimensions
	moved        bool
}

type gestureKind int

const (
	gestureNone gestureKind = iota
	gestureDrag
	gestureResize
)

// New creates a controller bound to a dispatcher.
func New(dispatcher Dispatcher, opts ...Option) *Controller {
	c := &Controller{
		dispatcher: dispatcher,
		scale:      1,
		arrowStep:  1,
		enabled:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetScale updates the view scale mid-session, typically on zoom.
func (c *Controller) SetScale(scale float64) {
	if scale > 0 {
		c.scale = scale
	}
}

// SetEnabled toggles event handling. A disabled controller drops every event,
// which is how read-only display mode is enforced.
func (c *Controller) SetEnabled(enabled bool) { c.enabled = enabled }

// PointerDownOnElement handles a press on an element at view coordinates.
// Plain click replaces the selection; a modifier click toggles membership.
// A drag gesture starts only for elements that are editable (not locked
// directly or through their layer).
func (c *Controller) PointerDownOnElement(id string, viewX, viewY float64, modifier bool) {
	if !c.enabled {
		return
	}
	state := c.dispatcher.State()
	el, ok := state.Doc.ElementByID(id)
	if !ok {
		return
	}

	c.updateSelection(state, id, modifier)

	if elementLocked(state.Doc, el) {
		return
	}
	if c.gesture != gestureNone {
		return
	}

	pointer := c.toDocument(viewX, viewY)
	c.gesture = gestureDrag
	c.gestureID = id
	c.startPointer = pointer
	c.startPos = el.Position
	c.livePos = el.Position
	c.moved = false
	c.dispatcher.Dispatch(editor.StartDrag{
		ElementID: id,
		OffsetX:   pointer.X - el.Position.X,
		OffsetY:   pointer.Y - el.Position.Y,
	})
}

// PointerDownOnHandle begins a resize gesture on one of the eight compass
// handles.
func (c *Controller) PointerDownOnHandle(id string, handle editor.Handle, viewX, viewY float64) {
	if !c.enabled || c.gesture != gestureNone {
		return
	}
	state := c.dispatcher.State()
	el, ok := state.Doc.ElementByID(id)
	if !ok || elementLocked(state.Doc, el) {
		return
	}

	c.gesture = gestureResize
	c.gestureID = id
	c.handle = handle
	c.startPointer = c.toDocument(viewX, viewY)
	c.startPos = el.Position
	c.startDims = el.Dimensions
	c.livePos = el.Position
	c.liveDims = el.Dimensions
	c.moved = false
	c.dispatcher.Dispatch(editor.StartResize{ElementID: id, Handle: handle})
}

// PointerDownOnCanvas handles a press on empty canvas: it clears selection.
func (c *Controller) PointerDownOnCanvas() {
	if !c.enabled {
		return
	}
	c.dispatcher.Dispatch(editor.SelectElements{})
}

// PointerMove advances the active gesture's live preview. It never touches
// the committed document.
func (c *Controller) PointerMove(viewX, viewY float64) {
	if !c.enabled || c.gesture == gestureNone {
		return
	}
	pointer := c.toDocument(viewX, viewY)
	dx := pointer.X - c.startPointer.X
	dy := pointer.Y - c.startPointer.Y
	if dx != 0 || dy != 0 {
		c.moved = true
	}

	doc := c.dispatcher.State().Doc

	switch c.gesture {
	case gestureDrag:
		pos := document.Position{
			X:      c.startPos.X + dx,
			Y:      c.startPos.Y + dy,
			Anchor: c.startPos.Anchor,
		}
		pos = snapPosition(pos, doc.Canvas)
		c.livePos = pos
		c.dispatcher.Dispatch(editor.UpdateDrag{Position: pos})

	case gestureResize:
		dims, pos := applyResize(c.startDims, c.startPos, c.handle, dx, dy)
		dims = snapDimensions(dims, doc.Canvas)
		c.liveDims = dims
		c.livePos = pos
		c.dispatcher.Dispatch(editor.UpdateResize{Dimensions: dims, Position: pos})
	}
}

// PointerUp finishes the active gesture: one committing action, then the
// transient state is discarded. A press with no movement commits nothing.
func (c *Controller) PointerUp() {
	if !c.enabled || c.gesture == gestureNone {
		return
	}
	kind := c.gesture
	id := c.gestureID
	c.gesture = gestureNone
	c.gestureID = ""

	switch kind {
	case gestureDrag:
		if c.moved {
			c.dispatcher.Dispatch(editor.MoveElement{ID: id, Position: c.livePos})
		}
		c.dispatcher.Dispatch(editor.EndDrag{})
	case gestureResize:
		if c.moved {
			pos := c.livePos
			c.dispatcher.Dispatch(editor.ResizeElement{ID: id, Dimensions: c.liveDims, Position: &pos})
		}
		c.dispatcher.Dispatch(editor.EndResize{})
	}
}

// CancelGesture abandons the active gesture without committing anything.
func (c *Controller) CancelGesture() {
	if c.gesture == gestureNone {
		return
	}
	kind := c.gesture
	c.gesture = gestureNone
	c.gestureID = ""
	switch kind {
	case gestureDrag:
		c.dispatcher.Dispatch(editor.EndDrag{})
	case gestureResize:
		c.dispatcher.Dispatch(editor.EndResize{})
	}
}

// Hover updates the hovered element; an empty id clears it.
func (c *Controller) Hover(id string) {
	if !c.enabled {
		return
	}
	c.dispatcher.Dispatch(editor.HoverElement{ID: id})
}

// Key identifies the keyboard inputs the controller understands.
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyDelete     Key = "Delete"
	KeyBackspace  Key = "Backspace"
	KeyZ          Key = "z"
	KeyY          Key = "y"
	KeyD          Key = "d"
)

// KeyDown handles a keyboard event. Modifier is the platform command key
// (Ctrl or Cmd); shift scales arrow nudges and flips undo into redo.
func (c *Controller) KeyDown(key Key, shift, modifier bool) {
	if !c.enabled {
		return
	}

	switch key {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		c.nudgeSelection(key, shift)

	case KeyDelete, KeyBackspace:
		c.deleteSelection()

	case KeyZ:
		if !modifier {
			return
		}
		if shift {
			c.dispatcher.Dispatch(editor.Redo{})
		} else {
			c.dispatcher.Dispatch(editor.Undo{})
		}

	case KeyY:
		if modifier {
			c.dispatcher.Dispatch(editor.Redo{})
		}

	case KeyD:
		if !modifier {
			return
		}
		state := c.dispatcher.State()
		for _, id := range state.Selection.Selected {
			c.dispatcher.Dispatch(editor.DuplicateElement{ID: id})
		}
	}
}

func (c *Controller) nudgeSelection(key Key, shift bool) {
	state := c.dispatcher.State()
	if len(state.Selection.Selected) == 0 {
		return
	}

	step := c.arrowStep
	if state.Doc.Canvas.SnapToGrid && state.Doc.Canvas.GridSize > 0 {
		step = float64(state.Doc.Canvas.GridSize)
	}
	if shift {
		step = 10
	}

	var dx, dy float64
	switch key {
	case KeyArrowUp:
		dy = -step
	case KeyArrowDown:
		dy = step
	case KeyArrowLeft:
		dx = -step
	case KeyArrowRight:
		dx = step
	}

	var moves []editor.Action
	for _, id := range state.Selection.Selected {
		el, ok := state.Doc.ElementByID(id)
		if !ok || elementLocked(state.Doc, el) {
			continue
		}
		moves = append(moves, editor.MoveElement{
			ID: id,
			Position: document.Position{
				X:      el.Position.X + dx,
				Y:      el.Position.Y + dy,
				Anchor: el.Position.Anchor,
			},
		})
	}
	if len(moves) == 0 {
		return
	}
	// One nudge keystroke is one undo step regardless of selection size.
	c.dispatcher.Dispatch(editor.Batch{Actions: moves})
}

func (c *Controller) deleteSelection() {
	state := c.dispatcher.State()
	if len(state.Selection.Selected) == 0 {
		return
	}
	actions := make([]editor.Action, 0, len(state.Selection.Selected)+1)
	for _, id := range state.Selection.Selected {
		actions = append(actions, editor.RemoveElement{ID: id})
	}
	actions = append(actions, editor.SelectElements{})
	c.dispatcher.Dispatch(editor.Batch{Actions: actions})
}

func (c *Controller) updateSelection(state editor.State, id string, modifier bool) {
	if !modifier {
		if !state.Selection.IsSelected(id) || len(state.Selection.Selected) != 1 {
			c.dispatcher.Dispatch(editor.SelectElements{IDs: []string{id}})
		}
		return
	}
	var next []string
	removed := false
	for _, sel := range state.Selection.Selected {
		if sel == id {
			removed = true
			continue
		}
		next = append(next, sel)
	}
	if !removed {
		next = append(next, id)
	}
	c.dispatcher.Dispatch(editor.SelectElements{IDs: next})
}

func (c *Controller) toDocument(viewX, viewY float64) document.Position {
	return document.Position{X: viewX / c.scale, Y: viewY / c.scale}
}

func elementLocked(doc document.TemplateDocument, el document.TemplateElement) bool {
	if el.Locked {
		return true
	}
	if layer, ok := doc.LayerByID(el.LayerID); ok {
		return layer.Locked
	}
	return false
}

// applyResize maps a pointer delta through the handle rule: east/west adjust
// width (west inverts), south/north adjust height (north inverts), corners
// adjust both. West/north handles shift the origin so the opposite edge
// stays fixed. Aspect lock derives the passive axis from the dominant one
// using the starting ratio; the minimum floor applies last.
func applyResize(start document.Dimensions, pos document.Position, handle editor.Handle, dx, dy float64) (document.Dimensions, document.Position) {
	width := start.Width
	height := start.Height

	affectsW, invertW := false, false
	affectsH, invertH := false, false
	switch handle {
	case editor.HandleE:
		affectsW = true
	case editor.HandleW:
		affectsW, invertW = true, true
	case editor.HandleS:
		affectsH = true
	case editor.HandleN:
		affectsH, invertH = true, true
	case editor.HandleSE:
		affectsW, affectsH = true, true
	case editor.HandleSW:
		affectsW, invertW, affectsH = true, true, true
	case editor.HandleNE:
		affectsW, affectsH, invertH = true, true, true
	case editor.HandleNW:
		affectsW, invertW, affectsH, invertH = true, true, true, true
	}

	wDelta, hDelta := 0.0, 0.0
	if affectsW {
		wDelta = dx
		if invertW {
			wDelta = -dx
		}
	}
	if affectsH {
		hDelta = dy
		if invertH {
			hDelta = -dy
		}
	}
	width += wDelta
	height += hDelta

	if start.AspectLock && start.Height > 0 && start.Width > 0 {
		ratio := start.Width / start.Height
		if math.Abs(wDelta) >= math.Abs(hDelta) {
			height = width / ratio
		} else {
			width = height * ratio
		}
	}

	if width < MinDimension {
		width = MinDimension
	}
	if height < MinDimension {
		height = MinDimension
	}

	out := start
	out.Width = width
	out.Height = height

	// Keep the anchored edge fixed when the west/north side moved.
	next := pos
	if invertW {
		next.X = pos.X + (start.Width - width)
	}
	if invertH {
		next.Y = pos.Y + (start.Height - height)
	}
	return out, next
}

func snapPosition(pos document.Position, canvas document.CanvasSettings) document.Position {
	if !canvas.SnapToGrid || canvas.GridSize <= 0 {
		return pos
	}
	grid := float64(canvas.GridSize)
	pos.X = math.Round(pos.X/grid) * grid
	pos.Y = math.Round(pos.Y/grid) * grid
	return pos
}

func snapDimensions(dims document.Dimensions, canvas document.CanvasSettings) document.Dimensions {
	if !canvas.SnapToGrid || canvas.GridSize <= 0 {
		return dims
	}
	grid := float64(canvas.GridSize)
	dims.Width = math.Round(dims.Width/grid) * grid
	dims.Height = math.Round(dims.Height/grid) * grid
	if dims.Width < MinDimension {
		dims.Width = MinDimension
	}
	if dims.Height < MinDimension {
		dims.Height = MinDimension
	}
	return dims
}
