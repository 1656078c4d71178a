package interaction

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cardgen/pkg/document"
	"github.com/goliatone/go-cardgen/pkg/editor"
)

func testStore(t *testing.T, mutate func(*document.TemplateDocument)) *editor.Store {
	t.Helper()
	doc := document.NewBlankDocument("Badge", document.SideFront)
	doc.Elements = append(doc.Elements, document.TemplateElement{
		ID:         "el-a",
		Type:       document.TypeText,
		Name:       "A",
		LayerID:    doc.Layers[0].ID,
		Position:   document.Position{X: 10, Y: 20},
		Dimensions: document.Dimensions{Width: 100, Height: 50},
		Visible:    true,
		Selectable: true,
		Opacity:    1,
		Props:      document.TextProps{Content: "a"},
	}, document.TemplateElement{
		ID:         "el-b",
		Type:       document.TypeText,
		Name:       "B",
		LayerID:    doc.Layers[0].ID,
		Position:   document.Position{X: 300, Y: 300},
		Dimensions: document.Dimensions{Width: 80, Height: 30},
		Visible:    true,
		Selectable: true,
		Opacity:    1,
		Props:      document.TextProps{Content: "b"},
	})
	if mutate != nil {
		mutate(&doc)
	}
	return editor.NewStore(doc)
}

func TestDragGestureEndToEnd(t *testing.T) {
	store := testStore(t, nil)
	c := New(store)

	// Press inside the element, 2 units from its origin.
	c.PointerDownOnElement("el-a", 12, 22, false)
	state := store.State()
	if state.Selection.Drag == nil {
		t.Fatal("drag not started")
	}
	if state.Selection.Drag.OffsetX != 2 || state.Selection.Drag.OffsetY != 2 {
		t.Fatalf("offset = (%v,%v)", state.Selection.Drag.OffsetX, state.Selection.Drag.OffsetY)
	}

	c.PointerMove(14, 24)
	c.PointerMove(17, 27)
	state = store.State()
	if state.Selection.Drag.Live.X != 15 || state.Selection.Drag.Live.Y != 25 {
		t.Fatalf("live preview = %+v", state.Selection.Drag.Live)
	}
	// Preview never touches the committed document or history.
	el, _ := state.Doc.ElementByID("el-a")
	if el.Position.X != 10 || el.Position.Y != 20 {
		t.Fatalf("document changed mid-gesture: %+v", el.Position)
	}
	if state.History.CanUndo() {
		t.Fatal("history pushed mid-gesture")
	}

	c.PointerUp()
	state = store.State()
	el, _ = state.Doc.ElementByID("el-a")
	if el.Position.X != 15 || el.Position.Y != 25 {
		t.Fatalf("committed position = %+v, want (15,25)", el.Position)
	}
	if got := len(state.History.Past); got != 1 {
		t.Fatalf("gesture produced %d history entries, want 1", got)
	}
	if state.Selection.Drag != nil {
		t.Fatal("drag state not cleared on pointer-up")
	}
}

func TestDragScalesPointerDeltas(t *testing.T) {
	store := testStore(t, nil)
	c := New(store, WithScale(2))

	c.PointerDownOnElement("el-a", 20, 40, false) // (10,20) in document units
	c.PointerMove(40, 60)                         // +20 view = +10 document
	c.PointerUp()

	el, _ := store.State().Doc.ElementByID("el-a")
	if el.Position.X != 20 || el.Position.Y != 30 {
		t.Fatalf("position = %+v, want (20,30)", el.Position)
	}
}

func TestDragSnapsToGrid(t *testing.T) {
	store := testStore(t, func(doc *document.TemplateDocument) {
		doc.Canvas.SnapToGrid = true
		doc.Canvas.GridSize = 10
	})
	c := New(store)

	c.PointerDownOnElement("el-a", 10, 20, false)
	c.PointerMove(23, 36) // raw candidate (23,36) snaps to (20,40)
	c.PointerUp()

	el, _ := store.State().Doc.ElementByID("el-a")
	if el.Position.X != 20 || el.Position.Y != 40 {
		t.Fatalf("snapped position = %+v, want (20,40)", el.Position)
	}
}

func TestClickWithoutMoveCommitsNothing(t *testing.T) {
	store := testStore(t, nil)
	c := New(store)

	c.PointerDownOnElement("el-a", 10, 20, false)
	c.PointerUp()

	state := store.State()
	if state.History.CanUndo() {
		t.Fatal("plain click pushed history")
	}
	if !state.Selection.IsSelected("el-a") {
		t.Fatal("click did not select the element")
	}
}

func TestLockedElementSelectsButNeverDrags(t *testing.T) {
	store := testStore(t, func(doc *document.TemplateDocument) {
		doc.Elements[0].Locked = true
	})
	c := New(store)

	c.PointerDownOnElement("el-a", 12, 22, false)
	state := store.State()
	if !state.Selection.IsSelected("el-a") {
		t.Fatal("locked element should still be selectable")
	}
	if state.Selection.Drag != nil {
		t.Fatal("locked element started a drag")
	}
}

func TestLayerLockBlocksDrag(t *testing.T) {
	store := testStore(t, func(doc *document.TemplateDocument) {
		doc.Layers[0].Locked = true
	})
	c := New(store)

	c.PointerDownOnElement("el-a", 12, 22, false)
	if store.State().Selection.Drag != nil {
		t.Fatal("layer-locked element started a drag")
	}
}

func TestResizeEastHandle(t *testing.T) {
	store := testStore(t, nil)
	c := New(store)

	c.PointerDownOnHandle("el-a", editor.HandleE, 110, 45)
	c.PointerMove(130, 45) // +20 east
	c.PointerUp()

	el, _ := store.State().Doc.ElementByID("el-a")
	if el.Dimensions.Width != 120 || el.Dimensions.Height != 50 {
		t.Fatalf("dimensions = %+v", el.Dimensions)
	}
	if el.Position.X != 10 {
		t.Fatalf("east resize moved the origin: %+v", el.Position)
	}
}

func TestResizeWestHandleShiftsOrigin(t *testing.T) {
	store := testStore(t, nil)
	c := New(store)

	c.PointerDownOnHandle("el-a", editor.HandleW, 10, 45)
	c.PointerMove(0, 45) // -10 west grows width by 10
	c.PointerUp()

	el, _ := store.State().Doc.ElementByID("el-a")
	if el.Dimensions.Width != 110 {
		t.Fatalf("width = %v, want 110", el.Dimensions.Width)
	}
	if el.Position.X != 0 {
		t.Fatalf("origin = %v, want 0", el.Position.X)
	}
}

func TestResizeAspectLockDominantAxis(t *testing.T) {
	store := testStore(t, func(doc *document.TemplateDocument) {
		doc.Elements[0].Dimensions.AspectLock = true // 100x50, ratio 2
	})
	c := New(store)

	c.PointerDownOnHandle("el-a", editor.HandleE, 110, 45)
	c.PointerMove(130, 45) // dx=+20 dominates
	c.PointerUp()

	el, _ := store.State().Doc.ElementByID("el-a")
	if el.Dimensions.Width != 120 || el.Dimensions.Height != 60 {
		t.Fatalf("dimensions = %+v, want 120x60", el.Dimensions)
	}
}

func TestResizeFloorsAtMinimum(t *testing.T) {
	store := testStore(t, func(doc *document.TemplateDocument) {
		doc.Elements[0].Dimensions.AspectLock = true
	})
	c := New(store)

	c.PointerDownOnHandle("el-a", editor.HandleE, 110, 45)
	c.PointerMove(-500, 45)
	c.PointerUp()

	el, _ := store.State().Doc.ElementByID("el-a")
	if el.Dimensions.Width < MinDimension || el.Dimensions.Height < MinDimension {
		t.Fatalf("dimensions below floor: %+v", el.Dimensions)
	}
}

func TestSecondGestureWhileActiveIsIgnored(t *testing.T) {
	store := testStore(t, nil)
	c := New(store)

	c.PointerDownOnElement("el-a", 12, 22, false)
	c.PointerDownOnHandle("el-b", editor.HandleSE, 380, 330)

	state := store.State()
	if state.Selection.Resize != nil {
		t.Fatal("resize started while a drag is active")
	}
	if state.Selection.Drag == nil || state.Selection.Drag.ElementID != "el-a" {
		t.Fatal("active drag lost")
	}
}

func TestCancelGestureCommitsNothing(t *testing.T) {
	store := testStore(t, nil)
	c := New(store)

	c.PointerDownOnElement("el-a", 12, 22, false)
	c.PointerMove(50, 60)
	c.CancelGesture()

	state := store.State()
	el, _ := state.Doc.ElementByID("el-a")
	if el.Position.X != 10 || el.Position.Y != 20 {
		t.Fatalf("cancel committed a move: %+v", el.Position)
	}
	if state.History.CanUndo() {
		t.Fatal("cancel pushed history")
	}
	if state.Selection.Drag != nil {
		t.Fatal("cancel left drag state behind")
	}
}

func TestSelectionToggleWithModifier(t *testing.T) {
	store := testStore(t, nil)
	c := New(store)

	c.PointerDownOnElement("el-a", 12, 22, false)
	c.PointerUp()
	c.PointerDownOnElement("el-b", 310, 310, true)
	c.PointerUp()

	selected := store.State().Selection.Selected
	if diff := cmp.Diff([]string{"el-a", "el-b"}, selected); diff != "" {
		t.Fatalf("modifier-click should add to selection:\n%s", diff)
	}

	c.PointerDownOnElement("el-a", 12, 22, true)
	c.PointerUp()
	selected = store.State().Selection.Selected
	if diff := cmp.Diff([]string{"el-b"}, selected); diff != "" {
		t.Fatalf("modifier-click should remove existing member:\n%s", diff)
	}

	c.PointerDownOnCanvas()
	if len(store.State().Selection.Selected) != 0 {
		t.Fatal("canvas click should clear selection")
	}
}

func TestArrowKeysNudgeSelection(t *testing.T) {
	store := testStore(t, nil)
	c := New(store)
	store.Dispatch(editor.SelectElements{IDs: []string{"el-a", "el-b"}})

	c.KeyDown(KeyArrowRight, false, false)
	state := store.State()
	a, _ := state.Doc.ElementByID("el-a")
	b, _ := state.Doc.ElementByID("el-b")
	if a.Position.X != 11 || b.Position.X != 301 {
		t.Fatalf("1-unit nudge: a=%v b=%v", a.Position.X, b.Position.X)
	}
	if got := len(state.History.Past); got != 1 {
		t.Fatalf("nudge produced %d history entries, want 1", got)
	}

	c.KeyDown(KeyArrowDown, true, false) // shift = 10 units
	a, _ = store.State().Doc.ElementByID("el-a")
	if a.Position.Y != 30 {
		t.Fatalf("shift nudge: y=%v, want 30", a.Position.Y)
	}
}

func TestArrowKeysUseGridStepWhenSnapping(t *testing.T) {
	store := testStore(t, func(doc *document.TemplateDocument) {
		doc.Canvas.SnapToGrid = true
		doc.Canvas.GridSize = 25
	})
	c := New(store)
	store.Dispatch(editor.SelectElements{IDs: []string{"el-a"}})

	c.KeyDown(KeyArrowRight, false, false)
	el, _ := store.State().Doc.ElementByID("el-a")
	if el.Position.X != 35 {
		t.Fatalf("grid nudge: x=%v, want 35", el.Position.X)
	}
}

func TestArrowKeysSkipLockedElements(t *testing.T) {
	store := testStore(t, func(doc *document.TemplateDocument) {
		doc.Elements[0].Locked = true
	})
	c := New(store)
	store.Dispatch(editor.SelectElements{IDs: []string{"el-a", "el-b"}})

	c.KeyDown(KeyArrowRight, false, false)
	state := store.State()
	a, _ := state.Doc.ElementByID("el-a")
	b, _ := state.Doc.ElementByID("el-b")
	if a.Position.X != 10 {
		t.Fatal("locked element moved")
	}
	if b.Position.X != 301 {
		t.Fatal("unlocked element did not move")
	}
}

func TestDeleteRemovesSelectionAndClearsIt(t *testing.T) {
	store := testStore(t, nil)
	c := New(store)
	store.Dispatch(editor.SelectElements{IDs: []string{"el-a", "el-b"}})

	c.KeyDown(KeyDelete, false, false)
	state := store.State()
	if len(state.Doc.Elements) != 0 {
		t.Fatalf("%d elements remain after delete", len(state.Doc.Elements))
	}
	if len(state.Selection.Selected) != 0 {
		t.Fatal("selection not cleared after delete")
	}
	if got := len(state.History.Past); got != 1 {
		t.Fatalf("delete produced %d history entries, want 1", got)
	}
}

func TestUndoRedoDuplicateShortcuts(t *testing.T) {
	store := testStore(t, nil)
	c := New(store)

	store.Dispatch(editor.MoveElement{ID: "el-a", Position: document.Position{X: 99, Y: 99}})

	c.KeyDown(KeyZ, false, true)
	el, _ := store.State().Doc.ElementByID("el-a")
	if el.Position.X != 10 {
		t.Fatal("modifier+z did not undo")
	}

	c.KeyDown(KeyZ, true, true)
	el, _ = store.State().Doc.ElementByID("el-a")
	if el.Position.X != 99 {
		t.Fatal("modifier+shift+z did not redo")
	}

	c.KeyDown(KeyZ, false, true) // back to original
	c.KeyDown(KeyY, false, true)
	el, _ = store.State().Doc.ElementByID("el-a")
	if el.Position.X != 99 {
		t.Fatal("modifier+y did not redo")
	}

	store.Dispatch(editor.SelectElements{IDs: []string{"el-a"}})
	c.KeyDown(KeyD, false, true)
	if got := len(store.State().Doc.Elements); got != 3 {
		t.Fatalf("duplicate shortcut: %d elements, want 3", got)
	}
}

func TestDisabledControllerDropsEvents(t *testing.T) {
	store := testStore(t, nil)
	c := New(store)
	c.SetEnabled(false)

	c.PointerDownOnElement("el-a", 12, 22, false)
	c.KeyDown(KeyDelete, false, false)

	state := store.State()
	if state.Selection.Drag != nil || len(state.Selection.Selected) != 0 {
		t.Fatal("disabled controller handled pointer event")
	}
	if len(state.Doc.Elements) != 2 {
		t.Fatal("disabled controller handled keyboard event")
	}
}
