package editor

import (
	"time"

	"github.com/goliatone/go-cardgen/pkg/document"
)

// Reduce maps (state, action) to the next state. It is pure and free of side
// effects: the same inputs always produce the same output, which is what
// makes snapshot undo/redo sound. Actions targeting missing ids are silent
// no-ops so the reducer stays safe against stale ids from async UI code.
func Reduce(s State, a Action) State {
	switch action := a.(type) {
	case SetDocument:
		return State{Doc: action.Doc.Clone()}

	case SelectElements:
		s.Selection.Selected = append([]string(nil), action.IDs...)
		return s

	case HoverElement:
		s.Selection.Hovered = action.ID
		return s

	case StartDrag:
		// Only one gesture may be active at a time; a second start while one
		// is in flight is ignored.
		if s.Selection.Drag != nil || s.Selection.Resize != nil {
			return s
		}
		el, ok := s.Doc.ElementByID(action.ElementID)
		if !ok {
			return s
		}
		s.Selection.Drag = &DragState{
			ElementID: action.ElementID,
			Start:     el.Position,
			Live:      el.Position,
			OffsetX:   action.OffsetX,
			OffsetY:   action.OffsetY,
		}
		return s

	case UpdateDrag:
		if s.Selection.Drag == nil {
			return s
		}
		drag := *s.Selection.Drag
		drag.Live = action.Position
		s.Selection.Drag = &drag
		return s

	case EndDrag:
		s.Selection.Drag = nil
		return s

	case StartResize:
		if s.Selection.Drag != nil || s.Selection.Resize != nil {
			return s
		}
		el, ok := s.Doc.ElementByID(action.ElementID)
		if !ok {
			return s
		}
		s.Selection.Resize = &ResizeState{
			ElementID: action.ElementID,
			Handle:    action.Handle,
			StartDims: el.Dimensions,
			StartPos:  el.Position,
			LiveDims:  el.Dimensions,
			LivePos:   el.Position,
		}
		return s

	case UpdateResize:
		if s.Selection.Resize == nil {
			return s
		}
		resize := *s.Selection.Resize
		resize.LiveDims = action.Dimensions
		resize.LivePos = action.Position
		s.Selection.Resize = &resize
		return s

	case EndResize:
		s.Selection.Resize = nil
		return s

	case Undo:
		if !s.History.CanUndo() {
			return s
		}
		past := s.History.Past
		previous := past[len(past)-1]
		s.History = History{
			Past:   append([]document.TemplateDocument(nil), past[:len(past)-1]...),
			Future: append(append([]document.TemplateDocument(nil), s.History.Future...), s.Doc),
		}
		s.Doc = previous
		return s

	case Redo:
		if !s.History.CanRedo() {
			return s
		}
		future := s.History.Future
		next := future[len(future)-1]
		s.History = History{
			Past:   append(append([]document.TemplateDocument(nil), s.History.Past...), s.Doc),
			Future: append([]document.TemplateDocument(nil), future[:len(future)-1]...),
		}
		s.Doc = next
		return s

	case Batch:
		// One history entry for the whole batch: one user gesture stays one
		// undo step.
		snapshot := s.Doc.Clone()
		next := s
		changed := false
		for _, sub := range action.Actions {
			doc, ok := applyToDocument(next.Doc, sub)
			if ok {
				next.Doc = doc
				changed = true
				continue
			}
			// Non-document actions (selection, gestures) still fold through.
			next = Reduce(next, sub)
		}
		if changed {
			next.History = s.History.push(snapshot)
		}
		return next

	default:
		doc, ok := applyToDocument(s.Doc, a)
		if !ok {
			return s
		}
		s.History = s.History.push(s.Doc.Clone())
		s.Doc = doc
		return s
	}
}

// applyToDocument handles the document-mutating subset of the vocabulary.
// The bool result reports whether the action applied; actions that are not
// document mutations, or that target missing ids, return false.
func applyToDocument(doc document.TemplateDocument, a Action) (document.TemplateDocument, bool) {
	switch action := a.(type) {
	case UpdateElement:
		return replaceElement(doc, action.ID, func(el document.TemplateElement) document.TemplateElement {
			return action.Patch.Apply(el)
		})

	case MoveElement:
		return replaceElement(doc, action.ID, func(el document.TemplateElement) document.TemplateElement {
			out := el.Clone()
			out.Position = action.Position
			return out
		})

	case ResizeElement:
		return replaceElement(doc, action.ID, func(el document.TemplateElement) document.TemplateElement {
			out := el.Clone()
			out.Dimensions = action.Dimensions
			if action.Position != nil {
				out.Position = *action.Position
			}
			return out
		})

	case ReorderElement:
		return replaceElement(doc, action.ID, func(el document.TemplateElement) document.TemplateElement {
			out := el.Clone()
			out.ZIndex = action.ZIndex
			return out
		})

	case AddElement:
		out := doc.Clone()
		out.Elements = append(out.Elements, action.Element.Clone())
		return out, true

	case RemoveElement:
		if _, ok := doc.ElementByID(action.ID); !ok {
			return doc, false
		}
		out := doc.Clone()
		elements := out.Elements[:0]
		for _, el := range out.Elements {
			if el.ID != action.ID {
				elements = append(elements, el)
			}
		}
		out.Elements = elements
		return out, true

	case DuplicateElement:
		original, ok := doc.ElementByID(action.ID)
		if !ok {
			return doc, false
		}
		at := action.At
		if at.IsZero() {
			at = time.Now()
		}
		clone := original.Clone()
		clone.ID = document.DuplicateID(original.ID, at)
		clone.Name = original.Name + " (copy)"
		clone.Position.X += DuplicateOffset
		clone.Position.Y += DuplicateOffset
		out := doc.Clone()
		out.Elements = append(out.Elements, clone)
		return out, true

	case SetBackground:
		out := doc.Clone()
		out.Background = action.Patch.Apply(out.Background)
		return out, true

	case UpdateLayer:
		found := false
		out := doc.Clone()
		for i, layer := range out.Layers {
			if layer.ID == action.ID {
				out.Layers[i] = action.Patch.Apply(layer)
				found = true
				break
			}
		}
		return out, found

	case SetVariable:
		found := false
		out := doc.Clone()
		for i, variable := range out.Variables {
			if variable.Name == action.Name {
				out.Variables[i].Value = action.Value
				found = true
				break
			}
		}
		if !found {
			out.Variables = append(out.Variables, document.TemplateVariable{
				Name:  action.Name,
				Value: action.Value,
			})
		}
		return out, true

	default:
		return doc, false
	}
}

func replaceElement(doc document.TemplateDocument, id string, fn func(document.TemplateElement) document.TemplateElement) (document.TemplateDocument, bool) {
	if _, ok := doc.ElementByID(id); !ok {
		return doc, false
	}
	out := doc.Clone()
	for i, el := range out.Elements {
		if el.ID == id {
			out.Elements[i] = fn(el)
			break
		}
	}
	return out, true
}
