package editor

import "github.com/goliatone/go-cardgen/pkg/document"

// HistoryLimit caps the undo stack; the oldest snapshot is dropped beyond it.
const HistoryLimit = 50

// History holds whole-document snapshots. Past[len-1] is the most recent
// undo target; Future[len-1] the next redo target.
type History struct {
	Past   []document.TemplateDocument
	Future []document.TemplateDocument
}

// push records the pre-change document and clears the redo stack: a fresh
// edit invalidates redo.
func (h History) push(snapshot document.TemplateDocument) History {
	past := h.Past
	if len(past) >= HistoryLimit {
		past = past[len(past)-HistoryLimit+1:]
	}
	out := History{
		Past: append(append([]document.TemplateDocument(nil), past...), snapshot),
	}
	return out
}

// CanUndo reports whether an undo target exists.
func (h History) CanUndo() bool { return len(h.Past) > 0 }

// CanRedo reports whether a redo target exists.
func (h History) CanRedo() bool { return len(h.Future) > 0 }
