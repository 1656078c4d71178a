package compose

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cardgen/pkg/document"
)

func el(id, layerID string, z int) document.TemplateElement {
	return document.TemplateElement{
		ID:      id,
		Type:    document.TypeText,
		LayerID: layerID,
		ZIndex:  z,
		Visible: true,
		Opacity: 1,
		Props:   document.TextProps{},
	}
}

func layer(id string, order int) document.Layer {
	return document.Layer{ID: id, Visible: true, Opacity: 1, Order: order}
}

func ids(elements []document.TemplateElement) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = e.ID
	}
	return out
}

func TestOrderedVisibleLayerOrderDominates(t *testing.T) {
	layers := []document.Layer{layer("bg", 0), layer("fg", 1)}
	elements := []document.TemplateElement{
		el("fg-low", "fg", -500), // high layer, very low z
		el("bg-high", "bg", 900), // low layer, very high z
	}

	got := ids(OrderedVisible(elements, layers, nil))
	want := []string{"bg-high", "fg-low"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("layer order must dominate z-index:\n%s", diff)
	}
}

// Layer dominance is only guaranteed while |zIndex| stays below
// LayerOrderSpan. This documents the bound: a z-index at or above the span
// bleeds into the next layer's key range.
func TestOrderedVisibleZIndexBound(t *testing.T) {
	layers := []document.Layer{layer("bg", 0), layer("fg", 1)}
	elements := []document.TemplateElement{
		el("bg-overflow", "bg", LayerOrderSpan+1),
		el("fg-base", "fg", 0),
	}

	got := ids(OrderedVisible(elements, layers, nil))
	want := []string{"fg-base", "bg-overflow"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("known limitation changed:\n%s", diff)
	}
}

func TestOrderedVisibleIsPureAndStable(t *testing.T) {
	layers := []document.Layer{layer("base", 0)}
	elements := []document.TemplateElement{
		el("a", "base", 1),
		el("tie-1", "base", 5),
		el("tie-2", "base", 5),
		el("b", "base", 2),
	}

	first := ids(OrderedVisible(elements, layers, nil))
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, ids(OrderedVisible(elements, layers, nil))); diff != "" {
			t.Fatalf("same inputs produced different output:\n%s", diff)
		}
	}

	// Ties keep input order.
	want := []string{"a", "b", "tie-1", "tie-2"}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Fatalf("tie-breaking not stable:\n%s", diff)
	}
}

func TestOrderedVisibleSortIndependentOfInputPermutation(t *testing.T) {
	layers := []document.Layer{layer("bg", 0), layer("fg", 1)}
	elements := []document.TemplateElement{
		el("a", "bg", 0),
		el("b", "bg", 3),
		el("c", "fg", -2),
		el("d", "fg", 7),
	}
	want := []string{"a", "b", "c", "d"}

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]document.TemplateElement(nil), elements...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got := ids(OrderedVisible(shuffled, layers, nil))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("permutation changed distinct-key ordering:\n%s", diff)
		}
	}
}

func TestOrderedVisibleFiltersHidden(t *testing.T) {
	hiddenLayer := layer("hidden", 1)
	hiddenLayer.Visible = false
	layers := []document.Layer{layer("base", 0), hiddenLayer}

	invisible := el("invisible", "base", 0)
	invisible.Visible = false

	conditional := el("conditional", "base", 0)
	conditional.Condition = &document.ConditionalVisibility{
		Field:    "employee.photo",
		Operator: document.OpExists,
	}

	elements := []document.TemplateElement{
		el("shown", "base", 0),
		el("on-hidden-layer", "hidden", 0),
		invisible,
		conditional,
	}

	got := ids(OrderedVisible(elements, layers, map[string]any{}))
	if diff := cmp.Diff([]string{"shown"}, got); diff != "" {
		t.Fatalf("filtering:\n%s", diff)
	}
}

func TestOrderedVisibleMissingLayerFailsOpen(t *testing.T) {
	got := OrderedVisible(
		[]document.TemplateElement{el("orphan", "layer-gone", 0)},
		[]document.Layer{layer("base", 0)},
		nil,
	)
	if len(got) != 1 || got[0].ID != "orphan" {
		t.Fatalf("unlayered element must stay visible, got %v", ids(got))
	}
}

func TestEffectiveOpacity(t *testing.T) {
	faded := layer("faded", 0)
	faded.Opacity = 0.5
	layers := []document.Layer{faded}

	e := el("x", "faded", 0)
	e.Opacity = 0.6
	if got := EffectiveOpacity(e, layers); got != 0.3 {
		t.Fatalf("effective opacity = %v, want 0.3", got)
	}

	orphan := el("y", "layer-gone", 0)
	orphan.Opacity = 0.8
	if got := EffectiveOpacity(orphan, layers); got != 0.8 {
		t.Fatalf("unlayered opacity = %v, want 0.8", got)
	}
}

func TestIsElementLocked(t *testing.T) {
	lockedLayer := layer("locked", 0)
	lockedLayer.Locked = true
	layers := []document.Layer{layer("free", 0), lockedLayer}

	free := el("a", "free", 0)
	if IsElementLocked(free, layers) {
		t.Fatal("unlocked element on unlocked layer")
	}

	own := el("b", "free", 0)
	own.Locked = true
	if !IsElementLocked(own, layers) {
		t.Fatal("element lock ignored")
	}

	inherited := el("c", "locked", 0)
	if !IsElementLocked(inherited, layers) {
		t.Fatal("layer lock not inherited")
	}

	both := el("d", "locked", 0)
	both.Locked = true
	if !IsElementLocked(both, layers) {
		t.Fatal("lock OR broken")
	}
}
