// Package compose computes the visible, paint-ordered subset of a document's
// elements from its layers, element flags, and conditional visibility.
package compose

import (
	"sort"

	"github.com/goliatone/go-cardgen/pkg/binding"
	"github.com/goliatone/go-cardgen/pkg/document"
)

// LayerOrderSpan is the composite-key multiplier that keeps layer order
// dominant over intra-layer z-index. Documents with 1000 or more elements per
// layer exceed this capacity and may interleave across layers.
const LayerOrderSpan = 1000

// OrderedVisible filters and sorts elements for painting. The result is pure:
// the same (elements, layers, data) triple always yields the same list, and
// the sort is stable so equal composite keys preserve input order.
//
// Filtering is fail-open: an element whose layer id resolves to nothing is
// treated as visible and unlayered rather than dropped.
func OrderedVisible(elements []document.TemplateElement, layers []document.Layer, data map[string]any) []document.TemplateElement {
	index := layerIndex(layers)

	out := make([]document.TemplateElement, 0, len(elements))
	for _, el := range elements {
		if layer, ok := index[el.LayerID]; ok && !layer.Visible {
			continue
		}
		if !el.Visible {
			continue
		}
		if !binding.EvaluateCondition(el.Condition, data) {
			continue
		}
		out = append(out, el)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return orderKey(out[i], index) < orderKey(out[j], index)
	})
	return out
}

// EffectiveOpacity is the layer opacity multiplied by the element opacity.
// Unlayered elements contribute only their own opacity.
func EffectiveOpacity(el document.TemplateElement, layers []document.Layer) float64 {
	opacity := el.Opacity
	if layer, ok := layerIndex(layers)[el.LayerID]; ok {
		opacity *= layer.Opacity
	}
	return opacity
}

// IsElementLocked reports whether the element or its owning layer is locked.
// Layer lock is inherited and cannot be overridden by the element.
func IsElementLocked(el document.TemplateElement, layers []document.Layer) bool {
	if el.Locked {
		return true
	}
	layer, ok := layerIndex(layers)[el.LayerID]
	return ok && layer.Locked
}

func orderKey(el document.TemplateElement, index map[string]document.Layer) int {
	order := 0
	if layer, ok := index[el.LayerID]; ok {
		order = layer.Order
	}
	return order*LayerOrderSpan + el.ZIndex
}

func layerIndex(layers []document.Layer) map[string]document.Layer {
	index := make(map[string]document.Layer, len(layers))
	for _, layer := range layers {
		index[layer.ID] = layer
	}
	return index
}
