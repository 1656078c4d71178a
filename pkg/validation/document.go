// Package validation checks template documents for structural problems
// before persistence or import. Rendering itself stays fail-open; these
// checks exist so editors and importers can surface problems early instead
// of silently degrading.
package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-cardgen/pkg/document"
)

// Issue is one validation finding with optional location metadata.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes for editor previews and import flows.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// ValidateDocument checks a document's structural invariants: id uniqueness,
// sane geometry, resolvable references, and props payloads matching their
// element type tag.
func ValidateDocument(doc document.TemplateDocument) Result {
	var issues []Issue
	add := func(path, field, format string, args ...any) {
		issues = append(issues, Issue{Path: path, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if doc.SchemaVersion > document.SchemaVersion {
		add("", "schemaVersion", "schema version %d is newer than supported version %d", doc.SchemaVersion, document.SchemaVersion)
	}
	if strings.TrimSpace(doc.Name) == "" {
		add("", "name", "document name is empty")
	}
	if doc.Canvas.Width <= 0 || doc.Canvas.Height <= 0 {
		add("canvas", "canvas", "canvas dimensions must be positive, got %vx%v", doc.Canvas.Width, doc.Canvas.Height)
	}
	if doc.Canvas.DPI <= 0 {
		add("canvas", "dpi", "canvas dpi must be positive, got %v", doc.Canvas.DPI)
	}
	switch doc.Side {
	case document.SideFront, document.SideBack, document.SideSingle:
	default:
		add("", "side", "unknown side %q", doc.Side)
	}

	layerIDs := make(map[string]bool, len(doc.Layers))
	for i, layer := range doc.Layers {
		path := fmt.Sprintf("layers/%d", i)
		if layer.ID == "" {
			add(path, "id", "layer has no id")
			continue
		}
		if layerIDs[layer.ID] {
			add(path, "id", "duplicate layer id %q", layer.ID)
		}
		layerIDs[layer.ID] = true
		if layer.Opacity < 0 || layer.Opacity > 1 {
			add(path, "opacity", "layer opacity %v outside [0,1]", layer.Opacity)
		}
	}

	elementIDs := make(map[string]bool, len(doc.Elements))
	for i, el := range doc.Elements {
		path := fmt.Sprintf("elements/%d", i)
		if el.ID == "" {
			add(path, "id", "element has no id")
		} else if elementIDs[el.ID] {
			add(path, "id", "duplicate element id %q", el.ID)
		}
		elementIDs[el.ID] = true

		if document.DefaultProps(el.Type) == nil {
			add(path, "type", "unknown element type %q", el.Type)
		}
		if el.Props != nil && document.PropsType(el.Props) != el.Type {
			add(path, "props", "props payload is for type %q, element is %q", document.PropsType(el.Props), el.Type)
		}
		if el.LayerID != "" && !layerIDs[el.LayerID] {
			// Rendering treats this as unlayered; imports should still fix it.
			add(path, "layerId", "element references unknown layer %q", el.LayerID)
		}
		if el.Dimensions.Width < 0 || el.Dimensions.Height < 0 {
			add(path, "dimensions", "negative dimensions %vx%v", el.Dimensions.Width, el.Dimensions.Height)
		}
		if el.Opacity < 0 || el.Opacity > 1 {
			add(path, "opacity", "element opacity %v outside [0,1]", el.Opacity)
		}
		if el.Condition != nil && !knownOperator(el.Condition.Operator) {
			add(path, "condition", "unknown condition operator %q", el.Condition.Operator)
		}
		for bindingPath := range el.Bindings {
			if !validBindingPath(bindingPath) {
				add(path, "bindings", "binding path %q targets neither props nor style", bindingPath)
			}
		}
		if el.ParentID != "" && !elementDeclared(doc, el.ParentID) {
			add(path, "parentId", "element references unknown parent %q", el.ParentID)
		}
	}

	return Result{Valid: len(issues) == 0, Issues: issues}
}

func knownOperator(op document.ConditionOperator) bool {
	switch op {
	case document.OpEquals, document.OpNotEquals, document.OpExists,
		document.OpNotExists, document.OpGreater, document.OpLess, document.OpContains:
		return true
	}
	return false
}

func validBindingPath(path string) bool {
	return strings.HasPrefix(path, "props.") || strings.HasPrefix(path, "style.")
}

func elementDeclared(doc document.TemplateDocument, id string) bool {
	_, ok := doc.ElementByID(id)
	return ok
}
