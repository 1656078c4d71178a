package binding

import (
	"reflect"
	"strings"

	"github.com/goliatone/go-cardgen/pkg/document"
)

// EvaluateCondition decides whether a conditionally visible element shows.
// A nil condition and any unknown operator both evaluate true: a broken
// predicate must never blank the card.
func EvaluateCondition(cond *document.ConditionalVisibility, data map[string]any) bool {
	if cond == nil {
		return true
	}

	value, found := Lookup(data, cond.Field)
	if !found {
		value = nil
	}

	switch cond.Operator {
	case document.OpExists:
		return !IsEmpty(value)
	case document.OpNotExists:
		return IsEmpty(value)
	case document.OpEquals:
		return strictEqual(value, cond.Value)
	case document.OpNotEquals:
		return !strictEqual(value, cond.Value)
	case document.OpGreater:
		left, lok := coerceNumber(value)
		right, rok := coerceNumber(cond.Value)
		return lok && rok && left > right
	case document.OpLess:
		left, lok := coerceNumber(value)
		right, rok := coerceNumber(cond.Value)
		return lok && rok && left < right
	case document.OpContains:
		return strings.Contains(coerceString(value), coerceString(cond.Value))
	default:
		return true
	}
}

// strictEqual compares without cross-type coercion, mirroring a strict
// equality check. Numeric values of different widths still compare equal
// because JSON decoding normalises them to float64.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}
