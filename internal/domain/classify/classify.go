// Package classify turns drawn assignment paths into named football
// concepts. Each classifier applies an ordered rule table to geometric
// evidence; evaluation is first-match-wins and the order is a product
// decision that must not be rearranged silently.
//
// Conventions:
// - Classifiers never return errors: degenerate input degrades
//   confidence instead of failing.
// - Every numeric threshold is a named constant with a functional-option
//   override so it can be retuned per diagram scale.
// - Field geometry is an explicit parameter on every call.
package classify

import "github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"

// Confidence grades how strongly the matched rule's predicates hold. It
// is a qualitative label, never a probability.
type Confidence string

// Confidence levels.
const (
	High   Confidence = "high"
	Medium Confidence = "medium"
	Low    Confidence = "low"
)

// Rule pairs a predicate over evidence E with the label and confidence
// it yields when it is the first to match.
type Rule[E any, L ~string] struct {
	Name       string
	When       func(E) bool
	Label      L
	Confidence Confidence
}

// Table is an ordered rule list. The last rule of every table is a
// catch-all, so Match always resolves to exactly one label.
type Table[E any, L ~string] []Rule[E, L]

// Match evaluates the table in order and returns the first matching
// rule's label and confidence.
func (t Table[E, L]) Match(ev E) (L, Confidence) {
	for _, r := range t {
		if r.When(ev) {
			return r.Label, r.Confidence
		}
	}
	// Unreachable when the table ends with a catch-all.
	var zero L
	return zero, Low
}

// endpoint returns the last point of a path, synthesizing one for
// degenerate input: the sole available point when there is one, else
// the field center at the line of scrimmage.
func endpoint(p geometry.Path, field geometry.Field) geometry.Point {
	if len(p) > 0 {
		return p[len(p)-1]
	}
	return geometry.Point{X: field.CenterX, Y: field.LineOfScrimmage}
}

// degenerate reports whether a path is too short to classify from.
func degenerate(p geometry.Path) bool {
	return len(p) < 2
}
