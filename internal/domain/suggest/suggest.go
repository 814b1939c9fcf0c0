// Package suggest builds the ranked list of alternative route labels the
// confirmation dialog offers for manual override.
package suggest

import (
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/classify"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/features"
)

// defaultDeepSuggestDistance is the total distance above which an
// upfield route pulls the vertical-route alternatives.
const defaultDeepSuggestDistance = 100.0

// Contextual alternative sets. Order within each set is the display
// order the original tool uses.
var (
	verticalSet = []classify.RouteLabel{
		classify.RouteGo, classify.RoutePost, classify.RouteCorner, classify.RouteSeam,
	}
	breakingSet = []classify.RouteLabel{
		classify.RouteOut, classify.RouteIn, classify.RouteCurl, classify.RouteComeback,
	}
	shortSet = []classify.RouteLabel{
		classify.RouteSlant, classify.RouteHitch, classify.RouteFlat, classify.RouteSwing,
	}
)

// Ranker produces override suggestions for a route classification.
type Ranker struct {
	deepSuggestDistance float64
}

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithDeepSuggestDistance sets the distance above which an upfield route
// pulls the vertical alternatives.
func WithDeepSuggestDistance(units float64) Option {
	return func(r *Ranker) {
		if units > 0 {
			r.deepSuggestDistance = units
		}
	}
}

// NewRanker creates a ranker with configuration options.
func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{deepSuggestDistance: defaultDeepSuggestDistance}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RouteOptions returns the suggestion list for a route classification:
// the suggested route first, then a contextual alternative set, then the
// custom option. The list never contains duplicates and always includes
// the custom option.
func (r *Ranker) RouteOptions(res classify.RouteResult) []classify.RouteLabel {
	options := []classify.RouteLabel{res.Route}

	c := res.Characteristics
	var contextual []classify.RouteLabel
	switch {
	case c.Direction == features.DirectionUpfield && c.TotalDistance > r.deepSuggestDistance:
		contextual = verticalSet
	case c.Curvature == features.CurvatureBreaking:
		contextual = breakingSet
	default:
		contextual = shortSet
	}

	options = appendMissing(options, contextual...)
	return appendMissing(options, classify.RouteCustom)
}

// appendMissing appends each label not already present, preserving
// order.
func appendMissing(options []classify.RouteLabel, labels ...classify.RouteLabel) []classify.RouteLabel {
	for _, label := range labels {
		seen := false
		for _, have := range options {
			if have == label {
				seen = true
				break
			}
		}
		if !seen {
			options = append(options, label)
		}
	}
	return options
}
