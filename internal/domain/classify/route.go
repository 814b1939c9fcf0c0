package classify

import (
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/features"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
)

// RouteLabel is a named pass route.
type RouteLabel string

// Route vocabulary. RouteCustom is the guaranteed fallback.
const (
	RouteGo           RouteLabel = "Go/Streak/9"
	RoutePost         RouteLabel = "Post"
	RouteCorner       RouteLabel = "Corner"
	RouteSeam         RouteLabel = "Seam"
	RouteOut          RouteLabel = "Out"
	RouteIn           RouteLabel = "In/Dig"
	RouteCurl         RouteLabel = "Curl"
	RouteComeback     RouteLabel = "Comeback"
	RouteSlant        RouteLabel = "Slant"
	RouteHitch        RouteLabel = "Hitch"
	RouteFlat         RouteLabel = "Flat"
	RouteSwing        RouteLabel = "Swing"
	RouteWheel        RouteLabel = "Wheel"
	RouteShallowCross RouteLabel = "Shallow Cross"
	RouteDeepCross    RouteLabel = "Deep Cross"
	RouteCustom       RouteLabel = "Draw Route (Custom)"
)

// RouteVocabulary returns the closed route label set.
func RouteVocabulary() []RouteLabel {
	return []RouteLabel{
		RouteGo, RoutePost, RouteCorner, RouteSeam,
		RouteOut, RouteIn, RouteCurl, RouteComeback,
		RouteSlant, RouteHitch, RouteFlat, RouteSwing,
		RouteWheel, RouteShallowCross, RouteDeepCross, RouteCustom,
	}
}

// Band buckets a path's total distance.
type Band string

// Distance bands.
const (
	BandShort  Band = "short"
	BandMedium Band = "medium"
	BandDeep   Band = "deep"
)

// Default route thresholds, in diagram units.
const (
	defaultShortMax = 80.0  // below this the path is short
	defaultDeepMin  = 150.0 // at or above this the path is deep

	// defaultGoMaxDrift bounds the horizontal drift a Go route tolerates.
	defaultGoMaxDrift = 40.0

	// defaultSlantMinVertical is the minimum upfield gain for a Slant.
	defaultSlantMinVertical = 20.0

	// defaultComebackFlatBand bounds |netVertical| for a break that
	// works back to roughly its starting depth.
	defaultComebackFlatBand = 20.0
)

// RouteResult is the classification of a drawn route path.
type RouteResult struct {
	Route           RouteLabel               `json:"route"`
	Confidence      Confidence               `json:"confidence"`
	Characteristics features.Characteristics `json:"characteristics"`
}

// routeEvidence is what the route rule table sees.
type routeEvidence struct {
	c    features.Characteristics
	band Band
}

// RouteClassifier names a drawn pass route.
type RouteClassifier struct {
	extractor *features.Extractor

	shortMax         float64
	deepMin          float64
	goMaxDrift       float64
	slantMinVertical float64
	comebackFlatBand float64

	table Table[routeEvidence, RouteLabel]
}

// RouteOption applies a configuration option to the RouteClassifier.
type RouteOption func(*RouteClassifier)

// WithExtractor sets the feature extractor the classifier uses.
func WithExtractor(e *features.Extractor) RouteOption {
	return func(r *RouteClassifier) {
		if e != nil {
			r.extractor = e
		}
	}
}

// WithDistanceBands sets the short/deep distance band boundaries.
func WithDistanceBands(shortMax, deepMin float64) RouteOption {
	return func(r *RouteClassifier) {
		if shortMax > 0 && deepMin > shortMax {
			r.shortMax = shortMax
			r.deepMin = deepMin
		}
	}
}

// WithGoMaxDrift sets the horizontal drift a Go route tolerates.
func WithGoMaxDrift(units float64) RouteOption {
	return func(r *RouteClassifier) {
		if units > 0 {
			r.goMaxDrift = units
		}
	}
}

// WithSlantMinVertical sets the minimum upfield gain for a Slant.
func WithSlantMinVertical(units float64) RouteOption {
	return func(r *RouteClassifier) {
		if units > 0 {
			r.slantMinVertical = units
		}
	}
}

// NewRouteClassifier creates a route classifier with configuration
// options.
func NewRouteClassifier(opts ...RouteOption) *RouteClassifier {
	r := &RouteClassifier{
		extractor:        features.NewExtractor(),
		shortMax:         defaultShortMax,
		deepMin:          defaultDeepMin,
		goMaxDrift:       defaultGoMaxDrift,
		slantMinVertical: defaultSlantMinVertical,
		comebackFlatBand: defaultComebackFlatBand,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.table = r.buildTable()
	return r
}

// Band buckets a total distance into short/medium/deep.
func (r *RouteClassifier) Band(totalDistance float64) Band {
	switch {
	case totalDistance < r.shortMax:
		return BandShort
	case totalDistance < r.deepMin:
		return BandMedium
	default:
		return BandDeep
	}
}

// buildTable encodes the route decision tree as an explicit ordered rule
// list. First match wins: the order carries specificity priority from
// the original tool and is part of the observable contract.
func (r *RouteClassifier) buildTable() Table[routeEvidence, RouteLabel] {
	abs := func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	}
	// comebackShape is the shared predicate of the Comeback/Curl pair: a
	// finish working back, or a cut that ends near its starting depth.
	comebackShape := func(ev routeEvidence) bool {
		if ev.c.EndDirection == features.EndBack {
			return true
		}
		return ev.c.HasBreak() &&
			ev.c.NetVertical > -r.comebackFlatBand && ev.c.NetVertical < r.comebackFlatBand
	}

	return Table[routeEvidence, RouteLabel]{
		{
			Name: "go",
			When: func(ev routeEvidence) bool {
				return ev.band == BandDeep &&
					ev.c.Direction == features.DirectionUpfield &&
					!ev.c.HasBreak() &&
					abs(ev.c.NetHorizontal) < r.goMaxDrift
			},
			Label: RouteGo, Confidence: High,
		},
		{
			Name: "post",
			When: func(ev routeEvidence) bool {
				return ev.band == BandDeep && ev.c.HasBreak() &&
					ev.c.EndDirection == features.EndInside
			},
			Label: RoutePost, Confidence: High,
		},
		{
			Name: "corner",
			When: func(ev routeEvidence) bool {
				return ev.band == BandDeep && ev.c.HasBreak() &&
					ev.c.EndDirection == features.EndOutside
			},
			Label: RouteCorner, Confidence: High,
		},
		{
			Name: "seam",
			When: func(ev routeEvidence) bool {
				return (ev.band == BandMedium || ev.band == BandDeep) &&
					ev.c.Direction == features.DirectionUpfield &&
					!ev.c.HasBreak()
			},
			Label: RouteSeam, Confidence: Medium,
		},
		{
			Name: "out",
			When: func(ev routeEvidence) bool {
				return ev.band == BandMedium && ev.c.HasBreak() &&
					ev.c.EndDirection == features.EndOutside &&
					ev.c.Direction != features.DirectionDownfield
			},
			Label: RouteOut, Confidence: High,
		},
		{
			Name: "in",
			When: func(ev routeEvidence) bool {
				return ev.band == BandMedium && ev.c.HasBreak() &&
					ev.c.EndDirection == features.EndInside
			},
			Label: RouteIn, Confidence: High,
		},
		{
			Name: "comeback",
			When: func(ev routeEvidence) bool {
				return comebackShape(ev) && ev.band == BandMedium
			},
			Label: RouteComeback, Confidence: Medium,
		},
		{
			Name:  "curl",
			When:  comebackShape,
			Label: RouteCurl, Confidence: Medium,
		},
		{
			Name: "slant",
			When: func(ev routeEvidence) bool {
				return (ev.band == BandShort || ev.band == BandMedium) &&
					ev.c.MovingInside &&
					!ev.c.HasBreak() &&
					ev.c.NetVertical > r.slantMinVertical
			},
			Label: RouteSlant, Confidence: High,
		},
		{
			Name: "hitch",
			When: func(ev routeEvidence) bool {
				return ev.band == BandShort &&
					ev.c.Direction == features.DirectionUpfield &&
					!ev.c.HasBreak()
			},
			Label: RouteHitch, Confidence: Medium,
		},
		{
			Name: "flat",
			When: func(ev routeEvidence) bool {
				return ev.band == BandShort &&
					ev.c.Direction == features.DirectionLateral
			},
			Label: RouteFlat, Confidence: High,
		},
		{
			Name: "swing",
			When: func(ev routeEvidence) bool {
				return ev.band == BandShort &&
					ev.c.Curvature == features.CurvatureCurved
			},
			Label: RouteSwing, Confidence: Medium,
		},
		{
			Name: "wheel",
			When: func(ev routeEvidence) bool {
				return ev.band == BandMedium && ev.c.HasBreak() &&
					ev.c.EndDirection == features.EndVertical
			},
			Label: RouteWheel, Confidence: Medium,
		},
		{
			Name: "shallow-cross",
			When: func(ev routeEvidence) bool {
				return ev.band == BandMedium &&
					ev.c.Direction == features.DirectionLateral &&
					ev.c.MovingInside
			},
			Label: RouteShallowCross, Confidence: Medium,
		},
		{
			Name: "deep-cross",
			When: func(ev routeEvidence) bool {
				return ev.band == BandDeep &&
					ev.c.Direction == features.DirectionLateral
			},
			Label: RouteDeepCross, Confidence: Low,
		},
		{
			Name:  "custom",
			When:  func(routeEvidence) bool { return true },
			Label: RouteCustom, Confidence: Low,
		},
	}
}

// Classify names the route drawn in in.Path. It never fails: a
// degenerate path yields the custom fallback at low confidence, still
// carrying the extracted characteristics.
func (r *RouteClassifier) Classify(in features.Input, field geometry.Field) RouteResult {
	c := r.extractor.Extract(in, field)

	if degenerate(in.Path) {
		return RouteResult{Route: RouteCustom, Confidence: Low, Characteristics: c}
	}

	label, conf := r.table.Match(routeEvidence{c: c, band: r.Band(c.TotalDistance)})
	return RouteResult{Route: label, Confidence: conf, Characteristics: c}
}
