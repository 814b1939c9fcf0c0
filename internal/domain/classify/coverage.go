package classify

import "github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"

// ZoneLabel is a named coverage responsibility.
type ZoneLabel string

// Coverage vocabulary. ZoneMan is the guaranteed fallback.
const (
	ZoneDeepThird ZoneLabel = "Deep Third"
	ZoneDeepHalf  ZoneLabel = "Deep Half"
	ZoneQuarter   ZoneLabel = "Quarter"
	ZoneHookCurl  ZoneLabel = "Hook/Curl"
	ZoneFlat      ZoneLabel = "Flat"
	ZoneMan       ZoneLabel = "Man"
)

// CoverageVocabulary returns the closed coverage label set.
func CoverageVocabulary() []ZoneLabel {
	return []ZoneLabel{ZoneDeepThird, ZoneDeepHalf, ZoneQuarter, ZoneHookCurl, ZoneFlat, ZoneMan}
}

// Default coverage thresholds, in diagram units.
const (
	defaultDeepDropMin    = 120.0 // drop beyond this reads as a deep zone
	defaultQuarterDropMin = 60.0
	defaultHookDropMin    = 20.0

	// defaultDeepThirdCenterRadius separates a middle deep third from an
	// outside deep half.
	defaultDeepThirdCenterRadius = 80.0

	// defaultFlatMinFromCenter is how far outside a shallow endpoint must
	// sit to read as flat coverage.
	defaultFlatMinFromCenter = 150.0
)

// CoverageResult is the classification of a drawn coverage drop. The
// endpoint is returned so the caller can render the zone radius.
type CoverageResult struct {
	Zone       ZoneLabel      `json:"zone"`
	Confidence Confidence     `json:"confidence"`
	Endpoint   geometry.Point `json:"endpoint"`
}

// coverageEvidence is what the coverage rule table sees.
type coverageEvidence struct {
	drop       float64
	fromCenter float64
}

// CoverageClassifier names a drawn zone-coverage drop.
type CoverageClassifier struct {
	deepDropMin           float64
	quarterDropMin        float64
	hookDropMin           float64
	deepThirdCenterRadius float64
	flatMinFromCenter     float64

	table Table[coverageEvidence, ZoneLabel]
}

// CoverageOption applies a configuration option to the
// CoverageClassifier.
type CoverageOption func(*CoverageClassifier)

// WithDropBands sets the hook/quarter/deep vertical drop boundaries.
func WithDropBands(hookMin, quarterMin, deepMin float64) CoverageOption {
	return func(c *CoverageClassifier) {
		if hookMin > 0 && quarterMin > hookMin && deepMin > quarterMin {
			c.hookDropMin = hookMin
			c.quarterDropMin = quarterMin
			c.deepDropMin = deepMin
		}
	}
}

// WithDeepThirdCenterRadius sets the center radius separating a deep
// third from a deep half.
func WithDeepThirdCenterRadius(units float64) CoverageOption {
	return func(c *CoverageClassifier) {
		if units > 0 {
			c.deepThirdCenterRadius = units
		}
	}
}

// WithFlatMinFromCenter sets how far outside a shallow endpoint must sit
// to read as flat coverage.
func WithFlatMinFromCenter(units float64) CoverageOption {
	return func(c *CoverageClassifier) {
		if units > 0 {
			c.flatMinFromCenter = units
		}
	}
}

// NewCoverageClassifier creates a coverage classifier with configuration
// options.
func NewCoverageClassifier(opts ...CoverageOption) *CoverageClassifier {
	c := &CoverageClassifier{
		deepDropMin:           defaultDeepDropMin,
		quarterDropMin:        defaultQuarterDropMin,
		hookDropMin:           defaultHookDropMin,
		deepThirdCenterRadius: defaultDeepThirdCenterRadius,
		flatMinFromCenter:     defaultFlatMinFromCenter,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.table = Table[coverageEvidence, ZoneLabel]{
		{
			Name: "deep-third",
			When: func(ev coverageEvidence) bool {
				return ev.drop > c.deepDropMin && ev.fromCenter <= c.deepThirdCenterRadius
			},
			Label: ZoneDeepThird, Confidence: High,
		},
		{
			Name: "deep-half",
			When: func(ev coverageEvidence) bool {
				return ev.drop > c.deepDropMin
			},
			Label: ZoneDeepHalf, Confidence: High,
		},
		{
			Name: "quarter",
			When: func(ev coverageEvidence) bool {
				return ev.drop > c.quarterDropMin
			},
			Label: ZoneQuarter, Confidence: Medium,
		},
		{
			Name: "hook-curl",
			When: func(ev coverageEvidence) bool {
				return ev.drop > c.hookDropMin
			},
			Label: ZoneHookCurl, Confidence: Medium,
		},
		{
			Name: "flat",
			When: func(ev coverageEvidence) bool {
				return ev.fromCenter > c.flatMinFromCenter
			},
			Label: ZoneFlat, Confidence: High,
		},
		{
			Name:  "man",
			When:  func(coverageEvidence) bool { return true },
			Label: ZoneMan, Confidence: Low,
		},
	}

	return c
}

// Classify names the coverage drop drawn in path. The player's pre-snap
// y coordinate anchors the vertical drop. A degenerate path yields the
// man fallback at low confidence with a synthesized endpoint.
func (c *CoverageClassifier) Classify(path geometry.Path, playerStartY float64, field geometry.Field) CoverageResult {
	end := endpoint(path, field)

	if degenerate(path) {
		return CoverageResult{Zone: ZoneMan, Confidence: Low, Endpoint: end}
	}

	ev := coverageEvidence{
		drop:       playerStartY - end.Y,
		fromCenter: field.FromCenter(end.X),
	}
	label, conf := c.table.Match(ev)
	return CoverageResult{Zone: label, Confidence: conf, Endpoint: end}
}
