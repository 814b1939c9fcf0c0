package classify

import "github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"

// GapLabel is a named blitz target gap, e.g. "Strong A-gap".
type GapLabel string

// Gap vocabulary: Strong/Weak crossed with the A through D gaps.
// GapStrongA doubles as the degenerate-path default.
const (
	GapStrongA GapLabel = "Strong A-gap"
	GapStrongB GapLabel = "Strong B-gap"
	GapStrongC GapLabel = "Strong C-gap"
	GapStrongD GapLabel = "Strong D-gap"
	GapWeakA   GapLabel = "Weak A-gap"
	GapWeakB   GapLabel = "Weak B-gap"
	GapWeakC   GapLabel = "Weak C-gap"
	GapWeakD   GapLabel = "Weak D-gap"
)

// GapVocabulary returns the closed gap label set.
func GapVocabulary() []GapLabel {
	return []GapLabel{
		GapStrongA, GapStrongB, GapStrongC, GapStrongD,
		GapWeakA, GapWeakB, GapWeakC, GapWeakD,
	}
}

// gapSide is the Strong/Weak prefix.
type gapSide string

const (
	gapStrong gapSide = "Strong"
	gapWeak   gapSide = "Weak"
)

// gapBucket is the A-D gap letter keyed off distance from center.
type gapBucket string

const (
	gapA gapBucket = "A"
	gapB gapBucket = "B"
	gapC gapBucket = "C"
	gapD gapBucket = "D"
)

// Default gap bucket boundaries: distance of the path endpoint from the
// field center, in diagram units.
const (
	defaultAGapMax = 30.0
	defaultBGapMax = 70.0
	defaultCGapMax = 120.0
)

// GapResult is the classification of a drawn blitz path.
type GapResult struct {
	Gap        GapLabel       `json:"gap"`
	Confidence Confidence     `json:"confidence"`
	Endpoint   geometry.Point `json:"endpoint"`
}

// gapEvidence is what the gap rule table sees.
type gapEvidence struct {
	fromCenter float64
}

// GapClassifier names the gap a drawn blitz path attacks. The side label
// derives purely from which side of the field center the endpoint lies;
// the blitzer's own alignment does not enter the computation.
type GapClassifier struct {
	aGapMax float64
	bGapMax float64
	cGapMax float64

	table Table[gapEvidence, gapBucket]
}

// GapOption applies a configuration option to the GapClassifier.
type GapOption func(*GapClassifier)

// WithGapBuckets sets the A/B/C bucket boundaries; everything at or
// beyond the C boundary is a D gap.
func WithGapBuckets(aMax, bMax, cMax float64) GapOption {
	return func(g *GapClassifier) {
		if aMax > 0 && bMax > aMax && cMax > bMax {
			g.aGapMax = aMax
			g.bGapMax = bMax
			g.cGapMax = cMax
		}
	}
}

// NewGapClassifier creates a gap classifier with configuration options.
func NewGapClassifier(opts ...GapOption) *GapClassifier {
	g := &GapClassifier{
		aGapMax: defaultAGapMax,
		bGapMax: defaultBGapMax,
		cGapMax: defaultCGapMax,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.table = Table[gapEvidence, gapBucket]{
		{
			Name:  "a-gap",
			When:  func(ev gapEvidence) bool { return ev.fromCenter < g.aGapMax },
			Label: gapA, Confidence: High,
		},
		{
			Name:  "b-gap",
			When:  func(ev gapEvidence) bool { return ev.fromCenter < g.bGapMax },
			Label: gapB, Confidence: High,
		},
		{
			Name:  "c-gap",
			When:  func(ev gapEvidence) bool { return ev.fromCenter < g.cGapMax },
			Label: gapC, Confidence: Medium,
		},
		{
			Name:  "d-gap",
			When:  func(gapEvidence) bool { return true },
			Label: gapD, Confidence: Medium,
		},
	}

	return g
}

// Classify names the gap attacked by the blitz path. A degenerate path
// yields the Strong A-gap default at low confidence with a synthesized
// endpoint.
func (g *GapClassifier) Classify(path geometry.Path, field geometry.Field) GapResult {
	end := endpoint(path, field)

	if degenerate(path) {
		return GapResult{Gap: GapStrongA, Confidence: Low, Endpoint: end}
	}

	bucket, conf := g.table.Match(gapEvidence{fromCenter: field.FromCenter(end.X)})

	side := gapWeak
	if end.X >= field.CenterX {
		side = gapStrong
	}

	return GapResult{
		Gap:        GapLabel(string(side) + " " + string(bucket) + "-gap"),
		Confidence: conf,
		Endpoint:   end,
	}
}
