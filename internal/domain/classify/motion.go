package classify

import (
	"math"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
)

// MotionLabel is a named pre-snap motion.
type MotionLabel string

// Motion vocabulary. MotionShift is the guaranteed fallback.
const (
	MotionJet    MotionLabel = "Jet"
	MotionOrbit  MotionLabel = "Orbit"
	MotionAcross MotionLabel = "Across"
	MotionReturn MotionLabel = "Return"
	MotionShift  MotionLabel = "Shift"
)

// MotionVocabulary returns the closed motion label set.
func MotionVocabulary() []MotionLabel {
	return []MotionLabel{MotionJet, MotionOrbit, MotionAcross, MotionReturn, MotionShift}
}

// MotionDirection reports whether the motion closes on the field center.
type MotionDirection string

// Motion directions. Toward/away is judged against the player's pre-snap
// alignment, not the drawn start point.
const (
	TowardCenter   MotionDirection = "toward-center"
	AwayFromCenter MotionDirection = "away-from-center"
)

// Default motion thresholds, in diagram units.
const (
	defaultJetMinHorizontal = 100.0
	// defaultJetBehindScrimmage is how far behind the line of scrimmage a
	// jet sweep path must finish.
	defaultJetBehindScrimmage = 20.0

	defaultOrbitMinPoints     = 3 // strictly more points than this
	defaultOrbitMinVertical   = 30.0
	defaultOrbitMinHorizontal = 60.0

	defaultAcrossMinHorizontal = 80.0
	defaultAcrossMaxVertical   = 30.0

	defaultReturnMinHorizontal = 40.0
)

// MotionResult is the classification of a drawn pre-snap motion.
type MotionResult struct {
	Motion     MotionLabel     `json:"motion"`
	Confidence Confidence      `json:"confidence"`
	Direction  MotionDirection `json:"direction"`
	Endpoint   geometry.Point  `json:"endpoint"`
}

// motionEvidence is what the motion rule table sees.
type motionEvidence struct {
	horizontal float64 // |end.x - start.x| of the drawn path
	vertical   float64 // |end.y - start.y| of the drawn path
	points     int
	direction  MotionDirection
	endY       float64
	scrimmageY float64
}

// MotionClassifier names a drawn pre-snap motion.
type MotionClassifier struct {
	jetMinHorizontal    float64
	jetBehindScrimmage  float64
	orbitMinPoints      int
	orbitMinVertical    float64
	orbitMinHorizontal  float64
	acrossMinHorizontal float64
	acrossMaxVertical   float64
	returnMinHorizontal float64

	table Table[motionEvidence, MotionLabel]
}

// MotionOption applies a configuration option to the MotionClassifier.
type MotionOption func(*MotionClassifier)

// WithJetThresholds sets the minimum sweep width and backfield depth for
// a Jet.
func WithJetThresholds(minHorizontal, behindScrimmage float64) MotionOption {
	return func(m *MotionClassifier) {
		if minHorizontal > 0 && behindScrimmage > 0 {
			m.jetMinHorizontal = minHorizontal
			m.jetBehindScrimmage = behindScrimmage
		}
	}
}

// WithAcrossThresholds sets the width and flatness bounds for an Across.
func WithAcrossThresholds(minHorizontal, maxVertical float64) MotionOption {
	return func(m *MotionClassifier) {
		if minHorizontal > 0 && maxVertical > 0 {
			m.acrossMinHorizontal = minHorizontal
			m.acrossMaxVertical = maxVertical
		}
	}
}

// WithReturnMinHorizontal sets the minimum width for a Return.
func WithReturnMinHorizontal(units float64) MotionOption {
	return func(m *MotionClassifier) {
		if units > 0 {
			m.returnMinHorizontal = units
		}
	}
}

// NewMotionClassifier creates a motion classifier with configuration
// options.
func NewMotionClassifier(opts ...MotionOption) *MotionClassifier {
	m := &MotionClassifier{
		jetMinHorizontal:    defaultJetMinHorizontal,
		jetBehindScrimmage:  defaultJetBehindScrimmage,
		orbitMinPoints:      defaultOrbitMinPoints,
		orbitMinVertical:    defaultOrbitMinVertical,
		orbitMinHorizontal:  defaultOrbitMinHorizontal,
		acrossMinHorizontal: defaultAcrossMinHorizontal,
		acrossMaxVertical:   defaultAcrossMaxVertical,
		returnMinHorizontal: defaultReturnMinHorizontal,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.table = Table[motionEvidence, MotionLabel]{
		{
			Name: "jet",
			When: func(ev motionEvidence) bool {
				return ev.horizontal > m.jetMinHorizontal &&
					ev.direction == TowardCenter &&
					ev.endY > ev.scrimmageY+m.jetBehindScrimmage
			},
			Label: MotionJet, Confidence: High,
		},
		{
			Name: "orbit",
			When: func(ev motionEvidence) bool {
				return ev.points > m.orbitMinPoints &&
					ev.vertical > m.orbitMinVertical &&
					ev.horizontal > m.orbitMinHorizontal
			},
			Label: MotionOrbit, Confidence: Medium,
		},
		{
			Name: "across",
			When: func(ev motionEvidence) bool {
				return ev.horizontal > m.acrossMinHorizontal &&
					ev.vertical < m.acrossMaxVertical
			},
			Label: MotionAcross, Confidence: High,
		},
		{
			Name: "return",
			When: func(ev motionEvidence) bool {
				return ev.direction == AwayFromCenter &&
					ev.horizontal > m.returnMinHorizontal
			},
			Label: MotionReturn, Confidence: Medium,
		},
		{
			Name:  "shift",
			When:  func(motionEvidence) bool { return true },
			Label: MotionShift, Confidence: Low,
		},
	}

	return m
}

// Classify names the pre-snap motion drawn in path. The toward/away
// direction compares the endpoint against the player's pre-snap
// alignment x. A degenerate path yields the shift fallback at low
// confidence with a synthesized endpoint.
func (m *MotionClassifier) Classify(path geometry.Path, playerStartX float64, field geometry.Field) MotionResult {
	end := endpoint(path, field)

	direction := AwayFromCenter
	if field.FromCenter(end.X) < field.FromCenter(playerStartX) {
		direction = TowardCenter
	}

	if degenerate(path) {
		return MotionResult{Motion: MotionShift, Confidence: Low, Direction: direction, Endpoint: end}
	}

	start := path[0]
	ev := motionEvidence{
		horizontal: math.Abs(end.X - start.X),
		vertical:   math.Abs(end.Y - start.Y),
		points:     len(path),
		direction:  direction,
		endY:       end.Y,
		scrimmageY: field.LineOfScrimmage,
	}
	label, conf := m.table.Match(ev)
	return MotionResult{Motion: label, Confidence: conf, Direction: direction, Endpoint: end}
}
