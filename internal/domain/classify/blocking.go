package classify

import "github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"

// BlockLabel is a named blocking assignment.
type BlockLabel string

// Blocking vocabulary. BlockPass is the guaranteed fallback.
const (
	BlockRun  BlockLabel = "Run Block"
	BlockPass BlockLabel = "Pass Block"
	BlockPull BlockLabel = "Pull"
)

// BlockingVocabulary returns the closed blocking label set.
func BlockingVocabulary() []BlockLabel {
	return []BlockLabel{BlockRun, BlockPass, BlockPull}
}

// Default blocking thresholds, in diagram units.
const (
	defaultPullMinHorizontal   = 60.0
	defaultPullMinDistance     = 80.0
	defaultRunBlockMaxDistance = 50.0
)

// BlockingResult is the classification of a drawn blocking path.
type BlockingResult struct {
	Assignment BlockLabel `json:"assignment"`
	Confidence Confidence `json:"confidence"`
}

// blockEvidence is what the blocking rule table sees.
type blockEvidence struct {
	netHorizontal float64
	totalDistance float64
}

// BlockingClassifier names a drawn blocking assignment.
type BlockingClassifier struct {
	pullMinHorizontal   float64
	pullMinDistance     float64
	runBlockMaxDistance float64

	table Table[blockEvidence, BlockLabel]
}

// BlockingOption applies a configuration option to the
// BlockingClassifier.
type BlockingOption func(*BlockingClassifier)

// WithPullThresholds sets the minimum rightward travel and total
// distance for a Pull.
func WithPullThresholds(minHorizontal, minDistance float64) BlockingOption {
	return func(b *BlockingClassifier) {
		if minHorizontal > 0 && minDistance > 0 {
			b.pullMinHorizontal = minHorizontal
			b.pullMinDistance = minDistance
		}
	}
}

// WithRunBlockMaxDistance sets the distance below which a block reads as
// a run block.
func WithRunBlockMaxDistance(units float64) BlockingOption {
	return func(b *BlockingClassifier) {
		if units > 0 {
			b.runBlockMaxDistance = units
		}
	}
}

// NewBlockingClassifier creates a blocking classifier with configuration
// options.
func NewBlockingClassifier(opts ...BlockingOption) *BlockingClassifier {
	b := &BlockingClassifier{
		pullMinHorizontal:   defaultPullMinHorizontal,
		pullMinDistance:     defaultPullMinDistance,
		runBlockMaxDistance: defaultRunBlockMaxDistance,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.table = Table[blockEvidence, BlockLabel]{
		{
			Name: "pull",
			When: func(ev blockEvidence) bool {
				return ev.netHorizontal > b.pullMinHorizontal &&
					ev.totalDistance > b.pullMinDistance
			},
			Label: BlockPull, Confidence: High,
		},
		{
			Name: "run-block",
			When: func(ev blockEvidence) bool {
				return ev.totalDistance < b.runBlockMaxDistance
			},
			Label: BlockRun, Confidence: Medium,
		},
		{
			Name:  "pass-block",
			When:  func(blockEvidence) bool { return true },
			Label: BlockPass, Confidence: Medium,
		},
	}

	return b
}

// Classify names the blocking assignment drawn in path. A degenerate
// path yields the pass-block fallback at low confidence.
func (b *BlockingClassifier) Classify(path geometry.Path) BlockingResult {
	if degenerate(path) {
		return BlockingResult{Assignment: BlockPass, Confidence: Low}
	}

	ev := blockEvidence{
		netHorizontal: path[len(path)-1].X - path[0].X,
		totalDistance: geometry.Distance(path),
	}
	label, conf := b.table.Match(ev)
	return BlockingResult{Assignment: label, Confidence: conf}
}
