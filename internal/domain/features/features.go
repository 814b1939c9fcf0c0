// Package features converts a raw drawn path plus player alignment
// metadata into the Characteristics record consumed by the route
// classifier.
package features

import (
	"math"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
)

// Default extraction thresholds. These are product-tuned values carried
// over from the original diagramming tool; they are configurable so they
// can be retuned per diagram scale without touching decision logic.
const (
	// defaultBreakAngle is the minimum consecutive-segment angle delta
	// that counts as a sharp cut. Deltas within breakAngle of a full
	// reversal (360 - breakAngle) are treated as continuation, not a cut.
	defaultBreakAngle = 30.0

	// defaultInsideTolerance bounds the net horizontal drift that still
	// counts as "moving inside" for a player aligned in the center band.
	defaultInsideTolerance = 20.0

	// defaultLateralRatio is the |netVertical| / |netHorizontal| ratio at
	// or below which a path counts as lateral.
	defaultLateralRatio = 0.5

	// defaultVerticalAngleMin/Max bound the final-segment absolute angle
	// that counts as a vertical finish.
	defaultVerticalAngleMin = 60.0
	defaultVerticalAngleMax = 120.0

	// defaultCurvedMinPoints is the point count above which a path
	// without a sharp cut counts as curved rather than straight.
	defaultCurvedMinPoints = 4

	fullCircle = 360.0
)

// PlayerSide identifies which unit the drawn player belongs to.
type PlayerSide string

// Player sides.
const (
	SideOffense PlayerSide = "offense"
	SideDefense PlayerSide = "defense"
)

// Direction is the dominant vertical tendency of a path.
type Direction string

// Path directions.
const (
	DirectionUpfield   Direction = "upfield"
	DirectionDownfield Direction = "downfield"
	DirectionLateral   Direction = "lateral"
)

// Curvature grades the shape of a path.
type Curvature string

// Path curvatures.
const (
	CurvatureStraight Curvature = "straight"
	CurvatureBreaking Curvature = "breaking"
	CurvatureCurved   Curvature = "curved"
)

// EndDirection is where the path is heading when it finishes.
type EndDirection string

// End directions.
const (
	EndInside   EndDirection = "inside"
	EndOutside  EndDirection = "outside"
	EndVertical EndDirection = "vertical"
	EndBack     EndDirection = "back"
)

// Characteristics is the feature record extracted from a drawn path.
type Characteristics struct {
	// TotalDistance is the summed segment length of the path.
	TotalDistance float64 `json:"total_distance"`

	// NetVertical is start.y - end.y; positive means toward the
	// opponent's end.
	NetVertical float64 `json:"net_vertical"`

	// NetHorizontal is end.x - start.x; positive means rightward.
	NetHorizontal float64 `json:"net_horizontal"`

	// Direction is the dominant vertical tendency.
	Direction Direction `json:"direction"`

	// Curvature grades the path shape.
	Curvature Curvature `json:"curvature"`

	// EndDirection is where the path finishes.
	EndDirection EndDirection `json:"end_direction"`

	// MovingInside reports whether the net horizontal drift points
	// toward the field center relative to the player's starting side.
	MovingInside bool `json:"moving_inside"`
}

// HasBreak reports whether the path contains one sharp cut.
func (c Characteristics) HasBreak() bool {
	return c.Curvature == CurvatureBreaking
}

// Input bundles the raw path with the player alignment metadata the
// editor supplies alongside it. PlayerSide is part of the editor
// contract and carried for completeness; extraction today is
// side-agnostic (netVertical is always start.y - end.y).
type Input struct {
	Path         geometry.Path
	PlayerSide   PlayerSide
	PlayerStartX float64
}

// Extractor computes Characteristics from a drawn path. It is stateless
// and safe for concurrent use.
type Extractor struct {
	breakAngle       float64
	insideTolerance  float64
	lateralRatio     float64
	verticalAngleMin float64
	verticalAngleMax float64
	curvedMinPoints  int
}

// NewExtractor creates an extractor with configuration options.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		breakAngle:       defaultBreakAngle,
		insideTolerance:  defaultInsideTolerance,
		lateralRatio:     defaultLateralRatio,
		verticalAngleMin: defaultVerticalAngleMin,
		verticalAngleMax: defaultVerticalAngleMax,
		curvedMinPoints:  defaultCurvedMinPoints,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract computes the Characteristics of in.Path against the given
// field geometry. It is total: a degenerate path yields a zero-movement
// record rather than an error.
func (e *Extractor) Extract(in Input, field geometry.Field) Characteristics {
	c := Characteristics{}

	path := in.Path
	if len(path) >= 2 {
		start, end := path[0], path[len(path)-1]
		c.TotalDistance = geometry.Distance(path)
		c.NetVertical = start.Y - end.Y
		c.NetHorizontal = end.X - start.X
	}

	c.MovingInside = e.movingInside(c.NetHorizontal, in.PlayerStartX, field)
	c.Direction = e.direction(c.NetVertical, c.NetHorizontal)

	breakAt := e.firstBreak(path)
	c.Curvature = e.curvature(path, breakAt)
	c.EndDirection = e.endDirection(path, c)

	return c
}

// movingInside reports whether netHorizontal points toward the field
// center from the player's pre-snap side. Players aligned in the center
// band count as inside when the drift stays within the tolerance.
func (e *Extractor) movingInside(netHorizontal, startX float64, field geometry.Field) bool {
	switch field.Side(startX) {
	case geometry.SideLeft:
		return netHorizontal > 0
	case geometry.SideRight:
		return netHorizontal < 0
	default:
		return math.Abs(netHorizontal) < e.insideTolerance
	}
}

// direction classifies the dominant vertical tendency.
func (e *Extractor) direction(netVertical, netHorizontal float64) Direction {
	if math.Abs(netVertical) <= e.lateralRatio*math.Abs(netHorizontal) {
		return DirectionLateral
	}
	if netVertical > 0 {
		return DirectionUpfield
	}
	return DirectionDownfield
}

// firstBreak scans consecutive segment-angle deltas and returns the
// segment index of the first sharp cut, or -1. Deltas are normalized to
// [0, 360); values within breakAngle of 0 (near-parallel continuation)
// or of 360 (near reversal) do not count, modeling one deliberate cut.
func (e *Extractor) firstBreak(path geometry.Path) int {
	if len(path) < 3 {
		return -1
	}
	prev := geometry.SegmentAngle(path[0], path[1])
	for i := 2; i < len(path); i++ {
		cur := geometry.SegmentAngle(path[i-1], path[i])
		delta := math.Mod(cur-prev, fullCircle)
		if delta < 0 {
			delta += fullCircle
		}
		if delta > e.breakAngle && delta < fullCircle-e.breakAngle {
			return i - 1
		}
		prev = cur
	}
	return -1
}

// curvature grades the path shape: one sharp cut wins over smooth
// curvature, which wins over a straight line.
func (e *Extractor) curvature(path geometry.Path, breakAt int) Curvature {
	if breakAt >= 0 {
		return CurvatureBreaking
	}
	if len(path) > e.curvedMinPoints {
		return CurvatureCurved
	}
	return CurvatureStraight
}

// endDirection classifies where the path finishes: back toward the line
// of scrimmage, vertically upfield, or laterally inside/outside.
func (e *Extractor) endDirection(path geometry.Path, c Characteristics) EndDirection {
	if c.NetVertical < 0 {
		return EndBack
	}
	if len(path) >= 2 {
		last := math.Abs(geometry.SegmentAngle(path[len(path)-2], path[len(path)-1]))
		if last > e.verticalAngleMin && last < e.verticalAngleMax {
			return EndVertical
		}
	}
	if c.MovingInside {
		return EndInside
	}
	return EndOutside
}
