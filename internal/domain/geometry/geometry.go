// Package geometry provides the primitive path math shared by every
// assignment classifier: distance, segment angles, and field-side tests.
//
// Coordinates are diagram-local pixel space. Y grows downward, matching
// the drawing surface, so "upfield" (toward the opponent's end) means a
// decreasing y.
package geometry

import "math"

// Default field geometry constants.
const (
	// DefaultCenterBand is the half-width of the band around the field
	// center inside which an x coordinate counts as "center".
	DefaultCenterBand = 50.0

	degreesPerRadian = 180 / math.Pi
)

// Point is a single coordinate of a drawn path.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Path is the ordered point sequence produced by one drag gesture. It is
// treated as immutable once handed to a classifier and may be degenerate
// (fewer than two points).
type Path []Point

// Side identifies which side of the field an x coordinate falls on.
type Side string

// Field sides.
const (
	SideLeft   Side = "left"
	SideCenter Side = "center"
	SideRight  Side = "right"
)

// Field carries the per-template geometry owned by the diagram renderer.
// It varies per diagram template, so it is passed explicitly into every
// classification call rather than held as package state.
type Field struct {
	// CenterX is the x coordinate of the field center.
	CenterX float64 `json:"center_x"`

	// LineOfScrimmage is the y coordinate where the play begins.
	LineOfScrimmage float64 `json:"line_of_scrimmage"`

	// CenterBand is the half-width of the center band for side tests.
	// Zero means DefaultCenterBand.
	CenterBand float64 `json:"center_band,omitempty"`
}

// IsZero reports whether the field geometry was left unset by the caller.
func (f Field) IsZero() bool {
	return f == Field{}
}

// Band returns the effective center band half-width.
func (f Field) Band() float64 {
	if f.CenterBand > 0 {
		return f.CenterBand
	}
	return DefaultCenterBand
}

// Side reports which side of the field x falls on. Coordinates within
// the center band count as center.
func (f Field) Side(x float64) Side {
	switch band := f.Band(); {
	case x < f.CenterX-band:
		return SideLeft
	case x > f.CenterX+band:
		return SideRight
	default:
		return SideCenter
	}
}

// FromCenter returns the horizontal distance of x from the field center.
func (f Field) FromCenter(x float64) float64 {
	return math.Abs(x - f.CenterX)
}

// Distance returns the summed Euclidean length of the path's consecutive
// segments. Paths with fewer than two points have zero length.
func Distance(p Path) float64 {
	if len(p) < 2 {
		return 0
	}
	var total float64
	for i := 1; i < len(p); i++ {
		total += math.Hypot(p[i].X-p[i-1].X, p[i].Y-p[i-1].Y)
	}
	return total
}

// SegmentAngle returns the signed angle of the segment a->b in degrees.
// The vertical component is negated for the screen convention, so 0 is
// rightward, 90 is upfield, and -90 is downfield.
func SegmentAngle(a, b Point) float64 {
	return math.Atan2(-(b.Y - a.Y), b.X-a.X) * degreesPerRadian
}
