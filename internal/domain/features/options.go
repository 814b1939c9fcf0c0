// Package features converts a raw drawn path plus player alignment
// metadata into the Characteristics record consumed by the route
// classifier.
package features

// Option applies a configuration option to the Extractor.
type Option func(*Extractor)

// WithBreakAngle sets the minimum angle delta (degrees) that counts as a
// sharp cut.
func WithBreakAngle(degrees float64) Option {
	return func(e *Extractor) {
		if degrees > 0 && degrees < fullCircle/2 {
			e.breakAngle = degrees
		}
	}
}

// WithInsideTolerance sets the horizontal drift tolerance for players
// aligned in the center band.
func WithInsideTolerance(units float64) Option {
	return func(e *Extractor) {
		if units > 0 {
			e.insideTolerance = units
		}
	}
}

// WithLateralRatio sets the vertical/horizontal ratio at or below which
// a path counts as lateral.
func WithLateralRatio(ratio float64) Option {
	return func(e *Extractor) {
		if ratio > 0 {
			e.lateralRatio = ratio
		}
	}
}

// WithVerticalAngleWindow sets the final-segment absolute angle window
// that counts as a vertical finish.
func WithVerticalAngleWindow(minDegrees, maxDegrees float64) Option {
	return func(e *Extractor) {
		if minDegrees > 0 && maxDegrees > minDegrees {
			e.verticalAngleMin = minDegrees
			e.verticalAngleMax = maxDegrees
		}
	}
}

// WithCurvedMinPoints sets the point count above which an uncut path
// counts as curved.
func WithCurvedMinPoints(points int) Option {
	return func(e *Extractor) {
		if points > 1 {
			e.curvedMinPoints = points
		}
	}
}
