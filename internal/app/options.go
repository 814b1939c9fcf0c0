package app

import (
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
	"github.com/Reesemix123/the-coach-hub-sub008/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithField sets the default field template used when a request carries
// no per-diagram geometry.
func WithField(f geometry.Field) Option {
	return func(s *Service) {
		if !f.IsZero() {
			s.defaultField = f
		}
	}
}

// WithDistanceBands sets the route short/deep band boundaries.
func WithDistanceBands(shortMax, deepMin float64) Option {
	return func(s *Service) {
		if shortMax > 0 && deepMin > shortMax {
			s.shortMax = shortMax
			s.deepMin = deepMin
		}
	}
}

// WithBreakAngle sets the sharp-cut angle threshold in degrees.
func WithBreakAngle(degrees float64) Option {
	return func(s *Service) {
		if degrees > 0 {
			s.breakAngle = degrees
		}
	}
}

// WithInsideTolerance sets the center-band horizontal drift tolerance.
func WithInsideTolerance(units float64) Option {
	return func(s *Service) {
		if units > 0 {
			s.insideTolerance = units
		}
	}
}

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the job queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the idempotency cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithShardCount sets the outcome store's shard count.
func WithShardCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.shardCount = count
		}
	}
}
