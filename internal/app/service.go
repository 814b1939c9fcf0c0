// Package app provides the core business service that implements the
// dependencies required by the HTTP API: synchronous classification for
// live preview, and the asynchronous bulk reclassification pipeline.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/adapters/mq/queue"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/adapters/mq/worker"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/adapters/repository"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/classify"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/dedupe"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/features"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/suggest"
	"github.com/Reesemix123/the-coach-hub-sub008/pkg/logger"
	"github.com/Reesemix123/the-coach-hub-sub008/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultQueueSize  = 10000
	defaultDedupeSize = 50000
)

// Service wires the five classifiers and the suggestion ranker behind
// the API, and runs the bulk reclassification pipeline.
//
// The classify methods work as soon as New returns. The pipeline
// methods (SeenAndRecord, Unrecord, Enqueue, Outcome, PlayOutcomes)
// need Start: before it runs, writes are rejected and reads return
// ErrNotStarted.
type Service struct {
	mu sync.RWMutex

	// Classification core. Stateless; built in New.
	route    *classify.RouteClassifier
	blocking *classify.BlockingClassifier
	coverage *classify.CoverageClassifier
	gap      *classify.GapClassifier
	motion   *classify.MotionClassifier
	ranker   *suggest.Ranker

	// Bulk pipeline. Built in Start.
	outcomes repository.Store
	deduper  dedupe.Deduper
	jobQueue queue.Queue
	pool     *worker.Pool

	// Configuration.
	defaultField    geometry.Field
	shortMax        float64
	deepMin         float64
	breakAngle      float64
	insideTolerance float64
	workerCount     int
	queueSize       int
	dedupeSize      int
	shardCount      int

	started bool
	logger  logger.Logger
}

// New constructs a Service with default configuration. The classifiers
// are ready immediately; Start brings up the async pipeline.
func New(opts ...Option) *Service {
	s := &Service{
		defaultField: geometry.Field{CenterX: 600, LineOfScrimmage: 400},
		queueSize:    defaultQueueSize,
		dedupeSize:   defaultDedupeSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	extractorOpts := []features.Option{}
	if s.breakAngle > 0 {
		extractorOpts = append(extractorOpts, features.WithBreakAngle(s.breakAngle))
	}
	if s.insideTolerance > 0 {
		extractorOpts = append(extractorOpts, features.WithInsideTolerance(s.insideTolerance))
	}
	extractor := features.NewExtractor(extractorOpts...)

	routeOpts := []classify.RouteOption{classify.WithExtractor(extractor)}
	if s.shortMax > 0 && s.deepMin > s.shortMax {
		routeOpts = append(routeOpts, classify.WithDistanceBands(s.shortMax, s.deepMin))
	}
	s.route = classify.NewRouteClassifier(routeOpts...)
	s.blocking = classify.NewBlockingClassifier()
	s.coverage = classify.NewCoverageClassifier()
	s.gap = classify.NewGapClassifier()
	s.motion = classify.NewMotionClassifier()
	s.ranker = suggest.NewRanker()

	return s
}

// Start initializes and starts the bulk reclassification pipeline.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.outcomes = repository.NewShardedStore(repository.WithShardCount(s.shardCount))
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.jobQueue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.pool = worker.NewPool(s.workerCount, s.jobQueue, s, s.outcomes)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "classification service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
		logger.Float64("fieldCenterX", s.defaultField.CenterX),
	)
	return nil
}

// Stop gracefully shuts down the bulk pipeline.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping classification service...")

	if q, ok := s.jobQueue.(*queue.InMemoryQueue); ok {
		_ = q.Close()
	}
	if s.pool != nil {
		s.pool.Stop()
	}

	s.started = false
	s.logger.Info(ctx, "classification service stopped")
}

// fieldOrDefault substitutes the configured field template when the
// caller left the per-request geometry unset.
func (s *Service) fieldOrDefault(f geometry.Field) geometry.Field {
	if f.IsZero() {
		return s.defaultField
	}
	return f
}

// instrument records the shared per-call metrics for a classifier kind.
func instrument(kind model.Kind, path geometry.Path, start time.Time) {
	metrics.RecordClassificationDuration(string(kind), float64(time.Since(start).Microseconds())/1000)
	metrics.ObservePathPoints(string(kind), len(path))
	if len(path) < 2 {
		metrics.RecordDegeneratePath(string(kind))
	}
}

// ClassifyRoute names a drawn route and returns the ranked override
// options alongside the classification.
func (s *Service) ClassifyRoute(_ context.Context, path geometry.Path, side features.PlayerSide, playerStartX float64, field geometry.Field) (classify.RouteResult, []classify.RouteLabel) {
	defer instrument(model.KindRoute, path, time.Now())

	res := s.route.Classify(features.Input{
		Path:         path,
		PlayerSide:   side,
		PlayerStartX: playerStartX,
	}, s.fieldOrDefault(field))

	options := s.ranker.RouteOptions(res)
	metrics.RecordClassification(string(model.KindRoute), string(res.Route), string(res.Confidence))
	metrics.RecordSuggestionCount(len(options))
	return res, options
}

// ClassifyBlocking names a drawn blocking assignment.
func (s *Service) ClassifyBlocking(_ context.Context, path geometry.Path) classify.BlockingResult {
	defer instrument(model.KindBlocking, path, time.Now())

	res := s.blocking.Classify(path)
	metrics.RecordClassification(string(model.KindBlocking), string(res.Assignment), string(res.Confidence))
	return res
}

// ClassifyCoverage names a drawn zone-coverage drop.
func (s *Service) ClassifyCoverage(_ context.Context, path geometry.Path, playerStartY float64, field geometry.Field) classify.CoverageResult {
	defer instrument(model.KindCoverage, path, time.Now())

	res := s.coverage.Classify(path, playerStartY, s.fieldOrDefault(field))
	metrics.RecordClassification(string(model.KindCoverage), string(res.Zone), string(res.Confidence))
	return res
}

// ClassifyGap names the gap a drawn blitz path attacks.
func (s *Service) ClassifyGap(_ context.Context, path geometry.Path, field geometry.Field) classify.GapResult {
	defer instrument(model.KindGap, path, time.Now())

	res := s.gap.Classify(path, s.fieldOrDefault(field))
	metrics.RecordClassification(string(model.KindGap), string(res.Gap), string(res.Confidence))
	return res
}

// ClassifyMotion names a drawn pre-snap motion.
func (s *Service) ClassifyMotion(_ context.Context, path geometry.Path, playerStartX float64, field geometry.Field) classify.MotionResult {
	defer instrument(model.KindMotion, path, time.Now())

	res := s.motion.Classify(path, playerStartX, s.fieldOrDefault(field))
	metrics.RecordClassification(string(model.KindMotion), string(res.Motion), string(res.Confidence))
	return res
}

// ClassifyAssignment dispatches a bulk job to the classifier matching
// its kind and shapes the stored outcome. It implements
// worker.Classifier.
func (s *Service) ClassifyAssignment(ctx context.Context, a model.Assignment) (model.Outcome, error) {
	o := model.Outcome{
		AssignmentID: a.AssignmentID,
		PlayID:       a.PlayID,
		Kind:         a.Kind,
		ClassifiedAt: time.Now().UTC(),
	}

	switch a.Kind {
	case model.KindRoute:
		res, _ := s.ClassifyRoute(ctx, a.Path, a.PlayerSide, a.PlayerStartX, a.Field)
		o.Label = string(res.Route)
		o.Confidence = res.Confidence
	case model.KindBlocking:
		res := s.ClassifyBlocking(ctx, a.Path)
		o.Label = string(res.Assignment)
		o.Confidence = res.Confidence
	case model.KindCoverage:
		res := s.ClassifyCoverage(ctx, a.Path, a.PlayerStartY, a.Field)
		o.Label = string(res.Zone)
		o.Confidence = res.Confidence
		o.Endpoint = &res.Endpoint
	case model.KindGap:
		res := s.ClassifyGap(ctx, a.Path, a.Field)
		o.Label = string(res.Gap)
		o.Confidence = res.Confidence
		o.Endpoint = &res.Endpoint
	case model.KindMotion:
		res := s.ClassifyMotion(ctx, a.Path, a.PlayerStartX, a.Field)
		o.Label = string(res.Motion)
		o.Confidence = res.Confidence
		o.Endpoint = &res.Endpoint
	default:
		return model.Outcome{}, ErrUnknownKind
	}

	return o, nil
}

// pipeline snapshots the async collaborators. They are nil until Start
// builds them.
func (s *Service) pipeline() (dedupe.Deduper, queue.Queue, repository.Store) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deduper, s.jobQueue, s.outcomes
}

// SeenAndRecord atomically checks if an assignment id was seen and
// records it if not. Returns true if it was already seen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	deduper, _, _ := s.pipeline()
	if deduper == nil {
		return false
	}

	seen := deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordJobDuplicate()
	}
	return seen
}

// Unrecord removes an assignment ID from the seen list, allowing a
// retry after backpressure.
func (s *Service) Unrecord(ctx context.Context, id string) {
	deduper, _, _ := s.pipeline()
	if deduper == nil {
		return
	}
	deduper.Unrecord(ctx, id)
}

// Enqueue submits an assignment for asynchronous classification.
// Returns false on backpressure, or before Start has run.
func (s *Service) Enqueue(ctx context.Context, a model.Assignment) bool {
	_, jobQueue, _ := s.pipeline()
	if jobQueue == nil {
		return false
	}

	ok := jobQueue.Enqueue(ctx, a)
	if ok {
		metrics.RecordJobAccepted()
		metrics.UpdateQueueSize(jobQueue.Len(ctx))
	}
	return ok
}

// Outcome returns the stored classification for one assignment.
func (s *Service) Outcome(ctx context.Context, assignmentID string) (model.Outcome, error) {
	_, _, outcomes := s.pipeline()
	if outcomes == nil {
		return model.Outcome{}, ErrNotStarted
	}
	return outcomes.Get(ctx, assignmentID)
}

// PlayOutcomes returns every stored classification for a play.
func (s *Service) PlayOutcomes(ctx context.Context, playID string) ([]model.Outcome, error) {
	_, _, outcomes := s.pipeline()
	if outcomes == nil {
		return nil, ErrNotStarted
	}
	return outcomes.ByPlay(ctx, playID)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}

	if s.started {
		ctx := context.Background()
		queueLen := s.jobQueue.Len(ctx)
		stored := s.outcomes.Count(ctx)

		stats["queueLength"] = queueLen
		stats["storedOutcomes"] = stored
		stats["seenJobs"] = s.deduper.Size()

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateStoredOutcomes(stored)
	}

	return stats
}
