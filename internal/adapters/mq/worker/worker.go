// Package worker defines the worker pool that drains the assignment
// queue, runs the matching classifier, and stores the outcome.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/adapters/mq/queue"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
	"github.com/Reesemix123/the-coach-hub-sub008/pkg/logger"
	"github.com/Reesemix123/the-coach-hub-sub008/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
)

// Job aliases what workers read off the queue.
type Job = model.Assignment

// Classifier runs the classifier matching a job's kind and returns the
// stored outcome shape.
type Classifier interface {
	ClassifyAssignment(ctx context.Context, a model.Assignment) (model.Outcome, error)
}

// Store persists classification outcomes.
type Store interface {
	Put(ctx context.Context, o model.Outcome) error
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Job
}

// Worker drains the queue until it is closed or the context is canceled.
type Worker struct {
	queue      Queue
	classifier Classifier
	store      Store
	name       string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewWorker creates a worker with configuration options.
func NewWorker(q Queue, c Classifier, s Store, opts ...Option) *Worker {
	w := &Worker{
		queue:      q,
		classifier: c,
		store:      s,
		name:       "worker",
		shutdown:   make(chan struct{}),
		done:       make(chan struct{}),
		logger:     logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = logger.Get().Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			if err := w.process(ctx, job); err != nil {
				w.logger.Error(ctx, "job failed", logger.Error(err))
			}
		}
	}
}

// process classifies a single job and stores the outcome.
func (w *Worker) process(ctx context.Context, job Job) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	outcome, err := w.classifier.ClassifyAssignment(ctx, job)
	if err != nil {
		metrics.RecordWorkerError()
		return fmt.Errorf("classify assignment %s: %w", job.AssignmentID, err)
	}

	if err := w.store.Put(ctx, outcome); err != nil {
		metrics.RecordWorkerError()
		return fmt.Errorf("store outcome %s: %w", job.AssignmentID, err)
	}

	w.logger.Debug(ctx, "assignment classified",
		logger.String("assignmentID", job.AssignmentID),
		logger.String("kind", string(job.Kind)),
		logger.String("label", outcome.Label),
		logger.String("confidence", string(outcome.Confidence)),
	)
	return nil
}

// Pool manages multiple workers over one queue.
type Pool struct {
	workers []*Worker
}

// NewPool creates a worker pool. A non-positive count defaults to a
// multiple of the CPU count.
func NewPool(workerCount int, q Queue, c Classifier, s Store) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	p := &Pool{workers: make([]*Worker, workerCount)}
	for i := range p.workers {
		p.workers[i] = NewWorker(q, c, s, WithName("worker-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerCount(workerCount)
	return p
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop gracefully stops all workers, bounding the wait per worker.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		select {
		case <-w.shutdown:
			// Already signaled.
		default:
			close(w.shutdown)
		}
	}
	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}
