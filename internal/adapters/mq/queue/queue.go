// Package queue defines the contract for enqueuing and consuming
// assignment jobs awaiting classification.
package queue

import (
	"context"
	"sync"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
	"github.com/Reesemix123/the-coach-hub-sub008/pkg/metrics"
)

// defaultCapacity bounds the in-memory job queue.
const defaultCapacity = 10000

// Job is the payload type flowing through the queue.
type Job = model.Assignment

// Queue provides non-blocking enqueue and channel-based dequeue
// semantics.
type Queue interface {
	// Enqueue adds a job to the queue. Returns false if the queue is
	// full or closed and the job was not enqueued.
	Enqueue(ctx context.Context, j Job) bool

	// Dequeue returns a channel that receives jobs as they become
	// available. The channel is closed when the queue is closed.
	Dequeue(ctx context.Context) <-chan Job

	// Len returns the current number of queued jobs.
	Len(ctx context.Context) int

	// Close gracefully shuts down the queue. After closing, no new jobs
	// can be enqueued and the dequeue channel is closed.
	Close() error

	// IsClosed returns true if the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	jobs     chan Job
	capacity int

	mu     sync.RWMutex
	closed bool
}

// NewInMemoryQueue creates a new in-memory queue with configuration
// options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(q)
	}

	q.jobs = make(chan Job, q.capacity)
	metrics.UpdateQueueCapacity(q.capacity)

	return q
}

// Enqueue adds a job without blocking. A full or closed queue drops the
// job and reports false so the caller can surface backpressure.
func (q *InMemoryQueue) Enqueue(_ context.Context, j Job) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}

	select {
	case q.jobs <- j:
		metrics.UpdateQueueSize(len(q.jobs))
		return true
	default:
		metrics.RecordJobDropped()
		return false
	}
}

// Dequeue returns the receive side of the job channel.
func (q *InMemoryQueue) Dequeue(_ context.Context) <-chan Job {
	return q.jobs
}

// Len returns the current number of queued jobs.
func (q *InMemoryQueue) Len(_ context.Context) int {
	return len(q.jobs)
}

// Close shuts the queue down. Queued jobs remain readable until drained.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	q.closed = true
	close(q.jobs)
	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
