// Package dedupe defines the interface for idempotency tracking of
// submitted assignment jobs.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"
)

// defaultMaxSize bounds the number of assignment IDs kept in memory.
const defaultMaxSize = 50000

// Deduper records seen assignment IDs to ensure at-most-once
// classification of a submitted job.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if
	// not. Returns true if id was already seen, false if it was newly
	// recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an ID from the seen list, allowing a retry. Used
	// when a job was marked seen but could not be enqueued.
	Unrecord(ctx context.Context, id string)

	// Size returns the current number of tracked IDs.
	Size() int64
}

// inMemoryDeduper implements Deduper with a map plus a FIFO ring of IDs
// for bounded eviction. maxSize <= 0 disables eviction.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	ring    []string
	next    int
	maxSize int
	size    atomic.Int64
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration
// options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: defaultMaxSize,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.seen = make(map[string]struct{})
	if d.maxSize > 0 {
		d.ring = make([]string, d.maxSize)
	}

	return d
}

// SeenAndRecord atomically checks if id was seen and records it if not.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return true
	}

	if d.maxSize > 0 {
		// Evict the oldest slot before reusing it. The slot may hold an
		// ID that was already unrecorded; only live entries count.
		if old := d.ring[d.next]; old != "" {
			if _, ok := d.seen[old]; ok {
				delete(d.seen, old)
				d.size.Add(-1)
			}
		}
		d.ring[d.next] = id
		d.next = (d.next + 1) % d.maxSize
	}

	d.seen[id] = struct{}{}
	d.size.Add(1)
	return false
}

// Unrecord removes an ID from the seen list. The ring slot keeps the
// stale ID; eviction tolerates entries already removed from the map.
func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; !ok {
		return
	}
	delete(d.seen, id)
	d.size.Add(-1)
}

// Size returns the current number of tracked IDs.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}
