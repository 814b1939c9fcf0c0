package repository

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
	"github.com/Reesemix123/the-coach-hub-sub008/pkg/metrics"
)

// defaultShardCount spreads outcome writes across locks. Classifications
// arrive from every pointer-up event during bulk jobs, so contention on
// a single mutex shows up quickly.
const defaultShardCount = 8

// shard holds one lock's worth of outcomes.
type shard struct {
	mu     sync.RWMutex
	byID   map[string]model.Outcome
	byPlay map[string]map[string]struct{} // playID -> assignment IDs
}

func newShard() *shard {
	return &shard{
		byID:   make(map[string]model.Outcome),
		byPlay: make(map[string]map[string]struct{}),
	}
}

// ShardedStore implements Store with per-shard locking keyed by
// assignment ID. Play lookups scan every shard.
type ShardedStore struct {
	shards []*shard
}

// NewShardedStore creates a sharded in-memory outcome store.
func NewShardedStore(opts ...StoreOption) *ShardedStore {
	s := &ShardedStore{}

	cfg := storeConfig{shardCount: defaultShardCount}
	for _, opt := range opts {
		opt(&cfg)
	}

	s.shards = make([]*shard, cfg.shardCount)
	for i := range s.shards {
		s.shards[i] = newShard()
	}

	return s
}

// shardFor picks the shard owning an assignment ID.
func (s *ShardedStore) shardFor(assignmentID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(assignmentID))
	return s.shards[h.Sum32()%uint32(len(s.shards))]
}

// Put stores the outcome for an assignment, replacing any previous one.
func (s *ShardedStore) Put(_ context.Context, o model.Outcome) error {
	if o.AssignmentID == "" {
		return ErrEmptyID
	}

	sh := s.shardFor(o.AssignmentID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if prev, ok := sh.byID[o.AssignmentID]; ok && prev.PlayID != o.PlayID {
		// The assignment moved plays; drop the stale index entry.
		delete(sh.byPlay[prev.PlayID], o.AssignmentID)
	}
	sh.byID[o.AssignmentID] = o

	if o.PlayID != "" {
		ids, ok := sh.byPlay[o.PlayID]
		if !ok {
			ids = make(map[string]struct{})
			sh.byPlay[o.PlayID] = ids
		}
		ids[o.AssignmentID] = struct{}{}
	}

	metrics.RecordOutcomeStored()
	return nil
}

// Get returns the outcome for an assignment ID.
func (s *ShardedStore) Get(_ context.Context, assignmentID string) (model.Outcome, error) {
	sh := s.shardFor(assignmentID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	o, ok := sh.byID[assignmentID]
	if !ok {
		return model.Outcome{}, ErrNotFound
	}
	return o, nil
}

// ByPlay returns all outcomes stored for a play.
func (s *ShardedStore) ByPlay(_ context.Context, playID string) ([]model.Outcome, error) {
	var out []model.Outcome
	for _, sh := range s.shards {
		sh.mu.RLock()
		for id := range sh.byPlay[playID] {
			if o, ok := sh.byID[id]; ok {
				out = append(out, o)
			}
		}
		sh.mu.RUnlock()
	}
	return out, nil
}

// Count returns the number of outcomes tracked.
func (s *ShardedStore) Count(_ context.Context) int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.byID)
		sh.mu.RUnlock()
	}
	return total
}
