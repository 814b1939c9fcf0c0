package simulate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Reesemix123/the-coach-hub-sub008/pkg/logger"
)

// bulkPollInterval is how often the runner polls the play endpoint while
// waiting for the async pipeline to drain.
const bulkPollInterval = 200 * time.Millisecond

// Stats accumulates the simulation results.
type Stats struct {
	mu sync.Mutex

	Submitted  int
	Matched    int
	Mismatched int
	Errors     int
	Duplicates int
	Shed       int
}

func (s *Stats) record(matched bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Submitted++
	if matched {
		s.Matched++
	} else {
		s.Mismatched++
	}
}

func (s *Stats) recordError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Submitted++
	s.Errors++
}

// Runner drives archetypal gestures against a live instance.
type Runner struct {
	cfg    *Config
	client *client
	log    logger.Logger
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Runner{
		cfg:    cfg,
		client: newClient(cfg),
		log:    logger.Named("simulate"),
	}
}

// Run executes the full simulation: health check, synchronous
// classification rounds, and optionally a bulk reclassification pass
// through the async pipeline. It returns ErrVerification when any
// gesture came back with an unexpected label.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.client.Health(ctx); err != nil {
		return errors.Join(ErrHealth, err)
	}
	r.log.Info(ctx, "target healthy", logger.String("base_url", r.cfg.BaseURL))

	stats := &Stats{}
	r.runSync(ctx, stats)

	if r.cfg.Bulk {
		if err := r.runBulk(ctx, stats); err != nil {
			return err
		}
	}

	r.log.Info(ctx, "simulation complete",
		logger.Int("submitted", stats.Submitted),
		logger.Int("matched", stats.Matched),
		logger.Int("mismatched", stats.Mismatched),
		logger.Int("errors", stats.Errors),
		logger.Int("duplicates", stats.Duplicates),
		logger.Int("shed", stats.Shed),
	)

	if stats.Mismatched > 0 || stats.Errors > 0 {
		return fmt.Errorf("%w: %d mismatched, %d errors",
			ErrVerification, stats.Mismatched, stats.Errors)
	}
	return nil
}

// runSync fires every scenario at the synchronous classify endpoints,
// Rounds jittered copies each, bounded by the worker count.
func (r *Runner) runSync(ctx context.Context, stats *Stats) {
	sem := make(chan struct{}, max(r.cfg.Workers, 1))
	var wg sync.WaitGroup

	for _, base := range Scenarios() {
		for i := 0; i < r.cfg.Rounds; i++ {
			if ctx.Err() != nil {
				break
			}
			wg.Add(1)
			sem <- struct{}{}
			go func(s Scenario) {
				defer wg.Done()
				defer func() { <-sem }()
				r.runOne(ctx, s, stats)
			}(base.Jittered())
		}
	}
	wg.Wait()
}

func (r *Runner) runOne(ctx context.Context, s Scenario, stats *Stats) {
	got, err := r.client.Classify(ctx, s)
	if err != nil {
		stats.recordError()
		r.log.Warn(ctx, "classify failed", logger.String("scenario", s.Name), logger.Error(err))
		return
	}

	matched := got == s.Expect
	stats.record(matched)
	if !matched {
		r.log.Warn(ctx, "unexpected label",
			logger.String("scenario", s.Name),
			logger.String("kind", s.Kind),
			logger.String("want", s.Expect),
			logger.String("got", got),
		)
		return
	}
	if r.cfg.Verbose {
		r.log.Info(ctx, "label verified",
			logger.String("scenario", s.Name),
			logger.String("label", got),
		)
	}
}

// runBulk submits every scenario once through the async pipeline under a
// single synthetic play, re-submits the first to confirm the idempotency
// path, then polls the play endpoint until every outcome landed and
// verifies the stored labels.
func (r *Runner) runBulk(ctx context.Context, stats *Stats) error {
	playID := "sim-" + uuid.New().String()
	scenarios := Scenarios()
	expect := make(map[string]string, len(scenarios))

	var firstID string
	for _, base := range scenarios {
		s := base.Jittered()
		id := uuid.New().String()
		if firstID == "" {
			firstID = id
		}

		accepted, err := r.client.Submit(ctx, id, playID, s)
		if err != nil {
			if errors.Is(err, errBackpressure) {
				stats.mu.Lock()
				stats.Shed++
				stats.mu.Unlock()
				continue
			}
			return err
		}
		if accepted {
			expect[id] = s.Expect
		}

		// Exercise the duplicate path once.
		if id == firstID {
			if again, err := r.client.Submit(ctx, id, playID, s); err == nil && !again {
				stats.mu.Lock()
				stats.Duplicates++
				stats.mu.Unlock()
			}
		}
	}

	outcomes, err := r.waitForPlay(ctx, playID, len(expect))
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		want, ok := expect[o.AssignmentID]
		if !ok {
			continue
		}
		stats.record(o.Label == want)
		if o.Label != want {
			r.log.Warn(ctx, "unexpected stored label",
				logger.String("assignment_id", o.AssignmentID),
				logger.String("want", want),
				logger.String("got", o.Label),
			)
		}
	}

	r.log.Info(ctx, "bulk pass complete",
		logger.String("play_id", playID),
		logger.Int("outcomes", len(outcomes)),
	)
	return nil
}

// waitForPlay polls until the play holds want outcomes or the context or
// the configured timeout expires.
func (r *Runner) waitForPlay(ctx context.Context, playID string, want int) ([]outcomeResponse, error) {
	deadline := time.NewTimer(r.cfg.Timeout)
	defer deadline.Stop()
	tick := time.NewTicker(bulkPollInterval)
	defer tick.Stop()

	for {
		play, err := r.client.Play(ctx, playID)
		if err == nil && len(play.Outcomes) >= want {
			return play.Outcomes, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, fmt.Errorf("simulate: play %s drained %d of %d outcomes before timeout",
				playID, len(play.Outcomes), want)
		case <-tick.C:
		}
	}
}
