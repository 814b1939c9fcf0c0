// Package repository defines the classification outcome store and
// errors. It holds the latest outcome per assignment so the editor can
// fetch bulk-reclassification results per play.
package repository

import (
	"context"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
)

// Store provides read/write access to classification outcomes.
type Store interface {
	// Put stores the outcome for an assignment, replacing any previous
	// one.
	Put(ctx context.Context, o model.Outcome) error

	// Get returns the outcome for an assignment ID.
	// Returns ErrNotFound if the assignment is unknown.
	Get(ctx context.Context, assignmentID string) (model.Outcome, error)

	// ByPlay returns all outcomes stored for a play, in no particular
	// order.
	ByPlay(ctx context.Context, playID string) ([]model.Outcome, error)

	// Count returns the number of outcomes tracked.
	Count(ctx context.Context) int
}
