// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/classify"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/features"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
)

// Kind identifies which classifier an assignment path belongs to.
type Kind string

// Assignment kinds.
const (
	KindRoute    Kind = "route"
	KindBlocking Kind = "blocking"
	KindCoverage Kind = "coverage"
	KindGap      Kind = "gap"
	KindMotion   Kind = "motion"
)

// Valid reports whether k names a known classifier.
func (k Kind) Valid() bool {
	switch k {
	case KindRoute, KindBlocking, KindCoverage, KindGap, KindMotion:
		return true
	default:
		return false
	}
}

// Assignment is one drawn player assignment submitted for bulk
// reclassification. Fields mirror the POST /assignments schema.
type Assignment struct {
	AssignmentID string              // unique id for idempotency
	PlayID       string              // owning play record
	Kind         Kind                // which classifier to run
	Path         geometry.Path       // the drawn gesture
	PlayerSide   features.PlayerSide // offense or defense
	PlayerStartX float64             // pre-snap alignment x
	PlayerStartY float64             // pre-snap alignment y
	Field        geometry.Field      // per-template geometry; zero = service default
}

// Outcome is the stored classification of one assignment.
type Outcome struct {
	AssignmentID string              `json:"assignment_id"`
	PlayID       string              `json:"play_id"`
	Kind         Kind                `json:"kind"`
	Label        string              `json:"label"`
	Confidence   classify.Confidence `json:"confidence"`
	Endpoint     *geometry.Point     `json:"endpoint,omitempty"`
	ClassifiedAt time.Time           `json:"classified_at"`
}
