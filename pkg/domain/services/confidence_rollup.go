package services

import "github.com/vsinha/stockcheck/pkg/domain/entities"

// RollupPolicy selects how line confidences combine into a store confidence
type RollupPolicy int

const (
	// RollupStrict downgrades to MEDIUM when any line is MEDIUM and none is LOW
	RollupStrict RollupPolicy = iota
	// RollupLegacy only ever reports HIGH or LOW
	RollupLegacy
)

// String method for RollupPolicy enum
func (p RollupPolicy) String() string {
	switch p {
	case RollupStrict:
		return "Strict"
	case RollupLegacy:
		return "Legacy"
	default:
		return "Unknown"
	}
}

// ConfidenceRollup accumulates the overall confidence for one store.
// It starts at HIGH and only ever moves down.
type ConfidenceRollup struct {
	policy  RollupPolicy
	current entities.Confidence
}

// NewConfidenceRollup creates a rollup starting at HIGH
func NewConfidenceRollup(policy RollupPolicy) *ConfidenceRollup {
	return &ConfidenceRollup{
		policy:  policy,
		current: entities.ConfidenceHigh,
	}
}

// Observe folds one line's confidence into the rollup
func (r *ConfidenceRollup) Observe(c entities.Confidence) {
	switch c {
	case entities.ConfidenceLow:
		r.current = entities.ConfidenceLow
	case entities.ConfidenceMedium:
		if r.policy == RollupStrict && r.current != entities.ConfidenceLow {
			r.current = entities.ConfidenceMedium
		}
	}
}

// Result returns the accumulated confidence
func (r *ConfidenceRollup) Result() entities.Confidence {
	return r.current
}
