package services

import (
	"testing"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
)

func TestConfidenceRollup(t *testing.T) {
	high, medium, low := entities.ConfidenceHigh, entities.ConfidenceMedium, entities.ConfidenceLow

	testCases := []struct {
		name     string
		policy   RollupPolicy
		observed []entities.Confidence
		expected entities.Confidence
	}{
		{"no lines", RollupStrict, nil, high},
		{"all high", RollupStrict, []entities.Confidence{high, high}, high},
		{"one medium", RollupStrict, []entities.Confidence{high, medium, high}, medium},
		{"low wins over medium", RollupStrict, []entities.Confidence{medium, low}, low},
		{"medium never upgrades low", RollupStrict, []entities.Confidence{low, medium}, low},
		{"legacy ignores medium", RollupLegacy, []entities.Confidence{high, medium}, high},
		{"legacy keeps low", RollupLegacy, []entities.Confidence{medium, low, high}, low},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rollup := NewConfidenceRollup(tc.policy)
			for _, c := range tc.observed {
				rollup.Observe(c)
			}
			if rollup.Result() != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, rollup.Result())
			}
		})
	}
}
