// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/mortgage-check/internal/evaluation"
)

// FindOutcome finds an outcome by application name in the results slice.
// Returns a pointer to the outcome if found, nil otherwise.
func FindOutcome(results []evaluation.Outcome, name string) *evaluation.Outcome {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
