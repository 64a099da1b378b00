// Package testutil provides common utility functions for testing.
package testutil

import (
	"time"

	"github.com/iwvelando/pension-quest/internal/forecast"
)

// EvaluationTime is the fixed "now" used across tests.
var EvaluationTime = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

// FindScenario finds a scenario by name in the results slice.
// Returns a pointer to the forecast if found, nil otherwise.
func FindScenario(results []forecast.Forecast, name string) *forecast.Forecast {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
