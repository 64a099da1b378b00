// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"
)

// Plausible ranges for projection assumptions. Values outside are allowed but warned about.
const (
	MaxBenefitFactor = 0.10
	MinSalaryGrowth  = -0.10
	MaxSalaryGrowth  = 0.20
)

// ValidateAssumptions warns about projection parameters outside plausible ranges.
func ValidateAssumptions(benefitFactor, salaryGrowthRate float64) []string {
	var warnings []string

	if benefitFactor < 0 || benefitFactor > MaxBenefitFactor {
		warnings = append(warnings, fmt.Sprintf("benefitFactor %.4f is outside the usual 0 to %.2f range",
			benefitFactor, MaxBenefitFactor))
	}
	if salaryGrowthRate < MinSalaryGrowth || salaryGrowthRate > MaxSalaryGrowth {
		warnings = append(warnings, fmt.Sprintf("salaryGrowthRate %.4f is outside the usual %.2f to %.2f range",
			salaryGrowthRate, MinSalaryGrowth, MaxSalaryGrowth))
	}

	return warnings
}

// ValidateScenarioNames warns about unnamed and duplicated scenarios.
func ValidateScenarioNames(names []string) []string {
	var warnings []string
	seen := make(map[string]bool, len(names))

	for i, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			warnings = append(warnings, fmt.Sprintf("scenario %d has no name", i+1))
			continue
		}
		if seen[trimmed] {
			warnings = append(warnings, fmt.Sprintf("scenario '%s' is defined more than once", trimmed))
		}
		seen[trimmed] = true
	}

	return warnings
}
