package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/pension-quest/pkg/constants"
)

const (
	OptimizerFieldRetirementAge = "retirementAge"

	OptimizerKindMonthlyPension = "monthly_pension"
)

// OptimizerConfig asks for the earliest retirement age whose projected
// monthly pension reaches Target.
type OptimizerConfig struct {
	Field  string  `yaml:"field,omitempty" mapstructure:"field"`
	Kind   string  `yaml:"kind,omitempty" mapstructure:"kind"`
	Target float64 `yaml:"target,omitempty" mapstructure:"target"`
	MinAge int     `yaml:"minAge,omitempty" mapstructure:"minAge"`
	MaxAge int     `yaml:"maxAge,omitempty" mapstructure:"maxAge"`
}

// CanonicalOptimizerField returns the canonical identifier for an optimizer field.
func CanonicalOptimizerField(value string) string {
	trimmed := strings.TrimSpace(value)
	switch strings.ToLower(trimmed) {
	case "", "retirementage", "retirement_age", "retirement-age":
		return OptimizerFieldRetirementAge
	default:
		return strings.ToLower(trimmed)
	}
}

// Normalize applies defaults before validation.
func (o *OptimizerConfig) Normalize() {
	if o == nil {
		return
	}
	o.Field = CanonicalOptimizerField(o.Field)

	o.Kind = strings.ToLower(strings.TrimSpace(o.Kind))
	if o.Kind == "" {
		o.Kind = OptimizerKindMonthlyPension
	}

	if o.MinAge == 0 {
		o.MinAge = constants.MinRetirementAge
	}
	if o.MaxAge == 0 {
		o.MaxAge = constants.MaxRetirementAge
	}
}

// Validate returns an error when the optimizer configuration is unsupported.
func (o *OptimizerConfig) Validate() error {
	if o == nil {
		return fmt.Errorf("optimizer configuration cannot be nil")
	}

	o.Normalize()

	if o.Field != OptimizerFieldRetirementAge {
		return fmt.Errorf("optimizer field %q is not supported", o.Field)
	}
	if o.Kind != OptimizerKindMonthlyPension {
		return fmt.Errorf("optimizer kind %q is not supported", o.Kind)
	}
	if o.Target <= 0 {
		return fmt.Errorf("optimizer requires a positive monthly pension target")
	}
	if o.MinAge < constants.MinRetirementAge || o.MaxAge > constants.MaxRetirementAge {
		return fmt.Errorf("optimizer ages must lie between %d and %d", constants.MinRetirementAge, constants.MaxRetirementAge)
	}
	if o.MinAge > o.MaxAge {
		return fmt.Errorf("optimizer minimum age %d must not exceed maximum age %d", o.MinAge, o.MaxAge)
	}
	return nil
}
