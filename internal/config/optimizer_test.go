package config

import (
	"strings"
	"testing"
)

func TestCanonicalOptimizerField(t *testing.T) {
	tests := map[string]string{
		"":               OptimizerFieldRetirementAge,
		"retirement_age": OptimizerFieldRetirementAge,
		" RetirementAge": OptimizerFieldRetirementAge,
		"retirement-age": OptimizerFieldRetirementAge,
		"Salary":         "salary",
	}
	for input, want := range tests {
		if got := CanonicalOptimizerField(input); got != want {
			t.Errorf("CanonicalOptimizerField(%q) = %q, expected %q", input, got, want)
		}
	}
}

func TestOptimizerConfigNormalize(t *testing.T) {
	o := &OptimizerConfig{Target: 5000}
	o.Normalize()

	if o.Field != OptimizerFieldRetirementAge {
		t.Errorf("Field = %q", o.Field)
	}
	if o.Kind != OptimizerKindMonthlyPension {
		t.Errorf("Kind = %q", o.Kind)
	}
	if o.MinAge != 50 || o.MaxAge != 80 {
		t.Errorf("bounds = [%d, %d], expected [50, 80]", o.MinAge, o.MaxAge)
	}

	var nilConfig *OptimizerConfig
	nilConfig.Normalize()
}

func TestOptimizerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *OptimizerConfig
		wantErr string
	}{
		{"valid defaults", &OptimizerConfig{Target: 5000}, ""},
		{"valid window", &OptimizerConfig{Target: 5000, MinAge: 55, MaxAge: 60}, ""},
		{"nil", nil, "cannot be nil"},
		{"zero target", &OptimizerConfig{}, "positive monthly pension target"},
		{"bad field", &OptimizerConfig{Field: "salary", Target: 1}, `field "salary"`},
		{"bad kind", &OptimizerConfig{Kind: "cash_floor", Target: 1}, `kind "cash_floor"`},
		{"min too low", &OptimizerConfig{Target: 1, MinAge: 40}, "between 50 and 80"},
		{"max too high", &OptimizerConfig{Target: 1, MaxAge: 90}, "between 50 and 80"},
		{"inverted", &OptimizerConfig{Target: 1, MinAge: 70, MaxAge: 60}, "must not exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, expected to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfigurationWarnsOnInvalidOptimizer(t *testing.T) {
	conf := Configuration{
		Scenarios: []Scenario{
			{Name: "goal", Active: true, Optimizer: &OptimizerConfig{Target: -5}},
		},
	}
	found := false
	for _, w := range conf.ValidateConfiguration() {
		if strings.Contains(w, "scenario goal") && strings.Contains(w, "optimizer will be skipped") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected optimizer warning, got %v", conf.ValidateConfiguration())
	}
}
