package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/pension-quest/internal/projection"
	"github.com/iwvelando/pension-quest/internal/wizard"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Test config",
			configPath: filepath.Join("..", "..", "test", "test_config.yaml"),
		},
		{
			name:       "Example config",
			configPath: filepath.Join("..", "..", "config.yaml.example"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationFields(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("..", "..", "test", "test_config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Answers.Birthday != "01/01/1980" {
		t.Errorf("Answers.Birthday = %q", conf.Answers.Birthday)
	}
	if conf.Answers.RetirementAge != "65" {
		t.Errorf("Answers.RetirementAge = %q, expected numeric YAML to decode as \"65\"", conf.Answers.RetirementAge)
	}
	if conf.Answers.LastYearSalary != "$70,000" {
		t.Errorf("Answers.LastYearSalary = %q", conf.Answers.LastYearSalary)
	}
	if len(conf.Scenarios) != 4 {
		t.Fatalf("len(Scenarios) = %d, expected 4", len(conf.Scenarios))
	}
	if conf.Scenarios[1].RetirementAge != "60" {
		t.Errorf("Scenarios[1].RetirementAge = %q", conf.Scenarios[1].RetirementAge)
	}
	if o := conf.Scenarios[2].Optimizer; o == nil || o.Target != 5000 {
		t.Errorf("Scenarios[2].Optimizer = %+v", o)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "json" {
		t.Errorf("Logging = %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q", conf.Output.Format)
	}
}

func TestLoadConfigurationEnvOverride(t *testing.T) {
	path := writeConfig(t, "output:\n  format: pretty\n")
	t.Setenv("PENSION_QUEST_OUTPUT_FORMAT", "json")

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.Output.Format != "json" {
		t.Errorf("Output.Format = %q, expected env override json", conf.Output.Format)
	}
}

func TestLoadConfigurationMalformed(t *testing.T) {
	path := writeConfig(t, "answers: [unterminated\n")
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEvaluationTime(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	conf := &Configuration{}
	got, err := conf.EvaluationTime(now)
	if err != nil || !got.Equal(now) {
		t.Errorf("EvaluationTime() = %v, %v; expected now", got, err)
	}

	conf.EvaluationDate = "3/15/2030"
	got, err = conf.EvaluationTime(now)
	if err != nil {
		t.Fatalf("EvaluationTime() error = %v", err)
	}
	if got.Year() != 2030 || got.Month() != time.March || got.Day() != 15 {
		t.Errorf("EvaluationTime() = %v", got)
	}

	conf.EvaluationDate = "2030-03-15"
	if _, err := conf.EvaluationTime(now); err == nil {
		t.Error("expected error for non MM/DD/YYYY evaluation date")
	}
}

func TestProjectionAssumptions(t *testing.T) {
	conf := &Configuration{}
	if got := conf.ProjectionAssumptions(); got != projection.DefaultAssumptions {
		t.Errorf("ProjectionAssumptions() = %+v, expected defaults", got)
	}

	conf.Assumptions.SalaryGrowthRate = 0.025
	got := conf.ProjectionAssumptions()
	if got.SalaryGrowthRate != 0.025 {
		t.Errorf("SalaryGrowthRate = %v, expected 0.025", got.SalaryGrowthRate)
	}
	if got.BenefitFactor != projection.DefaultAssumptions.BenefitFactor {
		t.Errorf("BenefitFactor = %v, expected default", got.BenefitFactor)
	}
}

func TestActiveScenarios(t *testing.T) {
	conf := &Configuration{}
	baseline := conf.ActiveScenarios()
	if len(baseline) != 1 || baseline[0].Name != "baseline" || baseline[0].RetirementAge != "" {
		t.Errorf("ActiveScenarios() without scenarios = %+v", baseline)
	}

	conf.Scenarios = []Scenario{
		{Name: "a", Active: true},
		{Name: "b", Active: false},
		{Name: "c", Active: true, RetirementAge: "60"},
	}
	active := conf.ActiveScenarios()
	if len(active) != 2 || active[0].Name != "a" || active[1].Name != "c" {
		t.Errorf("ActiveScenarios() = %+v", active)
	}
}

func TestValidateConfiguration(t *testing.T) {
	complete := Configuration{
		Answers: answersFixture(),
	}
	if warnings := complete.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}

	conf := Configuration{
		Assumptions: AssumptionsConfig{BenefitFactor: 0.5},
		Scenarios: []Scenario{
			{Name: "early", Active: false},
			{Name: "early", Active: false},
		},
	}
	warnings := conf.ValidateConfiguration()
	joined := strings.Join(warnings, "\n")
	for _, want := range []string{"no active scenarios", "defined more than once", "benefitFactor", "answers are incomplete"} {
		if !strings.Contains(joined, want) {
			t.Errorf("warnings missing %q:\n%s", want, joined)
		}
	}
}

func answersFixture() wizard.Answers {
	return wizard.Answers{
		Birthday:       "01/01/1980",
		StartDate:      "01/01/2005",
		RetirementAge:  "65",
		LastYearSalary: "$70,000",
	}
}
