// Package config defines the data structures related to configuration and
// includes functions for loading and checking the config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/pension-quest/internal/projection"
	"github.com/iwvelando/pension-quest/internal/wizard"
	"github.com/iwvelando/pension-quest/pkg/constants"
	"github.com/iwvelando/pension-quest/pkg/datetime"
	"github.com/iwvelando/pension-quest/pkg/validation"
	"github.com/spf13/viper"
)

// DateLayout is the format expected in config files and is also the output
// date format.
const DateLayout = constants.DateLayout

// EnvPrefix namespaces environment overrides, e.g. PENSION_QUEST_OUTPUT_FORMAT.
const EnvPrefix = "PENSION_QUEST"

// Configuration holds all configuration for pension-quest.
type Configuration struct {
	EvaluationDate string
	Assumptions    AssumptionsConfig
	Answers        wizard.Answers
	Scenarios      []Scenario
	Logging        LoggingConfig `yaml:"logging,omitempty"`
	Output         OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// AssumptionsConfig overrides the projection formula parameters. Zero values
// fall back to the defaults.
type AssumptionsConfig struct {
	BenefitFactor    float64
	SalaryGrowthRate float64
}

// Scenario projects the configured answers with a different retirement age.
// An empty RetirementAge keeps the answer from the questionnaire.
type Scenario struct {
	Name          string
	Active        bool
	RetirementAge string
	Optimizer     *OptimizerConfig
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// EvaluationTime returns the configured evaluation date, or now when none is set.
func (conf *Configuration) EvaluationTime(now time.Time) (time.Time, error) {
	if strings.TrimSpace(conf.EvaluationDate) == "" {
		return now, nil
	}
	t, err := datetime.ParseDate(conf.EvaluationDate, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid evaluationDate %q: %w", conf.EvaluationDate, err)
	}
	return t, nil
}

// ProjectionAssumptions merges the configured overrides onto the defaults.
func (conf *Configuration) ProjectionAssumptions() projection.Assumptions {
	as := projection.DefaultAssumptions
	if conf.Assumptions.BenefitFactor != 0 {
		as.BenefitFactor = conf.Assumptions.BenefitFactor
	}
	if conf.Assumptions.SalaryGrowthRate != 0 {
		as.SalaryGrowthRate = conf.Assumptions.SalaryGrowthRate
	}
	return as
}

// ActiveScenarios returns the scenarios to project. Without any configured
// scenarios a single baseline scenario using the answered retirement age is
// returned.
func (conf *Configuration) ActiveScenarios() []Scenario {
	if len(conf.Scenarios) == 0 {
		return []Scenario{{Name: "baseline", Active: true}}
	}
	active := make([]Scenario, 0, len(conf.Scenarios))
	for _, s := range conf.Scenarios {
		if s.Active {
			active = append(active, s)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Scenarios) > 0 && len(conf.ActiveScenarios()) == 0 {
		warnings = append(warnings, "no active scenarios; nothing will be projected")
	}

	names := make([]string, 0, len(conf.Scenarios))
	for _, s := range conf.Scenarios {
		names = append(names, s.Name)
	}
	warnings = append(warnings, validation.ValidateScenarioNames(names)...)
	warnings = append(warnings, validation.ValidateAssumptions(conf.Assumptions.BenefitFactor, conf.Assumptions.SalaryGrowthRate)...)

	for _, s := range conf.Scenarios {
		if s.Optimizer == nil {
			continue
		}
		if err := s.Optimizer.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("scenario %s: %v; optimizer will be skipped", s.Name, err))
		}
	}

	for _, field := range []string{conf.Answers.Birthday, conf.Answers.StartDate, conf.Answers.RetirementAge, conf.Answers.LastYearSalary} {
		if strings.TrimSpace(field) == "" {
			warnings = append(warnings, "answers are incomplete; the forecast will stop at the first missing answer")
			break
		}
	}

	return warnings
}
