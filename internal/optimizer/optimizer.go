// Package optimizer searches for the earliest retirement age that reaches a
// configured monthly pension target.
package optimizer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iwvelando/pension-quest/internal/config"
	"github.com/iwvelando/pension-quest/internal/forecast"
	"github.com/iwvelando/pension-quest/internal/projection"
	"github.com/iwvelando/pension-quest/internal/wizard"
	"github.com/iwvelando/pension-quest/pkg/constants"
	"github.com/iwvelando/pension-quest/pkg/format"
	"github.com/iwvelando/pension-quest/pkg/mathutil"
	"github.com/iwvelando/pension-quest/pkg/optimization"
	"go.uber.org/zap"
)

type Runner struct {
	logger    *zap.Logger
	conf      *config.Configuration
	fixedTime time.Time
}

type target struct {
	scenario config.Scenario
	config   config.OptimizerConfig
}

// Result summarizes optimizer searches keyed by scenario name.
type Result struct {
	Summaries map[string][]optimization.Summary
}

// Empty indicates whether any optimizer searches were run.
func (r Result) Empty() bool {
	return len(r.Summaries) == 0
}

// Apply attaches optimizer summaries and their notes to the provided forecast results.
func (r Result) Apply(forecasts []forecast.Forecast) {
	if len(r.Summaries) == 0 {
		return
	}
	for i := range forecasts {
		summaries, ok := r.Summaries[forecasts[i].Name]
		if !ok {
			continue
		}
		forecasts[i].Optimizations = append(forecasts[i].Optimizations, summaries...)
		for _, s := range summaries {
			forecasts[i].Notes = append(forecasts[i].Notes, s.Notes...)
		}
	}
}

// NewRunner constructs a Runner evaluated at the configured evaluation date, or now.
func NewRunner(logger *zap.Logger, conf *config.Configuration, now time.Time) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fixedTime, err := conf.EvaluationTime(now)
	if err != nil {
		return nil, err
	}
	return &Runner{logger: logger, conf: conf, fixedTime: fixedTime}, nil
}

// Run executes every active scenario's optimizer directive. The
// configuration is not modified.
func (r *Runner) Run() (*Result, error) {
	targets, err := r.collectTargets()
	if err != nil {
		return nil, err
	}
	summaries := make(map[string][]optimization.Summary)
	if len(targets) == 0 {
		return &Result{Summaries: summaries}, nil
	}

	assumptions := r.conf.ProjectionAssumptions()
	state, outcome := wizard.Replay(assumptions, r.conf.Answers, r.fixedTime)
	if !state.Complete() {
		if !outcome.Valid && outcome.Error != "" {
			return nil, fmt.Errorf("optimizer baseline: %s: %s", outcome.Field, outcome.Error)
		}
		return nil, fmt.Errorf("optimizer baseline: missing answer for %s", state.Step)
	}

	for _, t := range targets {
		summary := r.search(assumptions, state, t)
		summaries[t.scenario.Name] = append(summaries[t.scenario.Name], summary)

		r.logger.Info("optimizer searched retirement age",
			zap.String("op", "optimizer.Run"),
			zap.String("scenario", t.scenario.Name),
			zap.Int("original", summary.Original),
			zap.Int("optimized", summary.Value),
			zap.Float64("target", summary.Target),
			zap.Float64("monthlyPension", summary.MonthlyPension),
			zap.Float64("headroom", summary.Headroom),
			zap.Int("iterations", summary.Iterations),
			zap.Bool("converged", summary.Converged),
		)
	}

	return &Result{Summaries: summaries}, nil
}

func (r *Runner) collectTargets() ([]target, error) {
	var targets []target
	for _, scenario := range r.conf.ActiveScenarios() {
		if scenario.Optimizer == nil {
			continue
		}
		cfg := *scenario.Optimizer
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		targets = append(targets, target{scenario: scenario, config: cfg})
	}
	return targets, nil
}

// search walks the ages in order and stops at the first one whose pension
// reaches the target. Pension is not monotonic in age when salary growth is
// negative, so the walk is linear rather than a bisection.
func (r *Runner) search(as projection.Assumptions, state wizard.State, t target) optimization.Summary {
	answers := state.ProjectionAnswers()
	original := answers.RetirementAge
	if t.scenario.RetirementAge != "" {
		if age, err := strconv.Atoi(t.scenario.RetirementAge); err == nil {
			original = age
		}
	}

	summary := optimization.Summary{
		Scope:         "scenario",
		TargetName:    t.scenario.Name,
		Field:         t.config.Field,
		Original:      original,
		Target:        t.config.Target,
		TargetDisplay: format.PerMonth(t.config.Target),
	}

	currentAge := as.Project(answers, r.fixedTime).CurrentAge
	minAge := t.config.MinAge
	if minAge <= currentAge {
		minAge = currentAge + 1
	}

	bestAge, bestPension := 0, -1.0
	for age := minAge; age <= t.config.MaxAge; age++ {
		summary.Iterations++
		answers.RetirementAge = age
		monthly := as.Project(answers, r.fixedTime).MonthlyPension
		if monthly > bestPension {
			bestAge, bestPension = age, monthly
		}
		// A pension displaying as the target counts as reaching it.
		if monthly >= t.config.Target || mathutil.WithinTolerance(monthly, t.config.Target, constants.CurrencyTolerance) {
			summary.Value = age
			summary.MonthlyPension = monthly
			summary.Converged = true
			break
		}
	}

	if !summary.Converged {
		if summary.Iterations == 0 {
			summary.Value = original
			summary.Notes = append(summary.Notes,
				fmt.Sprintf("no retirement age between %d and %d is still ahead", t.config.MinAge, t.config.MaxAge))
			return summary
		}
		summary.Value = bestAge
		summary.MonthlyPension = bestPension
	}
	summary.Headroom = mathutil.Round(summary.MonthlyPension - summary.Target)
	summary.PensionDisplay = format.PerMonth(summary.MonthlyPension)

	if summary.Converged {
		summary.Notes = append(summary.Notes,
			fmt.Sprintf("earliest retirement age reaching %s: %d (%s)", summary.TargetDisplay, summary.Value, summary.PensionDisplay))
	} else {
		summary.Notes = append(summary.Notes,
			fmt.Sprintf("%s is not reachable by age %d; best is %s at age %d", summary.TargetDisplay, t.config.MaxAge, summary.PensionDisplay, summary.Value))
	}
	return summary
}
