// Package forecast runs the configured questionnaire answers through the
// wizard and projects the pension for every active scenario.
package forecast

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iwvelando/pension-quest/internal/config"
	"github.com/iwvelando/pension-quest/internal/projection"
	"github.com/iwvelando/pension-quest/internal/validator"
	"github.com/iwvelando/pension-quest/internal/wizard"
	"github.com/iwvelando/pension-quest/pkg/optimization"
	"go.uber.org/zap"
)

// Forecast holds all information related to a specific scenario.
type Forecast struct {
	Name           string                 `json:"name"`
	EvaluationDate string                 `json:"evaluationDate"`
	RetirementAge  int                    `json:"retirementAge"`
	Answers        wizard.Answers         `json:"answers"`
	Projection     projection.Projection  `json:"projection"`
	Schedule       []projection.YearRow   `json:"schedule"`
	Assumptions    projection.Assumptions `json:"assumptions"`
	Notes          []string               `json:"notes,omitempty"`
	Optimizations  []optimization.Summary `json:"optimizations,omitempty"`
}

// GetForecast processes the Forecasts for all active Scenarios, evaluated at
// the configured evaluation date or now.
func GetForecast(logger *zap.Logger, conf config.Configuration, now time.Time) ([]Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	evaluation, err := conf.EvaluationTime(now)
	if err != nil {
		return nil, err
	}
	assumptions := conf.ProjectionAssumptions()

	state, outcome := wizard.Replay(assumptions, conf.Answers, evaluation)
	if !state.Complete() {
		if outcome.Field != "" && !outcome.Valid {
			return nil, fmt.Errorf("invalid answers: %w", &validator.FieldError{
				Field:   outcome.Field,
				Kind:    outcome.Kind,
				Message: outcome.Error,
			})
		}
		return nil, fmt.Errorf("missing answer for %s", state.Step)
	}

	var results []Forecast
	for _, scenario := range conf.ActiveScenarios() {
		answers := state.ProjectionAnswers()
		canonical := state.Answers

		if scenario.RetirementAge != "" {
			age, err := validator.ValidateRetirementAge(scenario.RetirementAge, state.Birthday, evaluation)
			if err != nil {
				return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
			}
			answers.RetirementAge = age
			canonical.RetirementAge = strconv.Itoa(age)
		}

		result := Forecast{
			Name:           scenario.Name,
			EvaluationDate: evaluation.Format(config.DateLayout),
			RetirementAge:  answers.RetirementAge,
			Answers:        canonical,
			Projection:     assumptions.Project(answers, evaluation),
			Schedule:       assumptions.Schedule(answers, evaluation),
			Assumptions:    assumptions,
		}
		result.Notes = notes(result)

		logger.Debug(fmt.Sprintf("projected scenario %s", scenario.Name),
			zap.String("op", "forecast.GetForecast"),
			zap.Int("retirementAge", result.RetirementAge),
			zap.Int("yearsUntilRetirement", result.Projection.YearsUntilRetirement),
			zap.Float64("monthlyPension", result.Projection.MonthlyPension),
		)
		results = append(results, result)
	}

	if len(results) == 0 {
		logger.Warn("no active scenarios to project",
			zap.String("op", "forecast.GetForecast"),
		)
	}

	return results, nil
}

func notes(f Forecast) []string {
	out := []string{
		fmt.Sprintf("%d years of service at retirement", f.Projection.YearsOfService),
	}
	if f.Assumptions != projection.DefaultAssumptions {
		out = append(out, fmt.Sprintf("custom assumptions: %.2f%% per service year, %.2f%% salary growth",
			f.Assumptions.BenefitFactor*100, f.Assumptions.SalaryGrowthRate*100))
	}
	return out
}
