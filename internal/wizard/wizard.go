// Package wizard drives the four-step questionnaire as an immutable state
// record. Submit never mutates its input; it returns the next state.
package wizard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iwvelando/pension-quest/internal/projection"
	"github.com/iwvelando/pension-quest/internal/validator"
)

// Step is the position in the questionnaire.
type Step int

const (
	StepBirthday Step = iota + 1
	StepStartDate
	StepRetirementAge
	StepSalary
	StepComplete
)

// TotalSteps is the number of questions asked.
const TotalSteps = int(StepSalary)

const msgComplete = "Questionnaire already complete"

// Field returns the answer collected at this step.
func (s Step) Field() validator.Field {
	switch s {
	case StepBirthday:
		return validator.FieldBirthday
	case StepStartDate:
		return validator.FieldStartDate
	case StepRetirementAge:
		return validator.FieldRetirementAge
	case StepSalary:
		return validator.FieldLastYearSalary
	}
	return ""
}

func (s Step) String() string {
	if s == StepComplete {
		return "complete"
	}
	if f := s.Field(); f != "" {
		return string(f)
	}
	return "step(" + strconv.Itoa(int(s)) + ")"
}

// Answers holds the canonical string form of each accepted answer.
type Answers struct {
	Birthday       string `json:"birthday,omitempty" yaml:"birthday"`
	StartDate      string `json:"startDate,omitempty" yaml:"startDate"`
	RetirementAge  string `json:"retirementAge,omitempty" yaml:"retirementAge"`
	LastYearSalary string `json:"lastYearSalary,omitempty" yaml:"lastYearSalary"`
}

// Get returns the answer for field.
func (a Answers) Get(field validator.Field) string {
	switch field {
	case validator.FieldBirthday:
		return a.Birthday
	case validator.FieldStartDate:
		return a.StartDate
	case validator.FieldRetirementAge:
		return a.RetirementAge
	case validator.FieldLastYearSalary:
		return a.LastYearSalary
	}
	return ""
}

func (a Answers) with(field validator.Field, value string) Answers {
	switch field {
	case validator.FieldBirthday:
		a.Birthday = value
	case validator.FieldStartDate:
		a.StartDate = value
	case validator.FieldRetirementAge:
		a.RetirementAge = value
	case validator.FieldLastYearSalary:
		a.LastYearSalary = value
	}
	return a
}

// State is one snapshot of the questionnaire.
type State struct {
	Step        Step
	Answers     Answers
	Birthday    validator.Date
	StartDate   validator.Date
	Retirement  int
	Salary      validator.Salary
	Assumptions projection.Assumptions
	Projection  *projection.Projection
}

// New returns the initial state using the default projection assumptions.
func New() State {
	return NewWithAssumptions(projection.DefaultAssumptions)
}

// NewWithAssumptions returns the initial state projecting with as.
func NewWithAssumptions(as projection.Assumptions) State {
	return State{Step: StepBirthday, Assumptions: as}
}

// Complete reports whether all four answers were accepted.
func (s State) Complete() bool {
	return s.Step == StepComplete
}

// Progress renders the step counter shown above each question.
func (s State) Progress() string {
	step := int(s.Step)
	if step > TotalSteps {
		step = TotalSteps
	}
	return fmt.Sprintf("Step %d of %d", step, TotalSteps)
}

// ProgressFraction is the share of the progress bar to fill, in [0, 1].
func (s State) ProgressFraction() float64 {
	step := int(s.Step)
	if step > TotalSteps {
		step = TotalSteps
	}
	return float64(step) / float64(TotalSteps)
}

// ProjectionAnswers converts the accepted answers into projection input.
func (s State) ProjectionAnswers() projection.Answers {
	return projection.Answers{
		Birthday:      s.Birthday.Time,
		StartDate:     s.StartDate.Time,
		RetirementAge: s.Retirement,
		Salary:        s.Salary.Amount,
	}
}

// Submit validates raw against the current step. On success the answer is
// recorded and the state advances; after the last step the projection is
// computed. On failure the returned state equals s.
func Submit(s State, raw string, now time.Time) (State, validator.Outcome) {
	field := s.Step.Field()
	if field == "" {
		return s, validator.Outcome{Error: msgComplete, Kind: validator.RangeError}
	}

	next := s
	var err error
	switch s.Step {
	case StepBirthday:
		next.Birthday, err = validator.ValidateBirthday(raw, now)
	case StepStartDate:
		next.StartDate, err = validator.ValidateStartDate(raw, s.Birthday, now)
	case StepRetirementAge:
		next.Retirement, err = validator.ValidateRetirementAge(raw, s.Birthday, now)
	case StepSalary:
		next.Salary, err = validator.ValidateSalary(raw)
	}
	if err != nil {
		return s, validator.Invalid(field, err)
	}

	canonical := canonicalValue(next, s.Step)
	next.Answers = s.Answers.with(field, canonical)
	next.Step = s.Step + 1
	if next.Step == StepComplete {
		p := next.Assumptions.Project(next.ProjectionAnswers(), now)
		next.Projection = &p
	}
	return next, validator.Valid(field, canonical)
}

// Replay rebuilds a state by submitting each non-empty answer in order,
// stopping at the first empty or rejected one. The returned outcome is the
// last one produced, or a zero Outcome if nothing was submitted.
func Replay(as projection.Assumptions, answers Answers, now time.Time) (State, validator.Outcome) {
	state := NewWithAssumptions(as)
	var outcome validator.Outcome
	for !state.Complete() {
		raw := answers.Get(state.Step.Field())
		if raw == "" {
			break
		}
		state, outcome = Submit(state, raw, now)
		if !outcome.Valid {
			break
		}
	}
	return state, outcome
}

func canonicalValue(s State, step Step) string {
	switch step {
	case StepBirthday:
		return s.Birthday.Canonical
	case StepStartDate:
		return s.StartDate.Canonical
	case StepRetirementAge:
		return strconv.Itoa(s.Retirement)
	case StepSalary:
		return s.Salary.Display
	}
	return ""
}
