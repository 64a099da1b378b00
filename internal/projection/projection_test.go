package projection

import (
	"math"
	"testing"
	"time"

	"github.com/iwvelando/pension-quest/pkg/constants"
	"github.com/iwvelando/pension-quest/pkg/datetime"
)

var evaluationTime = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func date(s string) time.Time {
	return datetime.MustParseTime(constants.DateLayout, s)
}

func TestProjectEndToEnd(t *testing.T) {
	answers := Answers{
		Birthday:      date("01/01/1980"),
		StartDate:     date("01/01/2005"),
		RetirementAge: 65,
		Salary:        70000,
	}

	result := Project(answers, evaluationTime)

	if result.CurrentAge != 46 {
		t.Errorf("CurrentAge = %d, expected 46", result.CurrentAge)
	}
	if result.YearsUntilRetirement != 19 {
		t.Errorf("YearsUntilRetirement = %d, expected 19", result.YearsUntilRetirement)
	}
	if result.YearsOfService != 40 {
		t.Errorf("YearsOfService = %d, expected 40 (21 accrued + 19 remaining)", result.YearsOfService)
	}

	expectedFinal := 70000 * math.Pow(1.03, 19)
	if math.Abs(result.FinalCompensation-expectedFinal) > constants.CurrencyTolerance {
		t.Errorf("FinalCompensation = %v, expected %v", result.FinalCompensation, expectedFinal)
	}

	expectedMonthly := 40 * 0.02 * expectedFinal / 12
	if math.Abs(result.MonthlyPension-expectedMonthly) > constants.CurrencyTolerance {
		t.Errorf("MonthlyPension = %v, expected %v", result.MonthlyPension, expectedMonthly)
	}
	if result.MonthlyPensionDisplay != "$8,183.03" {
		t.Errorf("MonthlyPensionDisplay = %q, expected $8,183.03", result.MonthlyPensionDisplay)
	}
}

func TestProjectDeterministic(t *testing.T) {
	answers := Answers{
		Birthday:      date("06/30/1975"),
		StartDate:     date("09/01/2001"),
		RetirementAge: 62,
		Salary:        91500.25,
	}
	first := Project(answers, evaluationTime)
	second := Project(answers, evaluationTime)
	if first != second {
		t.Errorf("Project() not deterministic: %+v vs %+v", first, second)
	}
}

func TestProjectCustomAssumptions(t *testing.T) {
	answers := Answers{
		Birthday:      date("10/19/1976"),
		StartDate:     date("10/19/2006"),
		RetirementAge: 60,
		Salary:        50000,
	}
	flat := Assumptions{BenefitFactor: 0.025, SalaryGrowthRate: 0}

	result := flat.Project(answers, evaluationTime)

	// 20 years accrued + 10 remaining, no growth.
	if result.YearsOfService != 30 {
		t.Fatalf("YearsOfService = %d, expected 30", result.YearsOfService)
	}
	expected := 30 * 0.025 * 50000.0 / 12
	if math.Abs(result.MonthlyPension-expected) > constants.CurrencyTolerance {
		t.Errorf("MonthlyPension = %v, expected %v", result.MonthlyPension, expected)
	}
	if result.FinalCompensation != 50000 {
		t.Errorf("FinalCompensation = %v, expected 50000", result.FinalCompensation)
	}
}

func TestProjectOutOfContractDoesNotPanic(t *testing.T) {
	answers := Answers{
		Birthday:      date("01/01/1950"),
		StartDate:     date("01/01/1980"),
		RetirementAge: 50,
		Salary:        40000,
	}

	result := Project(answers, evaluationTime)

	if result.YearsUntilRetirement >= 0 {
		t.Errorf("YearsUntilRetirement = %d, expected negative", result.YearsUntilRetirement)
	}
	if result.MonthlyPensionDisplay == "" {
		t.Error("expected a display string even for out of contract input")
	}
}

func TestSchedule(t *testing.T) {
	answers := Answers{
		Birthday:      date("01/01/1980"),
		StartDate:     date("01/01/2005"),
		RetirementAge: 65,
		Salary:        70000,
	}

	rows := DefaultAssumptions.Schedule(answers, evaluationTime)
	if len(rows) != 20 {
		t.Fatalf("len(rows) = %d, expected 20", len(rows))
	}

	first := rows[0]
	if first.Year != 2026 || first.Age != 46 || first.YearsOfService != 21 {
		t.Errorf("first row = %+v", first)
	}
	if first.Salary != 70000 {
		t.Errorf("first row salary = %v, expected 70000", first.Salary)
	}

	last := rows[len(rows)-1]
	projection := Project(answers, evaluationTime)
	if last.Age != 65 || last.Year != 2045 {
		t.Errorf("last row = %+v", last)
	}
	if last.YearsOfService != projection.YearsOfService {
		t.Errorf("last row service = %d, expected %d", last.YearsOfService, projection.YearsOfService)
	}
	if math.Abs(last.MonthlyPension-projection.MonthlyPension) > constants.CurrencyTolerance {
		t.Errorf("last row pension = %v, expected %v", last.MonthlyPension, projection.MonthlyPension)
	}

	for i := 1; i < len(rows); i++ {
		if rows[i].MonthlyPension <= rows[i-1].MonthlyPension {
			t.Errorf("pension should grow each year: row %d %v <= row %d %v",
				i, rows[i].MonthlyPension, i-1, rows[i-1].MonthlyPension)
		}
	}
}

func TestScheduleRetirementPassed(t *testing.T) {
	answers := Answers{
		Birthday:      date("01/01/1950"),
		StartDate:     date("01/01/1980"),
		RetirementAge: 60,
		Salary:        40000,
	}
	if rows := DefaultAssumptions.Schedule(answers, evaluationTime); rows != nil {
		t.Errorf("expected nil schedule, got %d rows", len(rows))
	}
}
