// Package projection estimates a monthly defined-benefit pension from the
// four questionnaire answers using a CalSTRS-style formula:
//
//	monthly = yearsOfService * benefitFactor * finalCompensation / 12
//
// where finalCompensation is last year's salary grown at a fixed annual rate
// until retirement. Inputs are assumed to be validated already; out of range
// inputs produce meaningless numbers rather than errors.
package projection

import (
	"time"

	"github.com/iwvelando/pension-quest/pkg/constants"
	"github.com/iwvelando/pension-quest/pkg/datetime"
	"github.com/iwvelando/pension-quest/pkg/format"
	"github.com/iwvelando/pension-quest/pkg/mathutil"
)

// Answers are the canonical questionnaire values the projection needs.
type Answers struct {
	Birthday      time.Time
	StartDate     time.Time
	RetirementAge int
	Salary        float64
}

// Assumptions are the formula parameters.
type Assumptions struct {
	BenefitFactor    float64 `json:"benefitFactor" yaml:"benefitFactor"`
	SalaryGrowthRate float64 `json:"salaryGrowthRate" yaml:"salaryGrowthRate"`
}

// DefaultAssumptions credits 2% per year of service and grows salary 3% a year.
var DefaultAssumptions = Assumptions{
	BenefitFactor:    constants.DefaultBenefitFactor,
	SalaryGrowthRate: constants.DefaultSalaryGrowthRate,
}

// Projection is the derived result shown on the results screen.
type Projection struct {
	CurrentAge            int     `json:"currentAge"`
	YearsUntilRetirement  int     `json:"yearsUntilRetirement"`
	YearsOfService        int     `json:"yearsOfService"`
	FinalCompensation     float64 `json:"finalCompensation"`
	MonthlyPension        float64 `json:"monthlyPension"`
	MonthlyPensionDisplay string  `json:"monthlyPensionDisplay"`
}

// YearRow is one year of the path from now to retirement.
type YearRow struct {
	Year           int     `json:"year"`
	Age            int     `json:"age"`
	Salary         float64 `json:"salary"`
	YearsOfService int     `json:"yearsOfService"`
	MonthlyPension float64 `json:"monthlyPension"`
}

// Project computes the projection with DefaultAssumptions.
func Project(answers Answers, now time.Time) Projection {
	return DefaultAssumptions.Project(answers, now)
}

// Project computes the projection for answers evaluated at now.
func (as Assumptions) Project(answers Answers, now time.Time) Projection {
	currentAge := datetime.AgeOn(answers.Birthday, now)
	yearsUntilRetirement := answers.RetirementAge - currentAge
	yearsOfService := datetime.YearsBetween(now, answers.StartDate) + yearsUntilRetirement
	finalCompensation := mathutil.Compound(answers.Salary, as.SalaryGrowthRate, yearsUntilRetirement)
	monthly := as.monthlyPension(yearsOfService, finalCompensation)

	return Projection{
		CurrentAge:            currentAge,
		YearsUntilRetirement:  yearsUntilRetirement,
		YearsOfService:        yearsOfService,
		FinalCompensation:     finalCompensation,
		MonthlyPension:        monthly,
		MonthlyPensionDisplay: format.Currency(monthly),
	}
}

// Schedule lists every year from now through retirement with the salary
// expected that year and the monthly pension if retiring then. The last row
// matches Project. An empty schedule is returned when retirement has passed.
func (as Assumptions) Schedule(answers Answers, now time.Time) []YearRow {
	currentAge := datetime.AgeOn(answers.Birthday, now)
	yearsUntilRetirement := answers.RetirementAge - currentAge
	if yearsUntilRetirement < 0 {
		return nil
	}
	pastService := datetime.YearsBetween(now, answers.StartDate)

	rows := make([]YearRow, 0, yearsUntilRetirement+1)
	for k := 0; k <= yearsUntilRetirement; k++ {
		salary := mathutil.Compound(answers.Salary, as.SalaryGrowthRate, k)
		service := pastService + k
		rows = append(rows, YearRow{
			Year:           now.Year() + k,
			Age:            currentAge + k,
			Salary:         salary,
			YearsOfService: service,
			MonthlyPension: as.monthlyPension(service, salary),
		})
	}
	return rows
}

func (as Assumptions) monthlyPension(yearsOfService int, finalCompensation float64) float64 {
	return float64(yearsOfService) * as.BenefitFactor * finalCompensation / constants.MonthsPerYear
}
