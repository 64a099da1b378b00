// Package validator turns raw questionnaire answers into canonical typed
// values. Every function is pure: the evaluation time is passed in by the
// caller instead of being read from the clock.
package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/pension-quest/pkg/constants"
	"github.com/iwvelando/pension-quest/pkg/datetime"
	"github.com/iwvelando/pension-quest/pkg/format"
)

// Field names one of the four questionnaire answers.
type Field string

const (
	FieldBirthday       Field = "birthday"
	FieldStartDate      Field = "startDate"
	FieldRetirementAge  Field = "retirementAge"
	FieldLastYearSalary Field = "lastYearSalary"
)

// Fields lists the answers in the order they are asked.
var Fields = []Field{FieldBirthday, FieldStartDate, FieldRetirementAge, FieldLastYearSalary}

// ParseField maps a wire name onto a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

const (
	msgInvalidDate      = "Please enter a valid date in MM/DD/YYYY format"
	msgBirthdayFuture   = "Birthday cannot be in the future"
	msgTooYoung         = "You must be at least 18 years old"
	msgCheckBirthday    = "Please check your birth date"
	msgStartFuture      = "Start date cannot be in the future"
	msgStartTooYoung    = "Start date suggests you were younger than 20 when you began teaching"
	msgCheckStartDate   = "Please check your start date"
	msgRetirementBounds = "Please enter a retirement age between 50 and 80"
	msgRetirementPast   = "Retirement age must be in the future"
	msgSalaryMinimum    = "Please enter a valid salary (minimum $30,000)"
	msgSalaryMaximum    = "Please check your salary amount"
)

// Date is a validated calendar date together with its canonical MM/DD/YYYY form.
type Date struct {
	Time      time.Time
	Canonical string
}

// IsZero reports whether the date has not been set.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// Salary carries both the numeric amount used by the projection and the
// display string shown back to the user.
type Salary struct {
	Amount  float64
	Display string
}

// ValidateBirthday checks that raw is a past date giving an age between 18
// and 100 at now.
func ValidateBirthday(raw string, now time.Time) (Date, error) {
	birthday, err := datetime.ParseDate(raw, now.Location())
	if err != nil {
		return Date{}, parseError(FieldBirthday, msgInvalidDate)
	}
	if !birthday.Before(now) {
		return Date{}, rangeError(FieldBirthday, msgBirthdayFuture)
	}

	age := datetime.AgeOn(birthday, now)
	if age < constants.MinBirthdayAge {
		return Date{}, rangeError(FieldBirthday, msgTooYoung)
	}
	if age > constants.MaxBirthdayAge {
		return Date{}, rangeError(FieldBirthday, msgCheckBirthday)
	}

	return Date{Time: birthday, Canonical: datetime.FormatDate(birthday)}, nil
}

// ValidateStartDate checks that raw is a past date at which the person,
// born on birthday, was between 20 and 70 years old.
func ValidateStartDate(raw string, birthday Date, now time.Time) (Date, error) {
	start, err := datetime.ParseDate(raw, now.Location())
	if err != nil {
		return Date{}, parseError(FieldStartDate, msgInvalidDate)
	}
	if !start.Before(now) {
		return Date{}, rangeError(FieldStartDate, msgStartFuture)
	}

	ageAtStart := datetime.AgeOn(birthday.Time, start)
	if ageAtStart < constants.MinStartAge {
		return Date{}, rangeError(FieldStartDate, msgStartTooYoung)
	}
	if ageAtStart > constants.MaxStartAge {
		return Date{}, rangeError(FieldStartDate, msgCheckStartDate)
	}

	return Date{Time: start, Canonical: datetime.FormatDate(start)}, nil
}

// ValidateRetirementAge checks that raw is an integer in [50, 80] strictly
// greater than the current age of someone born on birthday.
func ValidateRetirementAge(raw string, birthday Date, now time.Time) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, parseError(FieldRetirementAge, msgRetirementBounds)
	}
	if age < constants.MinRetirementAge || age > constants.MaxRetirementAge {
		return 0, rangeError(FieldRetirementAge, msgRetirementBounds)
	}
	if age <= datetime.AgeOn(birthday.Time, now) {
		return 0, rangeError(FieldRetirementAge, msgRetirementPast)
	}
	return age, nil
}

// ValidateSalary strips everything but digits and decimal points from raw
// and checks the amount lies in [30000, 500000].
func ValidateSalary(raw string) (Salary, error) {
	digits := format.StripNonNumeric(raw)
	amount, err := strconv.ParseFloat(digits, 64)
	if errors.Is(err, strconv.ErrRange) && amount > 0 {
		return Salary{}, rangeError(FieldLastYearSalary, msgSalaryMaximum)
	}
	if err != nil {
		return Salary{}, parseError(FieldLastYearSalary, msgSalaryMinimum)
	}
	if amount < constants.MinSalary {
		return Salary{}, rangeError(FieldLastYearSalary, msgSalaryMinimum)
	}
	if amount > constants.MaxSalary {
		return Salary{}, rangeError(FieldLastYearSalary, msgSalaryMaximum)
	}
	return Salary{Amount: amount, Display: format.Currency(amount)}, nil
}
