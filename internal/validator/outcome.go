package validator

import (
	"errors"
	"strconv"
	"time"
)

const msgBirthdayFirst = "Please answer the birthday question first"

// Outcome is the tagged result of validating one answer: either Valid with
// the canonical Value, or invalid with an Error message and its Kind.
type Outcome struct {
	Field Field  `json:"field"`
	Valid bool   `json:"valid"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
	Kind  Kind   `json:"kind,omitempty"`
}

// Valid builds a successful outcome.
func Valid(field Field, canonical string) Outcome {
	return Outcome{Field: field, Valid: true, Value: canonical}
}

// Invalid builds a failed outcome from a validation error.
func Invalid(field Field, err error) Outcome {
	var fe *FieldError
	if errors.As(err, &fe) {
		return Outcome{Field: field, Error: fe.Message, Kind: fe.Kind}
	}
	return Outcome{Field: field, Error: err.Error(), Kind: ParseError}
}

// Context carries previously validated answers needed by later fields.
type Context struct {
	Birthday Date
}

// Validate dispatches raw to the validator for field and folds the result
// into an Outcome.
func Validate(field Field, raw string, ctx Context, now time.Time) Outcome {
	switch field {
	case FieldBirthday:
		d, err := ValidateBirthday(raw, now)
		if err != nil {
			return Invalid(field, err)
		}
		return Valid(field, d.Canonical)
	case FieldStartDate:
		if ctx.Birthday.IsZero() {
			return Invalid(field, rangeError(field, msgBirthdayFirst))
		}
		d, err := ValidateStartDate(raw, ctx.Birthday, now)
		if err != nil {
			return Invalid(field, err)
		}
		return Valid(field, d.Canonical)
	case FieldRetirementAge:
		if ctx.Birthday.IsZero() {
			return Invalid(field, rangeError(field, msgBirthdayFirst))
		}
		age, err := ValidateRetirementAge(raw, ctx.Birthday, now)
		if err != nil {
			return Invalid(field, err)
		}
		return Valid(field, strconv.Itoa(age))
	case FieldLastYearSalary:
		s, err := ValidateSalary(raw)
		if err != nil {
			return Invalid(field, err)
		}
		return Valid(field, s.Display)
	}
	return Outcome{Field: field, Error: "unknown field " + strconv.Quote(string(field)), Kind: ParseError}
}
