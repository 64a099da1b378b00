package validator

import (
	"errors"
	"testing"
)

func TestValidateDispatch(t *testing.T) {
	birthday := mustBirthday(t, "01/01/1980")
	ctx := Context{Birthday: birthday}

	tests := []struct {
		name     string
		field    Field
		raw      string
		ctx      Context
		expected Outcome
	}{
		{
			name:     "Birthday valid",
			field:    FieldBirthday,
			raw:      "1/1/1980",
			expected: Outcome{Field: FieldBirthday, Valid: true, Value: "01/01/1980"},
		},
		{
			name:     "Start date valid",
			field:    FieldStartDate,
			raw:      "01/01/2005",
			ctx:      ctx,
			expected: Outcome{Field: FieldStartDate, Valid: true, Value: "01/01/2005"},
		},
		{
			name:     "Start date without birthday",
			field:    FieldStartDate,
			raw:      "01/01/2005",
			expected: Outcome{Field: FieldStartDate, Error: msgBirthdayFirst, Kind: RangeError},
		},
		{
			name:     "Retirement age canonical integer",
			field:    FieldRetirementAge,
			raw:      "065",
			ctx:      ctx,
			expected: Outcome{Field: FieldRetirementAge, Valid: true, Value: "65"},
		},
		{
			name:     "Retirement age without birthday",
			field:    FieldRetirementAge,
			raw:      "65",
			expected: Outcome{Field: FieldRetirementAge, Error: msgBirthdayFirst, Kind: RangeError},
		},
		{
			name:     "Salary display",
			field:    FieldLastYearSalary,
			raw:      "$70,000",
			expected: Outcome{Field: FieldLastYearSalary, Valid: true, Value: "$70,000.00"},
		},
		{
			name:     "Salary too low",
			field:    FieldLastYearSalary,
			raw:      "$29,999",
			expected: Outcome{Field: FieldLastYearSalary, Error: msgSalaryMinimum, Kind: RangeError},
		},
		{
			name:     "Unknown field",
			field:    Field("pets"),
			raw:      "2",
			expected: Outcome{Field: Field("pets"), Error: `unknown field "pets"`, Kind: ParseError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.field, tt.raw, tt.ctx, evaluationTime)
			if got != tt.expected {
				t.Errorf("Validate() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestInvalidWithPlainError(t *testing.T) {
	got := Invalid(FieldBirthday, errors.New("boom"))
	if got.Valid || got.Error != "boom" || got.Kind != ParseError {
		t.Errorf("Invalid() = %+v", got)
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(string(f))
		if err != nil {
			t.Fatalf("ParseField(%q) error = %v", f, err)
		}
		if got != f {
			t.Errorf("ParseField(%q) = %q", f, got)
		}
	}
	if _, err := ParseField("salary"); err == nil {
		t.Error("expected error for unknown field")
	}
}
