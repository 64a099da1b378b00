package format

import (
	"math"
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0.00"},
		{"Small", 5.5, "$5.50"},
		{"Hundreds", 999.99, "$999.99"},
		{"Thousands", 45000, "$45,000.00"},
		{"Millions", 1234567.891, "$1,234,567.89"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Negative rounding to zero", -0.001, "$0.00"},
		{"Rounds half cents", 8183.028247693142, "$8,183.03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestCurrencyNonFinite(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{math.NaN(), "$NaN"},
		{math.Inf(1), "$∞"},
		{math.Inf(-1), "-$∞"},
	}

	for _, tt := range tests {
		if got := Currency(tt.amount); got != tt.expected {
			t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestPerMonthAndYears(t *testing.T) {
	if got := PerMonth(2500); got != "$2,500.00 per month" {
		t.Errorf("PerMonth() = %q", got)
	}
	if got := Years(19); got != "19 Years" {
		t.Errorf("Years(19) = %q", got)
	}
	if got := Years(1); got != "1 Year" {
		t.Errorf("Years(1) = %q", got)
	}
}

func TestStripNonNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"$45,000.00", "45000.00"},
		{"70000", "70000"},
		{"USD 1 234.5", "1234.5"},
		{"abc", ""},
		{"-5,000", "5000"},
		{"１２３", ""},
	}

	for _, tt := range tests {
		if got := StripNonNumeric(tt.input); got != tt.expected {
			t.Errorf("StripNonNumeric(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
