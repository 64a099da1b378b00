// Package format renders money and durations the way the results screen shows them.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a US dollar string with thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "$NaN"
	case math.IsInf(amount, 1):
		return "$∞"
	case math.IsInf(amount, -1):
		return "-$∞"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-$" + formatted
	}
	return "$" + formatted
}

// PerMonth renders a monthly amount, e.g. "$8,183.03 per month".
func PerMonth(amount float64) string {
	return Currency(amount) + " per month"
}

// Years renders a whole-year count, e.g. "19 Years".
func Years(n int) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d Year", n)
	}
	return fmt.Sprintf("%d Years", n)
}

// StripNonNumeric drops every rune that is not an ASCII digit or a decimal point.
func StripNonNumeric(value string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, value)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
