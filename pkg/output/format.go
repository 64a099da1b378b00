// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/iwvelando/pension-quest/internal/forecast"
	"github.com/iwvelando/pension-quest/pkg/constants"
	"github.com/iwvelando/pension-quest/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Write renders results in the named output format.
func Write(w io.Writer, outputFormat string, results []forecast.Forecast) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, results)
	case constants.OutputFormatCSV:
		return CsvFormat(w, results)
	case constants.OutputFormatJSON:
		return JSONFormat(w, results)
	}
	return fmt.Errorf("unsupported output format %q", outputFormat)
}

// PrettyFormat outputs a human-readable summary and yearly table per scenario.
func PrettyFormat(w io.Writer, results []forecast.Forecast) error {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		proj := result.Projection
		_, _ = fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Name)
		_, _ = fmt.Fprintf(w, "Evaluated on:                    %s\n", result.EvaluationDate)
		_, _ = fmt.Fprintf(w, "Estimated Pension at Retirement: %s\n", format.PerMonth(proj.MonthlyPension))
		_, _ = fmt.Fprintf(w, "Years Until Retirement:          %s\n", format.Years(proj.YearsUntilRetirement))
		_, _ = fmt.Fprintf(w, "Years of Service:                %d\n", proj.YearsOfService)
		_, _ = fmt.Fprintf(w, "Final Compensation:              %s\n", format.Currency(proj.FinalCompensation))
		for _, note := range result.Notes {
			_, _ = fmt.Fprintf(w, "Note: %s\n", note)
		}

		if len(result.Schedule) > 0 {
			_, _ = fmt.Fprintf(w, "\nYear | Age | Salary        | Service | Monthly Pension\n")
			_, _ = fmt.Fprintf(w, "____ | ___ | _____________ | _______ | _______________\n")
			for _, row := range result.Schedule {
				// Year goes through strconv so the printer does not group it as 2,026.
				_, err := p.Fprintf(w, "%s | %3d | $%12.2f | %7d | $%.2f\n",
					strconv.Itoa(row.Year), row.Age, row.Salary, row.YearsOfService, row.MonthlyPension)
				if err != nil {
					return err
				}
			}
		}
		if i < len(results)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
	return nil
}

// CsvFormat outputs one row per scenario year in comma-separated value format.
func CsvFormat(w io.Writer, results []forecast.Forecast) error {
	cw := csv.NewWriter(w)
	header := []string{"scenario", "year", "age", "salary", "years of service", "monthly pension", "notes"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, result := range results {
		notes := strings.Join(result.Notes, "; ")
		for _, row := range result.Schedule {
			record := []string{
				result.Name,
				strconv.Itoa(row.Year),
				strconv.Itoa(row.Age),
				strconv.FormatFloat(row.Salary, 'f', 2, 64),
				strconv.Itoa(row.YearsOfService),
				strconv.FormatFloat(row.MonthlyPension, 'f', 2, 64),
				notes,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONFormat outputs the full results as indented JSON.
func JSONFormat(w io.Writer, results []forecast.Forecast) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if results == nil {
		results = []forecast.Forecast{}
	}
	return enc.Encode(results)
}
