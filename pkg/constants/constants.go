// Package constants provides shared constants for the pension-quest application.
package constants

// DateLayout is the format used for every date answer and is also the
// canonical output date format.
const DateLayout = "01/02/2006"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// DefaultBenefitFactor is the pension credit earned per year of service (2%)
	DefaultBenefitFactor = 0.02

	// DefaultSalaryGrowthRate is the assumed annual salary growth (3%)
	DefaultSalaryGrowthRate = 0.03
)

// Answer bounds
const (
	MinBirthdayAge = 18
	MaxBirthdayAge = 100

	MinStartAge = 20
	MaxStartAge = 70

	MinRetirementAge = 50
	MaxRetirementAge = 80

	MinSalary = 30000.0
	MaxSalary = 500000.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)
