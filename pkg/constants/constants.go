// Package constants provides shared constants for the mortgage-check application.
package constants

// Loan calculation constants
const (
	// IncomeMultiplier is the number of times the combined annual income that
	// can be borrowed before any reduction is applied.
	IncomeMultiplier = 5

	// DefaultStudentLoanFactor is the multiplier applied to the maximum loan
	// amount when the applicant has an outstanding student loan.
	DefaultStudentLoanFactor = 0.75
)

// Fixed interest periods, in years.
const (
	PeriodOneYear     = 1
	PeriodFiveYears   = 5
	PeriodTenYears    = 10
	PeriodTwentyYears = 20
	PeriodThirtyYears = 30
)

// FixedInterestPeriods lists every accepted fixed interest period in ascending order.
var FixedInterestPeriods = []int{
	PeriodOneYear,
	PeriodFiveYears,
	PeriodTenYears,
	PeriodTwentyYears,
	PeriodThirtyYears,
}

// DefaultInterestRates is the annual rate per fixed interest period.
var DefaultInterestRates = map[int]float64{
	PeriodOneYear:     0.02,
	PeriodFiveYears:   0.03,
	PeriodTenYears:    0.035,
	PeriodTwentyYears: 0.045,
	PeriodThirtyYears: 0.05,
}

// InvalidPostalCodes are postal codes for which no mortgage is offered.
var InvalidPostalCodes = []string{"9679", "9681", "9682"}

// Calculation strategy names
const (
	// StrategyFlat multiplies the combined income without an interest deduction.
	StrategyFlat = "flat"

	// StrategyInterestAdjusted deducts the interest paid over the fixed period.
	StrategyInterestAdjusted = "interest-adjusted"

	// DefaultStrategy is used when no strategy is configured.
	DefaultStrategy = StrategyFlat
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// EnvPrefix is the prefix of environment variables overriding configuration keys
	EnvPrefix = "MORTGAGE"
)

// Logging defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)
