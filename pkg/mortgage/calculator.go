package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-check/pkg/applicant"
	"github.com/iwvelando/mortgage-check/pkg/constants"
	"github.com/iwvelando/mortgage-check/pkg/validation"
	"github.com/shopspring/decimal"
)

// LoanResult holds the outcome of one calculation.
type LoanResult struct {
	MaxLoanAmount float64
}

// Calculator computes maximum loan amounts. It holds no mutable state and is
// safe for concurrent use.
type Calculator struct {
	rates             RateTable
	strategy          Strategy
	studentLoanFactor decimal.Decimal
}

// NewCalculator returns a Calculator using the given rate table, strategy and
// student loan factor. The factor must lie in (0, 1].
func NewCalculator(rates RateTable, strategy Strategy, studentLoanFactor float64) (*Calculator, error) {
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}
	if strategy == "" {
		strategy = Strategy(constants.DefaultStrategy)
	}
	if studentLoanFactor <= 0 || studentLoanFactor > 1 {
		return nil, fmt.Errorf("student loan factor %v must be in (0, 1]", studentLoanFactor)
	}
	if rates.rates == nil {
		rates = DefaultRateTable()
	}

	return &Calculator{
		rates:             rates,
		strategy:          strategy,
		studentLoanFactor: decimal.NewFromFloat(studentLoanFactor),
	}, nil
}

// DefaultCalculator uses the default rate table, strategy and student loan factor.
func DefaultCalculator() *Calculator {
	calc, err := NewCalculator(DefaultRateTable(), Strategy(constants.DefaultStrategy), constants.DefaultStudentLoanFactor)
	if err != nil {
		panic(fmt.Sprintf("invalid default calculator: %v", err))
	}
	return calc
}

// Strategy returns the formula the calculator applies.
func (c *Calculator) Strategy() Strategy {
	return c.strategy
}

// Rates returns the calculator's rate table.
func (c *Calculator) Rates() RateTable {
	return c.rates
}

// Validate checks every form field of the input.
func (c *Calculator) Validate(in applicant.Input) validation.Result {
	return validation.Validate(in)
}

// CalculateLoan validates the input and, only when every field is valid,
// computes the maximum loan amount. ok is false for invalid input and the
// returned result is then the zero value.
func (c *Calculator) CalculateLoan(in applicant.Input) (result LoanResult, ok bool) {
	if !c.Validate(in).Valid() {
		return LoanResult{}, false
	}

	app, err := applicant.Parse(in)
	if err != nil {
		return LoanResult{}, false
	}
	return c.Calculate(app), true
}

// Calculate computes the maximum loan amount of an already validated application.
func (c *Calculator) Calculate(app applicant.Application) LoanResult {
	var amount decimal.Decimal
	switch c.strategy {
	case StrategyInterestAdjusted:
		amount = interestAdjustedAmount(app, c.studentLoanFactor, c.rates)
	default:
		amount = flatAmount(app, c.studentLoanFactor)
	}
	return LoanResult{MaxLoanAmount: amount.InexactFloat64()}
}
