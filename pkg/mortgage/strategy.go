package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-check/pkg/applicant"
	"github.com/iwvelando/mortgage-check/pkg/constants"
	"github.com/shopspring/decimal"
)

// Strategy selects the formula used to compute the maximum loan amount.
type Strategy string

const (
	// StrategyFlat borrows a multiple of the combined income and only reduces
	// it for a student loan.
	StrategyFlat Strategy = constants.StrategyFlat

	// StrategyInterestAdjusted additionally deducts the interest paid over the
	// fixed interest period.
	StrategyInterestAdjusted Strategy = constants.StrategyInterestAdjusted
)

// ParseStrategy converts a configured strategy name. An empty name selects
// the default strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "":
		return Strategy(constants.DefaultStrategy), nil
	case constants.StrategyFlat:
		return StrategyFlat, nil
	case constants.StrategyInterestAdjusted:
		return StrategyInterestAdjusted, nil
	}
	return "", fmt.Errorf("expected calculation strategy of %s or %s, got %s",
		constants.StrategyFlat, constants.StrategyInterestAdjusted, name)
}

var incomeMultiplier = decimal.NewFromInt(constants.IncomeMultiplier)

func flatAmount(app applicant.Application, studentLoanFactor decimal.Decimal) decimal.Decimal {
	amount := app.CombinedIncome().Mul(incomeMultiplier)
	if app.HasStudentLoan {
		amount = amount.Mul(studentLoanFactor)
	}
	return amount
}

func interestAdjustedAmount(app applicant.Application, studentLoanFactor decimal.Decimal, rates RateTable) decimal.Decimal {
	base := flatAmount(app, studentLoanFactor)
	period := decimal.NewFromInt(int64(app.FixedInterestPeriod))
	totalInterest := base.Mul(rates.rate(app.FixedInterestPeriod)).Mul(period)
	return base.Sub(totalInterest)
}
