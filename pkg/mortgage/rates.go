// Package mortgage computes the maximum loan amount for a mortgage applicant.
package mortgage

import (
	"fmt"
	"sort"

	"github.com/iwvelando/mortgage-check/pkg/constants"
	"github.com/shopspring/decimal"
)

// RateTable maps a fixed interest period in years to an annual interest rate.
// A RateTable is never modified after construction and may be shared freely.
type RateTable struct {
	rates map[int]decimal.Decimal
}

// NewRateTable builds a table from annual rates expressed as fractions. Only
// accepted fixed interest periods may be used as keys and every rate must lie
// in [0, 1).
func NewRateTable(rates map[int]float64) (RateTable, error) {
	table := RateTable{rates: make(map[int]decimal.Decimal, len(rates))}
	for period, rate := range rates {
		if !isFixedInterestPeriod(period) {
			return RateTable{}, fmt.Errorf("unsupported fixed interest period %d, expected one of %v",
				period, constants.FixedInterestPeriods)
		}
		if rate < 0 || rate >= 1 {
			return RateTable{}, fmt.Errorf("interest rate %v for period %d must be in [0, 1)", rate, period)
		}
		table.rates[period] = decimal.NewFromFloat(rate)
	}
	return table, nil
}

// DefaultRateTable returns the standard rate for every fixed interest period.
func DefaultRateTable() RateTable {
	table, err := NewRateTable(constants.DefaultInterestRates)
	if err != nil {
		panic(fmt.Sprintf("invalid default interest rates: %v", err))
	}
	return table
}

// With returns a new table holding the receiver's rates replaced by overrides.
// The receiver is left untouched.
func (t RateTable) With(overrides map[int]float64) (RateTable, error) {
	merged := make(map[int]float64, len(t.rates)+len(overrides))
	for period, rate := range t.rates {
		merged[period] = rate.InexactFloat64()
	}
	for period, rate := range overrides {
		merged[period] = rate
	}
	return NewRateTable(merged)
}

// Lookup returns the rate for a period and whether the period is present.
func (t RateTable) Lookup(period int) (float64, bool) {
	rate, ok := t.rates[period]
	if !ok {
		return 0, false
	}
	return rate.InexactFloat64(), true
}

// Periods returns the periods present in the table in ascending order.
func (t RateTable) Periods() []int {
	periods := make([]int, 0, len(t.rates))
	for period := range t.rates {
		periods = append(periods, period)
	}
	sort.Ints(periods)
	return periods
}

// rate returns the exact rate for a period, or zero when it is absent.
func (t RateTable) rate(period int) decimal.Decimal {
	if rate, ok := t.rates[period]; ok {
		return rate
	}
	return decimal.Zero
}

func isFixedInterestPeriod(period int) bool {
	for _, p := range constants.FixedInterestPeriods {
		if p == period {
			return true
		}
	}
	return false
}
