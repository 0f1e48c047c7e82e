// Package applicant defines the records describing a mortgage applicant.
package applicant

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Input holds the field values exactly as they were entered on the form.
type Input struct {
	AnnualIncome        string
	PartnerIncome       string
	FixedInterestPeriod string
	HasStudentLoan      bool
	PostalCode          string
}

// Application is the typed form of an Input that passed validation.
type Application struct {
	AnnualIncome        decimal.Decimal
	PartnerIncome       decimal.Decimal
	FixedInterestPeriod int
	HasStudentLoan      bool
	PostalCode          string
}

// Parse converts the text fields of an Input. An empty partner income is
// read as zero. Callers are expected to validate the Input first; Parse only
// reports values it cannot convert.
func Parse(in Input) (Application, error) {
	annual, err := decimal.NewFromString(in.AnnualIncome)
	if err != nil {
		return Application{}, fmt.Errorf("failed to parse annual income %q: %w", in.AnnualIncome, err)
	}

	partner := decimal.Zero
	if in.PartnerIncome != "" {
		partner, err = decimal.NewFromString(in.PartnerIncome)
		if err != nil {
			return Application{}, fmt.Errorf("failed to parse partner income %q: %w", in.PartnerIncome, err)
		}
	}

	period, err := strconv.Atoi(in.FixedInterestPeriod)
	if err != nil {
		return Application{}, fmt.Errorf("failed to parse fixed interest period %q: %w", in.FixedInterestPeriod, err)
	}

	return Application{
		AnnualIncome:        annual,
		PartnerIncome:       partner,
		FixedInterestPeriod: period,
		HasStudentLoan:      in.HasStudentLoan,
		PostalCode:          in.PostalCode,
	}, nil
}

// CombinedIncome returns the sum of the applicant's and the partner's annual income.
func (a Application) CombinedIncome() decimal.Decimal {
	return a.AnnualIncome.Add(a.PartnerIncome)
}
