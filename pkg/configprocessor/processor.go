// Package configprocessor provides shared configuration processing utilities.
package configprocessor

import (
	"fmt"

	"github.com/iwvelando/mortgage-check/pkg/constants"
)

// ApplicationInfo represents applicant record information
type ApplicationInfo struct {
	Name   string
	Active bool
}

// RateInfo represents an interest rate override
type RateInfo struct {
	Period int
	Rate   float64
}

// CalculationInfo represents calculation settings information
type CalculationInfo struct {
	Strategy      string
	InterestRates []RateInfo
}

// Processor handles configuration processing and validation
type Processor struct {
	defaultRates map[int]float64
}

// NewProcessor creates a new configuration processor
func NewProcessor() *Processor {
	return &Processor{defaultRates: constants.DefaultInterestRates}
}

// ValidateConfiguration validates the configuration and returns warnings
func (p *Processor) ValidateConfiguration(calculation CalculationInfo, applications []ApplicationInfo) []string {
	var warnings []string

	warnings = append(warnings, p.validateApplications(applications)...)
	warnings = append(warnings, p.validateRates(calculation)...)

	if len(warnings) == 0 {
		return nil
	}
	return warnings
}

func (p *Processor) validateApplications(applications []ApplicationInfo) []string {
	var warnings []string

	active := 0
	seen := make(map[string]bool)
	for i, application := range applications {
		if !application.Active {
			continue
		}
		active++

		if application.Name == "" {
			warnings = append(warnings, fmt.Sprintf("Application #%d has no name", i+1))
			continue
		}
		if seen[application.Name] {
			warnings = append(warnings, fmt.Sprintf("Application '%s' is configured more than once", application.Name))
		}
		seen[application.Name] = true
	}

	if active == 0 {
		warnings = append(warnings, "No active applications configured")
	}
	return warnings
}

func (p *Processor) validateRates(calculation CalculationInfo) []string {
	var warnings []string

	effective := make(map[int]float64, len(p.defaultRates))
	for period, rate := range p.defaultRates {
		effective[period] = rate
	}
	for _, override := range calculation.InterestRates {
		if defaultRate, ok := p.defaultRates[override.Period]; ok && defaultRate == override.Rate {
			warnings = append(warnings, fmt.Sprintf("Interest rate override for period %d equals the default rate (%v)",
				override.Period, override.Rate))
		}
		effective[override.Period] = override.Rate
	}

	if calculation.Strategy != constants.StrategyInterestAdjusted {
		return warnings
	}

	for _, period := range constants.FixedInterestPeriods {
		rate, ok := effective[period]
		if !ok {
			continue
		}
		if rate*float64(period) >= 1 {
			warnings = append(warnings, fmt.Sprintf("Interest of %v over %d years is at least the loan amount - results for this period are not positive",
				rate, period))
		}
	}
	return warnings
}
