// Package evaluation runs the loan check for every configured application and
// collects the outcomes.
package evaluation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-check/internal/config"
	"github.com/iwvelando/mortgage-check/pkg/applicant"
	"github.com/iwvelando/mortgage-check/pkg/mortgage"
	"github.com/iwvelando/mortgage-check/pkg/validation"
	"go.uber.org/zap"
)

// Outcome holds the result of checking one application.
type Outcome struct {
	Name       string
	Input      applicant.Input
	Validation validation.Result
	// MaxLoanAmount is nil until a calculation succeeded.
	MaxLoanAmount *float64
}

// Calculated reports whether a maximum loan amount was computed.
func (o Outcome) Calculated() bool {
	return o.MaxLoanAmount != nil
}

// GetOutcomes checks all active applications of the configuration.
func GetOutcomes(logger *zap.Logger, conf config.Configuration) ([]Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	calc, err := conf.Calculator()
	if err != nil {
		return nil, err
	}

	logger.Debug("calculator configured",
		zap.String("op", "evaluation.GetOutcomes"),
		zap.String("strategy", string(calc.Strategy())),
		zap.Ints("periods", calc.Rates().Periods()),
	)

	var results []Outcome
	for _, application := range conf.Applications {
		if !application.Active {
			logger.Debug(fmt.Sprintf("skipping application %s because it is inactive", application.Name),
				zap.String("op", "evaluation.GetOutcomes"),
			)
			continue
		}
		results = append(results, Evaluate(logger, calc, application.Name, application.Input()))
	}

	return results, nil
}

// Evaluate validates one input and, when it is valid, calculates its maximum
// loan amount.
func Evaluate(logger *zap.Logger, calc *mortgage.Calculator, name string, in applicant.Input) Outcome {
	if logger == nil {
		logger = zap.NewNop()
	}

	outcome := Outcome{
		Name:       name,
		Input:      in,
		Validation: calc.Validate(in),
	}

	if !outcome.Validation.Valid() {
		logger.Info("application is invalid",
			zap.String("op", "evaluation.Evaluate"),
			zap.String("application", name),
			zap.String("reasons", strings.Join(outcome.Validation.Messages(), " ")),
		)
		return outcome
	}

	result, ok := calc.CalculateLoan(in)
	if !ok {
		logger.Warn("calculation produced no result for a valid application",
			zap.String("op", "evaluation.Evaluate"),
			zap.String("application", name),
		)
		return outcome
	}

	amount := result.MaxLoanAmount
	outcome.MaxLoanAmount = &amount

	logger.Debug("maximum loan amount calculated",
		zap.String("op", "evaluation.Evaluate"),
		zap.String("application", name),
		zap.Float64("maxLoanAmount", amount),
	)
	return outcome
}
