// Package config defines the data structures related to configuration and
// includes functions for loading the config and building a calculator from it.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/mortgage-check/pkg/applicant"
	"github.com/iwvelando/mortgage-check/pkg/constants"
	"github.com/iwvelando/mortgage-check/pkg/mortgage"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for mortgage-check.
type Configuration struct {
	Calculation  CalculationConfig `yaml:"calculation,omitempty"`
	Applications []Application     `yaml:"applications,omitempty"`
	Logging      LoggingConfig     `yaml:"logging,omitempty"`
	Output       OutputConfig      `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, yaml
}

// CalculationConfig selects the loan formula and its parameters.
type CalculationConfig struct {
	Strategy          string         `yaml:"strategy,omitempty"` // flat, interest-adjusted
	StudentLoanFactor float64        `yaml:"studentLoanFactor,omitempty"`
	InterestRates     []RateOverride `yaml:"interestRates,omitempty"`
}

// RateOverride replaces the default annual rate of one fixed interest period.
type RateOverride struct {
	Period int     `yaml:"period"`
	Rate   float64 `yaml:"rate"`
}

// Application holds one applicant record as entered on the form. The form
// fields keep the YAML text as written, so 0123 stays "0123" and long digit
// strings are not rounded through a number.
type Application struct {
	Name                string `yaml:"name"`
	Active              bool   `yaml:"active"`
	AnnualIncome        string `yaml:"annualIncome"`
	PartnerIncome       string `yaml:"partnerIncome,omitempty"`
	FixedInterestPeriod string `yaml:"fixedInterestPeriod"`
	HasStudentLoan      bool   `yaml:"hasStudentLoan"`
	PostalCode          string `yaml:"postalCode"`
}

// Input returns the form values of the application.
func (a Application) Input() applicant.Input {
	return applicant.Input{
		AnnualIncome:        a.AnnualIncome,
		PartnerIncome:       a.PartnerIncome,
		FixedInterestPeriod: a.FixedInterestPeriod,
		HasStudentLoan:      a.HasStudentLoan,
		PostalCode:          a.PostalCode,
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	conf, err := load(data)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s, %w", configPath, err)
	}
	return conf, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	conf, err := load(data)
	if err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return conf, nil
}

// DefaultConfiguration returns the configuration used when no file is loaded.
// Environment overrides still apply.
func DefaultConfiguration() (*Configuration, error) {
	return decode(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("calculation.strategy", constants.DefaultStrategy)
	v.SetDefault("calculation.studentLoanFactor", constants.DefaultStudentLoanFactor)
	v.SetDefault("output.format", "")
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	return v
}

func load(data []byte) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	conf, err := decode(v)
	if err != nil {
		return nil, err
	}

	applications, err := decodeApplications(data)
	if err != nil {
		return nil, err
	}
	conf.Applications = applications
	return conf, nil
}

// decodeApplications reads the applications section with yaml.v3 directly.
// Viper hands mapstructure already-resolved scalars, which turns 0123 into 83
// and rounds long integers through float64.
func decodeApplications(data []byte) ([]Application, error) {
	var document struct {
		Applications []Application `yaml:"applications"`
	}
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("unable to decode applications, %w", err)
	}
	return document.Applications, nil
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// RateTable returns the default rate table with the configured overrides applied.
func (conf *Configuration) RateTable() (mortgage.RateTable, error) {
	overrides := make(map[int]float64, len(conf.Calculation.InterestRates))
	for _, override := range conf.Calculation.InterestRates {
		if _, exists := overrides[override.Period]; exists {
			return mortgage.RateTable{}, fmt.Errorf("interest rate for period %d is configured more than once", override.Period)
		}
		overrides[override.Period] = override.Rate
	}

	table, err := mortgage.DefaultRateTable().With(overrides)
	if err != nil {
		return mortgage.RateTable{}, fmt.Errorf("invalid interest rates: %w", err)
	}
	return table, nil
}

// Calculator builds the loan calculator described by the configuration.
func (conf *Configuration) Calculator() (*mortgage.Calculator, error) {
	strategy, err := mortgage.ParseStrategy(conf.Calculation.Strategy)
	if err != nil {
		return nil, err
	}

	rates, err := conf.RateTable()
	if err != nil {
		return nil, err
	}

	calc, err := mortgage.NewCalculator(rates, strategy, conf.Calculation.StudentLoanFactor)
	if err != nil {
		return nil, fmt.Errorf("invalid calculation settings: %w", err)
	}
	return calc, nil
}
