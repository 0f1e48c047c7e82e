package config

import "github.com/iwvelando/mortgage-check/pkg/configprocessor"

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	var applications []configprocessor.ApplicationInfo
	for _, application := range conf.Applications {
		applications = append(applications, configprocessor.ApplicationInfo{
			Name:   application.Name,
			Active: application.Active,
		})
	}

	var rates []configprocessor.RateInfo
	for _, override := range conf.Calculation.InterestRates {
		rates = append(rates, configprocessor.RateInfo{
			Period: override.Period,
			Rate:   override.Rate,
		})
	}

	processor := configprocessor.NewProcessor()
	return processor.ValidateConfiguration(configprocessor.CalculationInfo{
		Strategy:      conf.Calculation.Strategy,
		InterestRates: rates,
	}, applications)
}
