package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/mortgage-check/internal/config"
	"github.com/iwvelando/mortgage-check/internal/evaluation"
	"github.com/iwvelando/mortgage-check/pkg/constants"
	"github.com/iwvelando/mortgage-check/pkg/output"
	"github.com/iwvelando/mortgage-check/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logSink is where logs go unless logging.outputFile is set. Results are
// written to stdout, so csv and yaml output stay parseable when piped.
const logSink = "stderr"

// applicantFlagNames lists the flags that describe a single application.
var applicantFlagNames = map[string]bool{
	"income":         true,
	"partner-income": true,
	"period":         true,
	"student-loan":   true,
	"postal-code":    true,
}

// applicantFlags holds the single-application flags.
type applicantFlags struct {
	income        string
	partnerIncome string
	period        string
	studentLoan   bool
	postalCode    string
	set           bool
}

func (a *applicantFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&a.income, "income", "", "annual income of a single application to check")
	fs.StringVar(&a.partnerIncome, "partner-income", "", "annual partner income")
	fs.StringVar(&a.period, "period", "", "fixed interest period in years (1, 5, 10, 20, 30)")
	fs.BoolVar(&a.studentLoan, "student-loan", false, "the applicant has a student loan")
	fs.StringVar(&a.postalCode, "postal-code", "", "postal code of the property")
}

// markSet switches to single-application mode when any applicant flag was
// given on the command line. Call it after fs has been parsed.
func (a *applicantFlags) markSet(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		if applicantFlagNames[f.Name] {
			a.set = true
		}
	})
}

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// CLI override takes precedence
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}

	zapLevel, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}

	encoder, err := newLogEncoder(loggingConfig.Format)
	if err != nil {
		return nil, err
	}

	sink, err := openLogSink(loggingConfig.OutputFile)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, sink, zapLevel)
	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.ErrorOutput(sink),
	), nil
}

func parseLogLevel(level string) (zapcore.Level, error) {
	if level == "" {
		level = constants.DefaultLogLevel
	}

	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

func newLogEncoder(format string) (zapcore.Encoder, error) {
	if format == "" {
		format = constants.DefaultLogFormat
	}

	switch format {
	case "console":
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), nil
	case "json":
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}

// logSinkPath returns the zap sink URL for the configured output file.
func logSinkPath(outputFile string) string {
	if outputFile == "" {
		return logSink
	}
	return outputFile
}

func openLogSink(outputFile string) (zapcore.WriteSyncer, error) {
	if outputFile != "" {
		if dir := filepath.Dir(outputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
	}

	sink, _, err := zap.Open(logSinkPath(outputFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open log output %s: %v", logSinkPath(outputFile), err)
	}
	return sink, nil
}

// loadConfiguration reads the config file. A missing file is tolerated when
// the application is given on the command line.
func loadConfiguration(path string, flags applicantFlags) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(path)
	if err == nil {
		return conf, nil
	}
	if !flags.set {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr == nil || !errors.Is(statErr, os.ErrNotExist) {
		return nil, err
	}
	return config.DefaultConfiguration()
}

// applyApplicantFlags replaces the configured applications with the one given
// on the command line.
func applyApplicantFlags(conf *config.Configuration, flags applicantFlags) {
	if !flags.set {
		return
	}
	conf.Applications = []config.Application{
		{
			Name:                "command line",
			Active:              true,
			AnnualIncome:        flags.income,
			PartnerIncome:       flags.partnerIncome,
			FixedInterestPeriod: flags.period,
			HasStudentLoan:      flags.studentLoan,
			PostalCode:          flags.postalCode,
		},
	}
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, yaml")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")

	var applicant applicantFlags
	applicant.register(flag.CommandLine)
	flag.Parse()
	applicant.markSet(flag.CommandLine)

	conf, err := loadConfiguration(*configLocation, applicant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	applyApplicantFlags(conf, applicant)

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	results, err := evaluation.GetOutcomes(logger, *conf)
	if err != nil {
		logger.Fatal("failed to check applications",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results)
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	case constants.OutputFormatYAML:
		output.YAMLFormat(results)
	}
}
