package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-check/internal/config"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		logging   config.LoggingConfig
		override  string
		expectErr bool
	}{
		{name: "Defaults", logging: config.LoggingConfig{}},
		{name: "Console debug", logging: config.LoggingConfig{Level: "debug", Format: "console"}},
		{name: "Override wins", logging: config.LoggingConfig{Level: "verbose"}, override: "warn"},
		{name: "Invalid level", logging: config.LoggingConfig{Level: "verbose"}, expectErr: true},
		{name: "Invalid format", logging: config.LoggingConfig{Format: "xml"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.logging, tt.override)
			if tt.expectErr {
				if err == nil {
					t.Error("initializeLogger() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() unexpected error = %v", err)
			}
			if logger == nil {
				t.Fatal("initializeLogger() returned nil logger")
			}
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mortgage-check.log")

	logger, err := initializeLogger(config.LoggingConfig{OutputFile: path}, "")
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log output in file")
	}
}

func TestLogSinkPath(t *testing.T) {
	if got := logSinkPath(""); got != "stderr" {
		t.Errorf("logSinkPath(\"\") = %q, expected stderr", got)
	}
	if got := logSinkPath("app.log"); got != "app.log" {
		t.Errorf("logSinkPath(\"app.log\") = %q, expected app.log", got)
	}
}

func TestInitializeLoggerKeepsStdoutForResults(t *testing.T) {
	stdoutReader, stdoutWriter, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stdout pipe: %v", err)
	}
	stderrReader, stderrWriter, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stderr pipe: %v", err)
	}

	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdoutWriter, stderrWriter
	defer func() {
		os.Stdout, os.Stderr = stdout, stderr
	}()

	logger, err := initializeLogger(config.LoggingConfig{}, "")
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}
	logger.Info("checking applications")
	_ = logger.Sync()

	_ = stdoutWriter.Close()
	_ = stderrWriter.Close()
	written, _ := io.ReadAll(stdoutReader)
	logged, _ := io.ReadAll(stderrReader)

	if len(written) != 0 {
		t.Errorf("expected nothing on stdout, got %q", written)
	}
	if !strings.Contains(string(logged), "checking applications") {
		t.Errorf("expected log line on stderr, got %q", logged)
	}
}

func TestApplicantFlagsMarkSet(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{name: "No flags", args: nil, expected: false},
		{name: "Config only", args: []string{"-config", "other.yaml"}, expected: false},
		{name: "Income", args: []string{"-income", "60000"}, expected: true},
		{name: "Postal code", args: []string{"-postal-code", "9600"}, expected: true},
		{name: "Period and student loan", args: []string{"-period", "10", "-student-loan"}, expected: true},
		{name: "Partner income", args: []string{"-partner-income", "30000"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("mortgage-check", flag.ContinueOnError)
			fs.String("config", "", "")

			var flags applicantFlags
			flags.register(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			flags.markSet(fs)

			if flags.set != tt.expected {
				t.Errorf("markSet() set = %v, expected %v", flags.set, tt.expected)
			}
		})
	}
}

func TestApplicantFlagsPeriodOnlyReplacesApplications(t *testing.T) {
	fs := flag.NewFlagSet("mortgage-check", flag.ContinueOnError)
	var flags applicantFlags
	flags.register(fs)
	if err := fs.Parse([]string{"-period", "10", "-student-loan"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	flags.markSet(fs)

	conf := &config.Configuration{
		Applications: []config.Application{{Name: "configured", Active: true}},
	}
	applyApplicantFlags(conf, flags)
	if len(conf.Applications) != 1 || conf.Applications[0].Name != "command line" {
		t.Fatalf("expected the command line application, got %+v", conf.Applications)
	}
	if application := conf.Applications[0]; application.FixedInterestPeriod != "10" || !application.HasStudentLoan {
		t.Errorf("expected period 10 with student loan, got %+v", application)
	}
}

func TestLoadConfigurationWithApplicantFlags(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := loadConfiguration(missing, applicantFlags{}); err == nil {
		t.Error("loadConfiguration() expected error for missing file without applicant flags")
	}

	flags := applicantFlags{
		income:     "60000",
		period:     "30",
		postalCode: "9600",
		set:        true,
	}
	conf, err := loadConfiguration(missing, flags)
	if err != nil {
		t.Fatalf("loadConfiguration() error = %v", err)
	}

	applyApplicantFlags(conf, flags)
	if len(conf.Applications) != 1 {
		t.Fatalf("expected one application, got %d", len(conf.Applications))
	}
	application := conf.Applications[0]
	if !application.Active || application.AnnualIncome != "60000" || application.PostalCode != "9600" {
		t.Errorf("unexpected application %+v", application)
	}
	if conf.Calculation.Strategy != "flat" {
		t.Errorf("expected default strategy, got %q", conf.Calculation.Strategy)
	}
}

func TestLoadConfigurationInvalidFileWithApplicantFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("applications: [\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := loadConfiguration(path, applicantFlags{set: true}); err == nil {
		t.Error("loadConfiguration() expected error for malformed existing file")
	}
}

func TestApplyApplicantFlagsWithoutFlags(t *testing.T) {
	conf := &config.Configuration{
		Applications: []config.Application{{Name: "configured", Active: true}},
	}
	applyApplicantFlags(conf, applicantFlags{})
	if len(conf.Applications) != 1 || conf.Applications[0].Name != "configured" {
		t.Errorf("expected configured applications to be kept, got %+v", conf.Applications)
	}
}
