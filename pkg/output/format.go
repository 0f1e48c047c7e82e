// Package output provides utilities for formatting and displaying loan check results.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-check/internal/evaluation"
	"gopkg.in/yaml.v3"
)

const invalidAmount = "invalid"

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []evaluation.Outcome) {
	_ = WritePretty(os.Stdout, results)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []evaluation.Outcome) {
	_ = WriteCSV(os.Stdout, results)
}

// YAMLFormat outputs the results as a YAML document.
func YAMLFormat(results []evaluation.Outcome) {
	_ = WriteYAML(os.Stdout, results)
}

// CsvString returns the CSV representation of the results.
func CsvString(results []evaluation.Outcome) string {
	var buf bytes.Buffer
	_ = WriteCSV(&buf, results)
	return buf.String()
}

// WritePretty writes the human-readable table to w.
func WritePretty(w io.Writer, results []evaluation.Outcome) error {
	if _, err := fmt.Fprintf(w, "--- Mortgage check results ---\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Application | Maximum loan amount | Notes\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "___________ | ___________________ | _____\n"); err != nil {
		return err
	}
	for _, result := range results {
		_, err := fmt.Fprintf(w, "%s | %s | %s\n", result.Name, amountString(result), strings.Join(result.Validation.Messages(), " "))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes one record per result to w, preceded by a header.
func WriteCSV(w io.Writer, results []evaluation.Outcome) error {
	writer := csv.NewWriter(w)
	header := []string{
		"application", "annualIncome", "partnerIncome", "fixedInterestPeriod",
		"hasStudentLoan", "postalCode", "valid", "maxLoanAmount", "messages",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, result := range results {
		record := []string{
			result.Name,
			result.Input.AnnualIncome,
			result.Input.PartnerIncome,
			result.Input.FixedInterestPeriod,
			strconv.FormatBool(result.Input.HasStudentLoan),
			result.Input.PostalCode,
			strconv.FormatBool(result.Validation.Valid()),
			amountString(result),
			strings.Join(result.Validation.Messages(), " "),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

type yamlOutcome struct {
	Application   string              `yaml:"application"`
	Valid         bool                `yaml:"valid"`
	MaxLoanAmount *float64            `yaml:"maxLoanAmount,omitempty"`
	Errors        map[string][]string `yaml:"errors,omitempty"`
}

// WriteYAML writes the results as a YAML sequence to w.
func WriteYAML(w io.Writer, results []evaluation.Outcome) error {
	documents := make([]yamlOutcome, 0, len(results))
	for _, result := range results {
		doc := yamlOutcome{
			Application:   result.Name,
			Valid:         result.Validation.Valid(),
			MaxLoanAmount: result.MaxLoanAmount,
		}
		for _, field := range result.Validation.Fields {
			if field.Valid() {
				continue
			}
			if doc.Errors == nil {
				doc.Errors = make(map[string][]string)
			}
			for _, reason := range field.Reasons {
				doc.Errors[string(field.Field)] = append(doc.Errors[string(field.Field)], string(reason))
			}
		}
		documents = append(documents, doc)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(documents); err != nil {
		return err
	}
	return encoder.Close()
}

func amountString(result evaluation.Outcome) string {
	if !result.Calculated() {
		return invalidAmount
	}
	return strconv.FormatFloat(*result.MaxLoanAmount, 'f', -1, 64)
}
