package validation

import (
	"regexp"

	"github.com/iwvelando/mortgage-check/pkg/applicant"
	"github.com/iwvelando/mortgage-check/pkg/constants"
)

// Field names a form field. The values match the form control names.
type Field string

const (
	FieldAnnualIncome        Field = "annualIncome"
	FieldFixedInterestPeriod Field = "fixedInterestPeriod"
	FieldPartnerIncome       Field = "partnerIncome"
	FieldHasStudentLoan      Field = "hasStudentLoan"
	FieldPostalCode          Field = "postalCode"
)

// Fields lists every form field in display order.
var Fields = []Field{
	FieldAnnualIncome,
	FieldFixedInterestPeriod,
	FieldPartnerIncome,
	FieldHasStudentLoan,
	FieldPostalCode,
}

// Reason names a failed field rule.
type Reason string

const (
	ReasonRequired          Reason = "required"
	ReasonPattern           Reason = "pattern"
	ReasonInvalidPostalCode Reason = "invalidPostalCode"
)

var (
	digitsPattern         = regexp.MustCompile(`^\d+$`)
	optionalDigitsPattern = regexp.MustCompile(`^\d*$`)
	periodPattern         = regexp.MustCompile(`^(1|5|10|20|30)$`)
)

// ValidateAnnualIncome requires one or more decimal digits.
func ValidateAnnualIncome(value string) []Reason {
	if value == "" {
		return []Reason{ReasonRequired}
	}
	if !digitsPattern.MatchString(value) {
		return []Reason{ReasonPattern}
	}
	return nil
}

// ValidateFixedInterestPeriod requires one of the accepted periods written as text.
func ValidateFixedInterestPeriod(value string) []Reason {
	if value == "" {
		return []Reason{ReasonRequired}
	}
	if !periodPattern.MatchString(value) {
		return []Reason{ReasonPattern}
	}
	return nil
}

// ValidatePartnerIncome allows an empty value or decimal digits only.
func ValidatePartnerIncome(value string) []Reason {
	if !optionalDigitsPattern.MatchString(value) {
		return []Reason{ReasonPattern}
	}
	return nil
}

// ValidateStudentLoan never fails.
func ValidateStudentLoan(bool) []Reason {
	return nil
}

// ValidatePostalCode requires a value that is not on the denylist.
func ValidatePostalCode(value string) []Reason {
	if value == "" {
		return []Reason{ReasonRequired}
	}
	for _, invalid := range constants.InvalidPostalCodes {
		if value == invalid {
			return []Reason{ReasonInvalidPostalCode}
		}
	}
	return nil
}

// FieldResult holds the failed rules of one field.
type FieldResult struct {
	Field   Field
	Reasons []Reason
}

// Valid reports whether no rule failed for the field.
func (f FieldResult) Valid() bool {
	return len(f.Reasons) == 0
}

// Result is the outcome of validating a whole form.
type Result struct {
	Fields []FieldResult
}

// Validate runs every field rule against the input.
func Validate(in applicant.Input) Result {
	return Result{
		Fields: []FieldResult{
			{Field: FieldAnnualIncome, Reasons: ValidateAnnualIncome(in.AnnualIncome)},
			{Field: FieldFixedInterestPeriod, Reasons: ValidateFixedInterestPeriod(in.FixedInterestPeriod)},
			{Field: FieldPartnerIncome, Reasons: ValidatePartnerIncome(in.PartnerIncome)},
			{Field: FieldHasStudentLoan, Reasons: ValidateStudentLoan(in.HasStudentLoan)},
			{Field: FieldPostalCode, Reasons: ValidatePostalCode(in.PostalCode)},
		},
	}
}

// Valid reports whether every field passed.
func (r Result) Valid() bool {
	for _, field := range r.Fields {
		if !field.Valid() {
			return false
		}
	}
	return true
}

// Field returns the result for a single field. Unknown fields are valid.
func (r Result) Field(field Field) FieldResult {
	for _, result := range r.Fields {
		if result.Field == field {
			return result
		}
	}
	return FieldResult{Field: field}
}

// Messages returns the end-user message of every failed rule in field order.
func (r Result) Messages() []string {
	var messages []string
	for _, field := range r.Fields {
		for _, reason := range field.Reasons {
			messages = append(messages, Message(field.Field, reason))
		}
	}
	return messages
}
