package validation

import "fmt"

var messages = map[Field]map[Reason]string{
	FieldAnnualIncome: {
		ReasonRequired: "Annual income is required.",
		ReasonPattern:  "Annual income must be a whole number.",
	},
	FieldFixedInterestPeriod: {
		ReasonRequired: "Fixed interest period is required.",
		ReasonPattern:  "Fixed interest period must be 1, 5, 10, 20 or 30 years.",
	},
	FieldPartnerIncome: {
		ReasonPattern: "Partner income must be a whole number.",
	},
	FieldPostalCode: {
		ReasonRequired:          "Postal code is required.",
		ReasonInvalidPostalCode: "Invalid postal code. Please enter a valid postal code.",
	},
}

// Message returns the text shown to the user when a rule fails for a field.
func Message(field Field, reason Reason) string {
	if msg, ok := messages[field][reason]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid (%s).", field, reason)
}
