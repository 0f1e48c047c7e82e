package validation

import (
	"testing"

	"github.com/iwvelando/mortgage-check/pkg/constants"
	"pgregory.net/rapid"
)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func TestValidatePostalCode_Property(t *testing.T) {
	denied := make(map[string]bool, len(constants.InvalidPostalCodes))
	for _, code := range constants.InvalidPostalCodes {
		denied[code] = true
	}

	rapid.Check(t, func(rt *rapid.T) {
		code := rapid.OneOf(
			rapid.SampledFrom(constants.InvalidPostalCodes),
			rapid.StringMatching(`[0-9A-Za-z]{1,8}`),
		).Draw(rt, "code")

		valid := len(ValidatePostalCode(code)) == 0
		if valid == denied[code] {
			rt.Fatalf("ValidatePostalCode(%q) valid = %t, denied = %t", code, valid, denied[code])
		}
	})
}

func TestValidateAnnualIncome_Digits_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		value := rapid.StringMatching(`[0-9]{1,40}`).Draw(rt, "value")

		if reasons := ValidateAnnualIncome(value); len(reasons) != 0 {
			rt.Fatalf("ValidateAnnualIncome(%q) = %v, expected valid", value, reasons)
		}
	})
}

func TestValidateAnnualIncome_NonDigits_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		value := rapid.String().Draw(rt, "value")
		if isDigits(value) {
			rt.Skip("generated a digit string")
		}

		if reasons := ValidateAnnualIncome(value); len(reasons) == 0 {
			rt.Fatalf("ValidateAnnualIncome(%q) expected invalid", value)
		}
	})
}

func TestValidateFixedInterestPeriod_Property(t *testing.T) {
	accepted := map[string]bool{"1": true, "5": true, "10": true, "20": true, "30": true}

	rapid.Check(t, func(rt *rapid.T) {
		value := rapid.OneOf(
			rapid.SampledFrom([]string{"1", "5", "10", "20", "30"}),
			rapid.StringMatching(`[0-9]{0,3}`),
			rapid.String(),
		).Draw(rt, "value")

		valid := len(ValidateFixedInterestPeriod(value)) == 0
		if valid != accepted[value] {
			rt.Fatalf("ValidateFixedInterestPeriod(%q) valid = %t, expected %t", value, valid, accepted[value])
		}
	})
}

func TestValidatePartnerIncome_EmptyOrDigits_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		value := rapid.String().Draw(rt, "value")

		valid := len(ValidatePartnerIncome(value)) == 0
		expected := value == "" || isDigits(value)
		if valid != expected {
			rt.Fatalf("ValidatePartnerIncome(%q) valid = %t, expected %t", value, valid, expected)
		}
	})
}
