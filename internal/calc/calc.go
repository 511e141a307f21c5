// Package calc provides the ratio calculations used to qualify an
// applicant against a lender's thresholds.
package calc

import "errors"

// ErrZeroDenominator is returned when a ratio would divide by zero. It
// signals malformed applicant input (zero income or zero home value);
// callers are expected to validate before calling.
var ErrZeroDenominator = errors.New("division by zero denominator")

// MonthlyDebtRatio returns the applicant's debt-to-income ratio. No
// rounding is applied; formatting is up to the caller.
func MonthlyDebtRatio(debt, income float64) (float64, error) {
	if income == 0 {
		return 0, ErrZeroDenominator
	}
	return debt / income, nil
}

// LoanToValueRatio returns the requested loan amount divided by the home
// value. No rounding is applied; formatting is up to the caller.
func LoanToValueRatio(loanAmount, homeValue float64) (float64, error) {
	if homeValue == 0 {
		return 0, ErrZeroDenominator
	}
	return loanAmount / homeValue, nil
}
