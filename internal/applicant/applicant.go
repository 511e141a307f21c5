// Package applicant holds the applicant's financial profile and the
// interactive dialog that gathers it.
package applicant

import "errors"

var (
	ErrNegativeCreditScore = errors.New("credit score must not be negative")
	ErrNegativeDebt        = errors.New("monthly debt must not be negative")
	ErrNonPositiveIncome   = errors.New("monthly income must be greater than zero")
	ErrNonPositiveLoan     = errors.New("loan amount must be greater than zero")
	ErrNonPositiveHome     = errors.New("home value must be greater than zero")
)

// Profile is the applicant's financial information, constructed once per
// run and read-only afterwards.
type Profile struct {
	CreditScore   int
	MonthlyDebt   float64
	MonthlyIncome float64
	LoanAmount    float64
	HomeValue     float64
}

// Validate rejects profiles that cannot be qualified. Income and home
// value must be strictly positive so the ratio calculations are defined.
func (p *Profile) Validate() error {
	switch {
	case p.CreditScore < 0:
		return ErrNegativeCreditScore
	case p.MonthlyDebt < 0:
		return ErrNegativeDebt
	case p.MonthlyIncome <= 0:
		return ErrNonPositiveIncome
	case p.LoanAmount <= 0:
		return ErrNonPositiveLoan
	case p.HomeValue <= 0:
		return ErrNonPositiveHome
	}
	return nil
}
