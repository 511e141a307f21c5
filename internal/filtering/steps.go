package filtering

import (
	"github.com/finqualify/loan-qualifier/internal/ratesheet"
)

// All boundaries below are inclusive: an applicant exactly at a lender's
// threshold qualifies.

type maxLoanSizeFilter struct {
	loanAmount float64
}

// NewMaxLoanSize creates a filter that keeps lenders willing to underwrite
// at least the requested loan amount.
func NewMaxLoanSize(loanAmount float64) Filter {
	return &maxLoanSizeFilter{loanAmount: loanAmount}
}

func (f *maxLoanSizeFilter) Name() string { return "max_loan_size" }

func (f *maxLoanSizeFilter) Apply(recs *ratesheet.Records) (*ratesheet.Records, Step, error) {
	initial := recs.Len()
	kept := recs.Filter(func(r *ratesheet.Record) bool {
		return r.MaxLoanAmount >= f.loanAmount
	})

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}

type creditScoreFilter struct {
	creditScore int
}

// NewCreditScore creates a filter that keeps lenders whose minimum credit
// score the applicant meets.
func NewCreditScore(creditScore int) Filter {
	return &creditScoreFilter{creditScore: creditScore}
}

func (f *creditScoreFilter) Name() string { return "credit_score" }

func (f *creditScoreFilter) Apply(recs *ratesheet.Records) (*ratesheet.Records, Step, error) {
	initial := recs.Len()
	kept := recs.Filter(func(r *ratesheet.Record) bool {
		return r.MinCreditScore <= f.creditScore
	})

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}

type debtToIncomeFilter struct {
	ratio float64
}

// NewDebtToIncome creates a filter that keeps lenders whose DTI ceiling is
// at or above the applicant's debt-to-income ratio.
func NewDebtToIncome(ratio float64) Filter {
	return &debtToIncomeFilter{ratio: ratio}
}

func (f *debtToIncomeFilter) Name() string { return "debt_to_income" }

func (f *debtToIncomeFilter) Apply(recs *ratesheet.Records) (*ratesheet.Records, Step, error) {
	initial := recs.Len()
	kept := recs.Filter(func(r *ratesheet.Record) bool {
		return r.MaxDTI >= f.ratio
	})

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}

type loanToValueFilter struct {
	ratio float64
}

// NewLoanToValue creates a filter that keeps lenders whose LTV ceiling is
// at or above the applicant's loan-to-value ratio.
func NewLoanToValue(ratio float64) Filter {
	return &loanToValueFilter{ratio: ratio}
}

func (f *loanToValueFilter) Name() string { return "loan_to_value" }

func (f *loanToValueFilter) Apply(recs *ratesheet.Records) (*ratesheet.Records, Step, error) {
	initial := recs.Len()
	kept := recs.Filter(func(r *ratesheet.Record) bool {
		return r.MaxLTV >= f.ratio
	})

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}
