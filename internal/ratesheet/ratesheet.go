// Package ratesheet holds the lender rate-sheet domain model and its CSV
// source and sink.
package ratesheet

// Record is a single lender row from a rate sheet. MaxLoanAmount is the
// largest loan the lender will underwrite; MaxLTV, MaxDTI and
// MinCreditScore are the qualification thresholds.
type Record struct {
	Lender         string
	MaxLoanAmount  float64
	MaxLTV         float64
	MaxDTI         float64
	MinCreditScore int
	InterestRate   float64
}

// Records is a loaded rate sheet.
type Records struct {
	Items []*Record
}

func (r *Records) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Items)
}

// Filter returns a new collection holding the records for which keep
// returns true, in their original order. The receiver is not modified.
func (r *Records) Filter(keep func(*Record) bool) *Records {
	out := &Records{Items: make([]*Record, 0, r.Len())}
	if r == nil {
		return out
	}
	for _, rec := range r.Items {
		if keep(rec) {
			out.Items = append(out.Items, rec)
		}
	}
	return out
}

// Lenders returns the lender names in record order.
func (r *Records) Lenders() []string {
	names := make([]string, 0, r.Len())
	for _, rec := range r.Items {
		names = append(names, rec.Lender)
	}
	return names
}
