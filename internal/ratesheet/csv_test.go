package ratesheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSheet(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rate_sheet.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSheet(t, "Lender,Max Loan Amount,Max LTV,Max DTI,Min Credit Score,Interest Rate\n"+
		"Bank of Big,300000,0.85,0.47,740,4.35\n"+
		"West Central Credit Union,400000,0.9,0.35,760,2.7\n")

	recs, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, recs.Len())

	first := recs.Items[0]
	assert.Equal(t, "Bank of Big", first.Lender)
	assert.Equal(t, 300000.0, first.MaxLoanAmount)
	assert.Equal(t, 0.85, first.MaxLTV)
	assert.Equal(t, 0.47, first.MaxDTI)
	assert.Equal(t, 740, first.MinCreditScore)
	assert.Equal(t, 4.35, first.InterestRate)

	assert.Equal(t, []string{"Bank of Big", "West Central Credit Union"}, recs.Lenders())
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeSheet(t, "Lender,Max Loan Amount,Max LTV,Max DTI,Min Credit Score,Interest Rate\n")

	recs, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, recs.Len())
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMalformedRow(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name: "non-numeric amount",
			contents: "Lender,Max Loan Amount,Max LTV,Max DTI,Min Credit Score,Interest Rate\n" +
				"Bank of Big,lots,0.85,0.47,740,4.35\n",
		},
		{
			name: "missing field",
			contents: "Lender,Max Loan Amount,Max LTV,Max DTI,Min Credit Score,Interest Rate\n" +
				"Bank of Big,300000,0.85,0.47,740\n",
		},
		{
			name: "fractional credit score",
			contents: "Lender,Max Loan Amount,Max LTV,Max DTI,Min Credit Score,Interest Rate\n" +
				"Bank of Big,300000,0.85,0.47,740.5,4.35\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSheet(t, tt.contents))
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, 2, parseErr.Line)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	recs := &Records{Items: []*Record{
		{Lender: "Bank of Big", MaxLoanAmount: 300000, MaxLTV: 0.85, MaxDTI: 0.47, MinCreditScore: 740, InterestRate: 4.35},
		{Lender: "Prosperity Bank", MaxLoanAmount: 500000, MaxLTV: 0.8, MaxDTI: 0.4, MinCreditScore: 600, InterestRate: 3.5},
	}}

	path := filepath.Join(t.TempDir(), "qualifying_loans.csv")
	require.NoError(t, Save(path, recs))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, recs.Len(), loaded.Len())
	for i, rec := range recs.Items {
		assert.Equal(t, rec, loaded.Items[i])
	}
}

func TestSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qualifying_loans.csv")
	require.ErrorIs(t, Save(path, &Records{}), ErrNoRecords)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFilterDoesNotMutate(t *testing.T) {
	recs := &Records{Items: []*Record{
		{Lender: "A", MinCreditScore: 600},
		{Lender: "B", MinCreditScore: 700},
		{Lender: "C", MinCreditScore: 650},
	}}

	kept := recs.Filter(func(r *Record) bool { return r.MinCreditScore <= 650 })

	assert.Equal(t, []string{"A", "C"}, kept.Lenders())
	assert.Equal(t, []string{"A", "B", "C"}, recs.Lenders())
}
