package ratesheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Header is the column order every rate sheet must carry. Record fields
// map to these columns positionally.
var Header = []string{"Lender", "Max Loan Amount", "Max LTV", "Max DTI", "Min Credit Score", "Interest Rate"}

var (
	// ErrNotFound is returned by Load when the rate-sheet path does not exist.
	ErrNotFound = errors.New("rate sheet not found")

	// ErrNoRecords is returned by Save when there is nothing to write.
	ErrNoRecords = errors.New("no records to save")
)

// ParseError describes a rate-sheet row that does not match the expected
// schema. Line is 1-based and counts the header.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rate sheet line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a header-bearing rate-sheet CSV from path. Loading is
// all-or-nothing: the first malformed row aborts with a ParseError.
func Load(path string) (*Records, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening rate sheet %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(Header)

	rows, err := reader.ReadAll()
	if err != nil {
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			return nil, &ParseError{Line: csvErr.Line, Err: csvErr.Err}
		}
		return nil, fmt.Errorf("reading rate sheet %s: %w", path, err)
	}

	recs := &Records{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Err: err}
		}
		recs.Items = append(recs.Items, rec)
	}

	return recs, nil
}

func parseRow(row []string) (*Record, error) {
	maxLoan, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return nil, fmt.Errorf("max loan amount %q: %w", row[1], err)
	}

	maxLTV, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return nil, fmt.Errorf("max ltv %q: %w", row[2], err)
	}

	maxDTI, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return nil, fmt.Errorf("max dti %q: %w", row[3], err)
	}

	minScore, err := strconv.Atoi(row[4])
	if err != nil {
		return nil, fmt.Errorf("min credit score %q: %w", row[4], err)
	}

	rate, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return nil, fmt.Errorf("interest rate %q: %w", row[5], err)
	}

	return &Record{
		Lender:         row[0],
		MaxLoanAmount:  maxLoan,
		MaxLTV:         maxLTV,
		MaxDTI:         maxDTI,
		MinCreditScore: minScore,
		InterestRate:   rate,
	}, nil
}

// Save writes the records to path in the same schema they were loaded
// with, header included. Saving an empty collection is refused.
func Save(path string, recs *Records) error {
	if recs.Len() == 0 {
		return ErrNoRecords
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range recs.Items {
		row := []string{
			rec.Lender,
			strconv.FormatFloat(rec.MaxLoanAmount, 'f', -1, 64),
			strconv.FormatFloat(rec.MaxLTV, 'f', -1, 64),
			strconv.FormatFloat(rec.MaxDTI, 'f', -1, 64),
			strconv.Itoa(rec.MinCreditScore),
			strconv.FormatFloat(rec.InterestRate, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing record for %s: %w", rec.Lender, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	return nil
}
