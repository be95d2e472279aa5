// Package worksheet parses the reference worksheets exported as CSV:
// tax brackets, profession costs and lifestyle decisions.
package worksheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmpty         = errors.New("the CSV file has no header")
	ErrMissingColumn = errors.New("a required column is missing")
)

// columns maps trimmed, lowercased header names to their index.
type columns map[string]int

func (c columns) has(name string) bool {
	_, ok := c[strings.ToLower(name)]
	return ok
}

// get returns the trimmed value of a column, or an empty string
// if the column does not exist or the record is too short.
func (c columns) get(record []string, name string) string {
	i, ok := c[strings.ToLower(name)]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// newReader creates a CSV reader that tolerates rows of varying length.
func newReader(f io.Reader) *csv.Reader {
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

// header reads the header row and verifies that the required columns exist.
// Spreadsheet exports often pad header names with spaces, they are trimmed.
func header(reader *csv.Reader, required ...string) (columns, error) {
	record, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("could not read the CSV header: %w", err)
	}

	c := make(columns, len(record))
	for i, name := range record {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, ok := c[key]; !ok {
			c[key] = i
		}
	}

	for _, name := range required {
		if !c.has(name) {
			return nil, fmt.Errorf("%w: '%s'", ErrMissingColumn, name)
		}
	}

	return c, nil
}

// blank reports if all fields of a record are empty.
func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// csvReadError returns the error including the line of the input it occurred in.
func csvReadError(r *csv.Reader, err error) error {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(0)

	return fmt.Errorf("error in line %d of the CSV: %w", line, err)
}

// ParseAmount parses a money value as it is exported from spreadsheets.
//
// Currency symbols, thousands separators and surrounding whitespace are
// ignored. Values in parentheses are negative.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}

	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("'%s' is not a valid amount", s)
	}

	if negative {
		return d.Neg(), nil
	}
	return d, nil
}

// ParseRate parses a rate given either as a fraction ("0.12") or as a
// percentage ("12%").
func ParseRate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)

	if strings.HasSuffix(s, "%") {
		d, err := ParseAmount(strings.TrimSuffix(s, "%"))
		if err != nil {
			return decimal.Zero, err
		}
		return d.Div(decimal.NewFromInt(100)), nil
	}

	return ParseAmount(s)
}

// parseOptionalAmount parses an amount that may be absent.
func parseOptionalAmount(s string) (decimal.NullDecimal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nan", "inf", "infinity", "none", "n/a":
		return decimal.NullDecimal{}, nil
	}

	d, err := ParseAmount(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
