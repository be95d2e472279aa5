package projection

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// AccountingLabel formats an amount in accounting style: "$1,234.56",
// negative amounts in parentheses as "($1,234.56)".
func AccountingLabel(d decimal.Decimal) string {
	label := printer.Sprintf("$%.2f", d.Abs().Round(2).InexactFloat64())
	if d.Round(2).IsNegative() {
		return fmt.Sprintf("(%s)", label)
	}
	return label
}

// Header is the header row of the long-format export.
var Header = []string{"Name", "Profession", "Month", "Savings Balance", "Loan Balance", "Net Worth", "Net Worth Label"}

// WriteCSV writes projections in long format, one row per participant and month.
func WriteCSV(w io.Writer, projections []Projection) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return err
	}

	for _, p := range projections {
		for _, s := range p.Samples {
			err := writer.Write([]string{
				p.Name,
				p.Profession,
				strconv.Itoa(s.Month),
				s.Savings.StringFixed(2),
				s.Loan.StringFixed(2),
				s.NetWorth.StringFixed(2),
				AccountingLabel(s.NetWorth),
			})
			if err != nil {
				return fmt.Errorf("error writing month %d of '%s': %w", s.Month, p.Name, err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
