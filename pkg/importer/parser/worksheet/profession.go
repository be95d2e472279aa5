package worksheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/career-compass/projector/pkg/models"
	"github.com/shopspring/decimal"
)

// Profession worksheet columns. The loan schedule is in the columns
// "month 1" to "month 300".
const (
	Profession             = "Profession"
	RequiresSchool         = "Requires School"
	AverageSalary          = "Average Salary"
	SavingsDuringSchool    = "Savings During School"
	MonthsSchool           = "Months School"
	MonthlySavingsInSchool = "Monthly Savings in School"
	MonthlySavings         = "Monthly Savings"
)

// MonthColumn returns the name of the loan column for a 1-based month.
func MonthColumn(month int) string {
	return fmt.Sprintf("month %d", month)
}

// ParseProfessions parses a profession worksheet for one track.
//
// Rows without a profession name are skipped. Values that cannot be
// parsed are set to zero and their column is recorded in the Issues of
// the profile, which excludes it from projections. Empty loan cells are
// zero.
func ParseProfessions(f io.Reader, track models.Track) ([]models.Profession, error) {
	reader := newReader(f)

	c, err := header(reader, Profession)
	if err != nil {
		return []models.Profession{}, err
	}

	professions := []models.Profession{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return []models.Profession{}, csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		name := c.get(record, Profession)
		if name == "" {
			continue
		}

		professions = append(professions, parseProfession(c, record, name, track))
	}

	return professions, nil
}

func parseProfession(c columns, record []string, name string, track models.Track) models.Profession {
	p := models.Profession{
		Track:        track,
		Name:         name,
		LoanBalances: make([]decimal.Decimal, 0, models.ProjectionMonths),
		Issues:       []string{},
	}

	amount := func(column string) decimal.Decimal {
		v := c.get(record, column)
		if v == "" {
			return decimal.Zero
		}

		d, err := ParseAmount(v)
		if err != nil {
			p.Issues = append(p.Issues, column)
			return decimal.Zero
		}
		return d
	}

	requiresSchool, ok := parseBool(c.get(record, RequiresSchool))
	if !ok {
		p.Issues = append(p.Issues, RequiresSchool)
	}
	p.RequiresSchool = requiresSchool

	p.AverageSalary = amount(AverageSalary)
	p.SavingsDuringSchool = amount(SavingsDuringSchool)
	p.MonthlySavingsInSchool = amount(MonthlySavingsInSchool)
	p.MonthlySavingsPostSchool = amount(MonthlySavings)

	if v := c.get(record, MonthsSchool); v != "" {
		months, err := parseMonths(v)
		if err != nil || months < 0 {
			p.Issues = append(p.Issues, MonthsSchool)
		} else {
			p.MonthsOfSchool = months
		}
	}

	for m := 1; m <= models.ProjectionMonths; m++ {
		column := MonthColumn(m)
		if !c.has(column) {
			p.Issues = append(p.Issues, column)
			continue
		}
		p.LoanBalances = append(p.LoanBalances, amount(column))
	}

	return p
}

// parseMonths accepts whole numbers, also when they are exported as "12.0".
func parseMonths(s string) (int, error) {
	if months, err := strconv.Atoi(s); err == nil {
		return months, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("'%s' is not a whole number of months", s)
	}
	return int(d.IntPart()), nil
}

func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true, true
	case "no", "n", "false", "0", "":
		return false, true
	}
	return false, false
}
