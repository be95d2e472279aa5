package worksheet

import (
	"fmt"
	"io"

	"github.com/career-compass/projector/pkg/models"
)

// Tax worksheet columns.
const (
	Status            = "Status"
	Type              = "Type"
	LowerBound        = "Lower Bound"
	UpperBound        = "Upper Bound"
	Rate              = "Rate"
	StandardDeduction = "Standard Deduction"
)

// ParseTaxBrackets parses the tax worksheet.
//
// Tax data is trusted as given, but every row must be complete.
// An empty upper bound marks the open-ended top bracket.
func ParseTaxBrackets(f io.Reader) ([]models.TaxBracket, error) {
	reader := newReader(f)

	c, err := header(reader, Status, Type, LowerBound, UpperBound, Rate, StandardDeduction)
	if err != nil {
		return []models.TaxBracket{}, err
	}

	brackets := []models.TaxBracket{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return []models.TaxBracket{}, csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		if blank(record) {
			continue
		}

		status, err := models.ParseMaritalStatus(c.get(record, Status))
		if err != nil {
			return []models.TaxBracket{}, csvReadError(reader, err)
		}

		taxType, err := models.ParseTaxType(c.get(record, Type))
		if err != nil {
			return []models.TaxBracket{}, csvReadError(reader, err)
		}

		lower, err := ParseAmount(c.get(record, LowerBound))
		if err != nil {
			return []models.TaxBracket{}, csvReadError(reader, fmt.Errorf("lower bound: %w", err))
		}

		upper, err := parseOptionalAmount(c.get(record, UpperBound))
		if err != nil {
			return []models.TaxBracket{}, csvReadError(reader, fmt.Errorf("upper bound: %w", err))
		}

		rate, err := ParseRate(c.get(record, Rate))
		if err != nil {
			return []models.TaxBracket{}, csvReadError(reader, fmt.Errorf("rate: %w", err))
		}

		deduction, err := ParseAmount(c.get(record, StandardDeduction))
		if err != nil {
			return []models.TaxBracket{}, csvReadError(reader, fmt.Errorf("standard deduction: %w", err))
		}

		brackets = append(brackets, models.TaxBracket{
			Status:            status,
			Type:              taxType,
			LowerBound:        lower,
			UpperBound:        upper,
			Rate:              rate,
			StandardDeduction: deduction,
		})
	}

	return brackets, nil
}
