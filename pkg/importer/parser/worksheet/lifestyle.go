package worksheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/career-compass/projector/pkg/models"
)

// Lifestyle worksheet columns.
const (
	Category    = "Category"
	Option      = "Option"
	MonthlyCost = "Monthly Cost"
	Percentage  = "Percentage"
)

// ParseLifestyle parses the lifestyle decisions worksheet.
//
// The position of each option is its row number, which keeps the
// category order of the worksheet. An empty monthly cost is stored as
// null.
func ParseLifestyle(f io.Reader) ([]models.LifestyleOption, error) {
	reader := newReader(f)

	c, err := header(reader, Category, Option)
	if err != nil {
		return []models.LifestyleOption{}, err
	}

	options := []models.LifestyleOption{}
	for position := 0; ; position++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return []models.LifestyleOption{}, csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		if blank(record) {
			continue
		}

		category := c.get(record, Category)
		option := c.get(record, Option)
		if category == "" || option == "" {
			return []models.LifestyleOption{}, csvReadError(reader, errors.New("category and option must both be set"))
		}

		cost, err := parseOptionalAmount(c.get(record, MonthlyCost))
		if err != nil {
			return []models.LifestyleOption{}, csvReadError(reader, fmt.Errorf("monthly cost: %w", err))
		}

		options = append(options, models.LifestyleOption{
			Position:    position,
			Category:    category,
			Option:      option,
			MonthlyCost: cost,
			Percentage:  c.get(record, Percentage),
		})
	}

	return options, nil
}
