package budget_test

import (
	"github.com/career-compass/projector/pkg/budget"
	"github.com/career-compass/projector/pkg/models"
	"github.com/shopspring/decimal"
)

func option(position int, category, name string, cost string) models.LifestyleOption {
	o := models.LifestyleOption{
		Position: position,
		Category: category,
		Option:   name,
	}

	if cost != "" {
		o.MonthlyCost = decimal.NewNullDecimal(decimal.RequireFromString(cost))
	}

	return o
}

func savingsOption(position int, name, percentage string) models.LifestyleOption {
	return models.LifestyleOption{
		Position:   position,
		Category:   models.SavingsCategory,
		Option:     name,
		Percentage: percentage,
	}
}

// testCatalog returns a lifestyle table with the Savings rows first
// to verify that Savings is always processed last.
func testCatalog() budget.Catalog {
	return budget.NewCatalog([]models.LifestyleOption{
		savingsOption(0, "Whatever is left", ""),
		savingsOption(1, "10% of income", "10%"),
		savingsOption(2, "Broken", "ten percent"),
		option(3, "Housing", "Apartment", "1200"),
		option(4, "Housing", "Military", "0"),
		option(5, "Food", "Groceries", "400"),
		option(6, "Children", "None", "0"),
		option(7, "Children", "Military", "150"),
		option(8, "Health Insurance", "Private", "350"),
		option(9, "Health Insurance", "Military", "50"),
		option(10, "Transportation", "Car", ""),
		option(11, "Transportation", "Bike", "30"),
		option(12, "Food", "Restaurants", "900"),
	})
}

func names(options []models.LifestyleOption) []string {
	n := make([]string, 0, len(options))
	for _, o := range options {
		n = append(n, o.Option)
	}
	return n
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
