package budget

import (
	"strings"

	"github.com/career-compass/projector/pkg/models"
	"golang.org/x/exp/slices"
)

// Catalog is the lifestyle decision table, grouped by category.
//
// Categories keep the order in which they first appear in the
// table, the Savings category is kept apart and always comes last.
type Catalog struct {
	categories []string
	options    map[string][]models.LifestyleOption
	savings    []models.LifestyleOption
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewCatalog groups lifestyle options by category.
func NewCatalog(options []models.LifestyleOption) Catalog {
	sorted := slices.Clone(options)
	slices.SortStableFunc(sorted, func(a, b models.LifestyleOption) int {
		return a.Position - b.Position
	})

	c := Catalog{
		options: make(map[string][]models.LifestyleOption),
	}

	for _, o := range sorted {
		if o.IsSavings() {
			c.savings = append(c.savings, o)
			continue
		}

		k := key(o.Category)
		if _, ok := c.options[k]; !ok {
			c.categories = append(c.categories, strings.TrimSpace(o.Category))
		}
		c.options[k] = append(c.options[k], o)
	}

	return c
}

// Categories returns the non-savings categories in processing order.
func (c Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// Options returns all options of a category, including Savings.
func (c Catalog) Options(category string) []models.LifestyleOption {
	if key(category) == key(models.SavingsCategory) {
		return slices.Clone(c.savings)
	}
	return slices.Clone(c.options[key(category)])
}

// HasSavings reports if the table contains a Savings category.
func (c Catalog) HasSavings() bool {
	return len(c.savings) > 0
}

// Option finds an option of a category by name, ignoring case.
func (c Catalog) Option(category, option string) (models.LifestyleOption, bool) {
	for _, o := range c.Options(category) {
		if key(o.Option) == key(option) {
			return o, true
		}
	}
	return models.LifestyleOption{}, false
}
