package budget

import (
	"strings"

	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/models"
	"github.com/shopspring/decimal"
)

// WhateverIsLeft is the savings option that saves the remaining budget.
const WhateverIsLeft = "whatever is left"

var hundred = decimal.NewFromInt(100)

// IsWhateverIsLeft reports if a savings option saves the remaining budget.
func IsWhateverIsLeft(option string) bool {
	return strings.EqualFold(strings.TrimSpace(option), WhateverIsLeft)
}

// ParsePercentage parses a percentage of the form "N%" into a fraction.
func ParsePercentage(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(s, "%")))
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}

	return d.Div(hundred), true
}

// resolveSavings computes the savings for a savings option.
//
// "Whatever is left" saves the remaining budget but never a negative
// amount. Percentage options save a share of the monthly income, capped
// at the remaining budget so that savings never push the budget further
// into the negative.
func resolveSavings(c Catalog, option string, remaining, income decimal.Decimal) (decimal.Decimal, []diagnostics.Diagnostic) {
	if IsWhateverIsLeft(option) {
		return decimal.Max(remaining, decimal.Zero), nil
	}

	o, ok := c.Option(models.SavingsCategory, option)
	if !ok {
		return decimal.Zero, []diagnostics.Diagnostic{
			diagnostics.New(diagnostics.MissingSavingsPolicy, models.SavingsCategory, "savings option '%s' does not exist, saving nothing", option),
		}
	}

	fraction, ok := ParsePercentage(o.Percentage)
	if !ok {
		return decimal.Zero, []diagnostics.Diagnostic{
			diagnostics.New(diagnostics.MissingSavingsPolicy, models.SavingsCategory, "savings option '%s' has no valid percentage ('%s'), saving nothing", o.Option, o.Percentage),
		}
	}

	savings := fraction.Mul(income).Round(2)
	if savings.GreaterThan(remaining) {
		savings = decimal.Max(remaining, decimal.Zero)
	}

	return savings, nil
}
