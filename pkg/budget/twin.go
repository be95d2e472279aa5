package budget

import (
	"strings"

	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TwinConfig configures the military twin derivation.
type TwinConfig struct {
	Suffix   string                 // Appended to the name of the original record
	Military []string               // Categories whose choice is forced to the Military option
	Repriced []string               // Categories whose cost is taken from the Military option
	Service  models.MilitaryService // Military service of the twin
	Policy   Policy                 // Eligibility of the twin for Military choices it keeps
}

// DefaultTwinConfig is the twin derivation used unless configured otherwise.
var DefaultTwinConfig = TwinConfig{
	Suffix:   "-mil",
	Military: []string{"Children", "Who Pays for College", "Health Insurance"},
	Repriced: []string{"Health Insurance"},
	Service:  models.ServicePartTime,
	Policy:   Policies[DefaultPolicy],
}

func contains(categories []string, category string) bool {
	for _, c := range categories {
		if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(category)) {
			return true
		}
	}
	return false
}

// civilianOption returns the first option of a category that is not
// the Military option.
func civilianOption(catalog Catalog, category string) (models.LifestyleOption, bool) {
	for _, o := range catalog.Options(category) {
		if !o.IsMilitary() {
			return o, true
		}
	}
	return models.LifestyleOption{}, false
}

// TwinName returns the name of the twin of a participant.
func (c TwinConfig) TwinName(name string) string {
	return name + c.Suffix
}

// IsTwinName reports if a name carries the twin suffix.
func (c TwinConfig) IsTwinName(name string) bool {
	return c.Suffix != "" && strings.HasSuffix(name, c.Suffix)
}

// Twin derives the military twin of a participant record.
//
// The twin keeps the profession and the tax basis of the original,
// serves part time and uses the Military option in the configured
// categories. Its savings are resolved again with the original savings
// option so that the changed costs flow into the savings.
//
// A Military choice in any other category is kept only if the policy
// allows it for the service of the twin. Otherwise the first civilian
// option of the category is chosen and a diagnostic is returned.
//
// Twin is a pure function of its arguments.
func Twin(p models.Participant, catalog Catalog, c TwinConfig) (models.Participant, []diagnostics.Diagnostic) {
	twin := models.Participant{
		Name:                  c.TwinName(p.Name),
		Profession:            p.Profession,
		MaritalStatus:         p.MaritalStatus,
		MilitaryService:       c.Service,
		TaxableIncome:         p.TaxableIncome,
		FederalTax:            p.FederalTax,
		StateTax:              p.StateTax,
		TotalTax:              p.TotalTax,
		MonthlyIncomeAfterTax: p.MonthlyIncomeAfterTax,
		Expenses:              decimal.Zero,
		Choices:               make([]models.Choice, 0, len(p.Choices)),
	}

	if p.ID != uuid.Nil {
		id := p.ID
		twin.TwinOfID = &id
	}

	var diags []diagnostics.Diagnostic
	var savingsChoice *models.Choice
	for _, original := range p.Choices {
		choice := models.Choice{
			Position: original.Position,
			Category: original.Category,
			Option:   original.Option,
			Cost:     original.Cost,
		}

		if strings.EqualFold(choice.Category, models.SavingsCategory) {
			savingsChoice = &choice
			continue
		}

		military := strings.EqualFold(choice.Option, models.MilitaryOption)

		switch {
		case contains(c.Military, choice.Category):
			choice.Option = models.MilitaryOption
			military = true
		case military && !c.Policy.Eligible(c.Service, choice.Category):
			o, ok := civilianOption(catalog, choice.Category)
			if !ok {
				diags = append(diags, diagnostics.New(diagnostics.IneligibleChoice, choice.Category, "'%s' is not eligible for Military and has no other option, keeping it", c.Service))
				break
			}

			diags = append(diags, diagnostics.New(diagnostics.IneligibleChoice, choice.Category, "'%s' is not eligible for Military, choosing '%s'", c.Service, o.Option))
			choice.Option = o.Option
			choice.Cost = o.MonthlyCost.Decimal
			military = false
		}

		if military && contains(c.Repriced, choice.Category) {
			if o, ok := catalog.Option(choice.Category, models.MilitaryOption); ok && o.MonthlyCost.Valid {
				choice.Cost = o.MonthlyCost.Decimal
			}
		}

		twin.Expenses = twin.Expenses.Add(choice.Cost)
		twin.Choices = append(twin.Choices, choice)
	}

	remaining := twin.MonthlyIncomeAfterTax.Sub(twin.Expenses)
	twin.Savings = decimal.Zero

	if savingsChoice != nil {
		savings, savingsDiags := resolveSavings(catalog, savingsChoice.Option, remaining, twin.MonthlyIncomeAfterTax)
		diags = append(diags, savingsDiags...)
		savingsChoice.Cost = savings
		twin.Savings = savings
		twin.Choices = append(twin.Choices, *savingsChoice)
	}

	twin.RemainingBudget = remaining.Sub(twin.Savings)

	return twin, diags
}
