// Package tax implements the progressive income tax calculation.
//
// Bracket data is external and used as given. All functions are pure.
package tax

import (
	"errors"
	"fmt"

	"github.com/career-compass/projector/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var ErrMissingTaxData = errors.New("no tax brackets found")

var months = decimal.NewFromInt(12)

// Result is the tax owed for an annual income.
type Result struct {
	Income                decimal.Decimal `json:"income" example:"50000"`
	StandardDeduction     decimal.Decimal `json:"standardDeduction" example:"12000"`
	TaxableIncome         decimal.Decimal `json:"taxableIncome" example:"38000"`
	FederalTax            decimal.Decimal `json:"federalTax" example:"3800"`
	StateTax              decimal.Decimal `json:"stateTax" example:"1900"`
	TotalTax              decimal.Decimal `json:"totalTax" example:"5700"`
	MonthlyIncomeAfterTax decimal.Decimal `json:"monthlyIncomeAfterTax" example:"3691.67"` // Rounded to cents
}

// Sorted returns a copy of the brackets sorted by their lower bound.
//
// Source data is not guaranteed to be ordered.
func Sorted(brackets []models.TaxBracket) []models.TaxBracket {
	sorted := slices.Clone(brackets)
	slices.SortStableFunc(sorted, func(a, b models.TaxBracket) int {
		return a.LowerBound.Cmp(b.LowerBound)
	})
	return sorted
}

// Compute returns the progressive tax for an income.
//
// The brackets must all belong to the same status and type. They are
// contiguous, so once the income does not reach a lower bound no later
// bracket applies.
func Compute(income decimal.Decimal, brackets []models.TaxBracket) decimal.Decimal {
	tax := decimal.Zero

	for _, b := range Sorted(brackets) {
		if !income.GreaterThan(b.LowerBound) {
			break
		}

		upper := income
		if b.UpperBound.Valid {
			upper = decimal.Min(income, b.UpperBound.Decimal)
		}

		tax = tax.Add(upper.Sub(b.LowerBound).Mul(b.Rate))
	}

	return tax
}

// Filter returns the brackets for a status and type.
func Filter(brackets []models.TaxBracket, status models.MaritalStatus, taxType models.TaxType) []models.TaxBracket {
	var filtered []models.TaxBracket
	for _, b := range brackets {
		if b.Status == status && b.Type == taxType {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// ComputeByStatus returns federal and state tax for an annual income.
//
// The standard deduction is taken from the lowest federal bracket and
// applies to both federal and state tax.
func ComputeByStatus(income decimal.Decimal, status models.MaritalStatus, brackets []models.TaxBracket) (Result, error) {
	federal := Sorted(Filter(brackets, status, models.Federal))
	if len(federal) == 0 {
		return Result{}, fmt.Errorf("%w for status %s and type %s", ErrMissingTaxData, status, models.Federal)
	}

	state := Filter(brackets, status, models.State)
	if len(state) == 0 {
		return Result{}, fmt.Errorf("%w for status %s and type %s", ErrMissingTaxData, status, models.State)
	}

	r := Result{
		Income:            income,
		StandardDeduction: federal[0].StandardDeduction,
	}

	r.TaxableIncome = decimal.Max(decimal.Zero, income.Sub(r.StandardDeduction))
	r.FederalTax = Compute(r.TaxableIncome, federal)
	r.StateTax = Compute(r.TaxableIncome, state)
	r.TotalTax = r.FederalTax.Add(r.StateTax)
	r.MonthlyIncomeAfterTax = income.Sub(r.TotalTax).Div(months).Round(2)

	return r, nil
}
