package budget

import (
	"fmt"
	"strings"

	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/models"
	"github.com/shopspring/decimal"
)

// Ledger is the result of a budget allocation.
//
// Remaining always equals Income - Expenses - Savings.
type Ledger struct {
	Income      decimal.Decimal          `json:"income" example:"3691.67"` // Monthly income after tax
	Expenses    decimal.Decimal          `json:"expenses" example:"3200"`
	Savings     decimal.Decimal          `json:"savings" example:"491.67"`
	Remaining   decimal.Decimal          `json:"remaining" example:"0"`
	Choices     []models.Choice          `json:"choices"` // In processing order, Savings last
	Diagnostics []diagnostics.Diagnostic `json:"diagnostics"`
	Resolved    bool                     `json:"resolved" example:"true"` // All categories including Savings have been processed
}

// Balance describes how the remaining budget relates to zero.
type Balance string

const (
	Underspent Balance = "underspent"
	Balanced   Balance = "balanced"
	Overspent  Balance = "overspent"
)

// Balance returns the balance of the ledger.
func (l Ledger) Balance() Balance {
	switch {
	case l.Remaining.IsZero():
		return Balanced
	case l.Remaining.IsPositive():
		return Underspent
	}
	return Overspent
}

// Message returns a human readable summary of the balance.
func (l Ledger) Message() string {
	switch l.Balance() {
	case Balanced:
		return "You have balanced your budget!"
	case Underspent:
		return fmt.Sprintf("You have %s left.", l.Remaining.StringFixed(2))
	}
	return fmt.Sprintf("You have overspent by %s!", l.Remaining.Neg().StringFixed(2))
}

// Request contains all choices for a complete allocation.
type Request struct {
	Income          decimal.Decimal        `json:"income" example:"3691.67"`
	MilitaryService models.MilitaryService `json:"militaryService" example:"PartTime"`
	Choices         map[string]string      `json:"choices"` // Category name to option name, including Savings
}

// choice finds the chosen option for a category, ignoring case.
func (r Request) choice(category string) (string, bool) {
	if option, ok := r.Choices[category]; ok {
		return option, true
	}

	for c, option := range r.Choices {
		if strings.EqualFold(strings.TrimSpace(c), category) {
			return option, true
		}
	}

	return "", false
}

// Allocate runs a complete session for a request.
func Allocate(r Request, catalog Catalog, policy Policy) (Ledger, error) {
	s := NewSession(r.Income, r.MilitaryService, catalog, policy)
	if err := s.Start(); err != nil {
		return Ledger{}, err
	}

	for s.State() != Resolved {
		category := s.Category()

		option, ok := r.choice(category)
		if !ok {
			return s.Ledger(), fmt.Errorf("%w: %s", ErrChoiceMissing, category)
		}

		if err := s.Select(option); err != nil {
			return s.Ledger(), err
		}
	}

	return s.Ledger(), nil
}
