// Package budget implements the monthly lifestyle budget allocation.
//
// A Session walks the lifestyle categories in order, filters the
// Military option with an eligibility Policy, accumulates costs and
// finally resolves the savings against what is left of the monthly
// income after tax.
package budget

import (
	"fmt"

	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/models"
	"github.com/shopspring/decimal"
)

// State is the state of a budget session.
type State int

const (
	Idle State = iota
	Selecting
	SavingsSelection
	Resolved
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Selecting:
		return "Selecting"
	case SavingsSelection:
		return "SavingsSelection"
	case Resolved:
		return "Resolved"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session is one interactive budget allocation.
//
// A session is not safe for concurrent use.
type Session struct {
	catalog Catalog
	policy  Policy
	service models.MilitaryService

	state    State
	index    int
	ledger   Ledger
	position int
}

// NewSession creates an idle session for a monthly income after tax.
func NewSession(income decimal.Decimal, service models.MilitaryService, catalog Catalog, policy Policy) *Session {
	return &Session{
		catalog: catalog,
		policy:  policy,
		service: service,
		state:   Idle,
		ledger: Ledger{
			Income:    income,
			Expenses:  decimal.Zero,
			Savings:   decimal.Zero,
			Remaining: income,
			Choices:   []models.Choice{},
		},
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Start begins the allocation with the first category.
func (s *Session) Start() error {
	if s.state != Idle {
		return fmt.Errorf("%w: cannot start in state %s", ErrSessionState, s.state)
	}

	s.state = Selecting
	s.advance()
	return nil
}

// advance moves on when all regular categories are done.
func (s *Session) advance() {
	if s.state != Selecting || s.index < len(s.catalog.categories) {
		return
	}

	if s.catalog.HasSavings() {
		s.state = SavingsSelection
		return
	}

	s.state = Resolved
}

// Category returns the category that is currently selected for.
func (s *Session) Category() string {
	switch s.state {
	case Selecting:
		return s.catalog.categories[s.index]
	case SavingsSelection:
		return models.SavingsCategory
	}
	return ""
}

// Options returns the options that may be chosen for the current category.
func (s *Session) Options() []models.LifestyleOption {
	if s.state != Selecting && s.state != SavingsSelection {
		return nil
	}

	category := s.Category()
	return s.policy.Filter(s.service, category, s.catalog.Options(category))
}

// Select chooses an option for the current category and moves on
// to the next one.
//
// Exceeding the budget does not stop the allocation, it is reported
// as a diagnostic so that the choice can be corrected before submitting.
func (s *Session) Select(option string) error {
	switch s.state {
	case Selecting:
		return s.selectCategory(option)
	case SavingsSelection:
		return s.selectSavings(option)
	}

	return fmt.Errorf("%w: cannot select in state %s", ErrSessionState, s.state)
}

func (s *Session) selectCategory(option string) error {
	category := s.Category()

	var chosen *models.LifestyleOption
	for _, o := range s.Options() {
		if key(o.Option) == key(option) {
			chosen = &o
			break
		}
	}

	if chosen == nil {
		return fmt.Errorf("%w: '%s' in %s", ErrOptionNotAvailable, option, category)
	}

	cost := chosen.MonthlyCost.Decimal
	if !chosen.MonthlyCost.Valid {
		cost = decimal.Zero
		s.ledger.Diagnostics = append(s.ledger.Diagnostics, diagnostics.New(diagnostics.MissingCostWarning, category, "no monthly cost for '%s', assuming 0", chosen.Option))
	}

	s.ledger.Remaining = s.ledger.Remaining.Sub(cost)
	s.ledger.Expenses = s.ledger.Expenses.Add(cost)
	s.record(category, chosen.Option, cost)

	if s.ledger.Remaining.IsNegative() {
		s.ledger.Diagnostics = append(s.ledger.Diagnostics, diagnostics.New(diagnostics.BudgetOverspent, category, "choosing '%s' exceeds the budget by %s", chosen.Option, s.ledger.Remaining.Neg().StringFixed(2)))
	}

	s.index++
	s.advance()
	return nil
}

func (s *Session) selectSavings(option string) error {
	if !IsWhateverIsLeft(option) {
		if _, ok := s.catalog.Option(models.SavingsCategory, option); !ok {
			return fmt.Errorf("%w: '%s' in %s", ErrOptionNotAvailable, option, models.SavingsCategory)
		}
	}

	savings, diags := resolveSavings(s.catalog, option, s.ledger.Remaining, s.ledger.Income)
	s.ledger.Diagnostics = append(s.ledger.Diagnostics, diags...)

	name := option
	if o, ok := s.catalog.Option(models.SavingsCategory, option); ok {
		name = o.Option
	}

	s.ledger.Savings = savings
	s.ledger.Remaining = s.ledger.Remaining.Sub(savings)
	s.record(models.SavingsCategory, name, savings)

	s.state = Resolved
	return nil
}

func (s *Session) record(category, option string, cost decimal.Decimal) {
	s.ledger.Choices = append(s.ledger.Choices, models.Choice{
		Position: s.position,
		Category: category,
		Option:   option,
		Cost:     cost,
	})
	s.position++
}

// Ledger returns the allocation so far.
func (s *Session) Ledger() Ledger {
	l := s.ledger
	l.Choices = append([]models.Choice{}, s.ledger.Choices...)
	l.Diagnostics = append([]diagnostics.Diagnostic{}, s.ledger.Diagnostics...)
	l.Resolved = s.state == Resolved
	return l
}
