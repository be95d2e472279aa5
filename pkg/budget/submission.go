package budget

import (
	"strings"

	"github.com/career-compass/projector/pkg/models"
	"github.com/career-compass/projector/pkg/tax"
)

// Submission is a completed budget session that is to be persisted.
type Submission struct {
	Name            string
	Profession      string
	MaritalStatus   models.MaritalStatus
	MilitaryService models.MilitaryService
	Tax             tax.Result
	Ledger          Ledger
}

// Validate checks that the submission may be persisted.
//
// Only fully resolved ledgers with a remaining budget of exactly
// zero are accepted.
func (s Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrNameMissing
	}

	if strings.TrimSpace(s.Profession) == "" {
		return ErrProfessionMissing
	}

	if !s.Ledger.Resolved || !s.Ledger.Remaining.IsZero() {
		return ErrBudgetNotBalanced
	}

	return nil
}

// Participant validates the submission and converts it to a participant record.
func (s Submission) Participant() (models.Participant, error) {
	if err := s.Validate(); err != nil {
		return models.Participant{}, err
	}

	return models.Participant{
		Name:                  strings.TrimSpace(s.Name),
		Profession:            strings.TrimSpace(s.Profession),
		MaritalStatus:         s.MaritalStatus,
		MilitaryService:       s.MilitaryService,
		Choices:               s.Ledger.Choices,
		TaxableIncome:         s.Tax.TaxableIncome,
		FederalTax:            s.Tax.FederalTax,
		StateTax:              s.Tax.StateTax,
		TotalTax:              s.Tax.TotalTax,
		MonthlyIncomeAfterTax: s.Ledger.Income,
		Expenses:              s.Ledger.Expenses,
		Savings:               s.Ledger.Savings,
		RemainingBudget:       s.Ledger.Remaining,
	}, nil
}
