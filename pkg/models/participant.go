package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Participant is the record created by a completed, balanced budget session.
//
// Records are never changed after submission. Each original record is
// followed by exactly one military twin that references it with TwinOfID.
type Participant struct {
	DefaultModel
	Name                  string          `json:"name" gorm:"uniqueIndex" example:"Alex"`
	Profession            string          `json:"profession" example:"Registered Nurse"`
	MaritalStatus         MaritalStatus   `json:"maritalStatus" example:"Single"`
	MilitaryService       MilitaryService `json:"militaryService" example:"No"`
	Choices               []Choice        `json:"choices" gorm:"constraint:OnDelete:CASCADE"`
	TaxableIncome         decimal.Decimal `json:"taxableIncome" gorm:"type:DECIMAL(20,8)" example:"38000"`
	FederalTax            decimal.Decimal `json:"federalTax" gorm:"type:DECIMAL(20,8)" example:"3800"`
	StateTax              decimal.Decimal `json:"stateTax" gorm:"type:DECIMAL(20,8)" example:"1900"`
	TotalTax              decimal.Decimal `json:"totalTax" gorm:"type:DECIMAL(20,8)" example:"5700"`
	MonthlyIncomeAfterTax decimal.Decimal `json:"monthlyIncomeAfterTax" gorm:"type:DECIMAL(20,8)" example:"3691.67"`
	Expenses              decimal.Decimal `json:"expenses" gorm:"type:DECIMAL(20,8)" example:"3200"`
	Savings               decimal.Decimal `json:"savings" gorm:"type:DECIMAL(20,8)" example:"491.67"`
	RemainingBudget       decimal.Decimal `json:"remainingBudget" gorm:"type:DECIMAL(20,8)" example:"0"`
	TwinOfID              *uuid.UUID      `json:"twinOfId" gorm:"type:uuid" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // Set for military twins
	TwinOf                *Participant    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (Participant) Self() string {
	return "Participant"
}

func (p *Participant) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Profession = strings.TrimSpace(p.Profession)

	return nil
}

// BeforeUpdate keeps participant records append-only.
func (p *Participant) BeforeUpdate(_ *gorm.DB) error {
	return ErrParticipantRecordsImmutable
}

// IsTwin reports if the record is a derived military twin.
func (p Participant) IsTwin() bool {
	return p.TwinOfID != nil
}

// Choice returns the choice for a category, matching the category name
// case-insensitively.
func (p Participant) Choice(category string) (Choice, bool) {
	for _, c := range p.Choices {
		if strings.EqualFold(c.Category, category) {
			return c, true
		}
	}
	return Choice{}, false
}

// Choice is the option selected for one lifestyle category and its monthly cost.
type Choice struct {
	DefaultModel
	ParticipantID uuid.UUID       `json:"-" gorm:"type:uuid;uniqueIndex:choice_participant_position"`
	Position      int             `json:"position" gorm:"uniqueIndex:choice_participant_position" example:"2"`
	Category      string          `json:"category" example:"Housing"`
	Option        string          `json:"option" example:"Apartment with roommates"`
	Cost          decimal.Decimal `json:"cost" gorm:"type:DECIMAL(20,8)" example:"850"`
}

func (Choice) Self() string {
	return "Choice"
}

// CreateWithTwin persists a participant and its military twin in one
// transaction, the original first. twin derives the twin record from
// the stored original.
func CreateWithTwin(db *gorm.DB, original *Participant, twin func(Participant) Participant) (Participant, error) {
	var t Participant

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(original).Error; err != nil {
			return err
		}

		t = twin(*original)
		return tx.Create(&t).Error
	})
	if err != nil {
		return Participant{}, err
	}

	return t, nil
}
