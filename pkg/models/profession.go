package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectionMonths is the length of every projection and loan schedule: 25 years.
const ProjectionMonths = 300

// Profession is the reference profile of a profession for one track.
//
// The civilian and the military (GI Bill) tables are keyed by the same
// profession name and differ in the loan schedule and possibly in the
// school funding parameters.
type Profession struct {
	DefaultModel
	Track                    Track             `json:"track" gorm:"uniqueIndex:profession_track_name" example:"civilian"`
	Name                     string            `json:"name" gorm:"uniqueIndex:profession_track_name" example:"Registered Nurse"`
	RequiresSchool           bool              `json:"requiresSchool" example:"true"`
	AverageSalary            decimal.Decimal   `json:"averageSalary" gorm:"type:DECIMAL(20,8)" example:"77600"`
	SavingsDuringSchool      decimal.Decimal   `json:"savingsDuringSchool" gorm:"type:DECIMAL(20,8)" example:"18000"`
	MonthsOfSchool           int               `json:"monthsOfSchool" example:"48"`
	MonthlySavingsInSchool   decimal.Decimal   `json:"monthlySavingsInSchool" gorm:"type:DECIMAL(20,8)" example:"104"`
	MonthlySavingsPostSchool decimal.Decimal   `json:"monthlySavingsPostSchool" gorm:"type:DECIMAL(20,8)" example:"650"`
	LoanBalances             []decimal.Decimal `json:"loanBalances" gorm:"serializer:json"` // One signed balance per projected month
	Issues                   []string          `json:"issues" gorm:"serializer:json"`       // Fields that failed validation when the row was imported
}

func (Profession) Self() string {
	return "Profession"
}

func (p *Profession) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)

	if p.MonthsOfSchool < 0 {
		return ErrMonthsOfSchoolNegative
	}

	return nil
}

// AnnualIncome is the income that is taxed for a participant choosing
// this profession. While in school, the savings during school are the
// only income.
func (p Profession) AnnualIncome() decimal.Decimal {
	if p.RequiresSchool {
		return p.SavingsDuringSchool
	}
	return p.AverageSalary
}

// Valid reports if the profile can be used for a projection.
func (p Profession) Valid() bool {
	return len(p.Issues) == 0 && len(p.LoanBalances) == ProjectionMonths
}
