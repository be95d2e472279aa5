package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsCategory is processed after all other lifestyle categories.
const SavingsCategory = "Savings"

// MilitaryOption is the option value that is only selectable when
// the eligibility policy allows it.
const MilitaryOption = "Military"

// LifestyleOption is one selectable option of a lifestyle category.
type LifestyleOption struct {
	DefaultModel
	Position    int                 `json:"position" example:"3"` // Row number in the source table, used to keep the category order
	Category    string              `json:"category" gorm:"uniqueIndex:lifestyle_category_option" example:"Housing"`
	Option      string              `json:"option" gorm:"uniqueIndex:lifestyle_category_option" example:"Apartment with roommates"`
	MonthlyCost decimal.NullDecimal `json:"monthlyCost" gorm:"type:DECIMAL(20,8)" example:"850"`
	Percentage  string              `json:"percentage" example:"10%"` // Only used for the Savings category
}

func (LifestyleOption) Self() string {
	return "Lifestyle Option"
}

func (o *LifestyleOption) BeforeSave(_ *gorm.DB) error {
	o.Category = strings.TrimSpace(o.Category)
	o.Option = strings.TrimSpace(o.Option)
	o.Percentage = strings.TrimSpace(o.Percentage)

	return nil
}

// IsSavings reports if the option belongs to the Savings category.
func (o LifestyleOption) IsSavings() bool {
	return strings.EqualFold(o.Category, SavingsCategory)
}

// IsMilitary reports if the option is the Military option.
func (o LifestyleOption) IsMilitary() bool {
	return strings.EqualFold(o.Option, MilitaryOption)
}
