package models

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one row of the progressive tax table.
//
// The standard deduction is repeated on every row, the value on the
// lowest bracket of a (status, type) group is authoritative.
type TaxBracket struct {
	DefaultModel
	Status            MaritalStatus       `json:"status" example:"Single"`
	Type              TaxType             `json:"type" example:"Federal"`
	LowerBound        decimal.Decimal     `json:"lowerBound" gorm:"type:DECIMAL(20,8)" example:"11600"`
	UpperBound        decimal.NullDecimal `json:"upperBound" gorm:"type:DECIMAL(20,8)" example:"47150"` // Null for the open-ended top bracket
	Rate              decimal.Decimal     `json:"rate" gorm:"type:DECIMAL(20,8)" example:"0.12"`
	StandardDeduction decimal.Decimal     `json:"standardDeduction" gorm:"type:DECIMAL(20,8)" example:"14600"`
}

func (TaxBracket) Self() string {
	return "Tax Bracket"
}
