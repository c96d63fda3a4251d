package models

import "github.com/shopspring/decimal"

// Investment is a flat record of an investment position. It has no
// relationship to cycles or the debt projection engine.
type Investment struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"not null" json:"name"`
	Value decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"value"`
	Type  string          `gorm:"not null" json:"type"`
}
