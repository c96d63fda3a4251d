package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card is a credit card with its current statement balance. Cards are not
// cycle-scoped; every cycle's checklist lists all cards as recurring monthly
// obligations.
type Card struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"not null" json:"name"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"current_balance"`
	CreditLimit    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"credit_limit"`
	DueDate        time.Time       `gorm:"not null" json:"due_date"`
}
