package models

import "github.com/shopspring/decimal"

// PaymentMethod distinguishes debit-like payments (debit card, bank transfer,
// Pix) from credit-card payments. Checklist aggregation only considers debit
// items; credit items are covered by the card statement instead.
type PaymentMethod string

const (
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodCredit PaymentMethod = "credit"
)

// FixedExpense is a recurring named cost owned by exactly one cycle.
// Creating a new cycle clones the prior active cycle's fixed expenses by
// value, so edits in the new cycle never touch the old one.
type FixedExpense struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Value         decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"value"`
	Category      string          `gorm:"not null" json:"category"`
	PaymentMethod PaymentMethod   `gorm:"not null;default:debit" json:"payment_method"`
	CycleID       uint            `gorm:"not null;index" json:"cycle_id"`
}
