package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a dated expense entry. Unlike FixedExpense it is not owned
// by a cycle: its effective cycle membership is determined solely by whether
// its date falls inside a cycle's interval.
//
// A transaction may record a debt installment payment, in which case DebtID
// and InstallmentNumber are both set. FinalInstallment marks an early payoff
// credited against the tail of the debt's schedule ("end" installment); when
// false the payment counts in natural order ("front" installment).
type Transaction struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	Date              time.Time       `gorm:"not null;index" json:"date"`
	Description       string          `gorm:"not null" json:"description"`
	Value             decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"value"`
	Category          string          `gorm:"not null" json:"category"`
	PaymentMethod     PaymentMethod   `gorm:"not null;default:debit" json:"payment_method"`
	DebtID            *uint           `gorm:"index" json:"debt_id,omitempty"`
	InstallmentNumber *int            `json:"installment_number,omitempty"`
	FinalInstallment  bool            `gorm:"not null;default:false" json:"final_installment"`
}
