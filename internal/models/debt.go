package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus represents the lifecycle state of a debt.
type DebtStatus string

const (
	DebtStatusActive  DebtStatus = "active"
	DebtStatusSettled DebtStatus = "settled"
)

// Debt is a multi-installment obligation. TotalInstallments is the
// contractual schedule length; the effective remaining schedule shrinks
// whenever a final-installment transaction is recorded against it. All
// schedule-derived fields are computed by the schedule package, never stored.
type Debt struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	Name               string           `gorm:"not null" json:"name"`
	Type               string           `gorm:"not null" json:"type"`
	InitialBalance     decimal.Decimal  `gorm:"type:decimal(20,2);not null" json:"initial_balance"`
	CurrentBalance     decimal.Decimal  `gorm:"type:decimal(20,2);not null" json:"current_balance"`
	MonthlyInstallment *decimal.Decimal `gorm:"type:decimal(20,2)" json:"monthly_installment,omitempty"`
	MonthlyRate        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"monthly_rate,omitempty"`
	StartDate          *time.Time       `json:"start_date,omitempty"`
	ProjectedEndDate   *time.Time       `json:"projected_end_date,omitempty"`
	TotalInstallments  *int             `json:"total_installments,omitempty"`
	Status             DebtStatus       `gorm:"not null;default:active" json:"status"`
}
