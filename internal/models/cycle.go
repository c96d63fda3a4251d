package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cycle represents a budgeted time window. Its [StartDate, EndDate] interval
// is inclusive on both ends. At most one cycle is active at any time; the
// activation flip is performed inside a single database transaction.
type Cycle struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"not null" json:"name"`
	StartDate time.Time       `gorm:"not null;index" json:"start_date"`
	EndDate   time.Time       `gorm:"not null" json:"end_date"`
	Budget    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"budget"`
	Active    bool            `gorm:"not null;default:false" json:"active"`
}

// Contains reports whether the given date falls inside the cycle's
// inclusive date interval.
func (c *Cycle) Contains(date time.Time) bool {
	return !date.Before(c.StartDate) && !date.After(c.EndDate)
}
