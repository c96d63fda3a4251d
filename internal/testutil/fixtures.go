package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/leosaloa/controle-gastos/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date builds a UTC date at midnight, the canonical form for all date fields.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestCycle creates a cycle covering the given inclusive interval.
func CreateTestCycle(t *testing.T, db *gorm.DB, start, end time.Time, active bool) *models.Cycle {
	t.Helper()

	cycle := &models.Cycle{
		Name:      fmt.Sprintf("Cycle %d", nextID()),
		StartDate: start,
		EndDate:   end,
		Budget:    decimal.NewFromInt(5000),
		Active:    active,
	}
	if err := db.Create(cycle).Error; err != nil {
		t.Fatalf("failed to create test cycle: %v", err)
	}
	return cycle
}

// CreateTestFixedExpense creates a fixed expense owned by the given cycle.
func CreateTestFixedExpense(t *testing.T, db *gorm.DB, cycleID uint, method models.PaymentMethod) *models.FixedExpense {
	t.Helper()

	expense := &models.FixedExpense{
		Name:          fmt.Sprintf("Expense %d", nextID()),
		Value:         decimal.NewFromFloat(99.90),
		Category:      "Utilities",
		PaymentMethod: method,
		CycleID:       cycleID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test fixed expense: %v", err)
	}
	return expense
}

// CreateTestTransaction creates a plain transaction on the given date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, date time.Time, method models.PaymentMethod) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Date:          date,
		Description:   fmt.Sprintf("Transaction %d", nextID()),
		Value:         decimal.NewFromFloat(150),
		Category:      "Groceries",
		PaymentMethod: method,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestDebtPayment creates a debt-linked transaction paying one installment.
func CreateTestDebtPayment(t *testing.T, db *gorm.DB, debtID uint, date time.Time, number int, final bool) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Date:              date,
		Description:       fmt.Sprintf("Installment %d", number),
		Value:             decimal.NewFromFloat(500),
		Category:          "Debts",
		PaymentMethod:     models.PaymentMethodDebit,
		DebtID:            &debtID,
		InstallmentNumber: &number,
		FinalInstallment:  final,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test debt payment: %v", err)
	}
	return transaction
}

// CreateTestDebt creates a debt with an optional contractual installment
// total and start date.
func CreateTestDebt(t *testing.T, db *gorm.DB, totalInstallments *int, startDate *time.Time) *models.Debt {
	t.Helper()

	installment := decimal.NewFromFloat(500)
	debt := &models.Debt{
		Name:               fmt.Sprintf("Debt %d", nextID()),
		Type:               "Loan",
		InitialBalance:     decimal.NewFromInt(6000),
		CurrentBalance:     decimal.NewFromInt(6000),
		MonthlyInstallment: &installment,
		StartDate:          startDate,
		TotalInstallments:  totalInstallments,
		Status:             models.DebtStatusActive,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

// CreateTestCard creates a credit card record.
func CreateTestCard(t *testing.T, db *gorm.DB) *models.Card {
	t.Helper()

	card := &models.Card{
		Name:           fmt.Sprintf("Card %d", nextID()),
		CurrentBalance: decimal.NewFromFloat(450),
		CreditLimit:    decimal.NewFromInt(3000),
		DueDate:        Date(2026, time.January, 15),
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}
	return card
}

// CreateTestInvestment creates an investment record.
func CreateTestInvestment(t *testing.T, db *gorm.DB) *models.Investment {
	t.Helper()

	investment := &models.Investment{
		Name:  fmt.Sprintf("Investment %d", nextID()),
		Value: decimal.NewFromInt(1000),
		Type:  "Fixed income",
	}
	if err := db.Create(investment).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return investment
}
