// Package services contains the business logic of the controle-gastos API.
package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/leosaloa/controle-gastos/internal/models"
	"github.com/leosaloa/controle-gastos/internal/pagination"
)

// CycleServicer defines the contract for budget-cycle business logic.
type CycleServicer interface {
	CreateCycle(name string, startDate, endDate time.Time, budget decimal.Decimal) (*models.Cycle, error)
	GetActiveCycle() (*models.Cycle, error)
	GetCycleByID(cycleID uint) (*models.Cycle, error)
	ListCycles() ([]models.Cycle, error)
	UpdateCycle(cycleID uint, name *string, startDate, endDate *time.Time, budget *decimal.Decimal) (*models.Cycle, error)
	ActivateCycle(cycleID uint) error
	DeleteCycle(cycleID uint) error
	ResolveCycleForDate(date time.Time) (*models.Cycle, error)
}

// FixedExpenseServicer defines the contract for fixed-expense business logic.
type FixedExpenseServicer interface {
	CreateFixedExpense(cycleID *uint, name string, value decimal.Decimal, category string, method models.PaymentMethod) (*models.FixedExpense, error)
	ListFixedExpenses(cycleID *uint) ([]models.FixedExpense, error)
	UpdateFixedExpense(expenseID uint, name *string, value *decimal.Decimal, category *string, method *models.PaymentMethod) (*models.FixedExpense, error)
	DeleteFixedExpense(expenseID uint) error
}

// TransactionServicer defines the contract for transaction business logic.
type TransactionServicer interface {
	CreateTransaction(params TransactionParams) (*models.Transaction, error)
	ListTransactions(cycleID *uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	UpdateTransaction(transactionID uint, params UpdateTransactionParams) (*models.Transaction, error)
	DeleteTransaction(transactionID uint) error
}

// InvestmentServicer defines the contract for investment business logic.
type InvestmentServicer interface {
	CreateInvestment(name string, value decimal.Decimal, investmentType string) (*models.Investment, error)
	ListInvestments() ([]models.Investment, error)
	UpdateInvestment(investmentID uint, name *string, value *decimal.Decimal, investmentType *string) (*models.Investment, error)
	DeleteInvestment(investmentID uint) error
}

// CardServicer defines the contract for credit-card business logic.
type CardServicer interface {
	CreateCard(name string, currentBalance, creditLimit decimal.Decimal, dueDate time.Time) (*models.Card, error)
	ListCards() ([]models.Card, error)
	UpdateCard(cardID uint, name *string, currentBalance, creditLimit *decimal.Decimal, dueDate *time.Time) (*models.Card, error)
	DeleteCard(cardID uint) error
}

// DebtServicer defines the contract for debt business logic, including the
// installment projection reported alongside each debt.
type DebtServicer interface {
	CreateDebt(params DebtParams) (*models.Debt, error)
	GetDebtByID(debtID uint) (*models.Debt, error)
	ListDebts() ([]DebtWithProjection, error)
	GetDebtProjection(debtID uint) (*DebtWithProjection, error)
	UpdateDebt(debtID uint, params UpdateDebtParams) (*models.Debt, error)
	DeleteDebt(debtID uint) error
}

// ChecklistServicer defines the contract for the per-cycle payment checklist.
type ChecklistServicer interface {
	BuildChecklist(cycleID uint) (*Checklist, error)
	UpsertEntry(cycleID uint, itemType models.ChecklistItemType, itemID uint, checked bool) (*models.ChecklistEntry, error)
}
