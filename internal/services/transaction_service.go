package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/models"
	"github.com/leosaloa/controle-gastos/internal/pagination"
)

// TransactionParams holds the fields for creating a transaction.
type TransactionParams struct {
	Date              time.Time
	Description       string
	Value             decimal.Decimal
	Category          string
	PaymentMethod     models.PaymentMethod
	DebtID            *uint
	InstallmentNumber *int
	FinalInstallment  bool
}

// UpdateTransactionParams holds the optional fields for a partial update.
// A DebtID of zero unlinks the transaction from its debt and clears the
// installment fields, matching how the API treats an empty debt selection.
type UpdateTransactionParams struct {
	Date              *time.Time
	Description       *string
	Value             *decimal.Decimal
	Category          *string
	PaymentMethod     *models.PaymentMethod
	DebtID            *uint
	InstallmentNumber *int
	FinalInstallment  *bool
}

// transactionService handles transaction business logic.
type transactionService struct {
	db           *gorm.DB
	cycleService CycleServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, cycleService CycleServicer) TransactionServicer {
	return &transactionService{db: db, cycleService: cycleService}
}

// CreateTransaction creates a transaction after validating that some cycle
// covers its date and that debt-linked entries carry an installment number.
func (s *transactionService) CreateTransaction(params TransactionParams) (*models.Transaction, error) {
	if _, err := s.cycleService.ResolveCycleForDate(params.Date); err != nil {
		return nil, err
	}

	debtID := params.DebtID
	installment := params.InstallmentNumber
	final := params.FinalInstallment
	if debtID != nil && *debtID == 0 {
		debtID = nil
	}
	if installment != nil && *installment == 0 {
		installment = nil
	}

	if debtID != nil {
		if err := s.checkDebtExists(*debtID); err != nil {
			return nil, err
		}
		if installment == nil {
			return nil, apperrors.ErrInstallmentRequired
		}
	} else {
		installment = nil
		final = false
	}

	transaction := &models.Transaction{
		Date:              params.Date,
		Description:       params.Description,
		Value:             params.Value,
		Category:          params.Category,
		PaymentMethod:     params.PaymentMethod,
		DebtID:            debtID,
		InstallmentNumber: installment,
		FinalInstallment:  final,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// ListTransactions returns transactions ordered by date descending. When a
// cycle is given, only transactions dated inside its inclusive interval are
// returned; transactions are matched to cycles by date, never by ownership.
func (s *transactionService) ListTransactions(cycleID *uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})
	if cycleID != nil {
		cycle, err := s.cycleService.GetCycleByID(*cycleID)
		if err != nil {
			return nil, err
		}
		base = base.Where("date >= ? AND date <= ?", cycle.StartDate, cycle.EndDate)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Order("date DESC").Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateTransaction applies a partial update, re-validating the cycle
// coverage of a changed date and the debt/installment invariant.
func (s *transactionService) UpdateTransaction(transactionID uint, params UpdateTransactionParams) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if params.Date != nil {
		if _, err := s.cycleService.ResolveCycleForDate(*params.Date); err != nil {
			return nil, err
		}
		transaction.Date = *params.Date
	}
	if params.Description != nil {
		transaction.Description = *params.Description
	}
	if params.Value != nil {
		transaction.Value = *params.Value
	}
	if params.Category != nil {
		transaction.Category = *params.Category
	}
	if params.PaymentMethod != nil {
		transaction.PaymentMethod = *params.PaymentMethod
	}
	if params.DebtID != nil {
		if *params.DebtID == 0 {
			transaction.DebtID = nil
		} else {
			if err := s.checkDebtExists(*params.DebtID); err != nil {
				return nil, err
			}
			id := *params.DebtID
			transaction.DebtID = &id
		}
	}
	if params.InstallmentNumber != nil {
		if *params.InstallmentNumber == 0 {
			transaction.InstallmentNumber = nil
		} else {
			n := *params.InstallmentNumber
			transaction.InstallmentNumber = &n
		}
	}
	if params.FinalInstallment != nil {
		transaction.FinalInstallment = *params.FinalInstallment
	}

	// Unlinking the debt clears the installment fields.
	if transaction.DebtID == nil {
		transaction.InstallmentNumber = nil
		transaction.FinalInstallment = false
	}
	if transaction.DebtID != nil && transaction.InstallmentNumber == nil {
		return nil, apperrors.ErrInstallmentRequired
	}

	// Save with Select so cleared pointer fields are written as NULL.
	err := s.db.Model(&transaction).
		Select("date", "description", "value", "category", "payment_method", "debt_id", "installment_number", "final_installment").
		Updates(map[string]interface{}{
			"date":               transaction.Date,
			"description":        transaction.Description,
			"value":              transaction.Value,
			"category":           transaction.Category,
			"payment_method":     transaction.PaymentMethod,
			"debt_id":            transaction.DebtID,
			"installment_number": transaction.InstallmentNumber,
			"final_installment":  transaction.FinalInstallment,
		}).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &transaction, nil
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(transactionID uint) error {
	var transaction models.Transaction
	if err := s.db.First(&transaction, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *transactionService) checkDebtExists(debtID uint) error {
	var debt models.Debt
	if err := s.db.First(&debt, debtID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDebtNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
