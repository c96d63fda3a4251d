package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/models"
)

// fixedExpenseService handles fixed-expense business logic.
type fixedExpenseService struct {
	db           *gorm.DB
	cycleService CycleServicer
}

// NewFixedExpenseService creates a new FixedExpenseServicer.
func NewFixedExpenseService(db *gorm.DB, cycleService CycleServicer) FixedExpenseServicer {
	return &fixedExpenseService{db: db, cycleService: cycleService}
}

// resolveCycleID returns the given cycle's ID after checking it exists, or
// falls back to the active cycle when none was provided.
func (s *fixedExpenseService) resolveCycleID(cycleID *uint) (uint, error) {
	if cycleID != nil && *cycleID != 0 {
		cycle, err := s.cycleService.GetCycleByID(*cycleID)
		if err != nil {
			return 0, err
		}
		return cycle.ID, nil
	}

	active, err := s.cycleService.GetActiveCycle()
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveCycle) {
			return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "no active cycle and no cycle_id provided")
		}
		return 0, err
	}
	return active.ID, nil
}

// CreateFixedExpense creates a fixed expense owned by the given cycle, or by
// the active cycle when cycleID is nil.
func (s *fixedExpenseService) CreateFixedExpense(cycleID *uint, name string, value decimal.Decimal, category string, method models.PaymentMethod) (*models.FixedExpense, error) {
	owner, err := s.resolveCycleID(cycleID)
	if err != nil {
		return nil, err
	}

	expense := &models.FixedExpense{
		Name:          name,
		Value:         value,
		Category:      category,
		PaymentMethod: method,
		CycleID:       owner,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// ListFixedExpenses returns the fixed expenses of the given cycle (or the
// active cycle when cycleID is nil), newest first.
func (s *fixedExpenseService) ListFixedExpenses(cycleID *uint) ([]models.FixedExpense, error) {
	owner, err := s.resolveCycleID(cycleID)
	if err != nil {
		return nil, err
	}

	var expenses []models.FixedExpense
	if err := s.db.Where("cycle_id = ?", owner).Order("id DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// UpdateFixedExpense updates an existing fixed expense. Cycle ownership is
// immutable: moving an expense between cycles would silently rewrite history.
func (s *fixedExpenseService) UpdateFixedExpense(expenseID uint, name *string, value *decimal.Decimal, category *string, method *models.PaymentMethod) (*models.FixedExpense, error) {
	var expense models.FixedExpense
	if err := s.db.First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFixedExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := make(map[string]interface{})
	if name != nil {
		updates["name"] = *name
	}
	if value != nil {
		updates["value"] = *value
	}
	if category != nil {
		updates["category"] = *category
	}
	if method != nil {
		updates["payment_method"] = *method
	}

	if len(updates) > 0 {
		if err := s.db.Model(&expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &expense, nil
}

// DeleteFixedExpense removes a fixed expense.
func (s *fixedExpenseService) DeleteFixedExpense(expenseID uint) error {
	var expense models.FixedExpense
	if err := s.db.First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFixedExpenseNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
