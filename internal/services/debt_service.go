package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/models"
	"github.com/leosaloa/controle-gastos/internal/schedule"
)

// DebtParams holds the fields for creating a debt.
type DebtParams struct {
	Name               string
	Type               string
	InitialBalance     decimal.Decimal
	CurrentBalance     decimal.Decimal
	MonthlyInstallment *decimal.Decimal
	MonthlyRate        *decimal.Decimal
	StartDate          *time.Time
	ProjectedEndDate   *time.Time
	TotalInstallments  *int
	Status             models.DebtStatus
}

// UpdateDebtParams holds the optional fields for a partial debt update.
type UpdateDebtParams struct {
	Name               *string
	Type               *string
	InitialBalance     *decimal.Decimal
	CurrentBalance     *decimal.Decimal
	MonthlyInstallment *decimal.Decimal
	MonthlyRate        *decimal.Decimal
	StartDate          *time.Time
	ProjectedEndDate   *time.Time
	TotalInstallments  *int
	Status             *models.DebtStatus
}

// DebtWithProjection pairs a debt with its derived installment progress.
type DebtWithProjection struct {
	models.Debt
	schedule.Projection
}

// debtService handles debt business logic and installment projections.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// CreateDebt creates a new debt record.
func (s *debtService) CreateDebt(params DebtParams) (*models.Debt, error) {
	status := params.Status
	if status == "" {
		status = models.DebtStatusActive
	}

	debt := &models.Debt{
		Name:               params.Name,
		Type:               params.Type,
		InitialBalance:     params.InitialBalance,
		CurrentBalance:     params.CurrentBalance,
		MonthlyInstallment: params.MonthlyInstallment,
		MonthlyRate:        params.MonthlyRate,
		StartDate:          params.StartDate,
		ProjectedEndDate:   params.ProjectedEndDate,
		TotalInstallments:  params.TotalInstallments,
		Status:             status,
	}
	if err := s.db.Create(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debt, nil
}

// GetDebtByID returns a debt by ID.
func (s *debtService) GetDebtByID(debtID uint) (*models.Debt, error) {
	var debt models.Debt
	if err := s.db.First(&debt, debtID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}

// ListDebts returns all debts, newest first, each with the installment
// projection computed from its linked transactions.
func (s *debtService) ListDebts() ([]DebtWithProjection, error) {
	var debts []models.Debt
	if err := s.db.Order("id DESC").Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	out := make([]DebtWithProjection, 0, len(debts))
	for _, debt := range debts {
		payments, err := s.debtPayments(debt.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, DebtWithProjection{
			Debt:       debt,
			Projection: schedule.Project(debt.TotalInstallments, debt.StartDate, payments, now),
		})
	}
	return out, nil
}

// GetDebtProjection returns one debt with its installment projection.
func (s *debtService) GetDebtProjection(debtID uint) (*DebtWithProjection, error) {
	debt, err := s.GetDebtByID(debtID)
	if err != nil {
		return nil, err
	}

	payments, err := s.debtPayments(debt.ID)
	if err != nil {
		return nil, err
	}

	return &DebtWithProjection{
		Debt:       *debt,
		Projection: schedule.Project(debt.TotalInstallments, debt.StartDate, payments, time.Now()),
	}, nil
}

// debtPayments loads the installment payments recorded against a debt.
// Transactions without an installment number are skipped: they cannot place
// themselves on the schedule.
func (s *debtService) debtPayments(debtID uint) ([]schedule.Payment, error) {
	var transactions []models.Transaction
	if err := s.db.Where("debt_id = ?", debtID).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	payments := make([]schedule.Payment, 0, len(transactions))
	for _, t := range transactions {
		if t.InstallmentNumber == nil {
			continue
		}
		payments = append(payments, schedule.Payment{
			Number: *t.InstallmentNumber,
			Final:  t.FinalInstallment,
			Date:   t.Date,
		})
	}
	return payments, nil
}

// UpdateDebt applies a partial update to a debt.
func (s *debtService) UpdateDebt(debtID uint, params UpdateDebtParams) (*models.Debt, error) {
	debt, err := s.GetDebtByID(debtID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.Type != nil {
		updates["type"] = *params.Type
	}
	if params.InitialBalance != nil {
		updates["initial_balance"] = *params.InitialBalance
	}
	if params.CurrentBalance != nil {
		updates["current_balance"] = *params.CurrentBalance
	}
	if params.MonthlyInstallment != nil {
		updates["monthly_installment"] = *params.MonthlyInstallment
	}
	if params.MonthlyRate != nil {
		updates["monthly_rate"] = *params.MonthlyRate
	}
	if params.StartDate != nil {
		updates["start_date"] = *params.StartDate
	}
	if params.ProjectedEndDate != nil {
		updates["projected_end_date"] = *params.ProjectedEndDate
	}
	if params.TotalInstallments != nil {
		updates["total_installments"] = *params.TotalInstallments
	}
	if params.Status != nil {
		updates["status"] = *params.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(debt).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return debt, nil
}

// DeleteDebt removes a debt. Linked transactions keep their debt_id; the
// projection for a deleted debt is simply never requested again.
func (s *debtService) DeleteDebt(debtID uint) error {
	debt, err := s.GetDebtByID(debtID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(debt).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
