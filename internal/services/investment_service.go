package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/models"
)

// investmentService handles investment business logic.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// CreateInvestment creates a new investment record.
func (s *investmentService) CreateInvestment(name string, value decimal.Decimal, investmentType string) (*models.Investment, error) {
	investment := &models.Investment{
		Name:  name,
		Value: value,
		Type:  investmentType,
	}
	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investment, nil
}

// ListInvestments returns all investments.
func (s *investmentService) ListInvestments() ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}

// UpdateInvestment updates an existing investment's fields.
func (s *investmentService) UpdateInvestment(investmentID uint, name *string, value *decimal.Decimal, investmentType *string) (*models.Investment, error) {
	var investment models.Investment
	if err := s.db.First(&investment, investmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
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
	if investmentType != nil {
		updates["type"] = *investmentType
	}

	if len(updates) > 0 {
		if err := s.db.Model(&investment).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &investment, nil
}

// DeleteInvestment removes an investment.
func (s *investmentService) DeleteInvestment(investmentID uint) error {
	var investment models.Investment
	if err := s.db.First(&investment, investmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvestmentNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&investment).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
