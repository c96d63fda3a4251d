package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/models"
)

// cardService handles credit-card business logic.
type cardService struct {
	db *gorm.DB
}

// NewCardService creates a new CardServicer.
func NewCardService(db *gorm.DB) CardServicer {
	return &cardService{db: db}
}

// CreateCard creates a new credit card record.
func (s *cardService) CreateCard(name string, currentBalance, creditLimit decimal.Decimal, dueDate time.Time) (*models.Card, error) {
	card := &models.Card{
		Name:           name,
		CurrentBalance: currentBalance,
		CreditLimit:    creditLimit,
		DueDate:        dueDate,
	}
	if err := s.db.Create(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// ListCards returns all cards.
func (s *cardService) ListCards() ([]models.Card, error) {
	var cards []models.Card
	if err := s.db.Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cards, nil
}

// UpdateCard updates an existing card's fields.
func (s *cardService) UpdateCard(cardID uint, name *string, currentBalance, creditLimit *decimal.Decimal, dueDate *time.Time) (*models.Card, error) {
	var card models.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := make(map[string]interface{})
	if name != nil {
		updates["name"] = *name
	}
	if currentBalance != nil {
		updates["current_balance"] = *currentBalance
	}
	if creditLimit != nil {
		updates["credit_limit"] = *creditLimit
	}
	if dueDate != nil {
		updates["due_date"] = *dueDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(&card).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &card, nil
}

// DeleteCard removes a card.
func (s *cardService) DeleteCard(cardID uint) error {
	var card models.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCardNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&card).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
