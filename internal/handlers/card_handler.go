package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/services"
)

// CardHandler handles credit-card requests.
type CardHandler struct {
	cardService services.CardServicer
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService services.CardServicer) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCardRequest represents the request payload for creating a credit card.
type CreateCardRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=100"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	DueDate        string          `json:"due_date" binding:"required,datetime=2006-01-02"`
}

// UpdateCardRequest represents the request payload for updating a credit card.
type UpdateCardRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1,max=100"`
	CurrentBalance *decimal.Decimal `json:"current_balance"`
	CreditLimit    *decimal.Decimal `json:"credit_limit"`
	DueDate        *string          `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

// CreateCard creates a credit card.
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	card, err := h.cardService.CreateCard(req.Name, req.CurrentBalance, req.CreditLimit, dueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"card": card})
}

// ListCards returns all credit cards.
func (h *CardHandler) ListCards(c *gin.Context) {
	cards, err := h.cardService.ListCards()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

// UpdateCard updates a credit card's fields.
func (h *CardHandler) UpdateCard(c *gin.Context) {
	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	card, err := h.cardService.UpdateCard(cardID, req.Name, req.CurrentBalance, req.CreditLimit, dueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": card})
}

// DeleteCard removes a credit card.
func (h *CardHandler) DeleteCard(c *gin.Context) {
	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cardService.DeleteCard(cardID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted"})
}
