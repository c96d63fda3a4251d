package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/services"
)

// InvestmentHandler handles investment requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// CreateInvestmentRequest represents the request payload for creating an
// investment.
type CreateInvestmentRequest struct {
	Name  string          `json:"name" binding:"required,min=1,max=100"`
	Value decimal.Decimal `json:"value" binding:"required"`
	Type  string          `json:"type" binding:"max=50"`
}

// UpdateInvestmentRequest represents the request payload for updating an
// investment.
type UpdateInvestmentRequest struct {
	Name  *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Value *decimal.Decimal `json:"value"`
	Type  *string          `json:"type" binding:"omitempty,max=50"`
}

// CreateInvestment creates an investment.
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment, err := h.investmentService.CreateInvestment(req.Name, req.Value, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// ListInvestments returns all investments.
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	investments, err := h.investmentService.ListInvestments()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"investments": investments})
}

// UpdateInvestment updates an investment's fields.
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment, err := h.investmentService.UpdateInvestment(investmentID, req.Name, req.Value, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// DeleteInvestment removes an investment.
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.DeleteInvestment(investmentID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted"})
}
