package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/models"
	"github.com/leosaloa/controle-gastos/internal/services"
)

// FixedExpenseHandler handles fixed-expense requests.
type FixedExpenseHandler struct {
	expenseService services.FixedExpenseServicer
}

// NewFixedExpenseHandler creates a new FixedExpenseHandler.
func NewFixedExpenseHandler(expenseService services.FixedExpenseServicer) *FixedExpenseHandler {
	return &FixedExpenseHandler{expenseService: expenseService}
}

// CreateFixedExpenseRequest represents the request payload for creating a
// fixed expense. When cycle_id is omitted the expense lands on the active
// cycle.
type CreateFixedExpenseRequest struct {
	CycleID       *uint                `json:"cycle_id"`
	Name          string               `json:"name" binding:"required,min=1,max=100"`
	Value         decimal.Decimal      `json:"value" binding:"required"`
	Category      string               `json:"category" binding:"max=50"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required,payment_method"`
}

// UpdateFixedExpenseRequest represents the request payload for updating a
// fixed expense. Cycle ownership is immutable.
type UpdateFixedExpenseRequest struct {
	Name          *string               `json:"name" binding:"omitempty,min=1,max=100"`
	Value         *decimal.Decimal      `json:"value"`
	Category      *string               `json:"category" binding:"omitempty,max=50"`
	PaymentMethod *models.PaymentMethod `json:"payment_method" binding:"omitempty,payment_method"`
}

// CreateFixedExpense creates a fixed expense.
func (h *FixedExpenseHandler) CreateFixedExpense(c *gin.Context) {
	var req CreateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateFixedExpense(req.CycleID, req.Name, req.Value, req.Category, req.PaymentMethod)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"fixed_expense": expense})
}

// ListFixedExpenses lists fixed expenses, optionally scoped to one cycle via
// the cycle_id query parameter.
func (h *FixedExpenseHandler) ListFixedExpenses(c *gin.Context) {
	cycleID, err := parseCycleIDQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.ListFixedExpenses(cycleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fixed_expenses": expenses})
}

// UpdateFixedExpense updates a fixed expense's fields.
func (h *FixedExpenseHandler) UpdateFixedExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.UpdateFixedExpense(expenseID, req.Name, req.Value, req.Category, req.PaymentMethod)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fixed_expense": expense})
}

// DeleteFixedExpense removes a fixed expense.
func (h *FixedExpenseHandler) DeleteFixedExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteFixedExpense(expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fixed expense deleted"})
}
