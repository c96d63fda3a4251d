package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/models"
	"github.com/leosaloa/controle-gastos/internal/pagination"
	"github.com/leosaloa/controle-gastos/internal/services"
)

// TransactionHandler handles transaction requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. debt_id links the transaction to a debt, in which case
// installment_number is required.
type CreateTransactionRequest struct {
	Date              string               `json:"date" binding:"required,datetime=2006-01-02"`
	Description       string               `json:"description" binding:"required,min=1,max=200"`
	Value             decimal.Decimal      `json:"value" binding:"required"`
	Category          string               `json:"category" binding:"max=50"`
	PaymentMethod     models.PaymentMethod `json:"payment_method" binding:"required,payment_method"`
	DebtID            *uint                `json:"debt_id"`
	InstallmentNumber *int                 `json:"installment_number" binding:"omitempty,min=0"`
	FinalInstallment  bool                 `json:"final_installment"`
}

// UpdateTransactionRequest represents the request payload for a partial
// transaction update. A debt_id of zero unlinks the transaction from its
// debt.
type UpdateTransactionRequest struct {
	Date              *string               `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description       *string               `json:"description" binding:"omitempty,min=1,max=200"`
	Value             *decimal.Decimal      `json:"value"`
	Category          *string               `json:"category" binding:"omitempty,max=50"`
	PaymentMethod     *models.PaymentMethod `json:"payment_method" binding:"omitempty,payment_method"`
	DebtID            *uint                 `json:"debt_id"`
	InstallmentNumber *int                  `json:"installment_number" binding:"omitempty,min=0"`
	FinalInstallment  *bool                 `json:"final_installment"`
}

// CreateTransaction creates a transaction. The date must fall inside some
// cycle's interval.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(services.TransactionParams{
		Date:              date,
		Description:       req.Description,
		Value:             req.Value,
		Category:          req.Category,
		PaymentMethod:     req.PaymentMethod,
		DebtID:            req.DebtID,
		InstallmentNumber: req.InstallmentNumber,
		FinalInstallment:  req.FinalInstallment,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListTransactions lists transactions newest first, optionally restricted to
// the date interval of the cycle named by the cycle_id query parameter.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	cycleID, err := parseCycleIDQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.transactionService.ListTransactions(cycleID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateTransaction applies a partial update to a transaction.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(transactionID, services.UpdateTransactionParams{
		Date:              date,
		Description:       req.Description,
		Value:             req.Value,
		Category:          req.Category,
		PaymentMethod:     req.PaymentMethod,
		DebtID:            req.DebtID,
		InstallmentNumber: req.InstallmentNumber,
		FinalInstallment:  req.FinalInstallment,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction removes a transaction.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
