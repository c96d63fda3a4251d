package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/models"
	"github.com/leosaloa/controle-gastos/internal/services"
)

// DebtHandler handles debt requests.
type DebtHandler struct {
	debtService services.DebtServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// CreateDebtRequest represents the request payload for creating a debt.
// monthly_installment, monthly_rate, start_date, projected_end_date and
// total_installments are optional; the projection degrades gracefully when
// they are missing.
type CreateDebtRequest struct {
	Name               string            `json:"name" binding:"required,min=1,max=100"`
	Type               string            `json:"type" binding:"max=50"`
	InitialBalance     decimal.Decimal   `json:"initial_balance"`
	CurrentBalance     decimal.Decimal   `json:"current_balance"`
	MonthlyInstallment *decimal.Decimal  `json:"monthly_installment"`
	MonthlyRate        *decimal.Decimal  `json:"monthly_rate"`
	StartDate          *string           `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	ProjectedEndDate   *string           `json:"projected_end_date" binding:"omitempty,datetime=2006-01-02"`
	TotalInstallments  *int              `json:"total_installments" binding:"omitempty,min=1"`
	Status             models.DebtStatus `json:"status" binding:"omitempty,debt_status"`
}

// UpdateDebtRequest represents the request payload for a partial debt update.
type UpdateDebtRequest struct {
	Name               *string            `json:"name" binding:"omitempty,min=1,max=100"`
	Type               *string            `json:"type" binding:"omitempty,max=50"`
	InitialBalance     *decimal.Decimal   `json:"initial_balance"`
	CurrentBalance     *decimal.Decimal   `json:"current_balance"`
	MonthlyInstallment *decimal.Decimal   `json:"monthly_installment"`
	MonthlyRate        *decimal.Decimal   `json:"monthly_rate"`
	StartDate          *string            `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	ProjectedEndDate   *string            `json:"projected_end_date" binding:"omitempty,datetime=2006-01-02"`
	TotalInstallments  *int               `json:"total_installments" binding:"omitempty,min=1"`
	Status             *models.DebtStatus `json:"status" binding:"omitempty,debt_status"`
}

// CreateDebt creates a debt.
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	projectedEnd, err := parseOptionalDate(req.ProjectedEndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.CreateDebt(services.DebtParams{
		Name:               req.Name,
		Type:               req.Type,
		InitialBalance:     req.InitialBalance,
		CurrentBalance:     req.CurrentBalance,
		MonthlyInstallment: req.MonthlyInstallment,
		MonthlyRate:        req.MonthlyRate,
		StartDate:          startDate,
		ProjectedEndDate:   projectedEnd,
		TotalInstallments:  req.TotalInstallments,
		Status:             req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// ListDebts returns all debts, each with its installment projection.
func (h *DebtHandler) ListDebts(c *gin.Context) {
	debts, err := h.debtService.ListDebts()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debts": debts})
}

// GetDebtProjection returns one debt with its installment projection.
func (h *DebtHandler) GetDebtProjection(c *gin.Context) {
	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.GetDebtProjection(debtID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// UpdateDebt applies a partial update to a debt.
func (h *DebtHandler) UpdateDebt(c *gin.Context) {
	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	projectedEnd, err := parseOptionalDate(req.ProjectedEndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.UpdateDebt(debtID, services.UpdateDebtParams{
		Name:               req.Name,
		Type:               req.Type,
		InitialBalance:     req.InitialBalance,
		CurrentBalance:     req.CurrentBalance,
		MonthlyInstallment: req.MonthlyInstallment,
		MonthlyRate:        req.MonthlyRate,
		StartDate:          startDate,
		ProjectedEndDate:   projectedEnd,
		TotalInstallments:  req.TotalInstallments,
		Status:             req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// DeleteDebt removes a debt.
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debtService.DeleteDebt(debtID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Debt deleted"})
}
