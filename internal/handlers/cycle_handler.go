package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/services"
)

// CycleHandler handles budget-cycle requests.
type CycleHandler struct {
	cycleService services.CycleServicer
}

// NewCycleHandler creates a new CycleHandler.
func NewCycleHandler(cycleService services.CycleServicer) *CycleHandler {
	return &CycleHandler{cycleService: cycleService}
}

// CreateCycleRequest represents the request payload for creating a cycle.
type CreateCycleRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=100"`
	StartDate string          `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string          `json:"end_date" binding:"required,datetime=2006-01-02"`
	Budget    decimal.Decimal `json:"budget" binding:"required"`
}

// UpdateCycleRequest represents the request payload for updating a cycle.
type UpdateCycleRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=1,max=100"`
	StartDate *string          `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string          `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Budget    *decimal.Decimal `json:"budget"`
}

// CreateCycle creates a new active cycle, deactivating all others and cloning
// the prior active cycle's fixed expenses.
func (h *CycleHandler) CreateCycle(c *gin.Context) {
	var req CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cycle, err := h.cycleService.CreateCycle(req.Name, startDate, endDate, req.Budget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"cycle": cycle})
}

// GetActiveCycle returns the currently active cycle.
func (h *CycleHandler) GetActiveCycle(c *gin.Context) {
	cycle, err := h.cycleService.GetActiveCycle()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cycle": cycle})
}

// ListCycles returns all cycles, most recent start date first.
func (h *CycleHandler) ListCycles(c *gin.Context) {
	cycles, err := h.cycleService.ListCycles()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cycles": cycles})
}

// UpdateCycle updates a cycle's fields.
func (h *CycleHandler) UpdateCycle(c *gin.Context) {
	cycleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cycle, err := h.cycleService.UpdateCycle(cycleID, req.Name, startDate, endDate, req.Budget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cycle": cycle})
}

// ActivateCycle makes one cycle active and deactivates all others.
func (h *CycleHandler) ActivateCycle(c *gin.Context) {
	cycleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cycleService.ActivateCycle(cycleID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cycle activated"})
}

// DeleteCycle removes a cycle.
func (h *CycleHandler) DeleteCycle(c *gin.Context) {
	cycleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cycleService.DeleteCycle(cycleID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cycle deleted"})
}
