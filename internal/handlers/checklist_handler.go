package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/models"
	"github.com/leosaloa/controle-gastos/internal/services"
)

// ChecklistHandler handles per-cycle payment checklist requests.
type ChecklistHandler struct {
	checklistService services.ChecklistServicer
}

// NewChecklistHandler creates a new ChecklistHandler.
func NewChecklistHandler(checklistService services.ChecklistServicer) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

// UpsertChecklistEntryRequest represents the request payload for setting the
// checked flag of one checklist item.
type UpsertChecklistEntryRequest struct {
	ItemType models.ChecklistItemType `json:"item_type" binding:"required,checklist_item_type"`
	ItemID   uint                     `json:"item_id" binding:"required,min=1"`
	Checked  bool                     `json:"checked"`
}

// GetChecklist assembles the payment checklist for a cycle.
func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	cycleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	checklist, err := h.checklistService.BuildChecklist(cycleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, checklist)
}

// UpsertChecklistEntry records the checked flag of a checklist item. Repeated
// writes for the same item replace the stored flag.
func (h *ChecklistHandler) UpsertChecklistEntry(c *gin.Context) {
	cycleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertChecklistEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.checklistService.UpsertEntry(cycleID, req.ItemType, req.ItemID, req.Checked)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}
