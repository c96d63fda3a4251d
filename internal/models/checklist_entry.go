package models

import "time"

// ChecklistItemType identifies which record set a checklist item comes from.
type ChecklistItemType string

const (
	ChecklistItemFixed       ChecklistItemType = "fixed"
	ChecklistItemTransaction ChecklistItemType = "transaction"
	ChecklistItemCard        ChecklistItemType = "card"
	ChecklistItemDebt        ChecklistItemType = "debt"
)

// ChecklistEntry stores the checked flag for one payable item of one cycle.
// The (cycle_id, item_type, item_id) key is unique so upserts stay
// idempotent; last writer wins on Checked.
type ChecklistEntry struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	CycleID   uint              `gorm:"not null;uniqueIndex:uq_checklist_item" json:"cycle_id"`
	ItemType  ChecklistItemType `gorm:"not null;uniqueIndex:uq_checklist_item" json:"item_type"`
	ItemID    uint              `gorm:"not null;uniqueIndex:uq_checklist_item" json:"item_id"`
	Checked   bool              `gorm:"not null;default:false" json:"checked"`
	UpdatedAt time.Time         `json:"updated_at"`
}
