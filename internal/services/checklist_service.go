package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/models"
)

// ChecklistItem is one payable line of a cycle's checklist.
type ChecklistItem struct {
	Type     models.ChecklistItemType `json:"type"`
	RefID    uint                     `json:"ref_id"`
	Title    string                   `json:"title"`
	Subtitle string                   `json:"subtitle"`
	Value    *decimal.Decimal         `json:"value"`
	Checked  bool                     `json:"checked"`
}

// Checklist groups a cycle's payable items by source record set.
type Checklist struct {
	CycleID       uint            `json:"cycle_id"`
	FixedExpenses []ChecklistItem `json:"fixed_expenses"`
	Transactions  []ChecklistItem `json:"transactions"`
	Cards         []ChecklistItem `json:"cards"`
	Debts         []ChecklistItem `json:"debts"`
}

// checklistService assembles the per-cycle payment checklist.
type checklistService struct {
	db           *gorm.DB
	cycleService CycleServicer
}

// NewChecklistService creates a new ChecklistServicer.
func NewChecklistService(db *gorm.DB, cycleService CycleServicer) ChecklistServicer {
	return &checklistService{db: db, cycleService: cycleService}
}

// BuildChecklist assembles the payable items of one cycle: the cycle's own
// debit fixed expenses, debit transactions dated inside the cycle's interval,
// and every card and debt. Cards and debts are not cycle-scoped; they appear
// on every cycle's checklist as recurring monthly obligations. The checked
// flag of each item is looked up from stored entries, defaulting to false.
func (s *checklistService) BuildChecklist(cycleID uint) (*Checklist, error) {
	cycle, err := s.cycleService.GetCycleByID(cycleID)
	if err != nil {
		return nil, err
	}

	checked, err := s.storedFlags(cycleID)
	if err != nil {
		return nil, err
	}

	var expenses []models.FixedExpense
	err = s.db.
		Where("cycle_id = ? AND payment_method = ?", cycleID, models.PaymentMethodDebit).
		Order("name ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	err = s.db.
		Where("date >= ? AND date <= ?", cycle.StartDate, cycle.EndDate).
		Where("payment_method = ?", models.PaymentMethodDebit).
		Order("date ASC").Order("description ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var cards []models.Card
	if err := s.db.Order("name ASC").Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var debts []models.Debt
	if err := s.db.Order("name ASC").Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	list := &Checklist{
		CycleID:       cycleID,
		FixedExpenses: make([]ChecklistItem, 0, len(expenses)),
		Transactions:  make([]ChecklistItem, 0, len(transactions)),
		Cards:         make([]ChecklistItem, 0, len(cards)),
		Debts:         make([]ChecklistItem, 0, len(debts)),
	}

	for _, e := range expenses {
		value := e.Value
		list.FixedExpenses = append(list.FixedExpenses, ChecklistItem{
			Type:     models.ChecklistItemFixed,
			RefID:    e.ID,
			Title:    e.Name,
			Subtitle: "Fixed (debit/Pix)",
			Value:    &value,
			Checked:  checked[flagKey{models.ChecklistItemFixed, e.ID}],
		})
	}
	for _, t := range transactions {
		value := t.Value
		list.Transactions = append(list.Transactions, ChecklistItem{
			Type:     models.ChecklistItemTransaction,
			RefID:    t.ID,
			Title:    t.Description,
			Subtitle: fmt.Sprintf("Transactions (debit/Pix) • %s", t.Date.Format("02/01/2006")),
			Value:    &value,
			Checked:  checked[flagKey{models.ChecklistItemTransaction, t.ID}],
		})
	}
	for _, c := range cards {
		value := c.CurrentBalance
		list.Cards = append(list.Cards, ChecklistItem{
			Type:     models.ChecklistItemCard,
			RefID:    c.ID,
			Title:    fmt.Sprintf("%s statement", c.Name),
			Subtitle: "Cards",
			Value:    &value,
			Checked:  checked[flagKey{models.ChecklistItemCard, c.ID}],
		})
	}
	for _, d := range debts {
		list.Debts = append(list.Debts, ChecklistItem{
			Type:     models.ChecklistItemDebt,
			RefID:    d.ID,
			Title:    d.Name,
			Subtitle: "Debts",
			Value:    d.MonthlyInstallment,
			Checked:  checked[flagKey{models.ChecklistItemDebt, d.ID}],
		})
	}

	return list, nil
}

type flagKey struct {
	itemType models.ChecklistItemType
	itemID   uint
}

// storedFlags loads the checked flags saved for one cycle.
func (s *checklistService) storedFlags(cycleID uint) (map[flagKey]bool, error) {
	var entries []models.ChecklistEntry
	if err := s.db.Where("cycle_id = ?", cycleID).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	flags := make(map[flagKey]bool, len(entries))
	for _, e := range entries {
		flags[flagKey{e.ItemType, e.ItemID}] = e.Checked
	}
	return flags, nil
}

// UpsertEntry sets or inserts the checked flag for one (cycle, type, id)
// tuple. The unique index on the tuple makes the operation idempotent under
// concurrent callers: last writer wins on the flag and update timestamp.
func (s *checklistService) UpsertEntry(cycleID uint, itemType models.ChecklistItemType, itemID uint, checked bool) (*models.ChecklistEntry, error) {
	if cycleID == 0 || itemType == "" || itemID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cycle_id, item_type and item_id are required")
	}

	if _, err := s.cycleService.GetCycleByID(cycleID); err != nil {
		return nil, err
	}

	entry := models.ChecklistEntry{
		CycleID:   cycleID,
		ItemType:  itemType,
		ItemID:    itemID,
		Checked:   checked,
		UpdatedAt: time.Now().UTC(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cycle_id"}, {Name: "item_type"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"checked", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &entry, nil
}
