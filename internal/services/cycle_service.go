package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/leosaloa/controle-gastos/internal/errors"
	"github.com/leosaloa/controle-gastos/internal/models"
)

// cycleService handles budget-cycle business logic.
type cycleService struct {
	db *gorm.DB
}

// NewCycleService creates a new CycleServicer.
func NewCycleService(db *gorm.DB) CycleServicer {
	return &cycleService{db: db}
}

// CreateCycle creates a new active cycle. Inside a single transaction it
// deactivates every other cycle and clones the prior active cycle's fixed
// expenses by value into the new one, so the new cycle starts with the same
// recurring costs without sharing rows.
func (s *cycleService) CreateCycle(name string, startDate, endDate time.Time, budget decimal.Decimal) (*models.Cycle, error) {
	if endDate.Before(startDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date must not precede start date")
	}

	cycle := &models.Cycle{
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		Budget:    budget,
		Active:    true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var previous models.Cycle
		hadPrevious := true
		if err := tx.Where("active = ?", true).First(&previous).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			hadPrevious = false
		}

		if err := tx.Model(&models.Cycle{}).Where("active = ?", true).Update("active", false).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Create(cycle).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if !hadPrevious {
			return nil
		}

		var expenses []models.FixedExpense
		if err := tx.Where("cycle_id = ?", previous.ID).Find(&expenses).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, e := range expenses {
			clone := models.FixedExpense{
				Name:          e.Name,
				Value:         e.Value,
				Category:      e.Category,
				PaymentMethod: e.PaymentMethod,
				CycleID:       cycle.ID,
			}
			if err := tx.Create(&clone).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cycle, nil
}

// GetActiveCycle returns the currently active cycle.
func (s *cycleService) GetActiveCycle() (*models.Cycle, error) {
	var cycle models.Cycle
	if err := s.db.Where("active = ?", true).First(&cycle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveCycle
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &cycle, nil
}

// GetCycleByID returns a cycle by ID.
func (s *cycleService) GetCycleByID(cycleID uint) (*models.Cycle, error) {
	var cycle models.Cycle
	if err := s.db.First(&cycle, cycleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCycleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &cycle, nil
}

// ListCycles returns all cycles, most recent start date first.
func (s *cycleService) ListCycles() ([]models.Cycle, error) {
	var cycles []models.Cycle
	if err := s.db.Order("start_date DESC").Find(&cycles).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cycles, nil
}

// UpdateCycle updates an existing cycle's fields.
func (s *cycleService) UpdateCycle(cycleID uint, name *string, startDate, endDate *time.Time, budget *decimal.Decimal) (*models.Cycle, error) {
	cycle, err := s.GetCycleByID(cycleID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		updates["name"] = *name
	}
	if startDate != nil {
		updates["start_date"] = *startDate
	}
	if endDate != nil {
		updates["end_date"] = *endDate
	}
	if budget != nil {
		updates["budget"] = *budget
	}

	if len(updates) > 0 {
		if err := s.db.Model(cycle).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return cycle, nil
}

// ActivateCycle atomically clears every active flag and sets one, so readers
// never observe zero or two active cycles.
func (s *cycleService) ActivateCycle(cycleID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cycle models.Cycle
		if err := tx.First(&cycle, cycleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCycleNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Model(&models.Cycle{}).Where("active = ?", true).Update("active", false).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Model(&cycle).Update("active", true).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// DeleteCycle removes a cycle. Linked records are left in place: fixed
// expenses referencing the cycle are orphaned, transactions are unaffected
// since they are matched to cycles by date.
func (s *cycleService) DeleteCycle(cycleID uint) error {
	cycle, err := s.GetCycleByID(cycleID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(cycle).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ResolveCycleForDate returns the cycle whose inclusive [start_date, end_date]
// interval contains the given date. Cycles are not expected to overlap, but
// when they do the tie-break is deterministic: latest start date wins, then
// highest ID.
func (s *cycleService) ResolveCycleForDate(date time.Time) (*models.Cycle, error) {
	var cycle models.Cycle
	err := s.db.
		Where("start_date <= ? AND end_date >= ?", date, date).
		Order("start_date DESC").Order("id DESC").
		First(&cycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoCycleForDate
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &cycle, nil
}
