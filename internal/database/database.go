package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/leosaloa/controle-gastos/internal/logger"
	"github.com/leosaloa/controle-gastos/internal/models"
	"github.com/shopspring/decimal"
)

// Manager handles database operations
type Manager struct {
	db *gorm.DB
}

// NewManager creates a new database manager for the configured driver.
func NewManager(config *Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case "postgres":
		dialector = postgres.Open(config.DSN())
	default:
		dialector = sqlite.Open(config.Path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db}, nil
}

// Migrate applies the idempotent schema upgrade for all models. New columns
// and indexes are added in place; nothing is dropped.
func (m *Manager) Migrate() error {
	logger.Get().Info("Running database schema upgrade...")

	err := m.db.AutoMigrate(
		&models.Cycle{},
		&models.FixedExpense{},
		&models.Transaction{},
		&models.Investment{},
		&models.Card{},
		&models.Debt{},
		&models.ChecklistEntry{},
	)
	if err != nil {
		return fmt.Errorf("schema upgrade failed: %w", err)
	}

	logger.Get().Info("Database schema upgrade completed")
	return nil
}

// Seed creates a default active cycle covering the current month when no
// cycle exists yet, so transaction dates have a covering cycle out of the box.
func (m *Manager) Seed() error {
	var count int64
	if err := m.db.Model(&models.Cycle{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count cycles: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	cycle := models.Cycle{
		Name:      start.Format("January 2006"),
		StartDate: start,
		EndDate:   end,
		Budget:    decimal.NewFromInt(5000),
		Active:    true,
	}
	if err := m.db.Create(&cycle).Error; err != nil {
		return fmt.Errorf("failed to seed default cycle: %w", err)
	}

	logger.Get().Infow("seeded default cycle", "name", cycle.Name)
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
