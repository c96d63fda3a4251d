package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/leosaloa/controle-gastos/internal/config"
	"github.com/leosaloa/controle-gastos/internal/database"
	"github.com/leosaloa/controle-gastos/internal/handlers"
	"github.com/leosaloa/controle-gastos/internal/logger"
	"github.com/leosaloa/controle-gastos/internal/middleware"
	"github.com/leosaloa/controle-gastos/internal/services"
	"github.com/leosaloa/controle-gastos/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Upgrade the schema in place and seed the first cycle if the database
	// is empty.
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	if err := dbManager.Seed(); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	cycleService := services.NewCycleService(db)
	fixedExpenseService := services.NewFixedExpenseService(db, cycleService)
	transactionService := services.NewTransactionService(db, cycleService)
	investmentService := services.NewInvestmentService(db)
	cardService := services.NewCardService(db)
	debtService := services.NewDebtService(db)
	checklistService := services.NewChecklistService(db, cycleService)

	// Initialize handlers
	cycleHandler := handlers.NewCycleHandler(cycleService)
	fixedExpenseHandler := handlers.NewFixedExpenseHandler(fixedExpenseService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	cardHandler := handlers.NewCardHandler(cardService)
	debtHandler := handlers.NewDebtHandler(debtService)
	checklistHandler := handlers.NewChecklistHandler(checklistService)

	// Register custom binding validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Cycle routes
	cycles := v1.Group("/cycles")
	cycles.POST("", cycleHandler.CreateCycle)
	cycles.GET("", cycleHandler.ListCycles)
	cycles.GET("/active", cycleHandler.GetActiveCycle)
	cycles.PUT("/:id", cycleHandler.UpdateCycle)
	cycles.POST("/:id/activate", cycleHandler.ActivateCycle)
	cycles.DELETE("/:id", cycleHandler.DeleteCycle)
	cycles.GET("/:id/checklist", checklistHandler.GetChecklist)
	cycles.PUT("/:id/checklist", checklistHandler.UpsertChecklistEntry)

	// Fixed expense routes
	fixedExpenses := v1.Group("/fixed-expenses")
	fixedExpenses.POST("", fixedExpenseHandler.CreateFixedExpense)
	fixedExpenses.GET("", fixedExpenseHandler.ListFixedExpenses)
	fixedExpenses.PUT("/:id", fixedExpenseHandler.UpdateFixedExpense)
	fixedExpenses.DELETE("/:id", fixedExpenseHandler.DeleteFixedExpense)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Investment routes
	investments := v1.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.ListInvestments)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	// Credit card routes
	cards := v1.Group("/cards")
	cards.POST("", cardHandler.CreateCard)
	cards.GET("", cardHandler.ListCards)
	cards.PUT("/:id", cardHandler.UpdateCard)
	cards.DELETE("/:id", cardHandler.DeleteCard)

	// Debt routes
	debts := v1.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.ListDebts)
	debts.GET("/:id/projection", debtHandler.GetDebtProjection)
	debts.PUT("/:id", debtHandler.UpdateDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)

	log.Infof("Starting controle-gastos server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
