package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/leosaloa/controle-gastos/internal/handlers"
	"github.com/leosaloa/controle-gastos/internal/logger"
	"github.com/leosaloa/controle-gastos/internal/middleware"
	"github.com/leosaloa/controle-gastos/internal/models"
	"github.com/leosaloa/controle-gastos/internal/services"
	"github.com/leosaloa/controle-gastos/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Cycle{},
		&models.FixedExpense{},
		&models.Transaction{},
		&models.Investment{},
		&models.Card{},
		&models.Debt{},
		&models.ChecklistEntry{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	cycleService := services.NewCycleService(db)
	fixedExpenseService := services.NewFixedExpenseService(db, cycleService)
	transactionService := services.NewTransactionService(db, cycleService)
	investmentService := services.NewInvestmentService(db)
	cardService := services.NewCardService(db)
	debtService := services.NewDebtService(db)
	checklistService := services.NewChecklistService(db, cycleService)

	// Handlers
	cycleHandler := handlers.NewCycleHandler(cycleService)
	fixedExpenseHandler := handlers.NewFixedExpenseHandler(fixedExpenseService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	cardHandler := handlers.NewCardHandler(cardService)
	debtHandler := handlers.NewDebtHandler(debtService)
	checklistHandler := handlers.NewChecklistHandler(checklistService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	cycles := v1.Group("/cycles")
	cycles.POST("", cycleHandler.CreateCycle)
	cycles.GET("", cycleHandler.ListCycles)
	cycles.GET("/active", cycleHandler.GetActiveCycle)
	cycles.PUT("/:id", cycleHandler.UpdateCycle)
	cycles.POST("/:id/activate", cycleHandler.ActivateCycle)
	cycles.DELETE("/:id", cycleHandler.DeleteCycle)
	cycles.GET("/:id/checklist", checklistHandler.GetChecklist)
	cycles.PUT("/:id/checklist", checklistHandler.UpsertChecklistEntry)

	fixedExpenses := v1.Group("/fixed-expenses")
	fixedExpenses.POST("", fixedExpenseHandler.CreateFixedExpense)
	fixedExpenses.GET("", fixedExpenseHandler.ListFixedExpenses)
	fixedExpenses.PUT("/:id", fixedExpenseHandler.UpdateFixedExpense)
	fixedExpenses.DELETE("/:id", fixedExpenseHandler.DeleteFixedExpense)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	investments := v1.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.ListInvestments)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	cards := v1.Group("/cards")
	cards.POST("", cardHandler.CreateCard)
	cards.GET("", cardHandler.ListCards)
	cards.PUT("/:id", cardHandler.UpdateCard)
	cards.DELETE("/:id", cardHandler.DeleteCard)

	debts := v1.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.ListDebts)
	debts.GET("/:id/projection", debtHandler.GetDebtProjection)
	debts.PUT("/:id", debtHandler.UpdateDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createCycle creates a cycle through the API and returns its ID.
func (app *testApp) createCycle(t *testing.T, name, start, end string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"start_date":%q,"end_date":%q,"budget":"5000"}`, name, start, end)
	rec := app.request("POST", "/api/v1/cycles", body)
	if rec.Code != 201 {
		t.Fatalf("create cycle failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	cycle := result["cycle"].(map[string]interface{})
	return cycle["id"].(float64)
}

// createDebt creates a debt through the API and returns its ID.
func (app *testApp) createDebt(t *testing.T, name string, totalInstallments int, start string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"type":"loan","initial_balance":"10000","current_balance":"10000","total_installments":%d,"start_date":%q}`,
		name, totalInstallments, start)
	rec := app.request("POST", "/api/v1/debts", body)
	if rec.Code != 201 {
		t.Fatalf("create debt failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	debt := result["debt"].(map[string]interface{})
	return debt["id"].(float64)
}
