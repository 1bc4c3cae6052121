package handler

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every API handler for route registration
type Handlers struct {
	Account     *AccountHandler
	Transaction *TransactionHandler
	Category    *CategoryHandler
	Budget      *BudgetHandler
	Reminder    *ReminderHandler
	Dashboard   *DashboardHandler
	Data        *DataHandler
	WebSocket   *WebSocketHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, h Handlers) {
	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", ServeOpenAPI3Spec)

	// API version 1
	api := e.Group("/api/v1")

	// Account routes
	accounts := api.Group("/accounts")
	accounts.GET("", h.Account.GetAccounts)
	accounts.POST("", h.Account.CreateAccount)
	accounts.PUT("/:name", h.Account.UpdateAccount)
	accounts.DELETE("/:name", h.Account.DeleteAccount)

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.GET("", h.Transaction.GetTransactions)
	transactions.GET("/recent", h.Transaction.GetRecentTransactions)
	transactions.GET("/:id", h.Transaction.GetTransaction)
	transactions.POST("", h.Transaction.CreateTransaction)
	transactions.PUT("/:id", h.Transaction.UpdateTransaction)
	transactions.DELETE("/:id", h.Transaction.DeleteTransaction)

	// Category routes
	categories := api.Group("/categories")
	categories.GET("", h.Category.GetCategories)
	categories.POST("", h.Category.CreateCategory)
	categories.PUT("/:name", h.Category.UpdateCategory)
	categories.PUT("/:name/budget", h.Category.SetCategoryBudget)
	categories.DELETE("/:name", h.Category.DeleteCategory)

	// Budget routes
	budget := api.Group("/budget")
	budget.GET("/summary", h.Budget.GetSummary)
	budget.GET("/archive", h.Budget.GetArchive)
	budget.GET("/settings", h.Budget.GetSettings)
	budget.PUT("/monthly", h.Budget.SetMonthlyBudget)
	budget.PUT("/month-start-day", h.Budget.SetMonthStartDay)

	// Reminder routes
	reminders := api.Group("/reminders")
	reminders.GET("", h.Reminder.GetReminders)
	reminders.GET("/alerts", h.Reminder.GetAlerts)
	reminders.POST("/:id/pay", h.Reminder.MarkPaid)
	reminders.POST("/credit-cards/:name/pay", h.Reminder.PayCreditCard)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", h.Dashboard.GetSummary)
	dashboard.GET("/widget", h.Dashboard.GetWidget)

	// Data routes
	data := api.Group("/data")
	data.GET("/export/json", h.Data.ExportJSON)
	data.GET("/export/csv", h.Data.ExportCSV)
	data.POST("/import", h.Data.Import)
	data.POST("/reset", h.Data.Reset)
	data.GET("/backups", h.Data.ListBackups)
	data.POST("/backups", h.Data.CreateBackup)
	data.POST("/backups/restore", h.Data.RestoreBackup)

	// Realtime
	api.GET("/ws", h.WebSocket.HandleWS)
}
