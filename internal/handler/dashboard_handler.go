package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardResponse represents the home screen in API responses
type DashboardResponse struct {
	Budget   BudgetSummaryResponse `json:"budget"`
	Alerts   []DueAlertResponse    `json:"alerts"`
	Recent   []TransactionResponse `json:"recent"`
	Accounts []AccountResponse     `json:"accounts"`
	Widget   domain.WidgetPayload  `json:"widget"`
}

// GetSummary handles GET /api/v1/dashboard/summary
// @Summary Budget, alerts, recent transactions and balances in one call
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	summary := h.dashboardService.GetSummary()

	accounts := make([]AccountResponse, len(summary.Accounts))
	for i, account := range summary.Accounts {
		accounts[i] = toAccountResponse(account)
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		Budget:   toBudgetSummaryResponse(summary.Budget),
		Alerts:   toDueAlertResponses(summary.Alerts),
		Recent:   toTransactionResponses(summary.Recent),
		Accounts: accounts,
		Widget:   summary.Widget,
	})
}

// GetWidget handles GET /api/v1/dashboard/widget
// @Summary Home-screen widget payload
// @Tags dashboard
// @Produce json
// @Param privacy query bool false "Mask amounts, overriding the configured default"
// @Success 200 {object} domain.WidgetPayload
// @Failure 400 {object} ProblemDetails
// @Router /dashboard/widget [get]
func (h *DashboardHandler) GetWidget(c echo.Context) error {
	var privacy *bool
	if param := c.QueryParam("privacy"); param != "" {
		value, err := strconv.ParseBool(param)
		if err != nil {
			return NewValidationError(c, "Invalid query parameter", []ValidationError{
				{Field: "privacy", Message: "Must be true or false"},
			})
		}
		privacy = &value
	}

	return c.JSON(http.StatusOK, h.dashboardService.GetWidget(privacy))
}
