package handler

import (
	"net/http"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget cycle HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// MonthlyBudgetRequest is the body for setting the monthly budget
type MonthlyBudgetRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// MonthStartDayRequest is the body for setting the cycle start day
type MonthStartDayRequest struct {
	Day int `json:"day" validate:"required,min=1,max=31"`
}

// BudgetSettingsResponse represents the budget settings in API responses
type BudgetSettingsResponse struct {
	BudgetMonthly  string `json:"budgetMonthly"`
	MonthStartDate int    `json:"monthStartDate"`
}

// CategorySpendingResponse is one category's cycle spend
type CategorySpendingResponse struct {
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Budget      string `json:"budget"`
	PercentUsed string `json:"percentUsed"`
	Orphaned    bool   `json:"orphaned,omitempty"`
}

// BudgetSummaryResponse represents the current cycle aggregates
type BudgetSummaryResponse struct {
	CycleStart       string                     `json:"cycleStart"`
	CycleEnd         string                     `json:"cycleEnd"`
	CycleLabel       string                     `json:"cycleLabel"`
	BudgetMonthly    string                     `json:"budgetMonthly"`
	MonthlySpent     string                     `json:"monthlySpent"`
	MonthlyIncome    string                     `json:"monthlyIncome"`
	RemainingBudget  string                     `json:"remainingBudget"`
	BurnRatio        string                     `json:"burnRatio"`
	NetWorth         string                     `json:"netWorth"`
	TotalAssets      string                     `json:"totalAssets"`
	TotalLiabilities string                     `json:"totalLiabilities"`
	CategorySpending []CategorySpendingResponse `json:"categorySpending"`
	TransactionCount int                        `json:"transactionCount"`
}

// MonthArchiveResponse is one month of the archive
type MonthArchiveResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
	Count   int    `json:"count"`
}

// GetSummary handles GET /api/v1/budget/summary
// @Summary Aggregates of the current budget cycle
// @Tags budget
// @Produce json
// @Success 200 {object} BudgetSummaryResponse
// @Router /budget/summary [get]
func (h *BudgetHandler) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, toBudgetSummaryResponse(h.budgetService.GetSummary()))
}

// GetArchive handles GET /api/v1/budget/archive
// @Summary Income and expense per calendar month, newest first
// @Tags budget
// @Produce json
// @Success 200 {array} MonthArchiveResponse
// @Router /budget/archive [get]
func (h *BudgetHandler) GetArchive(c echo.Context) error {
	archive := h.budgetService.GetArchive()

	response := make([]MonthArchiveResponse, len(archive))
	for i, month := range archive {
		response[i] = MonthArchiveResponse{
			Month:   month.Month,
			Income:  month.Income.StringFixed(2),
			Expense: month.Expense.StringFixed(2),
			Net:     month.Income.Sub(month.Expense).StringFixed(2),
			Count:   month.Count,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetSettings handles GET /api/v1/budget/settings
// @Summary Current monthly budget and cycle start day
// @Tags budget
// @Produce json
// @Success 200 {object} BudgetSettingsResponse
// @Router /budget/settings [get]
func (h *BudgetHandler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, toBudgetSettingsResponse(h.budgetService.GetSettings()))
}

// SetMonthlyBudget handles PUT /api/v1/budget/monthly
// @Summary Set the monthly budget ceiling
// @Tags budget
// @Accept json
// @Produce json
// @Param body body MonthlyBudgetRequest true "Budget"
// @Success 200 {object} BudgetSettingsResponse
// @Failure 400 {object} ProblemDetails
// @Router /budget/monthly [put]
func (h *BudgetHandler) SetMonthlyBudget(c echo.Context) error {
	var req MonthlyBudgetRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	settings, err := h.budgetService.SetMonthlyBudget(amount)
	if err != nil {
		return respondError(c, err, "set monthly budget")
	}

	log.Info().Str("budget_monthly", settings.BudgetMonthly.String()).Msg("Monthly budget updated")

	return c.JSON(http.StatusOK, toBudgetSettingsResponse(*settings))
}

// SetMonthStartDay handles PUT /api/v1/budget/month-start-day
// @Summary Set the day of month on which a budget cycle starts
// @Tags budget
// @Accept json
// @Produce json
// @Param body body MonthStartDayRequest true "Start day"
// @Success 200 {object} BudgetSettingsResponse
// @Failure 400 {object} ProblemDetails
// @Router /budget/month-start-day [put]
func (h *BudgetHandler) SetMonthStartDay(c echo.Context) error {
	var req MonthStartDayRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	settings, err := h.budgetService.SetMonthStartDay(req.Day)
	if err != nil {
		return respondError(c, err, "set month start day")
	}

	return c.JSON(http.StatusOK, toBudgetSettingsResponse(*settings))
}

func toBudgetSettingsResponse(settings service.BudgetSettings) BudgetSettingsResponse {
	return BudgetSettingsResponse{
		BudgetMonthly:  settings.BudgetMonthly.StringFixed(2),
		MonthStartDate: settings.MonthStartDate,
	}
}

func toBudgetSummaryResponse(summary domain.BudgetSummary) BudgetSummaryResponse {
	spending := make([]CategorySpendingResponse, len(summary.CategorySpending))
	for i, cs := range summary.CategorySpending {
		spending[i] = CategorySpendingResponse{
			Category:    cs.Category,
			Amount:      cs.Amount.StringFixed(2),
			Budget:      cs.Budget.StringFixed(2),
			PercentUsed: cs.PercentUsed.StringFixed(1),
			Orphaned:    cs.Orphaned,
		}
	}

	return BudgetSummaryResponse{
		CycleStart:       summary.CycleStart.Format("2006-01-02"),
		CycleEnd:         summary.CycleEnd.Format("2006-01-02"),
		CycleLabel:       summary.CycleLabel,
		BudgetMonthly:    summary.BudgetMonthly.StringFixed(2),
		MonthlySpent:     summary.MonthlySpent.StringFixed(2),
		MonthlyIncome:    summary.MonthlyIncome.StringFixed(2),
		RemainingBudget:  summary.RemainingBudget.StringFixed(2),
		BurnRatio:        summary.BurnRatio.StringFixed(4),
		NetWorth:         summary.NetWorth.StringFixed(2),
		TotalAssets:      summary.TotalAssets.StringFixed(2),
		TotalLiabilities: summary.TotalLiabilities.StringFixed(2),
		CategorySpending: spending,
		TransactionCount: summary.TransactionCount,
	}
}
