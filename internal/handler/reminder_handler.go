package handler

import (
	"net/http"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReminderHandler handles recurring bill and card due HTTP requests
type ReminderHandler struct {
	reminderService *service.ReminderService
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// PayCardRequest is the body for paying a credit card bill
type PayCardRequest struct {
	FromAccount string `json:"fromAccount" validate:"required"`
}

// RecurringStatusResponse is a recurring template with its status for this month
type RecurringStatusResponse struct {
	Transaction  TransactionResponse `json:"transaction"`
	CycleKey     string              `json:"cycleKey"`
	Paid         bool                `json:"paid"`
	DaysUntilDue int                 `json:"daysUntilDue"`
	DueSoon      bool                `json:"dueSoon"`
}

// DueAlertResponse represents an unpaid item coming due
type DueAlertResponse struct {
	Kind          string `json:"kind"`
	TransactionID string `json:"transactionId,omitempty"`
	Account       string `json:"account"`
	Title         string `json:"title"`
	Amount        string `json:"amount"`
	DueDay        int    `json:"dueDay"`
	DaysUntilDue  int    `json:"daysUntilDue"`
}

// PaymentResponse is returned after a reminder or card bill is paid
type PaymentResponse struct {
	Payment  TransactionResponse `json:"payment"`
	CycleKey string              `json:"cycleKey"`
}

// GetReminders handles GET /api/v1/reminders
// @Summary Recurring templates with their paid state for the current month
// @Tags reminders
// @Produce json
// @Success 200 {array} RecurringStatusResponse
// @Router /reminders [get]
func (h *ReminderHandler) GetReminders(c echo.Context) error {
	statuses := h.reminderService.ListRecurring()

	response := make([]RecurringStatusResponse, len(statuses))
	for i, status := range statuses {
		response[i] = RecurringStatusResponse{
			Transaction:  toTransactionResponse(service.TransactionView{Transaction: status.Transaction}),
			CycleKey:     status.CycleKey,
			Paid:         status.Paid,
			DaysUntilDue: status.DaysUntilDue,
			DueSoon:      status.DueSoon,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetAlerts handles GET /api/v1/reminders/alerts
// @Summary Unpaid recurring bills and card dues that are due soon
// @Tags reminders
// @Produce json
// @Success 200 {array} DueAlertResponse
// @Router /reminders/alerts [get]
func (h *ReminderHandler) GetAlerts(c echo.Context) error {
	return c.JSON(http.StatusOK, toDueAlertResponses(h.reminderService.GetAlerts()))
}

// MarkPaid handles POST /api/v1/reminders/:id/pay
// @Summary Record this month's payment of a recurring template
// @Tags reminders
// @Produce json
// @Param id path string true "Recurring transaction ID"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /reminders/{id}/pay [post]
func (h *ReminderHandler) MarkPaid(c echo.Context) error {
	id := c.Param("id")

	result, err := h.reminderService.MarkPaid(id)
	if err != nil {
		return respondError(c, err, "mark reminder paid")
	}

	log.Info().Str("transaction_id", id).Str("cycle_key", result.CycleKey).Msg("Reminder paid")

	return c.JSON(http.StatusCreated, toPaymentResponse(result))
}

// PayCreditCard handles POST /api/v1/reminders/credit-cards/:name/pay
// @Summary Pay a credit card's outstanding balance from another account
// @Tags reminders
// @Accept json
// @Produce json
// @Param name path string true "Credit account name"
// @Param body body PayCardRequest true "Source account"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /reminders/credit-cards/{name}/pay [post]
func (h *ReminderHandler) PayCreditCard(c echo.Context) error {
	card := c.Param("name")

	var req PayCardRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.reminderService.PayCreditCardBill(card, req.FromAccount)
	if err != nil {
		return respondError(c, err, "pay credit card bill")
	}

	log.Info().Str("card", card).Str("amount", result.Payment.Amount.String()).Msg("Credit card bill paid")

	return c.JSON(http.StatusCreated, toPaymentResponse(result))
}

func toPaymentResponse(result *service.PaymentResult) PaymentResponse {
	return PaymentResponse{
		Payment:  toTransactionResponse(service.TransactionView{Transaction: result.Payment}),
		CycleKey: result.CycleKey,
	}
}

func toDueAlertResponses(alerts []domain.DueAlert) []DueAlertResponse {
	response := make([]DueAlertResponse, len(alerts))
	for i, alert := range alerts {
		response[i] = DueAlertResponse{
			Kind:          string(alert.Kind),
			TransactionID: alert.TransactionID,
			Account:       alert.Account,
			Title:         alert.Title,
			Amount:        alert.Amount.StringFixed(2),
			DueDay:        alert.DueDay,
			DaysUntilDue:  alert.DaysUntilDue,
		}
	}
	return response
}
