package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest is the body for recording or replacing a transaction
type TransactionRequest struct {
	Type          string `json:"type" validate:"required,oneof=income expense transfer"`
	Amount        string `json:"amount" validate:"required"`
	Category      string `json:"category"`
	Account       string `json:"account"`
	FromAccount   string `json:"fromAccount"`
	ToAccount     string `json:"toAccount"`
	Date          string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Note          string `json:"note" validate:"max=500"`
	IsRecurring   bool   `json:"isRecurring"`
	RecurringType string `json:"recurringType"`
	DueDay        *int   `json:"dueDay,omitempty"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID                  string `json:"id"`
	Type                string `json:"type"`
	Amount              string `json:"amount"`
	Category            string `json:"category"`
	Account             string `json:"account"`
	FromAccount         string `json:"fromAccount,omitempty"`
	ToAccount           string `json:"toAccount,omitempty"`
	Date                string `json:"date"`
	Note                string `json:"note"`
	IsRecurring         bool   `json:"isRecurring"`
	RecurringType       string `json:"recurringType,omitempty"`
	DueDay              *int   `json:"dueDay,omitempty"`
	CreatedAt           string `json:"createdAt"`
	AccountOrphaned     bool   `json:"accountOrphaned,omitempty"`
	FromAccountOrphaned bool   `json:"fromAccountOrphaned,omitempty"`
	ToAccountOrphaned   bool   `json:"toAccountOrphaned,omitempty"`
	CategoryOrphaned    bool   `json:"categoryOrphaned,omitempty"`
}

func (r TransactionRequest) toInput() (service.TransactionInput, []ValidationError) {
	var errs []ValidationError

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		errs = append(errs, ValidationError{Field: "amount", Message: "Must be a valid decimal number"})
	}

	var date domain.Date
	if r.Date != "" {
		date, err = domain.ParseDate(r.Date)
		if err != nil {
			errs = append(errs, ValidationError{Field: "date", Message: "Must be a date in YYYY-MM-DD format"})
		}
	}

	return service.TransactionInput{
		Type:          domain.TransactionType(r.Type),
		Amount:        amount,
		Category:      r.Category,
		Account:       r.Account,
		FromAccount:   r.FromAccount,
		ToAccount:     r.ToAccount,
		Date:          date,
		Note:          r.Note,
		IsRecurring:   r.IsRecurring,
		RecurringType: r.RecurringType,
		DueDay:        r.DueDay,
	}, errs
}

// CreateTransaction handles POST /api/v1/transactions
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param body body TransactionRequest true "Transaction"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req TransactionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input, errs := req.toInput()
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	tx, err := h.transactionService.CreateTransaction(input)
	if err != nil {
		return respondReferenceError(c, err, "create transaction")
	}

	log.Info().Str("transaction_id", tx.ID).Str("type", string(tx.Type)).Msg("Transaction created")

	return c.JSON(http.StatusCreated, toTransactionResponse(service.TransactionView{Transaction: *tx}))
}

// GetTransactions handles GET /api/v1/transactions
// @Summary List transactions, newest first
// @Tags transactions
// @Produce json
// @Param type query string false "income, expense or transfer"
// @Param range query string false "all, month or week"
// @Param q query string false "Search note, category, amount and date"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions [get]
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	filters := domain.TransactionFilters{
		Range:  domain.RangeAll,
		Search: c.QueryParam("q"),
	}

	if typeParam := c.QueryParam("type"); typeParam != "" {
		txType := domain.TransactionType(typeParam)
		if !txType.IsValid() {
			return NewValidationError(c, "Invalid query parameter", []ValidationError{
				{Field: "type", Message: "Must be one of: income, expense, transfer"},
			})
		}
		filters.Type = &txType
	}

	if rangeParam := c.QueryParam("range"); rangeParam != "" {
		switch r := domain.TransactionRange(rangeParam); r {
		case domain.RangeAll, domain.RangeMonth, domain.RangeWeek:
			filters.Range = r
		default:
			return NewValidationError(c, "Invalid query parameter", []ValidationError{
				{Field: "range", Message: "Must be one of: all, month, week"},
			})
		}
	}

	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 1 {
			return NewValidationError(c, "Invalid query parameter", []ValidationError{
				{Field: "limit", Message: "Must be a positive integer"},
			})
		}
		filters.Limit = limit
	}

	return c.JSON(http.StatusOK, toTransactionResponses(h.transactionService.GetTransactions(filters)))
}

// GetRecentTransactions handles GET /api/v1/transactions/recent
// @Summary The most recent transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} TransactionResponse
// @Router /transactions/recent [get]
func (h *TransactionHandler) GetRecentTransactions(c echo.Context) error {
	return c.JSON(http.StatusOK, toTransactionResponses(h.transactionService.GetRecentTransactions()))
}

// GetTransaction handles GET /api/v1/transactions/:id
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} TransactionResponse
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	view, err := h.transactionService.GetTransaction(c.Param("id"))
	if err != nil {
		return respondError(c, err, "get transaction")
	}
	return c.JSON(http.StatusOK, toTransactionResponse(*view))
}

// UpdateTransaction handles PUT /api/v1/transactions/:id
// @Summary Replace a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param body body TransactionRequest true "Transaction"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id := c.Param("id")

	var req TransactionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input, errs := req.toInput()
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	tx, err := h.transactionService.UpdateTransaction(id, input)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		return respondReferenceError(c, err, "update transaction")
	}

	return c.JSON(http.StatusOK, toTransactionResponse(service.TransactionView{Transaction: *tx}))
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id := c.Param("id")

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		return respondError(c, err, "delete transaction")
	}

	log.Info().Str("transaction_id", id).Msg("Transaction deleted")

	return c.NoContent(http.StatusNoContent)
}

func toTransactionResponse(view service.TransactionView) TransactionResponse {
	return TransactionResponse{
		ID:                  view.ID,
		Type:                string(view.Type),
		Amount:              view.Amount.StringFixed(2),
		Category:            view.Category,
		Account:             view.Account,
		FromAccount:         view.FromAccount,
		ToAccount:           view.ToAccount,
		Date:                view.Date.String(),
		Note:                view.Note,
		IsRecurring:         view.IsRecurring,
		RecurringType:       view.RecurringType,
		DueDay:              view.DueDay,
		CreatedAt:           view.CreatedAt.Format(time.RFC3339),
		AccountOrphaned:     view.AccountOrphaned,
		FromAccountOrphaned: view.FromAccountOrphaned,
		ToAccountOrphaned:   view.ToAccountOrphaned,
		CategoryOrphaned:    view.CategoryOrphaned,
	}
}

func toTransactionResponses(views []service.TransactionView) []TransactionResponse {
	response := make([]TransactionResponse, len(views))
	for i, view := range views {
		response[i] = toTransactionResponse(view)
	}
	return response
}
