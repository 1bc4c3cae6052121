package handler

import (
	"net/http"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// AccountRequest is the body for creating or editing an account
type AccountRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Type           string `json:"type" validate:"required,oneof=bank cash ewallet credit other"`
	InitialBalance string `json:"initialBalance,omitempty"`
	DueDay         *int   `json:"dueDay,omitempty" validate:"omitempty,min=1,max=31"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	InitialBalance string `json:"initialBalance"`
	CurrentBalance string `json:"currentBalance"`
	DueDay         *int   `json:"dueDay,omitempty"`
	IsCredit       bool   `json:"isCredit"`
}

// parseOptionalAmount parses a decimal string, treating an empty value as zero
func parseOptionalAmount(value string) (decimal.Decimal, bool) {
	if value == "" {
		return decimal.Zero, true
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// CreateAccount handles POST /api/v1/accounts
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param body body AccountRequest true "Account"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req AccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	initialBalance, ok := parseOptionalAmount(req.InitialBalance)
	if !ok {
		return NewValidationError(c, "Invalid initial balance", []ValidationError{
			{Field: "initialBalance", Message: "Must be a valid decimal number"},
		})
	}

	account, err := h.accountService.CreateAccount(service.CreateAccountInput{
		Name:           req.Name,
		Type:           domain.AccountType(req.Type),
		InitialBalance: initialBalance,
		DueDay:         req.DueDay,
	})
	if err != nil {
		return respondError(c, err, "create account")
	}

	log.Info().Str("account", account.Name).Str("type", string(account.Type)).Msg("Account created")

	return c.JSON(http.StatusCreated, toAccountResponse(*account))
}

// GetAccounts handles GET /api/v1/accounts
// @Summary List accounts with their replayed balances
// @Tags accounts
// @Produce json
// @Success 200 {array} AccountResponse
// @Router /accounts [get]
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	accounts := h.accountService.GetAccounts()

	response := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		response[i] = toAccountResponse(account)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateAccount handles PUT /api/v1/accounts/:name
// @Summary Edit, rename or retype an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param name path string true "Account name"
// @Param body body AccountRequest true "Account"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /accounts/{name} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	name := c.Param("name")

	var req AccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	initialBalance, ok := parseOptionalAmount(req.InitialBalance)
	if !ok {
		return NewValidationError(c, "Invalid initial balance", []ValidationError{
			{Field: "initialBalance", Message: "Must be a valid decimal number"},
		})
	}

	account, err := h.accountService.UpdateAccount(name, service.UpdateAccountInput{
		Name:           req.Name,
		Type:           domain.AccountType(req.Type),
		InitialBalance: initialBalance,
		DueDay:         req.DueDay,
	})
	if err != nil {
		return respondError(c, err, "update account")
	}

	if account.Name != name {
		log.Info().Str("from", name).Str("to", account.Name).Msg("Account renamed")
	}

	return c.JSON(http.StatusOK, toAccountResponse(*account))
}

// DeleteAccount handles DELETE /api/v1/accounts/:name
// @Summary Delete an account. Transactions that reference it are kept.
// @Tags accounts
// @Param name path string true "Account name"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /accounts/{name} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	name := c.Param("name")

	if err := h.accountService.DeleteAccount(name); err != nil {
		return respondError(c, err, "delete account")
	}

	log.Info().Str("account", name).Msg("Account deleted")

	return c.NoContent(http.StatusNoContent)
}

func toAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		Name:           account.Name,
		Type:           string(account.Type),
		InitialBalance: account.InitialBalance.StringFixed(2),
		CurrentBalance: account.CurrentBalance.StringFixed(2),
		DueDay:         account.DueDay,
		IsCredit:       account.IsCredit(),
	}
}
