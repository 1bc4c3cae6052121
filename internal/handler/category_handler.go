package handler

import (
	"net/http"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles category and allocation HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest is the body for creating or editing a category
type CategoryRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Type   string `json:"type" validate:"required,oneof=expense income neutral"`
	Budget string `json:"budget,omitempty"`
}

// CategoryBudgetRequest is the body for setting a category budget
type CategoryBudgetRequest struct {
	Budget string `json:"budget" validate:"required"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Budget    string `json:"budget"`
	Protected bool   `json:"protected"`
}

// CategoryListResponse is the registry together with the allocation status
type CategoryListResponse struct {
	Categories    []CategoryResponse `json:"categories"`
	BudgetMonthly string             `json:"budgetMonthly"`
	Allocated     string             `json:"allocated"`
	Unallocated   string             `json:"unallocated"`
}

// GetCategories handles GET /api/v1/categories
// @Summary List categories and how much of the monthly budget they allocate
// @Tags categories
// @Produce json
// @Success 200 {object} CategoryListResponse
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories := h.categoryService.GetCategories()
	status := h.categoryService.GetAllocationStatus()

	response := CategoryListResponse{
		Categories:    make([]CategoryResponse, len(categories)),
		BudgetMonthly: status.BudgetMonthly.StringFixed(2),
		Allocated:     status.Allocated.StringFixed(2),
		Unallocated:   status.Unallocated.StringFixed(2),
	}
	for i, category := range categories {
		response.Categories[i] = toCategoryResponse(category)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/v1/categories
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param body body CategoryRequest true "Category"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	budget, ok := parseOptionalAmount(req.Budget)
	if !ok {
		return NewValidationError(c, "Invalid budget", []ValidationError{
			{Field: "budget", Message: "Must be a valid decimal number"},
		})
	}

	category, err := h.categoryService.CreateCategory(service.CreateCategoryInput{
		Name:   req.Name,
		Type:   domain.CategoryType(req.Type),
		Budget: budget,
	})
	if err != nil {
		return respondError(c, err, "create category")
	}

	log.Info().Str("category", category.Name).Msg("Category created")

	return c.JSON(http.StatusCreated, toCategoryResponse(*category))
}

// UpdateCategory handles PUT /api/v1/categories/:name
// @Summary Edit, rename or retype a category
// @Tags categories
// @Accept json
// @Produce json
// @Param name path string true "Category name"
// @Param body body CategoryRequest true "Category"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /categories/{name} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	name := c.Param("name")

	var req CategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	budget, ok := parseOptionalAmount(req.Budget)
	if !ok {
		return NewValidationError(c, "Invalid budget", []ValidationError{
			{Field: "budget", Message: "Must be a valid decimal number"},
		})
	}

	category, err := h.categoryService.UpdateCategory(name, service.UpdateCategoryInput{
		Name:   req.Name,
		Type:   domain.CategoryType(req.Type),
		Budget: budget,
	})
	if err != nil {
		return respondError(c, err, "update category")
	}

	return c.JSON(http.StatusOK, toCategoryResponse(*category))
}

// SetCategoryBudget handles PUT /api/v1/categories/:name/budget
// @Summary Set a category budget within the unallocated monthly budget
// @Tags categories
// @Accept json
// @Produce json
// @Param name path string true "Category name"
// @Param body body CategoryBudgetRequest true "Budget"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /categories/{name}/budget [put]
func (h *CategoryHandler) SetCategoryBudget(c echo.Context) error {
	name := c.Param("name")

	var req CategoryBudgetRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	budget, ok := parseOptionalAmount(req.Budget)
	if !ok {
		return NewValidationError(c, "Invalid budget", []ValidationError{
			{Field: "budget", Message: "Must be a valid decimal number"},
		})
	}

	category, err := h.categoryService.SetCategoryBudget(name, budget)
	if err != nil {
		return respondError(c, err, "set category budget")
	}

	return c.JSON(http.StatusOK, toCategoryResponse(*category))
}

// DeleteCategory handles DELETE /api/v1/categories/:name
// @Summary Delete a category. Transactions that use it are kept.
// @Tags categories
// @Param name path string true "Category name"
// @Success 204
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /categories/{name} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	name := c.Param("name")

	if err := h.categoryService.DeleteCategory(name); err != nil {
		return respondError(c, err, "delete category")
	}

	log.Info().Str("category", name).Msg("Category deleted")

	return c.NoContent(http.StatusNoContent)
}

func toCategoryResponse(category domain.NamedCategory) CategoryResponse {
	return CategoryResponse{
		Name:      category.Name,
		Type:      string(category.Type),
		Budget:    category.Budget.StringFixed(2),
		Protected: domain.IsProtectedCategory(category.Name),
	}
}
