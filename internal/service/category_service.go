package service

import (
	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// CategoryService handles the category registry and its budget allocations
type CategoryService struct {
	ledger *Ledger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(ledger *Ledger) *CategoryService {
	return &CategoryService{ledger: ledger}
}

// CreateCategoryInput holds the input for creating a category
type CreateCategoryInput struct {
	Name   string
	Type   domain.CategoryType
	Budget decimal.Decimal
}

// UpdateCategoryInput holds the input for editing a category. Name may differ
// from the current one to rename the category.
type UpdateCategoryInput struct {
	Name   string
	Type   domain.CategoryType
	Budget decimal.Decimal
}

// AllocationStatus describes how much of the monthly ceiling is handed out
type AllocationStatus struct {
	BudgetMonthly decimal.Decimal
	Allocated     decimal.Decimal
	Unallocated   decimal.Decimal
}

// GetCategories returns every category
func (s *CategoryService) GetCategories() []domain.NamedCategory {
	var list []domain.NamedCategory
	s.ledger.view(func(st *domain.State) {
		list = st.CategoryList()
	})
	return list
}

// GetCategory returns a single category by name
func (s *CategoryService) GetCategory(name string) (*domain.NamedCategory, error) {
	var ref domain.Ref[domain.Category]
	s.ledger.view(func(st *domain.State) {
		ref = st.LookupCategory(name)
	})
	if ref.Orphaned {
		return nil, domain.ErrCategoryNotFound
	}
	return &domain.NamedCategory{Name: name, Category: ref.Value}, nil
}

// GetAllocationStatus returns the allocated and unallocated parts of the monthly budget
func (s *CategoryService) GetAllocationStatus() AllocationStatus {
	var status AllocationStatus
	s.ledger.view(func(st *domain.State) {
		status.BudgetMonthly = st.BudgetMonthly
		status.Allocated = st.AllocatedBudget("")
		status.Unallocated = st.BudgetMonthly.Sub(status.Allocated)
	})
	return status
}

// CreateCategory adds a category to the registry
func (s *CategoryService) CreateCategory(input CreateCategoryInput) (*domain.NamedCategory, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidCategoryType
	}

	_, err = s.ledger.mutate("category.create", func(st *domain.State) error {
		if _, exists := st.Categories[name]; exists {
			return domain.ErrDuplicateCategory
		}
		if err := validateAllocation(st, name, input.Type, input.Budget); err != nil {
			return err
		}
		st.Categories[name] = domain.Category{Type: input.Type, Budget: input.Budget}
		return nil
	})
	if err != nil {
		return nil, err
	}

	category := &domain.NamedCategory{Name: name, Category: domain.Category{Type: input.Type, Budget: input.Budget}}
	s.ledger.publishEvent(websocket.CategoryCreated(category))
	return category, nil
}

// UpdateCategory edits a category. A rename rewrites the category on every
// transaction that uses it. The Transfer category cannot be renamed or retyped.
func (s *CategoryService) UpdateCategory(currentName string, input UpdateCategoryInput) (*domain.NamedCategory, error) {
	newName, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidCategoryType
	}

	_, err = s.ledger.mutate("category.update", func(st *domain.State) error {
		existing, ok := st.Categories[currentName]
		if !ok {
			return domain.ErrCategoryNotFound
		}
		if domain.IsProtectedCategory(currentName) && (newName != currentName || input.Type != existing.Type) {
			return domain.ErrProtectedCategory
		}
		if newName != currentName {
			if _, exists := st.Categories[newName]; exists {
				return domain.ErrDuplicateCategory
			}
		}
		if err := validateAllocation(st, currentName, input.Type, input.Budget); err != nil {
			return err
		}

		if newName != currentName {
			delete(st.Categories, currentName)
			for i := range st.Transactions {
				if st.Transactions[i].Category == currentName {
					st.Transactions[i].Category = newName
				}
			}
		}
		st.Categories[newName] = domain.Category{Type: input.Type, Budget: input.Budget}
		return nil
	})
	if err != nil {
		return nil, err
	}

	category := &domain.NamedCategory{Name: newName, Category: domain.Category{Type: input.Type, Budget: input.Budget}}
	s.ledger.publishEvent(websocket.CategoryUpdated(map[string]interface{}{
		"previousName": currentName,
		"category":     category,
	}))
	return category, nil
}

// SetCategoryBudget changes only the monthly allocation of a category
func (s *CategoryService) SetCategoryBudget(name string, budget decimal.Decimal) (*domain.NamedCategory, error) {
	var updated domain.Category
	_, err := s.ledger.mutate("category.budget", func(st *domain.State) error {
		existing, ok := st.Categories[name]
		if !ok {
			return domain.ErrCategoryNotFound
		}
		if err := validateAllocation(st, name, existing.Type, budget); err != nil {
			return err
		}
		existing.Budget = budget
		st.Categories[name] = existing
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	category := &domain.NamedCategory{Name: name, Category: updated}
	s.ledger.publishEvent(websocket.CategoryUpdated(map[string]interface{}{
		"previousName": name,
		"category":     category,
	}))
	return category, nil
}

// DeleteCategory removes a category from the registry. Transactions keep the
// name and show up as orphaned.
func (s *CategoryService) DeleteCategory(name string) error {
	_, err := s.ledger.mutate("category.delete", func(st *domain.State) error {
		if _, ok := st.Categories[name]; !ok {
			return domain.ErrCategoryNotFound
		}
		if domain.IsProtectedCategory(name) {
			return domain.ErrProtectedCategory
		}
		delete(st.Categories, name)
		return nil
	})
	if err != nil {
		return err
	}

	s.ledger.publishEvent(websocket.CategoryDeleted(map[string]string{"name": name}))
	return nil
}

// validateAllocation checks a category budget against the monthly ceiling.
// Only expense budgets count towards the ceiling; name is left out of the sum
// so that an edit is measured against the other categories.
func validateAllocation(st *domain.State, name string, categoryType domain.CategoryType, budget decimal.Decimal) error {
	if budget.IsNegative() {
		return domain.ErrNegativeBudget
	}
	if categoryType != domain.CategoryTypeExpense {
		return nil
	}
	remaining := st.BudgetMonthly.Sub(st.AllocatedBudget(name))
	if budget.GreaterThan(remaining) {
		return domain.ErrBudgetExceeded
	}
	return nil
}
