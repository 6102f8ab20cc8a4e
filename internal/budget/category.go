package budget

import (
	"fmt"
	"strings"

	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
)

// ValidateCategoryName checks a category name being added (categoryID empty)
// or renamed within the organization.
func ValidateCategoryName(org entity.Organization, categoryID, name string) error {
	if strings.TrimSpace(name) == "" {
		return entity.NewValidationError(entity.ErrInvalid, "Category name is required")
	}

	for _, c := range org.BudgetCategories {
		if c.ID != categoryID && strings.EqualFold(c.Name, name) {
			return entity.NewValidationError(entity.ErrDuplicateName, "A category with this name already exists")
		}
	}

	return nil
}

// CategoryUsageOf traces every item tagged with the category up to its team
// and department.
func CategoryUsageOf(st store.State, categoryID string) entity.CategoryUsage {
	teams := make(map[string]struct{})
	departments := make(map[string]struct{})
	items := 0

	for _, item := range st.BudgetItems {
		if item.BudgetCategoryID != categoryID {
			continue
		}
		items++

		budget, ok := st.FindBudget(item.BudgetID)
		if !ok {
			continue
		}
		team, ok := st.FindTeam(budget.TeamID)
		if !ok {
			continue
		}
		teams[team.ID] = struct{}{}

		if manager, ok := st.FindManager(team.ManagerID); ok {
			departments[manager.DepartmentID] = struct{}{}
		}
	}

	return entity.CategoryUsage{
		ItemCount:       items,
		TeamCount:       len(teams),
		DepartmentCount: len(departments),
		InUse:           items > 0,
	}
}

// ValidateCategoryDelete requires confirmation when budget items still use the category.
func ValidateCategoryDelete(st store.State, org entity.Organization, categoryID string, confirmed bool) error {
	if !hasCategory(org, categoryID) {
		return entity.NewValidationError(entity.ErrNotFound, "Category not found")
	}

	usage := CategoryUsageOf(st, categoryID)
	if usage.InUse && !confirmed {
		return entity.NewValidationError(entity.ErrConfirmationRequired,
			fmt.Sprintf("This category is used by %d budget items across %d teams and %d departments",
				usage.ItemCount, usage.TeamCount, usage.DepartmentCount))
	}

	return nil
}
