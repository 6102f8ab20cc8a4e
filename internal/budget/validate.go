package budget

import (
	"fmt"
	"strings"

	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
	"github.com/shopspring/decimal"
)

// Every "available" figure below is the parent ceiling minus what is already
// allocated to siblings. Spending never reduces what can be allocated.

// AvailableForDepartment is what the organization can still give to the
// department, excluding the department's own current budget.
func AvailableForDepartment(st store.State, org entity.Organization, departmentID string) decimal.Decimal {
	available := org.TotalBudget
	for _, d := range st.DepartmentsByOrganization(org.ID) {
		if d.ID != departmentID {
			available = available.Sub(d.TotalBudget)
		}
	}
	return available
}

// ValidateDepartment checks a department being created or edited.
func ValidateDepartment(st store.State, dept entity.Department) error {
	org, ok := st.FindOrganization(dept.OrganizationID)
	if !ok {
		return entity.NewValidationError(entity.ErrNotFound, "Organization not found")
	}

	if strings.TrimSpace(dept.Name) == "" {
		return entity.NewValidationError(entity.ErrInvalid, "Department name is required")
	}
	for _, d := range st.DepartmentsByOrganization(org.ID) {
		if d.ID != dept.ID && strings.EqualFold(d.Name, dept.Name) {
			return entity.NewValidationError(entity.ErrDuplicateName,
				"A department with this name already exists in the organization")
		}
	}

	if dept.TotalBudget.IsNegative() {
		return entity.NewValidationError(entity.ErrInvalid, "Department budget cannot be negative")
	}

	available := AvailableForDepartment(st, org, dept.ID)
	if dept.TotalBudget.GreaterThan(available) {
		return entity.NewValidationError(entity.ErrBudgetExceeded,
			fmt.Sprintf("Department budget cannot exceed organization's remaining budget: $%s", available.StringFixed(2)))
	}

	allocated := AllocatedToTeams(st, dept.ID)
	if dept.TotalBudget.LessThan(allocated) {
		return entity.NewValidationError(entity.ErrBudgetExceeded,
			fmt.Sprintf("Department budget cannot be less than the $%s allocated to its teams", allocated.StringFixed(2)))
	}

	return nil
}

// AllocatedToTeams sums the budgets of every team in the department.
func AllocatedToTeams(st store.State, departmentID string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range st.TeamsByDepartment(departmentID) {
		if b, ok := st.TeamBudget(t); ok {
			total = total.Add(b.TotalAmount)
		}
	}
	return total
}

// AvailableForTeam is what the department can still give to the team,
// excluding the team's own current budget.
func AvailableForTeam(st store.State, dept entity.Department, teamID string) decimal.Decimal {
	available := dept.TotalBudget
	for _, t := range st.TeamsByDepartment(dept.ID) {
		if t.ID == teamID {
			continue
		}
		if b, ok := st.TeamBudget(t); ok {
			available = available.Sub(b.TotalAmount)
		}
	}
	return available
}

// ValidateTeamBudget checks a budget amount being allocated to the team.
func ValidateTeamBudget(st store.State, teamID string, amount decimal.Decimal) error {
	team, ok := st.FindTeam(teamID)
	if !ok {
		return entity.NewValidationError(entity.ErrNotFound, "Team not found")
	}
	manager, ok := st.FindManager(team.ManagerID)
	if !ok {
		return entity.NewValidationError(entity.ErrNotFound, "Manager not found")
	}
	dept, ok := st.FindDepartment(manager.DepartmentID)
	if !ok {
		return entity.NewValidationError(entity.ErrNotFound, "Department not found")
	}

	if !amount.IsPositive() {
		return entity.NewValidationError(entity.ErrInvalid, "Amount must be greater than 0")
	}

	available := AvailableForTeam(st, dept, teamID)
	if amount.GreaterThan(available) {
		return entity.NewValidationError(entity.ErrBudgetExceeded,
			fmt.Sprintf("Amount cannot exceed department's remaining budget: $%s", available.StringFixed(2)))
	}

	return nil
}

// ValidateBudgetItem checks an item being added to, or replaced in, a team budget.
func ValidateBudgetItem(st store.State, item entity.BudgetItem) error {
	budget, ok := st.FindBudget(item.BudgetID)
	if !ok {
		return entity.NewValidationError(entity.ErrNotFound, "Budget not found")
	}

	org, ok := st.OrganizationOfTeam(budget.TeamID)
	if !ok {
		return entity.NewValidationError(entity.ErrNotFound, "Organization of the budget's team not found")
	}
	if !hasCategory(org, item.BudgetCategoryID) {
		return entity.NewValidationError(entity.ErrInvalid, "Budget category does not belong to the team's organization")
	}

	if !item.Amount.IsPositive() {
		return entity.NewValidationError(entity.ErrInvalid, "Amount must be greater than 0")
	}
	if item.Spent.IsNegative() {
		return entity.NewValidationError(entity.ErrInvalid, "Spent cannot be negative")
	}

	allocated := item.Amount
	for _, other := range st.BudgetItemsByBudget(budget.ID) {
		if other.ID != item.ID {
			allocated = allocated.Add(other.Amount)
		}
	}
	if allocated.GreaterThan(budget.TotalAmount) {
		return entity.NewValidationError(entity.ErrBudgetExceeded,
			fmt.Sprintf("Total items cannot exceed budget amount: $%s", budget.TotalAmount.StringFixed(2)))
	}

	return nil
}

func hasCategory(org entity.Organization, categoryID string) bool {
	for _, c := range org.BudgetCategories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}
