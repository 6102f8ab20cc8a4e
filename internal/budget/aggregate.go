// Package budget computes roll-up figures over the organization hierarchy and
// validates proposed allocations against their parent ceilings.
//
// Every function here is pure: it reads a store.State and never mutates it.
// Figures are recomputed on each call.
package budget

import (
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
	"github.com/shopspring/decimal"
)

// itemTotals sums amount and spent over the items of one budget.
func itemTotals(st store.State, budgetID string) (allocated, spent decimal.Decimal) {
	for _, item := range st.BudgetItemsByBudget(budgetID) {
		allocated = allocated.Add(item.Amount)
		spent = spent.Add(item.Spent)
	}
	return allocated, spent
}

func teamTotals(st store.State, team entity.Team) (allocated, spent decimal.Decimal) {
	budget, ok := st.TeamBudget(team)
	if !ok {
		return decimal.Zero, decimal.Zero
	}
	return itemTotals(st, budget.ID)
}

func managerTotals(st store.State, managerID string) (allocated, spent decimal.Decimal) {
	for _, team := range st.TeamsByManager(managerID) {
		a, s := teamTotals(st, team)
		allocated = allocated.Add(a)
		spent = spent.Add(s)
	}
	return allocated, spent
}

func departmentTotals(st store.State, departmentID string) (allocated, spent decimal.Decimal) {
	for _, manager := range st.ManagersByDepartment(departmentID) {
		a, s := managerTotals(st, manager.ID)
		allocated = allocated.Add(a)
		spent = spent.Add(s)
	}
	return allocated, spent
}

func organizationTotals(st store.State, organizationID string) (allocated, spent decimal.Decimal) {
	for _, dept := range st.DepartmentsByOrganization(organizationID) {
		a, s := departmentTotals(st, dept.ID)
		allocated = allocated.Add(a)
		spent = spent.Add(s)
	}
	return allocated, spent
}

// TeamInfo reports item allocations of the team budget. Remaining is
// allocated minus spent, not the budget total minus spent.
func TeamInfo(st store.State, teamID string) entity.BudgetInfo {
	team, ok := st.FindTeam(teamID)
	if !ok {
		return zeroInfo()
	}

	allocated, spent := teamTotals(st, team)
	return entity.BudgetInfo{Allocated: allocated, Spent: spent, Remaining: allocated.Sub(spent)}
}

func ManagerInfo(st store.State, managerID string) entity.BudgetInfo {
	allocated, spent := managerTotals(st, managerID)
	return entity.BudgetInfo{Allocated: allocated, Spent: spent, Remaining: allocated.Sub(spent)}
}

// DepartmentInfo measures remaining against the department's own declared
// budget rather than the allocations below it.
func DepartmentInfo(st store.State, departmentID string) entity.BudgetInfo {
	dept, ok := st.FindDepartment(departmentID)
	if !ok {
		return zeroInfo()
	}

	allocated, spent := departmentTotals(st, departmentID)
	return entity.BudgetInfo{Allocated: allocated, Spent: spent, Remaining: dept.TotalBudget.Sub(spent)}
}

// OrganizationInfo measures remaining against the organization's total budget.
func OrganizationInfo(st store.State, organizationID string) entity.BudgetInfo {
	org, ok := st.FindOrganization(organizationID)
	if !ok {
		return zeroInfo()
	}

	allocated, spent := organizationTotals(st, organizationID)
	return entity.BudgetInfo{Allocated: allocated, Spent: spent, Remaining: org.TotalBudget.Sub(spent)}
}

func OrganizationTotalSpent(st store.State, organizationID string) decimal.Decimal {
	_, spent := organizationTotals(st, organizationID)
	return spent
}

// CategoryBreakdown groups the team budget items by category, in the order the
// organization lists its categories. Categories without items are omitted.
func CategoryBreakdown(st store.State, teamID string) []entity.CategoryBreakdown {
	team, ok := st.FindTeam(teamID)
	if !ok {
		return nil
	}
	budget, ok := st.TeamBudget(team)
	if !ok {
		return nil
	}

	byCategory := make(map[string]*entity.CategoryBreakdown)
	var seen []string
	for _, item := range st.BudgetItemsByBudget(budget.ID) {
		row, ok := byCategory[item.BudgetCategoryID]
		if !ok {
			row = &entity.CategoryBreakdown{CategoryID: item.BudgetCategoryID}
			byCategory[item.BudgetCategoryID] = row
			seen = append(seen, item.BudgetCategoryID)
		}
		row.Allocated = row.Allocated.Add(item.Amount)
		row.Spent = row.Spent.Add(item.Spent)
	}

	var out []entity.CategoryBreakdown
	if org, ok := st.OrganizationOfTeam(teamID); ok {
		for _, category := range org.BudgetCategories {
			if row, ok := byCategory[category.ID]; ok {
				row.CategoryName = category.Name
				out = append(out, *row)
				delete(byCategory, category.ID)
			}
		}
	}

	// Items whose category was deleted from the organization.
	for _, id := range seen {
		if row, ok := byCategory[id]; ok {
			out = append(out, *row)
		}
	}

	return out
}

func zeroInfo() entity.BudgetInfo {
	return entity.BudgetInfo{Allocated: decimal.Zero, Spent: decimal.Zero, Remaining: decimal.Zero}
}
