package entity

import "github.com/shopspring/decimal"

type Organization struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	LeaderName       string           `json:"leader_name"`
	TotalBudget      decimal.Decimal  `json:"total_budget"`
	BudgetCategories []BudgetCategory `json:"budget_categories"`
}

type BudgetCategory struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
}

// CategoryUsage counts the budget items referencing a category and the distinct
// teams and departments those items belong to.
type CategoryUsage struct {
	ItemCount       int  `json:"item_count"`
	TeamCount       int  `json:"team_count"`
	DepartmentCount int  `json:"department_count"`
	InUse           bool `json:"in_use"`
}
