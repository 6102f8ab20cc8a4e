package entity

import "github.com/shopspring/decimal"

type Department struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	HeadName       string          `json:"head_name"`
	OrganizationID string          `json:"organization_id"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
}

type Manager struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}

// Team references its budget by id; an empty BudgetID means the team has no budget yet.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ManagerID string `json:"manager_id"`
	BudgetID  string `json:"budget_id,omitempty"`
}

func (t Team) HasBudget() bool {
	return t.BudgetID != ""
}
