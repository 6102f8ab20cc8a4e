package entity

import "github.com/shopspring/decimal"

type Budget struct {
	ID          string          `json:"id"`
	TeamID      string          `json:"team_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Year        int             `json:"year"`
}

// BudgetItem is a category-tagged allocation inside a team budget. Spent is the
// actual expenditure; when travel details are attached it is the sum of their totals.
type BudgetItem struct {
	ID                    string                 `json:"id"`
	BudgetID              string                 `json:"budget_id"`
	BudgetCategoryID      string                 `json:"budget_category_id"`
	Amount                decimal.Decimal        `json:"amount"`
	Spent                 decimal.Decimal        `json:"spent"`
	Description           string                 `json:"description"`
	TravelDetails         []TravelDetail         `json:"travel_details,omitempty"`
	BusinessTravelDetails []BusinessTravelDetail `json:"business_travel_details,omitempty"`
}

// BudgetInfo is the allocated/spent/remaining triple reported at every hierarchy level.
type BudgetInfo struct {
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
}

type CategoryBreakdown struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Allocated    decimal.Decimal `json:"allocated"`
	Spent        decimal.Decimal `json:"spent"`
}

// TeamBudgetRequest is the payload for allocating or editing a team budget.
type TeamBudgetRequest struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	Year        int             `json:"year"`
}
