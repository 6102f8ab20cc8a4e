package repository

import (
	"context"
	"io"
	"log/slog"

	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockDB represents a mock database connection.
type MockDB struct {
	mock.Mock
}

func (m *MockDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	mockArgs := append([]interface{}{ctx, sql}, args...)
	callArgs := m.Called(mockArgs...)
	return callArgs.Get(0).(pgx.Row)
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := append([]interface{}{ctx, sql}, args...)
	callArgs := m.Called(mockArgs...)
	return callArgs.Get(0).(pgconn.CommandTag), callArgs.Error(1)
}

// MockRow represents a mock database row holding a single payload column.
type MockRow struct {
	payload []byte
	err     error
}

func NewMockRow(payload []byte, err error) *MockRow {
	return &MockRow{payload: payload, err: err}
}

func (m *MockRow) Scan(dest ...interface{}) error {
	if m.err != nil {
		return m.err
	}

	if len(dest) > 0 {
		if d, ok := dest[0].(*[]byte); ok {
			*d = m.payload
		}
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testState() store.State {
	return store.State{
		Organizations: []entity.Organization{{
			ID:          "org-1",
			Name:        "SampleTestOrg",
			TotalBudget: decimal.NewFromInt(5000000),
			BudgetCategories: []entity.BudgetCategory{
				{ID: "cat-1", OrganizationID: "org-1", Name: "Training"},
			},
		}},
		Departments: []entity.Department{{ID: "dept-1", Name: "Engineering", OrganizationID: "org-1", TotalBudget: decimal.NewFromInt(2000000)}},
		Managers:    []entity.Manager{{ID: "mgr-1", Name: "Alex Kumar", DepartmentID: "dept-1"}},
		Teams:       []entity.Team{{ID: "team-1", Name: "Frontend Development", ManagerID: "mgr-1", BudgetID: "budget-1"}},
		Budgets:     []entity.Budget{{ID: "budget-1", TeamID: "team-1", TotalAmount: decimal.NewFromInt(600000), Year: 2024}},
		BudgetItems: []entity.BudgetItem{{
			ID:               "item-1",
			BudgetID:         "budget-1",
			BudgetCategoryID: "cat-1",
			Amount:           decimal.RequireFromString("120000.50"),
			Spent:            decimal.RequireFromString("2150"),
			TravelDetails: []entity.TravelDetail{{
				ID:             "trip-1",
				BudgetItemID:   "item-1",
				ConferenceName: "Tech Conference 2024",
				Trip: entity.Trip{
					NumberOfTravelers: 2,
					TotalAmount:       decimal.NewFromInt(2150),
				},
			}},
		}},
	}
}
