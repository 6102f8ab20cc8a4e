package budget

import (
	"testing"

	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertMoney(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, got.Equal(money(want)), append([]interface{}{"want %d, got %s", want, got.String()}, msgAndArgs...)...)
}

// newHierarchy builds org-1 (5,000,000) → dept-1 (2,000,000) → mgr-1 → team-1,
// with team-1 holding budget-1 of 600,000 and two categories.
func newHierarchy(t *testing.T) *store.Store {
	t.Helper()

	s := store.New()
	s.AddOrganization(entity.Organization{
		ID:          "org-1",
		Name:        "SampleTestOrg",
		TotalBudget: money(5000000),
		BudgetCategories: []entity.BudgetCategory{
			{ID: "cat-training", OrganizationID: "org-1", Name: "Training"},
			{ID: "cat-conferences", OrganizationID: "org-1", Name: "Conferences"},
		},
	})
	if err := s.AddDepartment(entity.Department{ID: "dept-1", Name: "Engineering", OrganizationID: "org-1", TotalBudget: money(2000000)}); err != nil {
		t.Fatalf("add department: %v", err)
	}
	s.AddManager(entity.Manager{ID: "mgr-1", Name: "Alex Kumar", DepartmentID: "dept-1"})
	s.AddTeam(entity.Team{ID: "team-1", Name: "Frontend Development", ManagerID: "mgr-1"})
	s.AddBudget(entity.Budget{ID: "budget-1", TeamID: "team-1", TotalAmount: money(600000), Year: 2024})
	s.UpdateTeamBudget("team-1", "budget-1")

	return s
}
