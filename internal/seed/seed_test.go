package seed

import (
	"io"
	"log/slog"
	"testing"

	"github.com/adamanr/budget_planner/internal/budget"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPopulate(t *testing.T) {
	s := store.New()

	added, err := Populate(s, testLogger())
	require.NoError(t, err)
	assert.True(t, added)

	st := s.State()
	require.Len(t, st.Organizations, 1)
	assert.Len(t, st.Organizations[0].BudgetCategories, 5)
	assert.Len(t, st.Departments, 5)
	assert.Len(t, st.Managers, 6)
	assert.Len(t, st.Teams, 7)
	assert.Len(t, st.Budgets, 7)
	assert.Len(t, st.BudgetItems, 35)

	info := budget.OrganizationInfo(st, st.Organizations[0].ID)
	assert.True(t, decimal.NewFromInt(3300000).Equal(info.Allocated), info.Allocated.String())
	assert.True(t, decimal.NewFromInt(7*(2150+4800+1400)).Equal(info.Spent), info.Spent.String())
	assert.True(t, info.Remaining.Equal(decimal.NewFromInt(5000000).Sub(info.Spent)))
}

func TestPopulate_FrontendTeam(t *testing.T) {
	s := store.New()
	_, err := Populate(s, testLogger())
	require.NoError(t, err)

	st := s.State()
	var team entity.Team
	for _, tm := range st.Teams {
		if tm.Name == "Frontend Development" {
			team = tm
		}
	}
	require.NotEmpty(t, team.BudgetID)

	info := budget.TeamInfo(st, team.ID)
	assert.True(t, decimal.NewFromInt(600000).Equal(info.Allocated))
	assert.True(t, decimal.NewFromInt(8350).Equal(info.Spent))

	rows := budget.CategoryBreakdown(st, team.ID)
	require.Len(t, rows, 5)
	assert.True(t, decimal.NewFromInt(120000).Equal(rows[0].Allocated))
	assert.True(t, decimal.NewFromInt(2150).Equal(rows[1].Spent))
	assert.True(t, decimal.NewFromInt(180000).Equal(rows[4].Allocated))
	assert.True(t, decimal.NewFromInt(6200).Equal(rows[4].Spent))

	for _, item := range st.BudgetItemsByBudget(team.BudgetID) {
		for _, d := range item.TravelDetails {
			assert.True(t, decimal.NewFromInt(1075).Equal(d.PerPersonCost))
		}
	}
}

func TestPopulate_SkipsNonEmptyStore(t *testing.T) {
	s := store.New()
	s.AddOrganization(entity.Organization{ID: "org-1", Name: "Existing"})

	added, err := Populate(s, testLogger())
	require.NoError(t, err)
	assert.False(t, added)
	assert.Len(t, s.Organizations(), 1)
}
