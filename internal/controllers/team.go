package controllers

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/adamanr/budget_planner/internal/budget"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
)

type TeamController struct {
	deps *Dependens
	now  func() time.Time
}

func NewTeamController(deps *Dependens) *TeamController {
	return &TeamController{
		deps: deps,
		now:  time.Now,
	}
}

// CreateTeam adds a team without a budget. Budgets are allocated with SetTeamBudget.
func (c *TeamController) CreateTeam(ctx context.Context, team entity.Team) (*entity.Team, error) {
	team.ID = newID()
	team.BudgetID = ""

	err := c.deps.mutate(ctx, "Team", func(st store.State) error {
		if strings.TrimSpace(team.Name) == "" {
			return entity.NewValidationError(entity.ErrInvalid, "Team name is required")
		}
		if _, ok := st.FindManager(team.ManagerID); !ok {
			return notFound("Manager")
		}

		c.deps.Store.AddTeam(team)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.deps.Logger.Info("Team created", slog.String("id", team.ID), slog.String("manager_id", team.ManagerID))
	return &team, nil
}

func (c *TeamController) GetTeamByID(id string) (*entity.Team, error) {
	team, ok := c.deps.Store.Team(id)
	if !ok {
		c.deps.Logger.Warn("Team not found", slog.String("id", id))
		return nil, notFound("Team")
	}

	return &team, nil
}

// SetTeamBudget allocates a budget to the team, or replaces the amount and year
// of the budget it already has.
func (c *TeamController) SetTeamBudget(ctx context.Context, teamID string, req entity.TeamBudgetRequest) (*entity.Budget, error) {
	var result entity.Budget

	err := c.deps.mutate(ctx, "Team budget", func(st store.State) error {
		if err := budget.ValidateTeamBudget(st, teamID, req.TotalAmount); err != nil {
			return err
		}

		team, _ := st.FindTeam(teamID)
		result = entity.Budget{ID: team.BudgetID, TeamID: teamID, TotalAmount: req.TotalAmount, Year: req.Year}
		if _, ok := st.TeamBudget(team); !ok {
			result.ID = newID()
		}
		if result.Year == 0 {
			result.Year = c.now().Year()
		}

		c.deps.Store.AddBudget(result)
		c.deps.Store.UpdateTeamBudget(teamID, result.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.deps.Logger.Info("Team budget set",
		slog.String("team_id", teamID),
		slog.String("budget_id", result.ID),
		slog.String("total_amount", result.TotalAmount.String()),
	)
	return &result, nil
}

func (c *TeamController) GetBudgetInfo(id string) (*entity.BudgetInfo, error) {
	if _, err := c.GetTeamByID(id); err != nil {
		return nil, err
	}

	info := budget.TeamInfo(c.deps.Store.State(), id)
	return &info, nil
}

// GetItems lists the items of the team budget; a team without a budget has none.
func (c *TeamController) GetItems(id string) ([]entity.BudgetItem, error) {
	st := c.deps.Store.State()

	team, ok := st.FindTeam(id)
	if !ok {
		c.deps.Logger.Warn("Team not found", slog.String("id", id))
		return nil, notFound("Team")
	}

	b, ok := st.TeamBudget(team)
	if !ok {
		return []entity.BudgetItem{}, nil
	}

	return orEmpty(st.BudgetItemsByBudget(b.ID)), nil
}

func (c *TeamController) GetBreakdown(id string) ([]entity.CategoryBreakdown, error) {
	if _, err := c.GetTeamByID(id); err != nil {
		return nil, err
	}

	return orEmpty(budget.CategoryBreakdown(c.deps.Store.State(), id)), nil
}
