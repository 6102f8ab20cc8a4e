package controllers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/adamanr/budget_planner/internal/budget"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
)

type ManagerController struct {
	deps *Dependens
}

func NewManagerController(deps *Dependens) *ManagerController {
	return &ManagerController{
		deps: deps,
	}
}

func (c *ManagerController) CreateManager(ctx context.Context, manager entity.Manager) (*entity.Manager, error) {
	manager.ID = newID()

	err := c.deps.mutate(ctx, "Manager", func(st store.State) error {
		if strings.TrimSpace(manager.Name) == "" {
			return entity.NewValidationError(entity.ErrInvalid, "Manager name is required")
		}
		if _, ok := st.FindDepartment(manager.DepartmentID); !ok {
			return notFound("Department")
		}

		c.deps.Store.AddManager(manager)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.deps.Logger.Info("Manager created", slog.String("id", manager.ID), slog.String("department_id", manager.DepartmentID))
	return &manager, nil
}

func (c *ManagerController) GetTeams(id string) ([]entity.Team, error) {
	if _, ok := c.deps.Store.Manager(id); !ok {
		c.deps.Logger.Warn("Manager not found", slog.String("id", id))
		return nil, notFound("Manager")
	}

	return orEmpty(c.deps.Store.TeamsByManager(id)), nil
}

func (c *ManagerController) GetBudgetInfo(id string) (*entity.BudgetInfo, error) {
	if _, ok := c.deps.Store.Manager(id); !ok {
		c.deps.Logger.Warn("Manager not found", slog.String("id", id))
		return nil, notFound("Manager")
	}

	info := budget.ManagerInfo(c.deps.Store.State(), id)
	return &info, nil
}
