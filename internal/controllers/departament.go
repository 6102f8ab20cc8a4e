package controllers

import (
	"context"
	"log/slog"

	"github.com/adamanr/budget_planner/internal/budget"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
)

type DepartmentController struct {
	deps *Dependens
}

func NewDepartmentController(deps *Dependens) *DepartmentController {
	return &DepartmentController{
		deps: deps,
	}
}

func (c *DepartmentController) GetDepartments(organizationID string) ([]entity.Department, error) {
	if _, ok := c.deps.Store.Organization(organizationID); !ok {
		c.deps.Logger.Warn("Organization not found", slog.String("id", organizationID))
		return nil, notFound("Organization")
	}

	return orEmpty(c.deps.Store.DepartmentsByOrganization(organizationID)), nil
}

func (c *DepartmentController) GetDepartmentByID(id string) (*entity.Department, error) {
	dept, ok := c.deps.Store.Department(id)
	if !ok {
		c.deps.Logger.Warn("Department not found", slog.String("id", id))
		return nil, notFound("Department")
	}

	return &dept, nil
}

func (c *DepartmentController) CreateDepartment(ctx context.Context, organizationID string, dept entity.Department) (*entity.Department, error) {
	dept.ID = newID()
	dept.OrganizationID = organizationID

	err := c.deps.mutate(ctx, "Department", func(st store.State) error {
		if err := budget.ValidateDepartment(st, dept); err != nil {
			return err
		}

		return c.deps.Store.AddDepartment(dept)
	})
	if err != nil {
		return nil, err
	}

	c.deps.Logger.Info("Department created", slog.String("id", dept.ID), slog.String("name", dept.Name))
	return &dept, nil
}

// UpdateDepartment replaces name, head and budget. The department stays in its organization.
func (c *DepartmentController) UpdateDepartment(ctx context.Context, id string, dept entity.Department) (*entity.Department, error) {
	err := c.deps.mutate(ctx, "Department update", func(st store.State) error {
		existing, ok := st.FindDepartment(id)
		if !ok {
			return notFound("Department")
		}

		dept.ID = existing.ID
		dept.OrganizationID = existing.OrganizationID
		if err := budget.ValidateDepartment(st, dept); err != nil {
			return err
		}

		c.deps.Store.UpdateDepartmentBudget(dept)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.deps.Logger.Info("Department updated", slog.String("id", dept.ID))
	return &dept, nil
}

func (c *DepartmentController) GetBudgetInfo(id string) (*entity.BudgetInfo, error) {
	if _, err := c.GetDepartmentByID(id); err != nil {
		return nil, err
	}

	info := budget.DepartmentInfo(c.deps.Store.State(), id)
	return &info, nil
}

func (c *DepartmentController) GetManagers(id string) ([]entity.Manager, error) {
	if _, err := c.GetDepartmentByID(id); err != nil {
		return nil, err
	}

	return orEmpty(c.deps.Store.ManagersByDepartment(id)), nil
}
