package controllers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/adamanr/budget_planner/internal/budget"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
	"github.com/shopspring/decimal"
)

type OrganizationController struct {
	deps *Dependens
}

func NewOrganizationController(deps *Dependens) *OrganizationController {
	return &OrganizationController{
		deps: deps,
	}
}

func (c *OrganizationController) GetOrganizations() []entity.Organization {
	return orEmpty(c.deps.Store.Organizations())
}

func (c *OrganizationController) GetOrganizationByID(id string) (*entity.Organization, error) {
	org, ok := c.deps.Store.Organization(id)
	if !ok {
		c.deps.Logger.Warn("Organization not found", slog.String("id", id))
		return nil, notFound("Organization")
	}

	return &org, nil
}

// CreateOrganization adds the organization together with its initial categories.
func (c *OrganizationController) CreateOrganization(ctx context.Context, org entity.Organization) (*entity.Organization, error) {
	org.ID = newID()

	err := c.deps.mutate(ctx, "Organization", func(_ store.State) error {
		if strings.TrimSpace(org.Name) == "" {
			return entity.NewValidationError(entity.ErrInvalid, "Organization name is required")
		}
		if org.TotalBudget.IsNegative() {
			return entity.NewValidationError(entity.ErrInvalid, "Organization budget cannot be negative")
		}

		categories := make([]entity.BudgetCategory, 0, len(org.BudgetCategories))
		for _, cat := range org.BudgetCategories {
			if err := budget.ValidateCategoryName(entity.Organization{BudgetCategories: categories}, "", cat.Name); err != nil {
				return err
			}

			cat.ID = newID()
			cat.OrganizationID = org.ID
			categories = append(categories, cat)
		}
		org.BudgetCategories = categories

		c.deps.Store.AddOrganization(org)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.deps.Logger.Info("Organization created", slog.String("id", org.ID), slog.String("name", org.Name))
	return &org, nil
}

func (c *OrganizationController) GetBudgetInfo(id string) (*entity.BudgetInfo, error) {
	if _, err := c.GetOrganizationByID(id); err != nil {
		return nil, err
	}

	info := budget.OrganizationInfo(c.deps.Store.State(), id)
	return &info, nil
}

func (c *OrganizationController) GetTotalSpent(id string) (decimal.Decimal, error) {
	if _, err := c.GetOrganizationByID(id); err != nil {
		return decimal.Zero, err
	}

	return budget.OrganizationTotalSpent(c.deps.Store.State(), id), nil
}
