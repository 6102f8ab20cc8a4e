package controllers

import (
	"context"
	"log/slog"
	"slices"

	"github.com/adamanr/budget_planner/internal/budget"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
)

type CategoryController struct {
	deps *Dependens
}

func NewCategoryController(deps *Dependens) *CategoryController {
	return &CategoryController{
		deps: deps,
	}
}

func (c *CategoryController) GetCategories(organizationID string) ([]entity.BudgetCategory, error) {
	if _, ok := c.deps.Store.Organization(organizationID); !ok {
		c.deps.Logger.Warn("Organization not found", slog.String("id", organizationID))
		return nil, notFound("Organization")
	}

	categories := c.deps.Store.BudgetCategories(organizationID)
	if categories == nil {
		categories = []entity.BudgetCategory{}
	}
	return categories, nil
}

func (c *CategoryController) CreateCategory(ctx context.Context, organizationID string, category entity.BudgetCategory) (*entity.BudgetCategory, error) {
	category.ID = newID()
	category.OrganizationID = organizationID

	err := c.deps.mutate(ctx, "Category", func(st store.State) error {
		org, ok := st.FindOrganization(organizationID)
		if !ok {
			return notFound("Organization")
		}
		if err := budget.ValidateCategoryName(org, "", category.Name); err != nil {
			return err
		}

		c.deps.Store.UpdateOrganizationCategories(org.ID, append(slices.Clone(org.BudgetCategories), category))
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.deps.Logger.Info("Category created", slog.String("id", category.ID), slog.String("name", category.Name))
	return &category, nil
}

func (c *CategoryController) UpdateCategory(ctx context.Context, organizationID, categoryID string, category entity.BudgetCategory) (*entity.BudgetCategory, error) {
	err := c.deps.mutate(ctx, "Category update", func(st store.State) error {
		org, ok := st.FindOrganization(organizationID)
		if !ok {
			return notFound("Organization")
		}

		idx := slices.IndexFunc(org.BudgetCategories, func(bc entity.BudgetCategory) bool { return bc.ID == categoryID })
		if idx < 0 {
			return notFound("Category")
		}
		if err := budget.ValidateCategoryName(org, categoryID, category.Name); err != nil {
			return err
		}

		category.ID = categoryID
		category.OrganizationID = organizationID

		categories := slices.Clone(org.BudgetCategories)
		categories[idx] = category
		c.deps.Store.UpdateOrganizationCategories(org.ID, categories)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.deps.Logger.Info("Category updated", slog.String("id", categoryID))
	return &category, nil
}

// DeleteCategory removes the category. A category still used by budget items
// is only removed when confirmed is true; those items keep the dangling id.
func (c *CategoryController) DeleteCategory(ctx context.Context, organizationID, categoryID string, confirmed bool) error {
	err := c.deps.mutate(ctx, "Category delete", func(st store.State) error {
		org, ok := st.FindOrganization(organizationID)
		if !ok {
			return notFound("Organization")
		}
		if err := budget.ValidateCategoryDelete(st, org, categoryID, confirmed); err != nil {
			return err
		}

		categories := slices.DeleteFunc(slices.Clone(org.BudgetCategories), func(bc entity.BudgetCategory) bool {
			return bc.ID == categoryID
		})
		c.deps.Store.UpdateOrganizationCategories(org.ID, categories)
		return nil
	})
	if err != nil {
		return err
	}

	c.deps.Logger.Info("Category deleted", slog.String("id", categoryID), slog.Bool("confirmed", confirmed))
	return nil
}

func (c *CategoryController) GetUsage(organizationID, categoryID string) (*entity.CategoryUsage, error) {
	org, ok := c.deps.Store.Organization(organizationID)
	if !ok {
		c.deps.Logger.Warn("Organization not found", slog.String("id", organizationID))
		return nil, notFound("Organization")
	}
	if !slices.ContainsFunc(org.BudgetCategories, func(bc entity.BudgetCategory) bool { return bc.ID == categoryID }) {
		c.deps.Logger.Warn("Category not found", slog.String("id", categoryID))
		return nil, notFound("Category")
	}

	usage := budget.CategoryUsageOf(c.deps.Store.State(), categoryID)
	return &usage, nil
}
