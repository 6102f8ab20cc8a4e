package controllers

import (
	"context"
	"testing"

	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryController_CreateAndRename(t *testing.T) {
	deps := CreateTestDependencies(t, nil, nil)
	controller := NewCategoryController(deps)

	created, err := controller.CreateCategory(context.Background(), "org-1", entity.BudgetCategory{Name: "Conferences"})
	require.NoError(t, err)
	assert.Equal(t, "org-1", created.OrganizationID)

	_, err = controller.CreateCategory(context.Background(), "org-1", entity.BudgetCategory{Name: "conferences"})
	assert.ErrorIs(t, err, entity.ErrDuplicateName)

	_, err = controller.UpdateCategory(context.Background(), "org-1", "cat-travel", entity.BudgetCategory{Name: "TRAINING"})
	assert.ErrorIs(t, err, entity.ErrDuplicateName)

	renamed, err := controller.UpdateCategory(context.Background(), "org-1", "cat-travel", entity.BudgetCategory{Name: "Business Travel"})
	require.NoError(t, err)
	assert.Equal(t, "cat-travel", renamed.ID)

	_, err = controller.UpdateCategory(context.Background(), "org-1", "missing", entity.BudgetCategory{Name: "X"})
	assert.ErrorIs(t, err, entity.ErrNotFound)

	categories, err := controller.GetCategories("org-1")
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Business Travel", categories[1].Name)
	assert.Equal(t, "Conferences", categories[2].Name)

	_, err = controller.GetCategories("missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCategoryController_DeleteCategory(t *testing.T) {
	deps := CreateTestDependencies(t, nil, nil)
	controller := NewCategoryController(deps)

	usage, err := controller.GetUsage("org-1", "cat-training")
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryUsage{ItemCount: 1, TeamCount: 1, DepartmentCount: 1, InUse: true}, *usage)

	err = controller.DeleteCategory(context.Background(), "org-1", "cat-training", false)
	assert.ErrorIs(t, err, entity.ErrConfirmationRequired)
	assert.Len(t, deps.Store.BudgetCategories("org-1"), 2)

	require.NoError(t, controller.DeleteCategory(context.Background(), "org-1", "cat-training", true))
	assert.Len(t, deps.Store.BudgetCategories("org-1"), 1)

	require.NoError(t, controller.DeleteCategory(context.Background(), "org-1", "cat-travel", false))
	assert.Empty(t, deps.Store.BudgetCategories("org-1"))

	assert.ErrorIs(t, controller.DeleteCategory(context.Background(), "org-1", "cat-travel", true), entity.ErrNotFound)
	_, err = controller.GetUsage("org-1", "cat-travel")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
