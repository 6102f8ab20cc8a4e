package controllers

import (
	"context"
	"testing"

	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetController_CreateItem(t *testing.T) {
	tests := []struct {
		name        string
		budgetID    string
		item        entity.BudgetItem
		expectError error
	}{
		{
			name:     "fills the rest of the budget",
			budgetID: "budget-1",
			item:     entity.BudgetItem{BudgetCategoryID: "cat-travel", Amount: money(500000)},
		},
		{
			name:        "exceeds the budget",
			budgetID:    "budget-1",
			item:        entity.BudgetItem{BudgetCategoryID: "cat-travel", Amount: money(500001)},
			expectError: entity.ErrBudgetExceeded,
		},
		{
			name:        "unknown category",
			budgetID:    "budget-1",
			item:        entity.BudgetItem{BudgetCategoryID: "cat-unknown", Amount: money(1)},
			expectError: entity.ErrInvalid,
		},
		{
			name:        "unknown budget",
			budgetID:    "missing",
			item:        entity.BudgetItem{BudgetCategoryID: "cat-travel", Amount: money(1)},
			expectError: entity.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := CreateTestDependencies(t, nil, nil)
			controller := NewBudgetController(deps)

			item, err := controller.CreateItem(context.Background(), tt.budgetID, tt.item)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Len(t, deps.Store.BudgetItems("budget-1"), 1)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, item.ID)
			assert.True(t, item.Spent.IsZero())
			assert.Len(t, deps.Store.BudgetItems("budget-1"), 2)
		})
	}
}

func TestBudgetController_UpdateAndDeleteItem(t *testing.T) {
	deps := CreateTestDependencies(t, nil, nil)
	controller := NewBudgetController(deps)

	updated, err := controller.UpdateItem(context.Background(), "item-1",
		entity.BudgetItem{BudgetID: "ignored", BudgetCategoryID: "cat-travel", Amount: money(600000), Spent: money(10)})
	require.NoError(t, err)
	assert.Equal(t, "budget-1", updated.BudgetID)

	_, err = controller.UpdateItem(context.Background(), "item-1",
		entity.BudgetItem{BudgetCategoryID: "cat-travel", Amount: money(600001)})
	assert.ErrorIs(t, err, entity.ErrBudgetExceeded)

	_, err = controller.UpdateItem(context.Background(), "missing", entity.BudgetItem{})
	assert.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, controller.DeleteItem(context.Background(), "item-1"))
	assert.Empty(t, deps.Store.BudgetItems("budget-1"))
	assert.ErrorIs(t, controller.DeleteItem(context.Background(), "item-1"), entity.ErrNotFound)
}

func TestBudgetController_AddTravel(t *testing.T) {
	deps := CreateTestDependencies(t, nil, nil)
	controller := NewBudgetController(deps)

	conference := entity.TravelDetail{
		ConferenceName: "Tech Conference 2024",
		Motivation:     "Learn about the latest frontend technologies",
		Trip: entity.Trip{
			TravelType:        entity.TravelInternational,
			Country:           "United States",
			City:              "San Francisco",
			NeedsHotel:        true,
			NeedsAirTravel:    true,
			FlightCosts:       money(800),
			HotelCosts:        money(200),
			MealCosts:         money(75),
			StartDate:         "2024-06-15",
			EndDate:           "2024-06-18",
			NumberOfTravelers: 2,
		},
	}

	item, err := controller.AddTravel(context.Background(), "item-1", conference)
	require.NoError(t, err)
	require.Len(t, item.TravelDetails, 1)
	assert.True(t, item.TravelDetails[0].TotalAmount.Equal(money(2150)))
	assert.True(t, item.Spent.Equal(money(2150)))

	stored, _ := deps.Store.BudgetItem("item-1")
	assert.True(t, stored.Spent.Equal(money(2150)))

	// Manual spent edits do not override recorded travel.
	updated, err := controller.UpdateItem(context.Background(), "item-1",
		entity.BudgetItem{BudgetCategoryID: "cat-training", Amount: money(100000), Spent: money(1)})
	require.NoError(t, err)
	assert.True(t, updated.Spent.Equal(money(2150)))
	assert.Len(t, updated.TravelDetails, 1)

	conference.Trip.TravelType = "space"
	_, err = controller.AddTravel(context.Background(), "item-1", conference)
	assert.ErrorIs(t, err, entity.ErrInvalid)
}

func TestBudgetController_AddBusinessTravel(t *testing.T) {
	trip := entity.Trip{
		TravelType:        entity.TravelInternational,
		Country:           "United Kingdom",
		City:              "London",
		NeedsHotel:        true,
		NeedsAirTravel:    true,
		FlightCosts:       money(1200),
		HotelCosts:        money(300),
		MealCosts:         money(100),
		StartDate:         "2024-04-10",
		EndDate:           "2024-04-14",
		NumberOfTravelers: 3,
	}

	tests := []struct {
		name        string
		itemAmount  int64
		category    entity.TravelCategory
		expectError error
	}{
		{name: "client visit fits", itemAmount: 4800, category: entity.TravelClientVisit},
		{name: "one unit short", itemAmount: 4799, category: entity.TravelClientVisit, expectError: entity.ErrBudgetExceeded},
		{name: "unknown category", itemAmount: 4800, category: "holiday", expectError: entity.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := CreateTestDependencies(t, nil, nil)
			deps.Store.AddBudgetItem(entity.BudgetItem{ID: "item-travel", BudgetID: "budget-1", BudgetCategoryID: "cat-travel", Amount: money(tt.itemAmount)})
			controller := NewBudgetController(deps)

			item, err := controller.AddBusinessTravel(context.Background(), "item-travel",
				entity.BusinessTravelDetail{Purpose: "Client meeting", TravelCategory: tt.category, Trip: trip})

			stored, _ := deps.Store.BudgetItem("item-travel")
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.True(t, stored.Spent.IsZero())
				assert.Empty(t, stored.BusinessTravelDetails)
				return
			}

			require.NoError(t, err)
			assert.True(t, item.BusinessTravelDetails[0].PerPersonCost.Equal(money(1600)))
			assert.True(t, stored.Spent.Equal(money(4800)))
		})
	}
}
