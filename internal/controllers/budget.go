package controllers

import (
	"context"
	"log/slog"

	"github.com/adamanr/budget_planner/internal/budget"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
)

// BudgetController manages budget items and the travel records attached to them.
type BudgetController struct {
	deps *Dependens
}

func NewBudgetController(deps *Dependens) *BudgetController {
	return &BudgetController{
		deps: deps,
	}
}

func (c *BudgetController) CreateItem(ctx context.Context, budgetID string, item entity.BudgetItem) (*entity.BudgetItem, error) {
	item.ID = newID()
	item.BudgetID = budgetID
	item.TravelDetails = nil
	item.BusinessTravelDetails = nil

	err := c.deps.mutate(ctx, "Budget item", func(st store.State) error {
		if err := budget.ValidateBudgetItem(st, item); err != nil {
			return err
		}

		c.deps.Store.AddBudgetItem(item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.deps.Logger.Info("Budget item created", slog.String("id", item.ID), slog.String("budget_id", budgetID))
	return &item, nil
}

// UpdateItem replaces category, amount, spent and description. Travel records
// stay attached and, when present, keep driving spent.
func (c *BudgetController) UpdateItem(ctx context.Context, id string, item entity.BudgetItem) (*entity.BudgetItem, error) {
	err := c.deps.mutate(ctx, "Budget item update", func(st store.State) error {
		existing, ok := st.FindBudgetItem(id)
		if !ok {
			return notFound("Budget item")
		}

		item.ID = existing.ID
		item.BudgetID = existing.BudgetID
		item.TravelDetails = existing.TravelDetails
		item.BusinessTravelDetails = existing.BusinessTravelDetails
		if len(existing.TravelDetails)+len(existing.BusinessTravelDetails) > 0 {
			item.Spent = existing.Spent
		}

		if err := budget.ValidateBudgetItem(st, item); err != nil {
			return err
		}

		c.deps.Store.AddBudgetItem(item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.deps.Logger.Info("Budget item updated", slog.String("id", item.ID))
	return &item, nil
}

func (c *BudgetController) DeleteItem(ctx context.Context, id string) error {
	err := c.deps.mutate(ctx, "Budget item delete", func(st store.State) error {
		if _, ok := st.FindBudgetItem(id); !ok {
			return notFound("Budget item")
		}

		c.deps.Store.DeleteBudgetItem(id)
		return nil
	})
	if err != nil {
		return err
	}

	c.deps.Logger.Info("Budget item deleted", slog.String("id", id))
	return nil
}

// AddTravel prices a conference trip and records it on the item.
func (c *BudgetController) AddTravel(ctx context.Context, itemID string, detail entity.TravelDetail) (*entity.BudgetItem, error) {
	detail.ID = newID()
	detail.Trip = budget.PriceTrip(detail.Trip)

	return c.recordTrip(ctx, itemID, detail.Trip, func(item entity.BudgetItem) entity.BudgetItem {
		return budget.RecordTravel(item, detail)
	})
}

// AddBusinessTravel prices a business trip and records it on the item.
func (c *BudgetController) AddBusinessTravel(ctx context.Context, itemID string, detail entity.BusinessTravelDetail) (*entity.BudgetItem, error) {
	detail.ID = newID()
	detail.Trip = budget.PriceTrip(detail.Trip)

	if !validTravelCategory(detail.TravelCategory) {
		err := entity.NewValidationError(entity.ErrInvalid, "Unknown travel category")
		c.deps.Metrics.RecordRejection(err)
		c.deps.Logger.Warn("Business travel rejected", slog.String("error", err.Error()))
		return nil, err
	}

	return c.recordTrip(ctx, itemID, detail.Trip, func(item entity.BudgetItem) entity.BudgetItem {
		return budget.RecordBusinessTravel(item, detail)
	})
}

func (c *BudgetController) recordTrip(ctx context.Context, itemID string, trip entity.Trip,
	record func(entity.BudgetItem) entity.BudgetItem,
) (*entity.BudgetItem, error) {
	var updated entity.BudgetItem

	err := c.deps.mutate(ctx, "Travel", func(st store.State) error {
		item, ok := st.FindBudgetItem(itemID)
		if !ok {
			return notFound("Budget item")
		}
		if trip.TravelType != entity.TravelLocal && trip.TravelType != entity.TravelInternational {
			return entity.NewValidationError(entity.ErrInvalid, "Travel type must be local or international")
		}
		if err := budget.ValidateTrip(item, trip); err != nil {
			return err
		}

		updated = record(item)
		c.deps.Store.AddBudgetItem(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.deps.Logger.Info("Travel recorded",
		slog.String("item_id", itemID),
		slog.String("total_amount", trip.TotalAmount.String()),
	)
	return &updated, nil
}

func validTravelCategory(category entity.TravelCategory) bool {
	switch category {
	case entity.TravelClientVisit, entity.TravelInterOffice, entity.TravelSales, entity.TravelTraining, entity.TravelOther:
		return true
	default:
		return false
	}
}
