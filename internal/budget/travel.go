package budget

import (
	"fmt"
	"time"

	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/shopspring/decimal"
)

// PriceTrip fills PerPersonCost and TotalAmount and zeroes the costs of
// services the trip does not need. Car rental is shared by the group, every
// other cost is per traveler.
func PriceTrip(trip entity.Trip) entity.Trip {
	if !trip.NeedsHotel {
		trip.HotelCosts = decimal.Zero
	}
	if !trip.NeedsCarRental {
		trip.CarRentalCosts = decimal.Zero
	}
	if !trip.NeedsAirTravel {
		trip.FlightCosts = decimal.Zero
	}

	if trip.NumberOfTravelers < 1 {
		trip.PerPersonCost = decimal.Zero
		trip.TotalAmount = decimal.Zero
		return trip
	}

	travelers := decimal.NewFromInt(int64(trip.NumberOfTravelers))
	perHead := trip.HotelCosts.Add(trip.MealCosts).Add(trip.FlightCosts)

	// Total is computed without dividing so it stays exact.
	trip.TotalAmount = perHead.Mul(travelers).Add(trip.CarRentalCosts)
	trip.PerPersonCost = trip.TotalAmount.Div(travelers)

	return trip
}

// ValidateTrip checks the trip on its own and against the budget item it is
// recorded on. The trip must already be priced.
func ValidateTrip(item entity.BudgetItem, trip entity.Trip) error {
	if trip.NumberOfTravelers < 1 {
		return entity.NewValidationError(entity.ErrInvalid, "Number of travelers must be at least 1")
	}

	for _, cost := range []decimal.Decimal{trip.FlightCosts, trip.HotelCosts, trip.CarRentalCosts, trip.MealCosts} {
		if cost.IsNegative() {
			return entity.NewValidationError(entity.ErrInvalid, "Costs cannot be negative")
		}
	}

	start, err := time.Parse(entity.DateLayout, trip.StartDate)
	if err != nil {
		return entity.NewValidationError(entity.ErrInvalid, "Start date must be formatted as YYYY-MM-DD")
	}
	end, err := time.Parse(entity.DateLayout, trip.EndDate)
	if err != nil {
		return entity.NewValidationError(entity.ErrInvalid, "End date must be formatted as YYYY-MM-DD")
	}
	if end.Before(start) {
		return entity.NewValidationError(entity.ErrInvalid, "End date cannot be before start date")
	}

	if item.Spent.Add(trip.TotalAmount).GreaterThan(item.Amount) {
		return entity.NewValidationError(entity.ErrBudgetExceeded,
			fmt.Sprintf("Total amount exceeds budget allocation of $%s", item.Amount.StringFixed(2)))
	}

	return nil
}

// RecordTravel appends a priced conference trip to the item and adds its total to spent.
func RecordTravel(item entity.BudgetItem, detail entity.TravelDetail) entity.BudgetItem {
	detail.BudgetItemID = item.ID
	item.Spent = item.Spent.Add(detail.TotalAmount)
	item.TravelDetails = append(append([]entity.TravelDetail(nil), item.TravelDetails...), detail)
	return item
}

// RecordBusinessTravel appends a priced business trip to the item and adds its total to spent.
func RecordBusinessTravel(item entity.BudgetItem, detail entity.BusinessTravelDetail) entity.BudgetItem {
	detail.BudgetItemID = item.ID
	item.Spent = item.Spent.Add(detail.TotalAmount)
	item.BusinessTravelDetails = append(append([]entity.BusinessTravelDetail(nil), item.BusinessTravelDetails...), detail)
	return item
}
