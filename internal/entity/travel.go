package entity

import "github.com/shopspring/decimal"

type TravelType string

const (
	TravelLocal         TravelType = "local"
	TravelInternational TravelType = "international"
)

type TravelCategory string

const (
	TravelClientVisit TravelCategory = "client_visit"
	TravelInterOffice TravelCategory = "inter_office"
	TravelSales       TravelCategory = "sales"
	TravelTraining    TravelCategory = "training"
	TravelOther       TravelCategory = "other"
)

// DateLayout is the format of trip start and end dates.
const DateLayout = "2006-01-02"

// Trip holds the cost breakdown shared by conference and business travel.
// Hotel, meal and flight costs are per person, car rental is for the whole group.
type Trip struct {
	TravelType        TravelType      `json:"travel_type"`
	Country           string          `json:"country"`
	City              string          `json:"city"`
	NeedsHotel        bool            `json:"needs_hotel"`
	NeedsCarRental    bool            `json:"needs_car_rental"`
	NeedsAirTravel    bool            `json:"needs_air_travel"`
	FlightCosts       decimal.Decimal `json:"flight_costs"`
	HotelCosts        decimal.Decimal `json:"hotel_costs"`
	CarRentalCosts    decimal.Decimal `json:"car_rental_costs"`
	MealCosts         decimal.Decimal `json:"meal_costs"`
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
	NumberOfTravelers int             `json:"number_of_travelers"`
	PerPersonCost     decimal.Decimal `json:"per_person_cost"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
}

type TravelDetail struct {
	ID             string `json:"id"`
	BudgetItemID   string `json:"budget_item_id"`
	ConferenceName string `json:"conference_name"`
	Motivation     string `json:"motivation"`
	Trip
}

type BusinessTravelDetail struct {
	ID             string         `json:"id"`
	BudgetItemID   string         `json:"budget_item_id"`
	Purpose        string         `json:"purpose"`
	TravelCategory TravelCategory `json:"travel_category"`
	Trip
}
