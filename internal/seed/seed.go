// Package seed loads an illustrative organization into an empty store.
package seed

import (
	"fmt"
	"log/slog"

	"github.com/adamanr/budget_planner/internal/budget"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OrganizationName = "SampleTestOrg"
	Year             = 2024
)

type share struct {
	category int
	percent  int64
}

// Category split applied to every team budget: training, conferences,
// educational materials, team activities, travel.
var split = []share{{0, 20}, {1, 20}, {2, 15}, {3, 15}, {4, 30}}

const (
	conferencesCategory = 1
	travelCategory      = 4
)

// Populate fills s with the sample data when it holds no organization yet and
// reports whether anything was added.
func Populate(s *store.Store, logger *slog.Logger) (bool, error) {
	if !s.IsEmpty() {
		logger.Info("Store is not empty, skipping seed")
		return false, nil
	}

	orgID := uuid.NewString()
	categories := []entity.BudgetCategory{
		{Name: "Training and Courses", Description: "Online courses, certifications, and workshops"},
		{Name: "Conferences", Description: "Industry conferences and tech events"},
		{Name: "Educational Materials", Description: "Books, subscriptions, and learning resources"},
		{Name: "Team Activities", Description: "Team outings and social events"},
		{Name: "Travel", Description: "Business travel expenses"},
	}
	for i := range categories {
		categories[i].ID = uuid.NewString()
		categories[i].OrganizationID = orgID
	}

	s.AddOrganization(entity.Organization{
		ID:               orgID,
		Name:             OrganizationName,
		LeaderName:       "Sarah Anderson",
		TotalBudget:      decimal.NewFromInt(5000000),
		BudgetCategories: categories,
	})

	departments := []entity.Department{
		{Name: "Engineering", HeadName: "Michael Chen", TotalBudget: decimal.NewFromInt(2000000)},
		{Name: "Product Management", HeadName: "Emily Rodriguez", TotalBudget: decimal.NewFromInt(1000000)},
		{Name: "Design", HeadName: "David Kim", TotalBudget: decimal.NewFromInt(800000)},
		{Name: "Operations", HeadName: "Lisa Thompson", TotalBudget: decimal.NewFromInt(700000)},
		{Name: "Customer Success", HeadName: "James Wilson", TotalBudget: decimal.NewFromInt(500000)},
	}
	for i := range departments {
		departments[i].ID = uuid.NewString()
		departments[i].OrganizationID = orgID
		if err := s.AddDepartment(departments[i]); err != nil {
			return false, fmt.Errorf("seed department %q: %w", departments[i].Name, err)
		}
	}

	managers := []entity.Manager{
		{Name: "Alex Kumar", DepartmentID: departments[0].ID},
		{Name: "Maria Garcia", DepartmentID: departments[0].ID},
		{Name: "John Smith", DepartmentID: departments[1].ID},
		{Name: "Sophie Lee", DepartmentID: departments[2].ID},
		{Name: "Rachel Green", DepartmentID: departments[3].ID},
		{Name: "Emma Watson", DepartmentID: departments[4].ID},
	}
	for i := range managers {
		managers[i].ID = uuid.NewString()
		s.AddManager(managers[i])
	}

	teams := []struct {
		name    string
		manager int
		amount  int64
	}{
		{"Frontend Development", 0, 600000},
		{"Backend Development", 0, 700000},
		{"Mobile Development", 1, 400000},
		{"Product Team", 2, 600000},
		{"UX Design", 3, 300000},
		{"Operations", 4, 400000},
		{"Customer Support", 5, 300000},
	}
	for _, t := range teams {
		teamID := uuid.NewString()
		budgetID := uuid.NewString()

		s.AddTeam(entity.Team{ID: teamID, Name: t.name, ManagerID: managers[t.manager].ID})
		s.AddBudget(entity.Budget{ID: budgetID, TeamID: teamID, TotalAmount: decimal.NewFromInt(t.amount), Year: Year})
		s.UpdateTeamBudget(teamID, budgetID)

		for _, item := range budgetItems(budgetID, decimal.NewFromInt(t.amount), categories) {
			s.AddBudgetItem(item)
		}
	}

	logger.Info("Sample data loaded",
		slog.String("organization", OrganizationName),
		slog.Int("departments", len(departments)),
		slog.Int("teams", len(teams)),
	)
	return true, nil
}

func budgetItems(budgetID string, total decimal.Decimal, categories []entity.BudgetCategory) []entity.BudgetItem {
	items := make([]entity.BudgetItem, 0, len(split))

	for _, sh := range split {
		item := entity.BudgetItem{
			ID:               uuid.NewString(),
			BudgetID:         budgetID,
			BudgetCategoryID: categories[sh.category].ID,
			Amount:           total.Mul(decimal.NewFromInt(sh.percent)).Div(decimal.NewFromInt(100)),
			Description:      "Budget allocation for " + categories[sh.category].Name,
		}

		switch sh.category {
		case conferencesCategory:
			item = budget.RecordTravel(item, entity.TravelDetail{
				ID:             uuid.NewString(),
				ConferenceName: "Tech Conference 2024",
				Motivation:     "Learning new technologies and networking",
				Trip: budget.PriceTrip(entity.Trip{
					TravelType:        entity.TravelInternational,
					Country:           "US",
					City:              "San Francisco",
					NeedsHotel:        true,
					NeedsAirTravel:    true,
					FlightCosts:       decimal.NewFromInt(800),
					HotelCosts:        decimal.NewFromInt(200),
					MealCosts:         decimal.NewFromInt(75),
					StartDate:         "2024-06-15",
					EndDate:           "2024-06-18",
					NumberOfTravelers: 2,
				}),
			})
		case travelCategory:
			item = budget.RecordBusinessTravel(item, entity.BusinessTravelDetail{
				ID:             uuid.NewString(),
				Purpose:        "Client Meeting - Project Kickoff",
				TravelCategory: entity.TravelClientVisit,
				Trip: budget.PriceTrip(entity.Trip{
					TravelType:        entity.TravelInternational,
					Country:           "UK",
					City:              "London",
					NeedsHotel:        true,
					NeedsAirTravel:    true,
					FlightCosts:       decimal.NewFromInt(1200),
					HotelCosts:        decimal.NewFromInt(300),
					MealCosts:         decimal.NewFromInt(100),
					StartDate:         "2024-04-10",
					EndDate:           "2024-04-14",
					NumberOfTravelers: 3,
				}),
			})
			item = budget.RecordBusinessTravel(item, entity.BusinessTravelDetail{
				ID:             uuid.NewString(),
				Purpose:        "Regional Office Visit",
				TravelCategory: entity.TravelInterOffice,
				Trip: budget.PriceTrip(entity.Trip{
					TravelType:        entity.TravelLocal,
					Country:           "US",
					City:              "Chicago",
					NeedsHotel:        true,
					NeedsCarRental:    true,
					NeedsAirTravel:    true,
					FlightCosts:       decimal.NewFromInt(400),
					HotelCosts:        decimal.NewFromInt(150),
					CarRentalCosts:    decimal.NewFromInt(200),
					MealCosts:         decimal.NewFromInt(50),
					StartDate:         "2024-05-20",
					EndDate:           "2024-05-22",
					NumberOfTravelers: 2,
				}),
			})
		}

		items = append(items, item)
	}

	return items
}
