package controllers

import (
	"context"
	"log/slog"

	"github.com/adamanr/budget_planner/internal/entity"
)

// LookupController never fails: lookup errors are logged and yield empty lists.
type LookupController struct {
	deps *Dependens
}

func NewLookupController(deps *Dependens) *LookupController {
	return &LookupController{
		deps: deps,
	}
}

func (c *LookupController) GetCountries(ctx context.Context) []entity.Country {
	if c.deps.Countries == nil {
		return []entity.Country{}
	}

	countries, err := c.deps.Countries.Countries(ctx)
	if err != nil {
		c.deps.Logger.Error("Error getting countries", slog.String("error", err.Error()))
		return []entity.Country{}
	}

	return countries
}

func (c *LookupController) GetCities(ctx context.Context, countryCode, query string) []entity.City {
	if c.deps.Countries == nil {
		return []entity.City{}
	}

	cities, err := c.deps.Countries.Cities(ctx, countryCode, query)
	if err != nil {
		c.deps.Logger.Error("Error getting cities", slog.String("country", countryCode), slog.String("error", err.Error()))
		return []entity.City{}
	}

	return cities
}

func (c *LookupController) GetAirports(ctx context.Context, country string) []entity.Airport {
	if c.deps.Airports == nil {
		return []entity.Airport{}
	}

	airports, err := c.deps.Airports.AirportsByCountry(ctx, country)
	if err != nil {
		c.deps.Logger.Error("Error getting airports", slog.String("country", country), slog.String("error", err.Error()))
		return []entity.Airport{}
	}

	return airports
}
