package lookup

import (
	"context"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/adamanr/budget_planner/internal/entity"
)

const (
	MinCityQuery = 2
	MaxCities    = 10

	isoCodeLength = 2
)

//go:embed data/airports.csv
var airportsCSV string

//go:embed data/cities.csv
var citiesCSV string

func readCSV(data string, columns int) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(data))
	r.FieldsPerRecord = columns

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	// header
	return records[1:], nil
}

// Airports serves a static subset of the OpenFlights airport list.
type Airports struct {
	airports []entity.Airport
}

func NewAirports() (*Airports, error) {
	records, err := readCSV(airportsCSV, 5)
	if err != nil {
		return nil, err
	}

	airports := make([]entity.Airport, 0, len(records))
	for _, rec := range records {
		airports = append(airports, entity.Airport{Name: rec[0], City: rec[1], Country: rec[2], CountryCode: rec[3], IATA: rec[4]})
	}
	return &Airports{airports: airports}, nil
}

// AirportsByCountry accepts an ISO 3166-1 alpha-2 code, matched exactly, or
// a longer name fragment, matched case-insensitively by substring.
func (a *Airports) AirportsByCountry(_ context.Context, country string) ([]entity.Airport, error) {
	country = strings.TrimSpace(country)
	byCode := len(country) == isoCodeLength
	needle := strings.ToLower(country)

	result := []entity.Airport{}
	if needle == "" {
		return result, nil
	}

	for _, airport := range a.airports {
		var ok bool
		if byCode {
			ok = strings.EqualFold(airport.CountryCode, country)
		} else {
			ok = strings.Contains(strings.ToLower(airport.Country), needle)
		}
		if ok {
			result = append(result, airport)
		}
	}
	return result, nil
}

type cityIndex struct {
	cities []entity.City
}

func newCityIndex() (*cityIndex, error) {
	records, err := readCSV(citiesCSV, 3)
	if err != nil {
		return nil, err
	}

	cities := make([]entity.City, 0, len(records))
	for _, rec := range records {
		cities = append(cities, entity.City{Name: rec[0], Country: rec[1], Region: rec[2]})
	}
	return &cityIndex{cities: cities}, nil
}

// search returns at most MaxCities cities of the country whose name contains
// query. Queries shorter than MinCityQuery return nothing.
func (c *cityIndex) search(countryCode, query string) []entity.City {
	query = strings.ToLower(strings.TrimSpace(query))
	result := []entity.City{}
	if len([]rune(query)) < MinCityQuery {
		return result
	}

	for _, city := range c.cities {
		if !strings.EqualFold(city.Country, countryCode) || !strings.Contains(strings.ToLower(city.Name), query) {
			continue
		}
		result = append(result, city)
		if len(result) == MaxCities {
			break
		}
	}
	return result
}
