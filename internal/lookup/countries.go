package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/redis/go-redis/v9"
)

const CountriesCacheKey = "lookup:countries"

type CountryLookup interface {
	Countries(ctx context.Context) ([]entity.Country, error)
	Cities(ctx context.Context, countryCode, query string) ([]entity.City, error)
}

type AirportLookup interface {
	AirportsByCountry(ctx context.Context, country string) ([]entity.Airport, error)
}

// Cache is the part of the redis client used to keep the country list.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RestCountries lists countries from the restcountries.com API and cities from
// the embedded list.
type RestCountries struct {
	baseURL  string
	client   *http.Client
	cache    Cache
	cacheTTL time.Duration
	logger   *slog.Logger
	cities   *cityIndex
}

// NewRestCountries builds the client. cache may be nil.
func NewRestCountries(baseURL string, timeout, cacheTTL time.Duration, cache Cache, logger *slog.Logger) (*RestCountries, error) {
	cities, err := newCityIndex()
	if err != nil {
		return nil, err
	}

	return &RestCountries{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		cities:   cities,
	}, nil
}

type restCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	CCA2 string `json:"cca2"`
}

// Countries returns every country sorted by name.
func (c *RestCountries) Countries(ctx context.Context) ([]entity.Country, error) {
	if countries, ok := c.cached(ctx); ok {
		return countries, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/all?fields=name,cca2", nil)
	if err != nil {
		return nil, fmt.Errorf("build countries request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Error fetching countries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("fetch countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Unexpected countries API status", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("fetch countries: unexpected status %d", resp.StatusCode)
	}

	var raw []restCountry
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.logger.Error("Error decoding countries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("decode countries: %w", err)
	}

	countries := make([]entity.Country, 0, len(raw))
	for _, rc := range raw {
		countries = append(countries, entity.Country{Name: rc.Name.Common, Code: rc.CCA2})
	}
	sort.Slice(countries, func(i, j int) bool { return countries[i].Name < countries[j].Name })

	c.store(ctx, countries)
	return countries, nil
}

func (c *RestCountries) Cities(_ context.Context, countryCode, query string) ([]entity.City, error) {
	return c.cities.search(countryCode, query), nil
}

func (c *RestCountries) cached(ctx context.Context) ([]entity.Country, bool) {
	if c.cache == nil {
		return nil, false
	}

	data, err := c.cache.Get(ctx, CountriesCacheKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Error reading countries cache", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var countries []entity.Country
	if err := json.Unmarshal([]byte(data), &countries); err != nil {
		c.logger.Warn("Error decoding countries cache", slog.String("error", err.Error()))
		return nil, false
	}
	return countries, true
}

func (c *RestCountries) store(ctx context.Context, countries []entity.Country) {
	if c.cache == nil {
		return
	}

	data, err := json.Marshal(countries)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, CountriesCacheKey, data, c.cacheTTL).Err(); err != nil {
		c.logger.Warn("Error caching countries", slog.String("error", err.Error()))
	}
}
