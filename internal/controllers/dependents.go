package controllers

import (
	"context"
	"log/slog"
	"time"

	"github.com/adamanr/budget_planner/internal/config"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/lookup"
	"github.com/adamanr/budget_planner/internal/metrics"
	"github.com/adamanr/budget_planner/internal/repository"
	"github.com/adamanr/budget_planner/internal/store"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Controllers struct {
	AuthController         *AuthController
	OrganizationController *OrganizationController
	DepartmentController   *DepartmentController
	ManagerController      *ManagerController
	TeamController         *TeamController
	BudgetController       *BudgetController
	CategoryController     *CategoryController
	LookupController       *LookupController
}

func NewControllers(deps *Dependens) *Controllers {
	return &Controllers{
		AuthController:         NewAuthController(deps),
		OrganizationController: NewOrganizationController(deps),
		DepartmentController:   NewDepartmentController(deps),
		ManagerController:      NewManagerController(deps),
		TeamController:         NewTeamController(deps),
		BudgetController:       NewBudgetController(deps),
		CategoryController:     NewCategoryController(deps),
		LookupController:       NewLookupController(deps),
	}
}

// Dependens is shared by every controller. Snapshots, Redis and Metrics are
// optional and may be nil.
type Dependens struct {
	Store     *store.Store
	Snapshots repository.Snapshots
	Redis     interface {
		Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
		Get(ctx context.Context, key string) *redis.StringCmd
		Del(ctx context.Context, keys ...string) *redis.IntCmd
	}
	Logger    *slog.Logger
	Config    *config.Config
	Metrics   *metrics.Metrics
	Countries lookup.CountryLookup
	Airports  lookup.AirportLookup
}

// mutate runs fn as a single writer step and saves a snapshot when it succeeds.
// fn is expected to validate against the current state before changing it.
func (d *Dependens) mutate(ctx context.Context, action string, fn func(st store.State) error) error {
	err := d.Store.Atomically(func() error {
		if err := fn(d.Store.State()); err != nil {
			return err
		}

		d.persist(ctx)
		return nil
	})
	if err != nil {
		d.Metrics.RecordRejection(err)
		d.Logger.Warn(action+" rejected", slog.String("error", err.Error()))
		return err
	}

	return nil
}

func (d *Dependens) persist(ctx context.Context) {
	if d.Snapshots == nil {
		return
	}

	if err := d.Snapshots.Save(ctx, d.Store.State()); err != nil {
		d.Logger.Error("Error saving snapshot", slog.String("error", err.Error()))
	}
}

// orEmpty keeps list responses from serializing as null.
func orEmpty[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func newID() string {
	return uuid.NewString()
}

func notFound(what string) error {
	return entity.NewValidationError(entity.ErrNotFound, what+" not found")
}
