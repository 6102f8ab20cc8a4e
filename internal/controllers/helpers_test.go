package controllers

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/adamanr/budget_planner/internal/config"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/adamanr/budget_planner/internal/metrics"
	"github.com/adamanr/budget_planner/internal/repository"
	"github.com/adamanr/budget_planner/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// RedisInterface defines the interface for Redis operations.
type RedisInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// MockRedis represents a mock Redis client. Return either a ready command or
// an error (nil for success).
type MockRedis struct {
	mock.Mock
}

func (m *MockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)

	if statusCmd, ok := args.Get(0).(*redis.StatusCmd); ok {
		return statusCmd
	}

	cmd := redis.NewStatusCmd(ctx)
	if err, ok := args.Get(0).(error); ok && err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal("OK")
	}

	return cmd
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)

	if stringCmd, ok := args.Get(0).(*redis.StringCmd); ok {
		return stringCmd
	}

	cmd := redis.NewStringCmd(ctx)
	if err, ok := args.Get(0).(error); ok && err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal("valid")
	}

	return cmd
}

func (m *MockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)

	if intCmd, ok := args.Get(0).(*redis.IntCmd); ok {
		return intCmd
	}

	cmd := redis.NewIntCmd(ctx)
	if err, ok := args.Get(0).(error); ok && err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(int64(len(keys)))
	}

	return cmd
}

// MockSnapshots represents a mock snapshot repository.
type MockSnapshots struct {
	mock.Mock
}

func (m *MockSnapshots) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSnapshots) Save(ctx context.Context, state store.State) error {
	return m.Called(ctx, state).Error(0)
}

func (m *MockSnapshots) Load(ctx context.Context) (*store.State, error) {
	args := m.Called(ctx)
	state, _ := args.Get(0).(*store.State)
	return state, args.Error(1)
}

// Test helper functions.
func CreateTestDependencies(t *testing.T, snapshots repository.Snapshots, mockRedis RedisInterface) *Dependens {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	cfg := &config.Config{}
	cfg.Auth.Enabled = true
	cfg.Auth.JWTSecret = "test-secret-key"
	cfg.Auth.AccessTokenTTL = time.Hour
	cfg.Auth.RefreshTokenTTL = time.Hour * 24

	m, err := metrics.New(prometheus.NewRegistry(), nil)
	require.NoError(t, err)

	return &Dependens{
		Store:     CreateTestStore(t),
		Snapshots: snapshots,
		Redis:     mockRedis,
		Logger:    logger,
		Config:    cfg,
		Metrics:   m,
	}
}

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// CreateTestStore builds org-1 (5,000,000) → dept-1 Engineering (2,000,000) →
// mgr-1 → team-1 with budget-1 (600,000) and one Training item of 100,000.
func CreateTestStore(t *testing.T) *store.Store {
	t.Helper()

	s := store.New()
	s.AddOrganization(entity.Organization{
		ID:          "org-1",
		Name:        "SampleTestOrg",
		LeaderName:  "John Smith",
		TotalBudget: money(5000000),
		BudgetCategories: []entity.BudgetCategory{
			{ID: "cat-training", OrganizationID: "org-1", Name: "Training"},
			{ID: "cat-travel", OrganizationID: "org-1", Name: "Travel"},
		},
	})
	require.NoError(t, s.AddDepartment(entity.Department{
		ID: "dept-1", Name: "Engineering", HeadName: "Sarah Johnson", OrganizationID: "org-1", TotalBudget: money(2000000),
	}))
	s.AddManager(entity.Manager{ID: "mgr-1", Name: "Alex Kumar", DepartmentID: "dept-1"})
	s.AddTeam(entity.Team{ID: "team-1", Name: "Frontend Development", ManagerID: "mgr-1"})
	s.AddBudget(entity.Budget{ID: "budget-1", TeamID: "team-1", TotalAmount: money(600000), Year: 2024})
	s.UpdateTeamBudget("team-1", "budget-1")
	s.AddBudgetItem(entity.BudgetItem{
		ID: "item-1", BudgetID: "budget-1", BudgetCategoryID: "cat-training", Amount: money(100000), Description: "Courses",
	})

	return s
}
