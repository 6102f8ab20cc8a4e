// Package store holds the organization hierarchy in memory and exposes the
// add/update/delete/query primitives used by the controllers.
package store

import (
	"slices"
	"strings"
	"sync"

	"github.com/adamanr/budget_planner/internal/entity"
)

// State is a point-in-time copy of every collection in the store.
type State struct {
	Organizations []entity.Organization `json:"organizations"`
	Departments   []entity.Department   `json:"departments"`
	Managers      []entity.Manager      `json:"managers"`
	Teams         []entity.Team         `json:"teams"`
	Budgets       []entity.Budget       `json:"budgets"`
	BudgetItems   []entity.BudgetItem   `json:"budget_items"`
}

// Store is safe for concurrent readers. Writers that validate before mutating
// should wrap both steps in Atomically.
type Store struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	state   State
}

func New() *Store {
	return &Store{}
}

// Atomically runs fn while holding the writer lock, so a check against State()
// and the mutation it guards cannot interleave with another writer.
func (s *Store) Atomically(fn func() error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return fn()
}

// State returns a copy of all collections. Nested slices are shared because the
// store only ever replaces them wholesale.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Organizations: slices.Clone(s.state.Organizations),
		Departments:   slices.Clone(s.state.Departments),
		Managers:      slices.Clone(s.state.Managers),
		Teams:         slices.Clone(s.state.Teams),
		Budgets:       slices.Clone(s.state.Budgets),
		BudgetItems:   slices.Clone(s.state.BudgetItems),
	}
}

// Restore replaces every collection with the given state.
func (s *Store) Restore(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{
		Organizations: slices.Clone(state.Organizations),
		Departments:   slices.Clone(state.Departments),
		Managers:      slices.Clone(state.Managers),
		Teams:         slices.Clone(state.Teams),
		Budgets:       slices.Clone(state.Budgets),
		BudgetItems:   slices.Clone(state.BudgetItems),
	}
}

func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.state.Organizations) == 0
}

func (s *Store) AddOrganization(org entity.Organization) {
	s.mu.Lock()
	defer s.mu.Unlock()

	org.BudgetCategories = slices.Clone(org.BudgetCategories)
	s.state.Organizations = append(slices.Clone(s.state.Organizations), org)
}

// AddDepartment appends the department unless the organization already has a
// department with the same name, compared case-insensitively.
func (s *Store) AddDepartment(dept entity.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.state.Departments {
		if d.OrganizationID == dept.OrganizationID && strings.EqualFold(d.Name, dept.Name) {
			return entity.NewValidationError(entity.ErrDuplicateName,
				"A department with this name already exists in the organization")
		}
	}

	s.state.Departments = append(slices.Clone(s.state.Departments), dept)
	return nil
}

func (s *Store) AddManager(manager entity.Manager) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Managers = append(slices.Clone(s.state.Managers), manager)
}

func (s *Store) AddTeam(team entity.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Teams = append(slices.Clone(s.state.Teams), team)
}

// AddBudget replaces the budget with the same id or appends it.
func (s *Store) AddBudget(budget entity.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := slices.DeleteFunc(slices.Clone(s.state.Budgets), func(b entity.Budget) bool {
		return b.ID == budget.ID
	})
	s.state.Budgets = append(budgets, budget)
}

// AddBudgetItem replaces the item with the same id or appends it.
func (s *Store) AddBudgetItem(item entity.BudgetItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.TravelDetails = slices.Clone(item.TravelDetails)
	item.BusinessTravelDetails = slices.Clone(item.BusinessTravelDetails)

	items := slices.DeleteFunc(slices.Clone(s.state.BudgetItems), func(i entity.BudgetItem) bool {
		return i.ID == item.ID
	})
	s.state.BudgetItems = append(items, item)
}

func (s *Store) DeleteBudgetItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.BudgetItems = slices.DeleteFunc(slices.Clone(s.state.BudgetItems), func(i entity.BudgetItem) bool {
		return i.ID == itemID
	})
}

// UpdateTeamBudget points the team at the given budget. When the budget id does
// not resolve the team is left without a budget.
func (s *Store) UpdateTeamBudget(teamID, budgetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := ""
	if _, ok := s.state.FindBudget(budgetID); ok {
		resolved = budgetID
	}

	teams := slices.Clone(s.state.Teams)
	for i := range teams {
		if teams[i].ID == teamID {
			teams[i].BudgetID = resolved
		}
	}
	s.state.Teams = teams
}

// UpdateDepartmentBudget replaces the department record with the same id.
func (s *Store) UpdateDepartmentBudget(dept entity.Department) {
	s.mu.Lock()
	defer s.mu.Unlock()

	departments := slices.Clone(s.state.Departments)
	for i := range departments {
		if departments[i].ID == dept.ID {
			departments[i] = dept
		}
	}
	s.state.Departments = departments
}

func (s *Store) UpdateOrganizationCategories(organizationID string, categories []entity.BudgetCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orgs := slices.Clone(s.state.Organizations)
	for i := range orgs {
		if orgs[i].ID == organizationID {
			orgs[i].BudgetCategories = slices.Clone(categories)
		}
	}
	s.state.Organizations = orgs
}

func (s *Store) Organizations() []entity.Organization {
	return s.State().Organizations
}

func (s *Store) Organization(id string) (entity.Organization, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.FindOrganization(id)
}

func (s *Store) Department(id string) (entity.Department, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.FindDepartment(id)
}

func (s *Store) Manager(id string) (entity.Manager, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.FindManager(id)
}

func (s *Store) Team(id string) (entity.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.FindTeam(id)
}

func (s *Store) Budget(id string) (entity.Budget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.FindBudget(id)
}

func (s *Store) BudgetItem(id string) (entity.BudgetItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.FindBudgetItem(id)
}

func (s *Store) DepartmentsByOrganization(organizationID string) []entity.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.DepartmentsByOrganization(organizationID)
}

func (s *Store) ManagersByDepartment(departmentID string) []entity.Manager {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.ManagersByDepartment(departmentID)
}

func (s *Store) TeamsByManager(managerID string) []entity.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.TeamsByManager(managerID)
}

func (s *Store) BudgetItems(budgetID string) []entity.BudgetItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.BudgetItemsByBudget(budgetID)
}

// BudgetCategories returns the categories of the organization, or nil when it does not exist.
func (s *Store) BudgetCategories(organizationID string) []entity.BudgetCategory {
	org, ok := s.Organization(organizationID)
	if !ok {
		return nil
	}

	return slices.Clone(org.BudgetCategories)
}
