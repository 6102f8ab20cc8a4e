package store

import "github.com/adamanr/budget_planner/internal/entity"

// Finders and parent filters are linear scans; a hierarchy holds tens to a few
// hundred entities.

func (st State) FindOrganization(id string) (entity.Organization, bool) {
	for _, o := range st.Organizations {
		if o.ID == id {
			return o, true
		}
	}
	return entity.Organization{}, false
}

func (st State) FindDepartment(id string) (entity.Department, bool) {
	for _, d := range st.Departments {
		if d.ID == id {
			return d, true
		}
	}
	return entity.Department{}, false
}

func (st State) FindManager(id string) (entity.Manager, bool) {
	for _, m := range st.Managers {
		if m.ID == id {
			return m, true
		}
	}
	return entity.Manager{}, false
}

func (st State) FindTeam(id string) (entity.Team, bool) {
	for _, t := range st.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return entity.Team{}, false
}

func (st State) FindBudget(id string) (entity.Budget, bool) {
	for _, b := range st.Budgets {
		if b.ID == id {
			return b, true
		}
	}
	return entity.Budget{}, false
}

func (st State) FindBudgetItem(id string) (entity.BudgetItem, bool) {
	for _, i := range st.BudgetItems {
		if i.ID == id {
			return i, true
		}
	}
	return entity.BudgetItem{}, false
}

// TeamBudget resolves the budget attached to the team.
func (st State) TeamBudget(team entity.Team) (entity.Budget, bool) {
	if !team.HasBudget() {
		return entity.Budget{}, false
	}
	return st.FindBudget(team.BudgetID)
}

func (st State) DepartmentsByOrganization(organizationID string) []entity.Department {
	var out []entity.Department
	for _, d := range st.Departments {
		if d.OrganizationID == organizationID {
			out = append(out, d)
		}
	}
	return out
}

func (st State) ManagersByDepartment(departmentID string) []entity.Manager {
	var out []entity.Manager
	for _, m := range st.Managers {
		if m.DepartmentID == departmentID {
			out = append(out, m)
		}
	}
	return out
}

func (st State) TeamsByManager(managerID string) []entity.Team {
	var out []entity.Team
	for _, t := range st.Teams {
		if t.ManagerID == managerID {
			out = append(out, t)
		}
	}
	return out
}

// TeamsByDepartment returns every team whose manager belongs to the department.
func (st State) TeamsByDepartment(departmentID string) []entity.Team {
	var out []entity.Team
	for _, m := range st.ManagersByDepartment(departmentID) {
		out = append(out, st.TeamsByManager(m.ID)...)
	}
	return out
}

func (st State) BudgetItemsByBudget(budgetID string) []entity.BudgetItem {
	var out []entity.BudgetItem
	for _, i := range st.BudgetItems {
		if i.BudgetID == budgetID {
			out = append(out, i)
		}
	}
	return out
}

// OrganizationOfTeam walks team → manager → department → organization.
func (st State) OrganizationOfTeam(teamID string) (entity.Organization, bool) {
	team, ok := st.FindTeam(teamID)
	if !ok {
		return entity.Organization{}, false
	}
	manager, ok := st.FindManager(team.ManagerID)
	if !ok {
		return entity.Organization{}, false
	}
	dept, ok := st.FindDepartment(manager.DepartmentID)
	if !ok {
		return entity.Organization{}, false
	}
	return st.FindOrganization(dept.OrganizationID)
}
