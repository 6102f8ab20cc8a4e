package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/adamanr/budget_planner/internal/controllers"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/go-chi/chi/v5"
)

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (s Server) Healthz(w http.ResponseWriter, _ *http.Request) {
	s.httpResponse(w, http.StatusOK, "ok", "success")
}

// AuthLogin authenticates a configured user and returns a token pair.
func (s Server) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginRequest
	if !s.decode(w, r, &req) {
		return
	}

	accessToken, refreshToken, err := s.Controllers.AuthController.AuthLogin(r.Context(), &req)
	if err != nil {
		if errors.Is(err, controllers.ErrInvalidCredentials) {
			s.httpResponse(w, http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"}, "error")
			return
		}
		s.deps.Logger.Error("Error logging in", slog.String("error", err.Error()))
		s.httpResponse(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"}, "error")
		return
	}

	s.httpResponse(w, http.StatusOK, entity.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "success")
}

// AuthLogout revokes the caller's tokens.
func (s Server) AuthLogout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.httpResponse(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"}, "error")
		return
	}

	if err := s.Controllers.AuthController.AuthLogout(r.Context(), r.Header.Get("Authorization"), req.RefreshToken); err != nil {
		s.httpResponse(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"}, "error")
		return
	}

	s.httpResponse(w, http.StatusOK, "Logged out", "success")
}

func (s Server) GetOrganizations(w http.ResponseWriter, _ *http.Request) {
	s.httpResponse(w, http.StatusOK, s.Controllers.OrganizationController.GetOrganizations(), "success")
}

func (s Server) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var org entity.Organization
	if !s.decode(w, r, &org) {
		return
	}

	created, err := s.Controllers.OrganizationController.CreateOrganization(r.Context(), org)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusCreated, created, "success")
}

func (s Server) GetOrganizationByID(w http.ResponseWriter, r *http.Request) {
	org, err := s.Controllers.OrganizationController.GetOrganizationByID(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, org, "success")
}

func (s Server) GetOrganizationBudgetInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.Controllers.OrganizationController.GetBudgetInfo(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, info, "success")
}

func (s Server) GetOrganizationSpent(w http.ResponseWriter, r *http.Request) {
	spent, err := s.Controllers.OrganizationController.GetTotalSpent(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, map[string]any{"spent": spent}, "success")
}

func (s Server) GetDepartments(w http.ResponseWriter, r *http.Request) {
	depts, err := s.Controllers.DepartmentController.GetDepartments(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, depts, "success")
}

func (s Server) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var dept entity.Department
	if !s.decode(w, r, &dept) {
		return
	}

	created, err := s.Controllers.DepartmentController.CreateDepartment(r.Context(), chi.URLParam(r, "id"), dept)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusCreated, created, "success")
}

func (s Server) GetDepartmentByID(w http.ResponseWriter, r *http.Request) {
	dept, err := s.Controllers.DepartmentController.GetDepartmentByID(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, dept, "success")
}

func (s Server) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var dept entity.Department
	if !s.decode(w, r, &dept) {
		return
	}

	updated, err := s.Controllers.DepartmentController.UpdateDepartment(r.Context(), chi.URLParam(r, "id"), dept)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, updated, "success")
}

func (s Server) GetDepartmentBudgetInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.Controllers.DepartmentController.GetBudgetInfo(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, info, "success")
}

func (s Server) GetManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := s.Controllers.DepartmentController.GetManagers(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, managers, "success")
}

func (s Server) CreateManager(w http.ResponseWriter, r *http.Request) {
	var manager entity.Manager
	if !s.decode(w, r, &manager) {
		return
	}

	created, err := s.Controllers.ManagerController.CreateManager(r.Context(), manager)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusCreated, created, "success")
}

func (s Server) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.Controllers.ManagerController.GetTeams(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, teams, "success")
}

func (s Server) GetManagerBudgetInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.Controllers.ManagerController.GetBudgetInfo(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, info, "success")
}

func (s Server) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var team entity.Team
	if !s.decode(w, r, &team) {
		return
	}

	created, err := s.Controllers.TeamController.CreateTeam(r.Context(), team)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusCreated, created, "success")
}

func (s Server) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	team, err := s.Controllers.TeamController.GetTeamByID(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, team, "success")
}

func (s Server) SetTeamBudget(w http.ResponseWriter, r *http.Request) {
	var req entity.TeamBudgetRequest
	if !s.decode(w, r, &req) {
		return
	}

	budget, err := s.Controllers.TeamController.SetTeamBudget(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, budget, "success")
}

func (s Server) GetTeamBudgetInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.Controllers.TeamController.GetBudgetInfo(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, info, "success")
}

func (s Server) GetTeamItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.Controllers.TeamController.GetItems(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, items, "success")
}

func (s Server) GetTeamBreakdown(w http.ResponseWriter, r *http.Request) {
	rows, err := s.Controllers.TeamController.GetBreakdown(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, rows, "success")
}

func (s Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item entity.BudgetItem
	if !s.decode(w, r, &item) {
		return
	}

	created, err := s.Controllers.BudgetController.CreateItem(r.Context(), chi.URLParam(r, "id"), item)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusCreated, created, "success")
}

func (s Server) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var item entity.BudgetItem
	if !s.decode(w, r, &item) {
		return
	}

	updated, err := s.Controllers.BudgetController.UpdateItem(r.Context(), chi.URLParam(r, "id"), item)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, updated, "success")
}

func (s Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.Controllers.BudgetController.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, "Item deleted", "success")
}

func (s Server) AddTravel(w http.ResponseWriter, r *http.Request) {
	var detail entity.TravelDetail
	if !s.decode(w, r, &detail) {
		return
	}

	item, err := s.Controllers.BudgetController.AddTravel(r.Context(), chi.URLParam(r, "id"), detail)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusCreated, item, "success")
}

func (s Server) AddBusinessTravel(w http.ResponseWriter, r *http.Request) {
	var detail entity.BusinessTravelDetail
	if !s.decode(w, r, &detail) {
		return
	}

	item, err := s.Controllers.BudgetController.AddBusinessTravel(r.Context(), chi.URLParam(r, "id"), detail)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusCreated, item, "success")
}

func (s Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Controllers.CategoryController.GetCategories(chi.URLParam(r, "id"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, categories, "success")
}

func (s Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category entity.BudgetCategory
	if !s.decode(w, r, &category) {
		return
	}

	created, err := s.Controllers.CategoryController.CreateCategory(r.Context(), chi.URLParam(r, "id"), category)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusCreated, created, "success")
}

func (s Server) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var category entity.BudgetCategory
	if !s.decode(w, r, &category) {
		return
	}

	updated, err := s.Controllers.CategoryController.UpdateCategory(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "categoryID"), category)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, updated, "success")
}

// DeleteCategory needs ?confirm=true while the category is still referenced by items.
func (s Server) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"

	err := s.Controllers.CategoryController.DeleteCategory(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "categoryID"), confirmed)
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, "Category deleted", "success")
}

func (s Server) GetCategoryUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := s.Controllers.CategoryController.GetUsage(chi.URLParam(r, "id"), chi.URLParam(r, "categoryID"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	s.httpResponse(w, http.StatusOK, usage, "success")
}

func (s Server) GetCountries(w http.ResponseWriter, r *http.Request) {
	s.httpResponse(w, http.StatusOK, s.Controllers.LookupController.GetCountries(r.Context()), "success")
}

func (s Server) GetCities(w http.ResponseWriter, r *http.Request) {
	cities := s.Controllers.LookupController.GetCities(r.Context(), chi.URLParam(r, "code"), r.URL.Query().Get("q"))
	s.httpResponse(w, http.StatusOK, cities, "success")
}

func (s Server) GetAirports(w http.ResponseWriter, r *http.Request) {
	s.httpResponse(w, http.StatusOK, s.Controllers.LookupController.GetAirports(r.Context(), chi.URLParam(r, "code")), "success")
}
