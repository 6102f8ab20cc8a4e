package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adamanr/budget_planner/internal/controllers"
	"github.com/adamanr/budget_planner/internal/entity"
	logging "github.com/adamanr/budget_planner/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	deps        *controllers.Dependens
	Controllers *controllers.Controllers
}

func NewServer(deps *controllers.Dependens) *Server {
	return &Server{
		deps:        deps,
		Controllers: controllers.NewControllers(deps),
	}
}

// Router wires every route. gatherer backs /metrics.
func (s Server) Router(gatherer prometheus.Gatherer) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logging.Middleware(s.deps.Logger))
	if s.deps.Metrics != nil {
		r.Use(s.deps.Metrics.Middleware)
	}

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", s.Healthz)

	if s.deps.Config.Auth.Enabled {
		r.Post("/auth/login", s.AuthLogin)
	}

	r.Group(func(r chi.Router) {
		if s.deps.Config.Auth.Enabled {
			r.Use(s.requireAuth)
			r.Post("/auth/logout", s.AuthLogout)
		}

		r.Route("/organizations", func(r chi.Router) {
			r.Get("/", s.GetOrganizations)
			r.Post("/", s.CreateOrganization)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetOrganizationByID)
				r.Get("/budget-info", s.GetOrganizationBudgetInfo)
				r.Get("/spent", s.GetOrganizationSpent)
				r.Get("/departments", s.GetDepartments)
				r.Post("/departments", s.CreateDepartment)
				r.Get("/categories", s.GetCategories)
				r.Post("/categories", s.CreateCategory)
				r.Put("/categories/{categoryID}", s.UpdateCategory)
				r.Delete("/categories/{categoryID}", s.DeleteCategory)
				r.Get("/categories/{categoryID}/usage", s.GetCategoryUsage)
			})
		})

		r.Route("/departments/{id}", func(r chi.Router) {
			r.Get("/", s.GetDepartmentByID)
			r.Put("/", s.UpdateDepartment)
			r.Get("/budget-info", s.GetDepartmentBudgetInfo)
			r.Get("/managers", s.GetManagers)
		})

		r.Post("/managers", s.CreateManager)
		r.Get("/managers/{id}/teams", s.GetTeams)
		r.Get("/managers/{id}/budget-info", s.GetManagerBudgetInfo)

		r.Post("/teams", s.CreateTeam)
		r.Route("/teams/{id}", func(r chi.Router) {
			r.Get("/", s.GetTeamByID)
			r.Put("/budget", s.SetTeamBudget)
			r.Get("/budget-info", s.GetTeamBudgetInfo)
			r.Get("/items", s.GetTeamItems)
			r.Get("/breakdown", s.GetTeamBreakdown)
		})

		r.Post("/budgets/{id}/items", s.CreateItem)
		r.Put("/items/{id}", s.UpdateItem)
		r.Delete("/items/{id}", s.DeleteItem)
		r.Post("/items/{id}/travel", s.AddTravel)
		r.Post("/items/{id}/business-travel", s.AddBusinessTravel)

		r.Get("/lookup/countries", s.GetCountries)
		r.Get("/lookup/countries/{code}/cities", s.GetCities)
		r.Get("/lookup/countries/{code}/airports", s.GetAirports)
	})

	return r
}

func (s Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.deps.Logger.Warn("Authorization header missing", slog.String("path", r.URL.Path))
			s.httpResponse(w, http.StatusUnauthorized, "Unauthorized", "error")
			return
		}

		if _, err := s.Controllers.AuthController.CheckUserToken(r.Context(), authHeader); err != nil {
			s.deps.Logger.Warn("Error checking token", slog.String("error", err.Error()))
			s.httpResponse(w, http.StatusUnauthorized, "Unauthorized", "error")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// errorStatus maps validation kinds to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrDuplicateName), errors.Is(err, entity.ErrConfirmationRequired):
		return http.StatusConflict
	case errors.Is(err, entity.ErrBudgetExceeded):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s Server) httpError(w http.ResponseWriter, err error) {
	status := errorStatus(err)

	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) {
		s.httpResponse(w, status, map[string]string{"error": "Internal server error"}, "error")
		return
	}

	data := map[string]string{"error": vErr.Message}
	if errors.Is(err, entity.ErrConfirmationRequired) {
		data["confirm"] = "Repeat the request with ?confirm=true to proceed"
	}
	s.httpResponse(w, status, data, "error")
}

func (s Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.httpResponse(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"}, "error")
		return false
	}
	return true
}

func (s Server) httpResponse(w http.ResponseWriter, status int, data any, respType string) {
	resp := map[string]any{
		"status": status,
		"type":   respType,
		"data":   data,
	}

	respData, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		s.deps.Logger.Error("Error marshaling response", slog.String("error", marshalErr.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(respData); err != nil {
		s.deps.Logger.Error("Error writing response", slog.String("error", err.Error()))
	}
}
