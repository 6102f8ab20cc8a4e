package metrics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	Rejections   *prometheus.CounterVec
}

// New registers the request and rejection counters and the budget collector on reg.
func New(reg prometheus.Registerer, source StateSource) (*Metrics, error) {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_validation_rejections_total",
				Help: "Mutations rejected by budget validation, by reason",
			},
			[]string{"kind"},
		),
	}

	collectors := []prometheus.Collector{m.HTTPRequests, m.Rejections}
	if source != nil {
		collectors = append(collectors, NewBudgetCollector(source))
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Middleware counts requests by route pattern so ids do not explode the label set.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		m.HTTPRequests.WithLabelValues(path, r.Method, strconv.Itoa(ww.Status())).Inc()
	})
}

// RecordRejection counts err when it is a validation rejection.
func (m *Metrics) RecordRejection(err error) {
	if m == nil {
		return
	}

	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) {
		return
	}

	m.Rejections.WithLabelValues(RejectionKind(err)).Inc()
}

func RejectionKind(err error) string {
	switch {
	case errors.Is(err, entity.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, entity.ErrBudgetExceeded):
		return "budget_exceeded"
	case errors.Is(err, entity.ErrNotFound):
		return "not_found"
	case errors.Is(err, entity.ErrInvalid):
		return "invalid"
	case errors.Is(err, entity.ErrConfirmationRequired):
		return "confirmation_required"
	default:
		return "other"
	}
}
