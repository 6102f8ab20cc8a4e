package metrics

import (
	"github.com/adamanr/budget_planner/internal/budget"
	"github.com/adamanr/budget_planner/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

type StateSource interface {
	State() store.State
}

// BudgetCollector reports per-organization budget figures computed at scrape time.
// Series are keyed by organization id because names are not unique.
type BudgetCollector struct {
	source    StateSource
	total     *prometheus.Desc
	allocated *prometheus.Desc
	spent     *prometheus.Desc
	remaining *prometheus.Desc
}

func NewBudgetCollector(source StateSource) *BudgetCollector {
	labels := []string{"organization_id", "organization"}

	return &BudgetCollector{
		source:    source,
		total:     prometheus.NewDesc("budget_organization_total", "Total budget of the organization", labels, nil),
		allocated: prometheus.NewDesc("budget_organization_allocated", "Sum of budget item amounts in the organization", labels, nil),
		spent:     prometheus.NewDesc("budget_organization_spent", "Sum of budget item spending in the organization", labels, nil),
		remaining: prometheus.NewDesc("budget_organization_remaining", "Organization total budget minus spent", labels, nil),
	}
}

func (c *BudgetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.total
	ch <- c.allocated
	ch <- c.spent
	ch <- c.remaining
}

func (c *BudgetCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.source.State()

	for _, org := range st.Organizations {
		info := budget.OrganizationInfo(st, org.ID)

		ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, org.TotalBudget.InexactFloat64(), org.ID, org.Name)
		ch <- prometheus.MustNewConstMetric(c.allocated, prometheus.GaugeValue, info.Allocated.InexactFloat64(), org.ID, org.Name)
		ch <- prometheus.MustNewConstMetric(c.spent, prometheus.GaugeValue, info.Spent.InexactFloat64(), org.ID, org.Name)
		ch <- prometheus.MustNewConstMetric(c.remaining, prometheus.GaugeValue, info.Remaining.InexactFloat64(), org.ID, org.Name)
	}
}
