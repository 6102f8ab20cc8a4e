package main

import (
	"fmt"
	"strings"

	"github.com/adamanr/budget_planner/internal/budget"
	"github.com/adamanr/budget_planner/internal/store"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorAccent = lipgloss.Color("#3AA99F")
	colorRed    = lipgloss.Color("#D14D41")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	overStyle   = numberStyle.Foreground(colorRed)
)

var flagOrganization string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print budget totals per department",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		s, _, closeStore, err := openStore(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		out, err := renderReport(s.State(), flagOrganization)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&flagOrganization, "org", "o", "", "Organization id or name")
}

// renderReport draws one table per organization matching filter (all when empty).
func renderReport(st store.State, filter string) (string, error) {
	var b strings.Builder
	matched := 0

	for _, org := range st.Organizations {
		if filter != "" && org.ID != filter && !strings.EqualFold(org.Name, filter) {
			continue
		}
		matched++

		info := budget.OrganizationInfo(st, org.ID)
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", org.Name, org.LeaderName)))
		b.WriteString("\n")

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
			Headers("Department", "Head", "Budget", "Allocated", "Spent", "Remaining")

		var remaining []decimal.Decimal
		for _, dept := range st.DepartmentsByOrganization(org.ID) {
			d := budget.DepartmentInfo(st, dept.ID)
			remaining = append(remaining, d.Remaining)
			t.Row(dept.Name, dept.HeadName, money(dept.TotalBudget), money(d.Allocated), money(d.Spent), money(d.Remaining))
		}
		remaining = append(remaining, info.Remaining)
		t.Row("Total", org.LeaderName, money(org.TotalBudget), money(info.Allocated), money(info.Spent), money(info.Remaining))

		t.StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col < 2:
				return cellStyle
			case col == 5 && row >= 0 && row < len(remaining) && remaining[row].IsNegative():
				return overStyle
			default:
				return numberStyle
			}
		})

		b.WriteString(t.Render())
		b.WriteString("\n\n")
	}

	if matched == 0 {
		if filter != "" {
			return "", fmt.Errorf("organization %q not found", filter)
		}
		return "No organizations\n", nil
	}

	return b.String(), nil
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
