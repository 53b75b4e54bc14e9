package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/report"
)

type reportKind int

const (
	reportSpending reportKind = iota
	reportCashflow
	reportNetWorth
	reportKinds
)

func (k reportKind) String() string {
	switch k {
	case reportSpending:
		return "Spending"
	case reportCashflow:
		return "Cashflow"
	case reportNetWorth:
		return "Net Worth"
	}

	return "Unknown"
}

const reportMonths = 6

type ReportsModel struct {
	CommonModel
	reportService *report.Service

	kind    reportKind
	period  Period
	table   table.Model
	loading bool
	err     error

	// Spending breakdown of the last month in the period.
	byCategory []report.CategoryTotal
}

func NewReportsModel(svc *report.Service) ReportsModel {
	m := ReportsModel{
		reportService: svc,
		period:        NewPeriod(time.Now(), reportMonths),
		loading:       true,
	}
	m.table = newTable(m.columns())

	return m
}

func (m ReportsModel) Title() string { return "Reports" }

func (m ReportsModel) ShortHelp() string {
	return "Esc: back | Tab: switch report | ←/→: shift period | r: refresh"
}

func (m ReportsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ReportsModel) columns() []table.Column {
	switch m.kind {
	case reportCashflow:
		return []table.Column{
			{Title: "Month", Width: 10},
			{Title: "Income", Width: 14},
			{Title: "Spend", Width: 14},
			{Title: "Net", Width: 14},
			{Title: "Rolling", Width: 14},
		}
	case reportNetWorth:
		return []table.Column{
			{Title: "Month", Width: 10},
			{Title: "Assets", Width: 14},
			{Title: "Liabilities", Width: 14},
			{Title: "Net", Width: 14},
		}
	default:
		return []table.Column{
			{Title: "Month", Width: 10},
			{Title: "Total", Width: 14},
		}
	}
}

func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		if msg.kind != m.kind || msg.period != m.period {
			return m, nil
		}

		m.loading = false
		m.err = msg.err
		m.byCategory = msg.byCategory
		m.table.SetRows(msg.rows)

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-14, 5))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "tab":
			m.kind = (m.kind + 1) % reportKinds
			return m.reload()
		case "shift+tab":
			m.kind = (m.kind + reportKinds - 1) % reportKinds
			return m.reload()
		case "left", "h":
			m.period = m.period.Shift(-1)
			return m.reload()
		case "right", "l":
			m.period = m.period.Shift(1)
			return m.reload()
		case "r":
			return m.reload()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ReportsModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())

	return m, m.loadCmd()
}

func (m ReportsModel) View() string {
	tabs := make([]string, 0, reportKinds)
	for k := range reportKinds {
		label := k.String()
		if k == m.kind {
			label = activeStyle("[" + label + "]")
		}

		tabs = append(tabs, label)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs[0], "  ", tabs[1], "  ", tabs[2])
	header += fmt.Sprintf("\nPeriod: ← %s →", activeStyle(m.period.String()))

	var body string

	switch {
	case m.loading:
		body = "Loading report..."
	case m.err != nil:
		body = errorStyle(fmt.Sprintf("Error: %v", m.err))
	default:
		body = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View())

		if m.kind == reportSpending && len(m.byCategory) > 0 {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.viewByCategory())
		}
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			body,
		),
	)
}

func (m ReportsModel) viewByCategory() string {
	s := lipgloss.NewStyle().Bold(true).Render("By category, "+month.Format(m.period.End)) + "\n\n"
	for _, c := range m.byCategory {
		s += fmt.Sprintf("%-20s %12s\n", c.CategoryName, FormatAmount(c.Total))
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(s)
}

// Messages

type reportLoadedMsg struct {
	kind       reportKind
	period     Period
	rows       []table.Row
	byCategory []report.CategoryTotal
	err        error
}

func (m ReportsModel) loadCmd() tea.Cmd {
	kind, period := m.kind, m.period

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		msg := reportLoadedMsg{kind: kind, period: period}
		msg.rows, msg.byCategory, msg.err = m.fetch(ctx, kind, period)

		return msg
	}
}

func (m ReportsModel) fetch(ctx context.Context, kind reportKind, period Period) ([]table.Row, []report.CategoryTotal, error) {
	from, to := period.Tokens()

	switch kind {
	case reportCashflow:
		points, err := m.reportService.Cashflow(ctx, from, to)
		if err != nil {
			return nil, nil, err
		}

		rows := make([]table.Row, len(points))
		for i, p := range points {
			rows[i] = table.Row{month.Format(p.Month), FormatAmount(p.Income), FormatAmount(p.Spend), FormatAmount(p.Net), FormatAmount(p.Rolling)}
		}

		return rows, nil, nil

	case reportNetWorth:
		points, err := m.reportService.NetWorth(ctx, from, to)
		if err != nil {
			return nil, nil, err
		}

		rows := make([]table.Row, len(points))
		for i, p := range points {
			rows[i] = table.Row{month.Format(p.Month), FormatAmount(p.Assets), FormatAmount(p.Liabilities), FormatAmount(p.Net)}
		}

		return rows, nil, nil

	default:
		rep, err := m.reportService.Spending(ctx, from, to, to)
		if err != nil {
			return nil, nil, err
		}

		rows := make([]table.Row, len(rep.Trend))
		for i, p := range rep.Trend {
			rows[i] = table.Row{month.Format(p.Month), FormatAmount(p.Total)}
		}

		return rows, rep.ByCategory, nil
	}
}
