package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/budgeter/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/budgeter/internal/account"
	accountStore "github.com/MrJamesThe3rd/budgeter/internal/account/store"
	"github.com/MrJamesThe3rd/budgeter/internal/budget"
	budgetStore "github.com/MrJamesThe3rd/budgeter/internal/budget/store"
	"github.com/MrJamesThe3rd/budgeter/internal/category"
	categoryStore "github.com/MrJamesThe3rd/budgeter/internal/category/store"
	"github.com/MrJamesThe3rd/budgeter/internal/config"
	"github.com/MrJamesThe3rd/budgeter/internal/database"
	"github.com/MrJamesThe3rd/budgeter/internal/export"
	"github.com/MrJamesThe3rd/budgeter/internal/income"
	incomeStore "github.com/MrJamesThe3rd/budgeter/internal/income/store"
	"github.com/MrJamesThe3rd/budgeter/internal/payee"
	payeeStore "github.com/MrJamesThe3rd/budgeter/internal/payee/store"
	"github.com/MrJamesThe3rd/budgeter/internal/report"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
	spendStore "github.com/MrJamesThe3rd/budgeter/internal/spend/store"
)

type model struct {
	categoryService *category.Service
	spendService    *spend.Service
	budgetService   *budget.Service
	reportService   *report.Service
	exportService   *export.Service

	currentView View
	size        tea.WindowSizeMsg

	budgetView  view.BudgetModel
	reportsView view.ReportsModel
	spendView   view.SpendFormModel
	exportView  view.ExportModel
}

type View int

const (
	ViewMenu    View = 0
	ViewBudget  View = 1
	ViewReports View = 2
	ViewSpend   View = 3
	ViewExport  View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	categorySvc := category.NewService(categoryStore.New(db))
	payeeSvc := payee.NewService(payeeStore.New(db), categorySvc)
	spendSvc := spend.NewService(spendStore.New(db), categorySvc, payeeSvc)
	incomeSvc := income.NewService(incomeStore.New(db))
	accountSvc := account.NewService(accountStore.New(db))
	budgetSvc := budget.NewService(budgetStore.New(db), categorySvc, spendSvc)
	reportSvc := report.NewService(spendSvc, incomeSvc, accountSvc, budgetSvc)
	exportSvc := export.NewService(spendSvc, payeeSvc)

	return model{
		categoryService: categorySvc,
		spendService:    spendSvc,
		budgetService:   budgetSvc,
		reportService:   reportSvc,
		exportService:   exportSvc,
		currentView:     ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// open switches to v and replays the last window size so the view can lay
// itself out before the next resize.
func (m model) open(v View, init tea.Cmd) (tea.Model, tea.Cmd) {
	m.currentView = v

	if m.size.Width == 0 {
		return m, init
	}

	next, cmd := m.forward(m.size)

	return next, tea.Batch(init, cmd)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = msg
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.budgetView = view.NewBudgetModel(m.budgetService)
				return m.open(ViewBudget, m.budgetView.Init())
			case "2":
				m.reportsView = view.NewReportsModel(m.reportService)
				return m.open(ViewReports, m.reportsView.Init())
			case "3":
				m.spendView = view.NewSpendFormModel(m.spendService, m.categoryService)
				return m.open(ViewSpend, m.spendView.Init())
			case "4":
				m.exportView = view.NewExportModel(m.exportService)
				return m.open(ViewExport, m.exportView.Init())
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	return m.forward(msg)
}

func (m model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		newModel tea.Model
		cmd      tea.Cmd
	)

	switch m.currentView {
	case ViewBudget:
		newModel, cmd = m.budgetView.Update(msg)
		m.budgetView = newModel.(view.BudgetModel)
	case ViewReports:
		newModel, cmd = m.reportsView.Update(msg)
		m.reportsView = newModel.(view.ReportsModel)
	case ViewSpend:
		newModel, cmd = m.spendView.Update(msg)
		m.spendView = newModel.(view.SpendFormModel)
	case ViewExport:
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

type screen interface {
	Title() string
	ShortHelp() string
	View() string
}

func (m model) View() string {
	var s screen

	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Budgeter TUI\n\n" +
				"1. Monthly Budget\n" +
				"2. Reports\n" +
				"3. Add Spend\n" +
				"4. Export Spends\n\n" +
				"q. Quit",
		)
	case ViewBudget:
		s = m.budgetView
	case ViewReports:
		s = m.reportsView
	case ViewSpend:
		s = m.spendView
	case ViewExport:
		s = m.exportView
	default:
		return "Unknown View"
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 1, 0).Render(s.Title())
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1).Render(s.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, title, s.View(), help)
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
