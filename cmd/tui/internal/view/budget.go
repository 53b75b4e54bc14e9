package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budgeter/internal/budget"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
)

type budgetState int

const (
	budgetStateBrowse budgetState = iota
	budgetStateEdit
)

type BudgetModel struct {
	CommonModel
	budgetService *budget.Service

	state   budgetState
	month   time.Time
	table   table.Model
	lines   []*budget.Line
	form    *huh.Form
	loading bool
	err     error
	status  string
}

func NewBudgetModel(svc *budget.Service) BudgetModel {
	columns := []table.Column{
		{Title: "Category", Width: 24},
		{Title: "Source", Width: 18},
		{Title: "Budget", Width: 12},
		{Title: "Rollover", Width: 12},
		{Title: "Effective", Width: 12},
		{Title: "Target", Width: 12},
	}

	return BudgetModel{
		budgetService: svc,
		month:         month.Start(time.Now()),
		table:         newTable(columns),
		loading:       true,
	}
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m BudgetModel) Title() string { return "Monthly Budget" }

func (m BudgetModel) ShortHelp() string {
	if m.state == budgetStateEdit {
		return "Enter: save | Esc: cancel"
	}

	return "Esc: back | ←/→: month | e: set amount | r: refresh"
}

func (m BudgetModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BudgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case budgetLoadedMsg:
		if !msg.month.Equal(m.month) {
			return m, nil
		}

		m.loading = false
		m.err = msg.err
		m.lines = msg.lines
		m.refreshTable()

		return m, nil

	case budgetSavedMsg:
		m.state = budgetStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = "Saved"

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-10, 5))
		return m, nil
	}

	if m.state == budgetStateEdit {
		return m.updateEdit(msg)
	}

	return m.updateBrowse(msg)
}

func (m BudgetModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "left", "h":
			return m.moveMonth(-1)
		case "right", "l":
			return m.moveMonth(1)
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "e":
			return m.enterEditMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BudgetModel) moveMonth(n int) (tea.Model, tea.Cmd) {
	m.month = month.Add(m.month, n)
	m.loading = true
	m.status = ""

	return m, m.loadCmd()
}

func (m BudgetModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.lines) {
		return m, nil
	}

	amount := FormatAmount(m.lines[idx].Amount)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("%s budget for %s", m.lines[idx].CategoryName, month.Format(m.month))).
				Value(&amount).
				Validate(func(s string) error {
					_, err := ParseAmount(s)
					return err
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = budgetStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m BudgetModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = budgetStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m BudgetModel) View() string {
	header := fmt.Sprintf("Month: ← %s →", activeStyle(month.Format(m.month)))

	var body string

	switch {
	case m.loading:
		body = "Loading budget..."
	case m.err != nil:
		body = errorStyle(fmt.Sprintf("Error: %v", m.err))
	case len(m.lines) == 0:
		body = "No categories yet."
	default:
		body = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		body,
		lipgloss.NewStyle().PaddingTop(1).Render("Total effective: "+FormatAmount(m.totalEffective())),
	)

	if m.state == budgetStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m BudgetModel) totalEffective() int64 {
	var total int64
	for _, l := range m.lines {
		total += l.EffectiveAmount
	}

	return total
}

func (m *BudgetModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.lines))

	for _, l := range m.lines {
		source := string(l.Source)
		if l.CarriedFrom != nil {
			source = "from " + month.Format(*l.CarriedFrom)
		}

		target := "-"
		if l.TargetAmount != nil {
			target = FormatAmount(*l.TargetAmount)
		}

		rows = append(rows, table.Row{
			l.CategoryName,
			source,
			FormatAmount(l.Amount),
			FormatAmount(l.RolloverAmount),
			FormatAmount(l.EffectiveAmount),
			target,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type budgetLoadedMsg struct {
	month time.Time
	lines []*budget.Line
	err   error
}

func (m BudgetModel) loadCmd() tea.Cmd {
	target := m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		lines, err := m.budgetService.ForMonth(ctx, month.Format(target))

		return budgetLoadedMsg{month: target, lines: lines, err: err}
	}
}

type budgetSavedMsg struct {
	err error
}

func (m BudgetModel) saveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.lines) {
		return nil
	}

	categoryID := m.lines[idx].CategoryID
	token := month.Format(m.month)

	amount, err := ParseAmount(m.form.GetString("amount"))
	if err != nil {
		return func() tea.Msg { return budgetSavedMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.budgetService.Upsert(ctx, budget.UpsertParams{
			CategoryID: categoryID,
			Month:      token,
			Amount:     &amount,
		})

		return budgetSavedMsg{err: err}
	}
}
