package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/category"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

type spendFormState int

const (
	spendStateLoading spendFormState = iota
	spendStateForm
	spendStateSaving
	spendStateResult
)

// autoCategory selects the category from the payee rules.
const autoCategory = ""

// spendInput is shared by pointer so huh keeps writing into the same values
// after the model is copied by Update.
type spendInput struct {
	amount    string
	date      string
	payee     string
	category  string
	notes     string
	recurring bool
}

type SpendFormModel struct {
	CommonModel
	spendService    *spend.Service
	categoryService *category.Service

	state   spendFormState
	input   *spendInput
	form    *huh.Form
	spinner spinner.Model
	saved   *spend.Spend
	err     error
}

func NewSpendFormModel(spends *spend.Service, categories *category.Service) SpendFormModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return SpendFormModel{
		spendService:    spends,
		categoryService: categories,
		state:           spendStateLoading,
		input:           &spendInput{date: FormatDate(time.Now())},
		spinner:         s,
	}
}

func (m SpendFormModel) Title() string { return "Add Spend" }

func (m SpendFormModel) ShortHelp() string {
	switch m.state {
	case spendStateResult:
		return "Esc: back | n: add another"
	case spendStateSaving:
		return "Saving..."
	}

	return "Esc: back | Enter: next"
}

func (m SpendFormModel) Init() tea.Cmd {
	return m.loadCategoriesCmd()
}

func (m SpendFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		if msg.err != nil {
			m.state = spendStateResult
			m.err = msg.err

			return m, nil
		}

		m.form = buildSpendForm(m.input, msg.categories)
		m.state = spendStateForm

		return m, m.form.Init()

	case spendSavedMsg:
		m.state = spendStateResult
		m.saved = msg.spend
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == spendStateResult && msg.String() == "n" {
			next := NewSpendFormModel(m.spendService, m.categoryService)
			return next, next.Init()
		}
	}

	switch m.state {
	case spendStateForm:
		return m.updateForm(msg)
	case spendStateSaving, spendStateLoading:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m SpendFormModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	params, err := m.input.params()
	if err != nil {
		m.state = spendStateResult
		m.err = err

		return m, nil
	}

	m.state = spendStateSaving

	return m, tea.Batch(m.spinner.Tick, m.saveCmd(params))
}

func buildSpendForm(in *spendInput, categories []*category.Category) *huh.Form {
	options := make([]huh.Option[string], 0, len(categories)+1)
	options = append(options, huh.NewOption("auto (from payee rule)", autoCategory))

	for _, c := range categories {
		options = append(options, huh.NewOption(c.Name, c.ID.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Validate(func(s string) error {
					_, err := ParseAmount(s)
					return err
				}).
				Value(&in.amount),
			huh.NewInput().
				Title("Date").
				Placeholder(time.DateOnly).
				Validate(func(s string) error {
					_, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
					return err
				}).
				Value(&in.date),
			huh.NewInput().
				Title("Payee").
				Value(&in.payee),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Validate(func(s string) error {
					if s == autoCategory && strings.TrimSpace(in.payee) == "" {
						return errors.New("pick a category or enter a payee")
					}
					return nil
				}).
				Value(&in.category),
			huh.NewInput().
				Title("Notes").
				Value(&in.notes),
			huh.NewConfirm().
				Title("Recurring?").
				Value(&in.recurring),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (in *spendInput) params() (spend.CreateParams, error) {
	amount, err := ParseAmount(in.amount)
	if err != nil {
		return spend.CreateParams{}, err
	}

	spentAt, err := time.Parse(time.DateOnly, strings.TrimSpace(in.date))
	if err != nil {
		return spend.CreateParams{}, fmt.Errorf("invalid date %q", in.date)
	}

	params := spend.CreateParams{
		Amount:    amount,
		SpentAt:   spentAt,
		Notes:     in.notes,
		Recurring: in.recurring,
		PayeeName: in.payee,
	}

	if in.category != autoCategory {
		id, err := uuid.Parse(in.category)
		if err != nil {
			return spend.CreateParams{}, fmt.Errorf("invalid category: %w", err)
		}

		params.CategoryID = &id
	}

	return params, nil
}

func (m SpendFormModel) View() string {
	switch m.state {
	case spendStateLoading:
		return lipgloss.NewStyle().Padding(1).Render(m.spinner.View() + " Loading categories...")
	case spendStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	case spendStateSaving:
		return lipgloss.NewStyle().Padding(1).Render(m.spinner.View() + " Saving spend...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")).Render("Spend saved")
	body := fmt.Sprintf("%s  %s  %s", FormatDate(m.saved.SpentAt), activeStyle(m.saved.CategoryName), FormatAmount(m.saved.Amount))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body))
}

// Messages

type categoriesLoadedMsg struct {
	categories []*category.Category
	err        error
}

type spendSavedMsg struct {
	spend *spend.Spend
	err   error
}

func (m SpendFormModel) loadCategoriesCmd() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		categories, err := m.categoryService.List(ctx)

		return categoriesLoadedMsg{categories: categories, err: err}
	})
}

func (m SpendFormModel) saveCmd(params spend.CreateParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.spendService.Create(ctx, params)

		return spendSavedMsg{spend: s, err: err}
	}
}
