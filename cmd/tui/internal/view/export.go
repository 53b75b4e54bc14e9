package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budgeter/internal/export"
)

type exportState int

const (
	exportStateForm exportState = iota
	exportStateExporting
	exportStateResult
)

type exportInput struct {
	preset PeriodPreset
	dir    string
}

type ExportModel struct {
	CommonModel
	exportService *export.Service

	state   exportState
	err     error
	input   *exportInput
	form    *huh.Form
	spinner spinner.Model
	summary string
}

func NewExportModel(svc *export.Service) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	in := &exportInput{preset: PresetThisMonth, dir: "./exports"}

	return ExportModel{
		exportService: svc,
		state:         exportStateForm,
		input:         in,
		form:          buildExportForm(in),
		spinner:       s,
	}
}

func (m ExportModel) Title() string { return "Export Spends" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.state != exportStateExporting {
		return m, Back
	}

	switch m.state {
	case exportStateForm:
		return m.updateForm(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	}

	return m, nil
}

func (m ExportModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting
	m.err = nil

	period := m.input.preset.Period(time.Now())

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(period, m.input.dir))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.summary = result.body

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func buildExportForm(in *exportInput) *huh.Form {
	presets := []PeriodPreset{PresetThisMonth, PresetLastMonth, PresetLastQuarter, PresetLastYear}

	options := make([]huh.Option[PeriodPreset], len(presets))
	for i, p := range presets {
		options[i] = huh.NewOption(p.String(), p)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[PeriodPreset]().
				Title("Period").
				Options(options...).
				Value(&in.preset),
			huh.NewInput().
				Title("Output Directory").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./exports").
				Value(&in.dir),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Exporting spends...", m.spinner.View()),
		)
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Export Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", m.summary),
	)
}

type exportResultMsg struct {
	body string
	err  error
}

const exportTimeout = 2 * time.Minute

func (m ExportModel) runExportCmd(period Period, dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		from, to := period.Tokens()

		r, spends, err := m.exportService.Export(ctx, from, to)
		if err != nil {
			return exportResultMsg{err: err}
		}

		path, err := writeExport(dir, export.Filename(r), func(f *os.File) error {
			return export.WriteCSV(f, spends)
		})
		if err != nil {
			return exportResultMsg{err: err}
		}

		return exportResultMsg{body: fmt.Sprintf("Wrote %d spends to %s", len(spends), path)}
	}
}

func writeExport(dir, name string, write func(f *os.File) error) (string, error) {
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)

		return "", fmt.Errorf("writing export file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}

	return path, nil
}
