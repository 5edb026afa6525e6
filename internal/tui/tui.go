package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/littler00t/md2dir/md2dir"
	"github.com/littler00t/md2dir/model"
)

// --- Styles ---
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")) // Mauve
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))            // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))           // Red
	pathStyle    = lipgloss.NewStyle()
)

// --- Messages ---
type summaryMsg struct {
	model.Summary
}

type errorMsg struct{ err error }

func (e errorMsg) Error() string { return e.err.Error() }

// --- Model ---
type Model struct {
	app     *md2dir.App
	spinner spinner.Model
	state   state
	summary summaryMsg
	err     error
}

type state int

const (
	stateProcessing state = iota
	stateSummary
	stateError
)

func New(app *md2dir.App) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		app:     app,
		spinner: s,
		state:   stateProcessing,
	}
}

// Err reports the error the run ended with, if any.
func (m Model) Err() error {
	return m.err
}

// Summary reports the result of a completed run.
func (m Model) Summary() model.Summary {
	return m.summary.Summary
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runApp)
}

func (m Model) runApp() tea.Msg {
	summary, err := m.app.Execute()
	if err != nil {
		var detailed *md2dir.DetailedError
		if errors.As(err, &detailed) {
			fmt.Fprintf(os.Stderr, "--- Stack Trace ---\n%s\n", detailed.Stack)
		}
		return errorMsg{err}
	}
	return summaryMsg{summary}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case summaryMsg:
		m.state = stateSummary
		m.summary = msg
		return m, tea.Quit

	case errorMsg:
		m.state = stateError
		m.err = msg
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		if m.state == stateProcessing {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case stateProcessing:
		return fmt.Sprintf("%s Processing...", m.spinner.View())
	case stateError:
		return errorStyle.Render("Error: ", m.err.Error())
	case stateSummary:
		return RenderSummary(m.summary.Summary)
	default:
		return ""
	}
}

// RenderSummary renders an operation summary. It also serves the plain,
// non-interactive path so both surfaces read the same.
func RenderSummary(summary model.Summary) string {
	var b strings.Builder

	if summary.Message != "" {
		b.WriteString(headerStyle.Render(summary.Message))
		b.WriteString("\n")
	}

	if len(summary.Created) > 0 {
		b.WriteString(successStyle.Render("Created:"))
		b.WriteString("\n")
		for _, f := range summary.Created {
			b.WriteString(fmt.Sprintf("  %s\n", pathStyle.Render(f)))
		}
	}
	if len(summary.Modified) > 0 {
		b.WriteString(successStyle.Render("Overwritten:"))
		b.WriteString("\n")
		for _, f := range summary.Modified {
			b.WriteString(fmt.Sprintf("  %s\n", pathStyle.Render(f)))
		}
	}
	if len(summary.Failed) > 0 {
		b.WriteString(errorStyle.Render("Failed:"))
		b.WriteString("\n")
		for _, f := range summary.Failed {
			b.WriteString(fmt.Sprintf("  %s\n", pathStyle.Render(f)))
		}
	}

	return b.String()
}
