// Package tui renders the questionnaire in the terminal with bubbletea.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/pension-quest/internal/projection"
	"github.com/iwvelando/pension-quest/internal/wizard"
	"github.com/iwvelando/pension-quest/pkg/format"
)

const progressBarWidth = 32

// Model is the bubbletea model wrapping a wizard.State.
type Model struct {
	state    wizard.State
	input    textinput.Model
	now      func() time.Time
	errMsg   string
	quitting bool
	styles   Styles
}

// New builds the questionnaire model. now is consulted on every submission.
func New(as projection.Assumptions, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 32
	ti.Focus()

	m := Model{
		state:  wizard.NewWithAssumptions(as),
		input:  ti,
		now:    now,
		styles: DefaultStyles(),
	}
	m.applyPrompt()
	return m
}

// State returns the wizard state reached so far.
func (m Model) State() wizard.State {
	return m.state
}

// Aborted reports whether the user quit before finishing.
func (m Model) Aborted() bool {
	return m.quitting && !m.state.Complete()
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.state.Complete() {
				m.quitting = true
				return m, tea.Quit
			}
			return m.submit(), nil
		}
		if m.state.Complete() && key.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.state.Complete() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() Model {
	next, outcome := wizard.Submit(m.state, m.input.Value(), m.now())
	if !outcome.Valid {
		m.errMsg = outcome.Error
		return m
	}
	m.state = next
	m.errMsg = ""
	m.input.Reset()
	if m.state.Complete() {
		m.input.Blur()
	}
	m.applyPrompt()
	return m
}

func (m *Model) applyPrompt() {
	if p, ok := m.state.Prompt(); ok {
		m.input.Placeholder = p.Placeholder
	}
}

// View renders the current step or the results.
func (m Model) View() string {
	if m.state.Complete() {
		return m.resultsView()
	}

	prompt, _ := m.state.Prompt()
	var b strings.Builder
	b.WriteString(m.styles.Progress.Render(m.state.Progress()))
	b.WriteString("\n")
	b.WriteString(m.progressBar())
	b.WriteString("\n")
	b.WriteString(m.styles.Question.Render(prompt.Question))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Hint.Render(prompt.Hint))
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("enter: " + prompt.Action + " • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) progressBar() string {
	filled := int(m.state.ProgressFraction() * progressBarWidth)
	return m.styles.BarFilled.Render(strings.Repeat("█", filled)) +
		m.styles.BarEmpty.Render(strings.Repeat("░", progressBarWidth-filled))
}

func (m Model) resultsView() string {
	p := m.state.Projection
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Your Financial Quest Journey"))
	b.WriteString("\n")
	b.WriteString(m.styles.Description.Render("Here's how your future looks based on your choices"))
	b.WriteString("\n\n")
	if p != nil {
		m.stat(&b, "Estimated Pension at Retirement", format.PerMonth(p.MonthlyPension),
			"Based on your years of service and salary history")
		m.stat(&b, "Years Until Retirement", format.Years(p.YearsUntilRetirement),
			"Make the most of your teaching career")
	}
	b.WriteString(m.styles.Help.Render("enter/q: exit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) stat(b *strings.Builder, label, value, description string) {
	b.WriteString(m.styles.StatLabel.Render(label))
	b.WriteString("\n")
	b.WriteString(m.styles.StatValue.Render(value))
	b.WriteString("\n")
	b.WriteString(m.styles.Description.Render(description))
	b.WriteString("\n\n")
}

// Run shows the questionnaire on the terminal and returns the final state.
func Run(as projection.Assumptions, now func() time.Time, opts ...tea.ProgramOption) (Model, error) {
	final, err := tea.NewProgram(New(as, now), opts...).Run()
	if err != nil {
		return Model{}, err
	}
	return final.(Model), nil
}
