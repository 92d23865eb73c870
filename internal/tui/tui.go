// Package tui implements the interactive live-edit prompt.
//
// Every edit to the expression re-runs the engine and replaces the previous
// result wholesale; the model never mixes grids from one expression with the
// status of another. Rendered output is cached by result fingerprint so
// edits that do not change the outcome (whitespace, cursor moves) skip the
// redraw.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danieljhkim/fracgrid/internal/engine"
	"github.com/danieljhkim/fracgrid/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f44"))
)

// Model is the bubbletea model for the live-edit prompt.
type Model struct {
	ctx      context.Context
	engine   *engine.Engine
	renderer *render.Renderer
	input    textinput.Model

	result      *engine.VisualizeResult
	err         error
	fingerprint string
	view        string
	renders     int

	width int
}

// New creates a Model seeded with initial.
func New(ctx context.Context, eng *engine.Engine, r *render.Renderer, initial string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "1/4 + 2/3"
	ti.CharLimit = 64
	ti.Focus()

	m := Model{
		ctx:      ctx,
		engine:   eng,
		renderer: r,
		input:    ti,
	}
	if initial != "" {
		m.input.SetValue(initial)
		m.input.CursorEnd()
		m.refresh()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	opts := m.engine.Options()
	b.WriteString(titleStyle.Render("fracgrid"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s resolution, %s parsing, overflow %s",
		opts.Resolution, m.engine.ParsePolicy(), opts.Overflow)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	switch {
	case m.err != nil:
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	case m.result != nil:
		b.WriteString(m.view)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc quit"))
	b.WriteString("\n")
	return b.String()
}

// refresh recomputes the result for the current input. Blank input clears
// the result instead of reporting a parse failure.
func (m *Model) refresh() {
	m.result, m.err = nil, nil

	expr := m.input.Value()
	if strings.TrimSpace(expr) == "" {
		m.fingerprint, m.view = "", ""
		return
	}

	result, err := m.engine.Visualize(m.ctx, &engine.VisualizeRequest{Expression: expr})
	if result == nil {
		m.err = err
		m.fingerprint, m.view = "", ""
		return
	}

	m.result = result
	if result.Fingerprint != m.fingerprint {
		m.fingerprint = result.Fingerprint
		m.view = m.renderer.Render(result)
		m.renders++
	}
}

// Value returns the current expression text.
func (m Model) Value() string {
	return m.input.Value()
}

// Result returns the latest result, or nil for blank input.
func (m Model) Result() *engine.VisualizeResult {
	return m.result
}

// Renders returns how many times the result view has been redrawn.
func (m Model) Renders() int {
	return m.renders
}

// Width returns the last reported terminal width.
func (m Model) Width() int {
	return m.width
}

// Run starts the live-edit prompt on in/out and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, eng *engine.Engine, r *render.Renderer, initial string, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(ctx, eng, r, initial),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return err
}
