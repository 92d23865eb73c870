package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/danieljhkim/fracgrid/internal/config"
	"github.com/danieljhkim/fracgrid/internal/engine"
	"github.com/danieljhkim/fracgrid/internal/hash"
	"github.com/danieljhkim/fracgrid/internal/render"
)

// tuiUpdate is a test helper that calls Update and returns the concrete Model.
func tuiUpdate(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func typeText(m Model, s string) Model {
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func newTestModel(t *testing.T, initial string) Model {
	t.Helper()
	eng, err := engine.New(config.Default(), hash.NewSHA256Hasher(), nil)
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	var buf bytes.Buffer
	r := render.New(&buf, config.DefaultTheme(), render.WithPlain(true))
	return New(context.Background(), eng, r, initial)
}

func TestNew_BlankInput(t *testing.T) {
	m := newTestModel(t, "")

	if m.Result() != nil {
		t.Errorf("expected nil result for blank input, got %+v", m.Result())
	}
	if m.Renders() != 0 {
		t.Errorf("expected no renders, got %d", m.Renders())
	}
	if !strings.Contains(m.View(), "esc quit") {
		t.Errorf("view missing help line:\n%s", m.View())
	}
}

func TestNew_InitialExpression(t *testing.T) {
	m := newTestModel(t, "1/4 + 2/3")

	if m.Result() == nil || !m.Result().OK() {
		t.Fatalf("expected OK result, got %+v", m.Result())
	}
	if !strings.Contains(m.View(), "11/12") {
		t.Errorf("view missing sum:\n%s", m.View())
	}
}

func TestTypingRecomputes(t *testing.T) {
	m := newTestModel(t, "")

	m = typeText(m, "1/2+1/3")
	if m.Value() != "1/2+1/3" {
		t.Fatalf("Value() = %q", m.Value())
	}
	if m.Result() == nil || m.Result().Status != engine.StatusOK {
		t.Fatalf("expected OK result, got %+v", m.Result())
	}
	if !strings.Contains(m.View(), "5/6") {
		t.Errorf("view missing sum:\n%s", m.View())
	}
}

func TestErrorReplacesGrid(t *testing.T) {
	m := newTestModel(t, "1/2 + 1/3")
	if !strings.Contains(m.View(), "AA") {
		t.Fatalf("expected grid in view:\n%s", m.View())
	}

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Value() != "1/2 + 1/" {
		t.Fatalf("Value() = %q", m.Value())
	}
	if m.Result().Status != engine.StatusParseFailure {
		t.Fatalf("Status = %q, want parse_failure", m.Result().Status)
	}

	view := m.View()
	if !strings.Contains(view, render.Message(engine.StatusParseFailure)) {
		t.Errorf("view missing parse failure message:\n%s", view)
	}
	if strings.Contains(view, "AA") || strings.Contains(view, "BB") {
		t.Errorf("stale grid shown with error:\n%s", view)
	}
}

func TestEquivalentEditSkipsRedraw(t *testing.T) {
	m := newTestModel(t, "1/2+1/3")
	before := m.Renders()

	m = typeText(m, " ")
	if m.Value() != "1/2+1/3 " {
		t.Fatalf("Value() = %q", m.Value())
	}
	if m.Renders() != before {
		t.Errorf("Renders() = %d, want %d after whitespace edit", m.Renders(), before)
	}

	m = typeText(m, "x")
	if m.Renders() != before+1 {
		t.Errorf("Renders() = %d, want %d after breaking edit", m.Renders(), before+1)
	}
}

func TestClearingInputClearsResult(t *testing.T) {
	m := newTestModel(t, "1/2")
	for i := 0; i < 3; i++ {
		m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	if m.Value() != "" {
		t.Fatalf("Value() = %q, want empty", m.Value())
	}
	if m.Result() != nil {
		t.Errorf("expected nil result after clearing input, got %+v", m.Result())
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Width() != 120 {
		t.Errorf("Width() = %d, want 120", m.Width())
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel(t, "1/2 + 1/3")
		_, cmd := tuiUpdate(m, tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("expected quit command for %v", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %v did not quit", key)
		}
	}
}

func TestQTypesInsteadOfQuitting(t *testing.T) {
	m := newTestModel(t, "")
	m = typeText(m, "q")
	if m.Value() != "q" {
		t.Errorf("Value() = %q, want q", m.Value())
	}
}
