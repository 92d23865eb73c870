// Package render draws visualize results in a terminal.
//
// Colored output paints each cell with its category's theme color using
// lipgloss. Plain output, used for --plain and whenever the terminal has no
// color support, writes one glyph per cell instead (A first, B second,
// + overflow, . empty).
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/danieljhkim/fracgrid/internal/config"
	"github.com/danieljhkim/fracgrid/internal/engine"
	"github.com/danieljhkim/fracgrid/internal/fraction"
	"github.com/danieljhkim/fracgrid/internal/grid"
)

// cellWidth is the number of terminal columns per cell; two columns make a
// cell roughly square.
const cellWidth = 2

// Renderer turns results into terminal text.
type Renderer struct {
	lg    *lipgloss.Renderer
	theme config.Theme
	plain bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlain forces glyph output.
func WithPlain(plain bool) Option {
	return func(r *Renderer) {
		r.plain = plain
	}
}

// WithColorProfile overrides the detected terminal color profile.
func WithColorProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.lg.SetColorProfile(p)
	}
}

// New creates a Renderer for output written to w.
func New(w io.Writer, theme config.Theme, opts ...Option) *Renderer {
	r := &Renderer{
		lg:    lipgloss.NewRenderer(w),
		theme: theme,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Plain reports whether the renderer writes glyphs instead of colors.
func (r *Renderer) Plain() bool {
	return r.plain || r.lg.ColorProfile() == termenv.Ascii
}

// Message returns the fixed text shown for a non-OK status. Each status
// has its own message because each asks the user for a different fix.
func Message(s engine.Status) string {
	switch s {
	case engine.StatusParseFailure:
		return "Invalid expression. Enter two fractions like 1/4 + 2/3."
	case engine.StatusInvalidFraction:
		return "Invalid fraction. Denominators must be non-zero and numerators no larger than their denominators."
	case engine.StatusUnrepresentable:
		return "These denominators cannot be shown on the configured grid. Try another resolution."
	case engine.StatusTooLarge:
		return "Expression sums to more than 1."
	case engine.StatusOK:
		return ""
	default:
		return fmt.Sprintf("Unknown status %q.", s)
	}
}

// Render draws a result: the grids for StatusOK, the status message otherwise.
func (r *Renderer) Render(result *engine.VisualizeResult) string {
	if !result.OK() {
		return Message(result.Status) + "\n"
	}

	comp := result.Composition
	sum := comp.Sum
	blocks := []string{
		r.block(comp.Pair.First.String(), comp.First),
		r.block(comp.Pair.Second.String(), comp.Second),
		r.block(sum.String(), comp.Composed),
	}
	for i, l := range comp.Overflow {
		blocks = append(blocks, r.block(fmt.Sprintf("excess %d", i+1), l))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, spaced(blocks)...))
	b.WriteString("\n")
	b.WriteString(Caption(comp))
	b.WriteString("\n")
	return b.String()
}

// Caption summarizes a composition as an equation over the common
// denominator, e.g. "1/4 + 2/3 = 3/12 + 8/12 = 11/12".
func Caption(comp *grid.Composition) string {
	a, b := comp.Pair.First, comp.Pair.Second
	l := comp.LCM
	scaledA := fraction.New(a.Numerator*(l/a.Denominator), l)
	scaledB := fraction.New(b.Numerator*(l/b.Denominator), l)

	caption := fmt.Sprintf("%s + %s = %s + %s = %s", a, b, scaledA, scaledB, comp.Sum)
	if reduced := comp.Sum.Reduce(); reduced != comp.Sum {
		caption += " = " + reduced.String()
	}
	if comp.HasOverflow() {
		excess := fraction.New(comp.ExcessCells, comp.Resolution).Reduce()
		caption += fmt.Sprintf(" (exceeds 1 by %s)", excess)
	}
	return caption
}

// Layout draws a single layout without a title.
func (r *Renderer) Layout(l grid.Layout) string {
	lines := make([]string, l.Rows)
	for row := range lines {
		var b strings.Builder
		for _, c := range l.Row(row) {
			b.WriteString(r.cell(c))
		}
		lines[row] = b.String()
	}
	body := strings.Join(lines, "\n")
	if r.Plain() {
		return body
	}
	return r.lg.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(r.theme.Border)).
		Render(body)
}

func (r *Renderer) block(title string, l grid.Layout) string {
	heading := title
	if !r.Plain() {
		heading = r.lg.NewStyle().Bold(true).Render(title)
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, r.Layout(l))
}

func (r *Renderer) cell(c grid.Category) string {
	if r.Plain() {
		return strings.Repeat(string(c.Glyph()), cellWidth)
	}
	return r.lg.NewStyle().
		Background(lipgloss.Color(r.color(c))).
		Render(strings.Repeat(" ", cellWidth))
}

func (r *Renderer) color(c grid.Category) string {
	switch c {
	case grid.First:
		return r.theme.First
	case grid.Second:
		return r.theme.Second
	case grid.Overflow:
		return r.theme.Overflow
	default:
		return r.theme.Empty
	}
}

// spaced interleaves a two-column gap between blocks.
func spaced(blocks []string) []string {
	out := make([]string, 0, 2*len(blocks)-1)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, b)
	}
	return out
}
