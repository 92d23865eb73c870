package grid

import "strings"

// Category tags a single cell.
type Category string

const (
	Empty    Category = "empty"
	First    Category = "first"
	Second   Category = "second"
	Overflow Category = "overflow"
)

// Glyph returns the single-character form of the category used by
// Layout.String.
func (c Category) Glyph() byte {
	switch c {
	case First:
		return 'A'
	case Second:
		return 'B'
	case Overflow:
		return '+'
	default:
		return '.'
	}
}

// Layout is a Rows x Cols arrangement of cells stored in row-major order.
type Layout struct {
	Rows  int        `json:"rows" yaml:"rows"`
	Cols  int        `json:"cols" yaml:"cols"`
	Cells []Category `json:"cells" yaml:"cells"`
}

func newLayout(rows, cols int) Layout {
	cells := make([]Category, rows*cols)
	for i := range cells {
		cells[i] = Empty
	}
	return Layout{Rows: rows, Cols: cols, Cells: cells}
}

// At returns the category of the cell at (row, col).
func (l Layout) At(row, col int) Category {
	return l.Cells[row*l.Cols+col]
}

func (l Layout) set(row, col int, c Category) {
	l.Cells[row*l.Cols+col] = c
}

// Count returns the number of cells tagged c.
func (l Layout) Count(c Category) int {
	n := 0
	for _, cell := range l.Cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Size returns the number of cells.
func (l Layout) Size() int {
	return len(l.Cells)
}

// Row returns a copy of the categories in one row.
func (l Layout) Row(row int) []Category {
	out := make([]Category, l.Cols)
	copy(out, l.Cells[row*l.Cols:(row+1)*l.Cols])
	return out
}

// String renders the layout one row per line using Category.Glyph.
func (l Layout) String() string {
	var b strings.Builder
	b.Grow(l.Rows * (l.Cols + 1))
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			b.WriteByte(l.At(row, col).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
