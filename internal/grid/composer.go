package grid

import (
	"fmt"

	"github.com/danieljhkim/fracgrid/internal/fraction"
)

// Composition is the successful result of composing two fractions.
type Composition struct {
	// Pair is the composed expression
	Pair fraction.Pair `json:"pair" yaml:"pair"`

	// Sum is a + b over lcm(d1, d2), not reduced
	Sum fraction.Fraction `json:"sum" yaml:"sum"`

	// LCM is lcm(d1, d2)
	LCM int `json:"lcm" yaml:"lcm"`

	// Resolution is the working resolution in cells
	Resolution int `json:"resolution" yaml:"resolution"`

	// FirstCells is the first fraction scaled to the working resolution
	FirstCells int `json:"first_cells" yaml:"first_cells"`

	// SecondCells is the second fraction scaled to the working resolution
	SecondCells int `json:"second_cells" yaml:"second_cells"`

	// ExcessCells is the part of the sum beyond one whole, in cells
	ExcessCells int `json:"excess_cells" yaml:"excess_cells"`

	// First is the standalone strip for the first fraction
	First Layout `json:"first" yaml:"first"`

	// Second is the standalone strip for the second fraction
	Second Layout `json:"second" yaml:"second"`

	// Composed is both fractions on one grid of Resolution cells
	Composed Layout `json:"composed" yaml:"composed"`

	// Overflow holds the excess under OverflowRenderExcess
	Overflow []Layout `json:"overflow,omitempty" yaml:"overflow,omitempty"`
}

// HasOverflow reports whether the sum exceeds one whole.
func (c *Composition) HasOverflow() bool {
	return c.ExcessCells > 0
}

// Composer maps fraction pairs onto layouts. It holds only immutable options
// and is safe for concurrent use.
type Composer struct {
	opts Options
}

// NewComposer creates a Composer. Zero-valued fields of opts fall back to
// DefaultOptions.
func NewComposer(opts Options) *Composer {
	def := DefaultOptions()
	if opts.Resolution == "" {
		opts.Resolution = def.Resolution
	}
	if opts.Size == 0 {
		opts.Size = def.Size
	}
	if opts.Overflow == "" {
		opts.Overflow = def.Overflow
	}
	if opts.MaxCells == 0 {
		opts.MaxCells = def.MaxCells
	}
	if opts.MaxOverflow == 0 {
		opts.MaxOverflow = def.MaxOverflow
	}
	return &Composer{opts: opts}
}

// Options returns the effective options.
func (c *Composer) Options() Options {
	return c.opts
}

// ComposePair composes p.First and p.Second.
func (c *Composer) ComposePair(p fraction.Pair) (*Composition, error) {
	return c.Compose(p.First, p.Second)
}

// Compose maps a and b onto layouts.
//
// Errors wrap ErrInvalidOptions, ErrInvalidFraction, ErrUnrepresentable or
// ErrTooLarge.
func (c *Composer) Compose(a, b fraction.Fraction) (*Composition, error) {
	if err := c.opts.Validate(); err != nil {
		return nil, err
	}

	if err := a.Validate(c.opts.AllowImproper); err != nil {
		return nil, fmt.Errorf("first addend: %w: %w", ErrInvalidFraction, err)
	}
	if err := b.Validate(c.opts.AllowImproper); err != nil {
		return nil, fmt.Errorf("second addend: %w: %w", ErrInvalidFraction, err)
	}

	res, lcm, err := c.resolution(a.Denominator, b.Denominator)
	if err != nil {
		return nil, err
	}

	// Whole units are checked before scaling so improper numerators cannot
	// overflow the multiplication below.
	wholes := a.Numerator/a.Denominator + b.Numerator/b.Denominator
	if wholes > c.maxWholes() {
		return nil, fmt.Errorf("%s: %w", fraction.Pair{First: a, Second: b}, ErrTooLarge)
	}

	firstCells := a.Numerator * (res / a.Denominator)
	secondCells := b.Numerator * (res / b.Denominator)
	excess := firstCells + secondCells - res
	if excess < 0 {
		excess = 0
	}
	if excess > 0 && c.opts.Overflow == OverflowFail {
		return nil, fmt.Errorf("%s: %w", fraction.Pair{First: a, Second: b}, ErrTooLarge)
	}

	// Each row is one unit of the second fraction.
	rows := b.Denominator
	cols := res / rows

	secondRows := min(b.Numerator, rows)
	placedFirst := min(firstCells, (rows-secondRows)*cols)

	comp := &Composition{
		Pair:        fraction.Pair{First: a, Second: b},
		Sum:         fraction.Sum(a, b),
		LCM:         lcm,
		Resolution:  res,
		FirstCells:  firstCells,
		SecondCells: secondCells,
		ExcessCells: excess,
		First:       strip(a, First, false),
		Second:      strip(b, Second, true),
		Composed:    classify(rows, cols, secondRows, placedFirst, Second, First),
	}

	if excess > 0 {
		overflow, err := c.overflow(rows, cols, b.Numerator-secondRows, firstCells-placedFirst)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", comp.Pair, err)
		}
		comp.Overflow = overflow
	}

	return comp, nil
}

// maxWholes is the largest number of whole units the addends may carry
// before composition is rejected outright.
func (c *Composer) maxWholes() int {
	if c.opts.Overflow == OverflowRenderExcess {
		return 1 + c.opts.MaxOverflow
	}
	return 1
}

// resolution returns the working resolution and lcm(d1, d2).
func (c *Composer) resolution(d1, d2 int) (int, int, error) {
	if d1 > c.opts.MaxCells || d2 > c.opts.MaxCells {
		return 0, 0, fmt.Errorf("denominators %d and %d exceed %d cells: %w", d1, d2, c.opts.MaxCells, ErrUnrepresentable)
	}

	lcm := fraction.LCM(d1, d2)
	var res int
	switch c.opts.Resolution {
	case ResolutionProduct:
		res = d1 * d2
	case ResolutionFixed:
		if c.opts.Size%lcm != 0 {
			return 0, lcm, fmt.Errorf("lcm(%d, %d) = %d does not divide %d: %w", d1, d2, lcm, c.opts.Size, ErrUnrepresentable)
		}
		res = c.opts.Size
	default:
		res = lcm
	}

	if res > c.opts.MaxCells {
		return 0, lcm, fmt.Errorf("resolution %d exceeds %d cells: %w", res, c.opts.MaxCells, ErrUnrepresentable)
	}
	return res, lcm, nil
}

// overflow lays out the excess on as many rows x cols layouts as needed.
// The second fraction's excess rows come first, as on the composed grid.
func (c *Composer) overflow(rows, cols, secondRows, firstCells int) ([]Layout, error) {
	var out []Layout
	for secondRows > 0 || firstCells > 0 {
		if len(out) == c.opts.MaxOverflow {
			return nil, fmt.Errorf("excess needs more than %d overflow grids: %w", c.opts.MaxOverflow, ErrTooLarge)
		}
		r := min(secondRows, rows)
		f := min(firstCells, (rows-r)*cols)
		out = append(out, classify(rows, cols, r, f, Overflow, Overflow))
		secondRows -= r
		firstCells -= f
	}
	return out, nil
}

// classify builds a rows x cols layout. The first secondRows rows are tagged
// second. The remaining rows are filled column-major with firstCells cells
// tagged first, so every unit of the first fraction is a contiguous run down
// a column. Second always wins a contested cell.
func classify(rows, cols, secondRows, firstCells int, second, first Category) Layout {
	l := newLayout(rows, cols)
	free := rows - secondRows
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if row < secondRows {
				l.set(row, col, second)
				continue
			}
			segment := col*free + (row - secondRows)
			if segment < firstCells {
				l.set(row, col, first)
			}
		}
	}
	return l
}

// strip lays a single fraction out as consecutive units, one cell each.
// Vertical strips stack units as rows, horizontal strips as columns. Improper
// fractions extend the strip by whole units.
func strip(f fraction.Fraction, c Category, vertical bool) Layout {
	units := f.Denominator
	if f.Numerator > units {
		wholes := (f.Numerator + f.Denominator - 1) / f.Denominator
		units = wholes * f.Denominator
	}

	var l Layout
	if vertical {
		l = newLayout(units, 1)
	} else {
		l = newLayout(1, units)
	}
	for i := 0; i < f.Numerator; i++ {
		l.Cells[i] = c
	}
	return l
}
