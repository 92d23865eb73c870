package grid

import "fmt"

// ResolutionMode selects how the working resolution is derived.
type ResolutionMode string

const (
	// ResolutionLCM uses lcm(d1, d2) cells.
	ResolutionLCM ResolutionMode = "lcm"

	// ResolutionProduct uses d1*d2 cells, one per (column, row) pair of the
	// two denominators.
	ResolutionProduct ResolutionMode = "product"

	// ResolutionFixed uses Options.Size cells and requires lcm(d1, d2) to
	// divide it.
	ResolutionFixed ResolutionMode = "fixed"
)

// OverflowPolicy selects what happens when the sum exceeds one whole.
type OverflowPolicy string

const (
	// OverflowFail reports ErrTooLarge.
	OverflowFail OverflowPolicy = "fail"

	// OverflowRenderExcess fills the composed grid and lays the excess out
	// on additional Overflow layouts.
	OverflowRenderExcess OverflowPolicy = "render-excess"
)

const (
	// DefaultSize is the fixed grid size used by ResolutionFixed.
	DefaultSize = 60

	// DefaultMaxCells bounds the working resolution.
	DefaultMaxCells = 10000

	// DefaultMaxOverflow bounds the number of overflow layouts.
	DefaultMaxOverflow = 8

	// maxCellsLimit keeps d1*d2 within int range for any accepted denominator.
	maxCellsLimit = 1 << 15
)

// Options configures a Composer.
type Options struct {
	// Resolution is the working resolution mode (default lcm)
	Resolution ResolutionMode `json:"resolution" yaml:"resolution" toml:"resolution"`

	// Size is the fixed grid size for ResolutionFixed
	Size int `json:"size" yaml:"size" toml:"size"`

	// AllowImproper permits numerators larger than their denominators
	AllowImproper bool `json:"allow_improper" yaml:"allow_improper" toml:"allow_improper"`

	// Overflow is the policy applied when the sum exceeds one whole
	Overflow OverflowPolicy `json:"overflow" yaml:"overflow" toml:"overflow"`

	// MaxCells bounds the working resolution
	MaxCells int `json:"max_cells" yaml:"max_cells" toml:"max_cells"`

	// MaxOverflow bounds the number of overflow layouts under render-excess
	MaxOverflow int `json:"max_overflow" yaml:"max_overflow" toml:"max_overflow"`
}

// DefaultOptions returns the reference behavior: lcm resolution, proper
// fractions only, fail on overflow.
func DefaultOptions() Options {
	return Options{
		Resolution:  ResolutionLCM,
		Size:        DefaultSize,
		Overflow:    OverflowFail,
		MaxCells:    DefaultMaxCells,
		MaxOverflow: DefaultMaxOverflow,
	}
}

// Validate checks the options for consistency.
func (o Options) Validate() error {
	switch o.Resolution {
	case ResolutionLCM, ResolutionProduct:
	case ResolutionFixed:
		if o.Size <= 0 {
			return fmt.Errorf("%w: fixed size must be positive, got %d", ErrInvalidOptions, o.Size)
		}
		if o.Size > o.MaxCells {
			return fmt.Errorf("%w: fixed size %d exceeds max cells %d", ErrInvalidOptions, o.Size, o.MaxCells)
		}
	default:
		return fmt.Errorf("%w: unknown resolution mode %q", ErrInvalidOptions, o.Resolution)
	}

	switch o.Overflow {
	case OverflowFail, OverflowRenderExcess:
	default:
		return fmt.Errorf("%w: unknown overflow policy %q", ErrInvalidOptions, o.Overflow)
	}

	if o.MaxCells <= 0 || o.MaxCells > maxCellsLimit {
		return fmt.Errorf("%w: max cells must be in 1..%d, got %d", ErrInvalidOptions, maxCellsLimit, o.MaxCells)
	}
	if o.MaxOverflow < 0 {
		return fmt.Errorf("%w: max overflow must not be negative, got %d", ErrInvalidOptions, o.MaxOverflow)
	}
	return nil
}

// ResolutionModes lists the accepted resolution mode names.
func ResolutionModes() []ResolutionMode {
	return []ResolutionMode{ResolutionLCM, ResolutionProduct, ResolutionFixed}
}

// OverflowPolicies lists the accepted overflow policy names.
func OverflowPolicies() []OverflowPolicy {
	return []OverflowPolicy{OverflowFail, OverflowRenderExcess}
}
