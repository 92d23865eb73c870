package grid

import "errors"

var (
	// ErrInvalidFraction indicates a zero denominator, or an improper
	// fraction when improper fractions are disallowed.
	ErrInvalidFraction = errors.New("invalid fraction")

	// ErrUnrepresentable indicates the denominators cannot be partitioned
	// evenly at the configured resolution.
	ErrUnrepresentable = errors.New("cannot be represented at this resolution")

	// ErrTooLarge indicates the sum exceeds one whole.
	ErrTooLarge = errors.New("sum exceeds one whole")

	// ErrInvalidOptions indicates the composer options are inconsistent.
	ErrInvalidOptions = errors.New("invalid grid options")
)
