package engine

import (
	"errors"

	"github.com/danieljhkim/fracgrid/internal/fraction"
	"github.com/danieljhkim/fracgrid/internal/grid"
)

// Status is the outcome of a visualize request.
type Status string

const (
	StatusOK              Status = "ok"
	StatusParseFailure    Status = "parse_failure"
	StatusInvalidFraction Status = "invalid_fraction"
	StatusUnrepresentable Status = "unrepresentable"
	StatusTooLarge        Status = "too_large"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusOK, StatusParseFailure, StatusInvalidFraction, StatusUnrepresentable, StatusTooLarge}
}

// Classify maps an error from the parser or composer to a Status.
// It returns false for errors that are not user-facing outcomes.
func Classify(err error) (Status, bool) {
	switch {
	case err == nil:
		return StatusOK, true
	case errors.Is(err, fraction.ErrParse):
		return StatusParseFailure, true
	case errors.Is(err, grid.ErrInvalidFraction):
		return StatusInvalidFraction, true
	case errors.Is(err, grid.ErrUnrepresentable):
		return StatusUnrepresentable, true
	case errors.Is(err, grid.ErrTooLarge):
		return StatusTooLarge, true
	default:
		return "", false
	}
}
