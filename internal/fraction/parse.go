package fraction

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrParse indicates the input is not a two-addend fraction expression.
var ErrParse = errors.New("invalid expression")

// ParsePolicy selects which expression shapes Parse accepts.
type ParsePolicy string

const (
	// ParseStrict requires both addends to be written as n/d.
	ParseStrict ParsePolicy = "strict"

	// ParseLenient allows the second addend's denominator to be omitted,
	// in which case it defaults to 1.
	ParseLenient ParsePolicy = "lenient"
)

var (
	strictPattern = regexp.MustCompile(
		`^\s*(?P<n1>\d+)\s*/\s*(?P<d1>\d+)\s*\+\s*(?P<n2>\d+)\s*/\s*(?P<d2>\d+)\s*$`)
	lenientPattern = regexp.MustCompile(
		`^\s*(?P<n1>\d+)\s*/\s*(?P<d1>\d+)\s*\+\s*(?P<n2>\d+)\s*(?:/\s*(?P<d2>\d+))?\s*$`)
)

// ParsePolicies lists the accepted policy names.
func ParsePolicies() []ParsePolicy {
	return []ParsePolicy{ParseStrict, ParseLenient}
}

// Valid reports whether p names a known policy.
func (p ParsePolicy) Valid() bool {
	switch p {
	case ParseStrict, ParseLenient:
		return true
	}
	return false
}

// Parse parses input into a Pair. Any failure returns the zero Pair and an
// error wrapping ErrParse.
func Parse(input string, policy ParsePolicy) (Pair, error) {
	pattern := strictPattern
	switch policy {
	case ParseStrict, "":
	case ParseLenient:
		pattern = lenientPattern
	default:
		return Pair{}, fmt.Errorf("unknown parse policy %q", policy)
	}

	match := pattern.FindStringSubmatch(input)
	if match == nil {
		return Pair{}, fmt.Errorf("%q: %w", input, ErrParse)
	}

	values := make(map[string]int, 4)
	for i, name := range pattern.SubexpNames() {
		if name == "" {
			continue
		}
		if match[i] == "" {
			// Only the lenient second denominator is optional.
			values[name] = 1
			continue
		}
		v, err := strconv.Atoi(match[i])
		if err != nil {
			return Pair{}, fmt.Errorf("%q: %s out of range: %w", input, name, ErrParse)
		}
		values[name] = v
	}

	return Pair{
		First:  New(values["n1"], values["d1"]),
		Second: New(values["n2"], values["d2"]),
	}, nil
}
