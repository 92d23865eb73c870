package fraction

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominator indicates a fraction with a zero denominator.
	ErrZeroDenominator = errors.New("zero denominator")

	// ErrImproper indicates a numerator larger than its denominator.
	ErrImproper = errors.New("numerator exceeds denominator")
)

// Fraction is a non-negative numerator over a denominator.
// A valid fraction has Denominator > 0.
type Fraction struct {
	Numerator   int `json:"numerator" yaml:"numerator"`
	Denominator int `json:"denominator" yaml:"denominator"`
}

// Pair is the two addends of an expression.
type Pair struct {
	First  Fraction `json:"first" yaml:"first"`
	Second Fraction `json:"second" yaml:"second"`
}

// New returns the fraction n/d.
func New(n, d int) Fraction {
	return Fraction{Numerator: n, Denominator: d}
}

// String renders the fraction as "n/d".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

// Validate checks the fraction. Improper fractions are rejected unless
// allowImproper is set.
func (f Fraction) Validate(allowImproper bool) error {
	if f.Denominator <= 0 {
		return fmt.Errorf("%s: %w", f, ErrZeroDenominator)
	}
	if f.Numerator < 0 {
		return fmt.Errorf("%s: negative numerator", f)
	}
	if !allowImproper && f.Numerator > f.Denominator {
		return fmt.Errorf("%s: %w", f, ErrImproper)
	}
	return nil
}

// String renders the pair as "a/b + c/d".
func (p Pair) String() string {
	return fmt.Sprintf("%s + %s", p.First, p.Second)
}

// GCD returns the greatest common divisor of a and b.
// GCD(a, 0) is a.
func GCD(a, b int) int {
	if b == 0 {
		return a
	}
	return GCD(b, a%b)
}

// LCM returns the least common multiple of two positive integers.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// Reduce returns f in lowest terms. Zero numerators reduce to 0/1.
func (f Fraction) Reduce() Fraction {
	if f.Denominator == 0 {
		return f
	}
	if f.Numerator == 0 {
		return Fraction{Numerator: 0, Denominator: 1}
	}
	g := GCD(f.Numerator, f.Denominator)
	return Fraction{Numerator: f.Numerator / g, Denominator: f.Denominator / g}
}

// Sum returns a + b over the common denominator lcm(a.Denominator, b.Denominator).
// The result is not reduced so it reads as the common-denominator form.
func Sum(a, b Fraction) Fraction {
	l := LCM(a.Denominator, b.Denominator)
	if l == 0 {
		return Fraction{}
	}
	return Fraction{
		Numerator:   a.Numerator*(l/a.Denominator) + b.Numerator*(l/b.Denominator),
		Denominator: l,
	}
}
