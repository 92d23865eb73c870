// Package fraction parses two-addend fraction expressions.
//
// An expression has the shape "n1/d1 + n2/d2". Parsing is a pure function of
// the input string: it either yields a Pair or an error wrapping ErrParse,
// never a partial result.
//
// Key responsibilities:
//   - Parse expressions under the strict or lenient policy
//   - Validate individual fractions (zero denominators, improper fractions)
//   - Provide the GCD/LCM helpers used to find a common denominator
package fraction
