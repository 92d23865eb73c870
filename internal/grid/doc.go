// Package grid maps a pair of fractions onto cell layouts.
//
// The composer generates deterministic layouts for the two addends of an
// expression: one strip per fraction and one composed grid at a common
// working resolution where both fractions are whole numbers of cells. When
// the sum exceeds one whole, the composer either fails with ErrTooLarge or
// emits the excess as separate overflow layouts, depending on Options.
//
// Key responsibilities:
//   - Validate fractions and pick the working resolution
//   - Assign each cell a Category, second fraction first
//   - Detect and lay out overflow
package grid
