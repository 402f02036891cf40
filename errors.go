package intersect

import (
	"errors"
	"strconv"
)

// Sentinel errors for the three user-facing failures. Check for them with
// errors.Is; the structured errors in this package unwrap to them.
var (
	// ErrEmptyInput means a formula was blank.
	ErrEmptyInput = errors.New("intersect: empty formula")
	// ErrInvalidSyntax means a formula is outside the formula grammar.
	ErrInvalidSyntax = errors.New("intersect: invalid formula syntax")
	// ErrNoIntersection means no sample came within the tolerance.
	ErrNoIntersection = errors.New("intersect: no intersection in range")
)

// FormulaError records which of the two formulas given to Solve failed to
// compile.
type FormulaError struct {
	// Index is 1 for the first formula and 2 for the second.
	Index int
	// Formula is the formula text after trimming.
	Formula string
	// Err is the compile error.
	Err error
}

func (err *FormulaError) Error() string {
	return "function " + strconv.Itoa(err.Index) + " " + strconv.Quote(err.Formula) + ": " + err.Err.Error()
}

func (err *FormulaError) Unwrap() error {
	return err.Err
}

// GridError is an error indicating sampling settings that cannot produce a
// grid.
type GridError struct {
	Lo, Hi float64
	N      int
}

func (err *GridError) Error() string {
	lo := strconv.FormatFloat(err.Lo, 'g', -1, 64)
	hi := strconv.FormatFloat(err.Hi, 'g', -1, 64)
	return "intersect: cannot sample [" + lo + ", " + hi + "] with " + strconv.Itoa(err.N) + " points"
}

// ToleranceError is an error indicating a negative or NaN tolerance.
type ToleranceError struct {
	Tolerance float64
}

func (err *ToleranceError) Error() string {
	return "intersect: invalid tolerance " + strconv.FormatFloat(err.Tolerance, 'g', -1, 64)
}
