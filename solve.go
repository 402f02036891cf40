package intersect

import (
	"errors"
	"math"
	"strings"
)

// SolveOption is an option used when solving.
type SolveOption interface {
	solveOption()
}

type (
	domainopt struct {
		lo, hi float64
	}
	pointsopt int
	tolopt    float64
)

func (domainopt) solveOption() {}
func (pointsopt) solveOption() {}
func (tolopt) solveOption()    {}

// Domain sets the closed interval to sample. The default is
// [DefaultLo, DefaultHi].
func Domain(lo, hi float64) SolveOption {
	return domainopt{lo, hi}
}

// Points sets the number of sample points. The default is DefaultPoints.
func Points(n int) SolveOption {
	return pointsopt(n)
}

// Tolerance sets the largest difference, exclusive, that counts as an
// intersection. The default is DefaultTolerance.
func Tolerance(t float64) SolveOption {
	return tolopt(t)
}

// Solution is everything computed for one pair of formulas, intended for
// display by a caller.
type Solution struct {
	// F1 and F2 are the compiled formulas.
	F1, F2 *Func
	// Grid holds the sample points shared by both formulas.
	Grid Grid
	// Y1 and Y2 are the formulas sampled on Grid.
	Y1, Y2 []float64
	// Intersection is the nearest-sample result.
	Intersection Intersection
	// Crossings lists every sign change of Y1-Y2.
	Crossings []Crossing
}

// Solve compiles two formulas, samples both on one grid, and finds where they
// meet. Surrounding whitespace in each formula is ignored.
//
// If either formula is blank, the error is ErrEmptyInput, and neither formula
// is compiled. If a formula does not compile, the error is a *FormulaError. If
// the formulas never come within the tolerance, the error is
// ErrNoIntersection, but the returned Solution is still complete so that the
// samples can be plotted.
func Solve(f1, f2 string, opts ...SolveOption) (*Solution, error) {
	lo, hi, n, tol := float64(DefaultLo), float64(DefaultHi), DefaultPoints, DefaultTolerance
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case domainopt:
			lo, hi = opt.lo, opt.hi
		case pointsopt:
			n = int(opt)
		case tolopt:
			tol = float64(opt)
		default:
			panic("intersect: unknown option type")
		}
	}
	if tol < 0 || math.IsNaN(tol) {
		return nil, &ToleranceError{Tolerance: tol}
	}
	grid, err := NewGrid(lo, hi, n)
	if err != nil {
		return nil, err
	}

	f1, f2 = strings.TrimSpace(f1), strings.TrimSpace(f2)
	if f1 == "" || f2 == "" {
		return nil, ErrEmptyInput
	}
	a, err := Compile(f1)
	if err != nil {
		return nil, &FormulaError{Index: 1, Formula: f1, Err: err}
	}
	b, err := Compile(f2)
	if err != nil {
		return nil, &FormulaError{Index: 2, Formula: f2, Err: err}
	}

	sol := Solution{
		F1:   a,
		F2:   b,
		Grid: grid,
		Y1:   a.EvalAll(grid),
		Y2:   b.EvalAll(grid),
	}
	sol.Intersection = Nearest(grid, sol.Y1, sol.Y2, tol)
	sol.Crossings = Crossings(grid, sol.Y1, sol.Y2)
	if !sol.Intersection.Found {
		return &sol, ErrNoIntersection
	}
	return &sol, nil
}

// Status messages for display.
const (
	StatusReady          = "Ready"
	StatusEmptyInput     = "Please enter both functions."
	StatusInvalidSyntax  = "Invalid function syntax. Supported operators: + - / * ^ log10() sqrt()."
	StatusNoIntersection = "No intersection point found within the range."
)

// Status returns the one-line message to show a user for the result of Solve.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusReady
	case errors.Is(err, ErrEmptyInput):
		return StatusEmptyInput
	case errors.Is(err, ErrInvalidSyntax):
		return StatusInvalidSyntax
	case errors.Is(err, ErrNoIntersection):
		return StatusNoIntersection
	default:
		return err.Error()
	}
}
