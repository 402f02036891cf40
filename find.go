package intersect

import (
	"fmt"
	"math"
)

// Function is a function of one variable that can be sampled. *Func
// implements Function.
type Function interface {
	Eval(x float64) float64
}

// Intersection is the result of a nearest-sample search.
type Intersection struct {
	// Found is whether the closest sample is within the tolerance.
	Found bool
	// X and Y are the coordinates of the intersection on the first function.
	// They are zero unless Found is true.
	X, Y float64
	// Index is the grid index of the closest sample with a finite
	// difference, or -1 if there is none.
	Index int
	// Diff is the absolute difference at Index, or +Inf if there is none.
	Diff float64
}

// String formats the intersection as its plot annotation, "(x, y)" with two
// decimals, or "none" if nothing was found.
func (p Intersection) String() string {
	if !p.Found {
		return "none"
	}
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Crossing is a place where the difference of two sampled functions changes
// sign.
type Crossing struct {
	// Index is the grid index of the left end of the interval containing the
	// crossing, or of the point itself if Exact.
	Index int
	// X is the root of the linear interpolation of the difference in the
	// interval, and Y is the first function interpolated at X.
	X, Y float64
	// Exact is whether the difference is exactly zero at the grid point.
	Exact bool
}

// Sample evaluates f at every point of the grid.
func Sample(f Function, grid Grid) []float64 {
	if f, ok := f.(interface{ EvalAll([]float64) []float64 }); ok {
		return f.EvalAll(grid)
	}
	r := make([]float64, len(grid))
	for i, x := range grid {
		r[i] = f.Eval(x)
	}
	return r
}

// FindIntersection samples f1 and f2 on grid and reports the sample at which
// they are closest if their difference there is less than tolerance.
func FindIntersection(f1, f2 Function, grid Grid, tolerance float64) Intersection {
	return Nearest(grid, Sample(f1, grid), Sample(f2, grid), tolerance)
}

// Nearest finds the index where y1 and y2 are closest among samples whose
// difference is finite, preferring the first on ties. The intersection is
// found if that difference is strictly less than tolerance. Panics if the
// lengths of grid, y1, and y2 differ.
func Nearest(grid Grid, y1, y2 []float64, tolerance float64) Intersection {
	if len(y1) != len(grid) || len(y2) != len(grid) {
		panic(fmt.Sprintf("intersect: mismatched samples: %d grid points, %d and %d values", len(grid), len(y1), len(y2)))
	}
	r := Intersection{Index: -1, Diff: math.Inf(1)}
	for i := range grid {
		d := math.Abs(y1[i] - y2[i])
		if !finite(d) {
			continue
		}
		if d < r.Diff {
			r.Index, r.Diff = i, d
		}
	}
	if r.Index >= 0 && r.Diff < tolerance {
		r.Found = true
		r.X, r.Y = grid[r.Index], y1[r.Index]
	}
	return r
}

// Crossings finds every sign change of y1-y2 in grid order. A grid point
// where the difference is exactly zero is reported once as an exact crossing.
// Intervals with a non-finite difference at either end are skipped. Panics if
// the lengths of grid, y1, and y2 differ.
func Crossings(grid Grid, y1, y2 []float64) []Crossing {
	if len(y1) != len(grid) || len(y2) != len(grid) {
		panic(fmt.Sprintf("intersect: mismatched samples: %d grid points, %d and %d values", len(grid), len(y1), len(y2)))
	}
	var r []Crossing
	for i := range grid {
		d := y1[i] - y2[i]
		if !finite(d) {
			continue
		}
		if d == 0 {
			r = append(r, Crossing{Index: i, X: grid[i], Y: y1[i], Exact: true})
			continue
		}
		if i+1 == len(grid) {
			break
		}
		e := y1[i+1] - y2[i+1]
		if !finite(e) || e == 0 || (d < 0) == (e < 0) {
			// An exact zero at i+1 is reported on the next iteration.
			continue
		}
		// d and e have opposite signs, so neither the ratio nor the weighted
		// sums can overflow where differences of the endpoints would.
		t := 1 / (1 - e/d)
		r = append(r, Crossing{
			Index: i,
			X:     grid[i]*(1-t) + grid[i+1]*t,
			Y:     y1[i]*(1-t) + y1[i+1]*t,
		})
	}
	return r
}
