package intersect

import "math"

// Default sampling settings.
const (
	DefaultLo        = -10
	DefaultHi        = 10
	DefaultPoints    = 1000
	DefaultTolerance = 0.1
)

// Grid is an ordered sequence of evenly spaced sample points. A Grid is
// shared read-only by everything sampled on it.
type Grid []float64

// NewGrid creates a grid of n points from lo to hi inclusive. Point i is
// lo + i*(hi-lo)/(n-1), except that the last point is exactly hi. The bounds
// must be finite with lo < hi, and n must be at least 2.
func NewGrid(lo, hi float64, n int) (Grid, error) {
	if !finite(lo) || !finite(hi) || lo >= hi || n < 2 {
		return nil, &GridError{Lo: lo, Hi: hi, N: n}
	}
	step := (hi - lo) / float64(n-1)
	if !finite(step) {
		return nil, &GridError{Lo: lo, Hi: hi, N: n}
	}
	g := make(Grid, n)
	for i := range g {
		g[i] = float64(i)*step + lo
	}
	g[n-1] = hi
	return g, nil
}

// DefaultGrid returns a new grid of DefaultPoints points over
// [DefaultLo, DefaultHi].
func DefaultGrid() Grid {
	g, err := NewGrid(DefaultLo, DefaultHi, DefaultPoints)
	if err != nil {
		panic(err)
	}
	return g
}

// Lo returns the first point of the grid.
func (g Grid) Lo() float64 {
	return g[0]
}

// Hi returns the last point of the grid.
func (g Grid) Hi() float64 {
	return g[len(g)-1]
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
