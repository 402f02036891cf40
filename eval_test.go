package intersect_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/zephyrtronium/intersect"
)

func TestEval(t *testing.T) {
	type xy struct {
		x, y float64
	}
	cases := []struct {
		name string
		src  string
		r    []xy
	}{
		{"num", "1", []xy{{0, 1}, {5, 1}}},
		{"ident", "x", []xy{{4, 4}, {5, 5}, {-6, -6}}},
		{"plus", "+x", []xy{{4, 4}, {-5, -5}}},
		{"neg", "-x", []xy{{4, -4}, {-5, 5}}},
		{"add", "4+5+x", []xy{{6, 4 + 5 + 6}}},
		{"sub", "4-5-x", []xy{{6, 4 - 5 - 6}}},
		{"mul", "4*5*x", []xy{{6, 4 * 5 * 6}}},
		{"div", "4/5/x", []xy{{6, 4.0 / 5.0 / 6.0}}},
		{"pow", "4^3^x", []xy{{2, 262144}}},
		{"negpow", "-x^2", []xy{{3, -9}, {-3, -9}}},
		{"powneg", "x^-1", []xy{{4, 0.25}}},
		{"sqrt", "sqrt(x)", []xy{{16, 4}, {2, math.Sqrt2}}},
		{"log10", "log10(x)", []xy{{1000, 3}, {1, 0}}},
		{"poly", "5*x^3 + 2*x", []xy{{0, 0}, {1, 7}, {-2, -44}}},
		{"decimal", "0.5*x + .25", []xy{{1, 0.75}}},
		{"constant-call", "sqrt(4) + log10(100)", []xy{{-3, 4}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := intersect.Compile(c.src)
			if err != nil {
				t.Fatal(c.src, "failed to parse:", err)
			}
			for _, v := range c.r {
				// log10 is not exact for every power of ten.
				if got := f.Eval(v.x); math.Abs(got-v.y) > 1e-14*math.Max(1, math.Abs(v.y)) {
					t.Errorf("%q at %g: want %g, got %g", c.src, v.x, v.y, got)
				}
			}
		})
	}
}

func TestEvalNonFinite(t *testing.T) {
	cases := []struct {
		name string
		src  string
		x    float64
		want float64
	}{
		{"div-zero", "1/x", 0, math.Inf(1)},
		{"div-negzero", "-1/x", 0, math.Inf(-1)},
		{"zero-div-zero", "x/x", 0, math.NaN()},
		{"sqrt-neg", "sqrt(x)", -1, math.NaN()},
		{"log-zero", "log10(x)", 0, math.Inf(-1)},
		{"log-neg", "log10(x)", -1, math.NaN()},
		{"pow-neg-frac", "x^0.5", -4, math.NaN()},
		{"pow-zero-neg", "x^-1", 0, math.Inf(1)},
		{"overflow", "10^x", 400, math.Inf(1)},
		{"huge-literal", "1" + fmt.Sprintf("%0400d", 0) + "*x", 1, math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := intersect.Compile(c.src)
			if err != nil {
				t.Fatal(c.src, "failed to parse:", err)
			}
			got := f.Eval(c.x)
			switch {
			case math.IsNaN(c.want):
				if !math.IsNaN(got) {
					t.Errorf("%q at %g: want NaN, got %g", c.src, c.x, got)
				}
			case got != c.want:
				t.Errorf("%q at %g: want %g, got %g", c.src, c.x, c.want, got)
			}
		})
	}
}

func TestEvalDeep(t *testing.T) {
	// Right-associative chains need a stack as deep as the chain.
	src := "x"
	for i := 0; i < 40; i++ {
		src = "1+(" + src + ")^1"
	}
	f := intersect.MustCompile(src)
	if got := f.Eval(2); got != 42 {
		t.Errorf("want 42, got %g", got)
	}
	if got := f.EvalAll([]float64{0, 1}); got[0] != 40 || got[1] != 41 {
		t.Errorf("want [40 41], got %v", got)
	}
}

func TestEvalAllMatchesEval(t *testing.T) {
	f := intersect.MustCompile("x^2 - 3*x + sqrt(x + 10) / log10(x + 11)")
	g := intersect.DefaultGrid()
	ys := f.EvalAll(g)
	if len(ys) != len(g) {
		t.Fatalf("want %d values, got %d", len(g), len(ys))
	}
	for i, x := range g {
		if y := f.Eval(x); y != ys[i] && !(math.IsNaN(y) && math.IsNaN(ys[i])) {
			t.Errorf("at %g: Eval gives %g, EvalAll gives %g", x, y, ys[i])
		}
	}
}

func TestEvalConcurrent(t *testing.T) {
	f := intersect.MustCompile("(x + 1) * (x - 1) / (x^2 + 1)")
	g := intersect.DefaultGrid()
	want := f.EvalAll(g)
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for k := 0; k < 8; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := f.EvalAll(g)
			for i := range got {
				if got[i] != want[i] {
					errs <- fmt.Sprintf("at %g: want %g, got %g", g[i], want[i], got[i])
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func BenchmarkEval(b *testing.B) {
	f := intersect.MustCompile("5*x^3 + 2*x - sqrt(x^2 + 1)")
	b.Run("single", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			f.Eval(float64(i))
		}
	})
	b.Run("grid", func(b *testing.B) {
		b.ReportAllocs()
		g := intersect.DefaultGrid()
		for i := 0; i < b.N; i++ {
			f.EvalAll(g)
		}
	})
}

func Example() {
	f := intersect.MustCompile("x^3/2 - x")
	for i := 0; i < 4; i++ {
		x := float64(i)
		fmt.Printf("x = %g   y = %g\n", x, f.Eval(x))
	}

	// Output:
	// x = 0   y = 0
	// x = 1   y = -0.5
	// x = 2   y = 2
	// x = 3   y = 10.5
}
