package intersect_test

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/Knetic/govaluate"
	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/intersect"
)

// oracleFuncs are the builtins for govaluate.
var oracleFuncs = map[string]govaluate.ExpressionFunction{
	"sqrt": func(args ...interface{}) (interface{}, error) {
		return math.Sqrt(args[0].(float64)), nil
	},
	"log10": func(args ...interface{}) (interface{}, error) {
		return math.Log10(args[0].(float64)), nil
	},
}

// near reports whether a and b agree to a relative error of eps, treating NaNs
// as equal.
func near(a, b, eps float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestGovaluateAgrees(t *testing.T) {
	// govaluate spells exponentiation ** and gives prefix minus a higher
	// precedence, so these avoid signs next to powers.
	cases := []string{
		"5*x^3 + 2*x",
		"3*x^2 - 4*x",
		"sqrt(x*x + 1)",
		"log10(x*x + 1)",
		"(x + 1) / (x*x + 2)",
		"x^2 + 1",
		"2*x",
		"sqrt(log10(x*x + 10)) * x",
	}
	g := intersect.DefaultGrid()
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			f := intersect.MustCompile(src)
			e, err := govaluate.NewEvaluableExpressionWithFunctions(strings.ReplaceAll(src, "^", "**"), oracleFuncs)
			if err != nil {
				t.Fatalf("govaluate could not parse %q: %v", src, err)
			}
			params := map[string]interface{}{"x": 0.0}
			for i := 0; i < len(g); i += 7 {
				x := g[i]
				params["x"] = x
				v, err := e.Evaluate(params)
				if err != nil {
					t.Fatalf("govaluate failed at %g: %v", x, err)
				}
				want, ok := v.(float64)
				if !ok {
					t.Fatalf("govaluate gave %T at %g", v, x)
				}
				if got := f.Eval(x); !near(got, want, 1e-12) {
					t.Errorf("at %g: want %g, got %g", x, want, got)
				}
			}
		})
	}
}

func TestBigfloatAgrees(t *testing.T) {
	const prec = 200
	ten := new(big.Float).SetPrec(prec).SetFloat64(10)
	ln10 := bigfloat.Log(new(big.Float).SetPrec(prec), ten)
	pow := intersect.MustCompile("x^2.5")
	log := intersect.MustCompile("log10(x)")
	two5 := new(big.Float).SetPrec(prec).SetFloat64(2.5)
	for _, x := range []float64{1e-6, 0.3, 1, 2, 7.5, 10, 123.456, 1e6} {
		bx := new(big.Float).SetPrec(prec).SetFloat64(x)

		bp := bigfloat.Pow(new(big.Float).SetPrec(prec), bx, two5)
		want, _ := bp.Float64()
		if got := pow.Eval(x); !near(got, want, 1e-15) {
			t.Errorf("%g^2.5: want %g, got %g", x, want, got)
		}

		bl := bigfloat.Log(new(big.Float).SetPrec(prec), bx)
		bl.Quo(bl, ln10)
		want, _ = bl.Float64()
		if got := log.Eval(x); !near(got, want, 1e-15) {
			t.Errorf("log10(%g): want %g, got %g", x, want, got)
		}
	}
}
