package intersect

import "math"

// builtin is a function of one variable that formulas may call. A call always
// takes exactly one parenthesized argument. Arguments outside the function's
// domain give NaN or an infinity.
type builtin struct {
	name string
	f    func(float64) float64
}

var builtins = map[string]*builtin{
	"log10": {"log10", math.Log10},
	"sqrt":  {"sqrt", math.Sqrt},
}

// Var is the name of the only variable a formula may use.
const Var = "x"

// Funcs returns the names of the functions formulas may call, in sorted order.
func Funcs() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
