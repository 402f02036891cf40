package intersect

import (
	"math"
	"strconv"
)

// Func is a compiled formula. It is immutable and safe to use concurrently.
type Func struct {
	// n is the root node of the formula.
	n *node
	// prog is n in postfix order.
	prog []instr
	// depth is the largest stack prog needs.
	depth int
}

type opcode uint8

const (
	opNum opcode = iota
	opVar
	opCall
	opNeg
	opAdd
	opSub
	opMul
	opDiv
	opPow
)

type instr struct {
	op  opcode
	num float64
	fn  func(float64) float64
}

// compile flattens a parse tree into a program.
func compile(n *node) *Func {
	c := compiler{}
	c.emit(n)
	return &Func{n: n, prog: c.prog, depth: c.max}
}

type compiler struct {
	prog     []instr
	cur, max int
}

func (c *compiler) add(in instr, delta int) {
	c.prog = append(c.prog, in)
	c.cur += delta
	if c.cur > c.max {
		c.max = c.cur
	}
}

// emit appends the instructions that push the node's value.
func (c *compiler) emit(n *node) {
	switch n.kind {
	case nodeNum:
		c.add(instr{op: opNum, num: n.num}, 1)
	case nodeVar:
		c.add(instr{op: opVar}, 1)
	case nodeCall:
		c.emit(n.left)
		c.add(instr{op: opCall, fn: n.fn.f}, 0)
	case nodeNeg:
		c.emit(n.left)
		c.add(instr{op: opNeg}, 0)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		c.emit(n.left)
		c.emit(n.right)
		c.add(instr{op: binopcodes[n.kind]}, -1)
	case nodeNop:
		c.emit(n.left)
	default:
		panic("intersect: invalid AST node " + n.kind.String())
	}
}

var binopcodes = map[nodeKind]opcode{
	nodeAdd: opAdd,
	nodeSub: opSub,
	nodeMul: opMul,
	nodeDiv: opDiv,
	nodePow: opPow,
}

// stack is an evaluation stack. Each evaluation owns its own.
type stack []float64

// push adds a value to the top of the stack.
func (s *stack) push(v float64) {
	*s = append(*s, v)
}

// pop removes the top from the stack and returns it.
func (s *stack) pop() float64 {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (s stack) top() *float64 {
	return &s[len(s)-1]
}

// run evaluates the program at x using s, which must be empty.
func (f *Func) run(s stack, x float64) float64 {
	for _, in := range f.prog {
		switch in.op {
		case opNum:
			s.push(in.num)
		case opVar:
			s.push(x)
		case opCall:
			l := s.top()
			*l = in.fn(*l)
		case opNeg:
			l := s.top()
			*l = -*l
		case opAdd:
			r := s.pop()
			*s.top() += r
		case opSub:
			r := s.pop()
			*s.top() -= r
		case opMul:
			r := s.pop()
			*s.top() *= r
		case opDiv:
			r := s.pop()
			*s.top() /= r
		case opPow:
			r := s.pop()
			l := s.top()
			*l = math.Pow(*l, r)
		default:
			panic("intersect: invalid opcode " + strconv.Itoa(int(in.op)))
		}
	}
	if len(s) != 1 {
		panic("intersect: inconsistent stack: " + strconv.Itoa(len(s)) + " items (bad program?)")
	}
	return s[0]
}

// Eval evaluates the formula at x. Division by zero and arguments outside a
// function's domain give infinities or NaN.
func (f *Func) Eval(x float64) float64 {
	var buf [16]float64
	s := stack(buf[:0])
	if f.depth > len(buf) {
		s = make(stack, 0, f.depth)
	}
	return f.run(s, x)
}

// EvalAll evaluates the formula at each of xs.
func (f *Func) EvalAll(xs []float64) []float64 {
	r := make([]float64, len(xs))
	s := make(stack, 0, f.depth)
	for i, x := range xs {
		r[i] = f.run(s, x)
	}
	return r
}
