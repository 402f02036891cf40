package intersect

import (
	"io"
	"strconv"
	"strings"
)

// Expr = num | 'x' | Call | Neg | Plus | Add | Sub | Mul | Div | Pow | '(' Expr ')'
// Call = ('log10' | 'sqrt') '(' Expr ')'
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr

// Parse parses a formula and compiles it.
func Parse(src io.RuneScanner) (*Func, error) {
	scan := lex(src)
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenEOF {
		return nil, ErrEmptyInput
	}
	scan.push(tok)
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok, false)
	}
	return compile(n), nil
}

// Compile is a shortcut to parse a formula from a string. A formula that is
// empty or only spaces gives ErrEmptyInput.
func Compile(src string) (*Func, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmptyInput
	}
	return Parse(strings.NewReader(src))
}

// MustCompile is like Compile but panics if the formula does not compile.
func MustCompile(src string) *Func {
	f, err := Compile(src)
	if err != nil {
		panic("intersect: Compile(" + strconv.Quote(src) + "): " + err.Error())
	}
	return f
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF.
func parseterm(scan *lexer, until operator) (*node, error) {
	n, err := parselhs(scan, until)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum, tokenIdent, tokenOpen:
			// Juxtaposition is not multiplication.
			return nil, &TermError{Col: tok.pos, Text: tok.text}
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				panic("intersect: no binary operator for " + strconv.Quote(tok.text))
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenClose, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("intersect: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary
// and any encountered token must be valid as the start of a subexpression.
func parselhs(scan *lexer, until operator) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil && !isRangeErr(err) {
			// The lexer only produces digits with at most one dot.
			panic("intersect: invalid number: " + tok.text + " (" + err.Error() + ")")
		}
		return &node{kind: nodeNum, name: tok.text, num: v}, nil
	case tokenIdent:
		if tok.text == Var {
			return &node{kind: nodeVar, name: tok.text}, nil
		}
		fn := builtins[tok.text]
		if fn == nil {
			return nil, &NameError{Col: tok.pos, Name: tok.text}
		}
		arg, err := parsecall(scan, fn)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, name: fn.name, fn: fn, left: arg}, nil
	case tokenOp:
		// unary operator
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, prec)
		if err != nil {
			return nil, err
		}
		return &node{kind: prec.op, left: rhs}, nil
	case tokenOpen:
		return parsegroup(scan)
	case tokenClose:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("intersect: unknown token: " + tok.String())
	}
}

// parsegroup parses the remainder of a bracketed subexpression after its open
// bracket.
func parsegroup(scan *lexer) (*node, error) {
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	if end := scan.must(); end.kind != tokenClose {
		return nil, itShouldNotHaveEndedThisWay(end, true)
	}
	return n, nil
}

// parsecall parses the parenthesized argument to a call of fn.
func parsecall(scan *lexer, fn *builtin) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOpen {
		return nil, &CallError{Col: tok.pos, Func: fn.name}
	}
	return parsegroup(scan)
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. open is whether the subexpression began
// with an open bracket.
func itShouldNotHaveEndedThisWay(tok lexToken, open bool) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		if !open {
			panic("intersect: EOF is a valid end without an open bracket")
		}
		return &BracketError{Col: tok.pos, Left: "(", Right: ""}
	case tokenClose:
		// A close bracket at the end of the whole input has no partner.
		return &BracketError{Col: tok.pos, Left: "", Right: tok.text}
	default:
		panic("intersect: it really should not have ended this way: " + tok.String())
	}
}

// Vars returns the variable names used when evaluating the formula. The
// result is either empty or just Var.
func (f *Func) Vars() []string {
	if f.n.hasVar() {
		return []string{Var}
	}
	return nil
}

// String creates a string representation of the parsed formula, with
// alternating round and square brackets grouping each term.
func (f *Func) String() string {
	var b strings.Builder
	f.n.fmt(&b, false)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodeNop}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
