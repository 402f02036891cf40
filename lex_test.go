package intersect

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{"   ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, 0},
		{"1.", []lexToken{{text: "1.", kind: tokenNum, pos: 1}}, 0},
		{".1", []lexToken{{text: ".1", kind: tokenNum, pos: 1}}, 0},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 0},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1^0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "^", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}, 0},
		{"1.1.1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 5}}, 1},
		{".", []lexToken{{pos: 1}}, 1},
		{"1e1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 3}}, 1},
		{"2x", []lexToken{{pos: 1}}, 1},
		// identifiers
		{"x", []lexToken{{text: "x", kind: tokenIdent, pos: 1}}, 0},
		{"log10", []lexToken{{text: "log10", kind: tokenIdent, pos: 1}}, 0},
		{"sqrt(", []lexToken{{text: "sqrt", kind: tokenIdent, pos: 1}, {text: "(", kind: tokenOpen, pos: 5}}, 0},
		{"invalid_function", []lexToken{{text: "invalid_function", kind: tokenIdent, pos: 1}}, 0},
		{"π", []lexToken{{text: "π", kind: tokenIdent, pos: 1}}, 0},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, 0},
		{"x--y", []lexToken{{text: "x", kind: tokenIdent, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "-", kind: tokenOp, pos: 3}, {text: "y", kind: tokenIdent, pos: 4}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{"\t", []lexToken{{pos: 1}}, 1},
		{"[x]", []lexToken{{pos: 1}, {text: "x", kind: tokenIdent, pos: 2}, {pos: 3}}, 2},
		{"x$", []lexToken{{text: "x", kind: tokenIdent, pos: 1}, {pos: 2}}, 1},
		{"$x", []lexToken{{pos: 1}, {text: "x", kind: tokenIdent, pos: 2}}, 1},
		{"$$", []lexToken{{pos: 1}, {pos: 2}}, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		got, err := scan.next()
		if err != nil || got.kind != tokenEOF {
			t.Errorf("scanning %q: want EOF, got %v with error %v", c.src, got, err)
		}
		for got, err := scan.next(); err != io.EOF; got, err = scan.next() {
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestLexErrorPos(t *testing.T) {
	cases := []struct {
		src  string
		col  int
		kind string
	}{
		{"$", 1, ""},
		{"x $", 3, ""},
		{"1.2.3", 4, "number"},
		{"2x", 2, "number"},
		{"x + 10y", 7, "number"},
	}
	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		var err error
		for err == nil {
			var tok lexToken
			tok, err = scan.next()
			if tok.kind == tokenEOF {
				break
			}
		}
		var le *LexError
		if !errors.As(err, &le) {
			t.Errorf("scanning %q: want *LexError, got %#v", c.src, err)
			continue
		}
		if le.Col != c.col || le.Kind != c.kind {
			t.Errorf("scanning %q: want col %d kind %q, got col %d kind %q", c.src, c.col, c.kind, le.Col, le.Kind)
		}
		if !errors.Is(err, ErrInvalidSyntax) {
			t.Errorf("scanning %q: %v does not unwrap to ErrInvalidSyntax", c.src, err)
		}
	}
}
