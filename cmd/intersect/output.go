package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/zephyrtronium/intersect"
)

// number is a float64 that encodes as null when it is not finite.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func numbers(xs []float64) []number {
	r := make([]number, len(xs))
	for i, x := range xs {
		r[i] = number(x)
	}
	return r
}

type crossingJSON struct {
	Index int    `json:"index"`
	X     number `json:"x"`
	Y     number `json:"y"`
	Exact bool   `json:"exact"`
}

type solutionJSON struct {
	Status    string         `json:"status"`
	F1        string         `json:"f1"`
	F2        string         `json:"f2"`
	Found     bool           `json:"found"`
	X         *float64       `json:"x,omitempty"`
	Y         *float64       `json:"y,omitempty"`
	Label     string         `json:"label"`
	Crossings []crossingJSON `json:"crossings"`
	Grid      []number       `json:"grid,omitempty"`
	Y1        []number       `json:"y1,omitempty"`
	Y2        []number       `json:"y2,omitempty"`
}

type errorJSON struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// newSolutionJSON converts a solution for encoding. sol must not be nil. The
// samples are included only if samples is true.
func newSolutionJSON(f1, f2 string, sol *intersect.Solution, err error, samples bool) solutionJSON {
	p := sol.Intersection
	r := solutionJSON{
		Status:    intersect.Status(err),
		F1:        f1,
		F2:        f2,
		Found:     p.Found,
		Label:     p.String(),
		Crossings: make([]crossingJSON, 0, len(sol.Crossings)),
	}
	if p.Found {
		r.X, r.Y = &p.X, &p.Y
	}
	for _, c := range sol.Crossings {
		r.Crossings = append(r.Crossings, crossingJSON{Index: c.Index, X: number(c.X), Y: number(c.Y), Exact: c.Exact})
	}
	if samples {
		r.Grid = numbers(sol.Grid)
		r.Y1 = numbers(sol.Y1)
		r.Y2 = numbers(sol.Y2)
	}
	return r
}

func newErrorJSON(err error) errorJSON {
	return errorJSON{Error: intersect.Status(err), Detail: err.Error()}
}

// writeJSON writes the result of one solve as indented JSON.
func writeJSON(w io.Writer, f1, f2 string, sol *intersect.Solution, err error) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if sol == nil {
		return enc.Encode(newErrorJSON(err))
	}
	return enc.Encode(newSolutionJSON(f1, f2, sol, err, true))
}

// writeText writes the status line and, if there is one, the intersection.
// With all, every crossing follows.
func writeText(w io.Writer, sol *intersect.Solution, err error, all bool) error {
	if _, err := fmt.Fprintln(w, intersect.Status(err)); err != nil {
		return err
	}
	if sol == nil {
		return nil
	}
	if sol.Intersection.Found {
		if _, err := fmt.Fprintf(w, "intersection: %v\n", sol.Intersection); err != nil {
			return err
		}
	}
	if all {
		for _, c := range sol.Crossings {
			if _, err := fmt.Fprintf(w, "crossing: (%.2f, %.2f)\n", c.X, c.Y); err != nil {
				return err
			}
		}
	}
	return nil
}

// isInputError reports whether err is the fault of what was asked rather
// than of the program.
func isInputError(err error) bool {
	var (
		ge *intersect.GridError
		te *intersect.ToleranceError
	)
	return errors.Is(err, intersect.ErrEmptyInput) ||
		errors.Is(err, intersect.ErrInvalidSyntax) ||
		errors.As(err, &ge) ||
		errors.As(err, &te)
}
