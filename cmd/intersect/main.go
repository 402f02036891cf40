// Command intersect finds where two functions of x meet.
//
// Usage:
//
//	intersect [flags] [f1 [f2]]
//
// Formulas not given as arguments are prompted for. With -serve, intersect
// instead answers requests over HTTP; see openapi.yaml.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/zephyrtronium/intersect"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("intersect: ")
	var (
		confname    string
		lo, hi, tol float64
		n           int
		all, asJSON bool
		addr        string
	)
	flag.StringVar(&confname, "config", "", "YAML config file")
	flag.Float64Var(&lo, "lo", intersect.DefaultLo, "low end of the sampled interval")
	flag.Float64Var(&hi, "hi", intersect.DefaultHi, "high end of the sampled interval")
	flag.IntVar(&n, "n", intersect.DefaultPoints, "number of sample points")
	flag.Float64Var(&tol, "tol", intersect.DefaultTolerance, "largest difference that counts as an intersection")
	flag.BoolVar(&all, "all", false, "print every crossing")
	flag.BoolVar(&asJSON, "json", false, "print the solution and samples as JSON")
	flag.StringVar(&addr, "serve", "", "serve HTTP on this address instead of solving once")
	flag.Parse()

	cfg := defaultConfig()
	if confname != "" {
		c, err := readConfig(confname)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lo":
			cfg.Domain[0] = lo
		case "hi":
			cfg.Domain[1] = hi
		case "n":
			cfg.Points = n
		case "tol":
			cfg.Tolerance = tol
		case "all":
			cfg.Crossings = all
		case "serve":
			cfg.Serve = addr
		}
	})

	if cfg.Serve != "" {
		if err := serve(context.Background(), cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	fs, err := askFormulas(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	sol, err := intersect.Solve(fs[0], fs[1], cfg.options()...)
	if err != nil && !errors.Is(err, intersect.ErrNoIntersection) {
		log.Print(err)
	}
	if asJSON {
		err = errors.Join(err, writeJSON(os.Stdout, fs[0], fs[1], sol, err))
	} else {
		err = errors.Join(err, writeText(os.Stdout, sol, err, cfg.Crossings))
	}
	if err != nil {
		os.Exit(1)
	}
}
