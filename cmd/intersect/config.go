package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/intersect"
)

// config holds the settings that can come from a config file. Flags given
// explicitly override it.
type config struct {
	// Domain is the sampled interval as [lo, hi].
	Domain []float64 `yaml:"domain"`
	// Points is the number of samples.
	Points int `yaml:"points"`
	// Tolerance is the largest difference that counts as an intersection.
	Tolerance float64 `yaml:"tolerance"`
	// Crossings is whether to print every sign change, not just the nearest
	// sample.
	Crossings bool `yaml:"crossings"`
	// Serve is the address to serve HTTP on. Empty means to solve once.
	Serve string `yaml:"serve"`
}

func defaultConfig() config {
	return config{
		Domain:    []float64{intersect.DefaultLo, intersect.DefaultHi},
		Points:    intersect.DefaultPoints,
		Tolerance: intersect.DefaultTolerance,
	}
}

// decodeConfig reads YAML config over the defaults. Keys that are not
// settings are errors. An empty document leaves the defaults.
func decodeConfig(r io.Reader) (config, error) {
	cfg := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.check(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// readConfig reads a config file.
func readConfig(name string) (config, error) {
	f, err := os.Open(name)
	if err != nil {
		return config{}, err
	}
	defer f.Close()
	cfg, err := decodeConfig(f)
	if err != nil {
		return config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// check reports settings that are malformed regardless of their values.
// Values that cannot make a grid are left for the solver to report.
func (c config) check() error {
	if len(c.Domain) != 2 {
		return fmt.Errorf("domain must be [lo, hi], not %v", c.Domain)
	}
	return nil
}

// options converts the config to solver options.
func (c config) options() []intersect.SolveOption {
	return []intersect.SolveOption{
		intersect.Domain(c.Domain[0], c.Domain[1]),
		intersect.Points(c.Points),
		intersect.Tolerance(c.Tolerance),
	}
}
