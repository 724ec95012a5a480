package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the optional run configuration. Masses overrides the
// tabulated atomic mass per element symbol, for isotopic substitution
// like deuteration. FreqScale is a harmonic scaling factor applied to
// every frequency; the default of 1 passes the file values through
// unchanged.
type Config struct {
	Masses    map[string]float64
	FreqScale float64
}

// LoadConfig reads a TOML run configuration. An empty filename
// returns the defaults.
func LoadConfig(filename string) (*Config, error) {
	conf := &Config{FreqScale: 1}
	if filename == "" {
		return conf, nil
	}
	cont, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(cont, conf); err != nil {
		return nil, err
	}
	return conf, nil
}
