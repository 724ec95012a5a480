package main

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// AtomData describes one atom of the converted system in the form
// Abins expects: angstrom coordinates, atomic mass in amu, and the
// zero-based position of the atom in the input file.
type AtomData struct {
	Coord  []float64 `json:"coord"`
	Mass   float64   `json:"mass"`
	Sort   int       `json:"sort"`
	Symbol string    `json:"symbol"`
}

// ParseAtoms extracts the atoms section from blocks and returns a map
// from "atom_<sort>" identifiers to the parsed records. The AU
// variant of the section is preferred and its coordinates converted
// to angstrom; sort indices follow file line order. conf may override
// the tabulated mass per element symbol.
func ParseAtoms(blocks RawBlocks, conf *Config) (map[string]*AtomData, error) {
	sec := secAtomsAU
	lines, ok := blocks[sec]
	if !ok {
		sec = secAtomsAngs
		lines, ok = blocks[sec]
	}
	if !ok {
		return nil, fmt.Errorf("%w: want %q or %q",
			ErrMissingSection, secAtomsAU, secAtomsAngs)
	}
	if len(lines) == 0 {
		return map[string]*AtomData{}, nil
	}
	order := make([]*AtomData, len(lines))
	coords := mat.NewDense(len(lines), 3, nil)
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 6 {
			return nil, fmt.Errorf("%w: want 6 fields in %s line %q",
				ErrMalformedLine, sec, line)
		}
		// the printed 1-based index is checked for form but the sort
		// index always follows line order
		if _, err := strconv.Atoi(fields[1]); err != nil {
			return nil, fmt.Errorf("%w: bad index field in %s line %q",
				ErrMalformedLine, sec, line)
		}
		z, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: bad proton number in %s line %q",
				ErrMalformedLine, sec, line)
		}
		for j, f := range fields[3:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad coordinate in %s line %q",
					ErrMalformedLine, sec, line)
			}
			coords.Set(i, j, v)
		}
		mass, err := massOf(z)
		if err != nil {
			return nil, fmt.Errorf("%w in %s line %q", err, sec, line)
		}
		if m, ok := conf.Masses[fields[0]]; ok {
			mass = m
		}
		order[i] = &AtomData{Mass: mass, Sort: i, Symbol: fields[0]}
	}
	if sec == secAtomsAU {
		coords.Scale(Bohr, coords)
	}
	atoms := make(map[string]*AtomData, len(order))
	for i, atom := range order {
		atom.Coord = mat.Row(nil, i, coords)
		atoms[fmt.Sprintf("atom_%d", i)] = atom
	}
	return atoms, nil
}
