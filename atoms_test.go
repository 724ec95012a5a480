package main

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestParseAtoms(t *testing.T) {
	blocks := RawBlocks{
		secAtomsAngs: {
			"H 1 1 0.0 0.0 0.0",
			"H 2 1 0.0 0.0 0.74",
		},
	}
	got, err := ParseAtoms(blocks, defConf())
	if err != nil {
		t.Fatalf("got %v, wanted nil\n", err)
	}
	want := map[string]*AtomData{
		"atom_0": {
			Coord:  []float64{0, 0, 0},
			Mass:   1.008,
			Sort:   0,
			Symbol: "H",
		},
		"atom_1": {
			Coord:  []float64{0, 0, 0.74},
			Mass:   1.008,
			Sort:   1,
			Symbol: "H",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got\n%v, wanted\n%v\n", got, want)
	}
}

// The same geometry tagged AU and Angs must agree after conversion.
func TestParseAtomsUnits(t *testing.T) {
	ang := RawBlocks{
		secAtomsAngs: {
			"O 1 8 0.0 0.0 0.119262",
			"H 2 1 0.0 0.763239 -0.477047",
		},
	}
	au := RawBlocks{
		secAtomsAU: {
			fmt.Sprintf("O 1 8 0.0 0.0 %.12f", 0.119262/Bohr),
			fmt.Sprintf("H 2 1 0.0 %.12f %.12f", 0.763239/Bohr, -0.477047/Bohr),
		},
	}
	want, err := ParseAtoms(ang, defConf())
	if err != nil {
		t.Fatalf("got %v, wanted nil\n", err)
	}
	got, err := ParseAtoms(au, defConf())
	if err != nil {
		t.Fatalf("got %v, wanted nil\n", err)
	}
	for key, wa := range want {
		ga, ok := got[key]
		if !ok {
			t.Fatalf("missing %s\n", key)
		}
		for i := range wa.Coord {
			if !near(ga.Coord[i], wa.Coord[i]) {
				t.Errorf("%s coord %d: got %v, wanted %v\n",
					key, i, ga.Coord[i], wa.Coord[i])
			}
		}
	}
}

// Sort indices follow file line order even when the printed index
// field disagrees.
func TestParseAtomsOrder(t *testing.T) {
	blocks := RawBlocks{
		secAtomsAngs: {
			"O 3 8 0.0 0.0 0.1",
			"H 1 1 0.0 0.7 -0.4",
			"H 2 1 0.0 -0.7 -0.4",
		},
	}
	atoms, err := ParseAtoms(blocks, defConf())
	if err != nil {
		t.Fatalf("got %v, wanted nil\n", err)
	}
	want := []string{"O", "H", "H"}
	for i, sym := range want {
		atom, ok := atoms[fmt.Sprintf("atom_%d", i)]
		if !ok {
			t.Fatalf("missing atom_%d\n", i)
		}
		if atom.Sort != i || atom.Symbol != sym {
			t.Errorf("atom_%d: got (%d, %s), wanted (%d, %s)\n",
				i, atom.Sort, atom.Symbol, i, sym)
		}
	}
}

func TestParseAtomsMassOverride(t *testing.T) {
	blocks := RawBlocks{
		secAtomsAngs: {"H 1 1 0.0 0.0 0.0"},
	}
	conf := &Config{
		Masses:    map[string]float64{"H": 2.014101778},
		FreqScale: 1,
	}
	atoms, err := ParseAtoms(blocks, conf)
	if err != nil {
		t.Fatalf("got %v, wanted nil\n", err)
	}
	if got := atoms["atom_0"].Mass; got != 2.014101778 {
		t.Errorf("got %v, wanted 2.014101778\n", got)
	}
}

func TestParseAtomsErrors(t *testing.T) {
	tests := []struct {
		blocks RawBlocks
		want   error
	}{
		{RawBlocks{secFreq: {"1.0"}}, ErrMissingSection},
		{RawBlocks{secAtomsAngs: {"H 1 1 0.0 0.0"}}, ErrMalformedLine},
		{RawBlocks{secAtomsAngs: {"H x 1 0.0 0.0 0.0"}}, ErrMalformedLine},
		{RawBlocks{secAtomsAngs: {"H 1 1 0.0 oops 0.0"}}, ErrMalformedLine},
		{RawBlocks{secAtomsAngs: {"Xx 1 999 0.0 0.0 0.0"}}, ErrUnknownElement},
	}
	for _, test := range tests {
		_, err := ParseAtoms(test.blocks, defConf())
		if !errors.Is(err, test.want) {
			t.Errorf("got %v, wanted %v\n", err, test.want)
		}
	}
}
