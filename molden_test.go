package main

import (
	"bufio"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCheckHeader(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"[Molden Format]\n[FREQ]\n", true},
		{"  [Molden Format]  \n", true},
		{"[MOLDEN FORMAT]\n", false},
		{"#INFO\n[Molden Format]\n", false},
		{"", false},
	}
	for _, test := range tests {
		err := CheckHeader(bufio.NewScanner(strings.NewReader(test.in)))
		if test.ok && err != nil {
			t.Errorf("CheckHeader(%q): got %v, wanted nil\n", test.in, err)
		}
		if !test.ok && !errors.Is(err, ErrNotMolden) {
			t.Errorf("CheckHeader(%q): got %v, wanted ErrNotMolden\n",
				test.in, err)
		}
	}
}

func TestReadBlocks(t *testing.T) {
	in := `stray comment before any header
[Atoms] Angs
H 1 1 0.0 0.0 0.0
H 2 1 0.0 0.0 0.74

[FREQ]
4500.0
[GEOMETRIES] XYZ
2

H 0.0 0.0 0.0
H 0.0 0.0 0.74
[FR-NORM-COORD]
vibration 1
0.0 0.0 0.1
0.0 0.0 -0.1`
	got, err := ReadBlocks(bufio.NewScanner(strings.NewReader(in)))
	if err != nil {
		t.Fatalf("got %v, wanted nil\n", err)
	}
	want := RawBlocks{
		"[Atoms] Angs": {
			"H 1 1 0.0 0.0 0.0",
			"H 2 1 0.0 0.0 0.74",
		},
		"[FREQ]": {"4500.0"},
		"[GEOMETRIES] XYZ": {
			"2",
			"H 0.0 0.0 0.0",
			"H 0.0 0.0 0.74",
		},
		// no trailing header, but the last section must still be kept
		"[FR-NORM-COORD]": {
			"vibration 1",
			"0.0 0.0 0.1",
			"0.0 0.0 -0.1",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got\n%#v, wanted\n%#v\n", got, want)
	}
}

func TestReadBlocksEmptySection(t *testing.T) {
	in := "[FREQ]\n[FR-NORM-COORD]\nvibration 1\n1.0 0.0 0.0\n"
	got, err := ReadBlocks(bufio.NewScanner(strings.NewReader(in)))
	if err != nil {
		t.Fatalf("got %v, wanted nil\n", err)
	}
	want := RawBlocks{
		"[FREQ]":          nil,
		"[FR-NORM-COORD]": {"vibration 1", "1.0 0.0 0.0"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got\n%#v, wanted\n%#v\n", got, want)
	}
}
