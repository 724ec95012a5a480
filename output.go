package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// Schema tags identifying the record to the Abins JSON loader
const (
	abinsClass    = "AbinsData"
	mantidVersion = "6.9"
)

// Result is the complete converted record. It is assembled once and
// handed straight to the encoder.
type Result struct {
	KPointsData   *KPointsData         `json:"k_points_data"`
	AtomsData     map[string]*AtomData `json:"atoms_data"`
	AbinsClass    string               `json:"__abins_class__"`
	MantidVersion string               `json:"__mantid_version__"`
}

// Assemble merges the extractor outputs into a Result after checking
// that the displacement atom axis agrees with the atoms section.
func Assemble(atoms map[string]*AtomData, kpts *KPointsData) (*Result, error) {
	if n := len(kpts.AtomicDisplacements[0]); n != len(atoms) {
		return nil, fmt.Errorf("%w: %d atoms in displacements but %d in geometry",
			ErrAtomMismatch, n, len(atoms))
	}
	return &Result{
		KPointsData:   kpts,
		AtomsData:     atoms,
		AbinsClass:    abinsClass,
		MantidVersion: mantidVersion,
	}, nil
}

// WriteJSON encodes res to w with the 4-space indentation the Abins
// loader was written against.
func WriteJSON(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(res)
}
