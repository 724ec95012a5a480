package main

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// KPointsData holds the vibrational data for the single synthetic
// k-point in the layout Abins expects. Frequencies keep the unit they
// had in the input file; Molden is assumed to print recip. cm like
// Abins, but this is not verified.
type KPointsData struct {
	Frequencies         [][]float64     `json:"frequencies"`
	AtomicDisplacements [][][][]float64 `json:"atomic_displacements"`
	Weights             []float64       `json:"weights"`
	KVectors            [][]float64     `json:"k_vectors"`
	UnitCell            [][]float64     `json:"unit_cell"`
}

// ParseFreqs extracts the frequency section, one mode frequency per
// line in file order.
func ParseFreqs(blocks RawBlocks) ([]float64, error) {
	lines, ok := blocks[secFreq]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingSection, secFreq)
	}
	freqs := make([]float64, len(lines))
	for i, line := range lines {
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad frequency in %s line %q",
				ErrMalformedLine, secFreq, line)
		}
		freqs[i] = v
	}
	return freqs, nil
}

// ParseModes extracts the normal-coordinate section and returns one
// natoms x 3 eigenvector matrix per mode. A line containing the word
// "vibration" opens a new mode group; each following line holds the
// x, y, z displacement of one atom.
func ParseModes(blocks RawBlocks) ([]*mat.Dense, error) {
	lines, ok := blocks[secNormCoord]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingSection, secNormCoord)
	}
	var (
		modes  []*mat.Dense
		rows   []float64
		inMode bool
	)
	commit := func() error {
		if len(rows) == 0 {
			return fmt.Errorf("%w: empty vibration group in %s",
				ErrMalformedLine, secNormCoord)
		}
		modes = append(modes, mat.NewDense(len(rows)/3, 3, rows))
		rows = nil
		return nil
	}
	for _, line := range lines {
		switch {
		case strings.Contains(line, "vibration"):
			if inMode {
				if err := commit(); err != nil {
					return nil, err
				}
			}
			inMode = true
		case !inMode:
			return nil, fmt.Errorf("%w: %s line %q before first vibration marker",
				ErrMalformedLine, secNormCoord, line)
		default:
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: want 3 components in %s line %q",
					ErrMalformedLine, secNormCoord, line)
			}
			for _, f := range fields {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: bad component in %s line %q",
						ErrMalformedLine, secNormCoord, line)
				}
				rows = append(rows, v)
			}
		}
	}
	if inMode {
		if err := commit(); err != nil {
			return nil, err
		}
	}
	return modes, nil
}

// Interleave expands the eigenvector matrices into per-atom
// 6-vectors, following each real component with a zero imaginary
// part. The result is indexed [mode][atom][component].
func Interleave(modes []*mat.Dense) [][][]float64 {
	out := make([][][]float64, len(modes))
	for m, mode := range modes {
		n, _ := mode.Dims()
		atoms := make([][]float64, n)
		for a := 0; a < n; a++ {
			atoms[a] = []float64{
				mode.At(a, 0), 0,
				mode.At(a, 1), 0,
				mode.At(a, 2), 0,
			}
		}
		out[m] = atoms
	}
	return out
}

// AddKPointAxis wraps a mode-major displacement array in an outer
// axis of length one for the single k-point this format describes,
// yielding [kpoint][mode][atom][component].
func AddKPointAxis(modes [][][]float64) [][][][]float64 {
	return [][][][]float64{modes}
}

// SwapAtomMode transposes the middle axes of a
// [kpoint][mode][atom][component] array into the
// [kpoint][atom][mode][component] order Abins iterates in.
func SwapAtomMode(disp [][][][]float64) [][][][]float64 {
	out := make([][][][]float64, len(disp))
	for k, kpt := range disp {
		if len(kpt) == 0 {
			out[k] = [][][]float64{}
			continue
		}
		natoms := len(kpt[0])
		atoms := make([][][]float64, natoms)
		for a := 0; a < natoms; a++ {
			byMode := make([][]float64, len(kpt))
			for m := range kpt {
				byMode[m] = kpt[m][a]
			}
			atoms[a] = byMode
		}
		out[k] = atoms
	}
	return out
}

// ParseKPoints extracts the frequencies and normal-mode eigenvectors
// from blocks and assembles them with the synthesized single-k-point
// fields: one k-vector at the origin, full weight, and an all-zero
// unit cell marking the system as non-periodic.
func ParseKPoints(blocks RawBlocks, conf *Config) (*KPointsData, error) {
	freqs, err := ParseFreqs(blocks)
	if err != nil {
		return nil, err
	}
	if conf.FreqScale != 1 {
		for i := range freqs {
			freqs[i] *= conf.FreqScale
		}
	}
	modes, err := ParseModes(blocks)
	if err != nil {
		return nil, err
	}
	if len(modes) != len(freqs) {
		return nil, fmt.Errorf("%w: %d frequencies but %d vibration groups",
			ErrFreqMismatch, len(freqs), len(modes))
	}
	if len(modes) > 0 {
		want, _ := modes[0].Dims()
		for i, mode := range modes[1:] {
			if n, _ := mode.Dims(); n != want {
				return nil, fmt.Errorf("%w: vibration group %d has %d atoms, want %d",
					ErrAtomMismatch, i+2, n, want)
			}
		}
	}
	return &KPointsData{
		Frequencies:         [][]float64{freqs},
		AtomicDisplacements: SwapAtomMode(AddKPointAxis(Interleave(modes))),
		Weights:             []float64{1},
		KVectors:            [][]float64{{0, 0, 0}},
		UnitCell:            denseRows(mat.NewDense(3, 3, nil)),
	}, nil
}
