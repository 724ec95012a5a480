/*
molden2abins
------------
Convert the vibrational analysis in a Molden file into the AbinsData
JSON record consumed by the Abins inelastic-neutron-scattering
simulation in Mantid. The geometry is normalized to angstrom and the
normal-mode eigenvectors are reshaped from their Molden (mode, atom,
axis) order into the (kpoint, atom, mode, axis) order Abins iterates
in, with a single synthetic k-point at the origin.
*/

package main

import (
	"bufio"
	"errors"
	"log"
	"os"
	"runtime/pprof"
)

// Errors used throughout
var (
	ErrNotMolden      = errors.New("missing [Molden Format] header")
	ErrMissingSection = errors.New("required section not found")
	ErrMalformedLine  = errors.New("malformed line")
	ErrFreqMismatch   = errors.New("frequency count does not match mode count")
	ErrAtomMismatch   = errors.New("displacement atom count does not match geometry")
	ErrUnknownElement = errors.New("no tabulated mass")
)

// Convert reads the Molden file infile and builds the full AbinsData
// record from its atoms, frequency, and normal-coordinate sections.
func Convert(infile string, conf *Config) (*Result, error) {
	in, err := openInput(infile)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	scanner := bufio.NewScanner(in)
	if err := CheckHeader(scanner); err != nil {
		return nil, err
	}
	blocks, err := ReadBlocks(scanner)
	if err != nil {
		return nil, err
	}
	atoms, err := ParseAtoms(blocks, conf)
	if err != nil {
		return nil, err
	}
	kpts, err := ParseKPoints(blocks, conf)
	if err != nil {
		return nil, err
	}
	return Assemble(atoms, kpts)
}

func main() {
	args := ParseFlags()
	if len(args) < 1 {
		log.Fatal("molden2abins: no input file supplied")
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	conf, err := LoadConfig(*confFile)
	if err != nil {
		errExit(err, "loading config file "+*confFile)
	}
	res, err := Convert(args[0], conf)
	if err != nil {
		errExit(err, "converting "+args[0])
	}
	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			errExit(err, "creating "+*output)
		}
		defer f.Close()
		out = f
	}
	if err := WriteJSON(out, res); err != nil {
		errExit(err, "writing output")
	}
}
