package main

import "fmt"

// Bohr is the Bohr radius in angstrom (CODATA 2014), used to convert
// AU-tagged geometries.
const Bohr = 0.5291772105638411

// atomicMass holds standard atomic masses in amu indexed by proton
// number, through Bi. Tc and Pm have no stable isotope; the mass of
// the longest-lived one is listed.
var atomicMass = [...]float64{
	0, // proton numbers start at 1
	1.008, 4.002602, 6.94, 9.0121831, 10.81,
	12.011, 14.007, 15.999, 18.998403163, 20.1797,
	22.98976928, 24.305, 26.9815385, 28.085, 30.973761998,
	32.06, 35.45, 39.948, 39.0983, 40.078,
	44.955908, 47.867, 50.9415, 51.9961, 54.938044,
	55.845, 58.933194, 58.6934, 63.546, 65.38,
	69.723, 72.63, 74.921595, 78.971, 79.904,
	83.798, 85.4678, 87.62, 88.90584, 91.224,
	92.90637, 95.95, 97.90721, 101.07, 102.9055,
	106.42, 107.8682, 112.414, 114.818, 118.71,
	121.76, 127.6, 126.90447, 131.293, 132.90545196,
	137.327, 138.90547, 140.116, 140.90766, 144.242,
	144.91276, 150.36, 151.964, 157.25, 158.92535,
	162.5, 164.93033, 167.259, 168.93422, 173.054,
	174.9668, 178.49, 180.94788, 183.84, 186.207,
	190.23, 192.217, 195.084, 196.966569, 200.592,
	204.38, 207.2, 208.9804,
}

// massOf returns the tabulated atomic mass for proton number z.
func massOf(z int) (float64, error) {
	if z < 1 || z >= len(atomicMass) {
		return 0, fmt.Errorf("%w for proton number %d", ErrUnknownElement, z)
	}
	return atomicMass[z], nil
}
