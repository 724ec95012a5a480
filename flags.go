package main

import (
	"flag"
	"fmt"
	"os"
)

const (
	VERSION = "1.0.0"
	help    = `Requirements:
- an input file in Molden format, beginning with the literal
  [Molden Format] header and containing [Atoms], [FREQ], and
  [FR-NORM-COORD] sections
  - inputs compressed with gzip (.gz) or zstd (.zst) are decompressed
    transparently
- optionally, a TOML config file with a [masses] table of per-symbol
  mass overrides and a freqscale factor
The AbinsData JSON record is written to stdout unless -o is given.
Flags:
`
)

var (
	confFile   = flag.String("c", "", "optional TOML run configuration `file`")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	output     = flag.String("o", "", "write the JSON record to `file` instead of stdout")
	version    = flag.Bool("version", false, "print the version and exit")
)

// ParseFlags parses command line flags and returns a slice of
// the remaining arguments
func ParseFlags() []string {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Printf("molden2abins version: %s\n", VERSION)
		os.Exit(0)
	}
	return flag.Args()
}
