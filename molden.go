package main

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

// moldenHeader is the mandatory first line of a Molden file.
const moldenHeader = "[Molden Format]"

// Section keys recognized by the extractors. The atoms section comes
// in two variants distinguished only by the unit tag appended to the
// header line.
const (
	secAtomsAU   = "[Atoms] AU"
	secAtomsAngs = "[Atoms] Angs"
	secFreq      = "[FREQ]"
	secNormCoord = "[FR-NORM-COORD]"
)

// headerRe matches a bracketed section header with an optional unit
// tag. Header lines are the only structural delimiters of the format.
var headerRe = regexp.MustCompile(`^\[[\w-]+\]\s*(AU|Angs)?`)

// RawBlocks maps a section header line to the stripped content lines
// following it, up to the next header.
type RawBlocks map[string][]string

// CheckHeader consumes the first line of the input and verifies that
// it is the Molden format marker.
func CheckHeader(scanner *bufio.Scanner) error {
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != moldenHeader {
		return fmt.Errorf("%w; are you sure this is a Molden file?",
			ErrNotMolden)
	}
	return nil
}

// ReadBlocks groups the lines remaining after CheckHeader into
// sections keyed by their full header line, unit tag included, so the
// two atoms variants stay distinct. Blank lines are dropped, and any
// content before the first header is discarded.
func ReadBlocks(scanner *bufio.Scanner) (RawBlocks, error) {
	blocks := make(RawBlocks)
	var (
		header string
		block  []string
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case headerRe.MatchString(line):
			if header != "" {
				blocks[header] = block
			}
			header = line
			block = nil
		case line == "" || header == "":
		default:
			block = append(block, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// the loop only commits a section when the next header appears,
	// so the last one is still open here
	if header != "" {
		blocks[header] = block
	}
	return blocks, nil
}
