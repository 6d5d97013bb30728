package lut

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LUT is a parsed color lookup table.
//
// A 3D table holds Size*Size*Size RGB triples indexed red-fastest (red
// varies quickest, then green, then blue), the layout mandated by the
// .cube specification. A 1D table holds Size triples, one output value
// per channel per input level.
type LUT struct {
	// Title is the TITLE line of the file, if present.
	Title string

	// Is3D distinguishes 3D cubes from 1D curves.
	Is3D bool

	// Size is the edge length (3D) or entry count (1D).
	Size int

	// Data holds the RGB triples, flattened. Length is Size^3*3 for 3D
	// tables and Size*3 for 1D tables.
	Data []float64
}

// Parse reads a .cube file.
//
// Recognized directives are TITLE, LUT_3D_SIZE and LUT_1D_SIZE. Blank
// lines and '#' comments are skipped. Any other line must be a triple of
// floats. DOMAIN_MIN/DOMAIN_MAX and other directives are ignored; the
// table is assumed to span [0,1].
func Parse(r io.Reader) (*LUT, error) {
	l := &LUT{Is3D: true}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "TITLE"):
			if start := strings.Index(line, `"`); start >= 0 {
				if end := strings.Index(line[start+1:], `"`); end >= 0 {
					l.Title = line[start+1 : start+1+end]
				}
			}

		case strings.HasPrefix(line, "LUT_3D_SIZE"):
			size, err := lastFieldInt(line)
			if err != nil {
				return nil, fmt.Errorf("bad LUT_3D_SIZE line %q: %w", line, err)
			}
			l.Is3D = true
			l.Size = size

		case strings.HasPrefix(line, "LUT_1D_SIZE"):
			size, err := lastFieldInt(line)
			if err != nil {
				return nil, fmt.Errorf("bad LUT_1D_SIZE line %q: %w", line, err)
			}
			l.Is3D = false
			l.Size = size

		default:
			r, g, b, ok := parseTriple(line)
			if !ok {
				// Unknown directives (DOMAIN_MIN etc.) are tolerated.
				continue
			}
			l.Data = append(l.Data, r, g, b)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read LUT: %w", err)
	}

	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *LUT) validate() error {
	if l.Size <= 0 {
		return fmt.Errorf("LUT has no size declaration")
	}
	want := l.Size * 3
	if l.Is3D {
		want = l.Size * l.Size * l.Size * 3
	}
	if len(l.Data) != want {
		return fmt.Errorf("LUT data has %d values, want %d for size %d", len(l.Data), want, l.Size)
	}
	return nil
}

// lastFieldInt parses the final whitespace-separated field of a directive
// line as an integer.
func lastFieldInt(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("missing value")
	}
	return strconv.Atoi(fields[len(fields)-1])
}

// parseTriple parses a data line of three floats.
func parseTriple(line string) (r, g, b float64, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, 0, false
	}
	vals := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], true
}
