package circuit

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"qtermstab/gates"
)

// ErrParse is returned for lines that are not operations.
var ErrParse = errors.New("invalid circuit text")

// Pre-compiled regexps for circuit parsing.
var (
	operationRegex = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)\s*(?:\(([^)]*)\))?(.*)$`)
	qubitRegex     = regexp.MustCompile(`^(!?)(\d+)$`)
	pauliRegex     = regexp.MustCompile(`^(!?)([XYZxyz])(\d+)$`)
	recordRegex    = regexp.MustCompile(`^rec\[-(\d+)\]$`)
	fractionRegex  = regexp.MustCompile(`^(\d*\.?\d+)\s*/\s*(\d*\.?\d+)$`)
)

// Parse reads one operation per line, e.g.
//
//	H 0 1
//	CX 0 1 2 3
//	M(0.01) 0
//	MPP X0*Y1*Z2 !X3*X4
//
// Text after '#' is ignored.
func Parse(text string) (Circuit, error) {
	var c Circuit
	for n, raw := range strings.Split(text, "\n") {
		line := raw
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := c.parseLine(line); err != nil {
			return Circuit{}, errors.Wrapf(err, "line %d", n+1)
		}
	}
	return c, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(text string) Circuit {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Circuit) parseLine(line string) error {
	m := operationRegex.FindStringSubmatch(line)
	if m == nil {
		return errors.Wrapf(ErrParse, "%q", line)
	}
	g, err := gates.Default.At(m[1])
	if err != nil {
		return err
	}

	var args []float64
	if strings.TrimSpace(m[2]) != "" {
		for _, part := range strings.Split(m[2], ",") {
			v, ok := parseArg(part)
			if !ok {
				return errors.Wrapf(ErrParse, "bad argument %q", part)
			}
			args = append(args, v)
		}
	}

	var targets []Target
	for _, word := range strings.Fields(m[3]) {
		ts, err := parseTargetWord(word)
		if err != nil {
			return err
		}
		targets = append(targets, ts...)
	}
	return c.Append(g.ID, targets, args)
}

// parseTargetWord reads a qubit, a record, or a '*'-joined Pauli product.
func parseTargetWord(word string) ([]Target, error) {
	if m := qubitRegex.FindStringSubmatch(word); m != nil {
		t, err := qubitTarget(m[2])
		if err != nil {
			return nil, err
		}
		if m[1] == "!" {
			t = t.Inverted()
		}
		return []Target{t}, nil
	}
	if m := recordRegex.FindStringSubmatch(word); m != nil {
		k, err := strconv.Atoi(m[1])
		if err != nil || k == 0 || k > int(MaxQubit) {
			return nil, errors.Wrapf(ErrParse, "bad record %q", word)
		}
		return []Target{Rec(-k)}, nil
	}

	var out []Target
	for k, term := range strings.Split(word, "*") {
		m := pauliRegex.FindStringSubmatch(term)
		if m == nil {
			return nil, errors.Wrapf(ErrParse, "bad target %q", word)
		}
		q, err := qubitTarget(m[3])
		if err != nil {
			return nil, err
		}
		t := Pauli(q.Value(), m[2][0])
		if m[1] == "!" {
			t = t.Inverted()
		}
		if k > 0 {
			out = append(out, Combiner())
		}
		out = append(out, t)
	}
	return out, nil
}

func qubitTarget(digits string) (Target, error) {
	q, err := strconv.ParseUint(digits, 10, 32)
	if err != nil || q > uint64(MaxQubit) {
		return 0, errors.Wrapf(ErrParse, "bad qubit index %q", digits)
	}
	return Qubit(uint32(q)), nil
}

// parseArg reads a plain number or a simple fraction such as "1/8".
func parseArg(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if m := fractionRegex.FindStringSubmatch(s); m != nil {
		num, err1 := strconv.ParseFloat(m[1], 64)
		den, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil || den == 0 {
			return 0, false
		}
		return num / den, true
	}
	return 0, false
}

// formatArg prints an argument, using a short fraction when one fits.
func formatArg(v float64) string {
	for _, den := range []float64{2, 4, 8, 16, 3, 6} {
		num := v * den
		if r := math.Round(num); r != 0 && math.Abs(num-r) < 1e-12 && math.Abs(r) < den {
			return fmt.Sprintf("%g/%g", r, den)
		}
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
