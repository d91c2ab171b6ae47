// Package flow describes stabilizer flows: claims that a circuit maps an input
// Pauli product onto an output Pauli product, optionally xor'd with measurement
// results.
package flow

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"qtermstab/pauli"
)

// ErrParse is returned for text that is not a flow.
var ErrParse = errors.New("invalid flow")

// Flow is the claim Input -> Output xor rec(m) for each m in Measurements.
// Measurements holds relative record indices; -1 is the circuit's last result.
type Flow struct {
	Input        pauli.String
	Output       pauli.String
	Measurements []int
}

var recRegex = regexp.MustCompile(`^rec\((-?\d+)\)$`)

// Parse reads "IN -> OUT". Each side is "1", a Pauli string, or terms joined by
// "xor"; the output side may also hold rec(-k) terms.
func Parse(text string) (Flow, error) {
	in, out, ok := strings.Cut(text, "->")
	if !ok {
		return Flow{}, errors.Wrapf(ErrParse, "%q: missing '->'", text)
	}

	input, inRecs, err := parseSide(in)
	if err != nil {
		return Flow{}, errors.Wrapf(err, "%q", text)
	}
	if len(inRecs) > 0 {
		return Flow{}, errors.Wrapf(ErrParse, "%q: measurement records on the input side", text)
	}
	output, recs, err := parseSide(out)
	if err != nil {
		return Flow{}, errors.Wrapf(err, "%q", text)
	}

	n := max(input.NumQubits, output.NumQubits)
	return Flow{
		Input:        input.Resized(n),
		Output:       output.Resized(n),
		Measurements: recs,
	}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(text string) Flow {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseAll parses each line.
func ParseAll(texts []string) ([]Flow, error) {
	out := make([]Flow, 0, len(texts))
	for _, text := range texts {
		f, err := Parse(text)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func parseSide(text string) (pauli.String, []int, error) {
	side := strings.TrimSpace(text)
	if side == "" {
		return pauli.String{}, nil, errors.Wrap(ErrParse, "empty side")
	}
	if side == "1" {
		return pauli.New(0), nil, nil
	}

	var p *pauli.String
	var recs []int
	for _, term := range strings.Split(side, " xor ") {
		term = strings.TrimSpace(term)
		if m := recRegex.FindStringSubmatch(term); m != nil {
			k, err := strconv.Atoi(m[1])
			if err != nil {
				return pauli.String{}, nil, errors.Wrapf(ErrParse, "bad record %q", term)
			}
			recs = append(recs, k)
			continue
		}
		if p != nil {
			return pauli.String{}, nil, errors.Wrapf(ErrParse, "more than one pauli term in %q", side)
		}
		parsed, err := pauli.Parse(term)
		if err != nil {
			return pauli.String{}, nil, errors.Wrap(ErrParse, err.Error())
		}
		p = &parsed
	}
	if p == nil {
		return pauli.New(0), recs, nil
	}
	return *p, recs, nil
}

// NumQubits is the width of the flow's Pauli terms.
func (f Flow) NumQubits() int {
	return f.Input.NumQubits
}

// UsesMeasurements reports whether the flow claims anything about results.
func (f Flow) UsesMeasurements() bool {
	return len(f.Measurements) > 0
}

// Equal reports whether both flows make the same claim.
func (f Flow) Equal(o Flow) bool {
	return f.Input.Equal(o.Input) && f.Output.Equal(o.Output) && slices.Equal(f.Measurements, o.Measurements)
}

// String renders the flow in the form Parse accepts.
func (f Flow) String() string {
	return fmt.Sprintf("%s -> %s", renderSide(f.Input, nil), renderSide(f.Output, f.Measurements))
}

func renderSide(p pauli.String, recs []int) string {
	var terms []string
	if !p.IsIdentity() || p.Sign {
		s := p.String()
		terms = append(terms, strings.TrimPrefix(s, "+"))
	}
	for _, k := range recs {
		terms = append(terms, fmt.Sprintf("rec(%d)", k))
	}
	if len(terms) == 0 {
		return "1"
	}
	return strings.Join(terms, " xor ")
}
