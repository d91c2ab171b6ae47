package pauli

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrParse is returned when text cannot be read as a Pauli string.
var ErrParse = errors.New("invalid pauli string")

var sparseTermRegex = regexp.MustCompile(`^([IXYZixyz])(\d+)$`)

// Parse reads a Pauli string in dense form ("+XY_Z", "-ZZ", "IXI") or sparse
// form ("X0*Y1*Z5", "-Z3"). A missing sign means +.
func Parse(text string) (String, error) {
	s := strings.TrimSpace(text)
	sign := false
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		sign = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return String{}, errors.Wrapf(ErrParse, "%q: no qubits", text)
	}

	var p String
	var err error
	if strings.ContainsAny(s, "0123456789") {
		p, err = parseSparse(s)
	} else {
		p, err = parseDense(s)
	}
	if err != nil {
		return String{}, errors.Wrapf(err, "%q", text)
	}
	p.Sign = sign
	return p, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(text string) String {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func parseDense(s string) (String, error) {
	p := New(len(s))
	for q := 0; q < len(s); q++ {
		switch c := s[q]; c {
		case 'I', 'i', '_':
		case 'X', 'x', 'Y', 'y', 'Z', 'z':
			p.Set(q, c)
		default:
			return String{}, errors.Wrapf(ErrParse, "unexpected character %q", c)
		}
	}
	return p, nil
}

func parseSparse(s string) (String, error) {
	type term struct {
		c byte
		q int
	}
	var terms []term
	n := 0
	for _, part := range strings.Split(s, "*") {
		m := sparseTermRegex.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			return String{}, errors.Wrapf(ErrParse, "bad term %q", part)
		}
		q, err := strconv.Atoi(m[2])
		if err != nil {
			return String{}, errors.Wrapf(ErrParse, "bad qubit %q", m[2])
		}
		terms = append(terms, term{c: strings.ToUpper(m[1])[0], q: q})
		n = max(n, q+1)
	}

	p := New(n)
	for _, t := range terms {
		if t.c == 'I' {
			continue
		}
		if p.Get(t.q) != 'I' {
			return String{}, errors.Wrapf(ErrParse, "qubit %d repeated", t.q)
		}
		p.Set(t.q, t.c)
	}
	return p, nil
}
