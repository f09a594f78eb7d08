package galois

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// maxExponent bounds exponents accepted by Parse when no size is given.
const maxExponent = 1 << 16

var errExponentRange = errors.New("exponent out of range")

// Format renders poly in ascending powers, for example "1 + x + 2x^2".
// The zero polynomial renders as "0".
func Format(poly Poly) string {
	var terms []string
	for i, c := range poly {
		if c == 0 {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, strconv.Itoa(c))
		case i == 1 && c == 1:
			terms = append(terms, "x")
		case i == 1:
			terms = append(terms, fmt.Sprintf("%dx", c))
		case c == 1:
			terms = append(terms, fmt.Sprintf("x^%d", i))
		default:
			terms = append(terms, fmt.Sprintf("%dx^%d", c, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// Parse reads a polynomial such as "1+x+x^2" with coefficients reduced mod p.
// Terms are separated by "+" and whitespace is ignored. Repeated exponents are
// summed. When size > 0 the result has exactly size coefficients and higher
// terms are dropped; otherwise it is sized to the largest exponent seen.
func Parse(s string, p int, size int) (Poly, error) {
	input := strings.Join(strings.Fields(s), "")
	coeffs := make(map[int]int)
	maxDeg := 0

	for _, term := range strings.Split(input, "+") {
		c, e, err := parseTerm(term)
		if err != nil {
			return nil, &ParseError{Input: s, Term: term, Err: err}
		}
		if size <= 0 && e > maxExponent {
			return nil, &ParseError{Input: s, Term: term, Err: errExponentRange}
		}
		coeffs[e] = modp(coeffs[e]+modp(c, p), p)
		maxDeg = max(maxDeg, e)
	}

	n := size
	if n <= 0 {
		n = maxDeg + 1
	}
	out := make(Poly, n)
	for e, c := range coeffs {
		if e < n {
			out[e] = c
		}
	}
	return out, nil
}

// parseTerm splits a single term into its coefficient and exponent.
func parseTerm(term string) (c, e int, err error) {
	head, exp, hasX := strings.Cut(term, "x")
	if !hasX {
		c, err = strconv.Atoi(term)
		return c, 0, err
	}

	c = 1
	if head != "" {
		if c, err = strconv.Atoi(head); err != nil {
			return 0, 0, err
		}
	}

	switch {
	case exp == "":
		return c, 1, nil
	case strings.HasPrefix(exp, "^"):
		e, err = strconv.Atoi(exp[1:])
		if err != nil {
			return 0, 0, err
		}
		if e < 0 {
			return 0, 0, errExponentRange
		}
		return c, e, nil
	default:
		return 0, 0, fmt.Errorf("unexpected %q after x", exp)
	}
}
