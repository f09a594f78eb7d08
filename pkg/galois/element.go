package galois

import "strconv"

// Element is a field element: a polynomial of exactly m coefficients
// representing its residue class modulo the field's modulus. Two elements are
// equal iff their coefficient vectors are identical.
type Element []int

func (e Element) String() string {
	return Format(Poly(e))
}

// Poly returns the element as a polynomial. The backing array is shared.
func (e Element) Poly() Poly {
	return Poly(e)
}

// Vector renders the raw coefficients, for example "(1, 0, 1)".
func (e Element) Vector() string {
	buf := []byte{'('}
	for i, c := range e {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendInt(buf, int64(c), 10)
	}
	if len(e) == 1 {
		buf = append(buf, ',')
	}
	return string(append(buf, ')'))
}

// Equal reports whether e and o have identical coefficient vectors.
func (e Element) Equal(o Element) bool {
	if len(e) != len(o) {
		return false
	}
	for i := range e {
		if e[i] != o[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	for _, c := range e {
		if c != 0 {
			return false
		}
	}
	return true
}

func (e Element) clone() Element {
	return append(Element(nil), e...)
}

func (e Element) key() string {
	buf := make([]byte, 0, 4*len(e))
	for i, c := range e {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(c), 10)
	}
	return string(buf)
}

// GenerateElements returns all p^m vectors of [0, p)^m in lexicographic
// order, the first coefficient varying slowest.
func GenerateElements(p, m int) []Element {
	if p < 1 || m < 1 {
		return nil
	}
	total := 1
	for i := 0; i < m; i++ {
		total *= p
	}
	out := make([]Element, total)
	for n := 0; n < total; n++ {
		e := make(Element, m)
		v := n
		for i := m - 1; i >= 0; i-- {
			e[i] = v % p
			v /= p
		}
		out[n] = e
	}
	return out
}
