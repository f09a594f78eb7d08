package galois

import "fmt"

// Irreducibility is the outcome of CheckIrreducible. Callers must handle
// Inconclusive separately from the two definite answers.
type Irreducibility int

const (
	Reducible Irreducibility = iota
	Irreducible
	// Inconclusive is returned for degrees above 3, where no test is run.
	Inconclusive
)

// MaxCheckedDegree is the highest degree CheckIrreducible decides.
const MaxCheckedDegree = 3

func (r Irreducibility) String() string {
	switch r {
	case Reducible:
		return "reducible"
	case Irreducible:
		return "irreducible"
	case Inconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

// CheckIrreducible tests poly for irreducibility over F_p.
//
// Degree 1 is always irreducible. Degrees 2 and 3 are reducible exactly when
// poly has a linear factor, so every x + a for a in [0, p) is tried. Higher
// degrees are not tested.
func CheckIrreducible(poly Poly, p int) Irreducibility {
	d := poly.Degree()
	switch {
	case d <= 0:
		return Reducible
	case d == 1:
		return Irreducible
	case d <= MaxCheckedDegree:
		for a := 0; a < p; a++ {
			if Mod(poly, Poly{a, 1}, p).IsZero() {
				return Reducible
			}
		}
		return Irreducible
	default:
		return Inconclusive
	}
}

// FindIrreducible lists every monic irreducible polynomial of degree m over
// F_p, in enumeration order of the lower coefficients. m must be in
// [1, MaxCheckedDegree] and p^m candidates must not exceed the max order
// option, which defaults to DefaultMaxOrder.
func FindIrreducible(p, m int, opts ...Option) ([]Poly, error) {
	o := options{maxOrder: DefaultMaxOrder}
	for _, opt := range opts {
		opt(&o)
	}

	if m < 1 || m > MaxCheckedDegree {
		return nil, fmt.Errorf("%w: irreducibility is decided for degrees 1 to %d, got %d", ErrInvalidDegree, MaxCheckedDegree, m)
	}
	if !IsPrime(p) {
		return nil, fmt.Errorf("%d is %w", p, ErrNotPrime)
	}
	if _, ok := fieldOrder(p, m, o.maxOrder); !ok {
		return nil, fmt.Errorf("%w: %d^%d candidates exceed %d", ErrOrderTooLarge, p, m, o.maxOrder)
	}

	var found []Poly
	low := make([]int, m)
	for {
		poly := make(Poly, m+1)
		copy(poly, low)
		poly[m] = 1
		if CheckIrreducible(poly, p) == Irreducible {
			found = append(found, poly)
		}

		// Advance low like an odometer, the last coefficient fastest.
		i := m - 1
		for ; i >= 0; i-- {
			low[i]++
			if low[i] < p {
				break
			}
			low[i] = 0
		}
		if i < 0 {
			return found, nil
		}
	}
}
