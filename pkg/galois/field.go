package galois

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultMaxOrder bounds p^m unless WithMaxOrder says otherwise. Table
// construction costs O(p^(2m)), so the bound keeps initialization interactive.
const DefaultMaxOrder = 4096

type options struct {
	maxOrder int
	logger   *slog.Logger
}

// Option configures NewField.
type Option func(*options)

// WithMaxOrder sets the largest field order NewField accepts.
func WithMaxOrder(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxOrder = n
		}
	}
}

// WithLogger sets the logger used to report initialization.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Field is an initialized GF(p^m): the parameters together with every element
// and the multiplication and inverse tables derived from them. A Field is
// never modified after NewField returns it.
type Field struct {
	p, m           int
	modulus        Poly
	irreducibility Irreducibility
	elements       []Element
	mul            *MulTable
	inv            *InvTable
}

// Summary describes a field for display.
type Summary struct {
	P              int    `json:"p"`
	M              int    `json:"m"`
	Order          int    `json:"order"`
	Modulus        string `json:"modulus"`
	Irreducibility string `json:"irreducibility"`
	Warning        string `json:"warning,omitempty"`
}

// NewField validates p, m and the modulus string and builds the field.
//
// It fails with ErrInvalidDegree, ErrNotPrime, ErrParse, ErrDegreeMismatch,
// ErrNotIrreducible or ErrOrderTooLarge. A modulus above degree 3 cannot be
// verified; the field is still built and Warning reports it. If such a
// modulus is reducible the result has zero divisors.
func NewField(p, m int, modulus string, opts ...Option) (*Field, error) {
	o := options{maxOrder: DefaultMaxOrder, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	if m < 1 {
		return nil, fmt.Errorf("%w: m must be at least 1, got %d", ErrInvalidDegree, m)
	}
	if !IsPrime(p) {
		return nil, fmt.Errorf("%d is %w", p, ErrNotPrime)
	}

	parsed, err := Parse(modulus, p, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid modulus: %w", err)
	}
	mod := parsed.Trim()
	if mod.Degree() != m {
		return nil, fmt.Errorf("%w: %s has degree %d, want %d", ErrDegreeMismatch, Format(mod), mod.Degree(), m)
	}

	irr := CheckIrreducible(mod, p)
	if irr == Reducible {
		return nil, fmt.Errorf("%s over F%d: %w", Format(mod), p, ErrNotIrreducible)
	}

	order, ok := fieldOrder(p, m, o.maxOrder)
	if !ok {
		return nil, fmt.Errorf("%w: %d^%d exceeds %d elements", ErrOrderTooLarge, p, m, o.maxOrder)
	}

	start := time.Now()
	elements := GenerateElements(p, m)
	mul, err := BuildMulTable(elements, mod, p)
	if err != nil {
		return nil, err
	}
	inv := BuildInvTable(mul)

	f := &Field{
		p:              p,
		m:              m,
		modulus:        mod,
		irreducibility: irr,
		elements:       elements,
		mul:            mul,
		inv:            inv,
	}

	o.logger.Debug("Field initialized",
		"p", p, "m", m, "order", order,
		"modulus", Format(mod), "duration", time.Since(start))
	if irr == Inconclusive {
		o.logger.Warn("Modulus irreducibility not verified", "modulus", Format(mod), "degree", m)
	}

	return f, nil
}

// fieldOrder returns p^m, or false once it exceeds limit.
func fieldOrder(p, m, limit int) (int, bool) {
	order := 1
	for i := 0; i < m; i++ {
		order *= p
		if order > limit {
			return 0, false
		}
	}
	return order, true
}

func (f *Field) P() int { return f.p }

func (f *Field) M() int { return f.m }

// Order returns p^m.
func (f *Field) Order() int { return len(f.elements) }

// Modulus returns a copy of the reduction polynomial.
func (f *Field) Modulus() Poly {
	return f.modulus.Trim()
}

func (f *Field) Irreducibility() Irreducibility { return f.irreducibility }

// Warning is non-empty when the modulus could not be verified irreducible.
func (f *Field) Warning() string {
	if f.irreducibility != Inconclusive {
		return ""
	}
	return fmt.Sprintf("cannot conclusively verify irreducibility of %s for degree %d > %d; "+
		"if it is reducible, results are not field arithmetic",
		Format(f.modulus), f.m, MaxCheckedDegree)
}

// Elements returns a copy of every element in enumeration order.
func (f *Field) Elements() []Element {
	out := make([]Element, len(f.elements))
	for i, e := range f.elements {
		out[i] = e.clone()
	}
	return out
}

func (f *Field) MulTable() *MulTable { return f.mul }

func (f *Field) InvTable() *InvTable { return f.inv }

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return make(Element, f.m)
}

// One returns the multiplicative identity [1, 0, ..., 0].
func (f *Field) One() Element {
	e := make(Element, f.m)
	e[0] = 1
	return e
}

// Element parses s into an element of width m.
func (f *Field) Element(s string) (Element, error) {
	poly, err := Parse(s, f.p, f.m)
	if err != nil {
		return nil, err
	}
	return Element(poly), nil
}

// Normalize reduces poly modulo the field's modulus and pads it to width m.
func (f *Field) Normalize(poly Poly) Element {
	return Element(Mod(poly, f.modulus, f.p).Pad(f.m))
}

// Add returns a + b. Addition needs no table: the field is F_p^m additively.
func (f *Field) Add(a, b Element) Element {
	return Element(Add(a.Poly(), b.Poly(), f.p).Pad(f.m))
}

// Sub returns a - b.
func (f *Field) Sub(a, b Element) Element {
	return Element(Sub(a.Poly(), b.Poly(), f.p).Pad(f.m))
}

// Mul returns a * b from the multiplication table.
func (f *Field) Mul(a, b Element) (Element, error) {
	prod, ok := f.mul.Lookup(a, b)
	if !ok {
		return nil, fmt.Errorf("%w: %s * %s", ErrNotElement, a.Vector(), b.Vector())
	}
	return prod, nil
}

// Inverse returns a^-1, or false if a has none.
func (f *Field) Inverse(a Element) (Element, bool) {
	return f.inv.Lookup(a)
}

// Div returns a * b^-1. Dividing by an element without an inverse returns a
// *NoInverseError.
func (f *Field) Div(a, b Element) (Element, error) {
	inv, ok := f.inv.Lookup(b)
	if !ok {
		return nil, &NoInverseError{Element: b}
	}
	return f.Mul(a, inv)
}

// Summary describes the field for display.
func (f *Field) Summary() Summary {
	return Summary{
		P:              f.p,
		M:              f.m,
		Order:          f.Order(),
		Modulus:        Format(f.modulus),
		Irreducibility: f.irreducibility.String(),
		Warning:        f.Warning(),
	}
}

func (f *Field) String() string {
	return fmt.Sprintf("GF(%d^%d) mod %s", f.p, f.m, Format(f.modulus))
}
