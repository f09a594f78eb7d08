// Package galois implements arithmetic in GF(p^m) built as the quotient ring
// F_p[x]/(f(x)) for a prime p and a degree-m modulus f.
package galois

// Poly is a dense polynomial over F_p. Index i holds the coefficient of x^i,
// lowest degree first. Operations never modify their arguments.
type Poly []int

// Degree returns the index of the highest nonzero coefficient, or -1 for the
// zero polynomial.
func (a Poly) Degree() int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i
		}
	}
	return -1
}

// IsZero reports whether every coefficient is zero.
func (a Poly) IsZero() bool {
	return a.Degree() < 0
}

// Equal compares two polynomials as zero-padded coefficient sequences.
func (a Poly) Equal(b Poly) bool {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		if coeff(a, i) != coeff(b, i) {
			return false
		}
	}
	return true
}

// Trim returns a copy of a without trailing zero coefficients. The zero
// polynomial is returned as [0].
func (a Poly) Trim() Poly {
	d := a.Degree()
	if d < 0 {
		return Poly{0}
	}
	out := make(Poly, d+1)
	copy(out, a[:d+1])
	return out
}

// Pad returns a copy of a resized to exactly n coefficients. Higher terms are
// dropped when a is longer than n.
func (a Poly) Pad(n int) Poly {
	out := make(Poly, n)
	copy(out, a)
	return out
}

func coeff(a Poly, i int) int {
	if i < len(a) {
		return a[i]
	}
	return 0
}

func modp(v, p int) int {
	v %= p
	if v < 0 {
		v += p
	}
	return v
}

// Add returns a + b with coefficients reduced mod p.
func Add(a, b Poly, p int) Poly {
	res := make(Poly, max(len(a), len(b)))
	for i := range res {
		res[i] = modp(coeff(a, i)+coeff(b, i), p)
	}
	return res.Trim()
}

// Sub returns a - b with coefficients kept in [0, p).
func Sub(a, b Poly, p int) Poly {
	res := make(Poly, max(len(a), len(b)))
	for i := range res {
		res[i] = modp(coeff(a, i)-coeff(b, i), p)
	}
	return res.Trim()
}

// Mul returns the product a * b. The result has len(a)+len(b)-1 coefficients
// and is not trimmed.
func Mul(a, b Poly, p int) Poly {
	if len(a) == 0 || len(b) == 0 {
		return Poly{0}
	}
	res := make(Poly, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			res[i+j] = modp(res[i+j]+a[i]*b[j], p)
		}
	}
	return res
}

// Mod returns the remainder of poly divided by modulus over F_p. A modulus
// whose leading coefficient is not 1 is first made monic, which generates the
// same ideal. Mod panics if modulus is zero.
func Mod(poly, modulus Poly, p int) Poly {
	mod := modulus.Trim()
	dm := mod.Degree()
	if dm < 0 {
		panic("galois: reduction modulo the zero polynomial")
	}
	if lc := modp(mod[dm], p); lc != 1 {
		inv := inverseModP(lc, p)
		for i := range mod {
			mod[i] = modp(mod[i]*inv, p)
		}
	}

	rem := make(Poly, len(poly))
	for i, c := range poly {
		rem[i] = modp(c, p)
	}
	for len(rem) >= len(mod) {
		top := len(rem) - 1
		factor := rem[top]
		if factor == 0 {
			rem = rem[:top]
			continue
		}
		shift := len(rem) - len(mod)
		for i, c := range mod {
			rem[shift+i] = modp(rem[shift+i]-factor*c, p)
		}
		for len(rem) > 0 && rem[len(rem)-1] == 0 {
			rem = rem[:len(rem)-1]
		}
	}
	return rem.Trim()
}

// inverseModP returns a^-1 mod p by Fermat's little theorem.
func inverseModP(a, p int) int {
	result, base, e := 1, modp(a, p), p-2
	for e > 0 {
		if e&1 == 1 {
			result = result * base % p
		}
		base = base * base % p
		e >>= 1
	}
	return result
}
