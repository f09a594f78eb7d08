package galois

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIrreducible(t *testing.T) {
	tests := []struct {
		name string
		poly Poly
		p    int
		want Irreducibility
	}{
		{"Zero", Poly{0}, 2, Reducible},
		{"Constant", Poly{3}, 5, Reducible},
		{"x^2+x+1 over F2", Poly{1, 1, 1}, 2, Irreducible},
		{"x^2+1 over F2", Poly{1, 0, 1}, 2, Reducible},
		{"x^2+1 over F3", Poly{1, 0, 1}, 3, Irreducible},
		{"x^2+1 over F5", Poly{1, 0, 1}, 5, Reducible},
		{"x^2 over F7", Poly{0, 0, 1}, 7, Reducible},
		{"x^3+x+1 over F2", Poly{1, 1, 0, 1}, 2, Irreducible},
		{"x^3+1 over F2", Poly{1, 0, 0, 1}, 2, Reducible},
		{"x^3+2x+1 over F3", Poly{1, 2, 0, 1}, 3, Irreducible},
		{"Trailing zeros ignored", Poly{1, 1, 1, 0, 0}, 2, Irreducible},
		{"Degree 4", Poly{1, 1, 0, 0, 1}, 2, Inconclusive},
		{"Reducible degree 4 still inconclusive", Poly{1, 0, 0, 0, 1}, 2, Inconclusive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckIrreducible(tt.poly, tt.p))
		})
	}
}

func TestCheckIrreducibleLinear(t *testing.T) {
	for _, p := range []int{2, 3, 5, 7, 11, 13} {
		for a := 1; a < p; a++ {
			for b := 0; b < p; b++ {
				assert.Equal(t, Irreducible, CheckIrreducible(Poly{b, a}, p), "p=%d poly=%v", p, Poly{b, a})
			}
		}
	}
}

func TestIrreducibilityString(t *testing.T) {
	assert.Equal(t, "reducible", Reducible.String())
	assert.Equal(t, "irreducible", Irreducible.String())
	assert.Equal(t, "inconclusive", Inconclusive.String())
	assert.Equal(t, "unknown", Irreducibility(42).String())
}

func TestFindIrreducible(t *testing.T) {
	tests := []struct {
		name string
		p, m int
		want []Poly
	}{
		{"Degree 2 over F2", 2, 2, []Poly{{1, 1, 1}}},
		{"Degree 3 over F2", 2, 3, []Poly{{1, 0, 1, 1}, {1, 1, 0, 1}}},
		{"Degree 2 over F3", 3, 2, []Poly{{1, 0, 1}, {2, 1, 1}, {2, 2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindIrreducible(tt.p, tt.m)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindIrreducible(%d, %d) (-want +got):\n%s", tt.p, tt.m, diff)
			}
		})
	}
}

func TestFindIrreducibleCounts(t *testing.T) {
	// There are (p^2 - p) / 2 monic irreducible quadratics over F_p.
	got, err := FindIrreducible(5, 2)
	require.NoError(t, err)
	assert.Len(t, got, 10)

	// Every monic linear polynomial is irreducible.
	got, err = FindIrreducible(7, 1)
	require.NoError(t, err)
	assert.Len(t, got, 7)
}

func TestFindIrreducibleErrors(t *testing.T) {
	tests := []struct {
		name string
		p, m int
		opts []Option
		want error
	}{
		{"Degree above checked range", 2, 4, nil, ErrInvalidDegree},
		{"Degree zero", 2, 0, nil, ErrInvalidDegree},
		{"Not prime", 4, 2, nil, ErrNotPrime},
		{"Largest accepted prime cubed", 1048573, 3, nil, ErrOrderTooLarge},
		{"Above configured limit", 11, 2, []Option{WithMaxOrder(100)}, ErrOrderTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindIrreducible(tt.p, tt.m, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)
		})
	}
}
