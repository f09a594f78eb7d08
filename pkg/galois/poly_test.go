package galois

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Poly
		p       int
		wantAdd Poly
		wantSub Poly
	}{
		{
			name:    "Same length",
			a:       Poly{1, 2},
			b:       Poly{2, 2},
			p:       3,
			wantAdd: Poly{0, 1},
			wantSub: Poly{2},
		},
		{
			name:    "Different lengths",
			a:       Poly{1},
			b:       Poly{0, 0, 1},
			p:       5,
			wantAdd: Poly{1, 0, 1},
			wantSub: Poly{1, 0, 4},
		},
		{
			name:    "Cancels to zero",
			a:       Poly{1, 1},
			b:       Poly{1, 1},
			p:       2,
			wantAdd: Poly{0},
			wantSub: Poly{0},
		},
		{
			name:    "Trailing zeros in input",
			a:       Poly{1, 0, 0, 0},
			b:       Poly{0, 1, 0},
			p:       7,
			wantAdd: Poly{1, 1},
			wantSub: Poly{1, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.wantAdd, Add(tt.a, tt.b, tt.p)); diff != "" {
				t.Errorf("Add mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantSub, Sub(tt.a, tt.b, tt.p)); diff != "" {
				t.Errorf("Sub mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMul(t *testing.T) {
	// (1 + x)(1 + x) = 1 + 2x + x^2 = 1 + x^2 over F_2.
	assert.Equal(t, Poly{1, 0, 1}, Mul(Poly{1, 1}, Poly{1, 1}, 2))
	// (2 + x)(1 + 2x) = 2 + 5x + 2x^2 over F_3.
	assert.Equal(t, Poly{2, 2, 2}, Mul(Poly{2, 1}, Poly{1, 2}, 3))
	// Trailing zeros are kept before reduction.
	assert.Equal(t, Poly{0, 0, 0}, Mul(Poly{0, 0}, Poly{1, 1}, 5))
}

func TestMulCommutative(t *testing.T) {
	for _, a := range GenerateElements(3, 3) {
		for _, b := range GenerateElements(3, 2) {
			require.Equal(t, Mul(a.Poly(), b.Poly(), 3), Mul(b.Poly(), a.Poly(), 3), "a=%v b=%v", a, b)
		}
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		name    string
		poly    Poly
		modulus Poly
		p       int
		want    Poly
	}{
		{"x^2 mod 1+x+x^2 over F2", Poly{0, 0, 1}, Poly{1, 1, 1}, 2, Poly{1, 1}},
		{"Leading zeros dropped", Poly{1, 0, 0, 0}, Poly{1, 1, 1}, 2, Poly{1}},
		{"Already reduced", Poly{2, 1}, Poly{1, 0, 1}, 3, Poly{2, 1}},
		{"Exact multiple", Poly{1, 0, 1}, Poly{1, 1}, 2, Poly{0}},
		{"Root test", Poly{1, 2}, Poly{0, 1}, 3, Poly{1}},
		{"x^3 mod 1+x+x^3 over F2", Poly{0, 0, 0, 1}, Poly{1, 1, 0, 1}, 2, Poly{1, 1}},
		{"x^2 mod 1+x^2 over F3", Poly{0, 0, 1}, Poly{1, 0, 1}, 3, Poly{2}},
		{"Non-monic modulus", Poly{0, 0, 1}, Poly{2, 0, 2}, 3, Poly{2}},
		{"Constant modulus", Poly{1, 2, 3}, Poly{3}, 5, Poly{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mod(tt.poly, tt.modulus, tt.p)
			assert.Equal(t, tt.want, got)
			assert.Less(t, got.Degree(), tt.modulus.Degree())
		})
	}
}

func TestModPanicsOnZeroModulus(t *testing.T) {
	assert.Panics(t, func() { Mod(Poly{1, 1}, Poly{0, 0}, 2) })
}

func TestOperationsDoNotMutateInputs(t *testing.T) {
	a := Poly{1, 2, 0, 4}
	b := Poly{4, 4, 1}
	mod := Poly{2, 0, 3}
	aCopy := append(Poly(nil), a...)
	bCopy := append(Poly(nil), b...)
	modCopy := append(Poly(nil), mod...)

	Add(a, b, 5)
	Sub(a, b, 5)
	Mul(a, b, 5)
	Mod(a, mod, 5)

	assert.Equal(t, aCopy, a)
	assert.Equal(t, bCopy, b)
	assert.Equal(t, modCopy, mod)
}

func TestRepresentationLengthIndependent(t *testing.T) {
	short := Poly{1, 1}
	long := Poly{1, 1, 0, 0, 0}
	other := Poly{0, 1, 1}
	mod := Poly{1, 1, 1}

	assert.Equal(t, Add(short, other, 2), Add(long, other, 2))
	assert.Equal(t, Sub(short, other, 2), Sub(long, other, 2))
	assert.True(t, Mul(short, other, 2).Equal(Mul(long, other, 2)))
	assert.Equal(t, Mod(short, mod, 2), Mod(long, mod, 2))
}

func TestPolyHelpers(t *testing.T) {
	assert.Equal(t, -1, Poly{0, 0}.Degree())
	assert.Equal(t, 2, Poly{1, 0, 3, 0}.Degree())
	assert.True(t, Poly{0}.IsZero())
	assert.True(t, Poly{1, 2}.Equal(Poly{1, 2, 0, 0}))
	assert.False(t, Poly{1, 2}.Equal(Poly{1, 2, 1}))
	assert.Equal(t, Poly{0}, Poly{0, 0, 0}.Trim())
	assert.Equal(t, Poly{1, 2, 0}, Poly{1, 2}.Pad(3))
	assert.Equal(t, Poly{1}, Poly{1, 2}.Pad(1))
}
