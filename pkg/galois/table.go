package galois

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MulTable holds the product of every ordered pair of elements. Cells store
// element indices so lookups always go through fixed-width vectors.
type MulTable struct {
	elements []Element
	index    map[string]int
	cells    [][]int
}

// BuildMulTable computes Mod(Mul(a, b), modulus) for every ordered pair of
// elements. Rows are filled concurrently; the call returns once the whole
// table is built. Every product must itself be one of elements.
func BuildMulTable(elements []Element, modulus Poly, p int) (*MulTable, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: empty element list", ErrNotElement)
	}
	width := len(elements[0])
	index := make(map[string]int, len(elements))
	for i, e := range elements {
		if len(e) != width {
			return nil, fmt.Errorf("%w: %s has %d coefficients, want %d", ErrNotElement, e.Vector(), len(e), width)
		}
		index[e.key()] = i
	}

	cells := make([][]int, len(elements))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range elements {
		g.Go(func() error {
			a := elements[i]
			row := make([]int, len(elements))
			for j, b := range elements {
				prod := Element(Mod(Mul(a.Poly(), b.Poly(), p), modulus, p).Pad(width))
				k, ok := index[prod.key()]
				if !ok {
					return fmt.Errorf("%w: product %s * %s = %s", ErrNotElement, a, b, prod.Vector())
				}
				row[j] = k
			}
			cells[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build multiplication table: %w", err)
	}

	return &MulTable{elements: elements, index: index, cells: cells}, nil
}

// Size returns the number of rows (and columns) of the table.
func (t *MulTable) Size() int {
	return len(t.elements)
}

// At returns a copy of the product of the i-th and j-th elements in
// enumeration order.
func (t *MulTable) At(i, j int) Element {
	return t.elements[t.cells[i][j]].clone()
}

// IndexOf returns the enumeration position of e.
func (t *MulTable) IndexOf(e Element) (int, bool) {
	i, ok := t.index[e.key()]
	return i, ok
}

// Lookup returns a * b, or false if either operand is not a table element.
func (t *MulTable) Lookup(a, b Element) (Element, bool) {
	i, ok := t.IndexOf(a)
	if !ok {
		return nil, false
	}
	j, ok := t.IndexOf(b)
	if !ok {
		return nil, false
	}
	return t.At(i, j), true
}

// InvTable maps each element to its multiplicative inverse. Elements without
// an inverse, zero in particular, have no entry.
type InvTable struct {
	mul *MulTable
	inv []int
}

// InversePair is one entry of an InvTable.
type InversePair struct {
	Element Element
	Inverse Element
}

// BuildInvTable finds, for every element a, the first b in enumeration order
// with a * b equal to the identity [1, 0, ..., 0].
func BuildInvTable(mul *MulTable) *InvTable {
	inv := make([]int, mul.Size())
	one := make(Element, len(mul.elements[0]))
	one[0] = 1
	oneIdx, hasOne := mul.IndexOf(one)

	for i := range inv {
		inv[i] = -1
		if !hasOne {
			continue
		}
		for j := range mul.cells[i] {
			if mul.cells[i][j] == oneIdx {
				inv[i] = j
				break
			}
		}
	}
	return &InvTable{mul: mul, inv: inv}
}

// Lookup returns the inverse of a. The second result is false when a has no
// inverse or is not a table element.
func (t *InvTable) Lookup(a Element) (Element, bool) {
	i, ok := t.mul.IndexOf(a)
	if !ok || t.inv[i] < 0 {
		return nil, false
	}
	return t.mul.elements[t.inv[i]].clone(), true
}

// Len returns the number of elements that have an inverse.
func (t *InvTable) Len() int {
	n := 0
	for _, j := range t.inv {
		if j >= 0 {
			n++
		}
	}
	return n
}

// Pairs lists every recorded inverse in enumeration order.
func (t *InvTable) Pairs() []InversePair {
	pairs := make([]InversePair, 0, len(t.inv))
	for i, j := range t.inv {
		if j < 0 {
			continue
		}
		pairs = append(pairs, InversePair{Element: t.mul.elements[i].clone(), Inverse: t.mul.elements[j].clone()})
	}
	return pairs
}
