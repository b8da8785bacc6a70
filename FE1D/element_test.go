package FE1D

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHierarchicNumbering(t *testing.T) {
	// degree 2 in 1D: vertices first, then the midpoint
	{
		el := NewLagrange(2)
		I := el.Numbering(1)
		assert.Equal(t, []int{0, 2, 1}, []int(I))
	}
	// degree 1 is pure vertices in any dimension, already lexicographic
	{
		el := NewLagrange(1)
		for dim := 1; dim <= 3; dim++ {
			I := el.Numbering(dim)
			assert.Equal(t, intPow(2, dim), len(I))
			for q, nat := range I {
				assert.Equal(t, q, nat)
			}
		}
	}
	// degree 2 in 2D: vertices, then left/right/bottom/top edge
	// midpoints, then the center
	{
		el := NewLagrange(2)
		I := el.Numbering(2)
		fmt.Printf("Q2 numbering = %v\n", I)
		assert.Equal(t, []int{0, 6, 1, 4, 8, 5, 2, 7, 3}, []int(I))
	}
	// higher degree 3D stays a bijection of the right size
	{
		el := NewLagrange(3)
		I := el.Numbering(3)
		assert.Equal(t, 64, len(I))
		assert.True(t, I.IsPermutation())
	}
}

func TestHermiteElement(t *testing.T) {
	var (
		el = NewHermite()
	)
	assert.Equal(t, 3, el.Degree())
	assert.Equal(t, 4, el.NDofs1D())
	// endpoint identities: value DoFs interpolate, both value and
	// derivative vanish at the non-owning end
	assert.True(t, near(el.Value(0, 0), 1))
	assert.True(t, near(el.Value(3, 1), 1))
	for _, i := range []int{0, 1} {
		assert.True(t, near(el.Value(i, 1), 0))
		assert.True(t, near(el.Gradient(i, 1), 0))
	}
	for _, i := range []int{2, 3} {
		assert.True(t, near(el.Value(i, 0), 0))
		assert.True(t, near(el.Gradient(i, 0), 0))
	}
	// mirror symmetry about the midpoint
	for _, x := range []float64{0.1, 0.25, 0.4} {
		assert.True(t, near(el.Value(0, x), el.Value(3, 1-x)))
		assert.True(t, near(el.Value(1, x), el.Value(2, 1-x)))
		assert.True(t, near(el.Gradient(1, x), -el.Gradient(2, 1-x)))
	}
}

func TestLegendreElement(t *testing.T) {
	var (
		el = NewLegendre(2)
	)
	// complete degree space: C(P+dim, dim) cell DoFs
	assert.Equal(t, 3, el.DofsPerCell(1))
	assert.Equal(t, 6, el.DofsPerCell(2))
	assert.Equal(t, 10, el.DofsPerCell(3))
	// first function is the constant one
	for _, x := range []float64{0, 0.3, 1} {
		assert.True(t, near(el.Value(0, x), 1))
		assert.True(t, near(el.Gradient(0, x), 0))
	}
	// orthonormal on the unit interval with the 3 point Gauss rule
	{
		q := GaussLegendre(3)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				var dot float64
				for k, x := range q.Points {
					dot += q.Weights[k] * el.Value(i, x) * el.Value(j, x)
				}
				var expect float64
				if i == j {
					expect = 1
				}
				assert.True(t, near(dot, expect))
			}
		}
	}
}

func TestVectorElement(t *testing.T) {
	var (
		base = NewLagrange(2)
		el   = NewVector(base, 2)
	)
	assert.Equal(t, 2, el.Components())
	assert.Equal(t, 9, el.DofsPerCell(2)) // per component
	I := el.Numbering(2)
	assert.Equal(t, 18, len(I))
	assert.True(t, I.IsPermutation())
	// block structured: all of component 0 first, interleaved natively
	baseI := base.Numbering(2)
	for q := 0; q < 9; q++ {
		assert.Equal(t, 2*baseI[q], I[q])
		assert.Equal(t, 2*baseI[q]+1, I[9+q])
	}
}

func TestLagrangeDG0Element(t *testing.T) {
	var (
		el = NewLagrangeDG0(2)
	)
	assert.Equal(t, 10, el.DofsPerCell(2))
	assert.True(t, near(el.ConstantShape(0.37), 1))
	I := el.Numbering(2)
	assert.Equal(t, 10, len(I))
	assert.True(t, I.IsPermutation())
	// the constant DoF stays last
	assert.Equal(t, 9, I[9])
}
