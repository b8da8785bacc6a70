package shapetable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/sumfact/FE1D"
)

func TestClassifyHermite(t *testing.T) {
	var (
		st = NewShapeTable(FE1D.GaussLegendre(4), FE1D.NewHermite(), 3)
	)
	assert.Equal(t, TensorSymmetricHermite, st.ElementType)
	assert.Equal(t, 64, st.DofsPerCell)
	assert.NotEmpty(t, st.ShapeValuesEO)
	// the Hermite class is collocation-free
	assert.Empty(t, st.ShapeGradientsCollocationEO)
}

func TestClassifyPlusDG0(t *testing.T) {
	var (
		el = FE1D.NewLagrangeDG0(2)
		st = NewShapeTable(FE1D.GaussLegendre(3), el, 2)
	)
	assert.Equal(t, TensorSymmetricPlusDG0, st.ElementType)
	// one DoF beyond the tensor count, appended last
	assert.Equal(t, 10, st.DofsPerCell)
	assert.Equal(t, 10, len(st.LexicographicNumbering))
	assert.True(t, st.LexicographicNumbering.IsPermutation())
	assert.NotEmpty(t, st.ShapeValuesEO)
}

func TestClassifyTruncated(t *testing.T) {
	var (
		el = FE1D.NewLegendre(2)
		st = NewShapeTable(FE1D.GaussLegendre(3), el, 3)
	)
	assert.Equal(t, TruncatedTensor, st.ElementType)
	assert.Equal(t, 10, st.DofsPerCell) // C(5,3), fewer than 3^3
	// 1D tables still cover the full conceptual grid
	assert.Equal(t, 3, st.NDofs1D)
	assert.Empty(t, st.ShapeValuesEO)
	assert.Empty(t, st.FaceIndices)
	assert.False(t, st.ElementType.UsesEvenOdd())
}

func TestClassifyPriority(t *testing.T) {
	// a Gauss-Lobatto element under a plain Gauss rule of the same
	// count is symmetric but not collocated
	{
		st := NewShapeTable(FE1D.GaussLegendre(4), FE1D.NewGaussLobatto(3), 2)
		assert.Equal(t, TensorSymmetric, st.ElementType)
		assert.Empty(t, st.ShapeGradientsCollocationEO)
	}
	// degree 1 under a 2 point Gauss rule: symmetric, square table, but
	// not the identity
	{
		st := NewShapeTable(FE1D.GaussLegendre(2), FE1D.NewLagrange(1), 2)
		assert.Equal(t, TensorSymmetric, st.ElementType)
		fmt.Printf("degree 1 element type = %v\n", st.ElementType)
	}
	// vector wrapping changes neither the class nor the 1D tables
	{
		base := FE1D.NewGaussLobatto(3)
		a := NewShapeTable(FE1D.GaussLobatto(4), base, 2)
		b := NewShapeTable(FE1D.GaussLobatto(4), FE1D.NewVector(base, 3), 2)
		assert.Equal(t, a.ElementType, b.ElementType)
		assert.Equal(t, a.ShapeValues, b.ShapeValues)
		assert.Equal(t, 3*len(a.LexicographicNumbering), len(b.LexicographicNumbering))
	}
}
