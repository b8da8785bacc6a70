package shapetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/sumfact/FE1D"
	"github.com/notargets/sumfact/utils"
)

// reconstructEO recombines the even and odd halves back into a dense
// n x m table. Rows in the upper half of the index range are recovered
// through the mirror law of the underlying table, sign +1 for
// value/Hessian type symmetry and -1 for the antisymmetric gradient
// counterpart.
func reconstructEO(eo []float64, n, m, lanes int, sign float64) (T utils.Matrix) {
	var (
		stride = (m + 1) / 2
		at     = func(i, q int) float64 { return eo[(i*stride+q)*lanes] }
	)
	T = utils.NewMatrix(n, m)
	for i := 0; i < n/2; i++ {
		for q := 0; q < stride; q++ {
			even, odd := at(i, q), at(n-1-i, q)
			T.Set(i, q, even+odd)
			T.Set(i, m-1-q, even-odd)
			T.Set(n-1-i, m-1-q, sign*(even+odd))
			T.Set(n-1-i, q, sign*(even-odd))
		}
	}
	if n%2 == 1 {
		for q := 0; q < stride; q++ {
			T.Set(n/2, q, at(n/2, q))
			T.Set(n/2, m-1-q, sign*at(n/2, q))
		}
	}
	return
}

func TestEvenOddReconstruction(t *testing.T) {
	cases := []struct {
		name string
		q    FE1D.Quadrature
		el   FE1D.Element
	}{
		{"lagrange2-gauss3", FE1D.GaussLegendre(3), FE1D.NewLagrange(2)},
		{"gll3-gll4", FE1D.GaussLobatto(4), FE1D.NewGaussLobatto(3)},
		{"hermite-gauss4", FE1D.GaussLegendre(4), FE1D.NewHermite()},
		{"lagrange3-gauss5", FE1D.GaussLegendre(5), FE1D.NewLagrange(3)},
	}
	for _, c := range cases {
		st := NewShapeTable(c.q, c.el, 2)
		assert.True(t, st.ElementType.UsesEvenOdd(), c.name)
		var (
			n, m = st.NDofs1D, st.NQPoints1D
		)
		V := reconstructEO(st.ShapeValuesEO, n, m, st.Lanes, 1)
		G := reconstructEO(st.ShapeGradientsEO, n, m, st.Lanes, -1)
		H := reconstructEO(st.ShapeHessiansEO, n, m, st.Lanes, 1)
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				assert.True(t, nearTol(V.At(i, j), st.Values.At(i, j), ZeroTol), c.name)
				assert.True(t, nearTol(G.At(i, j), st.Gradients.At(i, j), ZeroTol), c.name)
				assert.True(t, nearTol(H.At(i, j), st.Hessians.At(i, j), ZeroTol), c.name)
			}
		}
	}
}

func TestCollocationDerivativeTables(t *testing.T) {
	var (
		st = NewShapeTable(FE1D.GaussLobatto(4), FE1D.NewGaussLobatto(3), 1)
		m  = st.NQPoints1D
		D  = reconstructEO(st.ShapeGradientsCollocationEO, m, m, st.Lanes, -1)
		D2 = reconstructEO(st.ShapeHessiansCollocationEO, m, m, st.Lanes, 1)
		q  = FE1D.GaussLobatto(4)
	)
	assert.Equal(t, TensorSymmetricCollocation, st.ElementType)
	// differentiating the constant gives zero at every point
	for j := 0; j < m; j++ {
		var sumD, sumD2 float64
		for i := 0; i < m; i++ {
			sumD += D.At(i, j)
			sumD2 += D2.At(i, j)
		}
		assert.True(t, nearTol(sumD, 0, 1.e-10))
		assert.True(t, nearTol(sumD2, 0, 1.e-10))
	}
	// for the collocated Lagrange basis the derivative tables agree
	// with direct evaluation at the quadrature points
	lb := FE1D.NewLagrangeBasis1D(q.Points)
	for i := 0; i < m; i++ {
		for j, x := range q.Points {
			assert.True(t, nearTol(D.At(i, j), lb.Gradient(i, x), 1.e-10))
			assert.True(t, nearTol(D2.At(i, j), lb.Hessian(i, x), 1.e-10))
		}
	}
}
