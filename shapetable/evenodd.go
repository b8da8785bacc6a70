package shapetable

import (
	"github.com/notargets/sumfact/FE1D"
	"github.com/notargets/sumfact/utils"
)

/*
The even-odd layout stores, for each of the first n/2 shape functions,
the half-sums and half-differences of a value and its mirror over the
first (m+1)/2 quadrature points. A consuming tensor contraction processes
the two halves of the 1D index range and folds the results with one
addition and one subtraction, roughly halving the multiply-add count of
the dense table. The fold is a deterministic rearrangement: recombining
even and odd parts reproduces the dense table exactly in exact
arithmetic.

Layout, with stride = (m+1)/2:

	eo[i*stride+q]       = (T(i,q) + T(i,m-1-q)) / 2   even part
	eo[(n-1-i)*stride+q] = (T(i,q) - T(i,m-1-q)) / 2   odd part

and for odd n the middle row is copied verbatim.
*/
func evenOddFold(T utils.Matrix) (eo []float64) {
	var (
		n, m   = T.Dims()
		stride = (m + 1) / 2
	)
	eo = make([]float64, n*stride)
	for i := 0; i < n/2; i++ {
		for q := 0; q < stride; q++ {
			eo[i*stride+q] = 0.5 * (T.At(i, q) + T.At(i, m-1-q))
			eo[(n-1-i)*stride+q] = 0.5 * (T.At(i, q) - T.At(i, m-1-q))
		}
	}
	if n%2 == 1 {
		for q := 0; q < stride; q++ {
			eo[(n/2)*stride+q] = T.At(n/2, q)
		}
	}
	return
}

func (st *ShapeTable) buildEvenOdd() {
	st.ShapeValuesEO = replicate(evenOddFold(st.Values))
	st.ShapeGradientsEO = replicate(evenOddFold(st.Gradients))
	st.ShapeHessiansEO = replicate(evenOddFold(st.Hessians))
}

// buildCollocationEO erects the Lagrange basis on the quadrature points
// themselves and stores its differentiation tables in even-odd form. In
// the collocated basis the value table degenerates to the identity, so
// only the derivative operators are needed.
func (st *ShapeTable) buildCollocationEO(q FE1D.Quadrature) {
	var (
		m  = st.NQPoints1D
		lb = FE1D.NewLagrangeBasis1D(q.Points)
		D  = utils.NewMatrix(m, m)
		D2 = utils.NewMatrix(m, m)
	)
	for i := 0; i < m; i++ {
		for j, x := range q.Points {
			D.Set(i, j, lb.Gradient(i, x))
			D2.Set(i, j, lb.Hessian(i, x))
		}
	}
	st.ShapeGradientsCollocationEO = replicate(evenOddFold(D))
	st.ShapeHessiansCollocationEO = replicate(evenOddFold(D2))
}
