package shapetable

import (
	"fmt"
	"math"

	"github.com/notargets/sumfact/FE1D"
)

/*
classify fixes the ElementType from the numeric content of the 1D tables.
The tests run in a fixed priority order: the pairwise mirror symmetry of
the value/gradient/Hessian tables establishes the symmetric family, then
the Hermite endpoint identity, the single-constant augmentation and the
collocation identity refine it. Any inconclusive test falls through to
the more general class, never to an error.
*/
func (st *ShapeTable) classify(q FE1D.Quadrature, el FE1D.Element) {
	var (
		full    = intPow(st.NDofs1D, st.Dim)
		perComp = el.DofsPerCell(st.Dim)
	)
	switch {
	case perComp < full:
		st.ElementType = TruncatedTensor
		return
	case perComp == full+1:
		if !st.constantAugmented(q, el) {
			panic(fmt.Errorf("element declares %d cell DoFs against a %d tensor grid but its augmentation is not the constant shape function", perComp, full))
		}
	case perComp != full:
		panic(fmt.Errorf("element declares %d cell DoFs, not expressible on a %d^%d tensor grid", perComp, st.NDofs1D, st.Dim))
	}

	if !st.symmetric1D() {
		st.ElementType = TensorGeneral
		return
	}
	st.buildEvenOdd()

	switch {
	case st.hermite1D():
		st.ElementType = TensorSymmetricHermite
	case perComp == full+1:
		st.ElementType = TensorSymmetricPlusDG0
	case st.NDofs1D == st.NQPoints1D && st.collocation1D():
		st.ElementType = TensorSymmetricCollocation
		st.buildCollocationEO(q)
	default:
		st.ElementType = TensorSymmetric
	}
}

// symmetric1D tests the pairwise mirror symmetry about the interval
// midpoint: value(i,q) == value(n-1-i,m-1-q), the antisymmetric
// counterpart for gradients and the symmetric one again for Hessians
func (st *ShapeTable) symmetric1D() bool {
	var (
		n, m = st.NDofs1D, st.NQPoints1D
	)
	for i := 0; i < (n+1)/2; i++ {
		for q := 0; q < (m+1)/2; q++ {
			if !near(st.Values.At(i, q), st.Values.At(n-1-i, m-1-q)) {
				return false
			}
			if !near(st.Gradients.At(i, q), -st.Gradients.At(n-1-i, m-1-q)) {
				return false
			}
			if !near(st.Hessians.At(i, q), st.Hessians.At(n-1-i, m-1-q)) {
				return false
			}
		}
	}
	return true
}

// hermite1D tests the Hermite endpoint identity on the two DoFs attached
// to each end: value and first derivative vanish at the non-owning
// endpoint, and the value DoFs interpolate at their own end
func (st *ShapeTable) hermite1D() bool {
	var (
		n = st.NDofs1D
	)
	if n < 4 {
		return false
	}
	if !near(st.FaceValue[0][0], 1) || !near(st.FaceValue[1][n-1], 1) {
		return false
	}
	for _, i := range []int{0, 1} {
		if !near(st.FaceValue[1][i], 0) || !near(st.FaceGradient[1][i], 0) {
			return false
		}
	}
	for _, i := range []int{n - 2, n - 1} {
		if !near(st.FaceValue[0][i], 0) || !near(st.FaceGradient[0][i], 0) {
			return false
		}
	}
	return true
}

// collocation1D tests whether the square value table is the identity
func (st *ShapeTable) collocation1D() bool {
	var (
		n = st.NDofs1D
	)
	for i := 0; i < n; i++ {
		for q := 0; q < n; q++ {
			var d float64
			if i == q {
				d = 1
			}
			if math.Abs(st.Values.At(i, q)-d) > ZeroTol {
				return false
			}
		}
	}
	return true
}

// constantAugmented verifies that the single surplus DoF behaves as the
// globally constant shape function, sampled at the quadrature points
func (st *ShapeTable) constantAugmented(q FE1D.Quadrature, el FE1D.Element) bool {
	ca, ok := el.(FE1D.ConstantAugmented)
	if !ok {
		return false
	}
	for _, x := range q.Points {
		if !near(ca.ConstantShape(x), 1) {
			return false
		}
	}
	return true
}

// near compares within the absolute tolerance, relaxed proportionally for
// large magnitudes so derivative tables of high order bases do not
// produce false negatives
func near(a, b float64) bool {
	return math.Abs(a-b) <= math.Max(ZeroTol, ZeroTol*math.Abs(a))
}
