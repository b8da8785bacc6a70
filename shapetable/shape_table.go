package shapetable

import (
	"fmt"

	"github.com/notargets/sumfact/FE1D"
	"github.com/notargets/sumfact/utils"
)

// ZeroTol is the absolute tolerance used by every structural test on the
// 1D tables. It sits far below discretization accuracy but above the
// floating point noise of basis evaluation, so symmetric bases are not
// misclassified while genuinely asymmetric ones are rejected.
const ZeroTol = 1.e-12

/*
ShapeTable bundles the per-dimension tables a sum-factorization evaluator
needs to interpolate and differentiate cell data: 1D shape values,
gradients and Hessians at the quadrature points (lane-replicated for SIMD
consumption), their even-odd companions, face and subface restrictions,
and the native-to-lexicographic DoF renumbering.

A ShapeTable is built once per (element, quadrature) pair by
NewShapeTable and is read only afterwards, safe for unsynchronized
concurrent reads.
*/
type ShapeTable struct {
	ElementType ElementType

	FeDegree   int
	NDofs1D    int
	NQPoints1D int
	Dim        int
	Components int

	NQPoints     int
	DofsPerCell  int
	NQPointsFace int
	DofsPerFace  int

	// Lane-replicated flat tables, quadrature index fastest:
	// entry (i,q) lane l sits at ((i*NQPoints1D)+q)*Lanes + l
	Lanes          int
	ShapeValues    []float64
	ShapeGradients []float64
	ShapeHessians  []float64

	// Even-odd companions, stride (NQPoints1D+1)/2 per row, populated
	// for every class except TensorGeneral and TruncatedTensor
	ShapeValuesEO    []float64
	ShapeGradientsEO []float64
	ShapeHessiansEO  []float64

	// Differentiation in the collocated nodal basis, populated only for
	// TensorSymmetricCollocation
	ShapeGradientsCollocationEO []float64
	ShapeHessiansCollocationEO  []float64

	// Unvectorized scalar tables, NDofs1D x NQPoints1D, read only
	Values    utils.Matrix
	Gradients utils.Matrix
	Hessians  utils.Matrix

	// FaceIndices[f] holds the lexicographic cell DoF indices on face f,
	// f = 2*d+s for coordinate direction d and side s. Empty for the
	// truncated (modal) class.
	FaceIndices [][]int

	// 1D values/gradients at the endpoints, index 0 = x=0, 1 = x=1
	FaceValue    [2][]float64
	FaceGradient [2][]float64
	// 1D values at the child coordinates (x_q+s)/2 of the two subfaces
	SubfaceValue [2][]float64

	// Entry q holds the native cell DoF index at lexicographic slot q,
	// length Components*DofsPerCell, block structured by component
	LexicographicNumbering utils.Index
}

// NewShapeTable evaluates the 1D restriction of el at the points of q and
// derives all tables. Contract violations (malformed quadrature, element
// not expressible as the claimed tensor product, first shape function not
// evaluating to 1 at the origin) panic, per the construction contract.
// Classification ambiguity never panics, it degrades to the more general
// class.
func NewShapeTable(q FE1D.Quadrature, el FE1D.Element, dim int) (st *ShapeTable) {
	if dim < 1 || dim > 3 {
		panic(fmt.Errorf("unsupported dimension %d, need 1, 2 or 3", dim))
	}
	checkQuadrature(q)
	var (
		n = el.NDofs1D()
		m = q.Len()
	)
	if n < 1 {
		panic(fmt.Errorf("element has %d 1D DoFs, need at least 1", n))
	}
	if v := el.Value(0, 0); v < 1.-ZeroTol || v > 1.+ZeroTol {
		panic(fmt.Errorf("first shape function evaluates to %v at the origin, need 1: element is not the claimed tensor product", v))
	}

	st = &ShapeTable{
		FeDegree:     el.Degree(),
		NDofs1D:      n,
		NQPoints1D:   m,
		Dim:          dim,
		Components:   el.Components(),
		NQPoints:     intPow(m, dim),
		DofsPerCell:  el.DofsPerCell(dim),
		NQPointsFace: intPow(m, dim-1),
		DofsPerFace:  intPow(n, dim-1),
		Lanes:        Lanes(),
	}

	st.extract(q, el)
	st.extractFaces(q, el)
	st.buildNumbering(el)
	st.classify(q, el)
	st.vectorize()
	return
}

// extract fills the scalar 1D tables from the element's 1D restriction
func (st *ShapeTable) extract(q FE1D.Quadrature, el FE1D.Element) {
	var (
		n, m = st.NDofs1D, st.NQPoints1D
	)
	st.Values = utils.NewMatrix(n, m)
	st.Gradients = utils.NewMatrix(n, m)
	st.Hessians = utils.NewMatrix(n, m)
	for i := 0; i < n; i++ {
		for j, x := range q.Points {
			st.Values.Set(i, j, el.Value(i, x))
			st.Gradients.Set(i, j, el.Gradient(i, x))
			st.Hessians.Set(i, j, el.Hessian(i, x))
		}
	}
	st.Values.SetReadOnly("ShapeTable.Values")
	st.Gradients.SetReadOnly("ShapeTable.Gradients")
	st.Hessians.SetReadOnly("ShapeTable.Hessians")
}

// vectorize lane-replicates the scalar tables into the flat SIMD layout
func (st *ShapeTable) vectorize() {
	st.ShapeValues = replicate(st.Values.Data())
	st.ShapeGradients = replicate(st.Gradients.Data())
	st.ShapeHessians = replicate(st.Hessians.Data())
}

func checkQuadrature(q FE1D.Quadrature) {
	if q.Len() < 1 {
		panic("quadrature has no points")
	}
	if len(q.Weights) != len(q.Points) {
		panic(fmt.Errorf("quadrature has %d points but %d weights", len(q.Points), len(q.Weights)))
	}
	for i, x := range q.Points {
		if x < -ZeroTol || x > 1.+ZeroTol {
			panic(fmt.Errorf("quadrature point %d = %v outside of the unit interval", i, x))
		}
		if i > 0 && x <= q.Points[i-1] {
			panic(fmt.Errorf("quadrature points must be strictly increasing, point %d = %v follows %v", i, x, q.Points[i-1]))
		}
		if q.Weights[i] < 0 {
			panic(fmt.Errorf("quadrature weight %d = %v is negative", i, q.Weights[i]))
		}
	}
}

func intPow(base, exp int) (r int) {
	r = 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return
}
