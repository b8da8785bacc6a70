package shapetable

import (
	"github.com/notargets/sumfact/FE1D"
)

/*
Face data is small and off the hot tensor-contraction path, so it is
stored unvectorized: 1D values and first derivatives of every shape
function at the two endpoints, and values at the two half-interval child
images of the quadrature points for non-conforming subface
interpolation.
*/
func (st *ShapeTable) extractFaces(q FE1D.Quadrature, el FE1D.Element) {
	var (
		n, m = st.NDofs1D, st.NQPoints1D
	)
	for s := 0; s < 2; s++ {
		st.FaceValue[s] = make([]float64, n)
		st.FaceGradient[s] = make([]float64, n)
		st.SubfaceValue[s] = make([]float64, n*m)
		for i := 0; i < n; i++ {
			st.FaceValue[s][i] = el.Value(i, float64(s))
			st.FaceGradient[s][i] = el.Gradient(i, float64(s))
			for j, x := range q.Points {
				st.SubfaceValue[s][i*m+j] = el.Value(i, 0.5*(x+float64(s)))
			}
		}
	}
	if el.DofsPerCell(st.Dim) >= intPow(n, st.Dim) {
		st.buildFaceIndices()
	}
}

// buildFaceIndices lists, for each of the 2*dim faces, the lexicographic
// cell DoF indices whose grid coordinate in the face normal direction is
// pinned to the face, ordered lexicographically in the remaining
// coordinates
func (st *ShapeTable) buildFaceIndices() {
	var (
		n   = st.NDofs1D
		dim = st.Dim
	)
	st.FaceIndices = make([][]int, 2*dim)
	for d := 0; d < dim; d++ {
		for s := 0; s < 2; s++ {
			face := make([]int, 0, st.DofsPerFace)
			for lex := 0; lex < intPow(n, dim); lex++ {
				coord := lex / intPow(n, d) % n
				if coord == s*(n-1) {
					face = append(face, lex)
				}
			}
			st.FaceIndices[2*d+s] = face
		}
	}
}
