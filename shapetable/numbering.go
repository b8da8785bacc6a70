package shapetable

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/notargets/sumfact/FE1D"
	"github.com/notargets/sumfact/utils"
)

func (st *ShapeTable) buildNumbering(el FE1D.Element) {
	var (
		I    = el.Numbering(st.Dim)
		want = st.Components * st.DofsPerCell
	)
	if len(I) != want {
		panic(fmt.Errorf("element numbering covers %d DoFs, cell declares %d", len(I), want))
	}
	if !I.IsPermutation() {
		panic(fmt.Errorf("element numbering of length %d is not a bijection", len(I)))
	}
	st.LexicographicNumbering = I
}

// InverseNumbering returns the permutation from native DoF index to
// lexicographic slot
func (st *ShapeTable) InverseNumbering() utils.Index {
	return st.LexicographicNumbering.Inverse()
}

// PermutationMatrix returns the renumbering as a sparse 0/1 matrix P so
// that y = P*x gathers a native-ordered cell coefficient vector x into
// lexicographic order
func (st *ShapeTable) PermutationMatrix() (P *sparse.CSR) {
	var (
		N   = len(st.LexicographicNumbering)
		dok = utils.NewDOK(N, N)
	)
	for lex, nat := range st.LexicographicNumbering {
		dok.Set(lex, nat, 1)
	}
	P = dok.ToCSR()
	return
}
