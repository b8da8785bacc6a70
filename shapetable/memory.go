package shapetable

import (
	"unsafe"

	"github.com/notargets/sumfact/utils"
)

// MemoryConsumption reports the total resident size of the table bundle
// in bytes, the fixed struct overhead plus every backing array
func (st *ShapeTable) MemoryConsumption() (bytes int) {
	bytes = int(unsafe.Sizeof(*st))
	for _, t := range [][]float64{
		st.ShapeValues, st.ShapeGradients, st.ShapeHessians,
		st.ShapeValuesEO, st.ShapeGradientsEO, st.ShapeHessiansEO,
		st.ShapeGradientsCollocationEO, st.ShapeHessiansCollocationEO,
		st.FaceValue[0], st.FaceValue[1],
		st.FaceGradient[0], st.FaceGradient[1],
		st.SubfaceValue[0], st.SubfaceValue[1],
	} {
		bytes += 8 * len(t)
	}
	for _, m := range []utils.Matrix{st.Values, st.Gradients, st.Hessians} {
		if m.IsEmpty() {
			continue
		}
		r, c := m.Dims()
		bytes += 8 * r * c
	}
	for _, f := range st.FaceIndices {
		bytes += 8 * len(f)
	}
	bytes += 8 * len(st.LexicographicNumbering)
	return
}
