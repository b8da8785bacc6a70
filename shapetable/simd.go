package shapetable

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Lanes returns the SIMD lane count of the float64 vector width the
// tables are replicated for
func Lanes() int {
	return hwy.MaxLanes[float64]()
}

// replicate broadcasts each scalar table entry across all lanes, so a
// consuming kernel loads one vector register per basis coefficient
func replicate(scalar []float64) (v []float64) {
	var (
		lanes = Lanes()
	)
	v = make([]float64, len(scalar)*lanes)
	for i, val := range scalar {
		hwy.Store(hwy.Set(val), v[i*lanes:(i+1)*lanes])
	}
	return
}
