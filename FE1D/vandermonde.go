package FE1D

import (
	"github.com/notargets/sumfact/utils"
)

// Vandermonde1D produces the modal Legendre Vandermonde matrix V, where
// V[i,j] = P_j(r_i) for points r in [-1,1]
func Vandermonde1D(N int, R utils.Vector) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		V.SetCol(j, JacobiP(R, 0, 0, j))
	}
	return
}

func GradVandermonde1D(N int, R utils.Vector) (Vr utils.Matrix) {
	Vr = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		Vr.SetCol(j, GradJacobiP(R, 0, 0, j))
	}
	return
}

func Grad2Vandermonde1D(N int, R utils.Vector) (Vrr utils.Matrix) {
	Vrr = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		Vrr.SetCol(j, Grad2JacobiP(R, 0, 0, j))
	}
	return
}
