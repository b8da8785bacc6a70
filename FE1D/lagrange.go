package FE1D

import (
	"fmt"

	"github.com/notargets/sumfact/utils"
)

// LagrangeBasis1D is the nodal Lagrange basis on distinct nodes within
// [0,1], represented modally through an orthonormal Legendre Vandermonde
// matrix so that values and derivatives at arbitrary points come from
// V(x) * Vinv products
type LagrangeBasis1D struct {
	P     int // Polynomial degree, number of nodes is P+1
	Nodes []float64
	Vinv  utils.Matrix
}

func NewLagrangeBasis1D(nodes []float64) (lb *LagrangeBasis1D) {
	var (
		np  = len(nodes)
		err error
	)
	if np < 1 {
		panic("LagrangeBasis1D needs at least one node")
	}
	for i, x := range nodes {
		if x < 0 || x > 1 {
			panic(fmt.Errorf("node %d = %v outside of the unit interval", i, x))
		}
		if i > 0 && nodes[i] <= nodes[i-1] {
			panic(fmt.Errorf("nodes must be strictly increasing, node %d = %v follows %v", i, nodes[i], nodes[i-1]))
		}
	}
	lb = &LagrangeBasis1D{
		P:     np - 1,
		Nodes: append([]float64{}, nodes...),
	}
	R := utils.NewVector(np)
	for i, x := range nodes {
		R.V.SetVec(i, 2.*x-1.)
	}
	V := Vandermonde1D(lb.P, R)
	if lb.Vinv, err = V.Inverse(); err != nil {
		panic(fmt.Errorf("unable to invert Vandermonde matrix: %v", err))
	}
	lb.Vinv.SetReadOnly("Vinv")
	return
}

// Value evaluates the j-th Lagrange cardinal function at x in [0,1]
func (lb *LagrangeBasis1D) Value(j int, x float64) (val float64) {
	return lb.eval(j, x, JacobiP, 1.)
}

// Gradient evaluates d/dx of the j-th cardinal function at x in [0,1]
func (lb *LagrangeBasis1D) Gradient(j int, x float64) (val float64) {
	return lb.eval(j, x, GradJacobiP, 2.)
}

// Hessian evaluates d2/dx2 of the j-th cardinal function at x in [0,1]
func (lb *LagrangeBasis1D) Hessian(j int, x float64) (val float64) {
	return lb.eval(j, x, Grad2JacobiP, 4.)
}

func (lb *LagrangeBasis1D) eval(j int, x float64,
	mode func(r utils.Vector, alpha, beta float64, N int) []float64,
	chain float64) (val float64) {
	var (
		r = utils.NewVector(1, []float64{2.*x - 1.})
	)
	if j < 0 || j > lb.P {
		panic(fmt.Errorf("cardinal function index %d out of range [0,%d]", j, lb.P))
	}
	for k := 0; k <= lb.P; k++ {
		val += mode(r, 0, 0, k)[0] * lb.Vinv.At(k, j)
	}
	val *= chain
	return
}

// EquidistantNodes returns the P+1 uniformly spaced nodes on [0,1]
func EquidistantNodes(P int) (nodes []float64) {
	nodes = make([]float64, P+1)
	if P == 0 {
		nodes[0] = 0.5
		return
	}
	for i := range nodes {
		nodes[i] = float64(i) / float64(P)
	}
	return
}

// GaussLobattoNodes returns the P+1 Gauss-Lobatto points on [0,1]
func GaussLobattoNodes(P int) (nodes []float64) {
	if P < 1 {
		panic("Gauss-Lobatto nodes need degree of at least 1")
	}
	nodes = GaussLobatto(P + 1).Points
	return
}
