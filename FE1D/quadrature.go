package FE1D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/sumfact/utils"
)

// Quadrature is a 1D rule on the unit interval [0,1] with ordered points
// and nonnegative weights
type Quadrature struct {
	Points, Weights []float64
}

func (q Quadrature) Len() int { return len(q.Points) }

// GaussLegendre produces the nPoints Gauss rule on [0,1], exact for
// polynomials of degree 2*nPoints-1
func GaussLegendre(nPoints int) (q Quadrature) {
	if nPoints < 1 {
		panic(fmt.Errorf("GaussLegendre needs at least one point, have %d", nPoints))
	}
	X, W := JacobiGQ(0, 0, nPoints-1)
	q = mapToUnitInterval(X.DataP(), W.DataP())
	return
}

// GaussLobatto produces the nPoints Gauss-Lobatto rule on [0,1], including
// both endpoints, exact for polynomials of degree 2*nPoints-3
func GaussLobatto(nPoints int) (q Quadrature) {
	if nPoints < 2 {
		panic(fmt.Errorf("GaussLobatto needs at least two points, have %d", nPoints))
	}
	var (
		N = nPoints - 1
		X = JacobiGL(0, 0, N)
		w = make([]float64, nPoints)
	)
	// w_i = 2 / (N*(N+1)*P_N(x_i)^2) with P_N the standard Legendre polynomial
	pt := JacobiP(X, 0, 0, N)
	fN := float64(N)
	for i, p := range pt {
		pN := p * math.Sqrt(2./(2.*fN+1.))
		w[i] = 2. / (fN * (fN + 1.) * pN * pN)
	}
	q = mapToUnitInterval(X.DataP(), w)
	return
}

func mapToUnitInterval(x, w []float64) (q Quadrature) {
	q = Quadrature{
		Points:  make([]float64, len(x)),
		Weights: make([]float64, len(w)),
	}
	for i := range x {
		q.Points[i] = 0.5 * (x[i] + 1.)
		q.Weights[i] = 0.5 * w[i]
	}
	return
}

// JacobiGQ computes the order N Gauss quadrature points and weights on
// [-1,1] via the Golub-Welsch symmetric tridiagonal eigenproblem
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	var (
		x, w       []float64
		fac        float64
		h1, d0, d1 []float64
		VVr        *mat.Dense
	)
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{2.}
		return utils.NewVector(len(x), x), utils.NewVector(len(w), w)
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal
	d0 = make([]float64, N+1)
	fac = -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// first upper diagonal
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	ok := eig.Factorize(JJ, true)
	if !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(x)
	X = utils.NewVector(N+1, x)

	VVr = mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	W = utils.NewVector(len(x), VVr.RawRowView(0)).POW(2).Scale(gamma0(alpha, beta))
	return X, W
}

// JacobiGL computes the order N Gauss-Lobatto points on [-1,1], built from
// the interior Gauss points of the (alpha+1, beta+1) Jacobi rule
func JacobiGL(alpha, beta float64, N int) (X utils.Vector) {
	var (
		x = make([]float64, N+1)
	)
	x[0], x[N] = -1, 1
	if N > 1 {
		xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
		dataXint := xint.DataP()
		for i := 1; i < N; i++ {
			x[i] = dataXint[i-1]
		}
	}
	X = utils.NewVector(len(x), x)
	return
}
