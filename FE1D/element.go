package FE1D

import (
	"fmt"

	"github.com/notargets/sumfact/utils"
)

/*
Element is the input contract for the shape table precomputation: a finite
element assumed to be the tensor product of a one dimensional basis. The
1D restriction is exposed directly through Value/Gradient/Hessian, indexed
in lexicographic 1D order (left to right along the unit interval). The
cell level DoF count and the native-to-lexicographic permutation describe
the dim dimensional element built from it.
*/
type Element interface {
	Degree() int
	NDofs1D() int
	// DofsPerCell is the per-component cell DoF count in dim dimensions
	DofsPerCell(dim int) int
	Components() int
	Value(i int, x float64) float64
	Gradient(i int, x float64) float64
	Hessian(i int, x float64) float64
	// Numbering returns the permutation whose entry q holds the native
	// cell DoF index occupying lexicographic slot q, covering all
	// components
	Numbering(dim int) utils.Index
}

// ConstantAugmented is implemented by elements that append a single
// cell-wise constant shape function after the tensor product block
type ConstantAugmented interface {
	ConstantShape(x float64) float64
}

// LagrangeElement is a nodal tensor product element. Continuous variants
// use a hierarchic native numbering with vertex DoFs first, the way
// conforming assembly orders them, discontinuous variants are natively
// lexicographic.
type LagrangeElement struct {
	P          int
	lb         *LagrangeBasis1D
	continuous bool
}

// NewLagrange produces the continuous equidistant-node element of the
// given degree
func NewLagrange(degree int) (el *LagrangeElement) {
	if degree < 1 {
		panic(fmt.Errorf("continuous Lagrange element needs degree of at least 1, have %d", degree))
	}
	el = &LagrangeElement{
		P:          degree,
		lb:         NewLagrangeBasis1D(EquidistantNodes(degree)),
		continuous: true,
	}
	return
}

// NewGaussLobatto produces the continuous element with nodes at the
// Gauss-Lobatto points, the collocation partner of the Gauss-Lobatto
// quadrature of matching order
func NewGaussLobatto(degree int) (el *LagrangeElement) {
	if degree < 1 {
		panic(fmt.Errorf("Gauss-Lobatto element needs degree of at least 1, have %d", degree))
	}
	el = &LagrangeElement{
		P:          degree,
		lb:         NewLagrangeBasis1D(GaussLobattoNodes(degree)),
		continuous: true,
	}
	return
}

// NewDiscontinuousLagrange produces the discontinuous element on caller
// supplied nodes, natively lexicographic
func NewDiscontinuousLagrange(degree int, nodes []float64) (el *LagrangeElement) {
	if len(nodes) != degree+1 {
		panic(fmt.Errorf("degree %d needs %d nodes, have %d", degree, degree+1, len(nodes)))
	}
	el = &LagrangeElement{
		P:  degree,
		lb: NewLagrangeBasis1D(nodes),
	}
	return
}

func (el *LagrangeElement) Degree() int     { return el.P }
func (el *LagrangeElement) NDofs1D() int    { return el.P + 1 }
func (el *LagrangeElement) Components() int { return 1 }

func (el *LagrangeElement) DofsPerCell(dim int) int {
	return intPow(el.P+1, dim)
}

func (el *LagrangeElement) Value(i int, x float64) float64    { return el.lb.Value(i, x) }
func (el *LagrangeElement) Gradient(i int, x float64) float64 { return el.lb.Gradient(i, x) }
func (el *LagrangeElement) Hessian(i int, x float64) float64  { return el.lb.Hessian(i, x) }

func (el *LagrangeElement) Numbering(dim int) (I utils.Index) {
	if !el.continuous {
		I = utils.NewRange(0, el.DofsPerCell(dim)-1)
		return
	}
	I = hierarchicNumbering(el.P, dim)
	return
}

// HermiteElement is the cubic Hermite element with a value DoF and a
// derivative DoF per endpoint. The two right-end functions carry the
// mirrored sign convention so that function n-1-i is the mirror image of
// function i about the interval midpoint.
type HermiteElement struct{}

func NewHermite() *HermiteElement { return &HermiteElement{} }

func (el *HermiteElement) Degree() int     { return 3 }
func (el *HermiteElement) NDofs1D() int    { return 4 }
func (el *HermiteElement) Components() int { return 1 }

func (el *HermiteElement) DofsPerCell(dim int) int { return intPow(4, dim) }

func (el *HermiteElement) Value(i int, x float64) float64 {
	switch i {
	case 0:
		return 1. + x*x*(2.*x-3.) // value at 0
	case 1:
		return x * (1. - x) * (1. - x) // derivative at 0
	case 2:
		return x * x * (1. - x) // mirror of the derivative function
	case 3:
		return x * x * (3. - 2.*x) // value at 1
	}
	panic(fmt.Errorf("shape function index %d out of range [0,3]", i))
}

func (el *HermiteElement) Gradient(i int, x float64) float64 {
	switch i {
	case 0:
		return 6. * x * (x - 1.)
	case 1:
		return 1. + x*(3.*x-4.)
	case 2:
		return x * (2. - 3.*x)
	case 3:
		return 6. * x * (1. - x)
	}
	panic(fmt.Errorf("shape function index %d out of range [0,3]", i))
}

func (el *HermiteElement) Hessian(i int, x float64) float64 {
	switch i {
	case 0:
		return 12.*x - 6.
	case 1:
		return 6.*x - 4.
	case 2:
		return 2. - 6.*x
	case 3:
		return 6. - 12.*x
	}
	panic(fmt.Errorf("shape function index %d out of range [0,3]", i))
}

func (el *HermiteElement) Numbering(dim int) utils.Index {
	return utils.NewRange(0, el.DofsPerCell(dim)-1)
}

// LegendreElement is the modal complete-degree element (truncated tensor
// product): the cell basis spans polynomials of total degree P, so the
// cell DoF count is C(P+dim, dim) rather than (P+1)^dim. The 1D
// restriction is the orthonormal shifted Legendre basis.
type LegendreElement struct {
	P int
}

func NewLegendre(degree int) *LegendreElement {
	if degree < 0 {
		panic(fmt.Errorf("Legendre element needs nonnegative degree, have %d", degree))
	}
	return &LegendreElement{P: degree}
}

func (el *LegendreElement) Degree() int     { return el.P }
func (el *LegendreElement) NDofs1D() int    { return el.P + 1 }
func (el *LegendreElement) Components() int { return 1 }

func (el *LegendreElement) DofsPerCell(dim int) (n int) {
	// C(P+dim, dim)
	n = 1
	for d := 1; d <= dim; d++ {
		n = n * (el.P + d) / d
	}
	return
}

func (el *LegendreElement) Value(i int, x float64) float64 {
	return el.modal(i, x, JacobiP, 1.)
}

func (el *LegendreElement) Gradient(i int, x float64) float64 {
	return el.modal(i, x, GradJacobiP, 2.)
}

func (el *LegendreElement) Hessian(i int, x float64) float64 {
	return el.modal(i, x, Grad2JacobiP, 4.)
}

func (el *LegendreElement) modal(i int, x float64,
	mode func(r utils.Vector, alpha, beta float64, N int) []float64,
	chain float64) float64 {
	var (
		r = utils.NewVector(1, []float64{2.*x - 1.})
		// sqrt(2) rescales the [-1,1] orthonormalization to [0,1] so
		// the first function is the constant 1
		sqrt2 = 1.4142135623730951
	)
	if i < 0 || i > el.P {
		panic(fmt.Errorf("shape function index %d out of range [0,%d]", i, el.P))
	}
	return mode(r, 0, 0, i)[0] * sqrt2 * chain
}

func (el *LegendreElement) Numbering(dim int) utils.Index {
	return utils.NewRange(0, el.DofsPerCell(dim)-1)
}

// LagrangeDG0Element augments the continuous equidistant Lagrange element
// with one trailing cell-wise constant shape function
type LagrangeDG0Element struct {
	*LagrangeElement
}

func NewLagrangeDG0(degree int) *LagrangeDG0Element {
	return &LagrangeDG0Element{NewLagrange(degree)}
}

func (el *LagrangeDG0Element) DofsPerCell(dim int) int {
	return el.LagrangeElement.DofsPerCell(dim) + 1
}

func (el *LagrangeDG0Element) ConstantShape(x float64) float64 { return 1. }

func (el *LagrangeDG0Element) Numbering(dim int) (I utils.Index) {
	var (
		base = el.LagrangeElement.Numbering(dim)
	)
	// the constant DoF is last in both orderings
	I = append(base, len(base))
	return
}

// VectorElement replicates a scalar base element across n components with
// the components interleaved in native order. The lexicographic numbering
// is block structured, all of component 0 first.
type VectorElement struct {
	Element
	n int
}

func NewVector(base Element, nComponents int) *VectorElement {
	if nComponents < 1 {
		panic(fmt.Errorf("vector element needs at least one component, have %d", nComponents))
	}
	if base.Components() != 1 {
		panic("vector element needs a scalar base element")
	}
	return &VectorElement{Element: base, n: nComponents}
}

func (el *VectorElement) Components() int { return el.n }

func (el *VectorElement) Numbering(dim int) (I utils.Index) {
	var (
		base = el.Element.Numbering(dim)
		N    = len(base)
	)
	I = utils.NewIndex(el.n * N)
	for c := 0; c < el.n; c++ {
		for q := 0; q < N; q++ {
			I[c*N+q] = el.n*base[q] + c
		}
	}
	return
}

func intPow(base, exp int) (r int) {
	r = 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return
}
