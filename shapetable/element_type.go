package shapetable

// ElementType encodes the structural class of the 1D basis detected at
// construction. The consuming sum-factorization kernels select their
// inner loop algorithm by switching on this tag, so the set is closed
// and exhaustive.
type ElementType int

const (
	// TensorSymmetricCollocation marks nodal points coincident with the
	// quadrature points, so value interpolation is the identity
	TensorSymmetricCollocation ElementType = iota
	// TensorSymmetricHermite marks a symmetric basis fulfilling the
	// Hermite identity, value and first derivative zero at the element
	// end points
	TensorSymmetricHermite
	// TensorSymmetric marks shape values and quadrature points symmetric
	// about the midpoint of the unit interval
	TensorSymmetric
	// TensorGeneral marks a tensor product basis with no exploitable
	// structure
	TensorGeneral
	// TruncatedTensor marks polynomials of complete rather than tensor
	// degree, describable by a truncated tensor product
	TruncatedTensor
	// TensorSymmetricPlusDG0 marks a symmetric basis augmented with a
	// single cell-wise constant shape function
	TensorSymmetricPlusDG0
)

func (et ElementType) String() string {
	switch et {
	case TensorSymmetricCollocation:
		return "tensor_symmetric_collocation"
	case TensorSymmetricHermite:
		return "tensor_symmetric_hermite"
	case TensorSymmetric:
		return "tensor_symmetric"
	case TensorGeneral:
		return "tensor_general"
	case TruncatedTensor:
		return "truncated_tensor"
	case TensorSymmetricPlusDG0:
		return "tensor_symmetric_plus_dg0"
	}
	return "unknown"
}

// UsesEvenOdd reports whether the class populates the even-odd companion
// tables
func (et ElementType) UsesEvenOdd() bool {
	switch et {
	case TensorGeneral, TruncatedTensor:
		return false
	}
	return true
}
