package shapetable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/sumfact/FE1D"
)

func TestNumberingBijection(t *testing.T) {
	cases := []struct {
		el  FE1D.Element
		dim int
	}{
		{FE1D.NewLagrange(3), 2},
		{FE1D.NewLagrange(2), 3},
		{FE1D.NewLagrangeDG0(2), 2},
		{FE1D.NewVector(FE1D.NewLagrange(2), 3), 2},
	}
	for _, c := range cases {
		st := NewShapeTable(FE1D.GaussLegendre(c.el.Degree()+1), c.el, c.dim)
		I := st.LexicographicNumbering
		assert.True(t, I.IsPermutation())
		// applying the numbering and its inverse round-trips
		inv := st.InverseNumbering()
		for nat := 0; nat < len(I); nat++ {
			assert.Equal(t, nat, I[inv[nat]])
		}
		for lex := 0; lex < len(I); lex++ {
			assert.Equal(t, lex, inv[I[lex]])
		}
	}
}

func TestPermutationMatrix(t *testing.T) {
	var (
		st = NewShapeTable(FE1D.GaussLegendre(4), FE1D.NewLagrange(3), 2)
		I  = st.LexicographicNumbering
		N  = len(I)
		rg = rand.New(rand.NewSource(42))
		x  = mat.NewVecDense(N, nil)
	)
	for i := 0; i < N; i++ {
		x.SetVec(i, rg.Float64())
	}
	// sparse gather agrees with the index gather
	var y mat.Dense
	y.Mul(st.PermutationMatrix(), x)
	for lex := 0; lex < N; lex++ {
		assert.Equal(t, x.AtVec(I[lex]), y.At(lex, 0))
	}
}

func TestVectorNumberingBlocks(t *testing.T) {
	var (
		base = FE1D.NewLagrange(2)
		st   = NewShapeTable(FE1D.GaussLegendre(3), FE1D.NewVector(base, 2), 2)
		I    = st.LexicographicNumbering
		N    = st.DofsPerCell
	)
	assert.Equal(t, 2*N, len(I))
	// all native indices in the first block are even (component 0
	// interleaved natively), all in the second are odd
	for q := 0; q < N; q++ {
		assert.Equal(t, 0, I[q]%2)
		assert.Equal(t, 1, I[N+q]%2)
	}
}
