package FE1D

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussLegendre(t *testing.T) {
	// weights of a rule on the unit interval sum to one
	for nPoints := 1; nPoints <= 6; nPoints++ {
		q := GaussLegendre(nPoints)
		var sum float64
		for _, w := range q.Weights {
			sum += w
		}
		assert.True(t, near(sum, 1))
	}
	// the classic 3 point rule
	{
		q := GaussLegendre(3)
		fmt.Printf("gauss 3 points = %v\nweights = %v\n", q.Points, q.Weights)
		assert.True(t, near(q.Points[0], 0.5-0.5*math.Sqrt(3./5.)))
		assert.True(t, near(q.Points[1], 0.5))
		assert.True(t, near(q.Points[2], 0.5+0.5*math.Sqrt(3./5.)))
		assert.True(t, near(q.Weights[0], 5./18.))
		assert.True(t, near(q.Weights[1], 8./18.))
		assert.True(t, near(q.Weights[2], 5./18.))
	}
	// exactness up to degree 2*nPoints-1
	{
		q := GaussLegendre(3)
		for k := 0; k <= 5; k++ {
			var integral float64
			for i, x := range q.Points {
				integral += q.Weights[i] * math.Pow(x, float64(k))
			}
			assert.True(t, near(integral, 1./float64(k+1)))
		}
	}
	assert.Panics(t, func() { GaussLegendre(0) })
}

func TestGaussLobatto(t *testing.T) {
	{
		q := GaussLobatto(4)
		fmt.Printf("gauss-lobatto 4 points = %v\nweights = %v\n", q.Points, q.Weights)
		// endpoints included
		assert.True(t, near(q.Points[0], 0))
		assert.True(t, near(q.Points[3], 1))
		// interior points at 0.5 +- 1/(2*sqrt(5))
		assert.True(t, near(q.Points[1], 0.5-0.5/math.Sqrt(5)))
		assert.True(t, near(q.Points[2], 0.5+0.5/math.Sqrt(5)))
		assert.True(t, near(q.Weights[0], 1./12.))
		assert.True(t, near(q.Weights[1], 5./12.))
	}
	// exactness up to degree 2*nPoints-3
	{
		q := GaussLobatto(4)
		for k := 0; k <= 5; k++ {
			var integral float64
			for i, x := range q.Points {
				integral += q.Weights[i] * math.Pow(x, float64(k))
			}
			assert.True(t, near(integral, 1./float64(k+1)))
		}
	}
	assert.Panics(t, func() { GaussLobatto(1) })
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-10 {
		l = true
	}
	return
}
