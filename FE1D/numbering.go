package FE1D

import (
	"fmt"

	"github.com/notargets/sumfact/utils"
)

/*
Continuous tensor product elements number their cell DoFs hierarchically:
all vertex DoFs first, then the interior DoFs of each edge, then each
face, then the cell interior, each group ordered along increasing
coordinates. hierarchicNumbering reproduces that ordering on the
(P+1)^dim nodal grid and returns the permutation whose entry q is the
native (hierarchic) DoF found at lexicographic slot q.
*/
func hierarchicNumbering(P, dim int) (I utils.Index) {
	var (
		native [][3]int
	)
	switch dim {
	case 1:
		native = hierarchic1D(P)
	case 2:
		native = hierarchic2D(P)
	case 3:
		native = hierarchic3D(P)
	default:
		panic(fmt.Errorf("unsupported dimension %d, need 1, 2 or 3", dim))
	}
	var (
		n        = P + 1
		lexOfNat = utils.NewIndex(len(native))
	)
	for nat, g := range native {
		lexOfNat[nat] = g[0] + n*(g[1]+n*g[2])
	}
	I = lexOfNat.Inverse()
	return
}

func hierarchic1D(P int) (g [][3]int) {
	g = append(g, [3]int{0, 0, 0}, [3]int{P, 0, 0})
	for k := 1; k < P; k++ {
		g = append(g, [3]int{k, 0, 0})
	}
	return
}

func hierarchic2D(P int) (g [][3]int) {
	// vertices
	for _, v := range [][2]int{{0, 0}, {P, 0}, {0, P}, {P, P}} {
		g = append(g, [3]int{v[0], v[1], 0})
	}
	// lines: left, right, bottom, top
	for k := 1; k < P; k++ {
		g = append(g, [3]int{0, k, 0})
	}
	for k := 1; k < P; k++ {
		g = append(g, [3]int{P, k, 0})
	}
	for k := 1; k < P; k++ {
		g = append(g, [3]int{k, 0, 0})
	}
	for k := 1; k < P; k++ {
		g = append(g, [3]int{k, P, 0})
	}
	// interior
	for j := 1; j < P; j++ {
		for i := 1; i < P; i++ {
			g = append(g, [3]int{i, j, 0})
		}
	}
	return
}

func hierarchic3D(P int) (g [][3]int) {
	// vertices, z planes bottom to top
	for _, z := range []int{0, P} {
		for _, v := range [][2]int{{0, 0}, {P, 0}, {0, P}, {P, P}} {
			g = append(g, [3]int{v[0], v[1], z})
		}
	}
	// lines of the bottom and top faces, then the vertical lines
	for _, z := range []int{0, P} {
		for k := 1; k < P; k++ {
			g = append(g, [3]int{0, k, z})
		}
		for k := 1; k < P; k++ {
			g = append(g, [3]int{P, k, z})
		}
		for k := 1; k < P; k++ {
			g = append(g, [3]int{k, 0, z})
		}
		for k := 1; k < P; k++ {
			g = append(g, [3]int{k, P, z})
		}
	}
	for _, v := range [][2]int{{0, 0}, {P, 0}, {0, P}, {P, P}} {
		for k := 1; k < P; k++ {
			g = append(g, [3]int{v[0], v[1], k})
		}
	}
	// face interiors: x=0, x=P, y=0, y=P, z=0, z=P
	for _, x := range []int{0, P} {
		for k := 1; k < P; k++ {
			for j := 1; j < P; j++ {
				g = append(g, [3]int{x, j, k})
			}
		}
	}
	for _, y := range []int{0, P} {
		for k := 1; k < P; k++ {
			for i := 1; i < P; i++ {
				g = append(g, [3]int{i, y, k})
			}
		}
	}
	for _, z := range []int{0, P} {
		for j := 1; j < P; j++ {
			for i := 1; i < P; i++ {
				g = append(g, [3]int{i, j, z})
			}
		}
	}
	// cell interior
	for k := 1; k < P; k++ {
		for j := 1; j < P; j++ {
			for i := 1; i < P; i++ {
				g = append(g, [3]int{i, j, k})
			}
		}
	}
	return
}
