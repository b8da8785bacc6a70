/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/sumfact/FE1D"
	"github.com/notargets/sumfact/InputParameters"
	"github.com/notargets/sumfact/shapetable"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Build a shape table and print its classification and tables",
	Long: `
Builds the shape table for the chosen element / quadrature pair and
prints the detected element class, derived sizes, the 1D tables, face
restrictions, the lexicographic renumbering and the memory consumption.

sumfact info -e gauss-lobatto -d 3 -p 4`,
	Run: func(cmd *cobra.Command, args []string) {
		sp := &InputParameters.ShapeParameters{}
		if caseFile, _ := cmd.Flags().GetString("case"); caseFile != "" {
			data, err := ioutil.ReadFile(caseFile)
			if err != nil {
				fmt.Printf("unable to read case file %s: %v\n", caseFile, err)
				os.Exit(1)
			}
			if err = sp.Parse(data); err != nil {
				fmt.Printf("unable to parse case file %s: %v\n", caseFile, err)
				os.Exit(1)
			}
		} else {
			sp.ElementKind, _ = cmd.Flags().GetString("element")
			sp.Degree, _ = cmd.Flags().GetInt("degree")
			sp.Quadrature, _ = cmd.Flags().GetString("quadrature")
			sp.NQPoints1D, _ = cmd.Flags().GetInt("points")
			sp.Dim, _ = cmd.Flags().GetInt("dim")
			sp.Components, _ = cmd.Flags().GetInt("components")
		}
		sp.Print()
		st := BuildShapeTable(sp)
		PrintShapeTable(st)
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	InfoCmd.Flags().StringP("element", "e", "lagrange", "element kind: lagrange, gauss-lobatto, hermite, legendre, lagrange-dg0")
	InfoCmd.Flags().IntP("degree", "d", 3, "1D polynomial degree")
	InfoCmd.Flags().StringP("quadrature", "q", "gauss", "quadrature kind: gauss, gauss-lobatto")
	InfoCmd.Flags().IntP("points", "p", 4, "number of 1D quadrature points")
	InfoCmd.Flags().IntP("dim", "D", 3, "spatial dimension, 1-3")
	InfoCmd.Flags().IntP("components", "c", 1, "number of vector components")
	InfoCmd.Flags().StringP("case", "f", "", "YAML case file overriding the flags")
}

// BuildShapeTable assembles the quadrature and element named in the
// parameters and runs the precomputation
func BuildShapeTable(sp *InputParameters.ShapeParameters) (st *shapetable.ShapeTable) {
	var (
		q  FE1D.Quadrature
		el FE1D.Element
	)
	switch strings.ToLower(sp.Quadrature) {
	case "gauss", "":
		q = FE1D.GaussLegendre(sp.NQPoints1D)
	case "gauss-lobatto", "gl":
		q = FE1D.GaussLobatto(sp.NQPoints1D)
	default:
		fmt.Printf("unknown quadrature kind: %s\n", sp.Quadrature)
		os.Exit(1)
	}
	switch strings.ToLower(sp.ElementKind) {
	case "lagrange", "":
		if len(sp.Nodes) != 0 {
			el = FE1D.NewDiscontinuousLagrange(sp.Degree, sp.Nodes)
		} else {
			el = FE1D.NewLagrange(sp.Degree)
		}
	case "gauss-lobatto", "gll":
		el = FE1D.NewGaussLobatto(sp.Degree)
	case "hermite":
		el = FE1D.NewHermite()
	case "legendre":
		el = FE1D.NewLegendre(sp.Degree)
	case "lagrange-dg0":
		el = FE1D.NewLagrangeDG0(sp.Degree)
	default:
		fmt.Printf("unknown element kind: %s\n", sp.ElementKind)
		os.Exit(1)
	}
	if sp.Components > 1 {
		el = FE1D.NewVector(el, sp.Components)
	}
	dim := sp.Dim
	if dim == 0 {
		dim = 3
	}
	st = shapetable.NewShapeTable(q, el, dim)
	return
}

func PrintShapeTable(st *shapetable.ShapeTable) {
	fmt.Printf("element type      = %s\n", st.ElementType)
	fmt.Printf("fe degree         = %d, n_dofs_1d = %d, n_q_points_1d = %d\n",
		st.FeDegree, st.NDofs1D, st.NQPoints1D)
	fmt.Printf("dim               = %d, components = %d, SIMD lanes = %d\n",
		st.Dim, st.Components, st.Lanes)
	fmt.Printf("n_q_points        = %d, dofs_per_cell = %d\n", st.NQPoints, st.DofsPerCell)
	fmt.Printf("n_q_points_face   = %d, dofs_per_face = %d\n", st.NQPointsFace, st.DofsPerFace)
	fmt.Printf("shape values = \n%v\n", mat.Formatted(st.Values, mat.Squeeze()))
	fmt.Printf("shape gradients = \n%v\n", mat.Formatted(st.Gradients, mat.Squeeze()))
	fmt.Printf("shape hessians = \n%v\n", mat.Formatted(st.Hessians, mat.Squeeze()))
	for s := 0; s < 2; s++ {
		fmt.Printf("face value[%d]    = %v\n", s, st.FaceValue[s])
		fmt.Printf("face gradient[%d] = %v\n", s, st.FaceGradient[s])
	}
	fmt.Printf("lexicographic numbering = %v\n", st.LexicographicNumbering)
	fmt.Printf("memory consumption = %d bytes\n", st.MemoryConsumption())
}
