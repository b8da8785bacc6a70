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
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/sumfact/InputParameters"
)

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time repeated shape table constructions",
	Long: `
Runs the shape table precomputation repeatedly for the chosen element /
quadrature pair and reports wall time per construction, optionally with
CPU profiling.

sumfact bench -e gauss-lobatto -d 3 -p 4 -i 10000 --profile`,
	Run: func(cmd *cobra.Command, args []string) {
		sp := &InputParameters.ShapeParameters{}
		sp.ElementKind, _ = cmd.Flags().GetString("element")
		sp.Degree, _ = cmd.Flags().GetInt("degree")
		sp.Quadrature, _ = cmd.Flags().GetString("quadrature")
		sp.NQPoints1D, _ = cmd.Flags().GetInt("points")
		sp.Dim, _ = cmd.Flags().GetInt("dim")
		sp.Components, _ = cmd.Flags().GetInt("components")
		iters, _ := cmd.Flags().GetInt("iterations")
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		start := time.Now()
		var bytes int
		for i := 0; i < iters; i++ {
			st := BuildShapeTable(sp)
			bytes = st.MemoryConsumption()
		}
		elapsed := time.Since(start)
		fmt.Printf("%d constructions in %v, %v per table, %d bytes per table\n",
			iters, elapsed, elapsed/time.Duration(iters), bytes)
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().StringP("element", "e", "lagrange", "element kind: lagrange, gauss-lobatto, hermite, legendre, lagrange-dg0")
	BenchCmd.Flags().IntP("degree", "d", 3, "1D polynomial degree")
	BenchCmd.Flags().StringP("quadrature", "q", "gauss", "quadrature kind: gauss, gauss-lobatto")
	BenchCmd.Flags().IntP("points", "p", 4, "number of 1D quadrature points")
	BenchCmd.Flags().IntP("dim", "D", 3, "spatial dimension, 1-3")
	BenchCmd.Flags().IntP("components", "c", 1, "number of vector components")
	BenchCmd.Flags().IntP("iterations", "i", 1000, "number of constructions to time")
	BenchCmd.Flags().Bool("profile", false, "write a CPU profile")
}
