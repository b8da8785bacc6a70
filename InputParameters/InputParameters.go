package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type ShapeParameters struct {
	Title       string    `yaml:"Title"`
	ElementKind string    `yaml:"ElementKind"` // lagrange, gauss-lobatto, hermite, legendre, lagrange-dg0
	Degree      int       `yaml:"Degree"`
	Quadrature  string    `yaml:"Quadrature"` // gauss, gauss-lobatto
	NQPoints1D  int       `yaml:"NQPoints1D"`
	Dim         int       `yaml:"Dim"`
	Components  int       `yaml:"Components"`
	Nodes       []float64 `yaml:"Nodes"` // optional explicit nodes for a discontinuous Lagrange basis
}

func (sp *ShapeParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *ShapeParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%s]\t\t= ElementKind\n", sp.ElementKind)
	fmt.Printf("[%d]\t\t\t= Degree\n", sp.Degree)
	fmt.Printf("[%s]\t\t= Quadrature\n", sp.Quadrature)
	fmt.Printf("[%d]\t\t\t= NQPoints1D\n", sp.NQPoints1D)
	fmt.Printf("[%d]\t\t\t= Dim\n", sp.Dim)
	fmt.Printf("[%d]\t\t\t= Components\n", sp.Components)
	if len(sp.Nodes) != 0 {
		fmt.Printf("%v\t= Nodes\n", sp.Nodes)
	}
}
