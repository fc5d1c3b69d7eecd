// Package matview adapts a *crosslist.CrossList[float64] to gonum's
// mat.Matrix interface, letting analyze-matrix run real linear-algebra
// passes (norms, power iteration) over the sparse WAF/affinity storage
// without copying it into a dense gonum type first.
package matview

import (
	"gonum.org/v1/gonum/mat"

	"github.com/wafcore/waf/crosslist"
)

// Float64View wraps a CrossList[float64] as a read-only mat.Matrix.
type Float64View struct {
	cl *crosslist.CrossList[float64]
}

// NewFloat64View wraps cl. cl must not be mutated while the view is in use.
func NewFloat64View(cl *crosslist.CrossList[float64]) *Float64View {
	return &Float64View{cl: cl}
}

func (v *Float64View) Dims() (r, c int) { return v.cl.Rows(), v.cl.Columns() }

func (v *Float64View) At(i, j int) float64 {
	val, err := v.cl.Get(i, j)
	if err != nil {
		return 0
	}
	return val
}

func (v *Float64View) T() mat.Matrix { return mat.Transpose{Matrix: v} }
