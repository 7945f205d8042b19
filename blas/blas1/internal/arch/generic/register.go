// Package generic registers the baseline contiguous kernels. They run on
// any CPU and exist so lookup always finds an entry; tuned packages
// outrank them by priority.
package generic

import (
	"github.com/cwbudde/algo-blas/blas/blas1/internal/arch/registry"
	"github.com/cwbudde/algo-blas/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Axpby:     axpby,
		Rot:       rot,
	})
}

func axpby(r, x, y []float64, alpha, beta float64) {
	for i := range r {
		r[i] = alpha*x[i] + beta*y[i]
	}
}

func rot(x, y []float64, c, s float64) {
	for i := range x {
		xi, yi := x[i], y[i]
		x[i] = c*xi + s*yi
		y[i] = c*yi - s*xi
	}
}
