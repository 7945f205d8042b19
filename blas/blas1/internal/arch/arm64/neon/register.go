//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-blas/blas/blas1/internal/arch/registry"
	"github.com/cwbudde/algo-blas/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Axpby:     axpby,
		Rot:       rot,
	})
}

// axpby is a 2x-unrolled kernel selected for NEON-capable CPUs.
func axpby(r, x, y []float64, alpha, beta float64) {
	i := 0
	n := len(r)
	for ; i+1 < n; i += 2 {
		r0 := alpha*x[i] + beta*y[i]
		r1 := alpha*x[i+1] + beta*y[i+1]

		r[i] = r0
		r[i+1] = r1
	}

	if i < n {
		r[i] = alpha*x[i] + beta*y[i]
	}
}

func rot(x, y []float64, c, s float64) {
	i := 0
	n := len(x)
	for ; i+1 < n; i += 2 {
		x0, y0 := x[i], y[i]
		x1, y1 := x[i+1], y[i+1]

		x[i], y[i] = c*x0+s*y0, c*y0-s*x0
		x[i+1], y[i+1] = c*x1+s*y1, c*y1-s*x1
	}

	if i < n {
		xi, yi := x[i], y[i]
		x[i] = c*xi + s*yi
		y[i] = c*yi - s*xi
	}
}
