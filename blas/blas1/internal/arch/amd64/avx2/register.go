//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-blas/blas/blas1/internal/arch/registry"
	"github.com/cwbudde/algo-blas/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Axpby:     axpby,
		Rot:       rot,
	})
}

// axpby is a 4x-unrolled kernel selected for AVX2-capable CPUs.
// TODO: replace with explicit AVX2 asm kernel.
func axpby(r, x, y []float64, alpha, beta float64) {
	i := 0
	n := len(r)
	for ; i+3 < n; i += 4 {
		r0 := alpha*x[i] + beta*y[i]
		r1 := alpha*x[i+1] + beta*y[i+1]
		r2 := alpha*x[i+2] + beta*y[i+2]
		r3 := alpha*x[i+3] + beta*y[i+3]

		r[i] = r0
		r[i+1] = r1
		r[i+2] = r2
		r[i+3] = r3
	}

	for ; i < n; i++ {
		r[i] = alpha*x[i] + beta*y[i]
	}
}

func rot(x, y []float64, c, s float64) {
	i := 0
	n := len(x)
	for ; i+3 < n; i += 4 {
		x0, y0 := x[i], y[i]
		x1, y1 := x[i+1], y[i+1]
		x2, y2 := x[i+2], y[i+2]
		x3, y3 := x[i+3], y[i+3]

		x[i], y[i] = c*x0+s*y0, c*y0-s*x0
		x[i+1], y[i+1] = c*x1+s*y1, c*y1-s*x1
		x[i+2], y[i+2] = c*x2+s*y2, c*y2-s*x2
		x[i+3], y[i+3] = c*x3+s*y3, c*y3-s*x3
	}

	for ; i < n; i++ {
		xi, yi := x[i], y[i]
		x[i] = c*xi + s*yi
		y[i] = c*yi - s*xi
	}
}
