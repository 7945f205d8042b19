// Package vecmath registers contiguous kernels backed by the algo-vecmath
// block primitives, which pick their own SIMD implementation internally.
// Portable across architectures, so it registers at SIMDNone and relies on
// priority to outrank the scalar baseline.
package vecmath

import (
	vm "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-blas/blas/blas1/internal/arch/registry"
	"github.com/cwbudde/algo-blas/internal/cpu"
	"github.com/cwbudde/algo-blas/internal/pool"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "vecmath",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		Axpby:     axpby,
		Rot:       rot,
	})
}

// axpby computes r = alpha*x + beta*y from two scaled blocks. The beta
// term is staged in a pooled scratch block first so that r may alias
// either input.
func axpby(r, x, y []float64, alpha, beta float64) {
	t := pool.Get(len(r))
	vm.ScaleBlock(t, y, beta)
	vm.ScaleBlock(r, x, alpha)
	vm.AddBlockInPlace(r, t)
	pool.Put(t)
}

// rot applies the plane rotation x, y = c*x + s*y, c*y - s*x in place.
// The original x is copied to scratch so both lines see it.
func rot(x, y []float64, c, s float64) {
	n := len(x)
	u := pool.Get(n)
	t := pool.Get(n)
	copy(u, x)
	vm.ScaleBlock(t, y, s)
	vm.ScaleBlock(x, u, c)
	vm.AddBlockInPlace(x, t)
	vm.ScaleBlock(t, y, c)
	vm.ScaleBlock(y, u, -s)
	vm.AddBlockInPlace(y, t)
	pool.Put(t)
	pool.Put(u)
}
