package blas1

import (
	"github.com/cwbudde/algo-blas/blas/exec"
	"github.com/cwbudde/algo-blas/blas/view"
)

// Rot applies the Givens plane rotation
//
//	X = c*X + s*Y
//	Y = c*Y - s*X
//
// in place, using the original X on the right-hand side of both lines.
// c and s are typically cosine and sine of the rotation angle, but no
// constraint between them is enforced. Panics if the lengths differ.
func Rot[T view.Floats](x, y view.Vector[T], c, s T, opts ...Option) {
	cfg := applyOptions(opts)
	if tryRotKernel(x, y, c, s) {
		return
	}
	if fitsInt32(x.Len(), 1) {
		rotGeneric[T, int32](cfg.space, x, y, c, s)
	} else {
		rotGeneric[T, int64](cfg.space, x, y, c, s)
	}
}

func rotGeneric[T view.Floats, I Index](sp exec.Space, x, y view.Vector[T], c, s T) {
	n := x.Len()
	if y.Len() != n {
		panic("blas1: vector length mismatch")
	}
	xd, yd := x.Data(), y.Data()
	xs, ys := I(x.Stride()), I(y.Stride())
	sp.ForRange(n, func(lo, hi int) {
		for i := I(lo); i < I(hi); i++ {
			xi, yi := xd[i*xs], yd[i*ys]
			xd[i*xs] = c*xi + s*yi
			yd[i*ys] = c*yi - s*xi
		}
	})
}
