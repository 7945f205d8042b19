package blas1

import (
	"github.com/cwbudde/algo-blas/blas/exec"
	"github.com/cwbudde/algo-blas/blas/view"
)

// vAxpby runs R = a*X + b*Y over a lowered vector triple. The tag pair
// (a, b) selects one of sixteen loop bodies; a zero tag drops its term
// without ever reading the operand, and the default case is the fully
// general body. No body branches per element.
func vAxpby[T view.Floats, I Index](sp exec.Space, v vec3[T], alpha, beta T, a, b int) {
	rd, xd, yd := v.rd, v.xd, v.yd
	rs, xs, ys := I(v.rs), I(v.xs), I(v.ys)

	switch {
	case a == coeffZero && b == coeffZero:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = 0
			}
		})
	case a == coeffZero && b == coeffNegOne:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = -yd[i*ys]
			}
		})
	case a == coeffZero && b == coeffOne:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = yd[i*ys]
			}
		})
	case a == coeffZero:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = beta * yd[i*ys]
			}
		})
	case a == coeffNegOne && b == coeffZero:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = -xd[i*xs]
			}
		})
	case a == coeffNegOne && b == coeffNegOne:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = -xd[i*xs] - yd[i*ys]
			}
		})
	case a == coeffNegOne && b == coeffOne:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = -xd[i*xs] + yd[i*ys]
			}
		})
	case a == coeffNegOne:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = -xd[i*xs] + beta*yd[i*ys]
			}
		})
	case a == coeffOne && b == coeffZero:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = xd[i*xs]
			}
		})
	case a == coeffOne && b == coeffNegOne:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = xd[i*xs] - yd[i*ys]
			}
		})
	case a == coeffOne && b == coeffOne:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = xd[i*xs] + yd[i*ys]
			}
		})
	case a == coeffOne:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = xd[i*xs] + beta*yd[i*ys]
			}
		})
	case b == coeffZero:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = alpha * xd[i*xs]
			}
		})
	case b == coeffNegOne:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = alpha*xd[i*xs] - yd[i*ys]
			}
		})
	case b == coeffOne:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = alpha*xd[i*xs] + yd[i*ys]
			}
		})
	default:
		sp.ForRange(v.n, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rd[i*rs] = alpha*xd[i*xs] + beta*yd[i*ys]
			}
		})
	}
}

// vAxpbyViews lowers a vector triple and dispatches, routing the fully
// general case through a registered contiguous kernel when one is bound.
func vAxpbyViews[T view.Floats, I Index](sp exec.Space, r view.Vector[T], alpha T, a int, x view.Vector[T], beta T, b int, y view.Vector[T]) {
	if a == coeffGeneral && b == coeffGeneral && tryAxpbyKernel(r, alpha, x, beta, y) {
		return
	}
	vAxpby[T, I](sp, lowerVec3(r, x, y), alpha, beta, a, b)
}
