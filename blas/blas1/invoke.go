package blas1

import (
	"github.com/cwbudde/algo-blas/blas/exec"
	"github.com/cwbudde/algo-blas/blas/view"
)

// mvInvoke routes a classified multivector call to the right loop nest.
// Single-column problems degrade to the rank-1 kernel over column
// subviews, with a per-column coefficient resolved to its first entry.
// Column-major problems of 2..16 columns take the unrolled path at a
// literal width; everything else, row-major included, runs the generic
// strided nest.
func mvInvoke[T view.Floats, I Index](sp exec.Space, r view.Matrix[T], alpha T, ac []T, a int, x view.Matrix[T], beta T, bc []T, b int, y view.Matrix[T]) {
	cols := r.Cols()
	if cols == 1 {
		vAxpbyViews[T, I](sp, r.Col(0), alpha, a, x.Col(0), beta, b, y.Col(0))
		return
	}
	if cols <= maxUnroll && colMajorAll(r, x, y) {
		m := lowerMV3(r, x, y)
		switch cols {
		case 2:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 2)
		case 3:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 3)
		case 4:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 4)
		case 5:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 5)
		case 6:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 6)
		case 7:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 7)
		case 8:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 8)
		case 9:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 9)
		case 10:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 10)
		case 11:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 11)
		case 12:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 12)
		case 13:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 13)
		case 14:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 14)
		case 15:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 15)
		case 16:
			mvAxpbyUnrolled[T, I](sp, m, alpha, ac, beta, bc, a, b, 16)
		}
		return
	}
	mvAxpbyGeneric[T, I](sp, lowerMV3(r, x, y), alpha, ac, beta, bc, a, b)
}

func colMajorAll[T view.Floats](r, x, y view.Matrix[T]) bool {
	return r.Layout() == view.ColMajor && x.Layout() == view.ColMajor && y.Layout() == view.ColMajor
}
