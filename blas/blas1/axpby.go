package blas1

import (
	"math"

	"github.com/cwbudde/algo-blas/blas/view"
)

// Axpby computes R = alpha*X + beta*Y elementwise over vectors. Operands
// whose coefficient classifies as zero are never read, so they may hold
// NaN or Inf without contaminating the result. R may alias X or Y.
// Panics if the lengths differ.
func Axpby[T view.Floats](r view.Vector[T], alpha Coefficient[T], x view.Vector[T], beta Coefficient[T], y view.Vector[T], opts ...Option) {
	cfg := applyOptions(opts)
	a, as, _ := alpha.classify()
	b, bs, _ := beta.classify()
	if fitsInt32(r.Len(), 1) {
		vAxpbyViews[T, int32](cfg.space, r, as, a, x, bs, b, y)
	} else {
		vAxpbyViews[T, int64](cfg.space, r, as, a, x, bs, b, y)
	}
}

// AxpbyMV computes R = alpha*X + beta*Y over multivectors, column by
// column. A per-column coefficient scales each column by its own entry and
// must cover every column. R may alias X or Y. Panics if the shapes differ
// or a per-column coefficient is too short.
func AxpbyMV[T view.Floats](r view.Matrix[T], alpha Coefficient[T], x view.Matrix[T], beta Coefficient[T], y view.Matrix[T], opts ...Option) {
	cfg := applyOptions(opts)
	a, as, ac := alpha.classify()
	b, bs, bc := beta.classify()
	checkPerColumn(ac, r.Cols(), "alpha")
	checkPerColumn(bc, r.Cols(), "beta")
	if fitsInt32(r.Rows(), r.Cols()) {
		mvInvoke[T, int32](cfg.space, r, as, ac, a, x, bs, bc, b, y)
	} else {
		mvInvoke[T, int64](cfg.space, r, as, ac, a, x, bs, bc, b, y)
	}
}

// fitsInt32 reports whether every loop counter and flat offset of a
// rows x cols problem fits in 32 bits. The product is formed in 64 bits so
// the check itself cannot overflow. Decided once per call and applied to
// every nested loop, the single-column degradation included.
func fitsInt32(rows, cols int) bool {
	return int64(rows) < math.MaxInt32 && int64(rows)*int64(cols) < math.MaxInt32
}
