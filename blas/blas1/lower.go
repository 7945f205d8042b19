package blas1

import (
	"github.com/cwbudde/algo-blas/blas/view"
)

// Index is the integer width a loop nest is instantiated at. Calls small
// enough that every offset fits in 32 bits run the int32 instantiation;
// everything else runs int64. Slices index fine with either.
type Index interface {
	~int32 | ~int64
}

// maxUnroll is the widest column count the unrolled multivector path
// handles; wider (or row-major) problems take the generic strided path.
const maxUnroll = 16

// vec3 is a vector triple lowered to raw slices and element strides.
type vec3[T view.Floats] struct {
	rd, xd, yd []T
	rs, xs, ys int
	n          int
}

func lowerVec3[T view.Floats](r, x, y view.Vector[T]) vec3[T] {
	n := r.Len()
	if x.Len() != n || y.Len() != n {
		panic("blas1: vector length mismatch")
	}
	return vec3[T]{
		rd: r.Data(), xd: x.Data(), yd: y.Data(),
		rs: r.Stride(), xs: x.Stride(), ys: y.Stride(),
		n: n,
	}
}

// mv3 is a matrix triple lowered to raw slices and per-dimension strides.
// Row/column stride pairs encode the layout, so the loop bodies are layout
// agnostic.
type mv3[T view.Floats] struct {
	rd, xd, yd []T
	rr, rc     int
	xr, xc     int
	yr, yc     int
	rows, cols int
}

func lowerMV3[T view.Floats](r, x, y view.Matrix[T]) mv3[T] {
	rows, cols := r.Rows(), r.Cols()
	if x.Rows() != rows || x.Cols() != cols || y.Rows() != rows || y.Cols() != cols {
		panic("blas1: multivector shape mismatch")
	}
	return mv3[T]{
		rd: r.Data(), xd: x.Data(), yd: y.Data(),
		rr: r.RowStride(), rc: r.ColStride(),
		xr: x.RowStride(), xc: x.ColStride(),
		yr: y.RowStride(), yc: y.ColStride(),
		rows: rows, cols: cols,
	}
}

// checkPerColumn verifies a per-column coefficient covers every column.
func checkPerColumn[T view.Floats](c []T, cols int, name string) {
	if c != nil && len(c) < cols {
		panic("blas1: per-column " + name + " shorter than column count")
	}
}
