package view

import "fmt"

// Floats constrains the element types kernels operate on.
type Floats interface {
	~float32 | ~float64
}

// Layout identifies the storage order of a Matrix.
type Layout int

const (
	// ColMajor stores each column contiguously (structure-of-columns).
	ColMajor Layout = iota

	// RowMajor stores each row contiguously.
	RowMajor
)

// String returns a human-readable name for the layout.
func (l Layout) String() string {
	switch l {
	case ColMajor:
		return "col-major"
	case RowMajor:
		return "row-major"
	default:
		return "unknown"
	}
}

// Vector is a strided 1-D view over a backing slice.
// The zero value is an empty vector.
type Vector[T Floats] struct {
	data   []T
	n      int
	stride int
}

// NewVector allocates a zeroed contiguous vector of length n.
func NewVector[T Floats](n int) Vector[T] {
	return Vector[T]{data: make([]T, n), n: n, stride: 1}
}

// VectorOf wraps data as a contiguous vector without copying.
func VectorOf[T Floats](data []T) Vector[T] {
	return Vector[T]{data: data, n: len(data), stride: 1}
}

// WrapVector wraps data as a strided vector of n elements without copying.
// Element i lives at data[i*stride].
func WrapVector[T Floats](data []T, n, stride int) (Vector[T], error) {
	if n < 0 || stride < 1 {
		return Vector[T]{}, fmt.Errorf("view: invalid vector shape n=%d stride=%d", n, stride)
	}
	if need := spanLen(n, stride); len(data) < need {
		return Vector[T]{}, fmt.Errorf("view: backing slice too short: have %d, need %d", len(data), need)
	}
	return Vector[T]{data: data, n: n, stride: stride}, nil
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return v.n }

// Stride returns the distance, in elements of the backing slice, between
// consecutive vector elements.
func (v Vector[T]) Stride() int { return v.stride }

// Contiguous reports whether the elements are adjacent in memory.
func (v Vector[T]) Contiguous() bool { return v.stride == 1 }

// At returns element i.
func (v Vector[T]) At(i int) T { return v.data[i*v.stride] }

// Set stores x at element i.
func (v Vector[T]) Set(i int, x T) { v.data[i*v.stride] = x }

// Data returns the backing slice, including gap elements for strided views.
func (v Vector[T]) Data() []T { return v.data }

// Matrix is a 2-D view over a backing slice in the given layout.
// Element (i, k) lives at i*RowStride() + k*ColStride().
type Matrix[T Floats] struct {
	data   []T
	rows   int
	cols   int
	stride int
	layout Layout
}

// NewMatrix allocates a zeroed, packed matrix of the given shape and layout.
func NewMatrix[T Floats](layout Layout, rows, cols int) Matrix[T] {
	stride := rows
	if layout == RowMajor {
		stride = cols
	}
	return Matrix[T]{
		data:   make([]T, rows*cols),
		rows:   rows,
		cols:   cols,
		stride: stride,
		layout: layout,
	}
}

// WrapMatrix wraps data as a packed matrix of the given shape and layout
// without copying.
func WrapMatrix[T Floats](data []T, layout Layout, rows, cols int) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return Matrix[T]{}, fmt.Errorf("view: invalid matrix shape %dx%d", rows, cols)
	}
	if len(data) < rows*cols {
		return Matrix[T]{}, fmt.Errorf("view: backing slice too short: have %d, need %d", len(data), rows*cols)
	}
	stride := rows
	if layout == RowMajor {
		stride = cols
	}
	return Matrix[T]{data: data, rows: rows, cols: cols, stride: stride, layout: layout}, nil
}

// Rows returns the row count.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m Matrix[T]) Cols() int { return m.cols }

// Dim returns dimension d: Dim(0) is the row count, Dim(1) the column count.
func (m Matrix[T]) Dim(d int) int {
	switch d {
	case 0:
		return m.rows
	case 1:
		return m.cols
	default:
		panic(fmt.Sprintf("view: Matrix.Dim(%d) out of range", d))
	}
}

// Layout returns the storage order.
func (m Matrix[T]) Layout() Layout { return m.layout }

// Stride returns the leading dimension: the distance between consecutive
// columns (ColMajor) or rows (RowMajor) in the backing slice.
func (m Matrix[T]) Stride() int { return m.stride }

// RowStride returns the backing-slice distance between rows i and i+1.
func (m Matrix[T]) RowStride() int {
	if m.layout == ColMajor {
		return 1
	}
	return m.stride
}

// ColStride returns the backing-slice distance between columns k and k+1.
func (m Matrix[T]) ColStride() int {
	if m.layout == ColMajor {
		return m.stride
	}
	return 1
}

// At returns element (i, k).
func (m Matrix[T]) At(i, k int) T {
	return m.data[i*m.RowStride()+k*m.ColStride()]
}

// Set stores x at element (i, k).
func (m Matrix[T]) Set(i, k int, x T) {
	m.data[i*m.RowStride()+k*m.ColStride()] = x
}

// Col returns a rank-1 view of column k, sharing the backing slice.
// For ColMajor matrices the result is contiguous.
func (m Matrix[T]) Col(k int) Vector[T] {
	if k < 0 || k >= m.cols {
		panic(fmt.Sprintf("view: column %d out of range [0,%d)", k, m.cols))
	}
	if m.layout == ColMajor {
		return Vector[T]{data: m.data[k*m.stride : k*m.stride+m.rows], n: m.rows, stride: 1}
	}
	lo := k
	hi := spanLen(m.rows, m.stride) + k
	if m.rows == 0 {
		return Vector[T]{n: 0, stride: m.stride}
	}
	return Vector[T]{data: m.data[lo:hi], n: m.rows, stride: m.stride}
}

// Data returns the backing slice.
func (m Matrix[T]) Data() []T { return m.data }

// spanLen returns the backing length needed for n strided elements.
func spanLen(n, stride int) int {
	if n == 0 {
		return 0
	}
	return (n-1)*stride + 1
}
