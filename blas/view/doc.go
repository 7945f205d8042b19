// Package view provides lightweight rank-1 and rank-2 array views over
// caller-owned slices, with explicit storage layout.
//
// A Vector is a strided 1-D view; a Matrix is a 2-D view in either
// column-major (ColMajor) or row-major (RowMajor) order. Views do not own
// their backing memory and never reallocate; all accessors are O(1).
//
// Kernels in blas1 treat views as the unit of dispatch: the element type,
// rank, and layout of a view decide at instantiation time which kernel body
// runs, so the views themselves carry no behavior beyond indexing and
// subviews.
package view
