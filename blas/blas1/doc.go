// Package blas1 provides dense BLAS level-1 kernels over view types, with
// call-time specialization of the inner loops.
//
// The central operation is the AXPBY family
//
//	R = a*X + b*Y
//
// for vectors (Axpby) and multivectors, i.e. batches of column vectors
// (AxpbyMV). Each coefficient is either a scalar or one value per column
// (Coefficient). At call time both coefficients are classified against the
// exact additive and multiplicative identities of the element type, and the
// resulting tag pair selects one of the statically instantiated loop bodies:
// a literal zero coefficient drops its term entirely (BLAS semantics: the
// operand is never read), literal +-1 avoids the multiply, and only the
// fully general case pays for two multiplies per element. The selected body
// contains no per-element branching.
//
// Multivector calls additionally pick between a column-unrolled path
// (column-major layouts with 2..16 columns), a generic strided path, and a
// degenerate single-column path that reuses the vector kernel. Loop
// instantiation is also monomorphized over the index width: 32-bit counters
// and offsets when the problem fits, the native width otherwise.
//
// Hand-tuned contiguous float64 kernels can transparently override the
// generic bodies. Overrides self-register in a priority-ordered registry
// (see internal/arch) keyed by detected CPU features; binding happens once
// per process. Set ALGOBLAS_CHECK_KERNELS=1 to print which kernel each
// operation bound to.
//
// Rot applies a Givens plane rotation to two vectors in place, through the
// same override machinery.
//
// Kernels validate nothing they can express in the type system and panic on
// slice-level shape mismatches; there are no error returns, and the dispatch
// layer itself never allocates.
package blas1
