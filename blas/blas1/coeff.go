package blas1

import (
	"github.com/cwbudde/algo-blas/blas/view"
)

// Coefficient tags. The numeric values double as the dispatch codes: every
// selection switch enumerates the pairs in a fixed order and falls back to
// the fully general (coeffGeneral, coeffGeneral) body.
const (
	coeffNegOne  = -1
	coeffZero    = 0
	coeffOne     = 1
	coeffGeneral = 2
)

// Coefficient is a scaling factor for one AXPBY operand: either a single
// scalar applied to every column, or one value per column. The zero value
// is the scalar 0, which drops the operand entirely.
type Coefficient[T view.Floats] struct {
	scalar T
	perCol []T
	vec    bool
}

// Scalar wraps a single scaling factor.
func Scalar[T view.Floats](v T) Coefficient[T] {
	return Coefficient[T]{scalar: v}
}

// PerColumn wraps one scaling factor per column. An empty (or nil) slice
// means the operand is absent: it is classified as an exact zero and never
// read. A non-empty slice is always treated as fully general, entry values
// included; the entries are not inspected for identities.
func PerColumn[T view.Floats](c []T) Coefficient[T] {
	return Coefficient[T]{perCol: c, vec: true}
}

// classify resolves a coefficient to its dispatch tag, a scalar value, and
// an optional per-column slice. For a per-column coefficient the scalar is
// the first entry, which is what rank-1 calls consult. NaN never compares
// equal to an identity, so it lands on the general tag and is propagated
// arithmetically.
func (c Coefficient[T]) classify() (tag int, s T, cols []T) {
	if c.vec {
		if len(c.perCol) == 0 {
			return coeffZero, view.Zero[T](), nil
		}
		return coeffGeneral, c.perCol[0], c.perCol
	}
	switch c.scalar {
	case view.Zero[T]():
		return coeffZero, c.scalar, nil
	case -view.One[T]():
		return coeffNegOne, c.scalar, nil
	case view.One[T]():
		return coeffOne, c.scalar, nil
	}
	return coeffGeneral, c.scalar, nil
}
