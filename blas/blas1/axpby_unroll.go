package blas1

import (
	"github.com/cwbudde/algo-blas/blas/exec"
	"github.com/cwbudde/algo-blas/blas/view"
)

// mvAxpbyUnrolled is the column-major fast path for narrow multivectors
// (2..16 columns, unit row stride). Both coefficients are staged into
// fixed-size stack arrays up front, broadcast when they arrived as scalars,
// so a single set of bodies covers every coefficient form and the inner
// column loop runs over a small bounded range with no slice-header loads.
func mvAxpbyUnrolled[T view.Floats, I Index](sp exec.Space, m mv3[T], alpha T, ac []T, beta T, bc []T, a, b, un int) {
	var av, bv [maxUnroll]T
	if ac != nil {
		copy(av[:un], ac)
	} else {
		for k := 0; k < un; k++ {
			av[k] = alpha
		}
	}
	if bc != nil {
		copy(bv[:un], bc)
	} else {
		for k := 0; k < un; k++ {
			bv[k] = beta
		}
	}

	rd, xd, yd := m.rd, m.xd, m.yd
	rc, xc, yc := I(m.rc), I(m.xc), I(m.yc)
	nc := I(un)

	switch {
	case a == coeffZero && b == coeffZero:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = 0
				}
			}
		})
	case a == coeffZero && b == coeffNegOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = -yd[i+k*yc]
				}
			}
		})
	case a == coeffZero && b == coeffOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = yd[i+k*yc]
				}
			}
		})
	case a == coeffZero:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = bv[k] * yd[i+k*yc]
				}
			}
		})
	case a == coeffNegOne && b == coeffZero:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = -xd[i+k*xc]
				}
			}
		})
	case a == coeffNegOne && b == coeffNegOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = -xd[i+k*xc] - yd[i+k*yc]
				}
			}
		})
	case a == coeffNegOne && b == coeffOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = -xd[i+k*xc] + yd[i+k*yc]
				}
			}
		})
	case a == coeffNegOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = -xd[i+k*xc] + bv[k]*yd[i+k*yc]
				}
			}
		})
	case a == coeffOne && b == coeffZero:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = xd[i+k*xc]
				}
			}
		})
	case a == coeffOne && b == coeffNegOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = xd[i+k*xc] - yd[i+k*yc]
				}
			}
		})
	case a == coeffOne && b == coeffOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = xd[i+k*xc] + yd[i+k*yc]
				}
			}
		})
	case a == coeffOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = xd[i+k*xc] + bv[k]*yd[i+k*yc]
				}
			}
		})
	case b == coeffZero:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = av[k] * xd[i+k*xc]
				}
			}
		})
	case b == coeffNegOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = av[k]*xd[i+k*xc] - yd[i+k*yc]
				}
			}
		})
	case b == coeffOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = av[k]*xd[i+k*xc] + yd[i+k*yc]
				}
			}
		})
	default:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				for k := I(0); k < nc; k++ {
					rd[i+k*rc] = av[k]*xd[i+k*xc] + bv[k]*yd[i+k*yc]
				}
			}
		})
	}
}
