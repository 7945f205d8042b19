package blas1

import (
	"github.com/cwbudde/algo-blas/blas/exec"
	"github.com/cwbudde/algo-blas/blas/view"
)

// mvAxpbyGeneric runs R = a*X + b*Y over a lowered multivector triple at
// arbitrary strides and column counts. The tag pair (a, b) selects the
// outer arm; within a general-tag arm the coefficient form (single scalar
// vs per-column slice) picks the body, so every launched body is straight
// line per element. Rows are the parallel dimension.
func mvAxpbyGeneric[T view.Floats, I Index](sp exec.Space, m mv3[T], alpha T, ac []T, beta T, bc []T, a, b int) {
	rd, xd, yd := m.rd, m.xd, m.yd
	rr, rc := I(m.rr), I(m.rc)
	xr, xc := I(m.xr), I(m.xc)
	yr, yc := I(m.yr), I(m.yc)
	nc := I(m.cols)

	switch {
	case a == coeffZero && b == coeffZero:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rb := i * rr
				for k := I(0); k < nc; k++ {
					rd[rb+k*rc] = 0
				}
			}
		})
	case a == coeffZero && b == coeffNegOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rb, yb := i*rr, i*yr
				for k := I(0); k < nc; k++ {
					rd[rb+k*rc] = -yd[yb+k*yc]
				}
			}
		})
	case a == coeffZero && b == coeffOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rb, yb := i*rr, i*yr
				for k := I(0); k < nc; k++ {
					rd[rb+k*rc] = yd[yb+k*yc]
				}
			}
		})
	case a == coeffZero:
		if bc == nil {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, yb := i*rr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = beta * yd[yb+k*yc]
					}
				}
			})
		} else {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, yb := i*rr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = bc[k] * yd[yb+k*yc]
					}
				}
			})
		}
	case a == coeffNegOne && b == coeffZero:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rb, xb := i*rr, i*xr
				for k := I(0); k < nc; k++ {
					rd[rb+k*rc] = -xd[xb+k*xc]
				}
			}
		})
	case a == coeffNegOne && b == coeffNegOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rb, xb, yb := i*rr, i*xr, i*yr
				for k := I(0); k < nc; k++ {
					rd[rb+k*rc] = -xd[xb+k*xc] - yd[yb+k*yc]
				}
			}
		})
	case a == coeffNegOne && b == coeffOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rb, xb, yb := i*rr, i*xr, i*yr
				for k := I(0); k < nc; k++ {
					rd[rb+k*rc] = -xd[xb+k*xc] + yd[yb+k*yc]
				}
			}
		})
	case a == coeffNegOne:
		if bc == nil {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = -xd[xb+k*xc] + beta*yd[yb+k*yc]
					}
				}
			})
		} else {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = -xd[xb+k*xc] + bc[k]*yd[yb+k*yc]
					}
				}
			})
		}
	case a == coeffOne && b == coeffZero:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rb, xb := i*rr, i*xr
				for k := I(0); k < nc; k++ {
					rd[rb+k*rc] = xd[xb+k*xc]
				}
			}
		})
	case a == coeffOne && b == coeffNegOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rb, xb, yb := i*rr, i*xr, i*yr
				for k := I(0); k < nc; k++ {
					rd[rb+k*rc] = xd[xb+k*xc] - yd[yb+k*yc]
				}
			}
		})
	case a == coeffOne && b == coeffOne:
		sp.ForRange(m.rows, func(lo, hi int) {
			for i := I(lo); i < I(hi); i++ {
				rb, xb, yb := i*rr, i*xr, i*yr
				for k := I(0); k < nc; k++ {
					rd[rb+k*rc] = xd[xb+k*xc] + yd[yb+k*yc]
				}
			}
		})
	case a == coeffOne:
		if bc == nil {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = xd[xb+k*xc] + beta*yd[yb+k*yc]
					}
				}
			})
		} else {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = xd[xb+k*xc] + bc[k]*yd[yb+k*yc]
					}
				}
			})
		}
	case b == coeffZero:
		if ac == nil {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb := i*rr, i*xr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = alpha * xd[xb+k*xc]
					}
				}
			})
		} else {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb := i*rr, i*xr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = ac[k] * xd[xb+k*xc]
					}
				}
			})
		}
	case b == coeffNegOne:
		if ac == nil {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = alpha*xd[xb+k*xc] - yd[yb+k*yc]
					}
				}
			})
		} else {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = ac[k]*xd[xb+k*xc] - yd[yb+k*yc]
					}
				}
			})
		}
	case b == coeffOne:
		if ac == nil {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = alpha*xd[xb+k*xc] + yd[yb+k*yc]
					}
				}
			})
		} else {
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = ac[k]*xd[xb+k*xc] + yd[yb+k*yc]
					}
				}
			})
		}
	default:
		switch {
		case ac == nil && bc == nil:
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = alpha*xd[xb+k*xc] + beta*yd[yb+k*yc]
					}
				}
			})
		case ac == nil:
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = alpha*xd[xb+k*xc] + bc[k]*yd[yb+k*yc]
					}
				}
			})
		case bc == nil:
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = ac[k]*xd[xb+k*xc] + beta*yd[yb+k*yc]
					}
				}
			})
		default:
			sp.ForRange(m.rows, func(lo, hi int) {
				for i := I(lo); i < I(hi); i++ {
					rb, xb, yb := i*rr, i*xr, i*yr
					for k := I(0); k < nc; k++ {
						rd[rb+k*rc] = ac[k]*xd[xb+k*xc] + bc[k]*yd[yb+k*yc]
					}
				}
			})
		}
	}
}
