package blas1

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-blas/blas/exec"
	"github.com/cwbudde/algo-blas/blas/view"
	"github.com/cwbudde/algo-blas/internal/testutil"
)

// refAxpbyMV applies the documented per-column semantics directly: a zero
// coefficient drops its term, a per-column coefficient scales column k by
// entry k.
func refAxpbyMV(r, x, y view.Matrix[float64], alpha, beta Coefficient[float64]) {
	a, as, ac := alpha.classify()
	b, bs, bc := beta.classify()
	for i := 0; i < r.Rows(); i++ {
		for k := 0; k < r.Cols(); k++ {
			var v float64
			if a != coeffZero {
				av := as
				if ac != nil {
					av = ac[k]
				}
				v += av * x.At(i, k)
			}
			if b != coeffZero {
				bv := bs
				if bc != nil {
					bv = bc[k]
				}
				v += bv * y.At(i, k)
			}
			r.Set(i, k, v)
		}
	}
}

func rampMat(layout view.Layout, rows, cols int, seed float64) view.Matrix[float64] {
	m := view.NewMatrix[float64](layout, rows, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			m.Set(i, k, seed+0.5*float64(i)-0.25*float64(k)+0.125*float64((i*cols+k)%5))
		}
	}
	return m
}

func matData(m view.Matrix[float64]) []float64 {
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for k := 0; k < m.Cols(); k++ {
			out = append(out, m.At(i, k))
		}
	}
	return out
}

func TestAxpbyMV_Grid(t *testing.T) {
	const rows = 7
	layouts := []view.Layout{view.ColMajor, view.RowMajor}
	colCounts := []int{1, 2, 3, 5, 8, 16, 17, 33}

	perCol := func(cols int, seed float64) Coefficient[float64] {
		c := make([]float64, cols)
		testutil.Ramp(c, seed)
		return PerColumn(c)
	}
	// All five coefficient shapes: the four scalar classes plus the
	// per-column form. The cross product covers every selectable body.
	coeffForms := []struct {
		name string
		make func(cols, seed int) Coefficient[float64]
	}{
		{"zero", func(int, int) Coefficient[float64] { return Scalar(0.0) }},
		{"neg-one", func(int, int) Coefficient[float64] { return Scalar(-1.0) }},
		{"one", func(int, int) Coefficient[float64] { return Scalar(1.0) }},
		{"general", func(_, seed int) Coefficient[float64] { return Scalar(2.5 * float64(seed)) }},
		{"percol", func(cols, seed int) Coefficient[float64] { return perCol(cols, float64(seed)) }},
	}

	for _, layout := range layouts {
		for _, cols := range colCounts {
			for _, af := range coeffForms {
				for _, bf := range coeffForms {
					name := fmt.Sprintf("%s/cols=%d/%s-%s", layout, cols, af.name, bf.name)
					t.Run(name, func(t *testing.T) {
						x := rampMat(layout, rows, cols, 1)
						y := rampMat(layout, rows, cols, -4)
						r := view.NewMatrix[float64](layout, rows, cols)
						want := view.NewMatrix[float64](layout, rows, cols)

						alpha, beta := af.make(cols, 1), bf.make(cols, -2)
						refAxpbyMV(want, x, y, alpha, beta)
						AxpbyMV(r, alpha, x, beta, y)

						testutil.RequireSliceNearlyEqual(t, matData(r), matData(want), eps)
					})
				}
			}
		}
	}
}

func TestAxpbyMV_LayoutsAgree(t *testing.T) {
	const rows = 7
	for _, cols := range []int{1, 3, 8, 16, 17} {
		cm := view.NewMatrix[float64](view.ColMajor, rows, cols)
		rm := view.NewMatrix[float64](view.RowMajor, rows, cols)
		xCM := rampMat(view.ColMajor, rows, cols, 1)
		xRM := rampMat(view.RowMajor, rows, cols, 1)
		yCM := rampMat(view.ColMajor, rows, cols, -4)
		yRM := rampMat(view.RowMajor, rows, cols, -4)

		ac := make([]float64, cols)
		testutil.Ramp(ac, 2)
		AxpbyMV(cm, PerColumn(ac), xCM, Scalar(-0.75), yCM)
		AxpbyMV(rm, PerColumn(ac), xRM, Scalar(-0.75), yRM)

		testutil.RequireSliceExactEqual(t, matData(cm), matData(rm))
	}
}

func TestAxpbyMV_PerColumnScalesEachColumn(t *testing.T) {
	const rows, cols = 5, 3
	x := rampMat(view.ColMajor, rows, cols, 1)
	y := view.NewMatrix[float64](view.ColMajor, rows, cols)
	r := view.NewMatrix[float64](view.ColMajor, rows, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			y.Set(i, k, math.NaN())
		}
	}

	AxpbyMV(r, PerColumn([]float64{1, 2, 3}), x, Scalar(0.0), y)

	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			want := float64(k+1) * x.At(i, k)
			if r.At(i, k) != want {
				t.Fatalf("(%d,%d): got %v, want %v", i, k, r.At(i, k), want)
			}
		}
	}
}

func TestAxpbyMV_EmptyPerColumnDropsOperand(t *testing.T) {
	const rows, cols = 4, 4
	x := rampMat(view.ColMajor, rows, cols, 2)
	y := view.NewMatrix[float64](view.ColMajor, rows, cols)
	r := view.NewMatrix[float64](view.ColMajor, rows, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			y.Set(i, k, math.Inf(-1))
		}
	}

	AxpbyMV(r, Scalar(2.0), x, PerColumn[float64](nil), y)

	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			if r.At(i, k) != 2*x.At(i, k) {
				t.Fatalf("(%d,%d): got %v, want %v", i, k, r.At(i, k), 2*x.At(i, k))
			}
		}
	}
}

func TestAxpbyMV_SingleColumnMatchesVector(t *testing.T) {
	const rows = 11
	x := rampMat(view.ColMajor, rows, 1, 1)
	y := rampMat(view.ColMajor, rows, 1, 5)
	r := view.NewMatrix[float64](view.ColMajor, rows, 1)

	AxpbyMV(r, Scalar(1.5), x, Scalar(-2.0), y)

	rv := view.NewVector[float64](rows)
	Axpby(rv, Scalar(1.5), x.Col(0), Scalar(-2.0), y.Col(0))

	testutil.RequireSliceExactEqual(t, matData(r), rv.Data())
}

func TestAxpbyMV_UnrolledMatchesGeneric(t *testing.T) {
	const rows = 9
	sp := exec.Sequential

	coeffs := []struct {
		name        string
		alpha, beta Coefficient[float64]
	}{
		{"scalars", Scalar(2.5), Scalar(-0.75)},
		{"identities", Scalar(-1.0), Scalar(1.0)},
		{"zero-beta", Scalar(3.0), Scalar(0.0)},
		{"percol", PerColumn([]float64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32}), Scalar(0.25)},
	}

	for cols := 2; cols <= maxUnroll; cols++ {
		for _, cf := range coeffs {
			t.Run(fmt.Sprintf("cols=%d/%s", cols, cf.name), func(t *testing.T) {
				x := rampMat(view.ColMajor, rows, cols, 1)
				y := rampMat(view.ColMajor, rows, cols, -2)
				rUnrolled := view.NewMatrix[float64](view.ColMajor, rows, cols)
				rGeneric := view.NewMatrix[float64](view.ColMajor, rows, cols)

				a, as, ac := cf.alpha.classify()
				b, bs, bc := cf.beta.classify()

				mvAxpbyUnrolled[float64, int32](sp, lowerMV3(rUnrolled, x, y), as, ac, bs, bc, a, b, cols)
				mvAxpbyGeneric[float64, int32](sp, lowerMV3(rGeneric, x, y), as, ac, bs, bc, a, b)

				testutil.RequireSliceExactEqual(t, matData(rUnrolled), matData(rGeneric))
			})
		}
	}
}

func TestAxpbyMV_IndexWidthsAgree(t *testing.T) {
	const rows, cols = 6, 5
	x := rampMat(view.RowMajor, rows, cols, 1)
	y := rampMat(view.RowMajor, rows, cols, 2)
	r32 := view.NewMatrix[float64](view.RowMajor, rows, cols)
	r64 := view.NewMatrix[float64](view.RowMajor, rows, cols)

	sp := exec.Sequential
	mvAxpbyGeneric[float64, int32](sp, lowerMV3(r32, x, y), 1.25, nil, -0.5, nil, coeffGeneral, coeffGeneral)
	mvAxpbyGeneric[float64, int64](sp, lowerMV3(r64, x, y), 1.25, nil, -0.5, nil, coeffGeneral, coeffGeneral)

	testutil.RequireSliceExactEqual(t, matData(r64), matData(r32))
}

func TestAxpbyMV_ResultAliasesInput(t *testing.T) {
	const rows, cols = 6, 4
	x := rampMat(view.ColMajor, rows, cols, 1)
	y := rampMat(view.ColMajor, rows, cols, -3)
	want := view.NewMatrix[float64](view.ColMajor, rows, cols)
	refAxpbyMV(want, x, y, Scalar(2.0), Scalar(0.5))

	AxpbyMV(x, Scalar(2.0), x, Scalar(0.5), y)
	testutil.RequireSliceNearlyEqual(t, matData(x), matData(want), eps)
}

func TestAxpbyMV_ShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic on shape mismatch")
		}
	}()
	r := view.NewMatrix[float64](view.ColMajor, 4, 2)
	x := view.NewMatrix[float64](view.ColMajor, 4, 3)
	y := view.NewMatrix[float64](view.ColMajor, 4, 2)
	AxpbyMV(r, Scalar(1.0), x, Scalar(1.0), y)
}

func TestAxpbyMV_ShortPerColumnPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic on short per-column coefficient")
		}
	}()
	m := view.NewMatrix[float64](view.ColMajor, 4, 3)
	AxpbyMV(m, PerColumn([]float64{1, 2}), m, Scalar(0.0), m)
}
