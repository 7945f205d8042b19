package blas1

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-blas/blas/exec"
	"github.com/cwbudde/algo-blas/blas/view"
	"github.com/cwbudde/algo-blas/internal/testutil"
)

const eps = 1e-12

// refAxpby is the definitional result: a zero coefficient drops its term
// without reading the operand.
func refAxpby(r, x, y []float64, alpha, beta float64) {
	for i := range r {
		var v float64
		if alpha != 0 {
			v += alpha * x[i]
		}
		if beta != 0 {
			v += beta * y[i]
		}
		r[i] = v
	}
}

func rampVec(n int, seed float64) view.Vector[float64] {
	d := make([]float64, n)
	testutil.Ramp(d, seed)
	return view.VectorOf(d)
}

func TestAxpby_CoefficientGrid(t *testing.T) {
	const n = 37
	alphas := []float64{0, -1, 1, 2.5}
	betas := []float64{0, -1, 1, -0.75}

	for _, alpha := range alphas {
		for _, beta := range betas {
			x := rampVec(n, 1)
			y := rampVec(n, -3)
			r := view.NewVector[float64](n)

			Axpby(r, Scalar(alpha), x, Scalar(beta), y)

			want := make([]float64, n)
			refAxpby(want, x.Data(), y.Data(), alpha, beta)
			testutil.RequireSliceNearlyEqual(t, r.Data(), want, eps)
		}
	}
}

func TestAxpby_ZeroCoefficientSkipsOperand(t *testing.T) {
	const n = 16
	x := view.NewVector[float64](n)
	y := rampVec(n, 2)
	r := view.NewVector[float64](n)
	for i := 0; i < n; i++ {
		x.Set(i, math.NaN())
	}

	Axpby(r, Scalar(0.0), x, Scalar(2.0), y)
	for i := 0; i < n; i++ {
		if math.IsNaN(r.At(i)) {
			t.Fatalf("index %d: NaN leaked from a dropped operand", i)
		}
		if r.At(i) != 2*y.At(i) {
			t.Fatalf("index %d: got %v, want %v", i, r.At(i), 2*y.At(i))
		}
	}

	// Both coefficients zero: the result is written to zero even when both
	// operands are poisoned.
	for i := 0; i < n; i++ {
		y.Set(i, math.NaN())
		r.Set(i, math.NaN())
	}
	Axpby(r, Scalar(0.0), x, Scalar(0.0), y)
	for i := 0; i < n; i++ {
		if r.At(i) != 0 {
			t.Fatalf("index %d: got %v, want 0", i, r.At(i))
		}
	}
}

func TestAxpby_PerColumnUsesFirstEntry(t *testing.T) {
	const n = 9
	x := rampVec(n, 0.5)
	y := rampVec(n, 4)
	r := view.NewVector[float64](n)

	Axpby(r, PerColumn([]float64{4, 99}), x, PerColumn([]float64{-2}), y)

	want := make([]float64, n)
	refAxpby(want, x.Data(), y.Data(), 4, -2)
	testutil.RequireSliceNearlyEqual(t, r.Data(), want, eps)
}

func TestAxpby_EmptyPerColumnDropsOperand(t *testing.T) {
	const n = 8
	x := rampVec(n, 1)
	y := view.NewVector[float64](n)
	r := view.NewVector[float64](n)
	for i := 0; i < n; i++ {
		y.Set(i, math.Inf(1))
	}

	Axpby(r, Scalar(3.0), x, PerColumn[float64](nil), y)
	for i := 0; i < n; i++ {
		if r.At(i) != 3*x.At(i) {
			t.Fatalf("index %d: got %v, want %v", i, r.At(i), 3*x.At(i))
		}
	}
}

func TestAxpby_Strided(t *testing.T) {
	const n = 10
	backing := make([]float64, 2*n)
	for i := range backing {
		backing[i] = -1
	}
	r, err := view.WrapVector(backing, n, 2)
	if err != nil {
		t.Fatal(err)
	}
	x := rampVec(n, 1)
	y := rampVec(n, 2)

	Axpby(r, Scalar(2.0), x, Scalar(3.0), y)

	for i := 0; i < n; i++ {
		want := 2*x.At(i) + 3*y.At(i)
		if math.Abs(r.At(i)-want) > eps {
			t.Fatalf("index %d: got %v, want %v", i, r.At(i), want)
		}
	}
	// Gap elements are untouched.
	for i := 1; i < 2*n; i += 2 {
		if backing[i] != -1 {
			t.Fatalf("gap element %d overwritten: %v", i, backing[i])
		}
	}
}

func TestAxpby_ResultAliasesInput(t *testing.T) {
	const n = 21
	x := rampVec(n, 1)
	y := rampVec(n, -2)
	want := make([]float64, n)
	refAxpby(want, x.Data(), y.Data(), 2.5, -0.5)

	Axpby(x, Scalar(2.5), x, Scalar(-0.5), y)
	testutil.RequireSliceNearlyEqual(t, x.Data(), want, eps)
}

func TestAxpby_Float32(t *testing.T) {
	const n = 13
	xd := make([]float32, n)
	yd := make([]float32, n)
	for i := range xd {
		xd[i] = float32(i) * 0.5
		yd[i] = float32(n - i)
	}
	x := view.VectorOf(xd)
	y := view.VectorOf(yd)
	r := view.NewVector[float32](n)

	Axpby(r, Scalar[float32](2), x, Scalar[float32](-1), y)

	for i := 0; i < n; i++ {
		want := 2*xd[i] - yd[i]
		if r.At(i) != want {
			t.Fatalf("index %d: got %v, want %v", i, r.At(i), want)
		}
	}
}

func TestAxpby_SequentialMatchesParallel(t *testing.T) {
	const n = 20000
	x := rampVec(n, 1)
	y := rampVec(n, 7)
	rSeq := view.NewVector[float64](n)
	rPar := view.NewVector[float64](n)

	// Tag pair (one, general) runs the in-package loop nests on both
	// spaces rather than a registered contiguous kernel.
	Axpby(rSeq, Scalar(1.0), x, Scalar(0.5), y, WithSpace(exec.Sequential))
	Axpby(rPar, Scalar(1.0), x, Scalar(0.5), y, WithSpace(exec.Default()))

	testutil.RequireSliceExactEqual(t, rSeq.Data(), rPar.Data())
}

func TestAxpby_IndexWidthsAgree(t *testing.T) {
	const n = 33
	x := rampVec(n, 2)
	y := rampVec(n, -1)
	r32 := view.NewVector[float64](n)
	r64 := view.NewVector[float64](n)

	sp := exec.Sequential
	vAxpby[float64, int32](sp, lowerVec3(r32, x, y), 1.5, -2.5, coeffGeneral, coeffGeneral)
	vAxpby[float64, int64](sp, lowerVec3(r64, x, y), 1.5, -2.5, coeffGeneral, coeffGeneral)

	testutil.RequireSliceExactEqual(t, r64.Data(), r32.Data())
}

func TestAxpby_LengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic on length mismatch")
		}
	}()
	Axpby(view.NewVector[float64](4), Scalar(1.0), view.NewVector[float64](5), Scalar(1.0), view.NewVector[float64](4))
}

func TestFitsInt32(t *testing.T) {
	if !fitsInt32(1000, 1000) {
		t.Fatal("small problem should fit")
	}
	if fitsInt32(math.MaxInt32, 1) {
		t.Fatal("row count at MaxInt32 must not fit")
	}
	if fitsInt32(1<<16, 1<<16) {
		t.Fatal("product at 2^32 must not fit")
	}
}
