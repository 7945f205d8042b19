package blas1

import (
	"fmt"
	"os"
	"sync"

	"github.com/cwbudde/algo-blas/blas/blas1/internal/arch/registry"
	"github.com/cwbudde/algo-blas/blas/view"
	"github.com/cwbudde/algo-blas/internal/cpu"
)

// checkKernelsEnv, when set to a non-empty value, makes the package print
// to stderr which kernel each operation bound to at first use.
const checkKernelsEnv = "ALGOBLAS_CHECK_KERNELS"

var (
	bindOnce   sync.Once
	boundAxpby registry.AxpbyFn
	boundRot   registry.RotFn
)

func bindKernels() {
	features := cpu.DetectFeatures()
	check := os.Getenv(checkKernelsEnv) != ""

	if e := registry.Global.Lookup(features, func(e *registry.OpEntry) bool { return e.Axpby != nil }); e != nil {
		boundAxpby = e.Axpby
		if check {
			fmt.Fprintf(os.Stderr, "algo-blas: axpby bound to %q (%s, priority %d)\n", e.Name, e.SIMDLevel, e.Priority)
		}
	} else if check {
		fmt.Fprintln(os.Stderr, "algo-blas: axpby has no registered kernel, using generic loops")
	}

	if e := registry.Global.Lookup(features, func(e *registry.OpEntry) bool { return e.Rot != nil }); e != nil {
		boundRot = e.Rot
		if check {
			fmt.Fprintf(os.Stderr, "algo-blas: rot bound to %q (%s, priority %d)\n", e.Name, e.SIMDLevel, e.Priority)
		}
	} else if check {
		fmt.Fprintln(os.Stderr, "algo-blas: rot has no registered kernel, using generic loops")
	}
}

func axpbyKernel() registry.AxpbyFn {
	bindOnce.Do(bindKernels)
	return boundAxpby
}

func rotKernel() registry.RotFn {
	bindOnce.Do(bindKernels)
	return boundRot
}

// rebindKernels redoes the binding against the current registry contents
// and CPU feature state. Test use only.
func rebindKernels() {
	bindOnce = sync.Once{}
	boundAxpby = nil
	boundRot = nil
}

// tryAxpbyKernel routes a fully general scalar-coefficient call to the
// bound contiguous float64 kernel. Returns false when no kernel is bound
// or the operands do not qualify, in which case the caller falls back to
// the generic loop nest. Only the general tag pair may come here: the
// bound kernel reads both operands unconditionally, which would break zero
// tag semantics.
func tryAxpbyKernel[T view.Floats](r view.Vector[T], alpha T, x view.Vector[T], beta T, y view.Vector[T]) bool {
	fn := axpbyKernel()
	if fn == nil {
		return false
	}
	if !r.Contiguous() || !x.Contiguous() || !y.Contiguous() {
		return false
	}
	rd, ok := any(r.Data()).([]float64)
	if !ok {
		return false
	}
	xd, _ := any(x.Data()).([]float64)
	yd, _ := any(y.Data()).([]float64)
	n := r.Len()
	if x.Len() != n || y.Len() != n {
		panic("blas1: vector length mismatch")
	}
	af, _ := any(alpha).(float64)
	bf, _ := any(beta).(float64)
	fn(rd[:n], xd[:n], yd[:n], af, bf)
	return true
}

// tryRotKernel routes a plane rotation to the bound contiguous float64
// kernel, if any.
func tryRotKernel[T view.Floats](x, y view.Vector[T], c, s T) bool {
	fn := rotKernel()
	if fn == nil {
		return false
	}
	if !x.Contiguous() || !y.Contiguous() {
		return false
	}
	xd, ok := any(x.Data()).([]float64)
	if !ok {
		return false
	}
	yd, _ := any(y.Data()).([]float64)
	n := x.Len()
	if y.Len() != n {
		panic("blas1: vector length mismatch")
	}
	cf, _ := any(c).(float64)
	sf, _ := any(s).(float64)
	fn(xd[:n], yd[:n], cf, sf)
	return true
}
