package blas1

import (
	"github.com/cwbudde/algo-blas/blas/blas1/internal/arch/registry"
	"github.com/cwbudde/algo-blas/internal/cpu"
)

// KernelInfo describes one registered kernel implementation.
type KernelInfo struct {
	Name      string
	SIMDLevel string
	Priority  int
	Ops       []string
}

// Kernels returns every registered kernel implementation in lookup order,
// whether or not the current CPU can use it.
func Kernels() []KernelInfo {
	entries := registry.Global.ListEntries()
	out := make([]KernelInfo, 0, len(entries))
	for _, e := range entries {
		var ops []string
		if e.Axpby != nil {
			ops = append(ops, "axpby")
		}
		if e.Rot != nil {
			ops = append(ops, "rot")
		}
		out = append(out, KernelInfo{
			Name:      e.Name,
			SIMDLevel: e.SIMDLevel.String(),
			Priority:  e.Priority,
			Ops:       ops,
		})
	}
	return out
}

// BoundKernels reports which implementation each operation resolves to on
// the current CPU. An empty name means the operation runs the in-package
// generic loop nests.
func BoundKernels() map[string]string {
	features := cpu.DetectFeatures()
	out := make(map[string]string, 2)
	out["axpby"] = ""
	out["rot"] = ""
	if e := registry.Global.Lookup(features, func(e *registry.OpEntry) bool { return e.Axpby != nil }); e != nil {
		out["axpby"] = e.Name
	}
	if e := registry.Global.Lookup(features, func(e *registry.OpEntry) bool { return e.Rot != nil }); e != nil {
		out["rot"] = e.Name
	}
	return out
}
