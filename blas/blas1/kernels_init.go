package blas1

// Portable kernel sets, linked on every platform.
import (
	_ "github.com/cwbudde/algo-blas/blas/blas1/internal/arch/generic"
	_ "github.com/cwbudde/algo-blas/blas/blas1/internal/arch/vecmath"
)
