//go:build arm64 && !purego

package blas1

import (
	_ "github.com/cwbudde/algo-blas/blas/blas1/internal/arch/arm64/neon"
)
