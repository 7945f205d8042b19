// Package pool provides reusable float64 scratch slices for kernel
// temporaries, so fast paths that need a staging buffer stay allocation-free
// in steady state.
package pool

import "sync"

var scratch = sync.Pool{
	New: func() any {
		s := make([]float64, 0, 1024)
		return &s
	},
}

// Get returns a scratch slice of length n. Contents are unspecified; callers
// that read before writing must clear it themselves. Return it via Put.
func Get(n int) []float64 {
	p := scratch.Get().(*[]float64)
	if cap(*p) < n {
		*p = make([]float64, n)
	}
	return (*p)[:n]
}

// Put returns a scratch slice obtained from Get. The caller must not use the
// slice afterwards.
func Put(s []float64) {
	if s == nil {
		return
	}
	s = s[:0]
	scratch.Put(&s)
}
