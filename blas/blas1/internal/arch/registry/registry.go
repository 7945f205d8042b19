// Package registry keeps the table of architecture-tuned level-1 kernels.
//
// Implementations self-register from init functions in the arch packages;
// build tags on those packages decide what gets linked in. At first use
// the calling package binds the highest-priority entry whose SIMD level
// the detected CPU supports and that implements the wanted operation.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-blas/internal/cpu"
)

// AxpbyFn computes r = alpha*x + beta*y over contiguous slices of equal
// length. r may alias x or y.
type AxpbyFn func(r, x, y []float64, alpha, beta float64)

// RotFn applies the plane rotation x, y = c*x + s*y, c*y - s*x in place
// over contiguous slices of equal length.
type RotFn func(x, y []float64, c, s float64)

// OpEntry is one registered kernel implementation. Operations an entry
// does not provide stay nil and are skipped during lookup.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Axpby     AxpbyFn
	Rot       RotFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default level-1 kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features
// for which want reports true, or nil if none qualifies.
func (r *OpRegistry) Lookup(features cpu.Features, want func(*OpEntry) bool) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) && want(entry) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
