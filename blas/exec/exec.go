// Package exec provides execution spaces for data-parallel kernel launches.
//
// A Space runs one launch over an index range whose indices are fully
// independent: the body may be invoked for sub-ranges in any order and from
// any goroutine, but every index in [0, n) is covered exactly once and the
// launch completes before ForRange returns. Kernels impose no ordering of
// their own on top of that.
package exec

import (
	"runtime"
	"sync"
)

// Space schedules one data-parallel launch.
type Space interface {
	// Name identifies the space in diagnostics.
	Name() string

	// ForRange invokes body over disjoint sub-ranges covering [0, n).
	// body(lo, hi) processes indices lo <= i < hi and must not retain
	// references past its return. ForRange blocks until all indices are
	// processed.
	ForRange(n int, body func(lo, hi int))
}

// Sequential runs the whole range in the calling goroutine.
var Sequential Space = seqSpace{}

// Parallel distributes strips of the range over a GOMAXPROCS worker pool.
// Small ranges degrade to sequential execution.
var Parallel Space = parSpace{}

// Default is the space used by kernels when the caller does not pick one.
func Default() Space { return Parallel }

type seqSpace struct{}

func (seqSpace) Name() string { return "sequential" }

func (seqSpace) ForRange(n int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	body(0, n)
}

// Parallel tuning parameters.
const (
	// minParallelRows is the smallest range worth fanning out; below this
	// the goroutine handoff costs more than the work.
	minParallelRows = 4096

	// rowsPerStrip is the strip size handed to each worker. Large enough
	// to amortize channel traffic, small enough to balance load.
	rowsPerStrip = 1024
)

type parSpace struct{}

func (parSpace) Name() string { return "parallel" }

func (parSpace) ForRange(n int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if n < minParallelRows {
		body(0, n)
		return
	}

	numStrips := (n + rowsPerStrip - 1) / rowsPerStrip
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > numStrips {
		numWorkers = numStrips
	}

	work := make(chan int, numStrips)
	for strip := 0; strip < numStrips; strip++ {
		work <- strip
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for strip := range work {
				lo := strip * rowsPerStrip
				hi := lo + rowsPerStrip
				if hi > n {
					hi = n
				}
				body(lo, hi)
			}
		}()
	}
	wg.Wait()
}
