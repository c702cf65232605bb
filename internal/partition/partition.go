// Package partition splits the row dimension of a pixel grid into contiguous
// ranges, one per worker.
//
// Ranges are half-open, non-overlapping, and cover exactly [0, height). Each
// worker receives one range and owns every row in it exclusively, which is
// what lets the executor mutate a shared grid without locking.
package partition

import "runtime"

// Range is a half-open row interval [Start, End) assigned to one worker.
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range contains no rows. Empty ranges occur when
// there are more workers than rows and must be treated as no-ops.
func (r Range) Empty() bool {
	return r.Start >= r.End
}

// Split divides [0, height) into workers contiguous ranges of
// height/workers rows each, with the final range absorbing the remainder so
// its End is always height. workers is clamped to at least 1.
func Split(height, workers int) []Range {
	if workers < 1 {
		workers = 1
	}
	blockSize := height / workers

	ranges := make([]Range, workers)
	for i := 0; i < workers; i++ {
		ranges[i] = Range{Start: i * blockSize, End: (i + 1) * blockSize}
	}
	ranges[workers-1].End = height
	return ranges
}

// DefaultWorkers returns the worker count used when none is configured: the
// available parallelism of the environment, never less than 1.
func DefaultWorkers() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}
