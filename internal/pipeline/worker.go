package pipeline

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
	"github.com/ironsheep/bmp-binarize/internal/threshold"
)

// WorkerOptions configures one worker-process invocation.
type WorkerOptions struct {
	// Input is the bitmap to decode into this worker's private grid.
	Input string

	// Start and End bound the half-open row range this worker thresholds.
	Start int
	End   int

	// Cutoff and Mode mirror the parent's configuration.
	Cutoff uint8
	Mode   threshold.Mode

	// Output, when non-empty, selects legacy behavior: the worker encodes
	// its entire grid to this path after thresholding its range. When
	// empty, the worker streams the processed rows to w instead.
	Output string
}

// Worker is the child-process body of the process strategy. It decodes a
// private copy of the input, thresholds rows [Start, End), and either
// re-encodes the whole grid to Output (legacy) or writes the processed rows
// to w as raw 3-byte pixels in row order (gather).
func Worker(w io.Writer, opts WorkerOptions) error {
	grid, err := bitmap.Decode(opts.Input)
	if err != nil {
		return err
	}
	if opts.Start < 0 || opts.End > grid.Height() || opts.Start > opts.End {
		return fmt.Errorf("row range [%d,%d) outside grid of height %d",
			opts.Start, opts.End, grid.Height())
	}

	for i := opts.Start; i < opts.End; i++ {
		threshold.ApplyRow(grid[i], opts.Cutoff, opts.Mode)
	}

	if opts.Output != "" {
		return bitmap.Encode(opts.Output, grid)
	}

	bw := bufio.NewWriter(w)
	for i := opts.Start; i < opts.End; i++ {
		if err := binary.Write(bw, binary.LittleEndian, grid[i]); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	return bw.Flush()
}
