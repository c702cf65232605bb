package executor

import (
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
	"github.com/ironsheep/bmp-binarize/internal/threshold"
)

// applyLoop binarizes the grid by parallel-for over the collapsed
// height*width index space. Every cell is one logical iteration touched by
// exactly one pool worker, so no synchronization is needed between cells;
// ParallelFor blocks until the whole index space is processed.
func applyLoop(grid bitmap.Grid, opts Options) {
	height := grid.Height()
	width := grid.Width()
	if height == 0 || width == 0 {
		return
	}

	pool := workerpool.New(opts.workers())
	defer pool.Close()

	pool.ParallelFor(height*width, func(start, end int) {
		for idx := start; idx < end; idx++ {
			threshold.ApplyMode(&grid[idx/width][idx%width], opts.Cutoff, opts.Mode)
		}
	})
}
