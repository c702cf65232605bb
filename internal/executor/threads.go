package executor

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
	"github.com/ironsheep/bmp-binarize/internal/partition"
	"github.com/ironsheep/bmp-binarize/internal/threshold"
)

// applyThreads binarizes the grid with one goroutine per row partition.
// Every goroutine receives a sub-slice of the shared grid covering only its
// own partition, so overlapping writes are impossible by construction and no
// locking is needed. Wait provides the full join barrier: no caller proceeds
// to encoding until every partition is done.
func applyThreads(ctx context.Context, grid bitmap.Grid, opts Options) error {
	g, _ := errgroup.WithContext(ctx)

	for _, r := range partition.Split(grid.Height(), opts.workers()) {
		if r.Empty() {
			continue
		}
		band := grid[r.Start:r.End]
		g.Go(func() error {
			for i := range band {
				threshold.ApplyRow(band[i], opts.Cutoff, opts.Mode)
			}
			return nil
		})
	}
	return g.Wait()
}
