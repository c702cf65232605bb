package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
	"github.com/ironsheep/bmp-binarize/internal/partition"
	"github.com/ironsheep/bmp-binarize/internal/threshold"
)

// ErrSpawn indicates a worker process could not be started. It is fatal and
// reported before any encode is attempted.
var ErrSpawn = errors.New("executor: failed to spawn worker")

// Strategy names a concurrency strategy.
type Strategy string

const (
	// StrategyLoop is the data-parallel loop over the collapsed index space.
	StrategyLoop Strategy = "loop"

	// StrategyThreads is one goroutine per row partition on a shared grid.
	StrategyThreads Strategy = "threads"

	// StrategyProcesses is one child process per row partition.
	StrategyProcesses Strategy = "processes"
)

// ParseStrategy validates a strategy name from the command line.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyLoop, StrategyThreads, StrategyProcesses:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want loop, threads, or processes)", s)
	}
}

// Options configures the in-memory strategies.
type Options struct {
	// Workers is the worker count; 0 or less selects the available
	// parallelism of the environment.
	Workers int

	// Cutoff is the 8-bit binarization threshold.
	Cutoff uint8

	// Mode selects the pixel level function.
	Mode threshold.Mode
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return partition.DefaultWorkers()
}

// Apply binarizes grid in place using the given in-memory strategy. It
// blocks until every pixel has been processed. StrategyProcesses is not an
// in-memory strategy; use RunProcesses or RunProcessesLegacy for it.
func Apply(ctx context.Context, grid bitmap.Grid, strategy Strategy, opts Options) error {
	switch strategy {
	case StrategyLoop:
		applyLoop(grid, opts)
		return nil
	case StrategyThreads:
		return applyThreads(ctx, grid, opts)
	default:
		return fmt.Errorf("strategy %q cannot run in-memory", strategy)
	}
}
