package pipeline

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
	"github.com/ironsheep/bmp-binarize/internal/executor"
	"github.com/ironsheep/bmp-binarize/internal/threshold"
)

// Options is the full configuration of one binarization run, built by the
// CLI layer and passed in explicitly.
type Options struct {
	// Input and Output are the bitmap paths.
	Input  string
	Output string

	// Cutoff is the fixed 8-bit threshold. Ignored when Auto is set.
	Cutoff uint8

	// Auto selects the cutoff with Otsu's method instead of Cutoff.
	Auto bool

	// Strategy is the concurrency strategy; Workers its worker count
	// (0 = available parallelism).
	Strategy executor.Strategy
	Workers  int

	// Mode selects the pixel level function.
	Mode threshold.Mode

	// LegacyRace restores the replicate-and-race form of the process
	// strategy: children write the shared output path independently and
	// the last writer wins. Only meaningful with StrategyProcesses.
	LegacyRace bool

	// Executable overrides the binary re-executed for worker processes.
	// Empty means the current executable.
	Executable string

	// Logger receives progress events. Nil disables logging.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// Run executes decode, threshold, encode with the configured strategy. It
// blocks until the output file is fully written (or, in legacy mode, until
// every child has exited).
func Run(ctx context.Context, opts Options) error {
	log := opts.logger()

	grid, err := bitmap.Decode(opts.Input)
	if err != nil {
		return err
	}

	cutoff := opts.Cutoff
	if opts.Auto {
		cutoff = threshold.Otsu(grid)
		log.Info("selected cutoff automatically", zap.Uint8("cutoff", cutoff))
	}
	log.Debug("decoded input",
		zap.String("input", opts.Input),
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.String("strategy", string(opts.Strategy)))

	if opts.Strategy == executor.StrategyProcesses {
		return runProcesses(ctx, grid, cutoff, opts)
	}

	err = executor.Apply(ctx, grid, opts.Strategy, executor.Options{
		Workers: opts.Workers,
		Cutoff:  cutoff,
		Mode:    opts.Mode,
	})
	if err != nil {
		return err
	}
	return bitmap.Encode(opts.Output, grid)
}

// runProcesses handles both forms of the process strategy.
func runProcesses(ctx context.Context, grid bitmap.Grid, cutoff uint8, opts Options) error {
	exe := opts.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			return fmt.Errorf("failed to locate own executable: %w", err)
		}
	}

	popts := executor.ProcessOptions{
		Executable: exe,
		Input:      opts.Input,
		Output:     opts.Output,
		Workers:    opts.Workers,
		Cutoff:     cutoff,
		Mode:       opts.Mode,
		Logger:     opts.Logger,
	}

	if opts.LegacyRace {
		// Children own the output file entirely; the parent only waits.
		return executor.RunProcessesLegacy(ctx, grid.Height(), popts)
	}

	if err := executor.RunProcesses(ctx, grid, popts); err != nil {
		return err
	}
	return bitmap.Encode(opts.Output, grid)
}
