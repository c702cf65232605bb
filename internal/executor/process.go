package executor

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
	"github.com/ironsheep/bmp-binarize/internal/partition"
	"github.com/ironsheep/bmp-binarize/internal/threshold"
)

// WorkerCommand is the hidden CLI command children are spawned with. The
// flags in workerArgs form the contract between parent and child.
const WorkerCommand = "worker"

// ProcessOptions configures the process-per-partition strategy.
type ProcessOptions struct {
	// Executable is the path of this binary, re-executed for each worker.
	Executable string

	// Input is the bitmap each child decodes into its private grid copy.
	Input string

	// Output is the shared destination path. Used only in legacy mode,
	// where every child encodes its entire grid to it.
	Output string

	// Workers, Cutoff, Mode mirror Options.
	Workers int
	Cutoff  uint8
	Mode    threshold.Mode

	// Logger receives per-child debug events. Nil disables logging.
	Logger *zap.Logger
}

func (o ProcessOptions) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return partition.DefaultWorkers()
}

func (o ProcessOptions) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// workerArgs builds the child argv for one partition. Legacy children write
// the whole output file themselves; gather children stream their rows back
// on stdout instead.
func (o ProcessOptions) workerArgs(r partition.Range, legacy bool) []string {
	args := []string{
		WorkerCommand,
		"--input", o.Input,
		"--start", strconv.Itoa(r.Start),
		"--end", strconv.Itoa(r.End),
		"--cutoff", strconv.Itoa(int(o.Cutoff)),
		"--mode", string(o.Mode),
	}
	if legacy {
		args = append(args, "--output", o.Output)
	}
	return args
}

// RunProcesses binarizes grid using one child process per partition and a
// single-writer gather: each child decodes its own copy of the input,
// thresholds only rows [start, end), and streams those rows back as raw
// 3-byte pixels on stdout. The parent patches the rows into grid, which the
// caller then encodes exactly once. Row ranges are disjoint, so concurrent
// patching never races.
//
// A child that cannot be started is reported as ErrSpawn; a child that exits
// non-zero fails the whole run. Both abort before any encode.
func RunProcesses(ctx context.Context, grid bitmap.Grid, opts ProcessOptions) error {
	log := opts.logger()
	g, ctx := errgroup.WithContext(ctx)

	for _, r := range partition.Split(grid.Height(), opts.workers()) {
		if r.Empty() {
			continue
		}
		g.Go(func() error {
			cmd := exec.CommandContext(ctx, opts.Executable, opts.workerArgs(r, false)...)
			cmd.Stderr = os.Stderr

			stdout, err := cmd.StdoutPipe()
			if err != nil {
				return fmt.Errorf("%w: %v", ErrSpawn, err)
			}
			if err := cmd.Start(); err != nil {
				return fmt.Errorf("%w: %v", ErrSpawn, err)
			}
			log.Debug("spawned worker process",
				zap.Int("pid", cmd.Process.Pid),
				zap.Int("start", r.Start),
				zap.Int("end", r.End))

			br := bufio.NewReader(stdout)
			for i := r.Start; i < r.End; i++ {
				if err := binary.Read(br, binary.LittleEndian, grid[i]); err != nil {
					return fmt.Errorf("failed to read row %d from worker: %w", i, err)
				}
			}
			if err := cmd.Wait(); err != nil {
				return fmt.Errorf("worker for rows [%d,%d) failed: %w", r.Start, r.End, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// RunProcessesLegacy reproduces the replicate-and-race behavior: every child
// decodes a private copy of the input, thresholds only its own partition,
// and then independently encodes its entire grid to the shared output path.
// The parent performs no file I/O and only waits for all children, so the
// final file content is whichever child's write landed last. Untouched rows
// outside the winning child's partition are written unthresholded; the
// result is nondeterministic whenever more than one partition is non-empty.
func RunProcessesLegacy(ctx context.Context, height int, opts ProcessOptions) error {
	log := opts.logger()
	g, ctx := errgroup.WithContext(ctx)

	for _, r := range partition.Split(height, opts.workers()) {
		if r.Empty() {
			continue
		}
		g.Go(func() error {
			cmd := exec.CommandContext(ctx, opts.Executable, opts.workerArgs(r, true)...)
			cmd.Stderr = os.Stderr
			if err := cmd.Start(); err != nil {
				return fmt.Errorf("%w: %v", ErrSpawn, err)
			}
			log.Debug("spawned legacy worker process",
				zap.Int("pid", cmd.Process.Pid),
				zap.Int("start", r.Start),
				zap.Int("end", r.End))
			if err := cmd.Wait(); err != nil {
				return fmt.Errorf("worker for rows [%d,%d) failed: %w", r.Start, r.End, err)
			}
			return nil
		})
	}
	return g.Wait()
}
