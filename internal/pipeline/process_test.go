package pipeline

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
	"github.com/ironsheep/bmp-binarize/internal/executor"
	"github.com/ironsheep/bmp-binarize/internal/threshold"
)

// TestMain lets this test binary stand in for the real executable when the
// process strategy re-execs it: invoked with the worker command, it runs the
// worker body and exits instead of running the tests.
func TestMain(m *testing.M) {
	if len(os.Args) > 1 && os.Args[1] == executor.WorkerCommand {
		os.Exit(workerMain(os.Args[2:]))
	}
	os.Exit(m.Run())
}

// workerMain parses the worker flag contract (see executor.ProcessOptions)
// and runs the child body exactly as the CLI's hidden worker command does.
func workerMain(args []string) int {
	fs := flag.NewFlagSet(executor.WorkerCommand, flag.ContinueOnError)
	input := fs.String("input", "", "")
	output := fs.String("output", "", "")
	start := fs.Int("start", 0, "")
	end := fs.Int("end", 0, "")
	cutoff := fs.Int("cutoff", 0, "")
	mode := fs.String("mode", string(threshold.ModeMean), "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	err := Worker(os.Stdout, WorkerOptions{
		Input:  *input,
		Output: *output,
		Start:  *start,
		End:    *end,
		Cutoff: uint8(*cutoff),
		Mode:   threshold.Mode(*mode),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func TestProcessStrategyMatchesThreads(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.bmp")
	if err := bitmap.Encode(input, checkerGrid(13, 9)); err != nil {
		t.Fatal(err)
	}

	threadsOut := filepath.Join(dir, "threads.bmp")
	err := Run(context.Background(), Options{
		Input:    input,
		Output:   threadsOut,
		Cutoff:   128,
		Strategy: executor.StrategyThreads,
		Mode:     threshold.ModeMean,
	})
	if err != nil {
		t.Fatalf("threads Run failed: %v", err)
	}

	processesOut := filepath.Join(dir, "processes.bmp")
	err = Run(context.Background(), Options{
		Input:      input,
		Output:     processesOut,
		Cutoff:     128,
		Strategy:   executor.StrategyProcesses,
		Workers:    4,
		Mode:       threshold.ModeMean,
		Executable: os.Args[0],
	})
	if err != nil {
		t.Fatalf("processes Run failed: %v", err)
	}

	want, err := os.ReadFile(threadsOut)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(processesOut)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("process strategy output differs from threads strategy output")
	}
}

func TestProcessStrategyLegacySingleWorker(t *testing.T) {
	// With one worker the legacy race has a single writer, so its output
	// is deterministic and must match the other strategies.
	dir := t.TempDir()
	input := filepath.Join(dir, "input.bmp")
	if err := bitmap.Encode(input, checkerGrid(6, 5)); err != nil {
		t.Fatal(err)
	}

	threadsOut := filepath.Join(dir, "threads.bmp")
	err := Run(context.Background(), Options{
		Input:    input,
		Output:   threadsOut,
		Cutoff:   128,
		Strategy: executor.StrategyThreads,
		Mode:     threshold.ModeMean,
	})
	if err != nil {
		t.Fatalf("threads Run failed: %v", err)
	}

	legacyOut := filepath.Join(dir, "legacy.bmp")
	err = Run(context.Background(), Options{
		Input:      input,
		Output:     legacyOut,
		Cutoff:     128,
		Strategy:   executor.StrategyProcesses,
		Workers:    1,
		Mode:       threshold.ModeMean,
		LegacyRace: true,
		Executable: os.Args[0],
	})
	if err != nil {
		t.Fatalf("legacy Run failed: %v", err)
	}

	want, err := os.ReadFile(threadsOut)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(legacyOut)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("single-worker legacy output differs from threads strategy output")
	}
}

func TestProcessStrategyFailedChildPropagates(t *testing.T) {
	// Workers re-decode the input themselves; pointing them at a path that
	// does not exist makes every child exit non-zero, and the parent must
	// surface that instead of patching the grid.
	grid := checkerGrid(4, 4)
	original := grid.Clone()

	err := executor.RunProcesses(context.Background(), grid, executor.ProcessOptions{
		Executable: os.Args[0],
		Input:      filepath.Join(t.TempDir(), "missing.bmp"),
		Workers:    2,
		Cutoff:     128,
		Mode:       threshold.ModeMean,
	})
	if err == nil {
		t.Fatal("RunProcesses succeeded with a missing worker input")
	}
	for i := range grid {
		for j := range grid[i] {
			if grid[i][j] != original[i][j] {
				t.Fatalf("grid row %d column %d patched despite worker failure", i, j)
			}
		}
	}
}
