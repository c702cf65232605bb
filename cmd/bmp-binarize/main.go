// Command bmp-binarize converts 24-bit bitmap images to pure black and white
// using a luminance threshold, processing the pixel grid in parallel with a
// configurable concurrency strategy.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/bmp-binarize/internal/executor"
	"github.com/ironsheep/bmp-binarize/internal/pipeline"
	"github.com/ironsheep/bmp-binarize/internal/threshold"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	// Global flags
	verbose      bool
	strategyName string
	workers      int
	modeName     string
	legacyRace   bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bmp-binarize <input.bmp> <output.bmp> <threshold>",
	Short: "Threshold a 24-bit bitmap to black and white in parallel",
	Long: `bmp-binarize reads an uncompressed 24-bit bitmap, turns every pixel pure
black or pure white based on a luminance threshold, and writes the result
back out as a bitmap.

The threshold is an integer narrowed to 0-255, or the literal "auto" to pick
a cutoff with Otsu's method. Pixels whose level is below the threshold become
black; everything else becomes white.

The pixel grid is partitioned across parallel workers. Three strategies are
available: a data-parallel loop over all pixels, shared-memory worker
goroutines with one row band each, and isolated worker processes.`,
	Args:    cobra.ExactArgs(3),
	Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are validated by now; runtime failures should not
		// re-print usage.
		cmd.SilenceUsage = true

		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		config.OutputPaths = []string{"stderr"}

		var err error
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(args)
		if err != nil {
			return err
		}
		return pipeline.Run(cmd.Context(), opts)
	},
}

// buildOptions turns positional arguments and flags into the explicit
// pipeline configuration. All option parsing happens here, once, at startup.
func buildOptions(args []string) (pipeline.Options, error) {
	opts := pipeline.Options{
		Input:      args[0],
		Output:     args[1],
		Workers:    workers,
		LegacyRace: legacyRace,
		Logger:     logger,
	}

	var err error
	if opts.Strategy, err = executor.ParseStrategy(strategyName); err != nil {
		return pipeline.Options{}, err
	}
	if opts.Mode, err = threshold.ParseMode(modeName); err != nil {
		return pipeline.Options{}, err
	}

	if args[2] == "auto" {
		opts.Auto = true
		return opts, nil
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("threshold must be an integer or \"auto\": %q", args[2])
	}
	// Out-of-range values wrap to 8 bits rather than being rejected.
	opts.Cutoff = uint8(n)
	return opts, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&strategyName, "strategy", string(executor.StrategyThreads),
		"concurrency strategy: loop, threads, or processes")
	rootCmd.Flags().IntVar(&workers, "workers", 0,
		"worker count (0 = available parallelism)")
	rootCmd.Flags().StringVar(&modeName, "mode", string(threshold.ModeMean),
		"pixel level function: mean or luma")
	rootCmd.Flags().BoolVar(&legacyRace, "legacy-race", false,
		"with --strategy processes, let every child write the whole output file (last writer wins)")

	rootCmd.AddCommand(workerCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(ocrCmd)
}

// run executes the CLI and flushes the logger before the exit code is
// surfaced, since os.Exit would skip deferred syncs.
func run() int {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
