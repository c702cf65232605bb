package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/bmp-binarize/internal/pipeline"
	"github.com/ironsheep/bmp-binarize/internal/threshold"
)

var workerOpts struct {
	input  string
	output string
	start  int
	end    int
	cutoff int
	mode   string
}

// workerCmd is the hidden entry point executed inside spawned worker
// processes. Its flags form the contract with executor.RunProcesses; it is
// not part of the user-facing interface.
var workerCmd = &cobra.Command{
	Use:    "worker",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.Worker(os.Stdout, pipeline.WorkerOptions{
			Input:  workerOpts.input,
			Output: workerOpts.output,
			Start:  workerOpts.start,
			End:    workerOpts.end,
			Cutoff: uint8(workerOpts.cutoff),
			Mode:   threshold.Mode(workerOpts.mode),
		})
	},
}

func init() {
	workerCmd.Flags().StringVar(&workerOpts.input, "input", "", "bitmap to decode")
	workerCmd.Flags().StringVar(&workerOpts.output, "output", "", "write the whole grid here instead of streaming rows")
	workerCmd.Flags().IntVar(&workerOpts.start, "start", 0, "first row of the assigned range")
	workerCmd.Flags().IntVar(&workerOpts.end, "end", 0, "one past the last row of the assigned range")
	workerCmd.Flags().IntVar(&workerOpts.cutoff, "cutoff", 0, "binarization threshold")
	workerCmd.Flags().StringVar(&workerOpts.mode, "mode", "mean", "pixel level function")
	_ = workerCmd.MarkFlagRequired("input")
}
