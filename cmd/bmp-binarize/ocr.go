package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/bmp-binarize/internal/executor"
	"github.com/ironsheep/bmp-binarize/internal/ocr"
	"github.com/ironsheep/bmp-binarize/internal/pipeline"
	"github.com/ironsheep/bmp-binarize/internal/threshold"
)

var ocrOpts struct {
	cutoff   string
	language string
}

// ocrCmd grades how legible a bitmap is to Tesseract. With --cutoff the
// input is binarized to a temporary file first, which makes the command a
// quick way to evaluate a threshold choice for document scans.
var ocrCmd = &cobra.Command{
	Use:   "ocr <input.bmp>",
	Short: "Run OCR over a (binarized) bitmap and report recognition quality",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if ocrOpts.cutoff != "" {
			binarized, cleanup, err := binarizeToTemp(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer cleanup()
			path = binarized
		}

		result, err := ocr.Grade(path, ocrOpts.language)
		if err != nil {
			return err
		}

		fmt.Printf("words: %d\n", result.WordCount)
		fmt.Printf("mean confidence: %.2f\n", result.MeanConfidence)
		fmt.Println(result.Text)
		return nil
	},
}

// binarizeToTemp thresholds the input into a temp bitmap using the threads
// strategy and returns its path plus a cleanup func.
func binarizeToTemp(ctx context.Context, input string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "bmp-binarize-")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }
	out := filepath.Join(dir, "binarized.bmp")

	opts := pipeline.Options{
		Input:    input,
		Output:   out,
		Strategy: executor.StrategyThreads,
		Mode:     threshold.ModeMean,
		Logger:   logger,
	}
	if ocrOpts.cutoff == "auto" {
		opts.Auto = true
	} else {
		n, err := strconv.Atoi(ocrOpts.cutoff)
		if err != nil {
			cleanup()
			return "", nil, fmt.Errorf("cutoff must be an integer or \"auto\": %q", ocrOpts.cutoff)
		}
		opts.Cutoff = uint8(n)
	}

	if err := pipeline.Run(ctx, opts); err != nil {
		cleanup()
		return "", nil, err
	}
	return out, cleanup, nil
}

func init() {
	ocrCmd.Flags().StringVar(&ocrOpts.cutoff, "cutoff", "", "binarize with this threshold (or \"auto\") before running OCR")
	ocrCmd.Flags().StringVar(&ocrOpts.language, "lang", "eng", "Tesseract language code")
}
