package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/bmp-binarize/internal/convert"
)

// convertCmd moves images into and out of the 24-bit bitmap pipeline format.
// Exactly one side of the conversion must be a .bmp path; the other side's
// format is taken from its extension.
var convertCmd = &cobra.Command{
	Use:   "convert <src> <dst>",
	Short: "Convert between 24-bit BMP and PNG/JPEG/GIF",
	Long: `convert translates a PNG, JPEG, or GIF into an uncompressed 24-bit
bitmap so it can be binarized, or exports a bitmap back to one of those
formats for viewing. The direction is inferred from which path ends in .bmp.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, dst := args[0], args[1]
		srcBMP := isBMP(src)
		dstBMP := isBMP(dst)

		switch {
		case dstBMP && !srcBMP:
			return convert.ToBMP(src, dst)
		case srcBMP && !dstBMP:
			return convert.FromBMP(src, dst)
		default:
			return fmt.Errorf("exactly one of %q and %q must be a .bmp path", src, dst)
		}
	},
}

func isBMP(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".bmp")
}
