package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
)

// infoCmd reports a bitmap's header metadata without reading pixel data,
// so it works on files far too large to decode.
var infoCmd = &cobra.Command{
	Use:   "info <image.bmp>",
	Short: "Print a bitmap's dimensions and header metadata as JSON",
	Long: `info reads only the 54-byte header of a bitmap file and prints its
dimensions, color depth, pixel data offset, and declared file size as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := bitmap.DecodeInfo(args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal image info: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
