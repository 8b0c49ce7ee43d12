package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/pixconv"
	"github.com/BeatGlow/pixconv/pixel"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Remap a raw pixel buffer from one format to another",
	RunE:  runConvert,
}

var (
	convertFrom = pixel.RGBA
	convertTo   = pixel.RGB
)

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input raw pixel file")
	convertCmd.Flags().StringP("output", "o", "", "Output raw pixel file")
	convertCmd.Flags().Var(&convertFrom, "from", "Input pixel format")
	convertCmd.Flags().Var(&convertTo, "to", "Output pixel format")
	convertCmd.Flags().Int("workers", 0, "Worker goroutines (0: one per CPU)")
	convertCmd.Flags().Bool("strict", false, "Reject input that is not a whole number of pixels")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	workers, _ := cmd.Flags().GetInt("workers")
	strict, _ := cmd.Flags().GetBool("strict")

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	output, err := convertBuffer(cmd.Context(), inputData, convertFrom, convertTo, workers, strict)
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	w := cmd.OutOrStdout()
	printer.Fprintf(w, "Converted %d pixels %s → %s\n", len(output)/convertTo.ChannelCount(), convertFrom, convertTo)
	printer.Fprintf(w, "Input:  %s (%d bytes)\n", inputPath, len(inputData))
	printer.Fprintf(w, "Output: %s (%d bytes)\n", outputPath, len(output))
	return nil
}

func convertBuffer(ctx context.Context, data []byte, from, to pixel.Format, workers int, strict bool) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log := pixconv.Logger()
	if rem := len(data) % max(from.ChannelCount(), 1); rem != 0 {
		if strict {
			return pixel.ConvertStrict(data, from, to)
		}
		log.Warn("ignoring trailing bytes", "bytes", rem, "format", from.String())
	}
	log.Debug("converting buffer", "from", from.String(), "to", to.String(), "bytes", len(data), "workers", workers)
	return pixel.ConvertParallel(ctx, data, from, to, workers)
}
