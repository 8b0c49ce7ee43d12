package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/pixconv"
	"github.com/BeatGlow/pixconv/draw"
	"github.com/BeatGlow/pixconv/pixel"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode an image file to raw pixels (raw output + JSON sidecar)",
	RunE:  runDecode,
}

var decodeTo = pixel.RGBA

func init() {
	decodeCmd.Flags().StringP("input", "i", "", "Input image file")
	decodeCmd.Flags().StringP("output", "o", "", "Output raw pixel file")
	decodeCmd.Flags().Var(&decodeTo, "to", "Output pixel format")
	decodeCmd.Flags().Int("width", 0, "Resize to this width (0: keep aspect ratio)")
	decodeCmd.Flags().Int("height", 0, "Resize to this height (0: keep aspect ratio)")
	decodeCmd.Flags().String("filter", "approx", "Resize filter (nearest, approx, bilinear, catmullrom)")
	decodeCmd.Flags().Int("workers", 0, "Worker goroutines (0: one per CPU)")
	decodeCmd.MarkFlagRequired("input")
	decodeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(decodeCmd)
}

// rawMeta is the JSON sidecar describing a raw pixel file.
type rawMeta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Codec  string `json:"codec,omitempty"`
}

func metaPath(rawPath string) string {
	return rawPath + ".json"
}

func readMeta(rawPath string) (*rawMeta, error) {
	data, err := os.ReadFile(metaPath(rawPath))
	if err != nil {
		return nil, err
	}
	meta := new(rawMeta)
	if err = json.Unmarshal(data, meta); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", metaPath(rawPath), err)
	}
	return meta, nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	filter, _ := cmd.Flags().GetString("filter")
	workers, _ := cmd.Flags().GetInt("workers")

	interpolator, ok := draw.InterpolatorByName(filter)
	if !ok {
		return fmt.Errorf("unknown resize filter %q", filter)
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pixconv.Run(cmd.Context(), inputData, pixconv.Options{
		Format:       decodeTo,
		Workers:      workers,
		Width:        width,
		Height:       height,
		Interpolator: interpolator,
	})
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Pix, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	meta, err := json.MarshalIndent(rawMeta{
		Width:  result.Width,
		Height: result.Height,
		Format: result.Format.String(),
		Codec:  result.Codec,
	}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(metaPath(outputPath), meta, 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	w := cmd.OutOrStdout()
	printer.Fprintf(w, "Decoded %dx%d %s (%s) → %s\n", result.Width, result.Height, result.Codec, result.Source, result.Format)
	printer.Fprintf(w, "Input:  %s (%d bytes)\n", inputPath, len(inputData))
	printer.Fprintf(w, "Output: %s (%d bytes)\n", outputPath, len(result.Pix))
	printer.Fprintf(w, "Meta:   %s\n", metaPath(outputPath))
	return nil
}
