package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/pixconv"
	"github.com/BeatGlow/pixconv/imageio"
	"github.com/BeatGlow/pixconv/pixel"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode raw pixels to an image file",
	Long: `Encode raw pixels to an image file. The codec is picked from the output extension.
Dimensions and format default to the JSON sidecar written by decode, if present.`,
	RunE: runEncode,
}

var encodeFormat pixel.Format

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input raw pixel file")
	encodeCmd.Flags().StringP("output", "o", "", "Output image file (.png, .jpg, .gif, .bmp, .tiff)")
	encodeCmd.Flags().Var(&encodeFormat, "format", "Input pixel format")
	encodeCmd.Flags().Int("width", 0, "Image width in pixels")
	encodeCmd.Flags().Int("height", 0, "Image height in pixels")
	encodeCmd.Flags().Int("quality", 90, "JPEG quality (1-100)")
	encodeCmd.Flags().Int("colors", 256, "GIF palette size (1-256)")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	quality, _ := cmd.Flags().GetInt("quality")
	colors, _ := cmd.Flags().GetInt("colors")

	format := encodeFormat
	if meta, err := readMeta(inputPath); err == nil {
		if width == 0 {
			width = meta.Width
		}
		if height == 0 {
			height = meta.Height
		}
		if !cmd.Flags().Changed("format") {
			if format, err = pixel.ParseFormat(meta.Format); err != nil {
				return err
			}
		}
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d (pass --width and --height)", pixconv.ErrBounds, width, height)
	}

	codec, err := imageio.CodecForPath(outputPath)
	if err != nil {
		return err
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var buf bytes.Buffer
	if err = pixconv.Render(&buf, inputData, width, height, format, codec,
		imageio.WithQuality(quality),
		imageio.WithColors(colors),
	); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	printer.Fprintf(cmd.OutOrStdout(), "Encoded %dx%d %s → %s (%d bytes)\n", width, height, format, outputPath, buf.Len())
	return nil
}
