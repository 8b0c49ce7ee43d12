package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/pixconv/pixel"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported pixel formats",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

func init() {
	formatsCmd.Flags().String("family", "", "Only list formats of this family (rgb, gray, cmyk, hsl)")
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) error {
	family, _ := cmd.Flags().GetString("family")

	w := cmd.OutOrStdout()
	printer.Fprintf(w, "%-7s %-6s %-8s %s\n", "FORMAT", "FAMILY", "CHANNELS", "ORDER")
	for _, f := range pixel.Formats() {
		if family != "" && !strings.EqualFold(family, f.Family().String()) {
			continue
		}
		order := make([]string, 0, f.ChannelCount())
		for _, c := range f.Channels() {
			order = append(order, c.String())
		}
		printer.Fprintf(w, "%-7s %-6s %-8d %s\n", f, f.Family(), f.ChannelCount(), strings.Join(order, " "))
	}
	return nil
}
