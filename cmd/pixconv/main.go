package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BeatGlow/pixconv"
)

var rootCmd = &cobra.Command{
	Use:     "pixconv",
	Short:   "Convert images and raw pixel buffers between packed pixel formats",
	Version: pixconv.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			pixconv.SetLogger(pixconv.NewDebugLogger())
		}
	},
	SilenceUsage: true,
}

// printer formats numbers for humans, e.g. byte counts with digit grouping.
var printer = message.NewPrinter(language.English)

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log pipeline stages to stderr (also: "+pixconv.EnvDebug+"=1)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
