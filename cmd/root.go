package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/anas-shakeel/bmp24/cmd.Version=..."
var Version = "dev"

func newRootCmd() *cobra.Command {
	var (
		timing bool
		start  time.Time
	)

	rootCmd := &cobra.Command{
		Use:           "bmp24",
		Short:         "A CLI tool to edit 24-bit bitmaps",
		Long:          `bmp24 reads uncompressed 24-bit BMP files, blurs or inverts them (among other filters) and writes the result back as a BMP.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			start = time.Now()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if timing {
				cmd.PrintErrf("%s took %s\n", cmd.Name(), time.Since(start))
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&timing, "timing", false, "Print how long the command took (to stderr).")

	rootCmd.AddCommand(
		newBlurCmd(),
		newInvertCmd(),
		newGrayscaleCmd(),
		newBrightnessCmd(),
		newContrastCmd(),
		newChannelCmd(),
		newCropCmd(),
		newCreateCmd(),
		newInfoCmd(),
		newPreviewCmd(),
		newImportCmd(),
		newExportCmd(),
	)

	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	rootCmd := newRootCmd()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}
