package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmp24/internal/utils"
)

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [input]",
		Short: "Print a bitmap in the terminal",
		Long:  "Print a bitmap in the terminal using 24-bit ANSI colors, two characters per pixel. Use for small images only.",
		Args:  inputArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadBitmap(args[0])
			if err != nil {
				return err
			}

			if err := utils.Preview(cmd.OutOrStdout(), img); err != nil {
				return newExitCodeError(err, ExitCodeProcessingError)
			}
			return nil
		},
	}
}
