package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmp24/internal/bmp"
)

func newCreateCmd() *cobra.Command {
	var (
		width  int
		height int
		fill   string
	)

	createCmd := &cobra.Command{
		Use:   "create [output]",
		Short: "Create a new bitmap",
		Long:  "Create a new 24-bit bitmap of the given size, filled with a single color. Channel values outside 0-255 wrap around.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return newExitCodeError(err, ExitCodeInvalidArguments)
			}
			if _, err := parseColor(fill); err != nil {
				return newExitCodeError(err, ExitCodeInvalidArguments)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := bmp.Create(width, height)
			if err != nil {
				return newExitCodeError(err, ExitCodeInvalidArguments)
			}

			rgb, _ := parseColor(fill)
			img.Fill(rgb[0], rgb[1], rgb[2])

			return saveBitmap(cmd, img, args[0])
		},
	}
	createCmd.Flags().IntVar(&width, "width", 64, "Width in pixels.")
	createCmd.Flags().IntVar(&height, "height", 64, "Height in pixels.")
	createCmd.Flags().StringVar(&fill, "color", "0,0,0", "Fill color as r,g,b.")

	return createCmd
}

// parseColor parses "r,g,b" into three integers
func parseColor(value string) ([3]int, error) {
	var rgb [3]int

	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return rgb, errors.Errorf("invalid color %q: expected r,g,b", value)
	}

	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return rgb, errors.Wrapf(err, "invalid color %q", value)
		}
		rgb[i] = v
	}
	return rgb, nil
}
