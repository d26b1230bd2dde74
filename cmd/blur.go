package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmp24/internal/bmp"
)

func newBlurCmd() *cobra.Command {
	var radius int

	blurCmd := newTransformCmd("blur",
		"Blur a bitmap",
		"Blur a bitmap by replacing every pixel with the average color of the square around it. The square reaches --range pixels in every direction and shrinks at the image borders.",
		func(img *bmp.RasterImage) (*bmp.RasterImage, error) {
			return img, img.Blur(radius)
		},
	)

	args := blurCmd.Args
	blurCmd.Args = func(cmd *cobra.Command, a []string) error {
		if radius < 0 {
			return newExitCodeError(errors.Wrapf(bmp.ErrInvalidRadius, "invalid range %d", radius), ExitCodeInvalidArguments)
		}
		return args(cmd, a)
	}
	blurCmd.Flags().IntVarP(&radius, "range", "r", 1, "The blur range in pixels. 0 leaves the image unchanged.")

	return blurCmd
}
