package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmp24/internal/adjustments"
	"github.com/anas-shakeel/bmp24/internal/bmp"
)

func newCropCmd() *cobra.Command {
	var x, y, width, height int

	cropCmd := newTransformCmd("crop",
		"Crop a region out of a bitmap",
		"Crop a region out of a bitmap. --x and --y are counted from the bottom-left pixel, the order BMP stores rows in.",
		func(img *bmp.RasterImage) (*bmp.RasterImage, error) {
			return adjustments.Crop(img, x, y, width, height)
		},
	)
	cropCmd.Flags().IntVar(&x, "x", 0, "Left edge of the region.")
	cropCmd.Flags().IntVar(&y, "y", 0, "Bottom edge of the region.")
	cropCmd.Flags().IntVar(&width, "width", 0, "Width of the region.")
	cropCmd.Flags().IntVar(&height, "height", 0, "Height of the region.")
	cropCmd.MarkFlagRequired("width")
	cropCmd.MarkFlagRequired("height")

	return cropCmd
}
