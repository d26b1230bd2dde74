package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmp24/internal/bmp"
)

func newInvertCmd() *cobra.Command {
	return newTransformCmd("invert",
		"Invert the colors of a bitmap",
		"Invert the colors of a bitmap, every channel becomes 255 minus its value.",
		func(img *bmp.RasterImage) (*bmp.RasterImage, error) {
			img.InvertColors()
			return img, nil
		},
	)
}
