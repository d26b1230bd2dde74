package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmp24/internal/bmp"
	"github.com/anas-shakeel/bmp24/internal/filters"
)

func newGrayscaleCmd() *cobra.Command {
	var luma bool

	grayscaleCmd := newTransformCmd("grayscale",
		"Convert a bitmap to black and white",
		"Convert a bitmap to black and white, using the mean of the channels or, with --luma, the ITU-R 601-2 luma transform.",
		func(img *bmp.RasterImage) (*bmp.RasterImage, error) {
			if luma {
				filters.GrayscaleLuma(img)
			} else {
				filters.Grayscale(img)
			}
			return img, nil
		},
	)
	grayscaleCmd.Flags().BoolVar(&luma, "luma", false, "Use the ITU-R 601-2 luma transform.")

	return grayscaleCmd
}

func newBrightnessCmd() *cobra.Command {
	var (
		factor float64
		method string
	)

	brightnessCmd := newTransformCmd("brightness",
		"Adjust the brightness of a bitmap",
		"Adjust the brightness of a bitmap. With --method add the factor is added to every channel, with --method multiply every channel is multiplied by it. Channels are clipped to 0-255.",
		func(img *bmp.RasterImage) (*bmp.RasterImage, error) {
			return img, filters.Brightness(img, factor, method)
		},
	)

	args := brightnessCmd.Args
	brightnessCmd.Args = func(cmd *cobra.Command, a []string) error {
		if method != "add" && method != "multiply" {
			return newExitCodeError(errors.Wrapf(filters.ErrInvalidMethod, "got %q", method), ExitCodeInvalidArguments)
		}
		return args(cmd, a)
	}
	brightnessCmd.Flags().Float64VarP(&factor, "factor", "f", 1.2, "The value to add or multiply with.")
	brightnessCmd.Flags().StringVarP(&method, "method", "m", "multiply", "Either add or multiply.")

	return brightnessCmd
}

func newContrastCmd() *cobra.Command {
	var factor float64

	contrastCmd := newTransformCmd("contrast",
		"Adjust the contrast of a bitmap",
		"Adjust the contrast of a bitmap around the mean of every channel. A factor above 1 increases contrast, below 1 decreases it.",
		func(img *bmp.RasterImage) (*bmp.RasterImage, error) {
			filters.Contrast(img, factor)
			return img, nil
		},
	)
	contrastCmd.Flags().Float64VarP(&factor, "factor", "f", 1.5, "The contrast factor.")

	return contrastCmd
}

func newChannelCmd() *cobra.Command {
	var channel string

	channelCmd := newTransformCmd("channel",
		"Keep a single color channel of a bitmap",
		"Keep a single color channel (red, green or blue) of a bitmap, the other two are set to zero.",
		func(img *bmp.RasterImage) (*bmp.RasterImage, error) {
			return filters.Channel(img, channel)
		},
	)

	args := channelCmd.Args
	channelCmd.Args = func(cmd *cobra.Command, a []string) error {
		switch channel {
		case "red", "green", "blue":
			return args(cmd, a)
		}
		return newExitCodeError(errors.Wrapf(filters.ErrInvalidChannel, "got %q", channel), ExitCodeInvalidArguments)
	}
	channelCmd.Flags().StringVarP(&channel, "channel", "c", "red", "The channel to keep: red, green or blue.")

	return channelCmd
}
