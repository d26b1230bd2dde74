package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmp24/internal/bmp"
)

// validFile checks that path exists and is not a directory
func validFile(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err
	}
	if stat.IsDir() {
		return errors.Errorf("%s is a directory", path)
	}
	return nil
}

// inputArgs validates [input] plus extra positional args
func inputArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}

		if err := validFile(args[0]); err != nil {
			return newExitCodeError(errors.Wrapf(err, "could not open input file %s", args[0]), ExitCodeInvalidInput)
		}

		return nil
	}
}

func loadBitmap(path string) (*bmp.RasterImage, error) {
	img, err := bmp.Load(path)
	if err != nil {
		return nil, newExitCodeError(err, ExitCodeInvalidInput)
	}
	return img, nil
}

func saveBitmap(cmd *cobra.Command, img *bmp.RasterImage, path string) error {
	if err := img.SaveAs(path); err != nil {
		return newExitCodeError(err, ExitCodeInvalidOutput)
	}
	cmd.Printf("Wrote %dx%d bitmap to %s\n", img.Width(), img.Height(), path)
	return nil
}

// newTransformCmd builds a "<name> [input] [output]" command that loads the
// input, applies transform and saves the result.
func newTransformCmd(use, short, long string, transform func(img *bmp.RasterImage) (*bmp.RasterImage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [input] [output]",
		Short: short,
		Long:  long,
		Args:  inputArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadBitmap(args[0])
			if err != nil {
				return err
			}

			result, err := transform(img)
			if err != nil {
				return newExitCodeError(err, ExitCodeProcessingError)
			}

			return saveBitmap(cmd, result, args[1])
		},
	}
}
