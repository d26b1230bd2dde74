package cmd

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/tiff" // Register TIFF decoder

	"github.com/anas-shakeel/bmp24/internal/bmp"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [input] [output]",
		Short: "Convert an image into a 24-bit bitmap",
		Long:  "Convert a PNG, JPEG, GIF, TIFF or BMP image into an uncompressed 24-bit bitmap. Transparent pixels are composited over white.",
		Args:  inputArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return newExitCodeError(errors.Wrapf(err, "could not open input file %s", args[0]), ExitCodeInvalidInput)
			}
			defer f.Close()

			src, format, err := image.Decode(f)
			if err != nil {
				return newExitCodeError(errors.Wrapf(err, "could not decode %s", args[0]), ExitCodeInvalidInput)
			}

			img, err := bmp.FromImage(src)
			if err != nil {
				return newExitCodeError(err, ExitCodeProcessingError)
			}

			cmd.Printf("Converted %s image %s\n", format, args[0])
			return saveBitmap(cmd, img, args[1])
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [input] [output]",
		Short: "Convert a bitmap into another image format",
		Long:  "Convert a bitmap into PNG, JPEG or GIF, picked from the output file extension (PNG when unknown).",
		Args:  inputArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadBitmap(args[0])
			if err != nil {
				return err
			}

			decoded, err := img.Image()
			if err != nil {
				return newExitCodeError(err, ExitCodeInvalidInput)
			}

			if err := saveImage(decoded, args[1]); err != nil {
				return newExitCodeError(err, ExitCodeInvalidOutput)
			}

			cmd.Printf("Wrote %dx%d image to %s\n", img.Width(), img.Height(), args[1])
			return nil
		},
	}
}

// saveImage encodes img by the extension of path (png, jpg/jpeg, gif)
func saveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".gif":
		err = gif.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return errors.Wrapf(err, "could not encode %s", path)
	}
	return errors.Wrapf(f.Close(), "could not close %s", path)
}
