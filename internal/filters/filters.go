// Filters perform color manipulation and per-pixel operations
package filters

import (
	"math"

	"github.com/pkg/errors"

	"github.com/anas-shakeel/bmp24/internal/bmp"
	"github.com/anas-shakeel/bmp24/internal/color"
	"github.com/anas-shakeel/bmp24/internal/utils"
)

var (
	ErrInvalidMethod  = errors.New("invalid method: method must be add or multiply")
	ErrInvalidChannel = errors.New("invalid color channel: only red, green, and blue are supported")
)

// Converts a bitmap to Black-and-White
func Grayscale(b *bmp.RasterImage) {
	b.Map(func(_, _ int, c *color.Color) *color.Color {
		// Find the average value for pixel
		avg := float64(utils.Average(int(c.R()), int(c.G()), int(c.B())))
		return color.FromRGB(avg, avg, avg)
	})
}

// Converts a bitmap to Black-and-White (with ITU-R 601-2 Luma Transform)
func GrayscaleLuma(b *bmp.RasterImage) {
	b.Map(func(_, _ int, c *color.Color) *color.Color {
		L := float64(int(c.R())*299/1000 + int(c.G())*587/1000 + int(c.B())*114/1000)
		return color.FromRGB(L, L, L)
	})
}

// Adjusts the Brightness of a Bitmap in-place.
//
// method can be "add" (adds value to each channel) or "multiply" (multiplies each channel by value).
// Pixel values are clipped to [0, 255].
func Brightness(b *bmp.RasterImage, factor float64, method string) error {
	var operation color.Operation

	// Select an operation of brightness (additive or multiplicative)
	switch method {
	case "add":
		operation = color.Sum
	case "multiply":
		operation = color.Mult
	default:
		return errors.Wrapf(ErrInvalidMethod, "got %q", method)
	}

	// Apply brightness (or darkness)
	b.Map(func(_, _ int, c *color.Color) *color.Color {
		return clip(c.Combine(operation, color.Scalar(factor)))
	})
	return nil
}

// Adjusts the Contrast of a Bitmap in-place.
// factor > 1.0 increases Contrast, factor < 1.0 decreases it.
func Contrast(b *bmp.RasterImage, factor float64) {
	totalPixels := b.Width() * b.Height()
	if totalPixels == 0 {
		return
	}

	// Compute mean for each channel
	sum := color.FromRGB(0, 0, 0)
	for x, y := range b.Coordinates() {
		c, _ := b.PixelColor(x, y)
		sum.Add(c)
	}
	mean := sum.Divide(color.Scalar(totalPixels)).Trunc()

	// Apply contrast
	shift := mean.Multiply(color.Scalar(1 - factor))
	b.Map(func(_, _ int, c *color.Color) *color.Color {
		return clip(c.Multiply(color.Scalar(factor)).Add(shift))
	})
}

// Returns an image containing a single channel of the source image.
// channel can one of (`red`, `green`, and `blue`)
func Channel(b *bmp.RasterImage, channel string) (*bmp.RasterImage, error) {
	var keep *color.Color
	switch channel {
	case "red":
		keep = color.FromRGB(1, 0, 0)
	case "green":
		keep = color.FromRGB(0, 1, 0)
	case "blue":
		keep = color.FromRGB(0, 0, 1)
	default:
		return nil, errors.Wrapf(ErrInvalidChannel, "got %q", channel)
	}

	// Turn the channels to zero except requested one!
	newBitmap := b.Clone()
	newBitmap.Map(func(_, _ int, c *color.Color) *color.Color {
		return c.Multiply(keep)
	})
	return newBitmap, nil
}

// clip clamps every channel to [0, 255] (truncated)
func clip(c *color.Color) *color.Color {
	rgb := c.RGB()
	for i, v := range rgb {
		rgb[i] = math.Trunc(math.Min(math.Max(v, 0), 255))
	}
	return color.FromRGB(rgb[color.Red], rgb[color.Green], rgb[color.Blue])
}
