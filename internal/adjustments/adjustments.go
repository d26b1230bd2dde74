// Adjusts image dimensions, orientation, or structure.
package adjustments

import (
	"github.com/pkg/errors"

	"github.com/anas-shakeel/bmp24/internal/bmp"
)

// Crops a region in the bitmap image. (x, y) and the region are in pixel
// array coordinates, so (0, 0) is the bottom-left pixel on screen.
func Crop(b *bmp.RasterImage, x, y, width, height int) (*bmp.RasterImage, error) {
	// Validate bounds
	if x < 0 || y < 0 {
		return nil, errors.Wrapf(bmp.ErrOutOfBounds, "origin (%d, %d) is negative", x, y)
	} else if width+x > b.Width() {
		return nil, errors.Wrap(bmp.ErrOutOfBounds, "invalid bounds: width out of bounds")
	} else if height+y > b.Height() {
		return nil, errors.Wrap(bmp.ErrOutOfBounds, "invalid bounds: height out of bounds")
	}

	cropped, err := bmp.Create(width, height)
	if err != nil {
		return nil, err
	}

	// Copy the region pixel by pixel
	for col, row := range cropped.Coordinates() {
		c, err := b.PixelColor(col+x, row+y)
		if err != nil {
			return nil, err
		}
		rgb := c.RGB()
		cropped.SetPaintColor(int(rgb[0]), int(rgb[1]), int(rgb[2]))
		if err := cropped.DrawPixel(col, row); err != nil {
			return nil, err
		}
	}

	return cropped, nil
}
