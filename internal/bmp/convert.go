package bmp

import (
	"bytes"
	"image"

	"github.com/pkg/errors"
	xbmp "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// FromImage converts any decoded image into a 24-bit bitmap. Transparent
// areas are composited over white so the encoder always emits 3 bytes per pixel.
func FromImage(src image.Image) (*RasterImage, error) {
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, errors.New("image has no pixels")
	}

	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), src, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := xbmp.Encode(&buf, canvas); err != nil {
		return nil, errors.Wrap(err, "could not encode bitmap")
	}
	return New(buf.Bytes())
}

// Image decodes the current buffer into an image.Image. The header must be a
// well-formed 24-bit BITMAPINFOHEADER.
func (b *RasterImage) Image() (image.Image, error) {
	img, err := xbmp.Decode(bytes.NewReader(b.buffer))
	if err != nil {
		return nil, errors.Wrap(err, "could not decode bitmap")
	}
	return img, nil
}

// DecodeConfig reports the dimensions and color model found in the header.
func (b *RasterImage) DecodeConfig() (image.Config, error) {
	cfg, err := xbmp.DecodeConfig(bytes.NewReader(b.buffer))
	if err != nil {
		return image.Config{}, errors.Wrap(err, "could not decode bitmap header")
	}
	return cfg, nil
}
