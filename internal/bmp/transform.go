package bmp

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/anas-shakeel/bmp24/internal/color"
)

// Coordinates yields every (x, y) of the image in raster order: y from 0 to
// height, x from 0 to width within each row.
func (b *RasterImage) Coordinates() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := range b.height {
			for x := range b.width {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// Returns the mean color of the square window [x-radius, x+radius] x
// [y-radius, y+radius], clipped to the image. Each channel is truncated
// toward zero.
func (b *RasterImage) AverageNeighborhood(x, y, radius int) *color.Color {
	xs, ys := max(x-radius, 0), max(y-radius, 0)
	xe, ye := min(x+radius+1, b.width), min(y+radius+1, b.height)

	avg := color.FromRGB(0, 0, 0)
	samples := 0
	for yi := ys; yi < ye; yi++ {
		for xi := xs; xi < xe; xi++ {
			avg.Add(b.pixel(xi, yi))
			samples++
		}
	}

	if samples == 0 {
		return avg
	}
	return avg.Divide(color.Scalar(samples)).Trunc()
}

// Blurs the image by replacing every pixel with the average of its
// neighborhood. Every average is computed from the pre-blur pixels: reads
// come from a clone, writes go to a scratch copy that replaces the buffer
// once the pass is complete.
func (b *RasterImage) Blur(radius int) error {
	if radius < 0 {
		return errors.Wrapf(ErrInvalidRadius, "got %d", radius)
	}

	source := b.Clone()
	scratch := b.Clone()

	for x, y := range b.Coordinates() {
		scratch.paint(source.AverageNeighborhood(x, y, radius))
		scratch.drawPixel(x, y)
	}

	b.buffer = scratch.buffer
	return nil
}

// Inverts (negates) every pixel in-place
func (b *RasterImage) InvertColors() {
	for x, y := range b.Coordinates() {
		b.paint(b.pixel(x, y).Invert())
		b.drawPixel(x, y)
	}
}

// Paints every pixel with the given color
func (b *RasterImage) Fill(r, g, bl int) {
	b.SetPaintColor(r, g, bl)
	for x, y := range b.Coordinates() {
		b.drawPixel(x, y)
	}
}

// Map replaces every pixel with fn(x, y, current color), in raster order and
// in-place. fn must only depend on the pixel it is given.
func (b *RasterImage) Map(fn func(x, y int, c *color.Color) *color.Color) {
	for x, y := range b.Coordinates() {
		b.paint(fn(x, y, b.pixel(x, y)))
		b.drawPixel(x, y)
	}
}
