package bmp

import (
	"bytes"
	"image"
	stdcolor "image/color"
	"testing"

	"github.com/stretchr/testify/require"
	xbmp "golang.org/x/image/bmp"
)

// patternRGB is a deterministic, non-uniform color for (x, y)
func patternRGB(x, y int) (int, int, int) {
	return (x * 40) % 256, (y * 50) % 256, (x*7 + y*13) % 256
}

// newPatternImage builds a width x height bitmap filled with patternRGB
func newPatternImage(t *testing.T, width, height int) *RasterImage {
	t.Helper()

	img, err := Create(width, height)
	require.NoError(t, err)

	for x, y := range img.Coordinates() {
		img.SetPaintColor(patternRGB(x, y))
		require.NoError(t, img.DrawPixel(x, y))
	}
	return img
}

// newUniformImage builds a width x height bitmap of a single color
func newUniformImage(t *testing.T, width, height, r, g, b int) *RasterImage {
	t.Helper()

	img, err := Create(width, height)
	require.NoError(t, err)
	img.Fill(r, g, b)
	return img
}

// encodeWithXImage encodes src through golang.org/x/image/bmp
func encodeWithXImage(t *testing.T, src image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, xbmp.Encode(&buf, src))
	return buf.Bytes()
}

// opaquePattern is the image.RGBA equivalent of patternRGB, in display order
// (row 0 at the top).
func opaquePattern(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			r, g, b := patternRGB(x, y)
			img.SetRGBA(x, y, stdcolor.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}

func rgbOf(t *testing.T, img *RasterImage, x, y int) [3]float64 {
	t.Helper()

	c, err := img.PixelColor(x, y)
	require.NoError(t, err)
	return c.RGB()
}
