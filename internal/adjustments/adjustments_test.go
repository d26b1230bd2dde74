package adjustments

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anas-shakeel/bmp24/internal/bmp"
)

func newGradient(t *testing.T, width, height int) *bmp.RasterImage {
	t.Helper()

	img, err := bmp.Create(width, height)
	require.NoError(t, err)
	for x, y := range img.Coordinates() {
		img.SetPaintColor(x*10, y*10, x+y)
		require.NoError(t, img.DrawPixel(x, y))
	}
	return img
}

func TestCrop(t *testing.T) {
	img := newGradient(t, 6, 5)

	cropped, err := Crop(img, 1, 2, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, cropped.Width())
	assert.Equal(t, 2, cropped.Height())
	assert.Equal(t, cropped.Stride()*2, cropped.Length())

	for x, y := range cropped.Coordinates() {
		got, err := cropped.PixelColor(x, y)
		require.NoError(t, err)
		want, err := img.PixelColor(x+1, y+2)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "pixel (%d, %d): want %v, got %v", x, y, want, got)
	}
}

func TestCropWholeImage(t *testing.T) {
	img := newGradient(t, 3, 3)

	cropped, err := Crop(img, 0, 0, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, img.Bytes(), cropped.Bytes())
}

func TestCropOutOfBounds(t *testing.T) {
	img := newGradient(t, 4, 4)

	for _, region := range [][4]int{{0, 0, 5, 1}, {0, 0, 1, 5}, {3, 0, 2, 1}, {-1, 0, 1, 1}, {0, -1, 1, 1}} {
		_, err := Crop(img, region[0], region[1], region[2], region[3])
		assert.True(t, errors.Is(err, bmp.ErrOutOfBounds), "region %v", region)
	}
}

func TestCropEmptyRegion(t *testing.T) {
	_, err := Crop(newGradient(t, 2, 2), 0, 0, 0, 1)
	assert.Error(t, err)
}
