package bmp

import (
	"encoding/binary"
	stdcolor "image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anas-shakeel/bmp24/internal/color"
)

func TestNewReadsHeaderFields(t *testing.T) {
	img, err := Create(5, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, img.Width())
	assert.Equal(t, 3, img.Height())
	assert.Equal(t, (5*3+1)*3, img.Length())
	assert.Equal(t, 16, img.Stride())
	assert.Equal(t, 1, img.Padding())
}

func TestNewShortBuffer(t *testing.T) {
	_, err := New(make([]byte, HeaderSize-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShortBuffer))
}

func TestHeaderIsReadOnce(t *testing.T) {
	img, err := Create(4, 4)
	require.NoError(t, err)

	binary.LittleEndian.PutUint32(img.Bytes()[offsetWidth:], 99)
	binary.LittleEndian.PutUint32(img.Bytes()[offsetHeight:], 99)

	assert.Equal(t, 4, img.Width())
	assert.Equal(t, 4, img.Height())
	assert.Equal(t, HeaderSize+4*3, img.PixelOffset(0, 1), "addressing still uses the cached width")
}

func TestPixelOffset(t *testing.T) {
	img, err := Create(5, 2)
	require.NoError(t, err)

	assert.Equal(t, 54, img.PixelOffset(0, 0))
	assert.Equal(t, 57, img.PixelOffset(1, 0))
	assert.Equal(t, 66, img.PixelOffset(4, 0))
	assert.Equal(t, 54+15+1, img.PixelOffset(0, 1))
}

func TestPixelOffsetRowStepAndMonotonicity(t *testing.T) {
	for width := 1; width <= 12; width++ {
		img, err := Create(width, 3)
		require.NoError(t, err)

		for y := range 3 {
			for x := 1; x < width; x++ {
				require.Greater(t, img.PixelOffset(x, y), img.PixelOffset(x-1, y))
			}
			require.Equal(t,
				img.PixelOffset(0, y)+width*3+width%4,
				img.PixelOffset(0, y+1),
				"row step for width %d", width)
		}
	}
}

func TestPaddingMatchesFourByteRowAlignment(t *testing.T) {
	for width := 1; width <= 64; width++ {
		img, err := Create(width, 1)
		require.NoError(t, err)

		assert.Equal(t, (4-(width*3)%4)%4, img.Padding(), "width %d", width)
		assert.Zero(t, img.Stride()%4, "width %d", width)
	}
}

func TestDrawAndReadPixel(t *testing.T) {
	img, err := Create(3, 3)
	require.NoError(t, err)

	img.SetPaintColor(10, 20, 30)
	require.NoError(t, img.DrawPixel(1, 2))

	assert.Equal(t, [3]float64{10, 20, 30}, rgbOf(t, img, 1, 2))
	assert.Equal(t, [3]float64{0, 0, 0}, rgbOf(t, img, 0, 2))

	// stored blue, green, red
	pos := img.PixelOffset(1, 2)
	assert.Equal(t, []byte{30, 20, 10}, img.Bytes()[pos:pos+3])
}

func TestSetPaintColorWrapsChannels(t *testing.T) {
	img, err := Create(1, 1)
	require.NoError(t, err)

	img.SetPaintColor(-248, 300, -500)
	assert.Equal(t, [3]float64{8, 44, 12}, img.PaintColor().RGB())

	// PaintColor hands out a copy
	img.PaintColor().Add(color.Scalar(1))
	assert.Equal(t, [3]float64{8, 44, 12}, img.PaintColor().RGB())
}

func TestOutOfBounds(t *testing.T) {
	img, err := Create(3, 2)
	require.NoError(t, err)

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}} {
		_, err := img.PixelColor(pt[0], pt[1])
		assert.True(t, errors.Is(err, ErrOutOfBounds), "read %v", pt)

		err = img.DrawPixel(pt[0], pt[1])
		assert.True(t, errors.Is(err, ErrOutOfBounds), "write %v", pt)
	}
}

func TestReadPastEndOfBufferIsZero(t *testing.T) {
	full, err := Create(2, 2)
	require.NoError(t, err)
	full.SetPaintColor(9, 8, 7)
	require.NoError(t, full.DrawPixel(1, 1))

	// Drop the red byte of the last pixel
	last := full.PixelOffset(1, 1)
	truncated := append([]byte(nil), full.Bytes()[:last+2]...)
	img, err := New(truncated)
	require.NoError(t, err)

	assert.Equal(t, [3]float64{0, 8, 7}, rgbOf(t, img, 1, 1))

	img.SetPaintColor(1, 2, 3)
	assert.NotPanics(t, func() { _ = img.DrawPixel(1, 1) })
	assert.Len(t, img.Bytes(), last+2)
}

func TestCloneIsIndependent(t *testing.T) {
	img := newPatternImage(t, 4, 3)
	before := append([]byte(nil), img.Bytes()...)

	clone := img.Clone()
	assert.Equal(t, img.Width(), clone.Width())
	assert.Equal(t, img.Height(), clone.Height())
	assert.Equal(t, img.Length(), clone.Length())

	clone.SetPaintColor(1, 2, 3)
	require.NoError(t, clone.DrawPixel(0, 0))
	clone.InvertColors()

	assert.Equal(t, before, img.Bytes())
	assert.NotEqual(t, before, clone.Bytes())
}

func TestAddressingAgreesWithXImageEncoder(t *testing.T) {
	for width := 1; width <= 7; width++ {
		src := opaquePattern(width, 3)
		img, err := New(encodeWithXImage(t, src))
		require.NoError(t, err)

		require.Equal(t, width, img.Width())
		require.Equal(t, 3, img.Height())

		for x, y := range img.Coordinates() {
			// pixel array row 0 is the bottom row on screen
			want := src.RGBAAt(x, img.Height()-1-y)
			got := rgbOf(t, img, x, y)
			require.Equal(t,
				[3]float64{float64(want.R), float64(want.G), float64(want.B)}, got,
				"width %d pixel (%d, %d)", width, x, y)
		}
	}
}

func TestAddressingAgreesWithXImageDecoder(t *testing.T) {
	img := newPatternImage(t, 5, 4)

	decoded, err := img.Image()
	require.NoError(t, err)
	require.Equal(t, 5, decoded.Bounds().Dx())
	require.Equal(t, 4, decoded.Bounds().Dy())

	for x, y := range img.Coordinates() {
		r, g, b := patternRGB(x, y)
		want := stdcolor.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
		got := stdcolor.RGBAModel.Convert(decoded.At(x, img.Height()-1-y))
		require.Equal(t, want, got, "pixel (%d, %d)", x, y)
	}
}
