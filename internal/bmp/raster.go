// bmp package addresses the pixels of a 24-bit uncompressed bitmap held as raw bytes
package bmp

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/anas-shakeel/bmp24/internal/color"
)

var (
	ErrShortBuffer   = errors.New("buffer too short for a bitmap header")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrInvalidRadius = errors.New("radius must not be negative")
)

// RasterImage owns the bytes of a whole BMP file (header + pixel array).
//
// Width, height and pixel array length are read from the header once, in New,
// and never re-parsed: writing over the header bytes later does not change
// how pixels are addressed.
type RasterImage struct {
	buffer     []byte
	paintColor *color.Color

	width  int
	height int
	length int
}

// Creates a RasterImage over buf. The image takes ownership of buf.
//
// Only the buffer length is checked. Width, height and length that disagree
// with the actual buffer size are not detected.
func New(buf []byte) (*RasterImage, error) {
	if len(buf) < HeaderSize {
		return nil, errors.Wrapf(ErrShortBuffer, "got %d bytes, need %d", len(buf), HeaderSize)
	}

	return &RasterImage{
		buffer:     buf,
		paintColor: color.FromRGB(0, 0, 0),
		width:      int(binary.LittleEndian.Uint32(buf[offsetWidth:])),
		height:     int(binary.LittleEndian.Uint32(buf[offsetHeight:])),
		length:     int(binary.LittleEndian.Uint32(buf[offsetSizeImage:])),
	}, nil
}

func (b *RasterImage) Width() int  { return b.width }
func (b *RasterImage) Height() int { return b.height }

// Length of the pixel array (in bytes), as written in the header
func (b *RasterImage) Length() int { return b.length }

// Total bytes in a row (incl. padding)
func (b *RasterImage) Stride() int {
	return b.width*BytesPerPixel + b.Padding()
}

// Padding bytes at the end of each row. For 3 bytes per pixel this equals
// the usual (4 - (width*3) % 4) % 4.
func (b *RasterImage) Padding() int {
	return b.width % 4
}

// Returns the underlying buffer. It is shared with the image, not copied.
func (b *RasterImage) Bytes() []byte {
	return b.buffer
}

// Returns the byte offset of the pixel at column x, row y. Row 0 is the first
// row of the pixel array, which BMP stores bottom-up.
func (b *RasterImage) PixelOffset(x, y int) int {
	width := b.width

	return HeaderSize +
		x*BytesPerPixel +
		y*width*BytesPerPixel +
		y*(width%4)
}

// Returns the color of the pixel at (x, y)
func (b *RasterImage) PixelColor(x, y int) (*color.Color, error) {
	if err := b.checkBounds(x, y); err != nil {
		return nil, err
	}
	return b.pixel(x, y), nil
}

// Writes the current paint color into the pixel at (x, y)
func (b *RasterImage) DrawPixel(x, y int) error {
	if err := b.checkBounds(x, y); err != nil {
		return err
	}
	b.drawPixel(x, y)
	return nil
}

// Sets the paint color used by DrawPixel. Values outside [0, 255] wrap
// around (see color.NormalizeChannel).
func (b *RasterImage) SetPaintColor(r, g, bl int) {
	b.paintColor = color.FromRGB(
		float64(color.NormalizeChannel(r)),
		float64(color.NormalizeChannel(g)),
		float64(color.NormalizeChannel(bl)),
	)
}

// Returns a copy of the current paint color
func (b *RasterImage) PaintColor() *color.Color {
	return b.paintColor.Clone()
}

// Returns a Copy of the raster image. The clone gets its own buffer.
func (b *RasterImage) Clone() *RasterImage {
	buf := make([]byte, len(b.buffer))
	copy(buf, b.buffer)

	// The copy is byte-identical, so re-reading the header cannot fail
	clone, _ := New(buf)
	clone.paintColor = b.paintColor.Clone()
	return clone
}

func (b *RasterImage) checkBounds(x, y int) error {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return errors.Wrapf(ErrOutOfBounds, "pixel (%d, %d) outside %dx%d image", x, y, b.width, b.height)
	}
	return nil
}

// pixel reads without bounds checks. Bytes past the end of the buffer read as 0.
func (b *RasterImage) pixel(x, y int) *color.Color {
	pos := b.PixelOffset(x, y)
	return color.FromBGR(b.byteAt(pos), b.byteAt(pos+1), b.byteAt(pos+2))
}

// drawPixel writes without bounds checks. Bytes past the end of the buffer are dropped.
func (b *RasterImage) drawPixel(x, y int) {
	pos := b.PixelOffset(x, y)
	for i, v := range b.paintColor.Bytes() {
		if at := pos + i; at >= 0 && at < len(b.buffer) {
			b.buffer[at] = v
		}
	}
}

func (b *RasterImage) byteAt(i int) float64 {
	if i < 0 || i >= len(b.buffer) {
		return 0
	}
	return float64(b.buffer[i])
}

// paint sets the paint color from an arbitrary color, truncating each channel
func (b *RasterImage) paint(c *color.Color) {
	rgb := c.RGB()
	b.SetPaintColor(int(rgb[color.Red]), int(rgb[color.Green]), int(rgb[color.Blue]))
}
