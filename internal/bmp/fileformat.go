// BMP-specific structs, offsets and sizes
package bmp

// Byte offsets of the header fields a RasterImage relies on. All are
// 4-byte little-endian unsigned integers.
const (
	offsetWidth     = 18
	offsetHeight    = 22
	offsetSizeImage = 34
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	HeaderSize     = fileHeaderSize + infoHeaderSize // First pixel index
	BytesPerPixel  = 3
	BitCount       = 24
)

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

type BitmapFileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].

type BitmapInfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes).
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// Reports whether the file header carries the "BM" signature
func (h *BitmapFileHeader) IsBitmap() bool {
	return h.Type[0] == 0x42 && h.Type[1] == 0x4d
}
