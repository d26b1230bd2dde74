package bmp

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// Creates and returns a black bitmap image (24 bit uncompressed)
func Create(width, height int) (*RasterImage, error) {
	if width <= 0 {
		return nil, errors.New("width must be greater than 0")
	} else if height <= 0 {
		return nil, errors.New("height must be greater than 0")
	}

	stride := width*BytesPerPixel + width%4
	biSizeImage := uint32(stride * height)
	fileSize := HeaderSize + biSizeImage // Size of the whole bitmap file

	// NewBitmap Headers
	bfh := BitmapFileHeader{Type: [2]byte{0x42, 0x4d}, OffBits: HeaderSize, Size: fileSize}
	bih := BitmapInfoHeader{Size: infoHeaderSize, Width: int32(width), Height: int32(height), Planes: 1, BitCount: BitCount, SizeImage: biSizeImage}

	buf := bytes.NewBuffer(make([]byte, 0, fileSize))
	if err := binary.Write(buf, binary.LittleEndian, &bfh); err != nil {
		return nil, errors.Wrap(err, "could not write file header")
	}
	if err := binary.Write(buf, binary.LittleEndian, &bih); err != nil {
		return nil, errors.Wrap(err, "could not write info header")
	}
	buf.Write(make([]byte, biSizeImage)) // Pixels (all black)

	return New(buf.Bytes())
}
