package bmp

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Reads a Bitmap file
func Load(path string) (*RasterImage, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read bitmap %s", path)
	}

	img, err := New(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load bitmap %s", path)
	}
	return img, nil
}

// Saves the bitmap as <dir>/<name>.bmp
func (b *RasterImage) Save(name, dir string) error {
	return b.SaveAs(filepath.Join(dir, name+".bmp"))
}

// Saves the bitmap image onto local disk, creating or truncating path
func (b *RasterImage) SaveAs(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}

	// Create a buffer (to reduce syscalls)
	w := bufio.NewWriter(file)
	if _, err := b.WriteTo(w); err != nil {
		file.Close()
		return errors.Wrapf(err, "could not write %s", path)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return errors.Wrapf(err, "could not write %s", path)
	}
	return errors.Wrapf(file.Close(), "could not close %s", path)
}

// WriteTo writes the whole file (header and pixels) to w
func (b *RasterImage) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buffer)
	return int64(n), err
}

// Decodes the full 54 byte header. Addressing never uses this; it is for
// inspecting a file.
func (b *RasterImage) Header() (*BitmapFileHeader, *BitmapInfoHeader, error) {
	r := bytes.NewReader(b.buffer)

	var bfHeader BitmapFileHeader
	if err := binary.Read(r, binary.LittleEndian, &bfHeader); err != nil {
		return nil, nil, errors.Wrap(err, "could not read file header")
	}

	var biHeader BitmapInfoHeader
	if err := binary.Read(r, binary.LittleEndian, &biHeader); err != nil {
		return nil, nil, errors.Wrap(err, "could not read info header")
	}

	return &bfHeader, &biHeader, nil
}
