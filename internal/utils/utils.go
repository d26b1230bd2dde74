package utils

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/anas-shakeel/bmp24/internal/bmp"
)

// Returns the average of all given numbers n
func Average(n ...int) int {
	if len(n) == 0 {
		return 0
	}

	// Sum all numbers
	var sum int
	for _, num := range n {
		sum += num
	}

	// Divide sum by total numbers
	return sum / len(n)
}

// Print a Colored Block in terminal
func ColoredBlock(block string, red int, green int, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}

// Print the bitmap in terminal, top row first. Use for small images only
func Preview(w io.Writer, img *bmp.RasterImage) error {
	for row := img.Height() - 1; row >= 0; row-- { // BottomUp: last row is the top
		for col := range img.Width() {
			c, err := img.PixelColor(col, row)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, ColoredBlock("  ", int(c.R()), int(c.G()), int(c.B()))); err != nil {
				return errors.Wrap(err, "could not write preview")
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.Wrap(err, "could not write preview")
		}
	}
	return nil
}
