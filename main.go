// bmp24 edits uncompressed 24-bit bitmaps: blur, invert and a few more filters
package main

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/anas-shakeel/bmp24/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bmp24: ")

	err := cmd.Execute()
	if err != nil {
		log.Print(err)

		exitCodeError := &cmd.ExitCodeError{}
		if errors.As(err, &exitCodeError) {
			os.Exit(exitCodeError.ExitCode())
		}
		os.Exit(cmd.ExitCodeInvalidArguments)
	}
}
