package cmd

import (
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [input]",
		Short: "Get the information of a bitmap",
		Long:  "Get the information of a bitmap: its header fields, the row layout used to address pixels, and whether a standard decoder accepts it.",
		Args:  inputArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadBitmap(args[0])
			if err != nil {
				return err
			}

			bfHeader, biHeader, err := img.Header()
			if err != nil {
				return newExitCodeError(err, ExitCodeInvalidInput)
			}

			cmd.Printf("Filename: \t%v\n", args[0])
			cmd.Printf("Filesize: \t%v bytes\n", len(img.Bytes()))
			if bfHeader.IsBitmap() {
				cmd.Printf("Signature: \t%q\n", string(bfHeader.Type[:]))
			} else {
				cmd.Printf("Signature: \t%q (not BM)\n", string(bfHeader.Type[:]))
			}
			cmd.Printf("Width: \t\t%v px\n", img.Width())
			cmd.Printf("Height: \t%v px\n", img.Height())
			cmd.Printf("BitCount: \t%vbits\n", biHeader.BitCount)
			cmd.Printf("Compression: \t%v\n", biHeader.Compression)
			cmd.Printf("PixelOffset: \t%v bytes\n", bfHeader.OffBits)
			cmd.Printf("PixelCount: \t%v pixels\n", img.Width()*img.Height())
			cmd.Printf("Length: \t%v bytes\n", img.Length())
			cmd.Printf("Stride: \t%v bytes\n", img.Stride())
			cmd.Printf("Padding: \t%v bytes\n", img.Padding())

			if _, err := img.DecodeConfig(); err != nil {
				cmd.Printf("Decodable: \tno (%v)\n", err)
			} else {
				cmd.Printf("Decodable: \tyes\n")
			}

			return nil
		},
	}
}
