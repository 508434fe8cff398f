// Package tga writes uncompressed true-color Targa images, the
// render output format of this raytracer.
package tga

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"
)

// header is the fixed-layout 18-byte TGA file header
type header struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       uint8
	ColorMapSpec    [5]byte
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	PixelDepth      uint8
	ImageDescriptor uint8
}

const (
	imageTypeTrueColor = 2
	descriptorTopLeft  = 0x20 // Bit 5: rows stored top to bottom
)

// Encode writes img as an uncompressed 24-bit true-color TGA.
// When flipVertical is set the image rows are written in reverse
// order, mirroring the image about its horizontal axis.
func Encode(w io.Writer, img *image.RGBA, flipVertical bool) error {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > 0xFFFF || height > 0xFFFF {
		return fmt.Errorf("image %dx%d exceeds TGA dimension limit", width, height)
	}

	h := header{
		ImageType:       imageTypeTrueColor,
		Width:           uint16(width),
		Height:          uint16(height),
		PixelDepth:      24,
		ImageDescriptor: descriptorTopLeft,
	}

	buffered := bufio.NewWriter(w)
	if err := binary.Write(buffered, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("failed writing TGA header: %w", err)
	}

	// Pixels are stored as BGR triples
	pixel := make([]byte, 3)
	for row := 0; row < height; row++ {
		y := bounds.Min.Y + row
		if flipVertical {
			y = bounds.Max.Y - 1 - row
		}

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			pixel[0] = c.B
			pixel[1] = c.G
			pixel[2] = c.R
			if _, err := buffered.Write(pixel); err != nil {
				return fmt.Errorf("failed writing TGA pixel data: %w", err)
			}
		}
	}

	return buffered.Flush()
}

// WriteFile encodes img to a TGA file at the given path
func WriteFile(filename string, img *image.RGBA, flipVertical bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed creating output file: %w", err)
	}
	defer file.Close()

	return Encode(file, img, flipVertical)
}
