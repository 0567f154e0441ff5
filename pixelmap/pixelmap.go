/*
Package pixelmap implements a pixelmap decoder and encoder.

A pixelmap is the uncompressed frame format played back by the Arduino
player sketch. The file starts with a 4 byte header; the image width as a
little-endian 16-bit value, the delay in milliseconds to hold the frame and
the number of times to repeat the whole file. The header is followed by
the pixels, row by row from the top, each written as three bytes in R, G, B
order. The height is not stored, the player works it out from the file
size, so a pixelmap is always exactly 4 + 3 * width * height bytes.
*/
package pixelmap

import (
	"errors"
	"math"
)

const (
	headerSize = 4
	pixelSize  = 3

	// MaxWidth is the widest image that fits in the header
	MaxWidth = math.MaxUint16

	maxInt = int(^uint(0) >> 1)
)

var (
	// ErrDimensionOverflow is returned when an image is too wide for the
	// header or too big to hold in memory
	ErrDimensionOverflow = errors.New("pixelmap: image dimensions too large")

	// ErrTruncated is returned when decoding a pixelmap that doesn't hold
	// a whole number of rows
	ErrTruncated = errors.New("pixelmap: truncated data")
)

// Options are the playback parameters stored in the header.
type Options struct {
	// Delay is the number of milliseconds each frame is shown for
	Delay uint8
	// Repeat is the number of times the player repeats the file
	Repeat uint8
}

// Size returns the encoded size in bytes of a width by height pixelmap.
func Size(width, height int) (int, error) {
	if width < 0 || height < 0 || width > MaxWidth {
		return 0, ErrDimensionOverflow
	}
	if width == 0 || height == 0 {
		return headerSize, nil
	}
	if height > (maxInt-headerSize)/(width*pixelSize) {
		return 0, ErrDimensionOverflow
	}
	return headerSize + width*height*pixelSize, nil
}
