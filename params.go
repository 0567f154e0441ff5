package pixelanimator

import "github.com/bodgit/pixelanimator/pixelmap"

const (
	minRepeatCount = 1
	maxRepeatCount = 255
	minFrameTime   = 0
	maxFrameTime   = 255
	minColors      = 2
	maxColors      = 256
)

// Params holds everything needed for a single conversion.
type Params struct {
	RepeatCount int
	FrameTime   int
	Input       string
	Output      string

	// Colors limits the number of distinct colors, zero disables it
	Colors int
}

// Validate checks each parameter fits in the pixelmap header.
func (p *Params) Validate() error {
	if p.RepeatCount < minRepeatCount || p.RepeatCount > maxRepeatCount {
		return &RangeError{"repeat count", p.RepeatCount, minRepeatCount, maxRepeatCount}
	}
	if p.FrameTime < minFrameTime || p.FrameTime > maxFrameTime {
		return &RangeError{"frametime", p.FrameTime, minFrameTime, maxFrameTime}
	}
	if p.Colors != 0 && (p.Colors < minColors || p.Colors > maxColors) {
		return &RangeError{"colors", p.Colors, minColors, maxColors}
	}
	return nil
}

// Options returns the header options. Validate should be called first.
func (p *Params) Options() *pixelmap.Options {
	return &pixelmap.Options{
		Delay:  uint8(p.FrameTime),
		Repeat: uint8(p.RepeatCount),
	}
}
