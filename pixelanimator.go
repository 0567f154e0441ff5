/*
Package pixelanimator is a library for converting image files to the
uncompressed RGB pixelmap format played back by the Player Arduino sketch.
*/
package pixelanimator

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/pixelanimator/pixelmap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PixelAnimator converts images to pixelmap files.
type PixelAnimator struct {
	db     *DB
	out    *log.Logger
	logger *log.Logger
}

// New returns a PixelAnimator. Progress is reported on out, diagnostics on
// logger. db may be nil to disable caching.
func New(db *DB, out, logger *log.Logger) *PixelAnimator {
	return &PixelAnimator{
		db:     db,
		out:    out,
		logger: logger,
	}
}

func exists(file string) (bool, error) {
	_, err := os.Stat(file)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

func (pa *PixelAnimator) encode(b []byte, p *Params) ([]byte, int, error) {
	m, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, 0, &IOError{"error decoding input file", p.Input, err}
	}
	pa.logger.Printf("Decoded %s image, %dx%d\n", format, m.Bounds().Dx(), m.Bounds().Dy())

	if p.Colors > 0 {
		m = reduceColors(m, p.Colors)
		pa.logger.Printf("Reduced to %d colors\n", p.Colors)
	}

	pm, err := pixelmap.Marshal(m, p.Options())
	if err != nil {
		return nil, 0, err
	}
	return pm, m.Bounds().Dx(), nil
}

// Convert converts the input image named in p to a pixelmap and writes it
// to the output file, returning the number of bytes written. Nothing is
// written unless the whole pixelmap could be encoded.
func (pa *PixelAnimator) Convert(p *Params) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	ok, err := exists(p.Input)
	if err != nil {
		return 0, &IOError{"error reading input file", p.Input, err}
	}
	if !ok {
		return 0, &NotFoundError{p.Input}
	}

	ok, err = exists(p.Output)
	if err != nil {
		return 0, &IOError{"error writing output file", p.Output, err}
	}
	if ok {
		pa.out.Printf("overwriting output file '%s'\n", p.Output)
	}

	pa.out.Printf("repeatcount: %d\n", p.RepeatCount)
	pa.out.Printf("frametime: %d\n", p.FrameTime)
	pa.out.Printf("inputfile: %s\n", p.Input)
	pa.out.Printf("outputfile: %s\n", p.Output)

	in, err := ioutil.ReadFile(p.Input)
	if err != nil {
		return 0, &IOError{"error reading input file", p.Input, err}
	}

	var (
		b   []byte
		key string
	)
	if pa.db != nil {
		key = cacheKey(in, p.Options(), p.Colors)
		if b, err = pa.db.Find(key); err != nil {
			return 0, err
		}
		if b != nil {
			pa.logger.Printf("Using cached pixelmap %s\n", key)
		}
	}

	if b == nil {
		var width int
		if b, width, err = pa.encode(in, p); err != nil {
			return 0, err
		}
		if pa.db != nil {
			if err := pa.db.Add(key, width, b); err != nil {
				return 0, err
			}
		}
	}

	if err := ioutil.WriteFile(p.Output, b, 0644); err != nil {
		return 0, &IOError{"error writing output file", p.Output, err}
	}

	pa.out.Printf("output file size: %d\n", len(b))

	return len(b), nil
}
