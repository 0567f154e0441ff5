package pixelmap

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"
	"io/ioutil"
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	width   int
	height  int
	options Options

	image *image.NRGBA

	tmp [headerSize]byte
}

func (d *decoder) readHeader() error {
	if err := readFull(d.r, d.tmp[:]); err != nil {
		return err
	}

	d.width = int(binary.LittleEndian.Uint16(d.tmp[0:2]))
	d.options.Delay = d.tmp[2]
	d.options.Repeat = d.tmp[3]

	return nil
}

// The height isn't stored so it has to be worked out from however many
// whole rows follow the header
func (d *decoder) rows(n int64) (int, error) {
	if d.width == 0 {
		if n != 0 {
			return 0, ErrTruncated
		}
		return 0, nil
	}

	stride := int64(d.width * pixelSize)
	if n%stride != 0 {
		return 0, ErrTruncated
	}
	return int(n / stride), nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return ErrTruncated
	}

	if configOnly {
		n, err := io.Copy(ioutil.Discard, r)
		if err != nil {
			return err
		}
		d.height, err = d.rows(n)
		return err
	}

	b, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}

	if d.height, err = d.rows(int64(len(b))); err != nil {
		return err
	}

	d.image = image.NewNRGBA(image.Rect(0, 0, d.width, d.height))

	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			i := (y*d.width + x) * pixelSize
			d.image.SetNRGBA(x, y, color.NRGBA{b[i], b[i+1], b[i+2], 0xff})
		}
	}

	return nil
}

// Decode reads a pixelmap from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeAll reads a pixelmap from r and returns the image along with the
// playback options from the header.
func DecodeAll(r io.Reader) (*image.NRGBA, *Options, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, nil, err
	}
	return d.image, &d.options, nil
}

// DecodeConfig returns the color model and dimensions of a pixelmap without
// decoding the entire image. The remaining data still has to be read to
// determine the height.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      d.width,
		Height:     d.height,
	}, nil
}
