package pixelmap

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
)

var errShortEncode = errors.New("pixelmap: encoded length mismatch")

type encoder struct {
	m    image.Image
	b    image.Rectangle
	o    Options
	size int
}

func newEncoder(m image.Image, o *Options) (*encoder, error) {
	b := m.Bounds()
	size, err := Size(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	e := &encoder{m: m, b: b, size: size}
	if o != nil {
		e.o = *o
	}
	return e, nil
}

func (e *encoder) appendHeader(dst []byte) []byte {
	var tmp [headerSize]byte
	binary.LittleEndian.PutUint16(tmp[0:2], uint16(e.b.Dx()))
	tmp[2] = e.o.Delay
	tmp[3] = e.o.Repeat
	return append(dst, tmp[:]...)
}

// Colors are taken as-is, without premultiplying by alpha, then alpha is
// dropped
func (e *encoder) appendRow(dst []byte, y int) []byte {
	switch m := e.m.(type) {
	case *image.NRGBA:
		for x := e.b.Min.X; x < e.b.Max.X; x++ {
			i := m.PixOffset(x, y)
			dst = append(dst, m.Pix[i], m.Pix[i+1], m.Pix[i+2])
		}
	case *image.Paletted:
		for x := e.b.Min.X; x < e.b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.Palette[m.ColorIndexAt(x, y)]).(color.NRGBA)
			dst = append(dst, c.R, c.G, c.B)
		}
	default:
		for x := e.b.Min.X; x < e.b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			dst = append(dst, c.R, c.G, c.B)
		}
	}
	return dst
}

// Marshal returns the pixelmap encoding of m.
func Marshal(m image.Image, o *Options) ([]byte, error) {
	e, err := newEncoder(m, o)
	if err != nil {
		return nil, err
	}

	b := make([]byte, 0, e.size)
	b = e.appendHeader(b)
	for y := e.b.Min.Y; y < e.b.Max.Y; y++ {
		b = e.appendRow(b, y)
	}

	if len(b) != e.size || cap(b) != e.size {
		return nil, errShortEncode
	}

	return b, nil
}

// Encode writes the Image m to w in pixelmap format. The output is
// identical to Marshal but only one row is held in memory at a time.
func Encode(w io.Writer, m image.Image, o *Options) error {
	e, err := newEncoder(m, o)
	if err != nil {
		return err
	}

	if _, err := w.Write(e.appendHeader(nil)); err != nil {
		return err
	}

	row := make([]byte, 0, e.b.Dx()*pixelSize)
	for y := e.b.Min.Y; y < e.b.Max.Y; y++ {
		if _, err := w.Write(e.appendRow(row[:0], y)); err != nil {
			return err
		}
	}

	return nil
}
