package imgconv

import (
	"image"
	"image/jpeg"
	"io"
)

// JPEGCodec reads and writes baseline JPEG files through image/jpeg.
// The zero value writes with jpeg.DefaultQuality.
type JPEGCodec struct {
	Quality int
}

func (c JPEGCodec) Load(path string) (Image, error) {
	return loadFile(path, DecodeJPEG)
}

func (c JPEGCodec) Save(path string, m Image) error {
	return saveFile(path, m, func(w io.Writer, m Image) error {
		return EncodeJPEG(w, m, c.Quality)
	})
}

// DecodeJPEG reads a JPEG image from r. Every pixel of the result is
// opaque.
func DecodeJPEG(r io.Reader) (Image, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return Image{}, err
	}
	m := FromImage(img)
	if !m.IsValid() {
		return Image{}, FormatError("empty jpeg image")
	}
	return m, nil
}

// EncodeJPEG writes the RGB channels of m to w as a JPEG image.
// A quality of zero means jpeg.DefaultQuality.
func EncodeJPEG(w io.Writer, m Image, quality int) error {
	if !m.IsValid() {
		return ErrInvalidImage
	}
	if quality == 0 {
		quality = jpeg.DefaultQuality
	}
	return jpeg.Encode(w, rgbRows(m), &jpeg.Options{Quality: quality})
}

// rgbRows lays out m as opaque top-to-bottom RGB rows.
func rgbRows(m Image) *image.RGBA {
	dst := image.NewRGBA(m.Bounds())
	for y := 0; y < m.h; y++ {
		p := dst.Pix[y*dst.Stride:]
		for x, c := range m.Row(y) {
			p[4*x+0] = c.R
			p[4*x+1] = c.G
			p[4*x+2] = c.B
			p[4*x+3] = 0xff
		}
	}
	return dst
}
