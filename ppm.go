package imgconv

import (
	"io"

	pnm "github.com/jbuchbinder/gopnm"
)

// DecodePPM reads a PPM image from r. Every pixel of the result is
// opaque.
func DecodePPM(r io.Reader) (Image, error) {
	img, err := pnm.Decode(r)
	if err != nil {
		return Image{}, err
	}
	m := FromImage(img)
	if !m.IsValid() {
		return Image{}, FormatError("empty ppm image")
	}
	return m, nil
}

// EncodePPM writes the RGB channels of m to w as a binary PPM image.
func EncodePPM(w io.Writer, m Image) error {
	if !m.IsValid() {
		return ErrInvalidImage
	}
	// pnm premultiplies through the color model, so hand it opaque rows.
	return pnm.Encode(w, rgbRows(m), pnm.PPM)
}
