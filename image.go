package imgconv

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Color is one 8-bit RGBA pixel, not alpha-premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Black returns opaque black, the fill used by decoders.
func Black() Color {
	return Color{A: 0xff}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Image is an in-memory raster of width*height pixels stored row by row,
// top row first.
//
// The zero Image has no pixels and reports false from IsValid. Decoders
// return it on failure.
type Image struct {
	w, h int
	pix  []Color
}

// NewImage returns a w*h image with every pixel set to fill.
// It panics if w or h is negative.
func NewImage(w, h int, fill Color) Image {
	if w < 0 || h < 0 {
		panic("imgconv: negative image dimensions")
	}
	pix := make([]Color, w*h)
	for i := range pix {
		pix[i] = fill
	}
	return Image{w: w, h: h, pix: pix}
}

// FromImage copies any image.Image into a new Image whose origin is the
// top-left corner of m's bounds.
func FromImage(m image.Image) Image {
	b := m.Bounds()
	dst := NewImage(b.Dx(), b.Dy(), Black())
	if !dst.IsValid() {
		return Image{}
	}
	draw.Copy(&dst, image.Point{}, m, b, draw.Src, nil)
	return dst
}

func (m Image) Width() int  { return m.w }
func (m Image) Height() int { return m.h }

// IsValid reports whether m has a positive width and height.
func (m Image) IsValid() bool {
	return m.w > 0 && m.h > 0
}

// Row returns row y. The slice aliases m's pixels.
func (m Image) Row(y int) []Color {
	if y < 0 || y >= m.h {
		panic("imgconv: row out of range")
	}
	return m.pix[y*m.w : (y+1)*m.w : (y+1)*m.w]
}

// Pixel returns the pixel at (x, y). It panics if the point is outside m.
func (m Image) Pixel(x, y int) Color {
	return m.pix[m.offset(x, y)]
}

// SetPixel sets the pixel at (x, y). It panics if the point is outside m.
func (m Image) SetPixel(x, y int, c Color) {
	m.pix[m.offset(x, y)] = c
}

func (m Image) offset(x, y int) int {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		panic("imgconv: pixel out of range")
	}
	return y*m.w + x
}

// ColorModel implements image.Image.
func (m Image) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (m Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.w, m.h) }

// At implements image.Image. Points outside m are transparent.
func (m Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return color.NRGBA{}
	}
	return m.pix[y*m.w+x]
}

// Set implements draw.Image. Points outside m are ignored.
func (m *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	m.pix[y*m.w+x] = Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
