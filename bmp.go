// readUint16 and readUint32 are derived from golang.org/x/image/bmp:
//
// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgconv

import (
	"image"
	"image/color"
	"io"
	"math"
)

// The only BMP variant read and written here is an uncompressed 24-bit
// image with a BITMAPINFOHEADER, rows stored bottom-up in B,G,R order.
const (
	bmpSignature    = 0x4d42 // "BM"
	fileHeaderLen   = 14
	infoHeaderLen   = 40
	bmpDataOffset   = fileHeaderLen + infoHeaderLen
	bmpPlanes       = 1
	bmpBitsPerPixel = 24
	bmpCompression  = 0
	// 300 DPI.
	bmpPixelsPerMeter  = 11811
	bmpColorsUsed      = 0
	bmpColorsImportant = 0x1000000
)

func readUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func readUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putUint16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// bmpStride returns the length of one stored row: three bytes per pixel
// rounded up to a multiple of four.
func bmpStride(width int) int {
	return 4 * ((width*3 + 3) / 4)
}

// bmpHeader holds the file header followed by the info header.
type bmpHeader struct {
	signature       uint16
	fileSize        uint32
	reserved        uint32
	dataOffset      uint32
	infoLen         uint32
	width           int32
	height          int32
	planes          uint16
	bitsPerPixel    uint16
	compression     uint32
	dataSize        uint32
	xPixelsPerMeter int32
	yPixelsPerMeter int32
	colorsUsed      uint32
	colorsImportant uint32
}

func newBMPHeader(width, height int) bmpHeader {
	dataSize := uint32(bmpStride(width) * height)
	return bmpHeader{
		signature:       bmpSignature,
		fileSize:        bmpDataOffset + dataSize,
		dataOffset:      bmpDataOffset,
		infoLen:         infoHeaderLen,
		width:           int32(width),
		height:          int32(height),
		planes:          bmpPlanes,
		bitsPerPixel:    bmpBitsPerPixel,
		compression:     bmpCompression,
		dataSize:        dataSize,
		xPixelsPerMeter: bmpPixelsPerMeter,
		yPixelsPerMeter: bmpPixelsPerMeter,
		colorsUsed:      bmpColorsUsed,
		colorsImportant: bmpColorsImportant,
	}
}

// marshal packs h into the first bmpDataOffset bytes of b.
func (h *bmpHeader) marshal(b []byte) {
	_ = b[bmpDataOffset-1]
	putUint16(b[0:2], h.signature)
	putUint32(b[2:6], h.fileSize)
	putUint32(b[6:10], h.reserved)
	putUint32(b[10:14], h.dataOffset)
	putUint32(b[14:18], h.infoLen)
	putUint32(b[18:22], uint32(h.width))
	putUint32(b[22:26], uint32(h.height))
	putUint16(b[26:28], h.planes)
	putUint16(b[28:30], h.bitsPerPixel)
	putUint32(b[30:34], h.compression)
	putUint32(b[34:38], h.dataSize)
	putUint32(b[38:42], uint32(h.xPixelsPerMeter))
	putUint32(b[42:46], uint32(h.yPixelsPerMeter))
	putUint32(b[46:50], h.colorsUsed)
	putUint32(b[50:54], h.colorsImportant)
}

func (h *bmpHeader) unmarshal(b []byte) {
	_ = b[bmpDataOffset-1]
	h.signature = readUint16(b[0:2])
	h.fileSize = readUint32(b[2:6])
	h.reserved = readUint32(b[6:10])
	h.dataOffset = readUint32(b[10:14])
	h.infoLen = readUint32(b[14:18])
	h.width = int32(readUint32(b[18:22]))
	h.height = int32(readUint32(b[22:26]))
	h.planes = readUint16(b[26:28])
	h.bitsPerPixel = readUint16(b[28:30])
	h.compression = readUint32(b[30:34])
	h.dataSize = readUint32(b[34:38])
	h.xPixelsPerMeter = int32(readUint32(b[38:42]))
	h.yPixelsPerMeter = int32(readUint32(b[42:46]))
	h.colorsUsed = readUint32(b[46:50])
	h.colorsImportant = readUint32(b[50:54])
}

// validate accepts exactly the headers that newBMPHeader produces.
func (h *bmpHeader) validate() error {
	switch {
	case h.signature != bmpSignature:
		return FormatError("bad signature")
	case h.reserved != 0:
		return FormatError("reserved field is not zero")
	case h.infoLen != infoHeaderLen:
		return UnsupportedError("info header size")
	case h.dataOffset != bmpDataOffset:
		return UnsupportedError("pixel data offset")
	case h.planes != bmpPlanes:
		return UnsupportedError("color planes")
	case h.bitsPerPixel != bmpBitsPerPixel:
		return UnsupportedError("bits per pixel")
	case h.compression != bmpCompression:
		return UnsupportedError("compression")
	case h.xPixelsPerMeter != bmpPixelsPerMeter || h.yPixelsPerMeter != bmpPixelsPerMeter:
		return UnsupportedError("pixel density")
	case h.colorsUsed != bmpColorsUsed:
		return UnsupportedError("colors used")
	case h.colorsImportant != bmpColorsImportant:
		return UnsupportedError("important colors")
	case h.width <= 0 || h.height <= 0:
		return FormatError("non-positive dimensions")
	}
	return nil
}

func readBMPHeader(r io.Reader) (h bmpHeader, err error) {
	var b [bmpDataOffset]byte
	if _, err = io.ReadFull(r, b[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return
	}
	h.unmarshal(b[:])
	err = h.validate()
	return
}

// DecodeBMPConfig returns the color model and dimensions of a BMP image
// without decoding the entire image.
func DecodeBMPConfig(r io.Reader) (image.Config, error) {
	h, err := readBMPHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.width),
		Height:     int(h.height),
	}, nil
}

// DecodeBMP reads a 24-bit uncompressed BMP image from r.
// On any error it returns the zero Image.
func DecodeBMP(r io.Reader) (Image, error) {
	h, err := readBMPHeader(r)
	if err != nil {
		return Image{}, err
	}
	w, ht := int(h.width), int(h.height)
	if int64(w)*3 > math.MaxInt32 {
		return Image{}, UnsupportedError("image too large")
	}
	stride := bmpStride(w)
	if int64(ht) > math.MaxInt32/int64(stride) {
		return Image{}, UnsupportedError("image too large")
	}
	// All pixel data must arrive before the image is allocated, so a
	// forged header cannot force a huge allocation on a short file.
	data, err := readFull(r, stride*ht)
	if err != nil {
		return Image{}, err
	}
	m := NewImage(w, ht, Black())
	for y := ht - 1; y >= 0; y-- {
		b := data[(ht-1-y)*stride:]
		row := m.Row(y)
		for x := range row {
			row[x] = Color{R: b[3*x+2], G: b[3*x+1], B: b[3*x], A: 0xff}
		}
	}
	return m, nil
}

// EncodeBMP writes m to w as a 24-bit uncompressed BMP image.
// The alpha channel is dropped.
func EncodeBMP(w io.Writer, m Image) error {
	if !m.IsValid() {
		return ErrInvalidImage
	}
	stride := bmpStride(m.w)
	if int64(m.h) > (math.MaxInt32-bmpDataOffset)/int64(stride) {
		return UnsupportedError("image too large")
	}
	var hb [bmpDataOffset]byte
	h := newBMPHeader(m.w, m.h)
	h.marshal(hb[:])
	if _, err := w.Write(hb[:]); err != nil {
		return err
	}
	// The tail of b past 3*width stays zero and becomes the row padding.
	b := make([]byte, stride)
	for y := m.h - 1; y >= 0; y-- {
		for x, c := range m.Row(y) {
			b[3*x+0] = c.B
			b[3*x+1] = c.G
			b[3*x+2] = c.R
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}
