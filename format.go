package imgconv

import "path/filepath"

// Format is one of the closed set of supported file formats.
type Format int

const (
	FormatUnknown Format = iota
	FormatBMP
	FormatJPEG
	FormatPPM
)

func (f Format) String() string {
	switch f {
	case FormatBMP:
		return "bmp"
	case FormatJPEG:
		return "jpeg"
	case FormatPPM:
		return "ppm"
	}
	return "unknown"
}

// extensions maps a case-sensitive file extension to its format.
var extensions = map[string]Format{
	".bmp":  FormatBMP,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".ppm":  FormatPPM,
}

// codecs holds one shared, stateless codec per known format.
var codecs = [...]Codec{
	FormatBMP:  &fileCodec{decode: DecodeBMP, encode: EncodeBMP},
	FormatJPEG: JPEGCodec{},
	FormatPPM:  &fileCodec{decode: DecodePPM, encode: EncodePPM},
}

// Classify returns the format named by the extension of path.
// Matching is case sensitive and never looks at file contents.
func Classify(path string) Format {
	return extensions[filepath.Ext(path)]
}

// CodecFor returns the codec of f, or false if f is FormatUnknown or
// out of range.
func CodecFor(f Format) (Codec, bool) {
	if f <= FormatUnknown || int(f) >= len(codecs) {
		return nil, false
	}
	return codecs[f], true
}

// CodecForPath is CodecFor(Classify(path)).
func CodecForPath(path string) (Codec, bool) {
	return CodecFor(Classify(path))
}
