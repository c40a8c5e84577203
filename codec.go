package imgconv

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

// Codec loads and saves images of one file format.
//
// Load returns the zero Image together with a non-nil error on any
// failure, including a missing or unreadable file. Save returns nil only
// if the whole file was written; on failure nothing is left at path.
type Codec interface {
	Load(path string) (Image, error)
	Save(path string, m Image) error
}

// fileCodec adapts a stream decoder and encoder to files.
type fileCodec struct {
	decode func(io.Reader) (Image, error)
	encode func(io.Writer, Image) error
}

func (c fileCodec) Load(path string) (Image, error) {
	return loadFile(path, c.decode)
}

func (c fileCodec) Save(path string, m Image) error {
	return saveFile(path, m, c.encode)
}

func loadFile(path string, decode func(io.Reader) (Image, error)) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, err
	}
	defer f.Close()
	m, err := decode(bufio.NewReader(f))
	if err != nil {
		return Image{}, err
	}
	return m, nil
}

// saveFile encodes m into a temporary file next to path and renames it
// over path once every write and the close have succeeded.
// An existing file keeps its mode; a new one gets the mode os.Create
// would give it.
func saveFile(path string, m Image, encode func(io.Writer, Image) error) (err error) {
	if !m.IsValid() {
		return ErrInvalidImage
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	perm, keep := os.FileMode(0o666), false
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		perm, keep = fi.Mode().Perm(), true
	}
	f, err := createTemp(dir, base, perm)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = encode(bw, m); err == nil {
		err = bw.Flush()
	}
	if err == nil && keep {
		// The umask applied at creation may have narrowed perm.
		err = f.Chmod(perm)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// createTemp is os.CreateTemp with a caller-chosen mode, so that the
// umask applies the way it does for os.Create.
func createTemp(dir, base string, perm os.FileMode) (*os.File, error) {
	for i := 0; ; i++ {
		name := filepath.Join(dir, "."+base+".tmp"+strconv.FormatUint(uint64(rand.Uint32()), 10))
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if os.IsExist(err) && i < 10000 {
			continue
		}
		return f, err
	}
}

// Load reads the image at path with the codec chosen by its extension.
func Load(path string) (Image, error) {
	c, ok := CodecForPath(path)
	if !ok {
		return Image{}, ErrUnknownFormat
	}
	return c.Load(path)
}

// Save writes m to path with the codec chosen by its extension.
func Save(path string, m Image, opts ...Option) error {
	c, ok := codecFor(Classify(path), newOptions(opts))
	if !ok {
		return ErrUnknownFormat
	}
	return c.Save(path, m)
}

// Convert loads in and saves it as out, each in the format named by its
// extension. Both formats are resolved before any file is touched.
// A failure is returned as a *ConvertError.
func Convert(in, out string, opts ...Option) error {
	o := newOptions(opts)
	inCodec, ok := codecFor(Classify(in), o)
	if !ok {
		return &ConvertError{Stage: StageInputFormat, Path: in, Err: ErrUnknownFormat}
	}
	outCodec, ok := codecFor(Classify(out), o)
	if !ok {
		return &ConvertError{Stage: StageOutputFormat, Path: out, Err: ErrUnknownFormat}
	}
	m, err := inCodec.Load(in)
	if err != nil {
		return &ConvertError{Stage: StageLoad, Path: in, Err: err}
	}
	o.logf("loaded %s: %dx%d", in, m.Width(), m.Height())
	if err := outCodec.Save(out, m); err != nil {
		return &ConvertError{Stage: StageSave, Path: out, Err: err}
	}
	o.logf("saved %s", out)
	return nil
}
