package imgconv

// Option configures Save and Convert.
type Option func(*options)

type options struct {
	jpegQuality int
	logger      func(format string, v ...interface{})
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) logf(format string, v ...interface{}) {
	if o.logger != nil {
		o.logger(format, v...)
	}
}

// WithJPEGQuality sets the quality, 1 to 100, of written JPEG files.
// Zero keeps the default.
func WithJPEGQuality(q int) Option {
	return func(o *options) { o.jpegQuality = q }
}

// WithLogger makes Convert report its progress through logf,
// for example log.Printf.
func WithLogger(logf func(format string, v ...interface{})) Option {
	return func(o *options) { o.logger = logf }
}

// codecFor is CodecFor with the codec settings of o applied.
func codecFor(f Format, o *options) (Codec, bool) {
	if f == FormatJPEG && o.jpegQuality != 0 {
		return JPEGCodec{Quality: o.jpegQuality}, true
	}
	return CodecFor(f)
}
