package imgconv

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat means that the file extension maps to no codec.
	ErrUnknownFormat = errors.New("imgconv: unknown image format")
	// ErrInvalidImage means that an image with a zero width or height
	// was given where pixel data is required.
	ErrInvalidImage = errors.New("imgconv: invalid image")
)

// A FormatError reports that the input is not a valid image of the
// expected format.
type FormatError string

func (e FormatError) Error() string { return "imgconv: invalid format: " + string(e) }

// An UnsupportedError reports that the input uses a valid but
// unimplemented feature.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "imgconv: unsupported feature: " + string(e) }

// Stage names the step of a conversion that failed.
type Stage int

const (
	StageInputFormat Stage = iota + 1
	StageOutputFormat
	StageLoad
	StageSave
)

func (s Stage) String() string {
	switch s {
	case StageInputFormat:
		return "classify input"
	case StageOutputFormat:
		return "classify output"
	case StageLoad:
		return "load"
	case StageSave:
		return "save"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// ConvertError records a failed conversion and the stage it failed at.
type ConvertError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *ConvertError) Error() string {
	return "imgconv: " + e.Stage.String() + " " + e.Path + ": " + e.Err.Error()
}

func (e *ConvertError) Unwrap() error { return e.Err }
