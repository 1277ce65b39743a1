package asciiart

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWidth is wrapped by InvalidWidthError
	ErrInvalidWidth = errors.New("invalid width")
	// ErrRaggedRows is returned by Format when the glyphs do not fill every row
	ErrRaggedRows = errors.New("glyph count is not a multiple of the row width")
	// ErrTargetTooLarge is returned by Convert when the resized image would exceed MaxWidth or MaxPixels
	ErrTargetTooLarge = errors.New("target size too large")
	// ErrUnknownFilter is returned by ParseFilter
	ErrUnknownFilter = errors.New("unknown resampling filter")
	// ErrUnknownLuminanceMode is returned by ParseLuminanceMode
	ErrUnknownLuminanceMode = errors.New("unknown luminance mode")
)

/*
LoadError is returned when an image could not be opened or decoded. It carries the path that was requested and the underlying cause, which can be
reached through errors.Unwrap / errors.As (eg. to check for fs.ErrNotExist or image.ErrFormat).
*/
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to open image file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// InvalidWidthError reports a width input that was replaced by DefaultWidth.
type InvalidWidthError struct {
	Input string
}

func (e *InvalidWidthError) Error() string {
	return fmt.Sprintf("invalid width %q, using default of %d", e.Input, DefaultWidth)
}

func (e *InvalidWidthError) Unwrap() error {
	return ErrInvalidWidth
}
