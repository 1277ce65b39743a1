package asciiart

import (
	"log/slog"

	"github.com/spf13/afero"
)

/*
WithFilter specifies which resampling kernel is used to shrink the image. It is recommended to keep the default Filters.Box(), which averages
every covered pixel and so keeps thin features visible at small widths.
*/
func WithFilter(filter Filter) AsciiOption {
	return func(a *AsciiConverter) {
		a.Filter = filter
	}
}

/*
WithLuminanceMode specifies how a color pixel is turned into a brightness value (0-255) before being mapped onto a character.
*/
func WithLuminanceMode(mode LuminanceMode) AsciiOption {
	return func(a *AsciiConverter) {
		a.LuminanceMode = mode
	}
}

// WithFs specifies the filesystem ConvertFile() reads images from. A nil fs keeps the OS filesystem
func WithFs(fs afero.Fs) AsciiOption {
	return func(a *AsciiConverter) {
		if fs != nil {
			a.Fs = fs
		}
	}
}

// WithLogger specifies where debug output about each stage goes. A nil logger keeps discarding everything
func WithLogger(logger *slog.Logger) AsciiOption {
	return func(a *AsciiConverter) {
		if logger != nil {
			a.Logger = logger
		}
	}
}
