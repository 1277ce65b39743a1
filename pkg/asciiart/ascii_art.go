package asciiart

import (
	"bytes"
	"image"
	"io"
	"log/slog"

	"github.com/spf13/afero"
)

type AsciiConverter struct {
	// Filter is the resampling kernel used to shrink the image to the target width. See WithFilter()
	Filter Filter

	// LuminanceMode decides how color pixels are reduced to brightness. See WithLuminanceMode()
	LuminanceMode LuminanceMode

	// Fs is the filesystem ConvertFile() reads from. Defaults to the OS filesystem
	Fs afero.Fs

	// Logger receives debug output about each stage. Defaults to discarding everything
	Logger *slog.Logger
}

// AsciiOption configures an AsciiConverter. See options.go
type AsciiOption func(*AsciiConverter)

/*
NewDefault initializes an asciiart instance with default parameters.

- Filter: Filters.Box()
- LuminanceMode: LuminanceModes.Luma()
- Fs: afero.NewOsFs()
- Logger: <discards everything>
*/
func NewDefault() *AsciiConverter {
	return &AsciiConverter{
		Filter:        Filters.Box(),
		LuminanceMode: LuminanceModes.Luma(),
		Fs:            afero.NewOsFs(),
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// New initializes an asciiart instance with default parameters, then applies options
func New(opts ...AsciiOption) *AsciiConverter {
	ascii := NewDefault()

	for _, o := range opts {
		o(ascii)
	}

	return ascii
}

/*
ConvertFile loads the image at path (from the converter's Fs) and converts it with Convert().

If the image cannot be loaded, an empty string and a *LoadError are returned and nothing else happens.
*/
func (a *AsciiConverter) ConvertFile(path string, targetWidth int) (string, error) {
	img, format, err := Load(a.Fs, path)
	if err != nil {
		a.Logger.Debug("failed to load image", "path", path, "error", err)
		return "", err
	}

	a.Logger.Debug("loaded image", "path", path, "format", format, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	return a.Convert(img, targetWidth)
}

/*
ConvertReader takes an io.Reader that can read the bytes of an image. Image formats supported are jpeg, png, gif, bmp, tiff and webp.

ConvertReader uses image.Decode() under the hood, so register any other decoder you need with a blank import. Decoding failures are returned as-is.
*/
func (a *AsciiConverter) ConvertReader(r io.Reader, targetWidth int) (string, error) {
	img, _, err := DecodeReader(r)
	if err != nil {
		return "", err
	}

	return a.Convert(img, targetWidth)
}

// ConvertBytes takes a byte slice representing an image. See ConvertReader()
func (a *AsciiConverter) ConvertBytes(b []byte, targetWidth int) (string, error) {
	return a.ConvertReader(bytes.NewReader(b), targetWidth)
}

/*
Convert takes an image and generates an ascii art string that is targetWidth characters wide. The height follows the aspect ratio of img,
squashed by AspectCorrection (see TargetSize()).

Every line holds exactly targetWidth characters and ends with a new line. An image whose height rounds to 0 gives an empty string.
A target wider than MaxWidth, or larger than MaxPixels in total, returns ErrTargetTooLarge without allocating anything.
*/
func (a *AsciiConverter) Convert(img image.Image, targetWidth int) (string, error) {
	if err := checkTargetSize(img.Bounds(), targetWidth); err != nil {
		return "", err
	}

	resized := Resize(img, targetWidth, a.Filter)
	resizedBounds := resized.Bounds()
	a.Logger.Debug("resized image",
		"filter", a.Filter.String(),
		"width", resizedBounds.Dx(),
		"height", resizedBounds.Dy(),
	)

	gray := Grayscale(resized, a.LuminanceMode)
	glyphs := MapGlyphs(gray)

	return Format(glyphs, gray.Bounds().Dx())
}
