package asciiart

import (
	"image"
	"io"

	// Decoders registered with image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spf13/afero"
)

/*
Load opens path on fsys and decodes it into an image. It returns the decoded image and the format name that image.Decode detected (eg. "png").

Any failure (missing file, permission error, unknown or corrupt format) is returned as a *LoadError. The file is always closed before Load returns.
*/
func Load(fsys afero.Fs, path string) (image.Image, string, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, "", &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := DecodeReader(f)
	if err != nil {
		return nil, "", &LoadError{Path: path, Err: err}
	}

	return img, format, nil
}

// DecodeReader decodes an image from r using every registered decoder.
func DecodeReader(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
