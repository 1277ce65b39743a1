package asciiart

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/gift"
	"github.com/lucasb-eyer/go-colorful"
)

// luminanceModes is the private struct that functions as a namespace for the enum LuminanceMode
type luminanceModes struct{}

// LuminanceModes is the public instance of luminanceModes. Do not reassign this variable
var LuminanceModes = luminanceModes{}

// LuminanceMode selects how a color pixel is reduced to a single brightness sample.
type LuminanceMode int

/*
Luma uses the standard perceptual luma weighting (0.299 R + 0.587 G + 0.114 B). This is the default.
*/
func (l luminanceModes) Luma() LuminanceMode { return LuminanceMode(0) }

/*
Lightness uses the CIE L* lightness of the pixel, stored as the sRGB gray that has the same L*. It tends to keep more detail in dark areas than Luma.
*/
func (l luminanceModes) Lightness() LuminanceMode { return LuminanceMode(1) }

func (m LuminanceMode) String() string {
	switch m {
	case LuminanceModes.Luma():
		return "luma"
	case LuminanceModes.Lightness():
		return "lightness"
	default:
		return fmt.Sprintf("LuminanceMode(%d)", int(m))
	}
}

// ParseLuminanceMode interprets a mode name (case insensitive). An empty name selects LuminanceModes.Luma().
func ParseLuminanceMode(name string) (LuminanceMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "luma":
		return LuminanceModes.Luma(), nil
	case "lightness", "lab":
		return LuminanceModes.Lightness(), nil
	default:
		return LuminanceModes.Luma(), fmt.Errorf("%w: %q", ErrUnknownLuminanceMode, name)
	}
}

/*
Grayscale reduces src to a single channel image of the same size. The result always starts at (0, 0) and is tightly packed (Stride == width),
so its Pix field is the row-major luminance grid.

Grayscaling an image that is already gray returns the same samples in both modes.
*/
func Grayscale(src image.Image, mode LuminanceMode) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if bounds.Empty() {
		return dst
	}

	switch mode {
	case LuminanceModes.Lightness():
		grayscaleLightness(dst, src)
	default:
		gift.New(gift.Grayscale()).Draw(dst, src)
	}

	return dst
}

func grayscaleLightness(dst *image.Gray, src image.Image) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	for y := range height {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+width]
		for x := range width {
			c, ok := colorful.MakeColor(src.At(bounds.Min.X+x, bounds.Min.Y+y))
			if !ok {
				// fully transparent
				row[x] = 0
				continue
			}

			l, _, _ := c.Lab()
			r, _, _ := colorful.Lab(l, 0, 0).Clamped().RGB255()
			row[x] = r
		}
	}
}
