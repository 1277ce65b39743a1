package asciiart

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/disintegration/gift"
)

const (
	// DefaultWidth is the target width used when none (or an invalid one) is given
	DefaultWidth = 100
	// AspectCorrection squashes the height because a terminal character is roughly twice as tall as it is wide
	AspectCorrection = 0.55
	// MaxWidth is the widest art Convert produces
	MaxWidth = 1 << 16
	// MaxPixels caps width * height of the resized image
	MaxPixels = 1 << 26
)

// filters is the private struct that functions as a namespace for the enum Filter
type filters struct{}

// Filters is the public instance of filters. Do not reassign this variable
var Filters = filters{}

// Filter selects the resampling kernel used by Resize.
type Filter int

// Box averages every source pixel covered by the destination pixel. This is the default.
func (f filters) Box() Filter { return Filter(0) }

// Nearest picks the closest source pixel. Fastest, but aliases badly on large downscales.
func (f filters) Nearest() Filter { return Filter(1) }

// Linear uses a bilinear (tent) kernel.
func (f filters) Linear() Filter { return Filter(2) }

// Cubic uses a bicubic kernel.
func (f filters) Cubic() Filter { return Filter(3) }

// Lanczos uses a 3-lobe lanczos kernel.
func (f filters) Lanczos() Filter { return Filter(4) }

var filterNames = map[Filter]string{
	Filters.Box():     "box",
	Filters.Nearest(): "nearest",
	Filters.Linear():  "linear",
	Filters.Cubic():   "cubic",
	Filters.Lanczos(): "lanczos",
}

func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter interprets a filter name (case insensitive). An empty name selects Filters.Box().
func ParseFilter(name string) (Filter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Filters.Box(), nil
	}

	for f, n := range filterNames {
		if n == name {
			return f, nil
		}
	}

	return Filters.Box(), fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

func (f Filter) resampling() gift.Resampling {
	switch f {
	case Filters.Nearest():
		return gift.NearestNeighborResampling
	case Filters.Linear():
		return gift.LinearResampling
	case Filters.Cubic():
		return gift.CubicResampling
	case Filters.Lanczos():
		return gift.LanczosResampling
	default:
		return gift.BoxResampling
	}
}

/*
TargetSize computes the size of the resized image for a source of bounds src:

	width  = targetWidth
	height = round(targetWidth * (srcHeight / srcWidth) * AspectCorrection)

The height may be 0 for very wide images (and is always 0 for an empty source). A non positive targetWidth gives an empty size.
*/
func TargetSize(src image.Rectangle, targetWidth int) image.Point {
	srcWidth, srcHeight := src.Dx(), src.Dy()
	if targetWidth <= 0 {
		return image.Point{}
	}
	if srcWidth <= 0 || srcHeight <= 0 {
		return image.Point{X: targetWidth}
	}

	aspectRatio := float64(srcHeight) / float64(srcWidth)
	height := int(math.Round(float64(targetWidth) * aspectRatio * AspectCorrection))

	return image.Point{X: targetWidth, Y: height}
}

// checkTargetSize rejects sizes that are too large to allocate, before any pixel buffer exists.
func checkTargetSize(src image.Rectangle, targetWidth int) error {
	if targetWidth > MaxWidth {
		return fmt.Errorf("%w: width %d exceeds %d", ErrTargetTooLarge, targetWidth, MaxWidth)
	}

	size := TargetSize(src, targetWidth)
	if size.X > 0 && size.Y > MaxPixels/size.X {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTargetTooLarge, size.X, size.Y, MaxPixels)
	}

	return nil
}

/*
Resize scales src to exactly targetWidth columns, computing the height with TargetSize. The source image is never modified, a new image is always returned.

If the computed height is 0, the result is a well formed image with no pixels (targetWidth x 0). The stages downstream turn that into empty output.
Resize allocates whatever TargetSize asks for, Convert rejects sizes over MaxWidth or MaxPixels before calling it.
*/
func Resize(src image.Image, targetWidth int, filter Filter) image.Image {
	size := TargetSize(src.Bounds(), targetWidth)
	if size.X <= 0 || size.Y <= 0 {
		return image.NewRGBA(image.Rect(0, 0, max(size.X, 0), 0))
	}

	g := gift.New(gift.Resize(size.X, size.Y, filter.resampling()))
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)

	return dst
}
