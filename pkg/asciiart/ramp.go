package asciiart

import "image"

// ramp holds the glyphs from darkest to lightest
const ramp = "@#S%?*+;:,."

const (
	rampLen = len(ramp)
	// rampDivisor maps 0-255 onto ramp indices 0..rampLen-1
	rampDivisor = 256 / (rampLen - 1)
)

// Both fail to compile (constant overflow) unless 255/rampDivisor lands exactly on the last glyph.
const (
	_ = uint8(rampLen - 1 - 255/rampDivisor)
	_ = uint8(255/rampDivisor - (rampLen - 1))
)

// Ramp returns the glyph ramp, index 0 being the darkest glyph.
func Ramp() string {
	return ramp
}

// RampIndex returns the index into Ramp() used for a luminance sample.
func RampIndex(lum uint8) int {
	return int(lum) / rampDivisor
}

// GlyphFor returns the glyph used for a luminance sample.
func GlyphFor(lum uint8) byte {
	return ramp[RampIndex(lum)]
}

/*
MapGlyphs converts every sample of gray into its glyph. The result is row-major and has exactly one glyph per pixel (width * height).
*/
func MapGlyphs(gray *image.Gray) []byte {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	glyphs := make([]byte, 0, width*height)
	for y := range height {
		offset := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for _, lum := range gray.Pix[offset : offset+width] {
			glyphs = append(glyphs, GlyphFor(lum))
		}
	}

	return glyphs
}
