// The asciiart package implements the logic for generating grayscale ascii art from some image.
// By default, the package supports .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp. See ConvertFile(), ConvertBytes() and ConvertReader()
// To support other image formats, either use Convert() instead or import your custom decoders like so:
/*
import (
	... <other imports>

	_ "mycustomdecoder/mycustomformat" // Here is your custom file format

	...
)
*/
// The conversion is a straight pipeline: Resize -> Grayscale -> MapGlyphs -> Format.
// Every stage is exported so it can be used (and tested) on its own.
//
// Start by calling New() or NewDefault(). Pass the options into the constructors (see options.go).
// A Converter only holds configuration, so one instance can be reused for any number of conversions.
package asciiart
