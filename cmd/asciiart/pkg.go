// This package implements the command line tool that uses the API.
// It provides an easy and reliable interface to quickly generate grayscale ascii art in
// the terminal from an image on the filesystem, and saves the result to ascii_image.txt.
//
// When no image path is given as an argument, the tool asks for the path and the width interactively.
//
// By default, the converter is compatible with .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp file formats
// (See github.com/nebbyJammin/asciigray/pkg/asciiart).
package main
