package asciiart

import (
	"fmt"
	"strings"
)

/*
Format splits glyphs into rows of width glyphs and terminates every row (including the last) with a new line.

A width of 0 (or no glyphs at all) gives an empty string. If glyphs does not fill a whole number of rows, ErrRaggedRows is returned
rather than dropping the trailing partial row.
*/
func Format(glyphs []byte, width int) (string, error) {
	if width <= 0 || len(glyphs) == 0 {
		return "", nil
	}

	if len(glyphs)%width != 0 {
		return "", fmt.Errorf("%w: %d glyphs, width %d", ErrRaggedRows, len(glyphs), width)
	}

	rows := len(glyphs) / width

	var asciiBuilder strings.Builder
	asciiBuilder.Grow((width + 1) * rows) // width + 1 because leave a byte for the new line

	for start := 0; start < len(glyphs); start += width {
		asciiBuilder.Write(glyphs[start : start+width])
		asciiBuilder.WriteByte('\n')
	}

	return asciiBuilder.String(), nil
}
