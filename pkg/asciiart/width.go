package asciiart

import (
	"strconv"
	"strings"
)

/*
ParseWidth interprets a user supplied width. An empty input means DefaultWidth.

Anything that is not a positive integer also gives DefaultWidth, together with an *InvalidWidthError so the caller can report the substitution.
The returned width is always usable, so the error never needs to abort a conversion.
*/
func ParseWidth(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return DefaultWidth, nil
	}

	width, err := strconv.Atoi(trimmed)
	if err != nil || width <= 0 {
		return DefaultWidth, &InvalidWidthError{Input: input}
	}

	return width, nil
}
