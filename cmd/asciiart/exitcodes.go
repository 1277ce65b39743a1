package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// Exit codes returned by the asciiart binary
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1 // Anything not covered below
	ExitInputError      = 2 // Bad flag, config file or missing image path
	ExitLoadError       = 3 // Image could not be opened or decoded
	ExitIOError         = 4 // Output file could not be written
	ExitConversionError = 5 // Image was loaded but could not be converted
)

// ExitCodeError wraps an error with the exit code the process should terminate with.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d: %v", e.Code, e.Err)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// exitCode returns the exit code carried by err, ExitGeneralError for any other non nil error.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitGeneralError
}
