package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/nebbyJammin/asciigray/internal/log"
	"github.com/nebbyJammin/asciigray/pkg/asciiart"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// Execute runs the root command. Load failures are already reported to the user by the command itself.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		var loadErr *asciiart.LoadError
		if !errors.As(err, &loadErr) {
			log.Error("asciiart failed", "error", err)
		}
	}

	return err
}
