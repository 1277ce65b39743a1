package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nebbyJammin/asciigray/internal/log"
	"github.com/nebbyJammin/asciigray/internal/sink"
	"github.com/nebbyJammin/asciigray/pkg/asciiart"
)

const (
	envPrefix = "ASCIIART"

	configUsage  = "Path to a config file (yaml, toml or json) providing defaults for any flag."
	widthUsage   = "Specifies the target width in characters. Non numeric or non positive values fall back to 100."
	outputUsage  = "File the ascii art is written to. Any existing file is overwritten."
	noWriteUsage = "Only print the ascii art, do not write the output file."

	filterUsage = "Specifies the resampling filter used when shrinking the image:\n" +
		`  - "box" (default)` + "\n" +
		`  - "nearest"` + "\n" +
		`  - "linear"` + "\n" +
		`  - "cubic"` + "\n" +
		`  - "lanczos"` + "\n"

	luminanceUsage = "Specifies how colors are reduced to brightness:\n" +
		`  - "luma" (default)` + "\n" +
		`  - "lightness"` + "\n"

	logLevelUsage = "Log level (debug, info, warn, error). Logs go to stderr, set LOG_FORMAT=json for JSON logs."
)

// AppFs is the filesystem images are read from and the art is written to.
var AppFs = afero.NewOsFs()

// SetFs replaces AppFs and returns a function restoring the previous one. Used by tests.
func SetFs(newFs afero.Fs) func() {
	oldFs := AppFs
	AppFs = newFs
	return func() { AppFs = oldFs }
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "asciiart [image-path]",
		Short: "Convert an image into grayscale ascii art",
		Long: "asciiart shrinks an image to the requested width, converts it to grayscale and replaces every pixel\n" +
			"with a character from the ramp \"" + asciiart.Ramp() + "\" (darkest to lightest).\n\n" +
			"The result is printed and written to " + sink.DefaultOutputFile + ". Without an image path, the path\n" +
			"and width are read interactively from stdin.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitCodeError{Code: ExitInputError, Err: err}
	})

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", configUsage)
	flags.StringP("width", "w", strconv.Itoa(asciiart.DefaultWidth), widthUsage)
	flags.StringP("output", "o", sink.DefaultOutputFile, outputUsage)
	flags.Bool("no-write", false, noWriteUsage)
	flags.String("filter", asciiart.Filters.Box().String(), filterUsage)
	flags.String("luminance", asciiart.LuminanceModes.Luma().String(), luminanceUsage)
	flags.String("log-level", "info", logLevelUsage)

	return cmd
}

// initConfig layers flags over ASCIIART_* environment variables over the config file, then applies the log level.
func initConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	v.SetFs(AppFs)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return &ExitCodeError{Code: ExitInputError, Err: errors.Wrap(err, "failed to bind flags")}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return &ExitCodeError{Code: ExitInputError, Err: errors.Wrapf(err, "failed to read config file %s", cfgFile)}
		}
	}

	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return &ExitCodeError{Code: ExitInputError, Err: err}
	}
	log.SetLevel(level)

	if cfgFile != "" {
		log.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	return nil
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	imagePath, widthInput, err := resolveInput(cmd, v, args)
	if err != nil {
		return err
	}

	width, err := asciiart.ParseWidth(widthInput)
	if err != nil {
		log.Warn("invalid width, using default", "input", widthInput, "width", width)
	}

	filter, err := asciiart.ParseFilter(v.GetString("filter"))
	if err != nil {
		return &ExitCodeError{Code: ExitInputError, Err: err}
	}

	mode, err := asciiart.ParseLuminanceMode(v.GetString("luminance"))
	if err != nil {
		return &ExitCodeError{Code: ExitInputError, Err: err}
	}

	converter := asciiart.New(
		asciiart.WithFs(AppFs),
		asciiart.WithFilter(filter),
		asciiart.WithLuminanceMode(mode),
		asciiart.WithLogger(log.Logger()),
	)

	art, err := converter.ConvertFile(imagePath, width)
	if err != nil {
		var loadErr *asciiart.LoadError
		if errors.As(err, &loadErr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Unable to open image file %s.\n%v\n", loadErr.Path, loadErr.Err)
			return &ExitCodeError{Code: ExitLoadError, Err: err}
		}
		return &ExitCodeError{Code: ExitConversionError, Err: errors.Wrap(err, "failed to convert image")}
	}

	if art == "" {
		log.Warn("image produced no rows at this width, nothing to write", "path", imagePath, "width", width)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), art)

	if v.GetBool("no-write") {
		return nil
	}

	output := v.GetString("output")
	if err := sink.Write(AppFs, output, art); err != nil {
		return &ExitCodeError{Code: ExitIOError, Err: errors.Wrapf(err, "failed to write %s", output)}
	}

	log.Debug("wrote ascii art", "path", output, "bytes", len(art))
	fmt.Fprintf(cmd.ErrOrStderr(), "ASCII art written to %s\n", output)

	return nil
}

// resolveInput returns the image path and raw width, prompting for whatever was not supplied.
func resolveInput(cmd *cobra.Command, v *viper.Viper, args []string) (string, string, error) {
	widthInput := v.GetString("width")
	if len(args) == 1 {
		return args[0], widthInput, nil
	}

	p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

	imagePath, err := p.ask("Enter the path to the image file: ")
	if err != nil {
		return "", "", &ExitCodeError{Code: ExitInputError, Err: errors.Wrap(err, "failed to read image path")}
	}
	if imagePath == "" {
		return "", "", &ExitCodeError{Code: ExitInputError, Err: errors.New("no image path provided")}
	}

	// a width from a flag, the environment or the config file is not asked again
	if !v.IsSet("width") {
		widthInput, err = p.ask(fmt.Sprintf("Enter desired width (default is %d): ", asciiart.DefaultWidth))
		if err != nil {
			return "", "", &ExitCodeError{Code: ExitInputError, Err: errors.Wrap(err, "failed to read width")}
		}
	}

	return imagePath, widthInput, nil
}
