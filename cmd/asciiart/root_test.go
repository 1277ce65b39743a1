package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebbyJammin/asciigray/internal/log"
	"github.com/nebbyJammin/asciigray/internal/sink"
	"github.com/nebbyJammin/asciigray/pkg/asciiart"
)

const (
	blackImage = "black.png"
	whiteImage = "white.png"
)

// setupFs returns an in-memory filesystem holding a 40x40 black and a 200x100 white png.
func setupFs(t *testing.T) afero.Fs {
	t.Helper()
	memFs := afero.NewMemMapFs()
	writePNG(t, memFs, blackImage, 40, 40, color.Black)
	writePNG(t, memFs, whiteImage, 200, 100, color.White)
	return memFs
}

func writePNG(t *testing.T, fs afero.Fs, name string, width, height int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, name, buf.Bytes(), 0o644))
}

// executeCommand runs a fresh root command against fs and returns stdout, stderr and the command error.
func executeCommand(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(SetFs(fs))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	// a nil slice makes cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	t.Cleanup(log.SetOutput(&buf))
	return &buf
}

func artLines(art string) []string {
	if art == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(art, "\n"), "\n")
}

func TestRootCmd_ConvertsAndWrites(t *testing.T) {
	memFs := setupFs(t)

	stdout, stderr, err := executeCommand(t, memFs, "", blackImage, "--width", "10")
	require.NoError(t, err)

	want := strings.Repeat("@@@@@@@@@@\n", 6)
	assert.Equal(t, want, stdout)
	assert.NotContains(t, stdout, "written")
	assert.Contains(t, stderr, "ASCII art written to "+sink.DefaultOutputFile)

	written, err := afero.ReadFile(memFs, sink.DefaultOutputFile)
	require.NoError(t, err)
	assert.Equal(t, want, string(written))
}

func TestRootCmd_MissingImage(t *testing.T) {
	memFs := setupFs(t)

	stdout, stderr, err := executeCommand(t, memFs, "", "missing.png")
	require.Error(t, err)
	assert.Equal(t, ExitLoadError, exitCode(err))

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Unable to open image file missing.png.")
	assert.NotContains(t, stderr, "ASCII art written")

	exists, err := afero.Exists(memFs, sink.DefaultOutputFile)
	require.NoError(t, err)
	assert.False(t, exists, "no output file is written on load failure")
}

func TestRootCmd_InvalidWidthUsesDefault(t *testing.T) {
	memFs := setupFs(t)
	logs := captureLogs(t)

	stdout, _, err := executeCommand(t, memFs, "", whiteImage, "-w", "abc")
	require.NoError(t, err)

	lines := artLines(stdout)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat(".", 100), line)
	}
	assert.Contains(t, logs.String(), "invalid width")
}

func TestRootCmd_WidthTooLarge(t *testing.T) {
	memFs := setupFs(t)

	stdout, _, err := executeCommand(t, memFs, "", blackImage, "-w", "9999999999999")
	require.Error(t, err)
	assert.Equal(t, ExitConversionError, exitCode(err))
	assert.ErrorIs(t, err, asciiart.ErrTargetTooLarge)
	assert.Empty(t, stdout)

	exists, err := afero.Exists(memFs, sink.DefaultOutputFile)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRootCmd_Interactive(t *testing.T) {
	memFs := setupFs(t)

	stdout, stderr, err := executeCommand(t, memFs, blackImage+"\n10\n")
	require.NoError(t, err)

	assert.Contains(t, stderr, "Enter the path to the image file: ")
	assert.Contains(t, stderr, "Enter desired width (default is 100): ")
	assert.Equal(t, strings.Repeat("@@@@@@@@@@\n", 6), stdout)
}

func TestRootCmd_InteractiveDefaultWidth(t *testing.T) {
	memFs := setupFs(t)

	stdout, _, err := executeCommand(t, memFs, blackImage+"\n\n")
	require.NoError(t, err)

	lines := artLines(stdout)
	require.Len(t, lines, 55)
	assert.Len(t, lines[0], 100)
}

func TestRootCmd_InteractiveWidthFromFlag(t *testing.T) {
	memFs := setupFs(t)

	stdout, stderr, err := executeCommand(t, memFs, blackImage+"\n", "-w", "10")
	require.NoError(t, err)

	assert.NotContains(t, stderr, "Enter desired width")
	assert.Equal(t, strings.Repeat("@@@@@@@@@@\n", 6), stdout)
}

func TestRootCmd_InteractiveNoPath(t *testing.T) {
	_, _, err := executeCommand(t, setupFs(t), "")
	require.Error(t, err)
	assert.Equal(t, ExitInputError, exitCode(err))
}

func TestRootCmd_NoWrite(t *testing.T) {
	memFs := setupFs(t)

	stdout, stderr, err := executeCommand(t, memFs, "", blackImage, "-w", "10", "--no-write")
	require.NoError(t, err)
	assert.NotEmpty(t, stdout)
	assert.NotContains(t, stderr, "ASCII art written")

	exists, err := afero.Exists(memFs, sink.DefaultOutputFile)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRootCmd_CustomOutput(t *testing.T) {
	memFs := setupFs(t)

	_, stderr, err := executeCommand(t, memFs, "", whiteImage, "-w", "8", "-o", "white.txt")
	require.NoError(t, err)
	assert.Contains(t, stderr, "ASCII art written to white.txt")

	written, err := afero.ReadFile(memFs, "white.txt")
	require.NoError(t, err)
	for _, line := range artLines(string(written)) {
		assert.Equal(t, "........", line)
	}
}

func TestRootCmd_WidthFromEnv(t *testing.T) {
	memFs := setupFs(t)
	t.Setenv("ASCIIART_WIDTH", "12")

	stdout, stderr, err := executeCommand(t, memFs, blackImage+"\n", "--no-write")
	require.NoError(t, err)

	assert.NotContains(t, stderr, "Enter desired width")
	lines := artLines(stdout)
	require.NotEmpty(t, lines)
	assert.Len(t, lines[0], 12)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	memFs := setupFs(t)
	require.NoError(t, afero.WriteFile(memFs, "asciiart.yaml", []byte("width: 20\nfilter: lanczos\noutput: from-config.txt\n"), 0o644))

	stdout, _, err := executeCommand(t, memFs, "", blackImage, "--config", "asciiart.yaml")
	require.NoError(t, err)

	lines := artLines(stdout)
	require.Len(t, lines, 11)
	assert.Equal(t, strings.Repeat("@", 20), lines[0])

	exists, err := afero.Exists(memFs, "from-config.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRootCmd_FlagOverridesConfig(t *testing.T) {
	memFs := setupFs(t)
	require.NoError(t, afero.WriteFile(memFs, "asciiart.yaml", []byte("width: 20\n"), 0o644))

	stdout, _, err := executeCommand(t, memFs, "", blackImage, "--config", "asciiart.yaml", "-w", "10", "--no-write")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("@@@@@@@@@@\n", 6), stdout)
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	_, _, err := executeCommand(t, setupFs(t), "", blackImage, "--config", "nope.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitInputError, exitCode(err))
}

func TestRootCmd_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "filter", args: []string{blackImage, "--filter", "gaussian"}},
		{name: "luminance", args: []string{blackImage, "--luminance", "hsv"}},
		{name: "log level", args: []string{blackImage, "--log-level", "loud"}},
		{name: "unknown flag", args: []string{blackImage, "--colour"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, setupFs(t), "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitInputError, exitCode(err))
		})
	}
}

func TestRootCmd_LightnessMode(t *testing.T) {
	stdout, _, err := executeCommand(t, setupFs(t), "", whiteImage, "-w", "10", "--luminance", "lightness", "--no-write")
	require.NoError(t, err)
	for _, line := range artLines(stdout) {
		assert.Equal(t, "..........", line)
	}
}

func TestRootCmd_NoRowsWritesNothing(t *testing.T) {
	memFs := afero.NewMemMapFs()
	writePNG(t, memFs, "strip.png", 1000, 1, color.Black)

	stdout, _, err := executeCommand(t, memFs, "", "strip.png", "-w", "10")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	exists, err := afero.Exists(memFs, sink.DefaultOutputFile)
	require.NoError(t, err)
	assert.False(t, exists)
}
