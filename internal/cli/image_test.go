package cli

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"textsteg/pkg/config"
	"textsteg/pkg/message"
)

func TestOutputPathFor(t *testing.T) {
	pngConfig := config.ImageEncodeConfig{}
	bmpConfig := config.ImageEncodeConfig{OutputFormat: config.OutputFormatBMP}

	assert.Equal(t, "cat_2.png", OutputPathFor("cat.jpg", pngConfig))
	assert.Equal(t, filepath.Join("pics", "cat_2.png"), OutputPathFor(filepath.Join("pics", "cat.tar.png"), pngConfig))
	assert.Equal(t, "noext_2.bmp", OutputPathFor("noext", bmpConfig))
	assert.Equal(t, filepath.Join("my.dir", "dog_2.png"), OutputPathFor(filepath.Join("my.dir", "dog.png"), pngConfig))
	assert.Equal(t, filepath.Join("pics", "_2.png"), OutputPathFor(filepath.Join("pics", ".png"), pngConfig))
	assert.Equal(t, ".hidden_2.png", OutputPathFor(".hidden.tar.jpg", pngConfig))
	assert.Equal(t, "_2.bmp", OutputPathFor(".bmp", bmpConfig))
}

func TestEncodeDecodeImageFiles(t *testing.T) {
	dir := t.TempDir()
	sourcePath := writeTestImage(t, dir, "carrier.png", 40, 30)

	for _, format := range []config.OutputFormat{config.OutputFormatPNG, config.OutputFormatBMP} {
		iConfig := config.ImageEncodeConfig{OutputFormat: format}
		outputPath := OutputPathFor(sourcePath, iConfig)

		result, err := EncodeMessageIntoImage(io.Discard, sourcePath, outputPath, "The owl flies at midnight ©", iConfig)
		require.NoError(t, err)
		assert.False(t, result.Truncated)
		assert.Equal(t, message.Capacity(40, 30), result.Capacity)

		decoded, err := DecodeMessageFromImage(io.Discard, outputPath)
		require.NoError(t, err)
		assert.True(t, decoded.Found)
		assert.Equal(t, "The owl flies at midnight ©", decoded.Text)
	}
}

func TestEncodeImageRejectsWideCharacters(t *testing.T) {
	dir := t.TempDir()
	sourcePath := writeTestImage(t, dir, "carrier.png", 10, 10)
	outputPath := filepath.Join(dir, "out.png")

	_, err := EncodeMessageIntoImage(io.Discard, sourcePath, outputPath, "naïve ≠ wise", config.ImageEncodeConfig{})
	var validationErr *message.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr), "no output should be written for an invalid message")
}

func TestEncodeImageMissingSource(t *testing.T) {
	_, err := EncodeMessageIntoImage(io.Discard, filepath.Join(t.TempDir(), "missing.png"), "out.png", "hi", config.ImageEncodeConfig{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImageCommands(t *testing.T) {
	dir := t.TempDir()
	sourcePath := writeTestImage(t, dir, "carrier.png", 8, 8)
	messagePath := filepath.Join(dir, "message.txt")
	require.NoError(t, os.WriteFile(messagePath, []byte("a message that is far too long for such a tiny image"), 0644))

	out := runRootCommand(t, "", "image", "encode", "--image", sourcePath, "--message-file", messagePath)
	assert.Contains(t, out, "cut down to 20 characters")
	assert.Contains(t, out, "Message successfully hidden in "+filepath.Join(dir, "carrier_2.png"))

	out = runRootCommand(t, "", "image", "decode", "--source", filepath.Join(dir, "carrier_2.png"))
	assert.Equal(t, "Message successfully found!\na message that is fa\n", out)

	out = runRootCommand(t, "", "image", "capacity", sourcePath)
	assert.Contains(t, out, "up to 20 characters (24 including the terminator)")
}

func TestImageEncodeFromStdin(t *testing.T) {
	dir := t.TempDir()
	sourcePath := writeTestImage(t, dir, "carrier.png", 20, 20)
	outputPath := filepath.Join(dir, "stdin.png")

	runRootCommand(t, "piped in", "image", "encode", "--image", sourcePath, "--message-file", "-", "--output-file", outputPath)
	out := runRootCommand(t, "", "image", "decode", "--source", outputPath)
	assert.Contains(t, out, "piped in")
}

func TestImageEncodeMessageFlags(t *testing.T) {
	dir := t.TempDir()
	sourcePath := writeTestImage(t, dir, "carrier.png", 20, 20)

	err := executeRootCommand("", "image", "encode", "--image", sourcePath)
	assert.ErrorIs(t, err, ErrNoMessage)

	err = executeRootCommand("", "image", "encode", "--image", sourcePath, "--message", "a", "--message-file", "b")
	assert.ErrorIs(t, err, ErrMessageSourceConflict)

	err = executeRootCommand("", "image", "encode", "--image", sourcePath, "--message", "a", "--format", "jpeg")
	assert.ErrorIs(t, err, config.ErrUnsupportedOutputFormat)
}

func TestDecodeWithoutMessage(t *testing.T) {
	dir := t.TempDir()
	sourcePath := writeTestImage(t, dir, "plain.png", 3, 3)

	out := runRootCommand(t, "", "image", "decode", "--source", sourcePath)
	assert.Equal(t, "No hidden message was found in this image\n", out)
}

func TestStopProfilerWhileCommandRuns(t *testing.T) {
	dir := t.TempDir()
	sourcePath := writeTestImage(t, dir, "carrier.png", 8, 8)
	cpuProfile := filepath.Join(dir, "cpu.prof")

	rootCmd, stop := RootCommand()
	rootCmd.SetArgs([]string{"--cpu-profile", cpuProfile, "image", "capacity", sourcePath})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)

	// stop may come from a signal handler at any point of the command
	done := make(chan struct{})
	go func() {
		defer close(done)
		stop()
	}()
	require.NoError(t, rootCmd.Execute())
	<-done
	stop()

	info, err := os.Stat(cpuProfile)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func executeRootCommand(stdin string, args ...string) error {
	rootCmd, stop := RootCommand()
	defer stop()

	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	return rootCmd.Execute()
}

func runRootCommand(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	rootCmd, stop := RootCommand()
	defer stop()

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}
