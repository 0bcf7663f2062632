package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"tsteg/pkg/config"
	tstegImage "tsteg/pkg/image"
	"tsteg/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCarrier(t *testing.T, dir string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, "carrier.png")
	_, err := writeImageFile(path, test.GenerateRandomPixelBuffer(width, height, true), config.ImageOutputConfig{PngCompressionLevel: png.BestSpeed})
	require.NoError(t, err)
	return path
}

func runCommand(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := RootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeThenDecode(t *testing.T) {
	dir := t.TempDir()
	carrier := writeCarrier(t, dir, 32, 32)

	for _, format := range []string{config.FormatPNG, config.FormatBMP} {
		t.Run(format, func(t *testing.T) {
			encoded := filepath.Join(dir, "encoded."+format)
			_, err := runCommand("image", "encode", "--image", carrier, "--output-file", encoded, "--message", "the eagle has landed")
			require.NoError(t, err)

			decoded := filepath.Join(dir, "decoded-"+format+".txt")
			_, err = runCommand("image", "decode", "--source", encoded, "--output-file", decoded)
			require.NoError(t, err)

			message, err := os.ReadFile(decoded)
			require.NoError(t, err)
			assert.Equal(t, "the eagle has landed", string(message))
		})
	}
}

func TestEncodeFromMessageFile(t *testing.T) {
	dir := t.TempDir()
	carrier := writeCarrier(t, dir, 16, 16)
	messageFile := filepath.Join(dir, "message.txt")
	require.NoError(t, os.WriteFile(messageFile, []byte("line one\nline two"), 0o644))

	encoded := filepath.Join(dir, "encoded.png")
	normalized := filepath.Join(dir, "normalized.png")
	output, err := runCommand("image", "encode", "--image", carrier, "--output-file", encoded,
		"--message-file", messageFile, "--normalized-output", normalized, "--print-bitstream")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, "01101100"), "bitstream should start with the bits of 'l', got %q", output)

	normalizedBuffer, _, err := readImageFile(normalized)
	require.NoError(t, err)
	for p, v := range normalizedBuffer.Pix {
		if p%4 != 3 {
			require.Zero(t, v&1, "normalized output has LSB set at %d", p)
		}
	}

	output, err = runCommand("image", "decode", "--source", encoded)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", output)
}

func TestEncodeRejectsInvalidInput(t *testing.T) {
	dir := t.TempDir()
	carrier := writeCarrier(t, dir, 2, 2)
	encoded := filepath.Join(dir, "encoded.png")

	_, err := runCommand("image", "encode", "--image", carrier, "--output-file", encoded, "--message", "too long")
	var capacityErr *tstegImage.CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 64, capacityErr.RequiredBits)
	assert.Equal(t, 12, capacityErr.AvailableBits)
	assert.NoFileExists(t, encoded)

	_, err = runCommand("image", "encode", "--image", carrier, "--output-file", encoded)
	assert.Error(t, err)

	_, err = runCommand("image", "encode", "--image", carrier, "--output-file", encoded, "--message", "a", "--message-file", "b")
	assert.Error(t, err)

	_, err = runCommand("image", "encode", "--image", carrier, "--output-file", encoded, "--message", "a", "--format", "jpeg")
	assert.Error(t, err)

	_, err = runCommand("image", "encode", "--image", filepath.Join(dir, "missing.png"), "--output-file", encoded, "--message", "a")
	assert.Error(t, err)
}

func TestCapacityCommand(t *testing.T) {
	carrier := writeCarrier(t, t.TempDir(), 100, 100)

	output, err := runCommand("image", "capacity", "--image", carrier)
	require.NoError(t, err)
	assert.Equal(t, "100x100 png image holds 30,000 bits, up to 3,750 characters (3.8 kB)\n", output)
}

func TestInvalidLogLevel(t *testing.T) {
	cmd := RootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"image", "capacity", "--image", "x.png", "--log-level", "loud"})
	assert.ErrorContains(t, cmd.Execute(), "invalid log level")
}

func TestProfilerWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	cpuProfile := filepath.Join(dir, "cpu.prof")
	memProfileDir := filepath.Join(dir, "mem")

	require.NoError(t, StartProfiler(cpuProfile, memProfileDir))
	require.NoError(t, StopProfiler())
	require.NoError(t, StopProfiler())

	assert.FileExists(t, cpuProfile)
	assert.FileExists(t, filepath.Join(memProfileDir, "mem-0.mprof"))
}

func TestOutputFormatInference(t *testing.T) {
	assert.Equal(t, config.FormatBMP, outputOpts{}.toOutputConfig("out.BMP").Format)
	assert.Equal(t, config.FormatPNG, outputOpts{}.toOutputConfig("out.img").Format)
	assert.Equal(t, config.FormatBMP, outputOpts{format: "BMP"}.toOutputConfig("out.png").Format)
	assert.Equal(t, png.BestSpeed, outputOpts{pngCompression: "fast"}.toOutputConfig("out.png").PngCompressionLevel)
}
