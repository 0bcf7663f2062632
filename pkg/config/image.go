package config

import (
	"fmt"
	"image/png"
	"strings"
)

const (
	FormatPNG = "png"
	FormatBMP = "bmp"

	// DefaultMaxImagePixels bounds the raster a carrier may declare. Decoders allocate it in full before reading any
	// pixel data, at 4 bytes per pixel.
	DefaultMaxImagePixels = 40 * 1000 * 1000
)

var (
	PngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

// ImageOutputConfig controls how an embedded carrier is serialized. Only lossless formats are offered, since any
// lossy step would destroy the embedded bits.
type ImageOutputConfig struct {
	Format              string
	PngCompressionLevel png.CompressionLevel
}

func (c *ImageOutputConfig) PopulateUnsetConfigVars() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = FormatPNG
	}
}

func (c ImageOutputConfig) Validate() error {
	switch c.Format {
	case FormatPNG, FormatBMP:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, supported formats are %s and %s", c.Format, FormatPNG, FormatBMP)
	}
}

// PngCompressionFromName falls back to the default compression for unknown names.
func PngCompressionFromName(name string) png.CompressionLevel {
	mappedCompression, found := PngCompressionMapping[name]
	if !found {
		return png.DefaultCompression
	}
	return mappedCompression
}
